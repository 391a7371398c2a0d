package main

import (
	"fmt"
	"log"
	"os"

	"github.com/classtrack/classtrack/core"
	"github.com/classtrack/classtrack/storage/record"
	inmemdb "github.com/classtrack/classtrack/storage/record/inmem"
	"github.com/classtrack/classtrack/storage/record/sqlstore"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	cli := commandLine{}

	// migrate needs the SQL store regardless of the configured backend
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		st, err := sqlstore.Open(&core.Conf)
		errAndDie(err)
		defer st.Close()
		cli.sqlStore = st
		cli.store = st
	} else {
		store, cleanup, err := openStore()
		errAndDie(err)
		defer cleanup()
		cli.store = store
	}

	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func openStore() (record.Store, func(), error) {
	noop := func() {}
	switch backend := core.Conf.Store.Backend; backend {
	case "http":
		return record.NewClient(core.Conf.Store), noop, nil
	case "postgres":
		st, err := sqlstore.Open(&core.Conf)
		if err != nil {
			return nil, nil, err
		}
		return st, func() { _ = st.Close() }, nil
	case "inmem":
		return inmemdb.Open(), noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", backend)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
