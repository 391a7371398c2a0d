package main

import (
	"errors"
	"fmt"

	"github.com/classtrack/classtrack/storage/record"
	"github.com/classtrack/classtrack/storage/record/sqlstore"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	store    record.Store
	sqlStore *sqlstore.Store
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  migrate - create the records table on the configured PostgreSQL database")
	fmt.Println("  seed    - load sample classroom data into the record store")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "migrate":
		return cli.migrate()
	case "seed":
		return cli.seed()
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) migrate() error {
	return cli.sqlStore.Migrate()
}
