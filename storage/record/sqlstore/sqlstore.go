// Package sqlstore backs the record store with PostgreSQL. Records are
// kept as JSONB documents in a single table so all entity tables share
// one schema.
package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/classtrack/classtrack/core"
	"github.com/classtrack/classtrack/storage/record"
)

type Store struct {
	db *sqlx.DB
}

var _ record.Store = (*Store)(nil)

func Open(conf *core.Config) (*Store, error) {
	sslMode := "require"
	if conf.Database.DisableTLS {
		sslMode = "disable"
	}
	q := make(url.Values)
	q.Set("sslmode", sslMode)
	q.Set("timezone", "utc")

	u := url.URL{
		Scheme:   conf.Database.Engine,
		User:     url.UserPassword(conf.Database.User, conf.Database.Password),
		Host:     conf.Database.Address(),
		Path:     conf.Database.Name,
		RawQuery: q.Encode(),
	}

	db, err := sqlx.Open(conf.Database.Engine, u.String())
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	if err = ping(db); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// ping waits for the database to be ready. Waits 100ms longer between each attempt.
func ping(db *sqlx.DB) error {
	var err error
	maxAttempts := 30
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		err = db.Ping()
		if err == nil {
			break
		}
		time.Sleep(time.Duration(attempts) * 100 * time.Millisecond)
	}

	if err != nil {
		return errors.Wrap(err, "DB ping timeout")
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS records (
	position   BIGSERIAL,
	table_name TEXT NOT NULL,
	id         TEXT NOT NULL,
	data       JSONB NOT NULL,
	PRIMARY KEY (table_name, id)
);
CREATE INDEX IF NOT EXISTS records_table_name_idx ON records (table_name, position);
`

func (st *Store) Migrate() error {
	if _, err := st.db.Exec(schema); err != nil {
		return errors.Wrap(err, "migrating database")
	}
	return nil
}

func (st *Store) Close() error {
	return st.db.Close()
}

// storeErr marks a failure as a store outage so views can surface it
// as retryable, matching the HTTP client backend.
func storeErr(op, table string, err error) error {
	return &record.StoreError{Op: op, Table: table, Err: err}
}

func decodeRow(id string, data []byte) (record.Record, error) {
	var rec record.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, errors.Wrap(err, "decoding record")
	}
	rec["id"] = id
	return rec, nil
}

func encodeRow(rec record.Record) ([]byte, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, errors.Wrap(err, "encoding record")
	}
	return data, nil
}

func (st *Store) List(ctx context.Context, table string) ([]record.Record, error) {
	rows, err := st.db.QueryContext(ctx,
		`SELECT id, data FROM records WHERE table_name = $1 ORDER BY position`, table)
	if err != nil {
		return nil, storeErr("list", table, errors.Wrap(err, "querying records"))
	}
	defer func() { _ = rows.Close() }()

	recs := make([]record.Record, 0)
	for rows.Next() {
		var (
			id   string
			data []byte
		)
		if err = rows.Scan(&id, &data); err != nil {
			return nil, storeErr("list", table, errors.Wrap(err, "scanning record"))
		}
		rec, err := decodeRow(id, data)
		if err != nil {
			return nil, storeErr("list", table, err)
		}
		recs = append(recs, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, storeErr("list", table, errors.Wrap(err, "querying records"))
	}
	return recs, nil
}

func (st *Store) Get(ctx context.Context, table, id string) (record.Record, error) {
	var data []byte
	err := st.db.QueryRowContext(ctx,
		`SELECT data FROM records WHERE table_name = $1 AND id = $2`, table, id).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, record.ErrNotFound
	} else if err != nil {
		return nil, storeErr("get", table, errors.Wrap(err, "querying record"))
	}
	rec, err := decodeRow(id, data)
	if err != nil {
		return nil, storeErr("get", table, err)
	}
	return rec, nil
}

func (st *Store) Create(ctx context.Context, table string, rec record.Record) (record.Record, error) {
	id := uuid.New().String()
	data, err := encodeRow(rec)
	if err != nil {
		return nil, storeErr("create", table, err)
	}

	_, err = st.db.ExecContext(ctx,
		`INSERT INTO records (table_name, id, data) VALUES ($1, $2, $3)`, table, id, data)
	if err != nil {
		return nil, storeErr("create", table, errors.Wrap(err, "inserting record"))
	}
	created, err := decodeRow(id, data)
	if err != nil {
		return nil, storeErr("create", table, err)
	}
	return created, nil
}

func (st *Store) Update(ctx context.Context, table, id string, rec record.Record) (record.Record, error) {
	delete(rec, "id")
	data, err := encodeRow(rec)
	if err != nil {
		return nil, storeErr("update", table, err)
	}

	var merged []byte
	err = st.db.QueryRowContext(ctx,
		`UPDATE records SET data = data || $3 WHERE table_name = $1 AND id = $2 RETURNING data`,
		table, id, data).Scan(&merged)
	if err == sql.ErrNoRows {
		return nil, record.ErrNotFound
	} else if err != nil {
		return nil, storeErr("update", table, errors.Wrap(err, "updating record"))
	}
	updated, err := decodeRow(id, merged)
	if err != nil {
		return nil, storeErr("update", table, err)
	}
	return updated, nil
}

func (st *Store) Delete(ctx context.Context, table, id string) error {
	res, err := st.db.ExecContext(ctx,
		`DELETE FROM records WHERE table_name = $1 AND id = $2`, table, id)
	if err != nil {
		return storeErr("delete", table, errors.Wrap(err, "deleting record"))
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return record.ErrNotFound
	}
	return nil
}
