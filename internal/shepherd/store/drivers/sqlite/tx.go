package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/store"
)

type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // outer DB stays open

// Ping is a no-op for transactions; the connection is already held.
func (t *txStore) Ping(ctx context.Context) error {
	return nil
}

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Users() store.Users               { return &usersRepo{q: t.tx} }
func (t *txStore) Roles() store.Roles               { return &rolesRepo{q: t.tx} }
func (t *txStore) Members() store.Members           { return &membersRepo{q: t.tx} }
func (t *txStore) Events() store.Events             { return &eventsRepo{q: t.tx} }
func (t *txStore) Attendance() store.Attendance     { return &attendanceRepo{q: t.tx} }
func (t *txStore) Discipleship() store.Discipleship { return &discipleshipRepo{q: t.tx} }

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx
