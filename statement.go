package auroradataapi

import (
	"context"
	"database/sql/driver"
)

// auroraStmt is a thin handle over its connection: the service has no
// prepared-statement objects, so the query text is simply replayed per call.
type auroraStmt struct {
	sc    *auroraConn
	query string
}

func (stmt *auroraStmt) Close() error {
	stmt.sc = nil
	return nil
}

// NumInput returns -1 so the sql package skips argument count checks; named
// parameters are matched by the engine, not by position.
func (stmt *auroraStmt) NumInput() int {
	return -1
}

func (stmt *auroraStmt) ExecContext(ctx context.Context, args []driver.NamedValue) (driver.Result, error) {
	if stmt.sc == nil {
		return nil, driver.ErrBadConn
	}
	return stmt.sc.ExecContext(ctx, stmt.query, args)
}

func (stmt *auroraStmt) QueryContext(ctx context.Context, args []driver.NamedValue) (driver.Rows, error) {
	if stmt.sc == nil {
		return nil, driver.ErrBadConn
	}
	return stmt.sc.QueryContext(ctx, stmt.query, args)
}

func (stmt *auroraStmt) Exec(args []driver.Value) (driver.Result, error) {
	return stmt.ExecContext(context.Background(), toNamedValues(args))
}

func (stmt *auroraStmt) Query(args []driver.Value) (driver.Rows, error) {
	return stmt.QueryContext(context.Background(), toNamedValues(args))
}
