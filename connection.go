package auroradataapi

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rdsdata"
)

const transactionCommitted = "Transaction Committed"

// Connection identifies a target database, a cluster resource and a
// credential secret, and owns at most one active server-side transaction at a
// time. A Connection and the Cursors spawned from it are not safe for
// unsynchronized concurrent use; a process may hold any number of independent
// Connections.
type Connection struct {
	cfg  *Config
	api  DataAPI
	txID string
}

// Connect validates the configuration, builds the Data API client when none
// is injected, and returns a Connection. No transaction is begun until the
// first Cursor call.
func Connect(ctx context.Context, cfg *Config) (*Connection, error) {
	fillMissingConfigParameters(cfg)
	if cfg.ResourceARN == "" {
		return nil, errEmptyResourceARN
	}
	if cfg.SecretARN == "" {
		return nil, errEmptySecretARN
	}
	api, err := newDataAPIClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Connection{cfg: cfg, api: api}, nil
}

// Cursor returns a new cursor bound to the connection's transaction, lazily
// beginning one when none is active.
func (ac *Connection) Cursor(ctx context.Context) (*Cursor, error) {
	if ac.api == nil {
		return nil, driver.ErrBadConn
	}
	if ac.txID == "" {
		args := &rdsdata.BeginTransactionInput{
			ResourceArn: aws.String(ac.cfg.ResourceARN),
			SecretArn:   aws.String(ac.cfg.SecretARN),
		}
		if ac.cfg.Database != "" {
			args.Database = aws.String(ac.cfg.Database)
		}
		res, err := ac.api.BeginTransaction(ctx, args)
		if err != nil {
			return nil, classifyError(err)
		}
		ac.txID = aws.ToString(res.TransactionId)
		logger.WithContext(ctx).Debugf("begin transaction %v", ac.txID)
	}
	cur := &Cursor{
		api:      ac.api,
		cfg:      ac.cfg,
		txID:     ac.txID,
		PageSize: ac.cfg.PageSize,
	}
	if ac.cfg.Charset != "" {
		err := cur.Execute(ctx, fmt.Sprintf("SET character_set_client = '%s'", ac.cfg.Charset), nil)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}

// Commit commits the active transaction and clears the transaction id. It is
// a no-op when no transaction is active.
func (ac *Connection) Commit(ctx context.Context) error {
	if ac.txID == "" {
		return nil
	}
	res, err := ac.api.CommitTransaction(ctx, &rdsdata.CommitTransactionInput{
		ResourceArn:   aws.String(ac.cfg.ResourceARN),
		SecretArn:     aws.String(ac.cfg.SecretARN),
		TransactionId: aws.String(ac.txID),
	})
	if err != nil {
		return classifyError(err)
	}
	ac.txID = ""
	if status := aws.ToString(res.TransactionStatus); status != transactionCommitted {
		return &AuroraError{
			Kind:    KindDatabaseError,
			Message: fmt.Sprintf("error while committing transaction: %v", status),
		}
	}
	return nil
}

// Rollback rolls back the active transaction and clears the transaction id.
// It is a no-op when no transaction is active. Rollback is best-effort:
// failures are logged and not returned.
func (ac *Connection) Rollback(ctx context.Context) error {
	if ac.txID == "" {
		return nil
	}
	txID := ac.txID
	ac.txID = ""
	_, err := ac.api.RollbackTransaction(ctx, &rdsdata.RollbackTransactionInput{
		ResourceArn:   aws.String(ac.cfg.ResourceARN),
		SecretArn:     aws.String(ac.cfg.SecretARN),
		TransactionId: aws.String(txID),
	})
	if err != nil {
		logger.WithContext(ctx).Warnf("rollback of transaction %v failed: %v", txID, err)
	}
	return nil
}

// Finish settles the session, for use with defer: it rolls back when *errp is
// non-nil and commits otherwise, reporting a commit failure through *errp.
//
//	conn, err := auroradataapi.Connect(ctx, cfg)
//	...
//	defer conn.Finish(ctx, &err)
func (ac *Connection) Finish(ctx context.Context, errp *error) {
	if errp != nil && *errp != nil {
		_ = ac.Rollback(ctx)
		return
	}
	if err := ac.Commit(ctx); err != nil && errp != nil {
		*errp = err
	}
}

// Close releases the connection. It has no remote effect; an uncommitted
// transaction is left to the service to expire.
func (ac *Connection) Close() error {
	ac.api = nil
	ac.txID = ""
	return nil
}

// auroraConn adapts a Connection to database/sql's driver.Conn. Outside an
// explicit transaction every statement auto-commits: Exec commits before
// returning and Query commits when its rows are closed.
type auroraConn struct {
	ac   *Connection
	inTx bool
}

func (sc *auroraConn) Prepare(query string) (driver.Stmt, error) {
	return sc.PrepareContext(context.Background(), query)
}

func (sc *auroraConn) PrepareContext(_ context.Context, query string) (driver.Stmt, error) {
	if sc.ac == nil {
		return nil, driver.ErrBadConn
	}
	return &auroraStmt{sc: sc, query: query}, nil
}

func (sc *auroraConn) Close() error {
	if sc.ac == nil {
		return nil
	}
	err := sc.ac.Close()
	sc.ac = nil
	return err
}

func (sc *auroraConn) Begin() (driver.Tx, error) {
	return sc.BeginTx(context.Background(), driver.TxOptions{})
}

func (sc *auroraConn) BeginTx(ctx context.Context, opts driver.TxOptions) (driver.Tx, error) {
	logger.WithContext(ctx).Debug("BeginTx")
	if opts.ReadOnly {
		return nil, &InterfaceError{Message: "read-only transactions are not supported"}
	}
	if int(opts.Isolation) != int(sql.LevelDefault) {
		return nil, &InterfaceError{Message: "non-default transaction isolation levels are not supported"}
	}
	if sc.ac == nil {
		return nil, driver.ErrBadConn
	}
	// the server-side transaction itself begins on the first statement
	sc.inTx = true
	return &auroraTx{sc: sc}, nil
}

func (sc *auroraConn) ExecContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	if sc.ac == nil {
		return nil, driver.ErrBadConn
	}
	params, err := namedValuesToParams(args)
	if err != nil {
		return nil, err
	}
	cur, err := sc.ac.Cursor(ctx)
	if err != nil {
		return nil, err
	}
	defer cur.Close()
	if err := cur.Execute(ctx, query, params); err != nil {
		if !sc.inTx {
			_ = sc.ac.Rollback(ctx)
		}
		return nil, err
	}
	res := &auroraResult{
		affectedRows: cur.RowCount(),
		insertID:     lastInsertID(cur),
	}
	if !sc.inTx {
		if err := sc.ac.Commit(ctx); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (sc *auroraConn) QueryContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	if sc.ac == nil {
		return nil, driver.ErrBadConn
	}
	params, err := namedValuesToParams(args)
	if err != nil {
		return nil, err
	}
	cur, err := sc.ac.Cursor(ctx)
	if err != nil {
		return nil, err
	}
	if err := cur.Execute(ctx, query, params); err != nil {
		if !sc.inTx {
			_ = sc.ac.Rollback(ctx)
		}
		return nil, err
	}
	return &auroraRows{
		sc:            sc,
		cur:           cur,
		ctx:           ctx,
		commitOnClose: !sc.inTx,
	}, nil
}

func (sc *auroraConn) Exec(query string, args []driver.Value) (driver.Result, error) {
	return sc.ExecContext(context.Background(), query, toNamedValues(args))
}

func (sc *auroraConn) Query(query string, args []driver.Value) (driver.Rows, error) {
	return sc.QueryContext(context.Background(), query, toNamedValues(args))
}

func (sc *auroraConn) Ping(ctx context.Context) error {
	_, err := sc.ExecContext(ctx, "SELECT 1", nil)
	return err
}

// CheckNamedValue accepts every type the converter can encode, so values like
// Date or *big.Float reach the statement unmodified. Positional parameters
// have no Data API representation and fail fast here.
func (sc *auroraConn) CheckNamedValue(nv *driver.NamedValue) error {
	if nv.Name == "" {
		return &AuroraError{
			Kind:    KindNotSupportedError,
			Message: "positional parameters are not supported, use named parameters",
		}
	}
	return nil
}

func lastInsertID(cur *Cursor) int64 {
	v, err := cur.LastRowID()
	if err != nil {
		return -1
	}
	if id, ok := v.(int64); ok {
		return id
	}
	return -1
}
