package auroradataapi

import "context"

var errTxClosed = &InterfaceError{Message: "transaction has already been committed or rolled back"}

type auroraTx struct {
	sc *auroraConn
}

func (tx *auroraTx) Commit() error {
	if tx.sc == nil || tx.sc.ac == nil {
		return errTxClosed
	}
	err := tx.sc.ac.Commit(context.Background())
	tx.sc.inTx = false
	tx.sc = nil
	return err
}

func (tx *auroraTx) Rollback() error {
	if tx.sc == nil || tx.sc.ac == nil {
		return errTxClosed
	}
	err := tx.sc.ac.Rollback(context.Background())
	tx.sc.inTx = false
	tx.sc = nil
	return err
}
