package auroradataapi

import (
	"context"
	"database/sql/driver"
	"io"
	"math/big"
	"reflect"
)

// auroraRows streams a query result through database/sql. Rows may still be
// fetched lazily from a server-side cursor, so outside an explicit transaction
// the enclosing transaction is committed only once the rows are closed.
type auroraRows struct {
	sc            *auroraConn
	cur           *Cursor
	ctx           context.Context
	commitOnClose bool
	closed        bool
}

func (rows *auroraRows) Columns() []string {
	desc := rows.cur.Description()
	names := make([]string, len(desc))
	for i, col := range desc {
		names[i] = col.Name
	}
	return names
}

func (rows *auroraRows) ColumnTypeDatabaseTypeName(index int) string {
	desc := rows.cur.Description()
	if index >= len(desc) {
		return ""
	}
	return desc[index].DatabaseType
}

func (rows *auroraRows) ColumnTypeScanType(index int) reflect.Type {
	desc := rows.cur.Description()
	if index >= len(desc) {
		return reflect.TypeOf("")
	}
	return desc[index].typeCode.scanType()
}

func (rows *auroraRows) Next(dest []driver.Value) error {
	if rows.closed {
		return io.EOF
	}
	row, err := rows.cur.NextRow(rows.ctx)
	if err != nil {
		return err
	}
	for i := range dest {
		if i < len(row) {
			dest[i] = toDriverValue(row[i])
		} else {
			dest[i] = nil
		}
	}
	return nil
}

func (rows *auroraRows) Close() error {
	if rows.closed {
		return nil
	}
	rows.closed = true
	err := rows.cur.Close()
	if rows.commitOnClose && rows.sc != nil && rows.sc.ac != nil {
		if cerr := rows.sc.ac.Commit(rows.ctx); cerr != nil {
			return cerr
		}
	}
	return err
}

// toDriverValue narrows a decoded value to the types driver.Value permits.
// Date and time-of-day values lose their wrapper and decimals are handed over
// in text form.
func toDriverValue(v interface{}) driver.Value {
	switch tv := v.(type) {
	case Date:
		return tv.Time
	case TimeOfDay:
		return tv.Time
	case *big.Float:
		return tv.Text('f', -1)
	case nil, bool, int64, float64, string, []byte:
		return tv
	}
	return v
}
