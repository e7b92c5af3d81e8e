package auroradataapi

// auroraResult carries the outcome of a mutating statement. A value of -1
// means the service did not report the figure.
type auroraResult struct {
	affectedRows int64
	insertID     int64
}

func (res *auroraResult) LastInsertId() (int64, error) {
	return res.insertID, nil
}

func (res *auroraResult) RowsAffected() (int64, error) {
	return res.affectedRows, nil
}
