package auroradataapi

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rdsdata"
	"github.com/aws/aws-sdk-go-v2/service/rdsdata/types"
)

func TestCursorExecuteQuery(t *testing.T) {
	ctx := context.Background()
	mock := &mockDataAPI{t: t}
	mock.executeFn = func(in *rdsdata.ExecuteStatementInput) (*rdsdata.ExecuteStatementOutput, error) {
		assertEqualE(t, aws.ToString(in.Sql), "SELECT id, name FROM users")
		assertEqualE(t, aws.ToString(in.TransactionId), "tx-1")
		assertTrueE(t, in.IncludeResultMetadata)
		return &rdsdata.ExecuteStatementOutput{
			ColumnMetadata: []types.ColumnMetadata{
				{Name: aws.String("id"), TypeName: aws.String("int8")},
				{Name: aws.String("name"), TypeName: aws.String("varchar")},
			},
			Records: [][]types.Field{
				{longField(1), stringField("alpha")},
				{longField(2), stringField("beta")},
			},
		}, nil
	}
	cur := testCursor(mock)

	assertNilF(t, cur.Execute(ctx, "SELECT id, name FROM users", nil))
	assertEqualE(t, cur.RowCount(), int64(2))

	desc := cur.Description()
	assertEqualF(t, len(desc), 2)
	assertEqualE(t, desc[0].Name, "id")
	assertEqualE(t, desc[0].DatabaseType, "INT8")
	assertEqualE(t, desc[1].Name, "name")

	row, err := cur.NextRow(ctx)
	assertNilF(t, err)
	assertDeepEqualE(t, row, []interface{}{int64(1), "alpha"})
	row, err = cur.NextRow(ctx)
	assertNilF(t, err)
	assertDeepEqualE(t, row, []interface{}{int64(2), "beta"})

	_, err = cur.NextRow(ctx)
	assertErrIsE(t, err, io.EOF)
	// exhaustion is final
	_, err = cur.NextRow(ctx)
	assertErrIsE(t, err, io.EOF)
}

func TestCursorExecuteNamedParams(t *testing.T) {
	ctx := context.Background()
	mock := &mockDataAPI{t: t}
	mock.executeFn = func(in *rdsdata.ExecuteStatementInput) (*rdsdata.ExecuteStatementOutput, error) {
		assertEqualF(t, len(in.Parameters), 2)
		// parameters are sorted by name
		assertEqualE(t, aws.ToString(in.Parameters[0].Name), "id")
		assertDeepEqualE(t, in.Parameters[0].Value, types.Field(&types.FieldMemberLongValue{Value: 9}))
		assertEqualE(t, aws.ToString(in.Parameters[1].Name), "name")
		assertDeepEqualE(t, in.Parameters[1].Value, types.Field(&types.FieldMemberStringValue{Value: "x"}))
		return &rdsdata.ExecuteStatementOutput{NumberOfRecordsUpdated: 1}, nil
	}
	cur := testCursor(mock)
	err := cur.Execute(ctx, "UPDATE users SET name = :name WHERE id = :id",
		map[string]interface{}{"name": "x", "id": 9})
	assertNilF(t, err)
	assertEqualE(t, cur.RowCount(), int64(1))
}

func TestCursorRowCount(t *testing.T) {
	ctx := context.Background()
	mock := &mockDataAPI{t: t}

	cur := testCursor(mock)
	// nothing executed yet
	assertEqualE(t, cur.RowCount(), int64(-1))

	mock.executeFn = func(in *rdsdata.ExecuteStatementInput) (*rdsdata.ExecuteStatementOutput, error) {
		return &rdsdata.ExecuteStatementOutput{NumberOfRecordsUpdated: 3}, nil
	}
	assertNilF(t, cur.Execute(ctx, "DELETE FROM users", nil))
	assertEqualE(t, cur.RowCount(), int64(3))

	mock.executeFn = func(in *rdsdata.ExecuteStatementInput) (*rdsdata.ExecuteStatementOutput, error) {
		return &rdsdata.ExecuteStatementOutput{
			ColumnMetadata: columnMeta("n"),
			Records:        numberedRecords(0, 5),
		}, nil
	}
	assertNilF(t, cur.Execute(ctx, "SELECT n FROM t", nil))
	assertEqualE(t, cur.RowCount(), int64(5))
}

func TestCursorLastRowID(t *testing.T) {
	ctx := context.Background()
	mock := &mockDataAPI{t: t}
	mock.executeFn = func(in *rdsdata.ExecuteStatementInput) (*rdsdata.ExecuteStatementOutput, error) {
		return &rdsdata.ExecuteStatementOutput{
			NumberOfRecordsUpdated: 1,
			GeneratedFields:        []types.Field{longField(41), longField(42)},
		}, nil
	}
	cur := testCursor(mock)
	assertNilF(t, cur.Execute(ctx, "INSERT INTO t (v) VALUES (1)", nil))
	id, err := cur.LastRowID()
	assertNilF(t, err)
	assertEqualE(t, id, int64(42))
}

func TestCursorLastRowIDNoneGenerated(t *testing.T) {
	ctx := context.Background()
	mock := &mockDataAPI{t: t}
	mock.executeFn = func(in *rdsdata.ExecuteStatementInput) (*rdsdata.ExecuteStatementOutput, error) {
		return &rdsdata.ExecuteStatementOutput{NumberOfRecordsUpdated: 1}, nil
	}
	cur := testCursor(mock)
	assertNilF(t, cur.Execute(ctx, "UPDATE t SET v = 1", nil))
	id, err := cur.LastRowID()
	assertNilF(t, err)
	assertNilE(t, id)
}

func TestCursorFetchVariants(t *testing.T) {
	ctx := context.Background()
	mock := &mockDataAPI{t: t}
	mock.executeFn = func(in *rdsdata.ExecuteStatementInput) (*rdsdata.ExecuteStatementOutput, error) {
		return &rdsdata.ExecuteStatementOutput{
			ColumnMetadata: columnMeta("n"),
			Records:        numberedRecords(0, 7),
		}, nil
	}
	cur := testCursor(mock)

	assertNilF(t, cur.Execute(ctx, "SELECT n FROM t", nil))
	row, err := cur.FetchOne(ctx)
	assertNilF(t, err)
	assertDeepEqualE(t, row, []interface{}{int64(0)})

	rows, err := cur.FetchMany(ctx, 3)
	assertNilF(t, err)
	assertEqualF(t, len(rows), 3)
	assertDeepEqualE(t, rows[2], []interface{}{int64(3)})

	rows, err = cur.FetchAll(ctx)
	assertNilF(t, err)
	assertEqualF(t, len(rows), 3)
	assertDeepEqualE(t, rows[2], []interface{}{int64(6)})

	// nil past the end, not an error
	row, err = cur.FetchOne(ctx)
	assertNilF(t, err)
	assertNilE(t, row)
}

func TestCursorDescriptionSurvivesReset(t *testing.T) {
	ctx := context.Background()
	mock := &mockDataAPI{t: t}
	mock.executeFn = func(in *rdsdata.ExecuteStatementInput) (*rdsdata.ExecuteStatementOutput, error) {
		return &rdsdata.ExecuteStatementOutput{
			ColumnMetadata: columnMeta("n"),
			Records:        numberedRecords(0, 1),
		}, nil
	}
	cur := testCursor(mock)
	assertNilF(t, cur.Execute(ctx, "SELECT n FROM t", nil))
	assertEqualF(t, len(cur.Description()), 1)

	mock.executeFn = func(in *rdsdata.ExecuteStatementInput) (*rdsdata.ExecuteStatementOutput, error) {
		return &rdsdata.ExecuteStatementOutput{NumberOfRecordsUpdated: 1}, nil
	}
	// a statement without metadata leaves the previous description in place
	assertNilF(t, cur.Execute(ctx, "UPDATE t SET v = 1", nil))
	assertEqualE(t, len(cur.Description()), 1)
}

func TestCursorExecuteClassifiedError(t *testing.T) {
	ctx := context.Background()
	mock := &mockDataAPI{t: t}
	mock.executeFn = func(in *rdsdata.ExecuteStatementInput) (*rdsdata.ExecuteStatementOutput, error) {
		return nil, badRequest("ERROR: relation \"t\" does not exist; Position: 15; SQLState: 42P01")
	}
	cur := testCursor(mock)
	err := cur.Execute(ctx, "SELECT * FROM t", nil)
	var ae *AuroraError
	assertTrueF(t, errors.As(err, &ae))
	assertEqualE(t, ae.Kind, KindProgrammingError)
	assertEqualE(t, ae.Name, "undefined_table")
}

func TestCursorExecuteMany(t *testing.T) {
	ctx := context.Background()
	mock := &mockDataAPI{t: t}
	var batchSizes []int
	mock.batchFn = func(in *rdsdata.BatchExecuteStatementInput) (*rdsdata.BatchExecuteStatementOutput, error) {
		batchSizes = append(batchSizes, len(in.ParameterSets))
		assertEqualE(t, aws.ToString(in.TransactionId), "tx-1")
		return &rdsdata.BatchExecuteStatementOutput{}, nil
	}
	cur := testCursor(mock)

	paramSets := make([]map[string]interface{}, 2500)
	for i := range paramSets {
		paramSets[i] = map[string]interface{}{"v": i}
	}
	assertNilF(t, cur.ExecuteMany(ctx, "INSERT INTO t (v) VALUES (:v)", paramSets))
	assertDeepEqualE(t, batchSizes, []int{1000, 1000, 500})
}

func TestCursorExecuteManyAbortsOnFailure(t *testing.T) {
	ctx := context.Background()
	mock := &mockDataAPI{t: t}
	calls := 0
	mock.batchFn = func(in *rdsdata.BatchExecuteStatementInput) (*rdsdata.BatchExecuteStatementOutput, error) {
		calls++
		if calls == 2 {
			return nil, badRequest("Duplicate entry '7' for key 'PRIMARY'; Error code: 1062; SQLState: 23000")
		}
		return &rdsdata.BatchExecuteStatementOutput{}, nil
	}
	cur := testCursor(mock)

	paramSets := make([]map[string]interface{}, 3000)
	for i := range paramSets {
		paramSets[i] = map[string]interface{}{"v": i}
	}
	err := cur.ExecuteMany(ctx, "INSERT INTO t (v) VALUES (:v)", paramSets)
	assertNotNilF(t, err)
	assertEqualE(t, calls, 2, "third batch must not be sent")
	var ae *AuroraError
	assertTrueF(t, errors.As(err, &ae))
	assertEqualE(t, ae.Kind, KindIntegrityError)
}

func TestCursorScrollWithoutPagination(t *testing.T) {
	cur := testCursor(&mockDataAPI{t: t})
	err := cur.Scroll(context.Background(), 5, ScrollRelative)
	var ie *InterfaceError
	assertTrueF(t, errors.As(err, &ie))
}
