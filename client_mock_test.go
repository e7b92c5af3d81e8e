package auroradataapi

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rdsdata"
	"github.com/aws/aws-sdk-go-v2/service/rdsdata/types"
)

// mockDataAPI substitutes the service client. Behavior is injected per
// method; unset methods fail the test when called. Every statement executed
// is captured in sqlLog.
type mockDataAPI struct {
	t *testing.T

	beginFn    func(*rdsdata.BeginTransactionInput) (*rdsdata.BeginTransactionOutput, error)
	commitFn   func(*rdsdata.CommitTransactionInput) (*rdsdata.CommitTransactionOutput, error)
	rollbackFn func(*rdsdata.RollbackTransactionInput) (*rdsdata.RollbackTransactionOutput, error)
	executeFn  func(*rdsdata.ExecuteStatementInput) (*rdsdata.ExecuteStatementOutput, error)
	batchFn    func(*rdsdata.BatchExecuteStatementInput) (*rdsdata.BatchExecuteStatementOutput, error)

	sqlLog []string
}

func (m *mockDataAPI) BeginTransaction(_ context.Context, params *rdsdata.BeginTransactionInput, _ ...func(*rdsdata.Options)) (*rdsdata.BeginTransactionOutput, error) {
	if m.beginFn == nil {
		m.t.Fatal("unexpected BeginTransaction call")
	}
	return m.beginFn(params)
}

func (m *mockDataAPI) CommitTransaction(_ context.Context, params *rdsdata.CommitTransactionInput, _ ...func(*rdsdata.Options)) (*rdsdata.CommitTransactionOutput, error) {
	if m.commitFn == nil {
		m.t.Fatal("unexpected CommitTransaction call")
	}
	return m.commitFn(params)
}

func (m *mockDataAPI) RollbackTransaction(_ context.Context, params *rdsdata.RollbackTransactionInput, _ ...func(*rdsdata.Options)) (*rdsdata.RollbackTransactionOutput, error) {
	if m.rollbackFn == nil {
		m.t.Fatal("unexpected RollbackTransaction call")
	}
	return m.rollbackFn(params)
}

func (m *mockDataAPI) ExecuteStatement(_ context.Context, params *rdsdata.ExecuteStatementInput, _ ...func(*rdsdata.Options)) (*rdsdata.ExecuteStatementOutput, error) {
	m.sqlLog = append(m.sqlLog, aws.ToString(params.Sql))
	if m.executeFn == nil {
		m.t.Fatalf("unexpected ExecuteStatement call: %v", aws.ToString(params.Sql))
	}
	return m.executeFn(params)
}

func (m *mockDataAPI) BatchExecuteStatement(_ context.Context, params *rdsdata.BatchExecuteStatementInput, _ ...func(*rdsdata.Options)) (*rdsdata.BatchExecuteStatementOutput, error) {
	m.sqlLog = append(m.sqlLog, aws.ToString(params.Sql))
	if m.batchFn == nil {
		m.t.Fatal("unexpected BatchExecuteStatement call")
	}
	return m.batchFn(params)
}

func testConfig(api DataAPI) *Config {
	return &Config{
		ResourceARN: "arn:aws:rds:us-east-1:123456789012:cluster:test",
		SecretARN:   "arn:aws:secretsmanager:us-east-1:123456789012:secret:test",
		Database:    "testdb",
		PageSize:    defaultPageSize,
		DataAPI:     api,
	}
}

func testCursor(api DataAPI) *Cursor {
	cfg := testConfig(api)
	return &Cursor{api: api, cfg: cfg, txID: "tx-1", PageSize: cfg.PageSize}
}

func badRequest(msg string) error {
	return &types.BadRequestException{Message: aws.String(msg)}
}

func longField(v int64) types.Field {
	return &types.FieldMemberLongValue{Value: v}
}

func stringField(v string) types.Field {
	return &types.FieldMemberStringValue{Value: v}
}

func columnMeta(names ...string) []types.ColumnMetadata {
	meta := make([]types.ColumnMetadata, len(names))
	for i, name := range names {
		meta[i] = types.ColumnMetadata{Name: aws.String(name), TypeName: aws.String("text")}
	}
	return meta
}

// numberedRecords produces single-column long rows for [from, to).
func numberedRecords(from, to int64) [][]types.Field {
	records := make([][]types.Field, 0, to-from)
	for i := from; i < to; i++ {
		records = append(records, []types.Field{longField(i)})
	}
	return records
}

func singleColumnMeta(name, typeName string) []types.ColumnMetadata {
	return []types.ColumnMetadata{{Name: aws.String(name), TypeName: aws.String(typeName)}}
}
