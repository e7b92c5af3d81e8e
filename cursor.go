package auroradataapi

import (
	"context"
	"io"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rdsdata"
	"github.com/aws/aws-sdk-go-v2/service/rdsdata/types"
)

// maxBatchSize is the largest number of parameter sets the service accepts in
// one batch-execute request.
const maxBatchSize = 1000

// Cursor executes statements inside its Connection's transaction and exposes
// the results as a lazily produced sequence of rows. A Cursor is not safe for
// concurrent use.
type Cursor struct {
	api  DataAPI
	cfg  *Config
	txID string

	// PageSize is the number of records requested per page when a query
	// falls back to server-side pagination. Default 1000.
	PageSize int

	description []ColumnDescription
	rows        [][]interface{}
	rowIndex    int
	responded   bool
	hasRecords  bool
	affected    int64
	generated   []types.Field
	paging      *pagingState
	exhausted   bool
}

func (cur *Cursor) reset() {
	cur.rows = nil
	cur.rowIndex = 0
	cur.responded = false
	cur.hasRecords = false
	cur.affected = 0
	cur.generated = nil
	cur.paging = nil
	cur.exhausted = false
}

// Execute runs one statement with the given named parameters. Results, if
// any, are consumed afterwards through NextRow or the Fetch methods. When the
// service reports that the result requires pagination or exceeds the response
// size limit, the query transparently restarts through a server-side cursor.
func (cur *Cursor) Execute(ctx context.Context, query string, params map[string]interface{}) error {
	cur.reset()
	args := cur.prepareExecuteArgs(query)
	args.IncludeResultMetadata = true
	args.ContinueAfterTimeout = cur.cfg.ContinueAfterTimeout
	if len(params) > 0 {
		args.Parameters = formatParameterSet(params)
	}
	logger.WithContext(ctx).Debugf("execute %v", abbrevSQL(query))
	res, err := cur.api.ExecuteStatement(ctx, args)
	if err != nil {
		switch {
		case isPaginationRequired(err):
			return cur.startPaginatedQuery(ctx, args, cur.PageSize)
		case isOversizeResponse(err):
			return cur.startPaginatedQuery(ctx, args, intMax(1, cur.PageSize/2))
		default:
			return classifyError(err)
		}
	}
	if res.ColumnMetadata != nil {
		cur.setDescription(res.ColumnMetadata)
	}
	cur.responded = true
	cur.hasRecords = res.Records != nil
	cur.affected = res.NumberOfRecordsUpdated
	cur.generated = res.GeneratedFields
	if res.Records != nil {
		cur.rows, err = cur.renderRecords(res.Records)
		if err != nil {
			return err
		}
	}
	return nil
}

// ExecuteMany runs one statement once per parameter set. Parameter sets are
// partitioned into batches of at most 1000 and sent sequentially; the first
// failure aborts the remaining batches. ExecuteMany never produces rows.
func (cur *Cursor) ExecuteMany(ctx context.Context, query string, paramSets []map[string]interface{}) error {
	cur.reset()
	logger.WithContext(ctx).Debugf("executemany %v", abbrevSQL(query))
	for start := 0; start < len(paramSets); start += maxBatchSize {
		end := intMin(start+maxBatchSize, len(paramSets))
		sets := make([][]types.SqlParameter, 0, end-start)
		for _, p := range paramSets[start:end] {
			sets = append(sets, formatParameterSet(p))
		}
		args := &rdsdata.BatchExecuteStatementInput{
			ResourceArn:   aws.String(cur.cfg.ResourceARN),
			SecretArn:     aws.String(cur.cfg.SecretARN),
			Sql:           aws.String(query),
			ParameterSets: sets,
		}
		if cur.cfg.Database != "" {
			args.Database = aws.String(cur.cfg.Database)
		}
		if cur.txID != "" {
			args.TransactionId = aws.String(cur.txID)
		}
		if _, err := cur.api.BatchExecuteStatement(ctx, args); err != nil {
			return classifyError(err)
		}
	}
	return nil
}

// NextRow returns the next result row, fetching the next page first when the
// query is being streamed through a server-side cursor. It returns io.EOF
// once the sequence is exhausted; the sequence is consumed exactly once and
// further calls keep returning io.EOF.
func (cur *Cursor) NextRow(ctx context.Context) ([]interface{}, error) {
	for {
		if cur.rowIndex < len(cur.rows) {
			row := cur.rows[cur.rowIndex]
			cur.rowIndex++
			return row, nil
		}
		if cur.paging == nil || cur.exhausted {
			cur.exhausted = true
			return nil, io.EOF
		}
		if err := cur.fetchPage(ctx); err != nil {
			return nil, err
		}
	}
}

// FetchOne returns the next row, or nil once the cursor is exhausted.
func (cur *Cursor) FetchOne(ctx context.Context) ([]interface{}, error) {
	row, err := cur.NextRow(ctx)
	if err == io.EOF {
		return nil, nil
	}
	return row, err
}

// FetchMany returns up to size rows. A non-positive size defaults to the
// cursor's page size.
func (cur *Cursor) FetchMany(ctx context.Context, size int) ([][]interface{}, error) {
	if size <= 0 {
		size = cur.PageSize
	}
	results := make([][]interface{}, 0, intMin(size, 64))
	for len(results) < size {
		row, err := cur.FetchOne(ctx)
		if err != nil {
			return nil, err
		}
		if row == nil {
			break
		}
		results = append(results, row)
	}
	return results, nil
}

// FetchAll returns all remaining rows.
func (cur *Cursor) FetchAll(ctx context.Context) ([][]interface{}, error) {
	var results [][]interface{}
	for {
		row, err := cur.FetchOne(ctx)
		if err != nil {
			return nil, err
		}
		if row == nil {
			return results, nil
		}
		results = append(results, row)
	}
}

// RowCount returns the number of rows of a directly captured result, the
// affected-row count of a mutating statement, or -1 when unknown. The count
// of a paginated result is never materialized and reports -1.
func (cur *Cursor) RowCount() int64 {
	if !cur.responded {
		return -1
	}
	if cur.hasRecords {
		return int64(len(cur.rows))
	}
	return cur.affected
}

// LastRowID returns the decoded value of the last generated field of the
// previous statement, or nil when it generated none.
func (cur *Cursor) LastRowID() (interface{}, error) {
	if !cur.responded || len(cur.generated) == 0 {
		return nil, nil
	}
	return renderValue(cur.generated[len(cur.generated)-1], typeString)
}

// Description returns the column descriptions of the current result, or nil
// when no column metadata has been seen yet.
func (cur *Cursor) Description() []ColumnDescription {
	return cur.description
}

// Close releases the cursor's local resources. It has no remote effect; a
// server-side cursor left open is disposed with the enclosing transaction.
func (cur *Cursor) Close() error {
	cur.rows = nil
	cur.paging = nil
	cur.exhausted = true
	return nil
}

func (cur *Cursor) prepareExecuteArgs(query string) *rdsdata.ExecuteStatementInput {
	args := &rdsdata.ExecuteStatementInput{
		ResourceArn: aws.String(cur.cfg.ResourceARN),
		SecretArn:   aws.String(cur.cfg.SecretARN),
		Sql:         aws.String(query),
	}
	if cur.cfg.Database != "" {
		args.Database = aws.String(cur.cfg.Database)
	}
	if cur.txID != "" {
		args.TransactionId = aws.String(cur.txID)
	}
	return args
}

// formatParameterSet encodes named parameters in name order so that request
// bodies are deterministic.
func formatParameterSet(params map[string]interface{}) []types.SqlParameter {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]types.SqlParameter, 0, len(params))
	for _, name := range names {
		out = append(out, prepareParam(name, params[name]))
	}
	return out
}

func (cur *Cursor) setDescription(metadata []types.ColumnMetadata) {
	cur.description = make([]ColumnDescription, 0, len(metadata))
	for _, column := range metadata {
		typeName := aws.ToString(column.TypeName)
		cur.description = append(cur.description, ColumnDescription{
			Name:         aws.ToString(column.Name),
			DatabaseType: strings.ToUpper(typeName),
			typeCode:     columnTypeOf(typeName),
		})
	}
}

// renderRecords decodes every value of every record through the converter,
// using the matching column description to disambiguate textual scalars.
func (cur *Cursor) renderRecords(records [][]types.Field) ([][]interface{}, error) {
	rows := make([][]interface{}, len(records))
	for i, record := range records {
		row := make([]interface{}, len(record))
		for j, field := range record {
			ct := typeString
			if j < len(cur.description) {
				ct = cur.description[j].typeCode
			}
			value, err := renderValue(field, ct)
			if err != nil {
				return nil, err
			}
			row[j] = value
		}
		rows[i] = row
	}
	return rows, nil
}
