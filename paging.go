package auroradataapi

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rdsdata"
	"github.com/google/uuid"
)

// Scroll modes accepted by Cursor.Scroll, composed directly into the MOVE
// statement driving the server-side cursor.
const (
	ScrollRelative = "relative"
	ScrollAbsolute = "absolute"
	ScrollForward  = "forward"
	ScrollBackward = "backward"
)

// pagingState tracks a query being streamed through a server-side named
// cursor: the replayable request arguments, the generated cursor name and the
// current page size. It exists only while such a query is in progress.
type pagingState struct {
	args           *rdsdata.ExecuteStatementInput
	cursorName     string
	recordsPerPage int
}

// subRequest returns a copy of the stored arguments carrying the given
// statement, for one FETCH or MOVE against the named cursor.
func (ps *pagingState) subRequest(sql string) *rdsdata.ExecuteStatementInput {
	args := *ps.args
	args.Sql = aws.String(sql)
	return &args
}

// startPaginatedQuery wraps the failed statement in a DECLARE ... SCROLL
// CURSOR form and records the paging state; rows are then produced by the
// fetch loop. Server-side cursors are a PostgreSQL feature: MySQL cursors are
// non-scrollable and cannot back this fallback.
func (cur *Cursor) startPaginatedQuery(ctx context.Context, args *rdsdata.ExecuteStatementInput, recordsPerPage int) error {
	name := fmt.Sprintf("auroradataapi_%d_%s", time.Now().Unix(), cursorNameSuffix())
	declare := *args
	declare.Sql = aws.String("DECLARE " + name + " SCROLL CURSOR FOR " + aws.ToString(args.Sql))
	logger.WithContext(ctx).Debugf("declaring server-side cursor %v", name)
	if _, err := cur.api.ExecuteStatement(ctx, &declare); err != nil {
		return classifyError(err)
	}
	cur.paging = &pagingState{
		args:           &declare,
		cursorName:     name,
		recordsPerPage: recordsPerPage,
	}
	return nil
}

// cursorNameSuffix makes cursor names unique across concurrent cursors
// declared within the same transaction and second.
func cursorNameSuffix() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

// fetchPage issues one FETCH against the named cursor and captures its rows.
// An oversize-response failure at a page size above 1 is recoverable: the
// server-side cursor is rewound by the page just attempted, the page size is
// halved and the fetch retried. At page size 1 the failure is fatal. An empty
// page marks the sequence exhausted.
func (cur *Cursor) fetchPage(ctx context.Context) error {
	ps := cur.paging
	for {
		logger.WithContext(ctx).Debugf("fetching page of %d records for auto-paginated query", ps.recordsPerPage)
		args := ps.subRequest(fmt.Sprintf("FETCH %d FROM %s", ps.recordsPerPage, ps.cursorName))
		page, err := cur.api.ExecuteStatement(ctx, args)
		if err != nil {
			if isOversizeResponse(err) && ps.recordsPerPage > 1 {
				// rewind the cursor to read the page again
				if serr := cur.Scroll(ctx, -ps.recordsPerPage, ScrollRelative); serr != nil {
					return serr
				}
				logger.WithContext(ctx).Debug("halving records per page")
				ps.recordsPerPage /= 2
				continue
			}
			return classifyError(err)
		}
		if page.ColumnMetadata != nil && cur.description == nil {
			cur.setDescription(page.ColumnMetadata)
		}
		if len(page.Records) == 0 {
			cur.rows = nil
			cur.rowIndex = 0
			cur.exhausted = true
			return nil
		}
		rows, err := cur.renderRecords(page.Records)
		if err != nil {
			return err
		}
		cur.rows = rows
		cur.rowIndex = 0
		return nil
	}
}

// Scroll moves the server-side cursor by the given offset without producing
// rows. It is only valid while a query is being streamed through a
// server-side cursor.
func (cur *Cursor) Scroll(ctx context.Context, offset int, mode string) error {
	if cur.paging == nil {
		return &InterfaceError{Message: "cursor scroll attempted but pagination is not active"}
	}
	if mode == "" {
		mode = ScrollRelative
	}
	stmt := fmt.Sprintf("MOVE %s %d FROM %s", strings.ToUpper(mode), offset, cur.paging.cursorName)
	logger.WithContext(ctx).Debugf("scrolling cursor %v by %d rows", mode, offset)
	if _, err := cur.api.ExecuteStatement(ctx, cur.paging.subRequest(stmt)); err != nil {
		return classifyError(err)
	}
	return nil
}
