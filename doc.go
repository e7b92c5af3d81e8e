/*
Package auroradataapi is a client for Aurora Serverless clusters reached
through the RDS Data API, an HTTPS service that executes one SQL statement per
request. It offers a cursor API mirroring that model directly, and a
database/sql driver registered under the name "auroradataapi".

# Connection string

The driver accepts DSNs of the form

	<resource-arn>/<database>?secret_arn=<secret-arn>&region=<region>

with the optional parameters charset, continue_after_timeout and page_size.
The resource ARN and secret ARN may also come from the AURORA_CLUSTER_ARN and
AURORA_SECRET_ARN environment variables. AWS credentials resolve through the
default SDK chain.

# Parameters

Statements take named parameters only; bind them with sql.Named or through
Cursor.Execute's parameter map. Positional placeholders are rejected. Go
values map onto the wire types the service understands: integers become long
values, []byte becomes a blob, time.Time is sent as a hinted timestamp, and
the Date, TimeOfDay and *big.Float types carry DATE, TIME and DECIMAL hints.

# Large results

The service caps response size and refuses queries whose results exceed it.
When that happens the query transparently restarts through a server-side
scrollable cursor and rows are fetched page by page, halving the page size on
oversized pages. This fallback requires PostgreSQL. Because rows then stream
against the open transaction, a Rows returned outside an explicit transaction
commits when closed; always close it.

# Transactions

A Connection holds at most one server-side transaction, begun lazily by its
first cursor and ended by Commit or Rollback. Through database/sql the usual
Begin/Commit/Rollback applies; statements outside a transaction auto-commit.
Read-only transactions and non-default isolation levels are not supported.

Connections and cursors are not safe for concurrent use; database/sql's pool
provides concurrency by handing each goroutine its own connection.
*/
package auroradataapi
