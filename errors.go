package auroradataapi

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/rdsdata/types"
	"github.com/aws/smithy-go"
)

// ErrorKind is the taxonomy of server-reported failures.
type ErrorKind int

const (
	// KindDatabaseError is the generic kind used when no engine code pattern matches.
	KindDatabaseError ErrorKind = iota
	// KindDataError indicates a problem with the processed data, e.g. numeric value out of range.
	KindDataError
	// KindOperationalError indicates a failure related to the database's operation, e.g. a lost connection.
	KindOperationalError
	// KindIntegrityError indicates a violated relational integrity constraint.
	KindIntegrityError
	// KindInternalError indicates an internal database engine failure.
	KindInternalError
	// KindProgrammingError indicates a programming mistake, e.g. a syntax error or missing table.
	KindProgrammingError
	// KindNotSupportedError indicates use of a feature the engine does not support.
	KindNotSupportedError
)

func (k ErrorKind) String() string {
	switch k {
	case KindDataError:
		return "DataError"
	case KindOperationalError:
		return "OperationalError"
	case KindIntegrityError:
		return "IntegrityError"
	case KindInternalError:
		return "InternalError"
	case KindProgrammingError:
		return "ProgrammingError"
	case KindNotSupportedError:
		return "NotSupportedError"
	}
	return "DatabaseError"
}

// AuroraError is an error type carrying the engine-specific information
// extracted from a failed Data API request.
type AuroraError struct {
	Kind     ErrorKind
	Code     int    // MySQL error code. 0 when the failure is not MySQL-shaped
	SQLState string // SQL state reported by the engine, if any
	Name     string // engine error name, e.g. ER_PARSE_ERROR or undefined_table
	Message  string
	Response error // original service error, for caller inspection
}

func (ae *AuroraError) Error() string {
	if ae.Name != "" {
		return fmt.Sprintf("%s: %s (%s): %s", ae.Kind, ae.Name, ae.SQLState, ae.Message)
	}
	return fmt.Sprintf("%s: %s", ae.Kind, ae.Message)
}

func (ae *AuroraError) Unwrap() error {
	return ae.Response
}

// InterfaceError reports a misuse of the client API rather than a failure
// reported by the service.
type InterfaceError struct {
	Message string
}

func (ie *InterfaceError) Error() string {
	return ie.Message
}

const (
	msgPaginationRequired = "Please paginate your query"
	msgResponseSizeLimit  = "Database returned more than the allowed response size limit"
)

var (
	// MySQL embeds a numeric error code and a numeric SQL state at the end of the message.
	mysqlErrorPattern = regexp.MustCompile(`Error code: (\d+); SQLState: (\d+)$`)
	// PostgreSQL embeds a position marker and an alphanumeric SQL state at the end of the message.
	postgresErrorPattern = regexp.MustCompile(`ERROR: .*(?:\n |;) Position: (\d+); SQLState: (\w+)$`)
)

// engineError is one entry of a static engine error registry.
type engineError struct {
	name string
	kind ErrorKind
}

// isEngineFailure reports whether origin is one of the service failure shapes
// that carry an engine error message.
func isEngineFailure(origin error) bool {
	var badReq *types.BadRequestException
	var dbErr *types.DatabaseErrorException
	return errors.As(origin, &badReq) || errors.As(origin, &dbErr)
}

func isPaginationRequired(origin error) bool {
	return isEngineFailure(origin) && strings.Contains(origin.Error(), msgPaginationRequired)
}

func isOversizeResponse(origin error) bool {
	return isEngineFailure(origin) && strings.Contains(origin.Error(), msgResponseSizeLimit)
}

func serviceErrorMessage(origin error) string {
	var apiErr smithy.APIError
	if errors.As(origin, &apiErr) {
		return apiErr.ErrorMessage()
	}
	return ""
}

// classifyError resolves the opaque service error message into a typed
// AuroraError. The original error stays reachable through Unwrap.
func classifyError(origin error) *AuroraError {
	msg := serviceErrorMessage(origin)
	if m := mysqlErrorPattern.FindStringSubmatch(msg); m != nil {
		code, err := strconv.Atoi(m[1])
		if err == nil {
			ae := &AuroraError{
				Kind:     KindDatabaseError,
				Code:     code,
				SQLState: m[2],
				Message:  msg,
				Response: origin,
			}
			if entry, ok := mysqlErrorCodes[code]; ok {
				ae.Kind = entry.kind
				ae.Name = entry.name
			}
			return ae
		}
	}
	if m := postgresErrorPattern.FindStringSubmatch(msg); m != nil {
		state := m[2]
		ae := &AuroraError{
			Kind:     stateClassKind(state),
			SQLState: state,
			Message:  msg,
			Response: origin,
		}
		if entry, ok := postgresErrorStates[state]; ok {
			ae.Kind = entry.kind
			ae.Name = entry.name
		}
		return ae
	}
	if msg == "" {
		msg = origin.Error()
	}
	return &AuroraError{Kind: KindDatabaseError, Message: msg, Response: origin}
}

// stateClassKind derives the error kind from the two-character SQLSTATE class
// when the state itself is not in the registry.
func stateClassKind(state string) ErrorKind {
	if len(state) < 2 {
		return KindDatabaseError
	}
	switch state[:2] {
	case "22":
		return KindDataError
	case "23":
		return KindIntegrityError
	case "42":
		return KindProgrammingError
	case "0A":
		return KindNotSupportedError
	case "08", "40", "53", "54", "55", "57", "58":
		return KindOperationalError
	case "XX":
		return KindInternalError
	}
	return KindDatabaseError
}
