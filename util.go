package auroradataapi

import "database/sql/driver"

func intMin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func intMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func toNamedValues(values []driver.Value) []driver.NamedValue {
	namedValues := make([]driver.NamedValue, len(values))
	for idx, value := range values {
		namedValues[idx] = driver.NamedValue{Name: "", Ordinal: idx + 1, Value: value}
	}
	return namedValues
}

// namedValuesToParams converts database/sql arguments to the named parameter
// map the cursor consumes. Positional arguments have no wire representation.
func namedValuesToParams(args []driver.NamedValue) (map[string]interface{}, error) {
	if len(args) == 0 {
		return nil, nil
	}
	params := make(map[string]interface{}, len(args))
	for _, nv := range args {
		if nv.Name == "" {
			return nil, &AuroraError{
				Kind:    KindNotSupportedError,
				Message: "positional parameters are not supported, use named parameters",
			}
		}
		params[nv.Name] = nv.Value
	}
	return params, nil
}

const maxLoggedSQLLen = 80

// abbrevSQL shortens a statement for log lines.
func abbrevSQL(sql string) string {
	if len(sql) <= maxLoggedSQLLen {
		return sql
	}
	return sql[:maxLoggedSQLLen] + "..."
}
