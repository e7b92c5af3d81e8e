package auroradataapi

// mysqlErrorCodes is the static registry of known MySQL server error codes,
// keyed by the numeric code embedded in the service error message.
var mysqlErrorCodes = map[int]engineError{
	// programming
	1044: {"ER_DBACCESS_DENIED_ERROR", KindProgrammingError},
	1049: {"ER_BAD_DB_ERROR", KindProgrammingError},
	1052: {"ER_NON_UNIQ_ERROR", KindProgrammingError},
	1054: {"ER_BAD_FIELD_ERROR", KindProgrammingError},
	1055: {"ER_WRONG_FIELD_WITH_GROUP", KindProgrammingError},
	1064: {"ER_PARSE_ERROR", KindProgrammingError},
	1065: {"ER_EMPTY_QUERY", KindProgrammingError},
	1066: {"ER_NONUNIQ_TABLE", KindProgrammingError},
	1103: {"ER_WRONG_TABLE_NAME", KindProgrammingError},
	1109: {"ER_UNKNOWN_TABLE", KindProgrammingError},
	1146: {"ER_NO_SUCH_TABLE", KindProgrammingError},
	1149: {"ER_SYNTAX_ERROR", KindProgrammingError},
	1166: {"ER_WRONG_COLUMN_NAME", KindProgrammingError},
	1247: {"ER_ILLEGAL_REFERENCE", KindProgrammingError},
	1305: {"ER_SP_DOES_NOT_EXIST", KindProgrammingError},

	// integrity
	1022: {"ER_DUP_KEY", KindIntegrityError},
	1048: {"ER_BAD_NULL_ERROR", KindIntegrityError},
	1062: {"ER_DUP_ENTRY", KindIntegrityError},
	1169: {"ER_DUP_UNIQUE", KindIntegrityError},
	1216: {"ER_NO_REFERENCED_ROW", KindIntegrityError},
	1217: {"ER_ROW_IS_REFERENCED", KindIntegrityError},
	1451: {"ER_ROW_IS_REFERENCED_2", KindIntegrityError},
	1452: {"ER_NO_REFERENCED_ROW_2", KindIntegrityError},
	1557: {"ER_FOREIGN_DUPLICATE_KEY", KindIntegrityError},
	1586: {"ER_DUP_ENTRY_WITH_KEY_NAME", KindIntegrityError},

	// data
	1264: {"ER_WARN_DATA_OUT_OF_RANGE", KindDataError},
	1265: {"WARN_DATA_TRUNCATED", KindDataError},
	1292: {"ER_TRUNCATED_WRONG_VALUE", KindDataError},
	1365: {"ER_DIVISION_BY_ZERO", KindDataError},
	1366: {"ER_TRUNCATED_WRONG_VALUE_FOR_FIELD", KindDataError},
	1406: {"ER_DATA_TOO_LONG", KindDataError},
	1416: {"ER_CANT_CREATE_GEOMETRY_OBJECT", KindDataError},
	1525: {"ER_WRONG_VALUE", KindDataError},

	// operational
	1028: {"ER_FILSORT_ABORT", KindOperationalError},
	1037: {"ER_OUTOFMEMORY", KindOperationalError},
	1040: {"ER_CON_COUNT_ERROR", KindOperationalError},
	1041: {"ER_OUT_OF_RESOURCES", KindOperationalError},
	1045: {"ER_ACCESS_DENIED_ERROR", KindOperationalError},
	1053: {"ER_SERVER_SHUTDOWN", KindOperationalError},
	1152: {"ER_ABORTING_CONNECTION", KindOperationalError},
	1180: {"ER_ERROR_DURING_COMMIT", KindOperationalError},
	1181: {"ER_ERROR_DURING_ROLLBACK", KindOperationalError},
	1205: {"ER_LOCK_WAIT_TIMEOUT", KindOperationalError},
	1206: {"ER_LOCK_TABLE_FULL", KindOperationalError},
	1213: {"ER_LOCK_DEADLOCK", KindOperationalError},
	1317: {"ER_QUERY_INTERRUPTED", KindOperationalError},
	1637: {"ER_TOO_MANY_CONCURRENT_TRXS", KindOperationalError},

	// internal
	1815: {"ER_INTERNAL_ERROR", KindInternalError},
	1836: {"ER_READ_ONLY_MODE", KindInternalError},

	// not supported
	1112: {"ER_UNSUPPORTED_EXTENSION", KindNotSupportedError},
	1178: {"ER_CHECK_NOT_IMPLEMENTED", KindNotSupportedError},
	1235: {"ER_NOT_SUPPORTED_YET", KindNotSupportedError},
}
