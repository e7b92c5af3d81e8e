package auroradataapi

// postgresErrorStates is the static registry of known PostgreSQL SQLSTATE
// codes, keyed by the alphanumeric state embedded in the service error
// message. States absent from the registry are classified by their
// two-character class prefix.
var postgresErrorStates = map[string]engineError{
	// class 08 - connection exception
	"08000": {"connection_exception", KindOperationalError},
	"08001": {"sqlclient_unable_to_establish_sqlconnection", KindOperationalError},
	"08003": {"connection_does_not_exist", KindOperationalError},
	"08004": {"sqlserver_rejected_establishment_of_sqlconnection", KindOperationalError},
	"08006": {"connection_failure", KindOperationalError},

	// class 0A - feature not supported
	"0A000": {"feature_not_supported", KindNotSupportedError},

	// class 22 - data exception
	"22000": {"data_exception", KindDataError},
	"22001": {"string_data_right_truncation", KindDataError},
	"22003": {"numeric_value_out_of_range", KindDataError},
	"22007": {"invalid_datetime_format", KindDataError},
	"22008": {"datetime_field_overflow", KindDataError},
	"22012": {"division_by_zero", KindDataError},
	"22019": {"invalid_escape_character", KindDataError},
	"22023": {"invalid_parameter_value", KindDataError},
	"22025": {"invalid_escape_sequence", KindDataError},
	"2201B": {"invalid_regular_expression", KindDataError},
	"22P02": {"invalid_text_representation", KindDataError},

	// class 23 - integrity constraint violation
	"23000": {"integrity_constraint_violation", KindIntegrityError},
	"23001": {"restrict_violation", KindIntegrityError},
	"23502": {"not_null_violation", KindIntegrityError},
	"23503": {"foreign_key_violation", KindIntegrityError},
	"23505": {"unique_violation", KindIntegrityError},
	"23514": {"check_violation", KindIntegrityError},
	"23P01": {"exclusion_violation", KindIntegrityError},

	// class 40 - transaction rollback
	"40001": {"serialization_failure", KindOperationalError},
	"40002": {"transaction_integrity_constraint_violation", KindIntegrityError},
	"40P01": {"deadlock_detected", KindOperationalError},

	// class 42 - syntax error or access rule violation
	"42501": {"insufficient_privilege", KindProgrammingError},
	"42601": {"syntax_error", KindProgrammingError},
	"42622": {"name_too_long", KindProgrammingError},
	"42701": {"duplicate_column", KindProgrammingError},
	"42702": {"ambiguous_column", KindProgrammingError},
	"42703": {"undefined_column", KindProgrammingError},
	"42704": {"undefined_object", KindProgrammingError},
	"42803": {"grouping_error", KindProgrammingError},
	"42804": {"datatype_mismatch", KindProgrammingError},
	"42809": {"wrong_object_type", KindProgrammingError},
	"42846": {"cannot_coerce", KindProgrammingError},
	"42883": {"undefined_function", KindProgrammingError},
	"42939": {"reserved_name", KindProgrammingError},
	"42P01": {"undefined_table", KindProgrammingError},
	"42P02": {"undefined_parameter", KindProgrammingError},
	"42P07": {"duplicate_table", KindProgrammingError},

	// class 53/54/55/57 - resources and operator intervention
	"53000": {"insufficient_resources", KindOperationalError},
	"53100": {"disk_full", KindOperationalError},
	"53200": {"out_of_memory", KindOperationalError},
	"53300": {"too_many_connections", KindOperationalError},
	"54000": {"program_limit_exceeded", KindOperationalError},
	"55000": {"object_not_in_prerequisite_state", KindOperationalError},
	"55006": {"object_in_use", KindOperationalError},
	"55P03": {"lock_not_available", KindOperationalError},
	"57014": {"query_canceled", KindOperationalError},
	"57P01": {"admin_shutdown", KindOperationalError},
	"57P02": {"crash_shutdown", KindOperationalError},
	"57P03": {"cannot_connect_now", KindOperationalError},

	// class XX - internal error
	"XX000": {"internal_error", KindInternalError},
	"XX001": {"data_corrupted", KindInternalError},
	"XX002": {"index_corrupted", KindInternalError},
}
