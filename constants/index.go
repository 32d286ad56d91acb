package constants

const (
	INVALID_EMAIL              = "Email does not exist"
	INVALID_PASSWORD           = "Password is incorrect"
	EMAIL_ALREADY_EXISTS       = "Email already registered"
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_PARSE_DATA_TO_LOCALS = "Could not read parsed input from context"
	DATA_INPUT_IS_NOT_NUMBER   = "Parameter must be a number"
	PERMISSION_DENIED          = "You do not have permission to perform this action"
	AUTHENTICATION_REQUIRED    = "Authentication required"
	RECORD_NOT_FOUND           = "Record not found"
)
