package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Authentication/authorization codes. The 401-vs-403 split is a hard
// contract: UNAUTHORIZED means identity could not be established, FORBIDDEN
// means the identity is known and the action is not allowed.
const (
	// ErrCodeUnauthorized indicates the caller's identity could not be established.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// ErrCodeForbidden indicates an authenticated caller the policy denies.
	ErrCodeForbidden ErrorCode = "FORBIDDEN"
	// ErrCodeTokenExpired indicates the bearer token has expired.
	ErrCodeTokenExpired ErrorCode = "TOKEN_EXPIRED"
	// ErrCodeInvalidToken indicates a malformed or forged bearer token.
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
)

// Resource and validation codes.
const (
	// ErrCodeNotFound indicates the requested resource or route was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Internal codes.
const (
	// ErrCodeInternal indicates an unexpected server failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
	// ErrCodeTimeout indicates the request exceeded its deadline.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeTimeout: true,
}

// IsRetryableCode reports whether operations failing with this code may be
// retried by the caller.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
