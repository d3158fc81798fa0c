package usecase

import "fmt"

// Stable machine-readable error codes exposed to clients.
const (
	CodeNotFound           = "NOT_FOUND"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInvalidArgument    = "INVALID_ARGUMENT"
	CodeQuotaExceeded      = "QUOTA_EXCEEDED"
	CodeUpstreamFailure    = "UPSTREAM_FAILURE"
	CodePersistenceFailure = "PERSISTENCE_FAILURE"
)

// DomainError: the request itself is wrong (validation, unknown user,
// bad format). Clients can fix these.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError: our side or an upstream broke. The code tells clients
// whether it is our bug (PERSISTENCE_FAILURE) or their API being down
// (UPSTREAM_FAILURE).
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

// QuotaExceededError carries the usage snapshot so the client can show
// "you have N leads remaining" without a second round trip.
type QuotaExceededError struct {
	Used      int
	Limit     int
	Remaining int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("monthly lead limit reached: %d of %d used, %d remaining", e.Used, e.Limit, e.Remaining)
}

func IsQuotaExceeded(err error) bool {
	_, ok := err.(*QuotaExceededError)
	return ok
}
