package cerror

import "github.com/gofiber/fiber/v2"

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindMissingRoleFields
	KindDuplicateEmail
	KindInvalidOrExpiredOTP
	KindInvalidCredentials
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindTooManyRequests
)

var kindNames = map[Kind]string{
	KindInternal:            "InternalError",
	KindValidation:          "ValidationError",
	KindMissingRoleFields:   "MissingRoleFields",
	KindDuplicateEmail:      "DuplicateEmail",
	KindInvalidOrExpiredOTP: "InvalidOrExpiredOTP",
	KindInvalidCredentials:  "InvalidCredentials",
	KindUnauthenticated:     "Unauthenticated",
	KindForbidden:           "Forbidden",
	KindNotFound:            "NotFound",
	KindTooManyRequests:     "TooManyRequests",
}

var kindStatuses = map[Kind]int{
	KindInternal:            fiber.StatusInternalServerError,
	KindValidation:          fiber.StatusBadRequest,
	KindMissingRoleFields:   fiber.StatusBadRequest,
	KindDuplicateEmail:      fiber.StatusBadRequest,
	KindInvalidOrExpiredOTP: fiber.StatusBadRequest,
	KindInvalidCredentials:  fiber.StatusUnauthorized,
	KindUnauthenticated:     fiber.StatusUnauthorized,
	KindForbidden:           fiber.StatusForbidden,
	KindNotFound:            fiber.StatusNotFound,
	KindTooManyRequests:     fiber.StatusTooManyRequests,
}

var kindMessages = map[Kind]string{
	KindInternal:            "internal server error",
	KindValidation:          "malformed request body",
	KindMissingRoleFields:   "missing required fields for role",
	KindDuplicateEmail:      "email already registered",
	KindInvalidOrExpiredOTP: "invalid or expired otp",
	KindInvalidCredentials:  "invalid email or password",
	KindUnauthenticated:     "authentication required",
	KindForbidden:           "access denied",
	KindNotFound:            "not found",
	KindTooManyRequests:     "too many requests",
}

func (k Kind) String() string {
	name, ok := kindNames[k]
	if !ok {
		return kindNames[KindInternal]
	}
	return name
}

// HttpStatus is the single place where error kinds become HTTP status codes.
func (k Kind) HttpStatus() int {
	status, ok := kindStatuses[k]
	if !ok {
		return fiber.StatusInternalServerError
	}
	return status
}

func (k Kind) DefaultMessage() string {
	message, ok := kindMessages[k]
	if !ok {
		return kindMessages[KindInternal]
	}
	return message
}
