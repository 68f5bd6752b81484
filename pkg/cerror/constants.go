package cerror

import (
	"go.uber.org/zap/zapcore"
)

// Shared failures. Use With to attach fields, never mutate these in place.
var (
	ErrorBadRequest = &CustomError{
		Kind:        KindValidation,
		Message:     KindValidation.DefaultMessage(),
		LogMessage:  "malformed request body or query parameter",
		LogSeverity: zapcore.WarnLevel,
	}

	ErrorInvalidCredentials = &CustomError{
		Kind:        KindInvalidCredentials,
		Message:     KindInvalidCredentials.DefaultMessage(),
		LogMessage:  "invalid credentials",
		LogSeverity: zapcore.WarnLevel,
	}

	ErrorUnauthenticated = &CustomError{
		Kind:        KindUnauthenticated,
		Message:     KindUnauthenticated.DefaultMessage(),
		LogMessage:  "missing or malformed bearer token",
		LogSeverity: zapcore.WarnLevel,
	}

	ErrorForbidden = &CustomError{
		Kind:        KindForbidden,
		Message:     KindForbidden.DefaultMessage(),
		LogMessage:  "access denied",
		LogSeverity: zapcore.WarnLevel,
	}

	ErrorUserNotFound = &CustomError{
		Kind:        KindNotFound,
		Message:     "user not found",
		LogMessage:  "user not found",
		LogSeverity: zapcore.WarnLevel,
	}

	ErrorDuplicateEmail = &CustomError{
		Kind:        KindDuplicateEmail,
		Message:     KindDuplicateEmail.DefaultMessage(),
		LogMessage:  "user already exists",
		LogSeverity: zapcore.WarnLevel,
	}

	ErrorMissingRoleFields = &CustomError{
		Kind:        KindMissingRoleFields,
		Message:     KindMissingRoleFields.DefaultMessage(),
		LogMessage:  "role specific fields are missing",
		LogSeverity: zapcore.WarnLevel,
	}

	ErrorInvalidOrExpiredOTP = &CustomError{
		Kind:        KindInvalidOrExpiredOTP,
		Message:     KindInvalidOrExpiredOTP.DefaultMessage(),
		LogMessage:  "otp not found or expired",
		LogSeverity: zapcore.WarnLevel,
	}

	ErrorTooManyRequests = &CustomError{
		Kind:        KindTooManyRequests,
		Message:     KindTooManyRequests.DefaultMessage(),
		LogMessage:  "rate limit reached",
		LogSeverity: zapcore.WarnLevel,
	}

	ErrorGenerateAccessToken = &CustomError{
		Kind:        KindInternal,
		Message:     KindInternal.DefaultMessage(),
		LogMessage:  "error occurred while generate access token",
		LogSeverity: zapcore.ErrorLevel,
	}
)
