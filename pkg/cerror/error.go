package cerror

import (
	"errors"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// CustomError is a domain failure. Message goes to the client, everything
// prefixed with Log stays on the server.
type CustomError struct {
	Kind        Kind
	Message     string
	LogMessage  string
	LogSeverity zapcore.Level
	LogFields   []zapcore.Field
}

func NewError(kind Kind, logMessage string, fields ...zapcore.Field) *CustomError {
	severity := zapcore.WarnLevel
	if kind == KindInternal {
		severity = zapcore.ErrorLevel
	}

	return &CustomError{
		Kind:        kind,
		Message:     kind.DefaultMessage(),
		LogMessage:  logMessage,
		LogSeverity: severity,
		LogFields:   fields,
	}
}

func Internal(logMessage string, err error) *CustomError {
	return NewError(KindInternal, logMessage, zap.Error(err))
}

func (cerr *CustomError) Error() string {
	return cerr.Kind.String() + ": " + cerr.LogMessage
}

func (cerr *CustomError) HttpStatus() int {
	return cerr.Kind.HttpStatus()
}

func (cerr *CustomError) SetMessage(message string) *CustomError {
	cerr.Message = message
	return cerr
}

// With returns a copy carrying extra log fields so shared errors stay untouched.
func (cerr *CustomError) With(fields ...zapcore.Field) *CustomError {
	copied := *cerr
	copied.LogFields = append(append([]zapcore.Field{}, cerr.LogFields...), fields...)
	return &copied
}

func IsKind(err error, kind Kind) bool {
	var cerr *CustomError
	if errors.As(err, &cerr) {
		return cerr.Kind == kind
	}
	return false
}
