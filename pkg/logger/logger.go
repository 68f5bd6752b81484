package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the process logger. Production mode emits JSON at info level,
// anything else gets the development encoder at debug level.
func NewLogger(isProduction bool) (*zap.SugaredLogger, error) {
	var (
		log *zap.Logger
		err error
	)

	if isProduction {
		log, err = zap.NewProduction()
	} else {
		developmentConfig := zap.NewDevelopmentConfig()
		developmentConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		log, err = developmentConfig.Build()
	}
	if err != nil {
		return nil, err
	}

	return log.Sugar(), nil
}
