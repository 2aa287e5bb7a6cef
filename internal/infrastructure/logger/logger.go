package logger

import (
	usecasecontract "github.com/mihretabn/taskhub/internal/usecase/contract"
	"go.uber.org/zap"
)

// ZapLogger implements the IAppLogger contract on a zap
// SugaredLogger.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger builds a logger for the given environment. Production
// gets the JSON encoder, everything else the development console one.
func NewZapLogger(environment string) (usecasecontract.IAppLogger, error) {
	var base *zap.Logger
	var err error
	if environment == "production" {
		base, err = zap.NewProduction()
	} else {
		base, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}
	return &ZapLogger{sugar: base.Sugar()}, nil
}

var _ usecasecontract.IAppLogger = (*ZapLogger)(nil)

func (l *ZapLogger) Debugf(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

func (l *ZapLogger) Infof(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

func (l *ZapLogger) Warnf(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

func (l *ZapLogger) Errorf(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

func (l *ZapLogger) Fatalf(format string, args ...interface{}) {
	l.sugar.Fatalf(format, args...)
}

// Sync flushes buffered log entries on shutdown.
func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}
