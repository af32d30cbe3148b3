package smpp

import "go.uber.org/zap"

// ZapLogger adapts a *zap.SugaredLogger to the Logger interface, so the
// session/codec code keeps logging through the same seam regardless of
// which backend is wired in.
type ZapLogger struct {
	Sugar *zap.SugaredLogger
}

// NewZapLogger builds a ZapLogger around a production zap configuration.
func NewZapLogger() (*ZapLogger, error) {
	l, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return &ZapLogger{Sugar: l.Sugar()}, nil
}

// InfoF implements Logger.
func (zl *ZapLogger) InfoF(msg string, params ...interface{}) {
	zl.Sugar.Infof(msg, params...)
}

// ErrorF implements Logger.
func (zl *ZapLogger) ErrorF(msg string, params ...interface{}) {
	zl.Sugar.Errorf(msg, params...)
}
