package core

import "github.com/rs/zerolog"

// ZerologLogger adapts a zerolog.Logger to the core.Logger interface,
// so the integrator/renderer packages depend only on the small
// Logger contract and never import zerolog directly.
type ZerologLogger struct {
	Log zerolog.Logger
}

func NewZerologLogger(log zerolog.Logger) ZerologLogger {
	return ZerologLogger{Log: log}
}

func (l ZerologLogger) Debugf(format string, args ...interface{}) {
	l.Log.Debug().Msgf(format, args...)
}

func (l ZerologLogger) Infof(format string, args ...interface{}) {
	l.Log.Info().Msgf(format, args...)
}
