package collector

import "github.com/rs/zerolog"

// restyLogger routes resty's own diagnostics into zerolog at debug level.
type restyLogger struct {
	log zerolog.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) { l.log.Debug().Msgf(format, v...) }
func (l restyLogger) Warnf(format string, v ...interface{})  { l.log.Debug().Msgf(format, v...) }
func (l restyLogger) Debugf(format string, v ...interface{}) { l.log.Debug().Msgf(format, v...) }

// diagnosticsLogger returns a silent logger in quiet mode.
func diagnosticsLogger(log zerolog.Logger, quiet bool) restyLogger {
	if quiet {
		return restyLogger{log: zerolog.Nop()}
	}
	return restyLogger{log: log}
}
