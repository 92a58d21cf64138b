package cli

import (
	log "github.com/sirupsen/logrus"
)

// setupLogging configures a.log from the general options. It
// runs once the options are parsed, right before a command
// executes.
func (a *App) setupLogging() {
	a.log.SetLevel(verbosity(a.opts.Verbose))
	if a.opts.LogFormat == "json" {
		a.log.SetFormatter(&log.JSONFormatter{
			FieldMap: log.FieldMap{
				log.FieldKeyTime:  "timestamp",
				log.FieldKeyLevel: "@level",
				log.FieldKeyMsg:   "message",
			},
		})
	} else {
		a.log.SetFormatter(&log.TextFormatter{
			DisableColors: true,
		})
	}
	a.log.Debugf("Verbosity level: %v", a.log.GetLevel())
}

// verbosity maps the number of -v flags to a level, starting at
// warnings.
func verbosity(v []bool) log.Level {
	level := log.WarnLevel + log.Level(len(v))
	if level > log.TraceLevel {
		level = log.TraceLevel
	}
	return level
}
