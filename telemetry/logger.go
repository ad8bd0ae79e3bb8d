// Package telemetry constructs the structured logger used by the
// inspection CLI and anything embedding scdb.SCDB. Named sub-loggers
// follow the pack's convention of tagging each component with a short
// uppercase name (e.g. "INSPECT").
package telemetry

import (
	"os"

	"go.uber.org/zap"
)

// New builds a named *zap.SugaredLogger. Development config (human
// readable, debug level) is used when SCDB_DEBUG is set to any non-empty
// value; production config (JSON, info level) otherwise.
func New(name string) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if os.Getenv("SCDB_DEBUG") != "" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	l, err := cfg.Build(zap.Fields(zap.String("service", name)))
	if err != nil {
		return nil, err
	}

	return l.Sugar(), nil
}
