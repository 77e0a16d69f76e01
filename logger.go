package morastr

import (
	"github.com/rs/zerolog"
)

// logger is the package-level logger for go-morastr. It defaults to a no-op
// logger so that importing this package never produces output on its own.
var logger zerolog.Logger = zerolog.Nop()

// SetLogger installs l as the package-level logger. Pass zerolog.Nop() to
// silence logging again.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// GetLogger returns the package-level logger currently installed.
func GetLogger() zerolog.Logger {
	return logger
}
