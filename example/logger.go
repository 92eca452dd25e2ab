package example

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/matusvla/argstore"
)

// NewLogger returns a stderr logger configured by the -debug and -logtimestamps arguments.
func NewLogger(s *argstore.Store, prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		ReportTimestamp: s.Bool("-logtimestamps", false),
	})
	if s.Bool("-debug", false) {
		logger.SetLevel(log.DebugLevel)
	}
	for _, key := range s.Keys() {
		logger.Debug("command line argument", "key", key, "value", s.String(key, ""))
	}
	return logger
}
