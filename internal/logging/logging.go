package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// New creates the application logger writing to w
func New(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		ReportCaller:    true,
		Prefix:          "playlist-manager",
	})
}
