// Package logsetup installs the process-wide go-logging backend used by the
// huffpack binaries.
package logsetup

import (
	"io"

	"github.com/op/go-logging"
)

const formatSpec = "%{level:8s} %{module:-20s} | %{message}"

// Start directs all loggers to w, prefixed with progName, at INFO level.  The
// returned Leveled backend may be used to change the level later, e.g. when a
// debug flag is parsed.
func Start(w io.Writer, progName string) logging.Leveled {
	backend := logging.NewLogBackend(w, progName+": ", 0)
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	return leveled
}
