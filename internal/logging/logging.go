// Package logging wraps github.com/op/go-logging behind a single
// package-wide logger, the way the larger Go engines in this lineage
// keep one logger per binary rather than configuring the backend at
// every call site.
package logging

import (
	"os"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("shogi")

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:.4s} %{shortfunc}: %{message}`,
	)
	logging.SetBackend(logging.NewBackendFormatter(backend, formatter))
}

// GetLog returns the package-wide logger.
func GetLog() *logging.Logger { return log }
