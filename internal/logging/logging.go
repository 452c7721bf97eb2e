// SPDX-License-Identifier: EPL-2.0

// Package logging hands out scoped leveled loggers. Levels are set per scope
// through the PION_LOG_TRACE, PION_LOG_DEBUG, PION_LOG_INFO and
// PION_LOG_WARN environment variables, e.g. PION_LOG_DEBUG=capture,ingest.
package logging

import (
	"github.com/pion/logging"
)

var loggerFactory = logging.NewDefaultLoggerFactory()

func NewLogger(scope string) logging.LeveledLogger {
	return loggerFactory.NewLogger(scope)
}
