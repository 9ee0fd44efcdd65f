package logging

import (
	"os"

	"go.uber.org/zap/zapcore"
)

// Environment variables to configure log levels.
// RTEBIND_LOG_pkg takes precedence over RTEBIND_LOG.
const (
	EnvLog    = "RTEBIND_LOG"
	EnvLogPkg = "RTEBIND_LOG_"
)

// GetLevel returns configured log level of a package as a letter.
// Zero indicates the default level.
func GetLevel(pkg string) byte {
	lvl, ok := os.LookupEnv(EnvLogPkg + pkg)
	if !ok {
		lvl = os.Getenv(EnvLog)
	}
	if len(lvl) == 0 {
		return 0
	}
	return lvl[0]
}

func parseLevel(lvl byte) zapcore.Level {
	switch lvl {
	case 'V', 'D':
		return zapcore.DebugLevel
	case 'I':
		return zapcore.InfoLevel
	case 'W':
		return zapcore.WarnLevel
	case 'E':
		return zapcore.ErrorLevel
	case 'F', 'N':
		return zapcore.DPanicLevel
	}
	return zapcore.InfoLevel
}
