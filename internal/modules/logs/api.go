package logs

import (
	"io"
	"os"
	"strings"

	"github.com/natefinch/lumberjack"
	"github.com/reusedev/wp-hub/config"
	"github.com/rs/zerolog"
)

const service = "wp-hub"

// Logger writes to stdout until InitLogger runs.
var Logger = newLogger(os.Stdout)

// InitLogger applies the level and outputs from config.GConfig.
func InitLogger() {
	cfg := config.GConfig
	level := parseLogLevel(cfg.LogLevel)
	zerolog.SetGlobalLevel(level)
	Logger = newLogger(outputs(cfg, level, os.Stdout))
}

func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Str("service", service).Logger()
}

// outputs rotates into log_file when set. The console gets a copy when there is
// no file or at debug level and below.
func outputs(cfg *config.Config, level zerolog.Level, console io.Writer) io.Writer {
	var writers []io.Writer
	if cfg.LogFile != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.LogMaxSize, // MB
			MaxBackups: cfg.LogMaxBackups,
			MaxAge:     cfg.LogMaxAge, // days
			Compress:   true,
		})
	}
	if cfg.LogFile == "" || level <= zerolog.DebugLevel {
		writers = append(writers, zerolog.ConsoleWriter{Out: console, NoColor: true})
	}
	if len(writers) == 1 {
		return writers[0]
	}
	return zerolog.MultiLevelWriter(writers...)
}

// parseLogLevel falls back to info for empty or unknown names.
func parseLogLevel(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
