package log

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel defines the severity level for log messages.
type LogLevel string

const (
	// LogInfo is used for general informational messages.
	LogInfo LogLevel = "info"

	// LogWarn is used for potentially harmful situations.
	LogWarn LogLevel = "warn"

	// LogError is used for error events that might still allow the application to continue running.
	LogError LogLevel = "error"

	// LogDebug is used for debugging messages with detailed internal information.
	LogDebug LogLevel = "debug"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// LogPayload is a single structured log record.
type LogPayload struct {
	Level   LogLevel
	Message string
	Fields  map[string]interface{}
}

// Options selects the encoder and minimum level of a logger built by New.
type Options struct {
	Debug  bool
	Format string
}

// New builds a zap logger writing to w. The JSON format uses the production
// encoder; anything else uses the development console encoder. w is never
// fsynced, so terminals on stderr do not fail Sync.
func New(w io.Writer, opts Options) *zap.Logger {
	level := zap.InfoLevel
	if opts.Debug {
		level = zap.DebugLevel
	}

	var encoder zapcore.Encoder
	switch opts.Format {
	case FormatJSON:
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	default:
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}

	return zap.New(zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(struct{ io.Writer }{w})), level))
}

// Log dispatches payload to the logger method matching its level.
// Unknown levels are logged at info.
func Log(logger *zap.Logger, payload LogPayload) {
	fields := make([]zap.Field, 0, len(payload.Fields))
	for k, v := range payload.Fields {
		fields = append(fields, zap.Any(k, v))
	}

	switch payload.Level {
	case LogInfo:
		logger.Info(payload.Message, fields...)
	case LogWarn:
		logger.Warn(payload.Message, fields...)
	case LogError:
		logger.Error(payload.Message, fields...)
	case LogDebug:
		logger.Debug(payload.Message, fields...)
	default:
		logger.Info(payload.Message, fields...)
	}
}

// Sync flushes the logger, reporting a failure through the logger itself.
func Sync(logger *zap.Logger) {
	if err := logger.Sync(); err != nil {
		logger.Warn("failed to sync logger", zap.Error(err))
	}
}
