package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogOpts struct {
	Verbose  bool
	Encoding string
}

func (opts LogOpts) Encoder() zapcore.Encoder {
	switch opts.Encoding {
	case "json":
		if opts.Verbose {
			return zapcore.NewJSONEncoder(zap.NewDevelopmentEncoderConfig())
		}
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	case "console", "":
		return zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	default:
		panic(fmt.Errorf("unknown encoding %q", opts.Encoding))
	}
}

func (opts LogOpts) Level() zapcore.Level {
	if opts.Verbose {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}

// NewLogger builds the process logger. Callers own replacing the global via
// zap.ReplaceGlobals.
func (opts LogOpts) NewLogger() *zap.Logger {
	core := zapcore.NewCore(opts.Encoder(), zapcore.Lock(os.Stderr), opts.Level())
	return zap.New(core)
}
