package log

import (
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/natefinch/lumberjack.v2"
)

// buildWriter assembles the output writer from the configured appenders.
// With no appenders configured logs go to stderr.
func buildWriter(appenders []AppenderConfig) (io.Writer, error) {
	if len(appenders) == 0 {
		return os.Stderr, nil
	}

	writers := make([]io.Writer, 0, len(appenders))
	for _, a := range appenders {
		switch a.Type {
		case "console":
			writers = append(writers, os.Stderr)
		case "file":
			var opts FileAppenderOptions
			if err := mapstructure.Decode(a.Options, &opts); err != nil {
				return nil, fmt.Errorf("log: decode file appender options: %w", err)
			}
			if opts.Filename == "" {
				return nil, fmt.Errorf("log: file appender requires 'filename'")
			}
			writers = append(writers, &lumberjack.Logger{
				Filename:   opts.Filename,
				MaxSize:    opts.MaxSize,
				MaxAge:     opts.MaxAge,
				MaxBackups: opts.MaxBackups,
				Compress:   opts.Compress,
			})
		default:
			return nil, fmt.Errorf("log: unknown appender type %q", a.Type)
		}
	}

	if len(writers) == 1 {
		return writers[0], nil
	}
	return io.MultiWriter(writers...), nil
}
