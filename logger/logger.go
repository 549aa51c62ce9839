// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ConfigureLogger sets the global level and writes human readable logs to out and
// JSON logs to every extra writer.
func ConfigureLogger(level zerolog.Level, out io.Writer, writers ...io.Writer) {
	output := zerolog.MultiLevelWriter(append([]io.Writer{zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}}, writers...)...)
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(level)
}

// ConfigureFileLogger configures the logger as ConfigureLogger does and additionally appends to
// the file at path. The returned function closes the file.
func ConfigureFileLogger(level zerolog.Level, out io.Writer, path string) (func() error, error) {
	if path == "" {
		ConfigureLogger(level, out)
		return func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	ConfigureLogger(level, out, f)
	return f.Close, nil
}
