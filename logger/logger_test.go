// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package logger_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ChainSafe/xcm-transfer/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/suite"
)

type LoggerTestSuite struct {
	suite.Suite
}

func TestRunLoggerTestSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}

func (s *LoggerTestSuite) TearDownTest() {
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
}

func (s *LoggerTestSuite) Test_ConfigureLogger_Level() {
	out := &bytes.Buffer{}
	extra := &bytes.Buffer{}
	logger.ConfigureLogger(zerolog.InfoLevel, out, extra)

	log.Debug().Msg("hidden")
	log.Info().Str("scenario", "localExecute").Msg("shown")

	s.NotContains(out.String(), "hidden")
	s.Contains(out.String(), "shown")
	s.Contains(extra.String(), `"scenario":"localExecute"`)
}

func (s *LoggerTestSuite) Test_ConfigureFileLogger() {
	path := filepath.Join(s.T().TempDir(), "out.log")
	closeFile, err := logger.ConfigureFileLogger(zerolog.InfoLevel, &bytes.Buffer{}, path)
	s.Nil(err)

	log.Info().Msg("to file")
	s.Nil(closeFile())

	content, err := os.ReadFile(path)
	s.Nil(err)
	s.Contains(string(content), "to file")
}

func (s *LoggerTestSuite) Test_ConfigureFileLogger_InvalidPath() {
	_, err := logger.ConfigureFileLogger(zerolog.InfoLevel, &bytes.Buffer{}, filepath.Join(s.T().TempDir(), "missing", "out.log"))

	s.NotNil(err)
}
