//go:build unit
// +build unit

package logger

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/SharpenYourSword/courtlistener/internal/pkg/config"
	"github.com/stretchr/testify/require"
)

func resetLoggerSingleton() {
	loggerInstance = nil
	loggerErr = nil
	loggerOnce = sync.Once{}
}

func TestInitLogger_Console(t *testing.T) {
	resetLoggerSingleton()

	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}
	require.NoError(t, InitLogger(settings))

	log, err := GetLogger()
	require.NoError(t, err)
	require.NotNil(t, log)
}

func TestInitLogger_File(t *testing.T) {
	resetLoggerSingleton()

	settings := &config.LoggerSettings{
		LogLevel:   config.LogLevelInfo,
		LogType:    config.LogTypeFile,
		FilePath:   filepath.Join(t.TempDir(), "app.log"),
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
	require.NoError(t, InitLogger(settings))

	log, err := GetLogger()
	require.NoError(t, err)
	require.NotNil(t, log)
	log.Info("file logger works")
}

func TestGetLogger_NotInitialized(t *testing.T) {
	resetLoggerSingleton()

	_, err := GetLogger()
	require.Error(t, err)
}

func TestNewLogger_InvalidType(t *testing.T) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  "syslog",
	}
	_, err := newLogger(settings)
	require.Error(t, err)
}
