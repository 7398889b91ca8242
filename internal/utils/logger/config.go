// internal/utils/logger/config.go
package logger

import (
	"io"
	"os"
)

// Config настраивает консольный вывод и файл с ротацией.
type Config struct {
	// LogFile пустой: запись в файл отключена
	LogFile    string
	MaxSize    int  // мегабайты
	MaxAge     int  // дни
	MaxBackups int  // количество файлов
	Compress   bool // сжимать ротированные файлы
	Debug      bool
	Console    io.Writer
}

// DefaultConfig возвращает конфигурацию по умолчанию
func DefaultConfig() *Config {
	return &Config{
		LogFile:    "pump-sdk.log",
		MaxSize:    100,
		MaxAge:     7,
		MaxBackups: 3,
		Compress:   true,
		Console:    os.Stderr,
	}
}
