// Package logging настраивает журнал сервиса: stdout плюс ротируемый файл.
// Файл журнала также читается командой .logs, поэтому путь отдаётся наружу.
package logging

import (
	"io"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"kira_go/internal/config"
)

// Setup перенаправляет стандартный log в stdout и ротируемый файл
// и возвращает zap-логгер для клиентов gotd, пишущий туда же.
func Setup(cfg config.LogConfig) *zap.Logger {
	rotator := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	}
	log.SetOutput(io.MultiWriter(os.Stdout, rotator))

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(rotator),
		// Клиент gotd многословен на уровне Debug, оставляем только предупреждения.
		zap.WarnLevel,
	)
	return zap.New(core)
}

// Tail возвращает последние n строк файла журнала.
func Tail(path string, n int) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines, nil
}
