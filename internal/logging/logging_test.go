package logging

import (
	"os"
	"path/filepath"
	"testing"
)

// TestTailLastLines проверяет, что возвращаются именно последние строки файла.
func TestTailLastLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.log")
	if err := os.WriteFile(path, []byte("a\nb\nc\nd\n"), 0o644); err != nil {
		t.Fatalf("не удалось записать файл: %v", err)
	}

	lines, err := Tail(path, 2)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if len(lines) != 2 || lines[0] != "c" || lines[1] != "d" {
		t.Fatalf("ожидались строки [c d], получено %v", lines)
	}
}

// TestTailShortFile проверяет файл короче запрошенного количества строк.
func TestTailShortFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.log")
	if err := os.WriteFile(path, []byte("единственная строка\n"), 0o644); err != nil {
		t.Fatalf("не удалось записать файл: %v", err)
	}

	lines, err := Tail(path, 50)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("ожидалась одна строка, получено %d", len(lines))
	}
}
