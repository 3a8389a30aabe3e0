package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadMissingFile проверяет, что отсутствие файла возвращает значения по умолчанию.
func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "нет_такого.toml"))
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("ожидался порт 8080, получено %q", cfg.Port)
	}
	if cfg.Bot.TypingDelayMaxMS <= cfg.Bot.TypingDelayMinMS {
		t.Errorf("диапазон задержки по умолчанию некорректен: %d..%d",
			cfg.Bot.TypingDelayMinMS, cfg.Bot.TypingDelayMaxMS)
	}
}

// TestLoadOverridesDefaults проверяет, что файл перекрывает значения по умолчанию частично.
func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "port = \"9090\"\n\n[bot]\nexport_dir = \"/tmp/exp\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("не удалось записать файл: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("ожидался порт 9090, получено %q", cfg.Port)
	}
	if cfg.Bot.ExportDir != "/tmp/exp" {
		t.Errorf("ожидался каталог /tmp/exp, получено %q", cfg.Bot.ExportDir)
	}
	// Не указанные в файле значения остаются дефолтными.
	if cfg.Log.File != "bot.log" {
		t.Errorf("ожидался файл журнала bot.log, получено %q", cfg.Log.File)
	}
}

// TestLoadEnvPortPriority проверяет, что переменная окружения PORT сильнее файла.
func TestLoadEnvPortPriority(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("port = \"9090\"\n"), 0o644); err != nil {
		t.Fatalf("не удалось записать файл: %v", err)
	}
	t.Setenv("PORT", "7000")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if cfg.Port != "7000" {
		t.Errorf("ожидался порт 7000, получено %q", cfg.Port)
	}
}
