package userbot

import (
	"strings"
	"testing"
)

func TestParseCommand(t *testing.T) {
	cases := []struct {
		text string
		name string
		args string
		ok   bool
	}{
		{".ping", "ping", "", true},
		{".ai привет, как дела", "ai", "привет, как дела", true},
		{".export csv 50", "export", "csv 50", true},
		{".calc 2 + 2", "calc", "2 + 2", true},
		{".help ", "help", "", true},
		{"ping", "", "", false},
		{"", "", "", false},
		{".", "", "", false},
		{"...", "", "", false},   // многоточие — обычное сообщение
		{". текст", "", "", false},
		{"текст .ping", "", "", false},
	}
	for _, c := range cases {
		name, args, ok := ParseCommand(c.text)
		if ok != c.ok || name != c.name || args != c.args {
			t.Errorf("ParseCommand(%q) = (%q, %q, %v), ожидалось (%q, %q, %v)",
				c.text, name, args, ok, c.name, c.args, c.ok)
		}
	}
}

// testBot собирает бота с пустыми зависимостями: для проверки таблицы
// команд сетевые клиенты не нужны.
func testBot() *Bot {
	b := &Bot{
		commands: make(map[string]command),
		bySect:   make(map[string][]string),
	}
	b.registerBasic()
	b.registerAI()
	b.registerSearch()
	b.registerChats()
	b.registerExport()
	b.registerProfile()
	b.registerAdmin()
	b.registerWeb()
	b.registerFun()
	b.registerCalc()
	b.registerSched()
	b.registerSystem()
	return b
}

func TestCommandTable(t *testing.T) {
	b := testBot()

	// Ключевые команды всех разделов должны присутствовать в таблице.
	for _, name := range []string{
		"ping", "alive", "help", "id", "info", "time",
		"ai", "google", "search",
		"mychats", "listaccounts", "backupchats", "findchat", "chatstats", "chatinfo", "clearchats",
		"exportchats", "export",
		"name", "bio", "pfp", "delpfp",
		"purge", "del", "pin", "unpin", "kick", "invite", "mute", "unmute", "archive", "unarchive",
		"weather", "wiki", "define", "lyrics", "shorten", "crypto", "translate", "yt",
		"fact", "joke", "quote", "anime",
		"dice", "dart", "8ball", "flip", "choose", "rps", "slot",
		"mock", "vaporwave", "reverse", "love", "cat", "dog", "calc",
		"remind", "timer", "poll",
		"logs", "exec", "setvar", "getvar", "broadcast", "restart", "shutdown",
	} {
		if _, ok := b.commands[name]; !ok {
			t.Errorf("команда %q не зарегистрирована", name)
		}
	}

	// Подсказка каждой команды должна начинаться с её имени.
	for name, cmd := range b.commands {
		if !strings.HasPrefix(cmd.usage, "."+name) {
			t.Errorf("подсказка команды %q не начинается с имени: %q", name, cmd.usage)
		}
		if cmd.handler == nil {
			t.Errorf("команда %q без обработчика", name)
		}
		if cmd.section == "" {
			t.Errorf("команда %q без раздела справки", name)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	b := &Bot{
		commands: make(map[string]command),
		bySect:   make(map[string][]string),
	}
	b.register(command{name: "ping", section: "x", usage: ".ping"})
	defer func() {
		if recover() == nil {
			t.Error("повторная регистрация должна вызывать панику")
		}
	}()
	b.register(command{name: "ping", section: "x", usage: ".ping"})
}

func TestHelpTextListsEverySection(t *testing.T) {
	b := testBot()
	help := b.helpText()
	for _, section := range b.sections {
		if !strings.Contains(help, section) {
			t.Errorf("в справке нет раздела %q", section)
		}
	}
	if !strings.Contains(help, ".ping") || !strings.Contains(help, ".broadcast") {
		t.Error("в справке нет подсказок команд")
	}
}

func TestCommandNamesSorted(t *testing.T) {
	b := testBot()
	names := b.CommandNames()
	if len(names) != len(b.commands) {
		t.Fatalf("список имён неполон: %d из %d", len(names), len(b.commands))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("имена не отсортированы: %q перед %q", names[i-1], names[i])
		}
	}
}
