package userbot

import "testing"

func TestParsePollArgs(t *testing.T) {
	question, options, err := parsePollArgs("Лучший язык?|Go|Rust|Python")
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if question != "Лучший язык?" {
		t.Errorf("вопрос искажён: %q", question)
	}
	if len(options) != 3 || options[0] != "Go" || options[2] != "Python" {
		t.Errorf("варианты искажены: %v", options)
	}
}

func TestParsePollArgsErrors(t *testing.T) {
	bad := []string{
		"",
		"Вопрос без вариантов",
		"Вопрос|Один вариант",
		"|Вариант1|Вариант2", // пустой вопрос
		"В|1|2|3|4|5|6|7|8|9|10|11",
	}
	for _, args := range bad {
		if _, _, err := parsePollArgs(args); err == nil {
			t.Errorf("parsePollArgs(%q) должен вернуть ошибку", args)
		}
	}
}
