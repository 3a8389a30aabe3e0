package userbot

import (
	"strings"
	"testing"
)

// Ответ на ключевую фразу должен браться из списка реплик этой фразы.
func TestAIResponseKnownKey(t *testing.T) {
	for i := 0; i < 20; i++ {
		got := aiResponse("Hello, Kira")
		found := false
		for _, want := range aiPatterns[0].responses {
			if got == want {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("ответ %q не входит в реплики фразы %q", got, aiPatterns[0].key)
		}
	}
}

// Ключевая фраза ищется без учёта регистра и внутри текста.
func TestAIResponseCaseInsensitive(t *testing.T) {
	got := aiResponse("скажи, WHAT CAN YOU DO для меня?")
	if got != aiPatterns[3].responses[0] {
		t.Errorf("ожидался ответ %q, получен %q", aiPatterns[3].responses[0], got)
	}
}

// При нескольких совпадениях выигрывает более ранняя фраза таблицы.
func TestAIResponsePatternPriority(t *testing.T) {
	got := aiResponse("hello, how are you?")
	for _, want := range aiPatterns[0].responses {
		if got == want {
			return
		}
	}
	t.Errorf("ответ %q должен принадлежать фразе %q", got, aiPatterns[0].key)
}

// Незнакомый запрос получает ответ из списка по умолчанию.
func TestAIResponseDefault(t *testing.T) {
	got := aiResponse("совершенно незнакомая фраза")
	for _, want := range aiDefaults {
		if got == want {
			return
		}
	}
	t.Errorf("ответ %q не входит в список по умолчанию", got)
}

// Таблица фраз не должна содержать пустых списков реплик.
func TestAIPatternsNotEmpty(t *testing.T) {
	for _, p := range aiPatterns {
		if len(p.responses) == 0 {
			t.Errorf("фраза %q без реплик", p.key)
		}
		if p.key != strings.ToLower(p.key) {
			t.Errorf("ключ %q должен быть в нижнем регистре", p.key)
		}
	}
}
