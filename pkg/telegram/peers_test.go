package telegram

import "testing"

// TestNormalizeUsername проверяет, что аргументы команд (.info, .invite)
// приводятся к голому username независимо от формы.
func TestNormalizeUsername(t *testing.T) {
	cases := []struct {
		name string
		arg  string
		want string
	}{
		{"голый username", "durov", "durov"},
		{"с собакой", "@durov", "durov"},
		{"ссылка t.me", "https://t.me/durov", "durov"},
		{"с пробелами", "  @durov ", "durov"},
	}
	for _, tc := range cases {
		if got := NormalizeUsername(tc.arg); got != tc.want {
			t.Errorf("%s: ожидалось %q, получено %q", tc.name, tc.want, got)
		}
	}
}

// TestExtractUsername проверяет разбор ссылок t.me.
func TestExtractUsername(t *testing.T) {
	got, err := ExtractUsername("https://t.me/kira")
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if got != "kira" {
		t.Fatalf("ожидалось kira, получено %q", got)
	}
	if _, err := ExtractUsername("http://example.com/kira"); err == nil {
		t.Fatalf("ожидалась ошибка для чужой ссылки")
	}
}
