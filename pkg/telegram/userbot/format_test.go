package userbot

import (
	"testing"
	"time"
)

func TestAgoText(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		t    time.Time
		want string
	}{
		{"нулевое время", time.Time{}, "неизвестно"},
		{"секунды назад", now.Add(-30 * time.Second), "только что"},
		{"минуты назад", now.Add(-5 * time.Minute), "5 мин. назад"},
		{"часы назад", now.Add(-3 * time.Hour), "3 ч. назад"},
		{"дни назад", now.AddDate(0, 0, -4), "4 дн. назад"},
		{"месяцы назад", now.AddDate(0, 0, -65), "2 мес. назад"},
		{"годы назад", now.AddDate(0, 0, -800), "2 г. назад"},
	}
	for _, c := range cases {
		if got := agoText(c.t, now); got != c.want {
			t.Errorf("%s: получено %q, ожидалось %q", c.name, got, c.want)
		}
	}
}

func TestTruncateTitle(t *testing.T) {
	if got := truncateTitle("короткое", 20); got != "короткое" {
		t.Errorf("короткое название изменилось: %q", got)
	}
	if got := truncateTitle("очень длинное название чата", 12); got != "очень длинно..." {
		t.Errorf("обрезка по рунам сломана: %q", got)
	}
}
