package userbot

import "testing"

func TestMockText(t *testing.T) {
	cases := []struct{ in, want string }{
		{"hello", "hElLo"},
		{"ПРИВЕТ", "пРиВеТ"},
		{"a b", "a B"},
		{"", ""},
	}
	for _, c := range cases {
		if got := mockText(c.in); got != c.want {
			t.Errorf("mockText(%q) = %q, ожидалось %q", c.in, got, c.want)
		}
	}
}

func TestVaporwaveText(t *testing.T) {
	if got := vaporwaveText("abc"); got != "ａｂｃ" {
		t.Errorf("ASCII должен стать полноширинным: %q", got)
	}
	if got := vaporwaveText("a b"); got != "ａ　ｂ" {
		t.Errorf("пробел должен стать идеографическим: %q", got)
	}
	// Кириллица вне диапазона ASCII остаётся как есть.
	if got := vaporwaveText("привет"); got != "привет" {
		t.Errorf("не-ASCII текст изменился: %q", got)
	}
}

func TestReverseText(t *testing.T) {
	if got := reverseText("привет"); got != "тевирп" {
		t.Errorf("разворот по рунам сломан: %q", got)
	}
	if got := reverseText("ab🙂"); got != "🙂ba" {
		t.Errorf("эмодзи должен переворачиваться целиком: %q", got)
	}
}

func TestSplitChoices(t *testing.T) {
	got := splitChoices("чай, кофе , , какао")
	want := []string{"чай", "кофе", "какао"}
	if len(got) != len(want) {
		t.Fatalf("получено %d вариантов, ожидалось %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("вариант %d: %q, ожидалось %q", i, got[i], want[i])
		}
	}
}

func TestRPSBeats(t *testing.T) {
	wins := [][2]string{{"rock", "scissors"}, {"paper", "rock"}, {"scissors", "paper"}}
	for _, w := range wins {
		if !rpsBeats(w[0], w[1]) {
			t.Errorf("%s должен бить %s", w[0], w[1])
		}
		if rpsBeats(w[1], w[0]) {
			t.Errorf("%s не должен бить %s", w[1], w[0])
		}
	}
	if rpsBeats("rock", "rock") {
		t.Error("одинаковые варианты не бьют друг друга")
	}
}
