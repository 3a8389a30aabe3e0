package userbot

import (
	"math"
	"testing"
)

func TestEvalExpr(t *testing.T) {
	cases := []struct {
		expr string
		want float64
	}{
		{"2+2", 4},
		{"2 + 2 * 2", 6},
		{"(2 + 2) * 2", 8},
		{"10 / 4", 2.5},
		{"10 % 3", 1},
		{"2 ^ 10", 1024},
		{"2 ^ 3 ^ 2", 512}, // правоассоциативность степени
		{"-5 + 3", -2},
		{"--4", 4},
		{"sqrt(16)", 4},
		{"abs(-7)", 7},
		{"round(2.6)", 3},
		{"floor(2.9)", 2},
		{"ceil(2.1)", 3},
		{"1.5 * 2", 3},
	}
	for _, c := range cases {
		got, err := evalExpr(c.expr)
		if err != nil {
			t.Errorf("evalExpr(%q): неожиданная ошибка %v", c.expr, err)
			continue
		}
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("evalExpr(%q) = %v, ожидалось %v", c.expr, got, c.want)
		}
	}
}

func TestEvalExprErrors(t *testing.T) {
	bad := []string{
		"",
		"2 +",
		"(2 + 3",
		"1 / 0",
		"5 % 0",
		"sqrt(-1)",
		"foo(1)",
		"2; 3",
		"abc",
	}
	for _, expr := range bad {
		if _, err := evalExpr(expr); err == nil {
			t.Errorf("evalExpr(%q) должен вернуть ошибку", expr)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	if got := formatNumber(4); got != "4" {
		t.Errorf("целое должно печататься без дробной части: %q", got)
	}
	if got := formatNumber(2.5); got != "2.5" {
		t.Errorf("дробное печатается как есть: %q", got)
	}
}
