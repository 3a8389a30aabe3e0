package userbot

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

func (b *Bot) registerCalc() {
	b.register(command{name: "calc", section: sectionFun,
		usage: ".calc <выражение> — калькулятор", handler: b.cmdCalc})
}

func (b *Bot) cmdCalc(ctx context.Context, in *Incoming) error {
	if in.Args == "" {
		return fmt.Errorf("использование: .calc <выражение>")
	}
	result, err := evalExpr(in.Args)
	if err != nil {
		return err
	}
	return b.reply(ctx, in, "🧮 Результат: "+formatNumber(result))
}

// formatNumber убирает хвост ".000000" у целых результатов.
func formatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// evalExpr вычисляет арифметическое выражение: + - * / % ^, скобки,
// унарный минус. Грамматика разбирается рекурсивным спуском.
func evalExpr(expr string) (float64, error) {
	p := &exprParser{input: expr}
	v, err := p.parseSum()
	if err != nil {
		return 0, err
	}
	p.skipSpaces()
	if p.pos < len(p.input) {
		return 0, fmt.Errorf("неожиданный символ %q в позиции %d", p.input[p.pos], p.pos+1)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("результат вне диапазона")
	}
	return v, nil
}

type exprParser struct {
	input string
	pos   int
}

func (p *exprParser) skipSpaces() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

func (p *exprParser) peek() byte {
	p.skipSpaces()
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

// parseSum: слагаемые, низший приоритет.
func (p *exprParser) parseSum() (float64, error) {
	left, err := p.parseProduct()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '+':
			p.pos++
			right, err := p.parseProduct()
			if err != nil {
				return 0, err
			}
			left += right
		case '-':
			p.pos++
			right, err := p.parseProduct()
			if err != nil {
				return 0, err
			}
			left -= right
		default:
			return left, nil
		}
	}
}

// parseProduct: умножение, деление и остаток.
func (p *exprParser) parseProduct() (float64, error) {
	left, err := p.parsePower()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '*':
			p.pos++
			right, err := p.parsePower()
			if err != nil {
				return 0, err
			}
			left *= right
		case '/':
			p.pos++
			right, err := p.parsePower()
			if err != nil {
				return 0, err
			}
			if right == 0 {
				return 0, fmt.Errorf("деление на ноль")
			}
			left /= right
		case '%':
			p.pos++
			right, err := p.parsePower()
			if err != nil {
				return 0, err
			}
			if right == 0 {
				return 0, fmt.Errorf("деление на ноль")
			}
			left = math.Mod(left, right)
		default:
			return left, nil
		}
	}
}

// parsePower: возведение в степень, правоассоциативное.
func (p *exprParser) parsePower() (float64, error) {
	base, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	if p.peek() != '^' {
		return base, nil
	}
	p.pos++
	exp, err := p.parsePower()
	if err != nil {
		return 0, err
	}
	return math.Pow(base, exp), nil
}

func (p *exprParser) parseUnary() (float64, error) {
	switch p.peek() {
	case '-':
		p.pos++
		v, err := p.parseUnary()
		return -v, err
	case '+':
		p.pos++
		return p.parseUnary()
	}
	return p.parseAtom()
}

func (p *exprParser) parseAtom() (float64, error) {
	c := p.peek()
	if c == '(' {
		p.pos++
		v, err := p.parseSum()
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, fmt.Errorf("не хватает закрывающей скобки")
		}
		p.pos++
		return v, nil
	}
	if unicode.IsLetter(rune(c)) {
		return p.parseCall()
	}
	return p.parseNumber()
}

// parseCall: именованные функции вида sqrt(2) или abs(-1).
func (p *exprParser) parseCall() (float64, error) {
	start := p.pos
	for p.pos < len(p.input) && unicode.IsLetter(rune(p.input[p.pos])) {
		p.pos++
	}
	name := strings.ToLower(p.input[start:p.pos])
	if p.peek() != '(' {
		return 0, fmt.Errorf("неизвестное имя %q", name)
	}
	p.pos++
	arg, err := p.parseSum()
	if err != nil {
		return 0, err
	}
	if p.peek() != ')' {
		return 0, fmt.Errorf("не хватает закрывающей скобки")
	}
	p.pos++

	switch name {
	case "abs":
		return math.Abs(arg), nil
	case "sqrt":
		if arg < 0 {
			return 0, fmt.Errorf("корень из отрицательного числа")
		}
		return math.Sqrt(arg), nil
	case "round":
		return math.Round(arg), nil
	case "floor":
		return math.Floor(arg), nil
	case "ceil":
		return math.Ceil(arg), nil
	default:
		return 0, fmt.Errorf("неизвестная функция %q", name)
	}
}

func (p *exprParser) parseNumber() (float64, error) {
	p.skipSpaces()
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if (c >= '0' && c <= '9') || c == '.' {
			p.pos++
			continue
		}
		break
	}
	if start == p.pos {
		return 0, fmt.Errorf("ожидалось число в позиции %d", start+1)
	}
	v, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("некорректное число %q", p.input[start:p.pos])
	}
	return v, nil
}
