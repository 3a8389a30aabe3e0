package userbot

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"unicode"

	"github.com/gotd/td/tg"

	tgutil "kira_go/pkg/telegram"
)

const sectionFun = "🎲 Развлечения"

func (b *Bot) registerFun() {
	b.register(command{name: "dice", section: sectionFun,
		usage: ".dice — бросить кубик", handler: b.cmdDice})
	b.register(command{name: "dart", section: sectionFun,
		usage: ".dart — бросить дротик", handler: b.cmdDart})
	b.register(command{name: "8ball", section: sectionFun,
		usage: ".8ball <вопрос> — магический шар", handler: b.cmd8Ball})
	b.register(command{name: "flip", section: sectionFun,
		usage: ".flip — подбросить монету", handler: b.cmdFlip})
	b.register(command{name: "choose", section: sectionFun,
		usage: ".choose а, б, в — выбрать вариант", handler: b.cmdChoose})
	b.register(command{name: "rps", section: sectionFun,
		usage: ".rps <rock|paper|scissors> — камень-ножницы-бумага", handler: b.cmdRPS})
	b.register(command{name: "slot", section: sectionFun,
		usage: ".slot — однорукий бандит", handler: b.cmdSlot})
	b.register(command{name: "mock", section: sectionFun,
		usage: ".mock <текст> — ПеРеМеШаТь регистр", handler: b.cmdMock})
	b.register(command{name: "vaporwave", section: sectionFun,
		usage: ".vaporwave <текст> — широкие символы", handler: b.cmdVaporwave})
	b.register(command{name: "reverse", section: sectionFun,
		usage: ".reverse <текст> — текст задом наперёд", handler: b.cmdReverse})
	b.register(command{name: "love", section: sectionFun,
		usage: ".love — калькулятор любви", handler: b.cmdLove})
	b.register(command{name: "cat", section: sectionFun,
		usage: ".cat — случайный кот", handler: b.cmdCat})
	b.register(command{name: "dog", section: sectionFun,
		usage: ".dog — случайный пёс", handler: b.cmdDog})
}

func (b *Bot) cmdDice(ctx context.Context, in *Incoming) error {
	return b.reply(ctx, in, fmt.Sprintf("🎲 Выпало: %d", rand.Intn(6)+1))
}

func (b *Bot) cmdDart(ctx context.Context, in *Incoming) error {
	return b.reply(ctx, in, fmt.Sprintf("🎯 Очков: %d", rand.Intn(20)+1))
}

var eightBallAnswers = []string{
	"Бесспорно", "Предрешено", "Никаких сомнений",
	"Определённо да", "Можешь быть уверен в этом", "Вероятнее всего",
	"Хорошие перспективы", "Да", "Знаки говорят — да",
	"Пока не ясно, попробуй снова", "Спроси позже", "Лучше не рассказывать",
	"Сейчас нельзя предсказать", "Сконцентрируйся и спроси опять", "Даже не думай",
	"Мой ответ — нет", "По моим данным — нет", "Перспективы не очень",
	"Весьма сомнительно",
}

func (b *Bot) cmd8Ball(ctx context.Context, in *Incoming) error {
	if in.Args == "" {
		return fmt.Errorf("использование: .8ball <вопрос>")
	}
	return b.reply(ctx, in, "🎱 Магический шар говорит: "+eightBallAnswers[rand.Intn(len(eightBallAnswers))])
}

func (b *Bot) cmdFlip(ctx context.Context, in *Incoming) error {
	side := "Орёл"
	if rand.Intn(2) == 1 {
		side = "Решка"
	}
	return b.reply(ctx, in, "🪙 "+side)
}

func (b *Bot) cmdChoose(ctx context.Context, in *Incoming) error {
	items := splitChoices(in.Args)
	if len(items) < 2 {
		return fmt.Errorf("использование: .choose вариант1, вариант2, ...")
	}
	return b.reply(ctx, in, "🤔 Мой выбор: "+items[rand.Intn(len(items))])
}

// splitChoices разбирает список вариантов, разделённых запятыми.
func splitChoices(args string) []string {
	var items []string
	for _, part := range strings.Split(args, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

var rpsChoices = []string{"rock", "paper", "scissors"}

// rpsBeats отвечает, бьёт ли первый вариант второй.
func rpsBeats(a, b string) bool {
	return (a == "rock" && b == "scissors") ||
		(a == "paper" && b == "rock") ||
		(a == "scissors" && b == "paper")
}

func (b *Bot) cmdRPS(ctx context.Context, in *Incoming) error {
	user := strings.ToLower(strings.TrimSpace(in.Args))
	valid := false
	for _, c := range rpsChoices {
		if user == c {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("выберите rock, paper или scissors")
	}
	mine := rpsChoices[rand.Intn(len(rpsChoices))]
	var result string
	switch {
	case user == mine:
		result = "Ничья!"
	case rpsBeats(user, mine):
		result = "Ты победил! 🎉"
	default:
		result = "Я победила! 🤖"
	}
	return b.reply(ctx, in, fmt.Sprintf("Ты: %s\nЯ: %s\n\n%s", user, mine, result))
}

var slotEmojis = []string{"🍒", "🍋", "🍊", "🍇", "🔔", "💎", "7️⃣"}

func (b *Bot) cmdSlot(ctx context.Context, in *Incoming) error {
	spin := []string{
		slotEmojis[rand.Intn(len(slotEmojis))],
		slotEmojis[rand.Intn(len(slotEmojis))],
		slotEmojis[rand.Intn(len(slotEmojis))],
	}
	verdict := "Попробуй ещё!"
	if spin[0] == spin[1] && spin[1] == spin[2] {
		verdict = "🎉 ДЖЕКПОТ!"
	}
	return b.reply(ctx, in, fmt.Sprintf("🎰 %s\n\n%s", strings.Join(spin, " | "), verdict))
}

// mockText чередует регистр букв: нечётные позиции в верхнем регистре.
func mockText(text string) string {
	out := make([]rune, 0, len(text))
	for i, r := range []rune(text) {
		if i%2 == 1 {
			out = append(out, unicode.ToUpper(r))
		} else {
			out = append(out, unicode.ToLower(r))
		}
	}
	return string(out)
}

func (b *Bot) cmdMock(ctx context.Context, in *Incoming) error {
	if in.Args == "" {
		return fmt.Errorf("использование: .mock <текст>")
	}
	return b.reply(ctx, in, mockText(in.Args))
}

// vaporwaveText переводит печатные ASCII-символы в полноширинные аналоги.
func vaporwaveText(text string) string {
	out := make([]rune, 0, len(text))
	for _, r := range text {
		switch {
		case r == ' ':
			out = append(out, '　')
		case r > 0x20 && r <= 0x7E:
			out = append(out, r+0xFEE0)
		default:
			out = append(out, r)
		}
	}
	return string(out)
}

func (b *Bot) cmdVaporwave(ctx context.Context, in *Incoming) error {
	if in.Args == "" {
		return fmt.Errorf("использование: .vaporwave <текст>")
	}
	return b.reply(ctx, in, vaporwaveText(in.Args))
}

// reverseText переворачивает строку по рунам, не по байтам.
func reverseText(text string) string {
	runes := []rune(text)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

func (b *Bot) cmdReverse(ctx context.Context, in *Incoming) error {
	if in.Args == "" {
		return fmt.Errorf("использование: .reverse <текст>")
	}
	return b.reply(ctx, in, reverseText(in.Args))
}

func (b *Bot) cmdLove(ctx context.Context, in *Incoming) error {
	first := tgutil.UserDisplayName(b.self)
	second := "кто-то"
	if isReply(in.Msg) {
		if replied, err := b.repliedMessage(ctx, in); err == nil {
			if from, ok := replied.FromID.(*tg.PeerUser); ok {
				if u, found := in.Entities.Users[from.UserID]; found {
					second = tgutil.UserDisplayName(u)
				}
			}
		}
	}
	love := rand.Intn(100) + 1
	hearts := strings.Repeat("❤️", love/10) + strings.Repeat("🤍", 10-love/10)
	return b.reply(ctx, in, fmt.Sprintf(
		"💖 Калькулятор любви 💖\n\n%s ❤️ %s\n\n%s\n%d%%", first, second, hearts, love))
}

func (b *Bot) cmdCat(ctx context.Context, in *Incoming) error {
	url, err := b.web.RandomCat(ctx)
	if err != nil {
		return fmt.Errorf("кот не нашёлся: %w", err)
	}
	return b.sendPhotoURL(ctx, in.Peer, url)
}

func (b *Bot) cmdDog(ctx context.Context, in *Incoming) error {
	url, err := b.web.RandomDog(ctx)
	if err != nil {
		return fmt.Errorf("пёс не нашёлся: %w", err)
	}
	return b.sendPhotoURL(ctx, in.Peer, url)
}
