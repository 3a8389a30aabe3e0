package userbot

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/gotd/td/tg"
)

const sectionSched = "⏰ Планировщик"

func (b *Bot) registerSched() {
	b.register(command{name: "remind", section: sectionSched,
		usage: ".remind <минут> <текст> — напоминание", handler: b.cmdRemind})
	b.register(command{name: "timer", section: sectionSched,
		usage: ".timer <секунд> — таймер с отсчётом", handler: b.cmdTimer})
	b.register(command{name: "poll", section: sectionSched,
		usage: ".poll Вопрос|Вариант1|Вариант2 — опрос", handler: b.cmdPoll})
}

// cmdRemind подтверждает напоминание сразу, а текст шлёт по истечении срока.
// Ожидание идёт в отдельной горутине, чтобы не блокировать другие команды.
func (b *Bot) cmdRemind(ctx context.Context, in *Incoming) error {
	field, text, _ := strings.Cut(in.Args, " ")
	minutes, err := strconv.Atoi(field)
	if err != nil || minutes <= 0 || text == "" {
		return fmt.Errorf("использование: .remind <минут> <текст>")
	}
	if err := b.reply(ctx, in, fmt.Sprintf("⏰ Напоминание через %d мин.", minutes)); err != nil {
		return err
	}

	peer := in.Peer
	go func() {
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Duration(minutes) * time.Minute):
		}
		if _, err := b.send(ctx, peer, "⏰ Напоминание: "+text); err != nil {
			log.Printf("[USERBOT %s] напоминание не отправлено: %v", b.account.Phone, err)
		}
	}()
	return nil
}

// cmdTimer ведёт обратный отсчёт, редактируя одно и то же сообщение.
// Правки идут раз в 5 секунд, чтобы не упереться в лимиты Telegram.
func (b *Bot) cmdTimer(ctx context.Context, in *Incoming) error {
	seconds, err := strconv.Atoi(in.Args)
	if err != nil || seconds <= 0 || seconds > 3600 {
		return fmt.Errorf("использование: .timer <секунд> (не больше 3600)")
	}
	msgID, err := b.send(ctx, in.Peer, fmt.Sprintf("⏱ Таймер на %d сек.", seconds))
	if err != nil {
		return err
	}
	if msgID == 0 {
		return fmt.Errorf("не удалось получить ID сообщения таймера")
	}

	peer := in.Peer
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for left := seconds; left > 0; left-- {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			if left%5 == 0 || left <= 5 {
				if err := b.edit(ctx, peer, msgID, fmt.Sprintf("⏱ Осталось %d сек...", left)); err != nil {
					log.Printf("[USERBOT %s] таймер: %v", b.account.Phone, err)
					return
				}
			}
		}
		if err := b.edit(ctx, peer, msgID, "⏰ Время вышло!"); err != nil {
			log.Printf("[USERBOT %s] таймер: %v", b.account.Phone, err)
		}
	}()
	return nil
}

func (b *Bot) cmdPoll(ctx context.Context, in *Incoming) error {
	question, options, err := parsePollArgs(in.Args)
	if err != nil {
		return err
	}
	answers := make([]tg.PollAnswer, 0, len(options))
	for i, opt := range options {
		answers = append(answers, tg.PollAnswer{
			Text:   tg.TextWithEntities{Text: opt},
			Option: []byte{byte(i)},
		})
	}
	_, err = b.api.MessagesSendMedia(ctx, &tg.MessagesSendMediaRequest{
		Peer: in.Peer,
		Media: &tg.InputMediaPoll{
			Poll: tg.Poll{
				ID:       rand.Int63(),
				Question: tg.TextWithEntities{Text: question},
				Answers:  answers,
			},
		},
		RandomID: rand.Int63(),
	})
	return err
}

// parsePollArgs разбирает "Вопрос|Вариант1|Вариант2|..." с границами Telegram:
// от двух до десяти вариантов.
func parsePollArgs(args string) (question string, options []string, err error) {
	parts := strings.Split(args, "|")
	if len(parts) < 3 {
		return "", nil, fmt.Errorf("использование: .poll Вопрос|Вариант1|Вариант2|...")
	}
	question = strings.TrimSpace(parts[0])
	for _, p := range parts[1:] {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			options = append(options, trimmed)
		}
	}
	if question == "" || len(options) < 2 {
		return "", nil, fmt.Errorf("нужен вопрос и минимум два варианта")
	}
	if len(options) > 10 {
		return "", nil, fmt.Errorf("вариантов не может быть больше десяти")
	}
	return question, options, nil
}
