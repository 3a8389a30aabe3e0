package userbot

import (
	"context"
	"fmt"
	"log"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"kira_go/internal/common"
	"kira_go/internal/logging"
	tgutil "kira_go/pkg/telegram"
)

const sectionSystem = "⚙️ Система"

func (b *Bot) registerSystem() {
	b.register(command{name: "logs", section: sectionSystem,
		usage: ".logs [N] — последние строки журнала", handler: b.cmdLogs})
	b.register(command{name: "exec", section: sectionSystem,
		usage: ".exec <команда> — shell-команда на сервере", handler: b.cmdExec})
	b.register(command{name: "setvar", section: sectionSystem,
		usage: ".setvar <ключ> <значение> — сохранить переменную", handler: b.cmdSetVar})
	b.register(command{name: "getvar", section: sectionSystem,
		usage: ".getvar <ключ> — прочитать переменную", handler: b.cmdGetVar})
	b.register(command{name: "broadcast", section: sectionSystem,
		usage: ".broadcast <текст> — рассылка по всем чатам", handler: b.cmdBroadcast})
	b.register(command{name: "restart", section: sectionSystem,
		usage: ".restart — перезапустить аккаунт", handler: b.cmdRestart})
	b.register(command{name: "shutdown", section: sectionSystem,
		usage: ".shutdown — остановить аккаунт", handler: b.cmdShutdown})
}

func (b *Bot) cmdLogs(ctx context.Context, in *Incoming) error {
	n := 50
	if in.Args != "" {
		parsed, err := strconv.Atoi(in.Args)
		if err != nil || parsed <= 0 {
			return fmt.Errorf("использование: .logs [N]")
		}
		n = parsed
	}
	lines, err := logging.Tail(b.cfg.LogFile, n)
	if err != nil {
		return fmt.Errorf("журнал не читается: %w", err)
	}
	if len(lines) == 0 {
		return b.reply(ctx, in, "❌ Журнал пуст.")
	}
	text := strings.Join(lines, "\n")
	// Оставляем запас под заголовок при лимите сообщения 4096.
	if len(text) > 3500 {
		text = text[len(text)-3500:]
	}
	return b.reply(ctx, in, fmt.Sprintf("Последние строки журнала (%d):\n%s", len(lines), text))
}

// cmdExec выполняет shell-команду на сервере. Доступ и так только у владельца
// аккаунта, поэтому дополнительных ограничений нет.
func (b *Bot) cmdExec(ctx context.Context, in *Incoming) error {
	if in.Args == "" {
		return fmt.Errorf("использование: .exec <команда>")
	}
	execCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	out, err := exec.CommandContext(execCtx, "sh", "-c", in.Args).CombinedOutput()
	output := strings.TrimSpace(string(out))
	if output == "" {
		if err != nil {
			output = err.Error()
		} else {
			output = "Команда выполнена (вывода нет)."
		}
	}
	if len(output) > 3500 {
		output = output[:3500] + "..."
	}
	return b.reply(ctx, in, "Вывод:\n"+output)
}

func (b *Bot) cmdSetVar(ctx context.Context, in *Incoming) error {
	key, value, found := strings.Cut(in.Args, " ")
	if !found || key == "" || value == "" {
		return fmt.Errorf("использование: .setvar <ключ> <значение>")
	}
	if err := b.db.SetVariable(b.account.ID, key, value); err != nil {
		return err
	}
	return b.reply(ctx, in, fmt.Sprintf("✅ Переменная %s сохранена.", key))
}

func (b *Bot) cmdGetVar(ctx context.Context, in *Incoming) error {
	if in.Args == "" {
		return fmt.Errorf("использование: .getvar <ключ>")
	}
	value, found, err := b.db.GetVariable(b.account.ID, in.Args)
	if err != nil {
		return err
	}
	if !found {
		return b.reply(ctx, in, fmt.Sprintf("%s — не задана", in.Args))
	}
	return b.reply(ctx, in, fmt.Sprintf("%s = %s", in.Args, value))
}

// cmdBroadcast шлёт текст во все диалоги аккаунта с паузой между отправками.
// Пауза обязательна: частые отправки быстро приводят к FLOOD_WAIT.
func (b *Bot) cmdBroadcast(ctx context.Context, in *Incoming) error {
	if in.Args == "" {
		return fmt.Errorf("использование: .broadcast <текст>")
	}
	statusID, err := b.send(ctx, in.Peer, "📢 Рассылаю...")
	if err != nil {
		return err
	}
	peers, err := tgutil.DialogPeers(ctx, b.api, 100)
	if err != nil {
		return err
	}

	pause := b.cfg.BroadcastPauseSec
	if pause <= 0 {
		pause = 1
	}
	var sent, failed int
	for _, peer := range peers {
		if _, err := b.send(ctx, peer, in.Args); err != nil {
			if strings.Contains(err.Error(), "FLOOD_WAIT") {
				b.checkFloodWait(err)
				break
			}
			failed++
		} else {
			sent++
		}
		if err := common.WaitWithCancellation(ctx, [2]int{pause, pause + 2}); err != nil {
			return err
		}
	}
	summary := fmt.Sprintf("✅ Рассылка: отправлено %d, ошибок %d.", sent, failed)
	if statusID == 0 {
		return b.reply(ctx, in, summary)
	}
	return b.edit(ctx, in.Peer, statusID, summary)
}

func (b *Bot) cmdRestart(ctx context.Context, in *Incoming) error {
	if err := b.reply(ctx, in, "🔄 Перезапускаюсь..."); err != nil {
		return err
	}
	log.Printf("[USERBOT %s] перезапуск по команде владельца", b.account.Phone)
	b.runner.RestartAccount(b.account.ID)
	return nil
}

func (b *Bot) cmdShutdown(ctx context.Context, in *Incoming) error {
	if err := b.reply(ctx, in, "👋 Выключаюсь..."); err != nil {
		return err
	}
	log.Printf("[USERBOT %s] остановка по команде владельца", b.account.Phone)
	// Останавливаем в горутине, чтобы cancel не оборвал текущий обработчик.
	go b.runner.StopAccount(b.account.ID)
	return nil
}
