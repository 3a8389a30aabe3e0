package userbot

import (
	"context"
	"fmt"
	"time"

	"github.com/gotd/td/tg"

	tgutil "kira_go/pkg/telegram"
)

const sectionBasic = "📍 Основные"

func (b *Bot) registerBasic() {
	b.register(command{name: "ping", section: sectionBasic,
		usage: ".ping — время отклика", handler: b.cmdPing})
	b.register(command{name: "alive", section: sectionBasic,
		usage: ".alive — проверить, что бот работает", handler: b.cmdAlive})
	b.register(command{name: "help", section: sectionBasic,
		usage: ".help — список команд", handler: b.cmdHelp})
	b.register(command{name: "id", section: sectionBasic,
		usage: ".id — ID чата и пользователя", handler: b.cmdID})
	b.register(command{name: "info", section: sectionBasic,
		usage: ".info [@user] — сведения о пользователе", handler: b.cmdInfo})
	b.register(command{name: "time", section: sectionBasic,
		usage: ".time — текущее время", handler: b.cmdTime})
}

// cmdPing отправляет ответ и дописывает в него время круговой задержки.
func (b *Bot) cmdPing(ctx context.Context, in *Incoming) error {
	start := time.Now()
	msgID, err := b.send(ctx, in.Peer, "🏓 Понг!")
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	if msgID == 0 {
		return nil // ID не получен, оставляем сообщение без замера
	}
	return b.edit(ctx, in.Peer, msgID, fmt.Sprintf("🏓 Понг! %.3fms", float64(elapsed.Microseconds())/1000))
}

func (b *Bot) cmdAlive(ctx context.Context, in *Incoming) error {
	uptime := time.Since(b.started).Round(time.Second)
	return b.reply(ctx, in, fmt.Sprintf("Kira на связи! ✨\nАптайм: %s", uptime))
}

func (b *Bot) cmdHelp(ctx context.Context, in *Incoming) error {
	return b.reply(ctx, in, b.helpText())
}

func (b *Bot) cmdID(ctx context.Context, in *Incoming) error {
	chatID := tgutil.PeerChatID(in.Msg)
	if _, private := in.Msg.PeerID.(*tg.PeerUser); private {
		return b.reply(ctx, in, fmt.Sprintf("Ваш ID: %d", b.self.ID))
	}
	return b.reply(ctx, in, fmt.Sprintf("ID чата: %d\nВаш ID: %d", chatID, b.self.ID))
}

// cmdInfo показывает сведения о пользователе: по @username из аргумента,
// по автору процитированного сообщения либо о самом владельце.
func (b *Bot) cmdInfo(ctx context.Context, in *Incoming) error {
	var user *tg.User
	switch {
	case in.Args != "":
		resolved, err := tgutil.ResolveUser(ctx, b.api, in.Args)
		if err != nil {
			return fmt.Errorf("пользователь не найден: %w", err)
		}
		user = resolved
	case isReply(in.Msg):
		replied, err := b.repliedMessage(ctx, in)
		if err != nil {
			return err
		}
		if from, ok := replied.FromID.(*tg.PeerUser); ok {
			if u, found := in.Entities.Users[from.UserID]; found {
				user = u
			}
		}
		if user == nil {
			return fmt.Errorf("не удалось определить автора сообщения")
		}
	default:
		user = b.self
	}

	bot := "Нет"
	if user.Bot {
		bot = "Да"
	}
	username := "нет"
	if user.Username != "" {
		username = "@" + user.Username
	}
	return b.reply(ctx, in, fmt.Sprintf(
		"👤 Пользователь\nID: %d\nИмя: %s\nUsername: %s\nБот: %s",
		user.ID, tgutil.UserDisplayName(user), username, bot))
}

func (b *Bot) cmdTime(ctx context.Context, in *Incoming) error {
	return b.reply(ctx, in, "🕐 Текущее время:\n"+time.Now().Format("2006-01-02 15:04:05"))
}
