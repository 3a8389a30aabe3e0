package userbot

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"kira_go/models"
	tgutil "kira_go/pkg/telegram"
)

const sectionChats = "💬 Управление чатами"

func (b *Bot) registerChats() {
	b.register(command{name: "mychats", section: sectionChats,
		usage: ".mychats — сводка по диалогам", handler: b.cmdMyChats})
	b.register(command{name: "listaccounts", section: sectionChats,
		usage: ".listaccounts — запущенные аккаунты", handler: b.cmdListAccounts})
	b.register(command{name: "backupchats", section: sectionChats,
		usage: ".backupchats — сохранить диалоги в БД", handler: b.cmdBackupChats})
	b.register(command{name: "findchat", section: sectionChats,
		usage: ".findchat <текст> — поиск чата по названию", handler: b.cmdFindChat})
	b.register(command{name: "chatstats", section: sectionChats,
		usage: ".chatstats — статистика диалогов", handler: b.cmdChatStats})
	b.register(command{name: "chatinfo", section: sectionChats,
		usage: ".chatinfo <id|username> — сведения о чате", handler: b.cmdChatInfo})
	b.register(command{name: "clearchats", section: sectionChats,
		usage: ".clearchats <дней> — неактивные чаты", handler: b.cmdClearChats})
}

func (b *Bot) dialogs(ctx context.Context, limit int) ([]models.Chat, error) {
	return tgutil.CollectDialogs(ctx, b.api, b.account.ID, b.account.Name, limit)
}

func (b *Bot) cmdMyChats(ctx context.Context, in *Incoming) error {
	chats, err := b.dialogs(ctx, 40)
	if err != nil {
		return err
	}
	if len(chats) == 0 {
		return b.reply(ctx, in, "❌ Диалоги не найдены.")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📊 Сводка по диалогам\nВсего чатов: %d\n\n%s: %d чатов\n",
		len(chats), b.account.Name, len(chats))

	recent := make([]models.Chat, len(chats))
	copy(recent, chats)
	sort.SliceStable(recent, func(i, j int) bool {
		ti, tj := chatTime(recent[i]), chatTime(recent[j])
		return ti.After(tj)
	})
	if len(recent) > 5 {
		recent = recent[:5]
	}
	sb.WriteString("\n🕐 Недавние чаты:\n")
	for i, c := range recent {
		fmt.Fprintf(&sb, "%d. %s %s\n", i+1, chatEmoji(c.Type), truncateTitle(c.Title, 20))
	}
	return b.reply(ctx, in, sb.String())
}

func chatTime(c models.Chat) time.Time {
	if c.LastMessageDate == nil {
		return time.Time{}
	}
	return *c.LastMessageDate
}

// cmdListAccounts показывает все запущенные аккаунты, не только текущий.
func (b *Bot) cmdListAccounts(ctx context.Context, in *Incoming) error {
	running := b.runner.Running()
	if len(running) == 0 {
		return b.reply(ctx, in, "❌ Нет запущенных аккаунтов.")
	}
	var sb strings.Builder
	sb.WriteString("👥 Аккаунты под управлением:\n\n")
	for _, acc := range running {
		fmt.Fprintf(&sb, "%s\n• ID: %d\n• Телефон: %s\n\n", acc.Name, acc.AccountID, acc.Phone)
	}
	return b.reply(ctx, in, sb.String())
}

func (b *Bot) cmdBackupChats(ctx context.Context, in *Incoming) error {
	msgID, err := b.send(ctx, in.Peer, "💾 Сохраняю метаданные чатов...")
	if err != nil {
		return err
	}
	chats, err := b.dialogs(ctx, 100)
	if err != nil {
		return err
	}
	saved, err := b.db.SaveChats(b.account.ID, chats)
	if err != nil {
		return fmt.Errorf("ошибка сохранения в БД: %w", err)
	}
	if msgID == 0 {
		return b.reply(ctx, in, fmt.Sprintf("✅ Сохранено чатов: %d", saved))
	}
	return b.edit(ctx, in.Peer, msgID, fmt.Sprintf("✅ Сохранено чатов: %d", saved))
}

func (b *Bot) cmdFindChat(ctx context.Context, in *Incoming) error {
	if in.Args == "" {
		return fmt.Errorf("использование: .findchat <текст>")
	}
	query := strings.ToLower(in.Args)
	chats, err := b.dialogs(ctx, 80)
	if err != nil {
		return err
	}
	var found []models.Chat
	for _, c := range chats {
		if strings.Contains(strings.ToLower(c.Title), query) ||
			(c.Username != "" && strings.Contains(strings.ToLower(c.Username), query)) {
			found = append(found, c)
		}
	}
	if len(found) == 0 {
		return b.reply(ctx, in, "❌ Подходящих чатов нет.")
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Найдено чатов: %d\n", len(found))
	for i, c := range found {
		if i == 10 {
			fmt.Fprintf(&sb, "... и ещё %d", len(found)-10)
			break
		}
		fmt.Fprintf(&sb, "%d. %s (аккаунт: %s)\n", i+1, c.Title, c.AccountName)
	}
	return b.reply(ctx, in, sb.String())
}

func (b *Bot) cmdChatStats(ctx context.Context, in *Incoming) error {
	chats, err := b.dialogs(ctx, 100)
	if err != nil {
		return err
	}
	var private, groups, channels, unread int
	for _, c := range chats {
		switch c.Type {
		case models.ChatTypeUser:
			private++
		case models.ChatTypeGroup:
			groups++
		case models.ChatTypeChannel:
			channels++
		}
		unread += c.UnreadCount
	}
	return b.reply(ctx, in, fmt.Sprintf(
		"📈 Статистика диалогов\nВсего: %d\nЛичных: %d\nГрупп: %d\nКаналов: %d\nНепрочитанных сообщений: %d",
		len(chats), private, groups, channels, unread))
}

func (b *Bot) cmdChatInfo(ctx context.Context, in *Incoming) error {
	if in.Args == "" {
		return fmt.Errorf("использование: .chatinfo <id|username>")
	}
	ident := strings.TrimPrefix(in.Args, "@")
	chats, err := b.dialogs(ctx, 80)
	if err != nil {
		return err
	}
	for _, c := range chats {
		if strconv.FormatInt(c.ChatID, 10) != ident &&
			!strings.EqualFold(c.Username, ident) {
			continue
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "📄 Сведения о чате\nНазвание: %s\nID: %d\nАккаунт: %s\nТип: %s\n",
			c.Title, c.ChatID, c.AccountName, chatTypeName(c.Type))
		if c.Username != "" {
			fmt.Fprintf(&sb, "Username: @%s\n", c.Username)
		}
		if c.Participants > 0 {
			fmt.Fprintf(&sb, "Участников: %d\n", c.Participants)
		}
		if c.LastMessageDate != nil {
			fmt.Fprintf(&sb, "Последняя активность: %s\n", agoText(*c.LastMessageDate, time.Now()))
		}
		return b.reply(ctx, in, sb.String())
	}
	return b.reply(ctx, in, "❌ Чат не найден.")
}

func chatTypeName(chatType string) string {
	switch chatType {
	case models.ChatTypeUser:
		return "Личный"
	case models.ChatTypeGroup:
		return "Группа"
	default:
		return "Канал"
	}
}

// cmdClearChats только показывает неактивные чаты, ничего не удаляя.
func (b *Bot) cmdClearChats(ctx context.Context, in *Incoming) error {
	days, err := strconv.Atoi(in.Args)
	if err != nil || days <= 0 {
		return fmt.Errorf("использование: .clearchats <дней>")
	}
	chats, err := b.dialogs(ctx, 100)
	if err != nil {
		return err
	}
	cutoff := time.Now().AddDate(0, 0, -days)
	var inactive []models.Chat
	for _, c := range chats {
		if c.LastMessageDate != nil && c.LastMessageDate.Before(cutoff) {
			inactive = append(inactive, c)
		}
	}
	if len(inactive) == 0 {
		return b.reply(ctx, in, "✅ Неактивных чатов нет.")
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Неактивные чаты (больше %d дн.):\n", days)
	for i, c := range inactive {
		if i == 10 {
			fmt.Fprintf(&sb, "... и ещё %d", len(inactive)-10)
			break
		}
		fmt.Fprintf(&sb, "%d. %s (активность: %s)\n", i+1, c.Title, agoText(*c.LastMessageDate, time.Now()))
	}
	return b.reply(ctx, in, sb.String())
}
