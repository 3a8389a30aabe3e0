package userbot

import (
	"fmt"
	"time"
)

// agoText переводит момент времени в человекочитаемое "N назад".
// Границы грубые: месяц считается за 30 дней, год за 365.
func agoText(t, now time.Time) string {
	if t.IsZero() {
		return "неизвестно"
	}
	diff := now.Sub(t)
	days := int(diff.Hours() / 24)
	switch {
	case days > 365:
		return fmt.Sprintf("%d г. назад", days/365)
	case days > 30:
		return fmt.Sprintf("%d мес. назад", days/30)
	case days > 0:
		return fmt.Sprintf("%d дн. назад", days)
	case diff >= time.Hour:
		return fmt.Sprintf("%d ч. назад", int(diff.Hours()))
	case diff >= time.Minute:
		return fmt.Sprintf("%d мин. назад", int(diff.Minutes()))
	default:
		return "только что"
	}
}

// chatEmoji подбирает значок по типу чата.
func chatEmoji(chatType string) string {
	switch chatType {
	case "user":
		return "👤"
	case "group":
		return "👥"
	default:
		return "📢"
	}
}

// truncateTitle укорачивает длинные названия чатов для сводок.
func truncateTitle(title string, limit int) string {
	runes := []rune(title)
	if len(runes) <= limit {
		return title
	}
	return string(runes[:limit]) + "..."
}
