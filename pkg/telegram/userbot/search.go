package userbot

import (
	"context"
	"fmt"
)

func (b *Bot) registerSearch() {
	b.register(command{name: "google", section: sectionAI,
		usage: ".google <запрос> — поиск в интернете", handler: b.cmdSearch})
	b.register(command{name: "search", section: sectionAI,
		usage: ".search <запрос> — синоним .google", handler: b.cmdSearch})
}

// cmdSearch отвечает результатами DuckDuckGo Instant Answer.
// Telegram режет сообщения длиннее 4096 символов, webapi уже обрезает текст.
func (b *Bot) cmdSearch(ctx context.Context, in *Incoming) error {
	if in.Args == "" {
		return fmt.Errorf("использование: .google <запрос>")
	}
	result, err := b.web.Search(ctx, in.Args)
	if err != nil {
		return fmt.Errorf("ошибка поиска: %w", err)
	}
	return b.reply(ctx, in, result)
}
