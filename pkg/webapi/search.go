package webapi

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// duckDuckGoAnswer — нужная часть ответа DuckDuckGo Instant Answer API.
type duckDuckGoAnswer struct {
	AbstractText   string `json:"AbstractText"`
	AbstractSource string `json:"AbstractSource"`
	AbstractURL    string `json:"AbstractURL"`
	RelatedTopics  []struct {
		Text string `json:"Text"`
	} `json:"RelatedTopics"`
}

// Search выполняет поиск через DuckDuckGo и форматирует результат для отправки в чат.
func (c *Client) Search(ctx context.Context, query string) (string, error) {
	endpoint := fmt.Sprintf("%s/?q=%s&format=json&no_html=1&skip_disambig=1",
		c.DuckDuckGoURL, url.QueryEscape(query))

	var answer duckDuckGoAnswer
	if err := c.getJSON(ctx, endpoint, &answer); err != nil {
		return "", err
	}

	if answer.AbstractText != "" {
		var b strings.Builder
		fmt.Fprintf(&b, "🔎 %s\n\n%s\n", query, answer.AbstractText)
		if answer.AbstractSource != "" {
			fmt.Fprintf(&b, "\n📚 Источник: %s", answer.AbstractSource)
		}
		if answer.AbstractURL != "" {
			fmt.Fprintf(&b, "\n🔗 %s", answer.AbstractURL)
		}
		return b.String(), nil
	}

	if len(answer.RelatedTopics) > 0 {
		topics := answer.RelatedTopics
		if len(topics) > 5 {
			topics = topics[:5]
		}
		var b strings.Builder
		fmt.Fprintf(&b, "🔎 Результаты поиска: %s\n\n", query)
		for i, t := range topics {
			if t.Text == "" {
				continue
			}
			fmt.Fprintf(&b, "%d. %s\n", i+1, truncate(t.Text, 100))
		}
		return b.String(), nil
	}

	// Прямого ответа нет, отдаём ссылку на обычный поиск.
	google := "https://www.google.com/search?q=" + url.QueryEscape(query)
	return fmt.Sprintf("🔎 Мгновенных результатов нет.\n%s", google), nil
}
