package webapi

import (
	"context"
	"fmt"
	"net/url"
)

// Fact возвращает случайный факт.
func (c *Client) Fact(ctx context.Context) (string, error) {
	var payload struct {
		Text string `json:"text"`
	}
	if err := c.getJSON(ctx, c.FactURL, &payload); err != nil {
		return "", err
	}
	return "📌 А вы знали?\n" + payload.Text, nil
}

// Joke возвращает случайную шутку.
func (c *Client) Joke(ctx context.Context) (string, error) {
	var payload struct {
		Joke string `json:"joke"`
	}
	if err := c.getJSON(ctx, c.JokeURL, &payload); err != nil {
		return "", err
	}
	return "😂 " + payload.Joke, nil
}

// Quote возвращает случайную цитату.
func (c *Client) Quote(ctx context.Context) (string, error) {
	var payload struct {
		Content string `json:"content"`
		Author  string `json:"author"`
	}
	if err := c.getJSON(ctx, c.QuoteURL, &payload); err != nil {
		return "", err
	}
	return fmt.Sprintf("💬 «%s»\n— %s", payload.Content, payload.Author), nil
}

type animeResult struct {
	Data []struct {
		Title    string  `json:"title"`
		Type     string  `json:"type"`
		Score    float64 `json:"score"`
		Episodes int     `json:"episodes"`
		Synopsis string  `json:"synopsis"`
		URL      string  `json:"url"`
		Aired    struct {
			String string `json:"string"`
		} `json:"aired"`
	} `json:"data"`
}

// Anime ищет аниме через Jikan API и форматирует первую находку.
func (c *Client) Anime(ctx context.Context, query string) (string, error) {
	endpoint := fmt.Sprintf("%s?q=%s&limit=1", c.AnimeURL, url.QueryEscape(query))
	var result animeResult
	if err := c.getJSON(ctx, endpoint, &result); err != nil {
		return "", err
	}
	if len(result.Data) == 0 {
		return "", fmt.Errorf("no results")
	}
	a := result.Data[0]
	return fmt.Sprintf("%s (%s)\n⭐ Оценка: %.2f | Серий: %d\n📅 %s\n📖 %s\n🔗 %s",
		a.Title, a.Type, a.Score, a.Episodes, a.Aired.String, truncate(a.Synopsis, 500), a.URL), nil
}

// RandomCat возвращает ссылку на случайную картинку с котом.
func (c *Client) RandomCat(ctx context.Context) (string, error) {
	return c.randomImage(ctx, c.CatURL)
}

// RandomDog возвращает ссылку на случайную картинку с собакой.
func (c *Client) RandomDog(ctx context.Context) (string, error) {
	return c.randomImage(ctx, c.DogURL)
}

func (c *Client) randomImage(ctx context.Context, endpoint string) (string, error) {
	var payload []struct {
		URL string `json:"url"`
	}
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return "", err
	}
	if len(payload) == 0 || payload[0].URL == "" {
		return "", fmt.Errorf("no image in response")
	}
	return payload[0].URL, nil
}
