// Package webapi объединяет обращения к публичным HTTP-API,
// которые используют команды бота (.google, .weather, .wiki и другие).
// Все запросы идут через общий клиент с таймаутом.
package webapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Базовые адреса вынесены в поля клиента, чтобы тесты могли подменять их
// на локальные серверы.
type Client struct {
	HTTP *http.Client

	DuckDuckGoURL string
	WeatherURL    string
	WikiURL       string
	DictionaryURL string
	LyricsURL     string
	ShortenURL    string
	CryptoURL     string
	TranslateURL  string
	FactURL       string
	JokeURL       string
	QuoteURL      string
	AnimeURL      string
	CatURL        string
	DogURL        string
}

func NewClient(timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		HTTP:          &http.Client{Timeout: timeout},
		DuckDuckGoURL: "https://api.duckduckgo.com",
		WeatherURL:    "https://wttr.in",
		WikiURL:       "https://en.wikipedia.org/api/rest_v1/page/summary",
		DictionaryURL: "https://api.dictionaryapi.dev/api/v2/entries/en",
		LyricsURL:     "https://api.lyrics.ovh/v1",
		ShortenURL:    "https://is.gd/create.php",
		CryptoURL:     "https://api.coingecko.com/api/v3/simple/price",
		TranslateURL:  "https://api.mymemory.translated.net/get",
		FactURL:       "https://uselessfacts.jsph.pl/random.json?language=en",
		JokeURL:       "https://v2.jokeapi.dev/joke/Any?type=single",
		QuoteURL:      "https://api.quotable.io/random",
		AnimeURL:      "https://api.jikan.moe/v4/anime",
		CatURL:        "https://api.thecatapi.com/v1/images/search",
		DogURL:        "https://api.thedogapi.com/v1/images/search",
	}
}

// getJSON выполняет GET-запрос и разбирает JSON-ответ в out.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// getText выполняет GET-запрос и возвращает тело ответа как строку.
func (c *Client) getText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// truncate обрезает строку до limit рун с многоточием.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
