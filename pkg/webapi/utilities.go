package webapi

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// Weather возвращает краткую сводку погоды для города через wttr.in.
func (c *Client) Weather(ctx context.Context, city string) (string, error) {
	endpoint := fmt.Sprintf("%s/%s?format=%s&m", c.WeatherURL, url.PathEscape(city),
		url.QueryEscape("%c +%t +%w +%h"))
	body, err := c.getText(ctx, endpoint)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Погода в %s:\n%s", city, strings.TrimSpace(body)), nil
}

type wikiSummary struct {
	Title       string `json:"title"`
	Extract     string `json:"extract"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}

// Wiki возвращает краткое содержание статьи Википедии.
func (c *Client) Wiki(ctx context.Context, query string) (string, error) {
	endpoint := c.WikiURL + "/" + url.PathEscape(query)
	var summary wikiSummary
	if err := c.getJSON(ctx, endpoint, &summary); err != nil {
		return "", err
	}
	extract := summary.Extract
	if extract == "" {
		extract = "Краткое содержание недоступно."
	}
	title := summary.Title
	if title == "" {
		title = query
	}
	return fmt.Sprintf("%s\n%s\n\nПодробнее: %s", title, truncate(extract, 1000),
		summary.ContentURLs.Desktop.Page), nil
}

type dictionaryEntry struct {
	Meanings []struct {
		PartOfSpeech string `json:"partOfSpeech"`
		Definitions  []struct {
			Definition string `json:"definition"`
			Example    string `json:"example"`
		} `json:"definitions"`
	} `json:"meanings"`
}

// Define возвращает словарное определение английского слова.
func (c *Client) Define(ctx context.Context, word string) (string, error) {
	endpoint := c.DictionaryURL + "/" + url.PathEscape(word)
	var entries []dictionaryEntry
	if err := c.getJSON(ctx, endpoint, &entries); err != nil {
		return "", err
	}
	if len(entries) == 0 || len(entries[0].Meanings) == 0 || len(entries[0].Meanings[0].Definitions) == 0 {
		return "", fmt.Errorf("word not found")
	}
	meaning := entries[0].Meanings[0]
	def := meaning.Definitions[0]
	example := def.Example
	if example == "" {
		example = "Примера нет"
	}
	return fmt.Sprintf("%s\n%s\n📖 %s\n📝 Пример: %s", word, meaning.PartOfSpeech, def.Definition, example), nil
}

// Lyrics возвращает текст песни через lyrics.ovh.
func (c *Client) Lyrics(ctx context.Context, song string) (string, error) {
	endpoint := c.LyricsURL + "/" + url.PathEscape(song)
	var payload struct {
		Lyrics string `json:"lyrics"`
	}
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return "", err
	}
	if payload.Lyrics == "" {
		return "", fmt.Errorf("lyrics not found")
	}
	return fmt.Sprintf("%s\n\n%s", song, truncate(payload.Lyrics, 1000)), nil
}

// Shorten сокращает ссылку через is.gd.
func (c *Client) Shorten(ctx context.Context, longURL string) (string, error) {
	endpoint := fmt.Sprintf("%s?format=simple&url=%s", c.ShortenURL, url.QueryEscape(longURL))
	body, err := c.getText(ctx, endpoint)
	if err != nil {
		return "", err
	}
	body = strings.TrimSpace(body)
	if strings.HasPrefix(body, "Error") {
		return "", fmt.Errorf("shorten failed: %s", body)
	}
	return "🔗 Сокращено: " + body, nil
}

// Crypto возвращает цену криптовалюты по идентификатору CoinGecko.
func (c *Client) Crypto(ctx context.Context, coin string) (string, error) {
	coin = strings.ToLower(coin)
	endpoint := fmt.Sprintf("%s?ids=%s&vs_currencies=usd,eur,btc&include_24hr_change=true",
		c.CryptoURL, url.QueryEscape(coin))

	prices := map[string]map[string]float64{}
	if err := c.getJSON(ctx, endpoint, &prices); err != nil {
		return "", err
	}
	data, ok := prices[coin]
	if !ok {
		return "", fmt.Errorf("coin %q not found", coin)
	}
	arrow := "📉"
	change := data["usd_24h_change"]
	if change > 0 {
		arrow = "📈"
	}
	return fmt.Sprintf("%s\nUSD: $%.2f\nEUR: €%.2f\nBTC: %.8f\nЗа 24 часа: %s %.2f%%",
		strings.ToUpper(coin), data["usd"], data["eur"], data["btc"], arrow, change), nil
}

// Translate переводит текст с английского на указанный язык через MyMemory.
func (c *Client) Translate(ctx context.Context, lang, text string) (string, error) {
	endpoint := fmt.Sprintf("%s?q=%s&langpair=en|%s", c.TranslateURL,
		url.QueryEscape(text), url.QueryEscape(lang))
	var payload struct {
		ResponseData struct {
			TranslatedText string `json:"translatedText"`
		} `json:"responseData"`
	}
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return "", err
	}
	if payload.ResponseData.TranslatedText == "" {
		return "", fmt.Errorf("translation failed")
	}
	return fmt.Sprintf("Перевод (%s):\n%s", lang, payload.ResponseData.TranslatedText), nil
}
