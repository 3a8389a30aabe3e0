package webapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testClient(srv *httptest.Server) *Client {
	c := NewClient(time.Second)
	c.DuckDuckGoURL = srv.URL
	c.WeatherURL = srv.URL
	c.WikiURL = srv.URL
	c.ShortenURL = srv.URL
	c.CryptoURL = srv.URL
	c.FactURL = srv.URL
	c.CatURL = srv.URL
	return c
}

// TestSearchAbstract проверяет формат ответа при наличии прямого ответа DuckDuckGo.
func TestSearchAbstract(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "golang" {
			t.Errorf("ожидался запрос golang, получено %q", got)
		}
		w.Write([]byte(`{"AbstractText":"Язык программирования","AbstractSource":"Wikipedia","AbstractURL":"https://example.com"}`))
	}))
	defer srv.Close()

	got, err := testClient(srv).Search(context.Background(), "golang")
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if !strings.Contains(got, "Язык программирования") || !strings.Contains(got, "Wikipedia") {
		t.Fatalf("ответ не содержит ожидаемых полей: %q", got)
	}
}

// TestSearchRelatedTopics проверяет запасной вариант со списком тем.
func TestSearchRelatedTopics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"RelatedTopics":[{"Text":"Первая тема"},{"Text":"Вторая тема"}]}`))
	}))
	defer srv.Close()

	got, err := testClient(srv).Search(context.Background(), "тест")
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if !strings.Contains(got, "1. Первая тема") || !strings.Contains(got, "2. Вторая тема") {
		t.Fatalf("список тем не отформатирован: %q", got)
	}
}

// TestSearchNoResults проверяет, что без результатов возвращается ссылка на Google.
func TestSearchNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	got, err := testClient(srv).Search(context.Background(), "ничего")
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if !strings.Contains(got, "google.com/search") {
		t.Fatalf("нет запасной ссылки на поиск: %q", got)
	}
}

// TestCryptoFormatsChange проверяет подбор стрелки по знаку суточного изменения.
func TestCryptoFormatsChange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"bitcoin":{"usd":100000,"eur":90000,"btc":1,"usd_24h_change":-3.5}}`))
	}))
	defer srv.Close()

	got, err := testClient(srv).Crypto(context.Background(), "Bitcoin")
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if !strings.Contains(got, "BITCOIN") || !strings.Contains(got, "📉") {
		t.Fatalf("формат цены некорректен: %q", got)
	}
}

// TestCryptoUnknownCoin проверяет ошибку для неизвестной монеты.
func TestCryptoUnknownCoin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	if _, err := testClient(srv).Crypto(context.Background(), "noname"); err == nil {
		t.Fatalf("ожидалась ошибка для неизвестной монеты")
	}
}

// TestShortenError проверяет, что текстовая ошибка is.gd превращается в error.
func TestShortenError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Error: invalid url"))
	}))
	defer srv.Close()

	if _, err := testClient(srv).Shorten(context.Background(), "непонятно"); err == nil {
		t.Fatalf("ожидалась ошибка сокращения")
	}
}

// TestRandomCat проверяет извлечение ссылки из массива ответа.
func TestRandomCat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"url":"https://example.com/cat.jpg"}]`))
	}))
	defer srv.Close()

	got, err := testClient(srv).RandomCat(context.Background())
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if got != "https://example.com/cat.jpg" {
		t.Fatalf("ожидалась ссылка на картинку, получено %q", got)
	}
}

// TestStatusError проверяет, что не-200 ответ считается ошибкой.
func TestStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := testClient(srv).Fact(context.Background()); err == nil {
		t.Fatalf("ожидалась ошибка статуса")
	}
}

// TestFactDecoration проверяет, что оформление факта живёт только в этом слое
// и заголовок встречается в ответе ровно один раз.
func TestFactDecoration(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"text":"Мёд не портится."}`))
	}))
	defer srv.Close()

	got, err := testClient(srv).Fact(context.Background())
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if got != "📌 А вы знали?\nМёд не портится." {
		t.Fatalf("неверное оформление факта: %q", got)
	}
	if strings.Count(got, "📌") != 1 {
		t.Fatalf("заголовок должен встречаться один раз: %q", got)
	}
}

// TestJokeDecoration проверяет однократное оформление шутки.
func TestJokeDecoration(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"joke":"Колобок повесился."}`))
	}))
	defer srv.Close()

	c := testClient(srv)
	c.JokeURL = srv.URL
	got, err := c.Joke(context.Background())
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if got != "😂 Колобок повесился." {
		t.Fatalf("неверное оформление шутки: %q", got)
	}
	if strings.Count(got, "😂") != 1 {
		t.Fatalf("смайлик должен встречаться один раз: %q", got)
	}
}
