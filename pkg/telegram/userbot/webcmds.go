package userbot

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

const sectionWeb = "🌐 Интернет"

func (b *Bot) registerWeb() {
	b.register(command{name: "weather", section: sectionWeb,
		usage: ".weather <город> — прогноз погоды", handler: b.cmdWeather})
	b.register(command{name: "wiki", section: sectionWeb,
		usage: ".wiki <запрос> — статья Википедии", handler: b.cmdWiki})
	b.register(command{name: "define", section: sectionWeb,
		usage: ".define <слово> — толкование слова", handler: b.cmdDefine})
	b.register(command{name: "lyrics", section: sectionWeb,
		usage: ".lyrics <исполнитель - песня> — текст песни", handler: b.cmdLyrics})
	b.register(command{name: "shorten", section: sectionWeb,
		usage: ".shorten <url> — сократить ссылку", handler: b.cmdShorten})
	b.register(command{name: "crypto", section: sectionWeb,
		usage: ".crypto <монета> — курс криптовалюты", handler: b.cmdCrypto})
	b.register(command{name: "translate", section: sectionWeb,
		usage: ".translate <язык> <текст> — перевод", handler: b.cmdTranslate})
	b.register(command{name: "yt", section: sectionWeb,
		usage: ".yt <запрос> — поиск на YouTube", handler: b.cmdYT})
	b.register(command{name: "fact", section: sectionWeb,
		usage: ".fact — случайный факт", handler: b.cmdFact})
	b.register(command{name: "joke", section: sectionWeb,
		usage: ".joke — случайная шутка", handler: b.cmdJoke})
	b.register(command{name: "quote", section: sectionWeb,
		usage: ".quote — случайная цитата", handler: b.cmdQuote})
	b.register(command{name: "anime", section: sectionWeb,
		usage: ".anime <название> — поиск аниме", handler: b.cmdAnime})
}

// webCommand оборачивает типовой обработчик "аргумент -> текст из внешнего API".
func (b *Bot) webCommand(usage string, fetch func(ctx context.Context, arg string) (string, error)) HandlerFunc {
	return func(ctx context.Context, in *Incoming) error {
		if in.Args == "" {
			return fmt.Errorf("использование: %s", usage)
		}
		text, err := fetch(ctx, in.Args)
		if err != nil {
			return err
		}
		return b.reply(ctx, in, text)
	}
}

func (b *Bot) cmdWeather(ctx context.Context, in *Incoming) error {
	return b.webCommand(".weather <город>", b.web.Weather)(ctx, in)
}

func (b *Bot) cmdWiki(ctx context.Context, in *Incoming) error {
	return b.webCommand(".wiki <запрос>", b.web.Wiki)(ctx, in)
}

func (b *Bot) cmdDefine(ctx context.Context, in *Incoming) error {
	return b.webCommand(".define <слово>", b.web.Define)(ctx, in)
}

func (b *Bot) cmdLyrics(ctx context.Context, in *Incoming) error {
	return b.webCommand(".lyrics <исполнитель - песня>", b.web.Lyrics)(ctx, in)
}

func (b *Bot) cmdShorten(ctx context.Context, in *Incoming) error {
	return b.webCommand(".shorten <url>", b.web.Shorten)(ctx, in)
}

func (b *Bot) cmdCrypto(ctx context.Context, in *Incoming) error {
	return b.webCommand(".crypto <монета>", b.web.Crypto)(ctx, in)
}

func (b *Bot) cmdTranslate(ctx context.Context, in *Incoming) error {
	lang, text, found := strings.Cut(in.Args, " ")
	if !found || len(lang) != 2 {
		return fmt.Errorf("использование: .translate <язык из двух букв> <текст>")
	}
	result, err := b.web.Translate(ctx, lang, text)
	if err != nil {
		return err
	}
	return b.reply(ctx, in, result)
}

// cmdYT отвечает ссылкой на поиск: прямого API у YouTube без ключа нет.
func (b *Bot) cmdYT(ctx context.Context, in *Incoming) error {
	if in.Args == "" {
		return fmt.Errorf("использование: .yt <запрос>")
	}
	link := "https://www.youtube.com/results?search_query=" + url.QueryEscape(in.Args)
	return b.reply(ctx, in, fmt.Sprintf("🎬 Поиск на YouTube: %s\n%s", in.Args, link))
}

// Ответы .fact, .joke и .quote уже оформлены на стороне webapi,
// здесь текст отправляется как есть.
func (b *Bot) cmdFact(ctx context.Context, in *Incoming) error {
	text, err := b.web.Fact(ctx)
	if err != nil {
		return err
	}
	return b.reply(ctx, in, text)
}

func (b *Bot) cmdJoke(ctx context.Context, in *Incoming) error {
	text, err := b.web.Joke(ctx)
	if err != nil {
		return err
	}
	return b.reply(ctx, in, text)
}

func (b *Bot) cmdQuote(ctx context.Context, in *Incoming) error {
	text, err := b.web.Quote(ctx)
	if err != nil {
		return err
	}
	return b.reply(ctx, in, text)
}

func (b *Bot) cmdAnime(ctx context.Context, in *Incoming) error {
	return b.webCommand(".anime <название>", b.web.Anime)(ctx, in)
}
