// Package userbot реализует бота, работающего от имени обычного аккаунта:
// диспетчер точечных команд (.ping, .ai, .google и так далее), обработчики
// и запуск клиентов для нескольких аккаунтов.
package userbot

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/gotd/td/tg"

	"kira_go/models"
	"kira_go/pkg/storage"
	tgutil "kira_go/pkg/telegram"
	"kira_go/pkg/webapi"
)

// Config — настройки поведения бота, общие для всех аккаунтов.
type Config struct {
	TypingMinMS       int    // Нижняя граница паузы "печатает..."
	TypingMaxMS       int    // Верхняя граница паузы "печатает..."
	ExportDir         string // Каталог файлов экспорта
	BroadcastPauseSec int    // Пауза между сообщениями рассылки
	LogFile           string // Файл журнала для команды .logs
}

// Incoming — входящая команда вместе с контекстом сообщения.
type Incoming struct {
	Msg      *tg.Message
	Args     string // Хвост сообщения после имени команды
	Peer     tg.InputPeerClass
	Entities tg.Entities
}

// HandlerFunc обрабатывает одну команду.
type HandlerFunc func(ctx context.Context, in *Incoming) error

// command — строка статической таблицы диспетчера.
type command struct {
	name    string // Имя без ведущей точки
	usage   string // Подсказка для .help
	section string // Раздел справки
	handler HandlerFunc
}

// Bot держит все зависимости обработчиков одного аккаунта.
type Bot struct {
	api      *tg.Client
	db       *storage.DB
	web      *webapi.Client
	account  models.Account
	self     *tg.User
	cfg      Config
	runner   *Runner
	commands map[string]command
	sections []string            // Порядок разделов в справке
	bySect   map[string][]string // Имена команд по разделам, в порядке регистрации
	started  time.Time
}

// NewBot собирает бота и заполняет таблицу команд.
// Таблица после этого не меняется.
func NewBot(api *tg.Client, db *storage.DB, web *webapi.Client, account models.Account, self *tg.User, cfg Config, runner *Runner) *Bot {
	b := &Bot{
		api:      api,
		db:       db,
		web:      web,
		account:  account,
		self:     self,
		cfg:      cfg,
		runner:   runner,
		commands: make(map[string]command),
		bySect:   make(map[string][]string),
		started:  time.Now(),
	}
	b.registerBasic()
	b.registerAI()
	b.registerSearch()
	b.registerChats()
	b.registerExport()
	b.registerProfile()
	b.registerAdmin()
	b.registerWeb()
	b.registerFun()
	b.registerCalc()
	b.registerSched()
	b.registerSystem()
	return b
}

// register добавляет команду в таблицу. Повторная регистрация имени —
// ошибка программиста, поэтому сразу паникуем.
func (b *Bot) register(cmd command) {
	if _, exists := b.commands[cmd.name]; exists {
		panic(fmt.Sprintf("userbot: команда %q зарегистрирована дважды", cmd.name))
	}
	b.commands[cmd.name] = cmd
	if _, seen := b.bySect[cmd.section]; !seen {
		b.sections = append(b.sections, cmd.section)
	}
	b.bySect[cmd.section] = append(b.bySect[cmd.section], cmd.name)
}

// Bind подключает бота к диспетчеру обновлений клиента.
// Супергруппы приходят отдельным типом апдейта, поэтому обработчика два.
func (b *Bot) Bind(dispatcher *tg.UpdateDispatcher) {
	dispatcher.OnNewMessage(func(ctx context.Context, e tg.Entities, upd *tg.UpdateNewMessage) error {
		if msg, ok := upd.Message.(*tg.Message); ok {
			b.handleMessage(ctx, e, msg)
		}
		return nil
	})
	dispatcher.OnNewChannelMessage(func(ctx context.Context, e tg.Entities, upd *tg.UpdateNewChannelMessage) error {
		if msg, ok := upd.Message.(*tg.Message); ok {
			b.handleMessage(ctx, e, msg)
		}
		return nil
	})
}

// ParseCommand разбирает текст сообщения на имя команды и аргументы.
// Командой считается слово с ведущей точкой: ".ai привет" -> ("ai", "привет").
func ParseCommand(text string) (name, args string, ok bool) {
	if !strings.HasPrefix(text, ".") || len(text) < 2 {
		return "", "", false
	}
	body := text[1:]
	if strings.HasPrefix(body, ".") || strings.HasPrefix(body, " ") {
		// "..." и ". текст" — обычные сообщения, не команды.
		return "", "", false
	}
	name, args, _ = strings.Cut(body, " ")
	return name, strings.TrimSpace(args), true
}

// handleMessage пропускает сообщение через таблицу команд.
// Обрабатываются только собственные сообщения аккаунта: владелец управляет
// ботом из своего же клиента Telegram.
func (b *Bot) handleMessage(ctx context.Context, e tg.Entities, msg *tg.Message) {
	if !msg.Out {
		return
	}
	name, args, ok := ParseCommand(msg.Message)
	if !ok {
		return
	}
	cmd, known := b.commands[name]
	if !known {
		return
	}

	peer, err := tgutil.InputPeerFromMessage(msg, e)
	if err != nil {
		log.Printf("[USERBOT %s] не удалось определить чат: %v", b.account.Phone, err)
		return
	}
	in := &Incoming{Msg: msg, Args: args, Peer: peer, Entities: e}

	// Имитация набора перед любым ответом.
	if err := tgutil.SendTyping(ctx, b.api, peer, b.cfg.TypingMinMS, b.cfg.TypingMaxMS); err != nil {
		return // Контекст отменён, бот останавливается
	}
	defer tgutil.CancelTyping(ctx, b.api, peer)

	log.Printf("[USERBOT %s] команда .%s", b.account.Phone, name)
	if err := cmd.handler(ctx, in); err != nil {
		log.Printf("[USERBOT %s] .%s: %v", b.account.Phone, name, err)
		b.checkFloodWait(err)
		// Ошибку показываем в том же чате, как это делал бы живой ассистент.
		if replyErr := b.reply(ctx, in, "❌ Ошибка: "+err.Error()); replyErr != nil {
			log.Printf("[USERBOT %s] не удалось отправить сообщение об ошибке: %v", b.account.Phone, replyErr)
		}
	}
}

// checkFloodWait фиксирует флуд-бан аккаунта в БД, чтобы операторы видели его в API.
func (b *Bot) checkFloodWait(err error) {
	if err == nil || !strings.Contains(err.Error(), "FLOOD_WAIT") {
		return
	}
	until := time.Now().Add(time.Hour)
	if dbErr := b.db.MarkFloodBan(b.account.ID, until); dbErr != nil {
		log.Printf("[USERBOT %s] не удалось зафиксировать флуд-бан: %v", b.account.Phone, dbErr)
	}
}

// helpText собирает справку по разделам в порядке регистрации команд.
func (b *Bot) helpText() string {
	var sb strings.Builder
	sb.WriteString("🤖 Команды Kira (только для владельца)\n")
	for _, section := range b.sections {
		fmt.Fprintf(&sb, "\n%s\n", section)
		for _, name := range b.bySect[section] {
			fmt.Fprintf(&sb, "%s\n", b.commands[name].usage)
		}
	}
	return sb.String()
}

// CommandNames возвращает отсортированный список зарегистрированных команд.
func (b *Bot) CommandNames() []string {
	names := make([]string, 0, len(b.commands))
	for name := range b.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
