package userbot

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"kira_go/models"
	tgutil "kira_go/pkg/telegram"
)

const sectionExport = "📤 Экспорт"

func (b *Bot) registerExport() {
	b.register(command{name: "exportchats", section: sectionExport,
		usage: ".exportchats <csv|json> — выгрузить список диалогов", handler: b.cmdExportChats})
	b.register(command{name: "export", section: sectionExport,
		usage: ".export <csv|json> [N] — выгрузить историю текущего чата", handler: b.cmdExportHistory})
}

// cmdExportChats выгружает снимок всех диалогов аккаунта файлом в текущий чат.
func (b *Bot) cmdExportChats(ctx context.Context, in *Incoming) error {
	format, err := exportFormat(in.Args)
	if err != nil {
		return fmt.Errorf("использование: .exportchats <csv|json>")
	}
	msgID, err := b.send(ctx, in.Peer, fmt.Sprintf("📤 Выгружаю диалоги в %s...", strings.ToUpper(format)))
	if err != nil {
		return err
	}

	chats, err := b.dialogs(ctx, 100)
	if err != nil {
		return err
	}
	if len(chats) == 0 {
		return b.edit(ctx, in.Peer, msgID, "❌ Нечего выгружать.")
	}

	path := b.exportPath("chats", format)
	defer os.Remove(path)
	if format == "csv" {
		err = writeChatsCSV(path, chats)
	} else {
		err = writeChatsJSON(path, chats)
	}
	if err != nil {
		return fmt.Errorf("ошибка записи файла: %w", err)
	}

	if err := b.sendDocument(ctx, in.Peer, path, exportMime(format)); err != nil {
		return err
	}
	return b.edit(ctx, in.Peer, msgID, fmt.Sprintf("✅ Выгружено диалогов: %d", len(chats)))
}

// cmdExportHistory выгружает последние N сообщений текущего чата (по умолчанию 100).
func (b *Bot) cmdExportHistory(ctx context.Context, in *Incoming) error {
	fields := strings.Fields(in.Args)
	if len(fields) == 0 {
		return fmt.Errorf("использование: .export <csv|json> [N]")
	}
	format, err := exportFormat(fields[0])
	if err != nil {
		return err
	}
	limit := 100
	if len(fields) > 1 {
		limit, err = strconv.Atoi(fields[1])
		if err != nil || limit <= 0 {
			return fmt.Errorf("число сообщений должно быть положительным")
		}
		if limit > 1000 {
			limit = 1000
		}
	}

	msgID, err := b.send(ctx, in.Peer, fmt.Sprintf("📤 Выгружаю историю (%d сообщений)...", limit))
	if err != nil {
		return err
	}
	records, err := tgutil.ChatHistory(ctx, b.api, in.Peer, limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return b.edit(ctx, in.Peer, msgID, "❌ История пуста.")
	}

	path := b.exportPath("history", format)
	defer os.Remove(path)
	if format == "csv" {
		err = writeHistoryCSV(path, records)
	} else {
		err = writeHistoryJSON(path, records)
	}
	if err != nil {
		return fmt.Errorf("ошибка записи файла: %w", err)
	}

	if err := b.sendDocument(ctx, in.Peer, path, exportMime(format)); err != nil {
		return err
	}
	return b.edit(ctx, in.Peer, msgID, fmt.Sprintf("✅ Выгружено сообщений: %d", len(records)))
}

func exportFormat(arg string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(arg))
	if format != "csv" && format != "json" {
		return "", fmt.Errorf("формат должен быть csv или json")
	}
	return format, nil
}

func exportMime(format string) string {
	if format == "csv" {
		return "text/csv"
	}
	return "application/json"
}

// exportPath собирает уникальное имя файла в каталоге экспорта.
func (b *Bot) exportPath(kind, format string) string {
	dir := b.cfg.ExportDir
	if dir == "" {
		dir = os.TempDir()
	}
	_ = os.MkdirAll(dir, 0o755)
	return filepath.Join(dir, fmt.Sprintf("%s_%s.%s", kind, uuid.New().String(), format))
}

func writeChatsCSV(path string, chats []models.Chat) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Account", "Chat ID", "Title", "Username", "Type", "Unread", "Last Active"}); err != nil {
		return err
	}
	for _, c := range chats {
		lastActive := ""
		if c.LastMessageDate != nil {
			lastActive = c.LastMessageDate.Format("2006-01-02 15:04:05")
		}
		row := []string{
			c.AccountName,
			strconv.FormatInt(c.ChatID, 10),
			c.Title,
			c.Username,
			c.Type,
			strconv.Itoa(c.UnreadCount),
			lastActive,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeChatsJSON(path string, chats []models.Chat) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(chats)
}

func writeHistoryCSV(path string, records []models.MessageRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"ID", "Sender", "Timestamp", "Text"}); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.ID),
			r.Sender,
			r.Timestamp.Format("2006-01-02 15:04:05"),
			r.Text,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeHistoryJSON(path string, records []models.MessageRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
