package userbot

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"kira_go/models"
)

func TestWriteChatsCSV(t *testing.T) {
	last := time.Date(2025, 5, 1, 10, 30, 0, 0, time.UTC)
	chats := []models.Chat{
		{AccountName: "Главный", ChatID: 777, Title: "Рабочий чат, важный", Username: "work", Type: "group", UnreadCount: 3, LastMessageDate: &last},
		{AccountName: "Главный", ChatID: 42, Title: "Личный", Type: "user"},
	}

	path := filepath.Join(t.TempDir(), "chats.csv")
	if err := writeChatsCSV(path, chats); err != nil {
		t.Fatalf("запись CSV завершилась ошибкой: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("файл не открылся: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("файл не читается как CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("ожидалось 3 строки (заголовок + 2 чата), получено %d", len(rows))
	}
	if rows[0][0] != "Account" || rows[0][6] != "Last Active" {
		t.Errorf("неверный заголовок: %v", rows[0])
	}
	// Запятая в названии должна пережить круговую запись.
	if rows[1][2] != "Рабочий чат, важный" {
		t.Errorf("название искажено: %q", rows[1][2])
	}
	if rows[1][6] != "2025-05-01 10:30:00" {
		t.Errorf("неверная дата активности: %q", rows[1][6])
	}
	if rows[2][6] != "" {
		t.Errorf("чат без активности должен иметь пустую дату, получено %q", rows[2][6])
	}
}

func TestWriteChatsJSON(t *testing.T) {
	chats := []models.Chat{{AccountID: 1, ChatID: 99, Title: "Канал", Type: "channel"}}

	path := filepath.Join(t.TempDir(), "chats.json")
	if err := writeChatsJSON(path, chats); err != nil {
		t.Fatalf("запись JSON завершилась ошибкой: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("файл не читается: %v", err)
	}
	var decoded []models.Chat
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("файл не разбирается как JSON: %v", err)
	}
	if len(decoded) != 1 || decoded[0].ChatID != 99 || decoded[0].Type != "channel" {
		t.Errorf("данные искажены: %+v", decoded)
	}
}

func TestWriteHistoryCSV(t *testing.T) {
	records := []models.MessageRecord{
		{ID: 1, Sender: "Анна", Timestamp: time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC), Text: "строка\nс переносом"},
		{ID: 2, Sender: "Борис", Timestamp: time.Date(2025, 5, 1, 9, 1, 0, 0, time.UTC), Text: "ответ"},
	}

	path := filepath.Join(t.TempDir(), "history.csv")
	if err := writeHistoryCSV(path, records); err != nil {
		t.Fatalf("запись CSV завершилась ошибкой: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("файл не открылся: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("файл не читается как CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("ожидалось 3 строки, получено %d", len(rows))
	}
	if rows[1][3] != "строка\nс переносом" {
		t.Errorf("перенос строки в тексте не пережил запись: %q", rows[1][3])
	}
}

func TestExportFormat(t *testing.T) {
	if _, err := exportFormat("xml"); err == nil {
		t.Error("xml должен отклоняться")
	}
	got, err := exportFormat("  CSV ")
	if err != nil || got != "csv" {
		t.Errorf("формат должен нормализоваться: %q, %v", got, err)
	}
}

func TestExportPathUnique(t *testing.T) {
	b := &Bot{cfg: Config{ExportDir: t.TempDir()}}
	first := b.exportPath("chats", "csv")
	second := b.exportPath("chats", "csv")
	if first == second {
		t.Errorf("имена файлов экспорта должны быть уникальными: %q", first)
	}
	if filepath.Ext(first) != ".csv" {
		t.Errorf("неверное расширение: %q", first)
	}
}
