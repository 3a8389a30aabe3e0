package storage

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"
	"testing"
	"time"

	"kira_go/models"
)

// dummyDriver предоставляет минимальную реализацию драйвера SQL
// для перехвата выполняемых запросов без реальной БД.
type dummyDriver struct{}

type dummyConn struct{}

type dummyResult struct{}

// executedQueries хранит все запросы Exec, чтобы проверять их содержимое
var executedQueries []string

func (d *dummyDriver) Open(name string) (driver.Conn, error) { return &dummyConn{}, nil }

func (c *dummyConn) Prepare(query string) (driver.Stmt, error) {
	return nil, errors.New("not implemented")
}
func (c *dummyConn) Close() error              { return nil }
func (c *dummyConn) Begin() (driver.Tx, error) { return nil, errors.New("not implemented") }

// ExecContext сохраняет текст запроса и всегда успешно завершается
func (c *dummyConn) ExecContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	executedQueries = append(executedQueries, query)
	return dummyResult{}, nil
}

func (c *dummyConn) QueryContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	return nil, errors.New("not implemented")
}

func (dummyResult) LastInsertId() (int64, error) { return 0, nil }
func (dummyResult) RowsAffected() (int64, error) { return 1, nil }

func init() {
	sql.Register("dummy", &dummyDriver{})
}

func openDummy(t *testing.T) *DB {
	t.Helper()
	executedQueries = nil
	conn, err := sql.Open("dummy", "")
	if err != nil {
		t.Fatalf("не удалось открыть фейковую БД: %v", err)
	}
	return &DB{Conn: conn}
}

// TestSaveChatsUpsert проверяет, что снимок чатов пишется с ON CONFLICT
// и каждая запись считается сохранённой.
func TestSaveChatsUpsert(t *testing.T) {
	db := openDummy(t)

	chats := []models.Chat{
		{ChatID: 100, Title: "Первый", Type: models.ChatTypeUser},
		{ChatID: 200, Title: "Второй", Type: models.ChatTypeChannel},
	}
	saved, err := db.SaveChats(1, chats)
	if err != nil {
		t.Fatalf("сохранение завершилось ошибкой: %v", err)
	}
	if saved != 2 {
		t.Fatalf("ожидалось 2 сохранённых чата, получено %d", saved)
	}
	if len(executedQueries) != 2 {
		t.Fatalf("ожидалось 2 запроса, получено %d", len(executedQueries))
	}
	for _, q := range executedQueries {
		if !strings.Contains(q, "ON CONFLICT (account_id, chat_id)") {
			t.Errorf("запрос без ON CONFLICT: %s", q)
		}
	}
}

// TestSetVariableUpsert проверяет, что переменная сохраняется с обновлением по конфликту.
func TestSetVariableUpsert(t *testing.T) {
	db := openDummy(t)

	if err := db.SetVariable(1, "greeting", "привет"); err != nil {
		t.Fatalf("сохранение переменной завершилось ошибкой: %v", err)
	}
	if len(executedQueries) != 1 {
		t.Fatalf("ожидался один запрос, получено %d", len(executedQueries))
	}
	if !strings.Contains(executedQueries[0], "ON CONFLICT (account_id, key)") {
		t.Errorf("запрос без ON CONFLICT: %s", executedQueries[0])
	}
}

// TestMarkFloodBan проверяет, что флуд-бан пишет время в поле floodwait_until.
func TestMarkFloodBan(t *testing.T) {
	db := openDummy(t)

	if err := db.MarkFloodBan(7, time.Now()); err != nil {
		t.Fatalf("фиксация флуд-бана завершилась ошибкой: %v", err)
	}
	if len(executedQueries) != 1 || !strings.Contains(executedQueries[0], "floodwait_until") {
		t.Fatalf("ожидался запрос к floodwait_until, получено %v", executedQueries)
	}
}
