package telegram

import (
	"testing"

	"github.com/gotd/td/tg"
)

// TestSenderNameUser проверяет, что имя отправителя берётся из сущностей выборки.
func TestSenderNameUser(t *testing.T) {
	msg := &tg.Message{FromID: &tg.PeerUser{UserID: 5}, PeerID: &tg.PeerUser{UserID: 5}}
	users := map[int64]*tg.User{5: {ID: 5, FirstName: "Анна", LastName: "Иванова"}}

	got := senderName(msg, users, nil)
	if got != "Анна Иванова" {
		t.Fatalf("ожидалось имя 'Анна Иванова', получено %q", got)
	}
}

// TestSenderNameChannelPost проверяет, что пост канала подписывается названием канала.
func TestSenderNameChannelPost(t *testing.T) {
	msg := &tg.Message{PeerID: &tg.PeerChannel{ChannelID: 42}}
	titles := map[int64]string{42: "Новости"}

	got := senderName(msg, nil, titles)
	if got != "Новости" {
		t.Fatalf("ожидалось название 'Новости', получено %q", got)
	}
}

// TestSenderNameUnknown проверяет запасной вариант, когда сущностей нет.
func TestSenderNameUnknown(t *testing.T) {
	msg := &tg.Message{FromID: &tg.PeerUser{UserID: 9}, PeerID: &tg.PeerUser{UserID: 9}}

	got := senderName(msg, map[int64]*tg.User{}, nil)
	if got != "id9" {
		t.Fatalf("ожидалось id9, получено %q", got)
	}
}

// TestUserDisplayNameFallbacks проверяет порядок запасных вариантов имени.
func TestUserDisplayNameFallbacks(t *testing.T) {
	cases := []struct {
		name string
		user *tg.User
		want string
	}{
		{"имя и фамилия", &tg.User{ID: 1, FirstName: "Иван", LastName: "Петров"}, "Иван Петров"},
		{"только username", &tg.User{ID: 2, Username: "ivan"}, "@ivan"},
		{"совсем пусто", &tg.User{ID: 3}, "id3"},
	}
	for _, tc := range cases {
		if got := UserDisplayName(tc.user); got != tc.want {
			t.Errorf("%s: ожидалось %q, получено %q", tc.name, tc.want, got)
		}
	}
}

// TestPeerChatID проверяет извлечение идентификатора чата для всех типов пиров.
func TestPeerChatID(t *testing.T) {
	if id := PeerChatID(&tg.Message{PeerID: &tg.PeerUser{UserID: 1}}); id != 1 {
		t.Errorf("user: ожидалось 1, получено %d", id)
	}
	if id := PeerChatID(&tg.Message{PeerID: &tg.PeerChat{ChatID: 2}}); id != 2 {
		t.Errorf("chat: ожидалось 2, получено %d", id)
	}
	if id := PeerChatID(&tg.Message{PeerID: &tg.PeerChannel{ChannelID: 3}}); id != 3 {
		t.Errorf("channel: ожидалось 3, получено %d", id)
	}
}

// TestHistoryRecordsChronological проверяет, что выборка "от новых к старым"
// превращается в записи в порядке чата, от старых к новым.
func TestHistoryRecordsChronological(t *testing.T) {
	messages := []tg.MessageClass{
		&tg.Message{ID: 30, Date: 300, Message: "третье", PeerID: &tg.PeerUser{UserID: 1}},
		&tg.Message{ID: 20, Date: 200, Message: "второе", PeerID: &tg.PeerUser{UserID: 1}},
		&tg.Message{ID: 10, Date: 100, Message: "первое", PeerID: &tg.PeerUser{UserID: 1}},
	}

	records := historyRecords(messages, nil, nil)
	if len(records) != 3 {
		t.Fatalf("ожидалось 3 записи, получено %d", len(records))
	}
	for i, wantID := range []int{10, 20, 30} {
		if records[i].ID != wantID {
			t.Errorf("запись %d: ожидался id %d, получен %d", i, wantID, records[i].ID)
		}
	}
	if records[0].Text != "первое" || records[2].Text != "третье" {
		t.Errorf("тексты не в порядке чата: %q ... %q", records[0].Text, records[2].Text)
	}
}

// TestHistoryRecordsSkipsService проверяет, что служебные и пустые сообщения
// не попадают в экспорт.
func TestHistoryRecordsSkipsService(t *testing.T) {
	messages := []tg.MessageClass{
		&tg.Message{ID: 2, Message: "текст", PeerID: &tg.PeerUser{UserID: 1}},
		&tg.MessageService{ID: 3, PeerID: &tg.PeerUser{UserID: 1}},
		&tg.MessageEmpty{ID: 1},
	}

	records := historyRecords(messages, nil, nil)
	if len(records) != 1 {
		t.Fatalf("ожидалась 1 запись, получено %d", len(records))
	}
	if records[0].ID != 2 {
		t.Errorf("ожидался id 2, получен %d", records[0].ID)
	}
}
