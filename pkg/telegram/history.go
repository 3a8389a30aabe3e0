package telegram

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/gotd/td/tg"

	"kira_go/models"
)

// Telegram отдаёт историю страницами не больше 100 сообщений.
const historyPageSize = 100

// ChatHistory выгружает последние limit сообщений чата в виде записей экспорта.
// Лимиты больше размера страницы добираются постраничными запросами.
// Записи возвращаются в хронологическом порядке, от старых к новым.
func ChatHistory(ctx context.Context, api *tg.Client, peer tg.InputPeerClass, limit int) ([]models.MessageRecord, error) {
	if limit <= 0 {
		limit = historyPageSize
	}

	var (
		messages []tg.MessageClass
		users    []tg.UserClass
		chats    []tg.ChatClass
		offsetID int
	)
	for len(messages) < limit {
		batch := limit - len(messages)
		if batch > historyPageSize {
			batch = historyPageSize
		}
		raw, err := api.MessagesGetHistory(ctx, &tg.MessagesGetHistoryRequest{
			Peer:     peer,
			OffsetID: offsetID,
			Limit:    batch,
		})
		if err != nil {
			return nil, fmt.Errorf("get history: %w", err)
		}

		var page []tg.MessageClass
		switch h := raw.(type) {
		case *tg.MessagesMessages:
			page = h.Messages
			users = append(users, h.Users...)
			chats = append(chats, h.Chats...)
		case *tg.MessagesMessagesSlice:
			page = h.Messages
			users = append(users, h.Users...)
			chats = append(chats, h.Chats...)
		case *tg.MessagesChannelMessages:
			page = h.Messages
			users = append(users, h.Users...)
			chats = append(chats, h.Chats...)
		default:
			return nil, fmt.Errorf("unexpected history type %T", raw)
		}
		if len(page) == 0 {
			break
		}
		messages = append(messages, page...)
		// Страницы идут от новых к старым, следующая начинается перед
		// самым старым сообщением текущей.
		offsetID = page[len(page)-1].GetID()
		if len(page) < batch {
			break
		}
	}
	if len(messages) > limit {
		messages = messages[:limit]
	}
	return historyRecords(messages, users, chats), nil
}

// historyRecords превращает сообщения выборки в записи экспорта.
// История приходит от новых к старым, экспорт должен повторять порядок чата,
// поэтому записи сортируются по возрастанию идентификатора.
func historyRecords(messages []tg.MessageClass, users []tg.UserClass, chats []tg.ChatClass) []models.MessageRecord {
	userByID := make(map[int64]*tg.User)
	for _, u := range users {
		if user, ok := u.(*tg.User); ok {
			userByID[user.ID] = user
		}
	}
	titleByID := make(map[int64]string)
	for _, c := range chats {
		switch chat := c.(type) {
		case *tg.Chat:
			titleByID[chat.ID] = chat.Title
		case *tg.Channel:
			titleByID[chat.ID] = chat.Title
		}
	}

	var records []models.MessageRecord
	for _, m := range messages {
		msg, ok := m.(*tg.Message)
		if !ok {
			continue
		}
		records = append(records, models.MessageRecord{
			ID:        msg.ID,
			Sender:    senderName(msg, userByID, titleByID),
			Timestamp: time.Unix(int64(msg.Date), 0),
			Text:      msg.Message,
		})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records
}

// senderName определяет автора сообщения по сущностям выборки.
func senderName(msg *tg.Message, users map[int64]*tg.User, titles map[int64]string) string {
	if from, ok := msg.FromID.(*tg.PeerUser); ok {
		if u := users[from.UserID]; u != nil {
			return UserDisplayName(u)
		}
		return fmt.Sprintf("id%d", from.UserID)
	}
	// У постов канала нет FromID, используем подпись автора либо название канала.
	if author, ok := msg.GetPostAuthor(); ok && author != "" {
		return author
	}
	if title, ok := titles[PeerChatID(msg)]; ok {
		return title
	}
	return fmt.Sprintf("id%d", PeerChatID(msg))
}
