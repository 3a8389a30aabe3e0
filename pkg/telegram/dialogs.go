package telegram

import (
	"context"
	"fmt"
	"time"

	"github.com/gotd/td/tg"

	"kira_go/models"
)

// CollectDialogs опрашивает список диалогов аккаунта и превращает его
// в плоский снимок для команд .mychats, .chatstats и экспорта.
func CollectDialogs(ctx context.Context, api *tg.Client, accountID int, accountName string, limit int) ([]models.Chat, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	raw, err := api.MessagesGetDialogs(ctx, &tg.MessagesGetDialogsRequest{
		OffsetPeer: &tg.InputPeerEmpty{},
		Limit:      limit,
	})
	if err != nil {
		return nil, fmt.Errorf("get dialogs: %w", err)
	}

	var (
		dialogs  []tg.DialogClass
		messages []tg.MessageClass
		chats    []tg.ChatClass
		users    []tg.UserClass
	)
	switch d := raw.(type) {
	case *tg.MessagesDialogs:
		dialogs, messages, chats, users = d.Dialogs, d.Messages, d.Chats, d.Users
	case *tg.MessagesDialogsSlice:
		dialogs, messages, chats, users = d.Dialogs, d.Messages, d.Chats, d.Users
	default:
		return nil, fmt.Errorf("unexpected dialogs type %T", raw)
	}

	// Индексируем сущности и последние сообщения, чтобы не искать их линейно.
	userByID := make(map[int64]*tg.User)
	for _, u := range users {
		if user, ok := u.(*tg.User); ok {
			userByID[user.ID] = user
		}
	}
	chatByID := make(map[int64]*tg.Chat)
	channelByID := make(map[int64]*tg.Channel)
	for _, c := range chats {
		switch chat := c.(type) {
		case *tg.Chat:
			chatByID[chat.ID] = chat
		case *tg.Channel:
			channelByID[chat.ID] = chat
		}
	}
	msgDate := make(map[string]time.Time)
	for _, m := range messages {
		if msg, ok := m.(*tg.Message); ok {
			key := fmt.Sprintf("%d:%d", PeerChatID(msg), msg.ID)
			msgDate[key] = time.Unix(int64(msg.Date), 0)
		}
	}

	var result []models.Chat
	for _, d := range dialogs {
		dlg, ok := d.(*tg.Dialog)
		if !ok {
			continue
		}
		snapshot := models.Chat{
			AccountID:   accountID,
			AccountName: accountName,
			UnreadCount: dlg.UnreadCount,
			Pinned:      dlg.Pinned,
			Archived:    dlg.FolderID == 1, // Папка 1 в Telegram — архив
		}
		switch peer := dlg.Peer.(type) {
		case *tg.PeerUser:
			snapshot.ChatID = peer.UserID
			snapshot.Type = models.ChatTypeUser
			if u := userByID[peer.UserID]; u != nil {
				snapshot.Title = UserDisplayName(u)
				snapshot.Username = u.Username
			}
		case *tg.PeerChat:
			snapshot.ChatID = peer.ChatID
			snapshot.Type = models.ChatTypeGroup
			if c := chatByID[peer.ChatID]; c != nil {
				snapshot.Title = c.Title
				snapshot.Participants = c.ParticipantsCount
			}
		case *tg.PeerChannel:
			snapshot.ChatID = peer.ChannelID
			if ch := channelByID[peer.ChannelID]; ch != nil {
				snapshot.Title = ch.Title
				snapshot.Username = ch.Username
				if ch.Megagroup {
					snapshot.Type = models.ChatTypeGroup
				} else {
					snapshot.Type = models.ChatTypeChannel
				}
				if count, ok := ch.GetParticipantsCount(); ok {
					snapshot.Participants = count
				}
			} else {
				snapshot.Type = models.ChatTypeChannel
			}
		default:
			continue
		}
		key := fmt.Sprintf("%d:%d", snapshot.ChatID, dlg.TopMessage)
		if date, ok := msgDate[key]; ok {
			snapshot.LastMessageDate = &date
		}
		result = append(result, snapshot)
	}
	return result, nil
}

// DialogPeers возвращает InputPeer каждого диалога аккаунта.
// Снимок models.Chat для отправки не годится: в нём нет хешей доступа.
func DialogPeers(ctx context.Context, api *tg.Client, limit int) ([]tg.InputPeerClass, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	raw, err := api.MessagesGetDialogs(ctx, &tg.MessagesGetDialogsRequest{
		OffsetPeer: &tg.InputPeerEmpty{},
		Limit:      limit,
	})
	if err != nil {
		return nil, fmt.Errorf("get dialogs: %w", err)
	}

	var (
		dialogs []tg.DialogClass
		chats   []tg.ChatClass
		users   []tg.UserClass
	)
	switch d := raw.(type) {
	case *tg.MessagesDialogs:
		dialogs, chats, users = d.Dialogs, d.Chats, d.Users
	case *tg.MessagesDialogsSlice:
		dialogs, chats, users = d.Dialogs, d.Chats, d.Users
	default:
		return nil, fmt.Errorf("unexpected dialogs type %T", raw)
	}

	userByID := make(map[int64]*tg.User)
	for _, u := range users {
		if user, ok := u.(*tg.User); ok {
			userByID[user.ID] = user
		}
	}
	channelByID := make(map[int64]*tg.Channel)
	for _, c := range chats {
		if channel, ok := c.(*tg.Channel); ok {
			channelByID[channel.ID] = channel
		}
	}

	var peers []tg.InputPeerClass
	for _, d := range dialogs {
		dlg, ok := d.(*tg.Dialog)
		if !ok {
			continue
		}
		switch peer := dlg.Peer.(type) {
		case *tg.PeerUser:
			if u := userByID[peer.UserID]; u != nil {
				peers = append(peers, &tg.InputPeerUser{UserID: u.ID, AccessHash: u.AccessHash})
			}
		case *tg.PeerChat:
			peers = append(peers, &tg.InputPeerChat{ChatID: peer.ChatID})
		case *tg.PeerChannel:
			if ch := channelByID[peer.ChannelID]; ch != nil {
				peers = append(peers, &tg.InputPeerChannel{ChannelID: ch.ID, AccessHash: ch.AccessHash})
			}
		}
	}
	return peers, nil
}
