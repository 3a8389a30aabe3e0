package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/gotd/td/tg"
)

// InputPeerFromMessage собирает InputPeer чата, в котором пришло сообщение.
// Хеши доступа берутся из сущностей апдейта, без них канал и пользователь недостижимы.
func InputPeerFromMessage(msg *tg.Message, e tg.Entities) (tg.InputPeerClass, error) {
	switch peer := msg.PeerID.(type) {
	case *tg.PeerUser:
		user, ok := e.Users[peer.UserID]
		if !ok {
			return nil, fmt.Errorf("user %d not found in entities", peer.UserID)
		}
		return &tg.InputPeerUser{UserID: user.ID, AccessHash: user.AccessHash}, nil
	case *tg.PeerChat:
		return &tg.InputPeerChat{ChatID: peer.ChatID}, nil
	case *tg.PeerChannel:
		channel, ok := e.Channels[peer.ChannelID]
		if !ok {
			return nil, fmt.Errorf("channel %d not found in entities", peer.ChannelID)
		}
		return &tg.InputPeerChannel{ChannelID: channel.ID, AccessHash: channel.AccessHash}, nil
	default:
		return nil, fmt.Errorf("unsupported peer type %T", msg.PeerID)
	}
}

// PeerChatID возвращает числовой идентификатор чата сообщения.
func PeerChatID(msg *tg.Message) int64 {
	switch peer := msg.PeerID.(type) {
	case *tg.PeerUser:
		return peer.UserID
	case *tg.PeerChat:
		return peer.ChatID
	case *tg.PeerChannel:
		return peer.ChannelID
	default:
		return 0
	}
}

// InputChannelFromPeer выделяет InputChannel, если сообщение пришло из канала или супергруппы.
// Админские команды (.kick, .mute) работают только там.
func InputChannelFromPeer(msg *tg.Message, e tg.Entities) (*tg.InputChannel, error) {
	peer, ok := msg.PeerID.(*tg.PeerChannel)
	if !ok {
		return nil, fmt.Errorf("команда доступна только в супергруппах и каналах")
	}
	channel, ok := e.Channels[peer.ChannelID]
	if !ok {
		return nil, fmt.Errorf("channel %d not found in entities", peer.ChannelID)
	}
	return &tg.InputChannel{ChannelID: channel.ID, AccessHash: channel.AccessHash}, nil
}

// ResolveUser находит пользователя по @username или ссылке t.me.
func ResolveUser(ctx context.Context, api *tg.Client, username string) (*tg.User, error) {
	username = NormalizeUsername(username)
	resolved, err := api.ContactsResolveUsername(ctx, &tg.ContactsResolveUsernameRequest{Username: username})
	if err != nil {
		return nil, err
	}
	for _, u := range resolved.GetUsers() {
		if user, ok := u.(*tg.User); ok {
			return user, nil
		}
	}
	return nil, fmt.Errorf("user %q not found", username)
}

// ExtractUsername выделяет username из ссылки вида https://t.me/name.
func ExtractUsername(url string) (string, error) {
	if !strings.HasPrefix(url, "https://t.me/") {
		return "", fmt.Errorf("invalid URL format")
	}
	return strings.TrimPrefix(url, "https://t.me/"), nil
}

// NormalizeUsername приводит аргумент команды к голому username:
// принимает @name и ссылки t.me.
func NormalizeUsername(arg string) string {
	arg = strings.TrimSpace(arg)
	if name, err := ExtractUsername(arg); err == nil {
		arg = name
	}
	return strings.TrimPrefix(arg, "@")
}

// UserDisplayName собирает человекочитаемое имя пользователя.
func UserDisplayName(u *tg.User) string {
	name := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if name == "" && u.Username != "" {
		name = "@" + u.Username
	}
	if name == "" {
		name = fmt.Sprintf("id%d", u.ID)
	}
	return name
}
