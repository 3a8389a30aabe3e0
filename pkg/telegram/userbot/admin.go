package userbot

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gotd/td/tg"

	tgutil "kira_go/pkg/telegram"
)

const sectionAdmin = "🛡 Администрирование"

func (b *Bot) registerAdmin() {
	b.register(command{name: "purge", section: sectionAdmin,
		usage: ".purge [N] — удалить сообщения (ответом: до текущего)", handler: b.cmdPurge})
	b.register(command{name: "del", section: sectionAdmin,
		usage: ".del — удалить процитированное сообщение", handler: b.cmdDel})
	b.register(command{name: "pin", section: sectionAdmin,
		usage: ".pin — закрепить процитированное сообщение", handler: b.cmdPin})
	b.register(command{name: "unpin", section: sectionAdmin,
		usage: ".unpin — снять все закрепления", handler: b.cmdUnpin})
	b.register(command{name: "kick", section: sectionAdmin,
		usage: ".kick — исключить автора сообщения", handler: b.cmdKick})
	b.register(command{name: "invite", section: sectionAdmin,
		usage: ".invite @user — пригласить в группу", handler: b.cmdInvite})
	b.register(command{name: "mute", section: sectionAdmin,
		usage: ".mute [минут] — запретить писать автору сообщения", handler: b.cmdMute})
	b.register(command{name: "unmute", section: sectionAdmin,
		usage: ".unmute — вернуть право писать", handler: b.cmdUnmute})
	b.register(command{name: "archive", section: sectionAdmin,
		usage: ".archive — чат в архив", handler: b.cmdArchive})
	b.register(command{name: "unarchive", section: sectionAdmin,
		usage: ".unarchive — чат из архива", handler: b.cmdUnarchive})
}

// deleteMessages удаляет сообщения с учётом типа чата:
// в супергруппах нужен отдельный запрос с InputChannel.
func (b *Bot) deleteMessages(ctx context.Context, in *Incoming, ids []int) error {
	if channel, err := tgutil.InputChannelFromPeer(in.Msg, in.Entities); err == nil {
		_, delErr := b.api.ChannelsDeleteMessages(ctx, &tg.ChannelsDeleteMessagesRequest{
			Channel: channel,
			ID:      ids,
		})
		return delErr
	}
	_, err := b.api.MessagesDeleteMessages(ctx, &tg.MessagesDeleteMessagesRequest{
		ID:     ids,
		Revoke: true,
	})
	return err
}

// repliedAuthor определяет автора процитированного сообщения как InputPeer.
func (b *Bot) repliedAuthor(ctx context.Context, in *Incoming) (tg.InputPeerClass, error) {
	replied, err := b.repliedMessage(ctx, in)
	if err != nil {
		return nil, err
	}
	from, ok := replied.FromID.(*tg.PeerUser)
	if !ok {
		return nil, fmt.Errorf("не удалось определить автора сообщения")
	}
	user, found := in.Entities.Users[from.UserID]
	if !found {
		return nil, fmt.Errorf("пользователь %d не найден среди сущностей апдейта", from.UserID)
	}
	return &tg.InputPeerUser{UserID: user.ID, AccessHash: user.AccessHash}, nil
}

func (b *Bot) cmdPurge(ctx context.Context, in *Incoming) error {
	var ids []int
	if replyID, isReply := replyToMsgID(in.Msg); isReply {
		// От процитированного сообщения до команды включительно.
		for id := replyID; id <= in.Msg.ID; id++ {
			ids = append(ids, id)
		}
	} else {
		n := 10
		if in.Args != "" {
			parsed, err := strconv.Atoi(in.Args)
			if err != nil || parsed <= 0 {
				return fmt.Errorf("использование: .purge [N]")
			}
			n = parsed
		}
		records, err := tgutil.ChatHistory(ctx, b.api, in.Peer, n)
		if err != nil {
			return err
		}
		for _, r := range records {
			ids = append(ids, r.ID)
		}
	}
	if len(ids) == 0 {
		return b.reply(ctx, in, "❌ Удалять нечего.")
	}
	if err := b.deleteMessages(ctx, in, ids); err != nil {
		return err
	}
	_, err := b.send(ctx, in.Peer, fmt.Sprintf("✅ Удалено сообщений: %d", len(ids)))
	return err
}

// cmdDel удаляет процитированное сообщение вместе с самой командой.
func (b *Bot) cmdDel(ctx context.Context, in *Incoming) error {
	replyID, isReply := replyToMsgID(in.Msg)
	if !isReply {
		return fmt.Errorf("команда должна быть ответом на сообщение")
	}
	return b.deleteMessages(ctx, in, []int{replyID, in.Msg.ID})
}

func (b *Bot) cmdPin(ctx context.Context, in *Incoming) error {
	replyID, isReply := replyToMsgID(in.Msg)
	if !isReply {
		return fmt.Errorf("команда должна быть ответом на сообщение")
	}
	_, err := b.api.MessagesUpdatePinnedMessage(ctx, &tg.MessagesUpdatePinnedMessageRequest{
		Peer: in.Peer,
		ID:   replyID,
	})
	if err != nil {
		return err
	}
	return b.reply(ctx, in, "📌 Закреплено.")
}

func (b *Bot) cmdUnpin(ctx context.Context, in *Incoming) error {
	_, err := b.api.MessagesUnpinAllMessages(ctx, &tg.MessagesUnpinAllMessagesRequest{
		Peer: in.Peer,
	})
	if err != nil {
		return err
	}
	return b.reply(ctx, in, "✅ Закрепления сняты.")
}

func (b *Bot) cmdKick(ctx context.Context, in *Incoming) error {
	channel, err := tgutil.InputChannelFromPeer(in.Msg, in.Entities)
	if err != nil {
		return err
	}
	author, err := b.repliedAuthor(ctx, in)
	if err != nil {
		return err
	}
	// Кратковременный бан выкидывает участника, затем права очищаются.
	_, err = b.api.ChannelsEditBanned(ctx, &tg.ChannelsEditBannedRequest{
		Channel:     channel,
		Participant: author,
		BannedRights: tg.ChatBannedRights{
			ViewMessages: true,
			UntilDate:    int(time.Now().Add(time.Minute).Unix()),
		},
	})
	if err != nil {
		return err
	}
	return b.reply(ctx, in, "✅ Исключён.")
}

func (b *Bot) cmdInvite(ctx context.Context, in *Incoming) error {
	if in.Args == "" {
		return fmt.Errorf("использование: .invite @user")
	}
	channel, err := tgutil.InputChannelFromPeer(in.Msg, in.Entities)
	if err != nil {
		return err
	}
	user, err := tgutil.ResolveUser(ctx, b.api, in.Args)
	if err != nil {
		return fmt.Errorf("пользователь не найден: %w", err)
	}
	_, err = b.api.ChannelsInviteToChannel(ctx, &tg.ChannelsInviteToChannelRequest{
		Channel: channel,
		Users:   []tg.InputUserClass{&tg.InputUser{UserID: user.ID, AccessHash: user.AccessHash}},
	})
	if err != nil {
		return err
	}
	return b.reply(ctx, in, fmt.Sprintf("✅ Приглашён %s.", in.Args))
}

// muteRights собирает запрет на отправку сообщений до указанного момента.
// Нулевой untilDate означает бессрочный запрет.
func muteRights(untilDate int) tg.ChatBannedRights {
	return tg.ChatBannedRights{
		UntilDate:    untilDate,
		SendMessages: true,
		SendMedia:    true,
		SendStickers: true,
		SendGifs:     true,
		SendGames:    true,
		SendInline:   true,
		EmbedLinks:   true,
	}
}

func (b *Bot) cmdMute(ctx context.Context, in *Incoming) error {
	channel, err := tgutil.InputChannelFromPeer(in.Msg, in.Entities)
	if err != nil {
		return err
	}
	author, err := b.repliedAuthor(ctx, in)
	if err != nil {
		return err
	}
	var minutes int
	if in.Args != "" {
		minutes, err = strconv.Atoi(in.Args)
		if err != nil || minutes < 0 {
			return fmt.Errorf("использование: .mute [минут]")
		}
	}
	untilDate := 0
	note := "навсегда"
	if minutes > 0 {
		untilDate = int(time.Now().Add(time.Duration(minutes) * time.Minute).Unix())
		note = fmt.Sprintf("на %d мин.", minutes)
	}
	_, err = b.api.ChannelsEditBanned(ctx, &tg.ChannelsEditBannedRequest{
		Channel:      channel,
		Participant:  author,
		BannedRights: muteRights(untilDate),
	})
	if err != nil {
		return err
	}
	return b.reply(ctx, in, "✅ Запрет на сообщения "+note)
}

func (b *Bot) cmdUnmute(ctx context.Context, in *Incoming) error {
	channel, err := tgutil.InputChannelFromPeer(in.Msg, in.Entities)
	if err != nil {
		return err
	}
	author, err := b.repliedAuthor(ctx, in)
	if err != nil {
		return err
	}
	// Пустые права снимают все ограничения.
	_, err = b.api.ChannelsEditBanned(ctx, &tg.ChannelsEditBannedRequest{
		Channel:      channel,
		Participant:  author,
		BannedRights: tg.ChatBannedRights{},
	})
	if err != nil {
		return err
	}
	return b.reply(ctx, in, "✅ Запрет снят.")
}

func (b *Bot) editFolder(ctx context.Context, in *Incoming, folderID int) error {
	_, err := b.api.FoldersEditPeerFolders(ctx, []tg.InputFolderPeer{
		{Peer: in.Peer, FolderID: folderID},
	})
	return err
}

func (b *Bot) cmdArchive(ctx context.Context, in *Incoming) error {
	if err := b.editFolder(ctx, in, 1); err != nil {
		return err
	}
	return b.reply(ctx, in, "✅ Чат в архиве.")
}

func (b *Bot) cmdUnarchive(ctx context.Context, in *Incoming) error {
	if err := b.editFolder(ctx, in, 0); err != nil {
		return err
	}
	return b.reply(ctx, in, "✅ Чат возвращён из архива.")
}
