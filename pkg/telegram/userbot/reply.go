package userbot

import (
	"context"
	"fmt"
	"math/rand"
	"path/filepath"

	"github.com/gotd/td/telegram/uploader"
	"github.com/gotd/td/tg"

	tgutil "kira_go/pkg/telegram"
)

// reply отправляет текст ответом на сообщение команды.
func (b *Bot) reply(ctx context.Context, in *Incoming, text string) error {
	req := &tg.MessagesSendMessageRequest{
		Peer:     in.Peer,
		Message:  text,
		RandomID: rand.Int63(),
	}
	req.SetReplyTo(&tg.InputReplyToMessage{ReplyToMsgID: in.Msg.ID})
	_, err := b.api.MessagesSendMessage(ctx, req)
	return err
}

// send отправляет текст в чат без привязки к сообщению
// и возвращает ID отправленного сообщения для последующего редактирования.
func (b *Bot) send(ctx context.Context, peer tg.InputPeerClass, text string) (int, error) {
	updates, err := b.api.MessagesSendMessage(ctx, &tg.MessagesSendMessageRequest{
		Peer:     peer,
		Message:  text,
		RandomID: rand.Int63(),
	})
	if err != nil {
		return 0, err
	}
	return sentMessageID(updates), nil
}

// edit заменяет текст ранее отправленного сообщения.
func (b *Bot) edit(ctx context.Context, peer tg.InputPeerClass, msgID int, text string) error {
	req := tg.MessagesEditMessageRequest{Peer: peer, ID: msgID}
	req.SetMessage(text)
	_, err := b.api.MessagesEditMessage(ctx, &req)
	return err
}

// sendToSaved пишет в «Избранное» аккаунта. Используется для стартового уведомления.
func (b *Bot) sendToSaved(ctx context.Context, text string) error {
	_, err := b.api.MessagesSendMessage(ctx, &tg.MessagesSendMessageRequest{
		Peer:     &tg.InputPeerSelf{},
		Message:  text,
		RandomID: rand.Int63(),
	})
	return err
}

// sendPhotoURL отправляет картинку по внешней ссылке (.cat, .dog).
func (b *Bot) sendPhotoURL(ctx context.Context, peer tg.InputPeerClass, url string) error {
	_, err := b.api.MessagesSendMedia(ctx, &tg.MessagesSendMediaRequest{
		Peer:     peer,
		Media:    &tg.InputMediaPhotoExternal{URL: url},
		RandomID: rand.Int63(),
	})
	return err
}

// sendDocument загружает локальный файл и отправляет его документом (экспорт чатов).
func (b *Bot) sendDocument(ctx context.Context, peer tg.InputPeerClass, path, mime string) error {
	up := uploader.NewUploader(b.api)
	file, err := up.FromPath(ctx, path)
	if err != nil {
		return err
	}
	media := &tg.InputMediaUploadedDocument{
		File:     file,
		MimeType: mime,
		Attributes: []tg.DocumentAttributeClass{
			&tg.DocumentAttributeFilename{FileName: filepath.Base(path)},
		},
	}
	_, err = b.api.MessagesSendMedia(ctx, &tg.MessagesSendMediaRequest{
		Peer:     peer,
		Media:    media,
		RandomID: rand.Int63(),
	})
	return err
}

// isReply сообщает, является ли сообщение ответом на другое сообщение.
func isReply(msg *tg.Message) bool {
	_, ok := replyToMsgID(msg)
	return ok
}

// replyToMsgID возвращает ID процитированного сообщения, если команда была ответом.
func replyToMsgID(msg *tg.Message) (int, bool) {
	header, ok := msg.ReplyTo.(*tg.MessageReplyHeader)
	if !ok {
		return 0, false
	}
	return header.ReplyToMsgID, header.ReplyToMsgID != 0
}

// repliedMessage загружает сообщение, на которое ответили командой.
// Для каналов и супергрупп нужен отдельный запрос с InputChannel.
func (b *Bot) repliedMessage(ctx context.Context, in *Incoming) (*tg.Message, error) {
	msgID, ok := replyToMsgID(in.Msg)
	if !ok {
		return nil, fmt.Errorf("команда должна быть ответом на сообщение")
	}
	ids := []tg.InputMessageClass{&tg.InputMessageID{ID: msgID}}

	var (
		res tg.MessagesMessagesClass
		err error
	)
	if channel, chErr := tgutil.InputChannelFromPeer(in.Msg, in.Entities); chErr == nil {
		res, err = b.api.ChannelsGetMessages(ctx, &tg.ChannelsGetMessagesRequest{Channel: channel, ID: ids})
	} else {
		res, err = b.api.MessagesGetMessages(ctx, ids)
	}
	if err != nil {
		return nil, err
	}

	var messages []tg.MessageClass
	switch typed := res.(type) {
	case *tg.MessagesMessages:
		messages = typed.Messages
	case *tg.MessagesMessagesSlice:
		messages = typed.Messages
	case *tg.MessagesChannelMessages:
		messages = typed.Messages
	}
	for _, m := range messages {
		if msg, ok := m.(*tg.Message); ok && msg.ID == msgID {
			return msg, nil
		}
	}
	return nil, fmt.Errorf("сообщение %d не найдено", msgID)
}

// sentMessageID извлекает ID отправленного сообщения из апдейтов ответа.
func sentMessageID(updates tg.UpdatesClass) int {
	switch u := updates.(type) {
	case *tg.UpdateShortSentMessage:
		return u.ID
	case *tg.Updates:
		for _, upd := range u.Updates {
			switch typed := upd.(type) {
			case *tg.UpdateMessageID:
				return typed.ID
			case *tg.UpdateNewMessage:
				if msg, ok := typed.Message.(*tg.Message); ok {
					return msg.ID
				}
			case *tg.UpdateNewChannelMessage:
				if msg, ok := typed.Message.(*tg.Message); ok {
					return msg.ID
				}
			}
		}
	}
	return 0
}
