package userbot

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/gotd/td/tg"
)

const sectionProfile = "👤 Профиль"

func (b *Bot) registerProfile() {
	b.register(command{name: "name", section: sectionProfile,
		usage: ".name <имя> [фамилия] — сменить имя профиля", handler: b.cmdName})
	b.register(command{name: "bio", section: sectionProfile,
		usage: ".bio <текст> — сменить описание профиля", handler: b.cmdBio})
	b.register(command{name: "pfp", section: sectionProfile,
		usage: ".pfp — показать фото профиля", handler: b.cmdPfp})
	b.register(command{name: "delpfp", section: sectionProfile,
		usage: ".delpfp — удалить фото профиля", handler: b.cmdDelPfp})
}

func (b *Bot) cmdName(ctx context.Context, in *Incoming) error {
	if in.Args == "" {
		return fmt.Errorf("использование: .name <имя> [фамилия]")
	}
	first, last, _ := strings.Cut(in.Args, " ")

	req := &tg.AccountUpdateProfileRequest{}
	req.SetFirstName(first)
	req.SetLastName(last)
	if _, err := b.api.AccountUpdateProfile(ctx, req); err != nil {
		return err
	}
	return b.reply(ctx, in, fmt.Sprintf("✅ Имя изменено на %s", strings.TrimSpace(first+" "+last)))
}

func (b *Bot) cmdBio(ctx context.Context, in *Incoming) error {
	if in.Args == "" {
		return fmt.Errorf("использование: .bio <текст>")
	}
	req := &tg.AccountUpdateProfileRequest{}
	req.SetAbout(in.Args)
	if _, err := b.api.AccountUpdateProfile(ctx, req); err != nil {
		return err
	}
	return b.reply(ctx, in, "✅ Описание профиля обновлено!")
}

// currentProfilePhoto возвращает последнее фото профиля аккаунта или nil.
func (b *Bot) currentProfilePhoto(ctx context.Context) (*tg.Photo, error) {
	res, err := b.api.PhotosGetUserPhotos(ctx, &tg.PhotosGetUserPhotosRequest{
		UserID: &tg.InputUserSelf{},
		Limit:  1,
	})
	if err != nil {
		return nil, err
	}
	var photos []tg.PhotoClass
	switch typed := res.(type) {
	case *tg.PhotosPhotos:
		photos = typed.Photos
	case *tg.PhotosPhotosSlice:
		photos = typed.Photos
	}
	for _, p := range photos {
		if photo, ok := p.(*tg.Photo); ok {
			return photo, nil
		}
	}
	return nil, nil
}

func (b *Bot) cmdPfp(ctx context.Context, in *Incoming) error {
	photo, err := b.currentProfilePhoto(ctx)
	if err != nil {
		return err
	}
	if photo == nil {
		return b.reply(ctx, in, "❌ Фото профиля нет.")
	}
	_, err = b.api.MessagesSendMedia(ctx, &tg.MessagesSendMediaRequest{
		Peer: in.Peer,
		Media: &tg.InputMediaPhoto{
			ID: &tg.InputPhoto{
				ID:            photo.ID,
				AccessHash:    photo.AccessHash,
				FileReference: photo.FileReference,
			},
		},
		RandomID: rand.Int63(),
	})
	return err
}

func (b *Bot) cmdDelPfp(ctx context.Context, in *Incoming) error {
	photo, err := b.currentProfilePhoto(ctx)
	if err != nil {
		return err
	}
	if photo == nil {
		return b.reply(ctx, in, "❌ Удалять нечего.")
	}
	_, err = b.api.PhotosDeletePhotos(ctx, []tg.InputPhotoClass{
		&tg.InputPhoto{
			ID:            photo.ID,
			AccessHash:    photo.AccessHash,
			FileReference: photo.FileReference,
		},
	})
	if err != nil {
		return err
	}
	return b.reply(ctx, in, "✅ Фото профиля удалено.")
}
