package telegram

import (
	"context"
	"log"

	"github.com/gotd/td/tg"

	"kira_go/internal/common"
)

// SendTyping показывает собеседнику индикатор "печатает..." и выдерживает
// случайную паузу в заданном диапазоне миллисекунд. Пауза делает ответы бота
// похожими на ручной набор. Ошибка индикатора не критична и только логируется.
func SendTyping(ctx context.Context, api *tg.Client, peer tg.InputPeerClass, minMS, maxMS int) error {
	if _, err := api.MessagesSetTyping(ctx, &tg.MessagesSetTypingRequest{
		Peer:   peer,
		Action: &tg.SendMessageTypingAction{},
	}); err != nil {
		log.Printf("[TYPING] не удалось отправить индикатор: %v", err)
	}
	return common.WaitRandomMS(ctx, minMS, maxMS)
}

// CancelTyping сбрасывает индикатор после отправки ответа.
func CancelTyping(ctx context.Context, api *tg.Client, peer tg.InputPeerClass) {
	if _, err := api.MessagesSetTyping(ctx, &tg.MessagesSetTypingRequest{
		Peer:   peer,
		Action: &tg.SendMessageCancelAction{},
	}); err != nil {
		log.Printf("[TYPING] не удалось сбросить индикатор: %v", err)
	}
}
