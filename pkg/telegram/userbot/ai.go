package userbot

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
)

const sectionAI = "🤖 Ассистент и поиск"

// aiPattern — реплика ассистента на ключевую фразу. Порядок записей
// фиксирует приоритет: выигрывает первая подошедшая фраза.
type aiPattern struct {
	key       string
	responses []string
}

var aiPatterns = []aiPattern{
	{"hello", []string{"Hello!", "Hi there!", "Hey! How can I help?", "Greetings!"}},
	{"how are you", []string{"I'm doing great!", "All systems operational!", "Ready to help!", "Feeling chatty!"}},
	{"who are you", []string{"I'm Kira, your Telegram assistant!", "Kira — always at your service", "Your friendly neighborhood bot!"}},
	{"what can you do", []string{"I can search the web, manage chats, and more! Try .help"}},
	{"thanks", []string{"You're welcome!", "Happy to help!", "Anytime!", "My pleasure!"}},
	{"bye", []string{"Goodbye!", "See you later!", "Take care!", "Bye! 👋"}},
}

var aiDefaults = []string{
	"Interesting! Tell me more.",
	"I see. What else?",
	"That's cool!",
	"Thanks for sharing!",
	"I'm listening...",
	"Got it!",
}

var aiPrefixes = []string{"🤖", "💭", "✨"}

// aiResponse подбирает реплику по ключевым фразам запроса.
// Внешние нейросети не используются: ассистент отвечает из локальной таблицы.
func aiResponse(query string) string {
	lower := strings.ToLower(query)
	for _, p := range aiPatterns {
		if strings.Contains(lower, p.key) {
			return p.responses[rand.Intn(len(p.responses))]
		}
	}
	return aiDefaults[rand.Intn(len(aiDefaults))]
}

func (b *Bot) registerAI() {
	b.register(command{name: "ai", section: sectionAI,
		usage: ".ai <текст> — поговорить с ассистентом", handler: b.cmdAI})
}

func (b *Bot) cmdAI(ctx context.Context, in *Incoming) error {
	if in.Args == "" {
		return fmt.Errorf("использование: .ai <текст>")
	}
	prefix := aiPrefixes[rand.Intn(len(aiPrefixes))]
	return b.reply(ctx, in, prefix+" "+aiResponse(in.Args))
}
