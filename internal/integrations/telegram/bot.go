package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

const welcomeText = "Добро пожаловать в LL BeautyBar! 💖\n\n" +
	"Здесь вы можете записаться к мастеру, посмотреть свои записи " +
	"и купить подарочный сертификат. Нажмите кнопку ниже, чтобы открыть приложение."

// Bot обрабатывает входящие обновления Telegram.
// Бот работает через вебхук: диалоговой логики у него нет,
// вся функциональность живёт в мини-приложении.
type Bot struct {
	api       *tgbotapi.BotAPI
	webAppURL string
	limiter   *rate.Limiter
	logger    Logger
}

// NewBot создает обработчик обновлений
func NewBot(api *tgbotapi.BotAPI, webAppURL string, messagesPerSecond float64, logger Logger) *Bot {
	return &Bot{
		api:       api,
		webAppURL: webAppURL,
		limiter:   rate.NewLimiter(rate.Limit(messagesPerSecond), 1),
		logger:    logger,
	}
}

// HandleUpdate обрабатывает обновление из вебхука.
// Ошибки обработки логируются, но не возвращаются в Telegram:
// ответ с ошибкой заставил бы Telegram бесконечно повторять доставку.
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil || !update.Message.IsCommand() {
		return
	}

	switch update.Message.Command() {
	case "start":
		if err := b.sendWelcome(ctx, update.Message.Chat.ID); err != nil {
			b.logger.Error("Bot: failed to send welcome to chat %d: %v", update.Message.Chat.ID, err)
		}
	default:
		b.logger.Info("Bot: unknown command %q from chat %d", update.Message.Command(), update.Message.Chat.ID)
	}
}

func (b *Bot) sendWelcome(ctx context.Context, chatID int64) error {
	if err := b.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("telegram: rate limiter: %w", err)
	}

	msg := tgbotapi.NewMessage(chatID, welcomeText)
	if b.webAppURL != "" {
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonWebApp("✨ Открыть LL BeautyBar", tgbotapi.WebAppInfo{URL: b.webAppURL}),
			),
		)
	}

	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("telegram: send welcome: %w", err)
	}
	return nil
}
