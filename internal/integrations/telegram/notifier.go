package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"

	"github.com/llbeautybar/salon-booking-service/internal/domain"
)

// Notifier отправляет уведомления администратору салона.
// Отправка ограничена лимитером: Telegram Bot API режет ботов,
// превышающих ~30 сообщений в секунду.
type Notifier struct {
	bot         *tgbotapi.BotAPI
	adminChatID int64
	limiter     *rate.Limiter
	logger      Logger
}

// NewNotifier создает нотификатор админ-чата
func NewNotifier(bot *tgbotapi.BotAPI, adminChatID int64, messagesPerSecond float64, logger Logger) *Notifier {
	return &Notifier{
		bot:         bot,
		adminChatID: adminChatID,
		limiter:     rate.NewLimiter(rate.Limit(messagesPerSecond), 1),
		logger:      logger,
	}
}

// NotifyBookingCreated уведомляет администратора о новой записи
func (n *Notifier) NotifyBookingCreated(ctx context.Context, booking *domain.Booking, master *domain.Master, service *domain.Service) error {
	if n.adminChatID == 0 {
		return nil
	}

	text := fmt.Sprintf(
		"🆕 Новая запись #%d\n\n💅 Услуга: %s\n👩‍🎨 Мастер: %s\n📅 Дата: %s\n🕐 Время: %s\n💰 Стоимость: %.0f ₽",
		booking.ID,
		service.Name,
		master.Name,
		booking.BookingDate.Format("02.01.2006"),
		booking.BookingTime.String(),
		service.Price,
	)
	if booking.Comment != nil && *booking.Comment != "" {
		text += fmt.Sprintf("\n💬 Комментарий: %s", *booking.Comment)
	}

	return n.send(ctx, tgbotapi.NewMessage(n.adminChatID, text))
}

func (n *Notifier) send(ctx context.Context, msg tgbotapi.MessageConfig) error {
	if err := n.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("telegram: rate limiter: %w", err)
	}

	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram: send message to chat %d: %w", msg.ChatID, err)
	}
	return nil
}
