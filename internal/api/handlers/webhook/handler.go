package webhook

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/llbeautybar/salon-booking-service/internal/api/handlers"
)

// Заголовок секрета, который Telegram проставляет при доставке вебхука,
// если секрет был передан в setWebhook
const headerSecretToken = "X-Telegram-Bot-Api-Secret-Token"

type Handler struct {
	bot           UpdateHandler
	botToken      string
	webhookSecret string
	logger        Logger
}

func NewHandler(bot UpdateHandler, botToken, webhookSecret string, logger Logger) *Handler {
	return &Handler{
		bot:           bot,
		botToken:      botToken,
		webhookSecret: webhookSecret,
		logger:        logger,
	}
}

// Handle POST /webhook/{token}
// Токен в пути и секретный заголовок сверяются с конфигурацией,
// чтобы не принимать поддельные обновления.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]
	if subtle.ConstantTimeCompare([]byte(token), []byte(h.botToken)) != 1 {
		h.logger.Warn("POST /webhook - Invalid token")
		handlers.RespondNotFound(w, "not found")
		return
	}

	if h.webhookSecret != "" {
		secret := r.Header.Get(headerSecretToken)
		if subtle.ConstantTimeCompare([]byte(secret), []byte(h.webhookSecret)) != 1 {
			h.logger.Warn("POST /webhook - Invalid secret token")
			handlers.RespondUnauthorized(w)
			return
		}
	}

	var update tgbotapi.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.logger.Warn("POST /webhook - Failed to decode update: %v", err)
		handlers.RespondBadRequest(w, "invalid update")
		return
	}

	h.bot.HandleUpdate(r.Context(), update)

	// Telegram достаточно 200 OK без тела
	w.WriteHeader(http.StatusOK)
}
