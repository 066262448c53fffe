package chatbot

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tusharpolymers/onboard-portal/internal"
	"github.com/tusharpolymers/onboard-portal/internal/transport"
	"github.com/tusharpolymers/onboard-portal/pkg/logger"
)

type ResponderAPI interface {
	Reply(userName, message string) string
}

type Handler struct {
	*transport.BaseHandler
	Responder ResponderAPI
}

func NewHandler(responder ResponderAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Responder:   responder,
	}
}

type askRequest struct {
	Message string `json:"message"`
}

type askResponse struct {
	Reply string `json:"reply"`
}

// Ask handles POST /chatbot/ask
func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	user, ok := internal.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		h.WriteError(w, http.StatusBadRequest, "please provide a message")
		return
	}

	reply := h.Responder.Reply(user.Name, req.Message)
	h.WriteJSON(w, http.StatusOK, askResponse{Reply: reply})
}
