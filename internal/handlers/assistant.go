package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ayursutra-server/internal/assistant"
	"ayursutra-server/internal/middleware"
	"ayursutra-server/internal/utils"
	"ayursutra-server/internal/voice"
)

// AssistantHandler exposes the conversational guide.
type AssistantHandler struct {
	Service *assistant.Service
	Voice   *voice.Gateway
}

// NewAssistantHandler creates a new AssistantHandler.
func NewAssistantHandler(svc *assistant.Service, v *voice.Gateway) *AssistantHandler {
	return &AssistantHandler{Service: svc, Voice: v}
}

// MessageRequest is one user chat turn. Locale selects the language of
// the conversation; Spoken marks input that arrived through the voice
// boundary and therefore needs the locale capability check.
type MessageRequest struct {
	Text   string `json:"text" binding:"required"`
	Locale string `json:"locale"`
	Spoken bool   `json:"spoken"`
}

// Message sends a chat turn and returns the assistant's reply. An NLU
// failure still yields a reply (the canned fallback) so the
// conversation and its history survive.
func (h *AssistantHandler) Message(c *gin.Context) {
	ident, ok := middleware.IdentityFromContext(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}
	token, _ := middleware.TokenFromContext(c)

	var req MessageRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	locale := req.Locale
	if locale == "" {
		locale = "en-US"
	}

	if req.Spoken {
		if err := h.Voice.CheckLocale(locale); err != nil {
			switch {
			case errors.Is(err, voice.ErrCapabilityMissing):
				utils.BadRequest(c, "Sorry, voice input is not available.")
			case errors.Is(err, voice.ErrLocaleUnsupported):
				utils.BadRequest(c, "Sorry, the selected language is not supported. Please try English.")
			default:
				utils.BadRequest(c, err.Error())
			}
			return
		}
	}

	reply, err := h.Service.Send(c.Request.Context(), token, ident.DisplayName, req.Text, locale)
	if err != nil {
		// The fallback reply was already recorded; surface it as a
		// normal turn so the client keeps the conversation.
		utils.Success(c, "Assistant unavailable, fallback reply", reply)
		return
	}
	utils.Success(c, "Assistant reply", reply)
}

// History returns the caller's chat history.
func (h *AssistantHandler) History(c *gin.Context) {
	token, _ := middleware.TokenFromContext(c)
	utils.Success(c, "Chat history", h.Service.History(token))
}
