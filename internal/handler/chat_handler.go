package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"invoicehub/internal/domain"
	"invoicehub/internal/service"
)

// ChatHandler serves natural-language queries over the invoice database.
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// ChatWithData handles POST /api/chat-with-data
// @Summary Answer a question with generated SQL
// @Description Generates a read-only SELECT for the question, runs it and returns the rows.
// @Tags chat
// @Accept json
// @Produce json
// @Param body body ChatRequest true "Question"
// @Success 200 {object} domain.ChatAnswer
// @Failure 400 {object} ErrorResponseBody
// @Failure 422 {object} ChatRejectionBody
// @Failure 502 {object} ErrorResponseBody
// @Failure 503 {object} ErrorResponseBody
// @Router /api/chat-with-data [post]
func (h *ChatHandler) ChatWithData(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	answer, err := h.chatService.Ask(c.Request.Context(), req.Query)
	if err != nil {
		var rej *domain.ChatRejection
		if errors.As(err, &rej) {
			c.JSON(http.StatusUnprocessableEntity, ChatRejectionBody{
				Error:           rej.Error(),
				GeneratedSQL:    rej.GeneratedSQL,
				AvailableTables: rej.AvailableTables,
			})
			return
		}
		HandleError(c, err, msgChat)
		return
	}
	RespondOK(c, answer)
}

// InspectSchema handles GET /api/inspect-schema
// @Summary Schema visible to the SQL generator
// @Tags chat
// @Produce json
// @Success 200 {object} domain.SchemaInfo
// @Failure 500 {object} ErrorResponseBody
// @Router /api/inspect-schema [get]
func (h *ChatHandler) InspectSchema(c *gin.Context) {
	info, err := h.chatService.InspectSchema(c.Request.Context())
	if err != nil {
		HandleError(c, err, msgSchema)
		return
	}
	RespondOK(c, info)
}
