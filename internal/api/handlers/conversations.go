// internal/api/handlers/conversations.go
package handlers

import (
	"errors"
	"log"
	"net/http"

	"talentbridge/internal/services"
	"talentbridge/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ConversationHandler holds dependencies for conversation persistence.
type ConversationHandler struct {
	service   services.ConversationService
	validator *validator.Validate
}

// NewConversationHandler creates a new ConversationHandler.
func NewConversationHandler(service services.ConversationService, validate *validator.Validate) *ConversationHandler {
	return &ConversationHandler{
		service:   service,
		validator: validate,
	}
}

// UpsertConversation godoc
// @Summary      Create or update a conversation
// @Description  Upserts the transcript keyed by the third-party conversation id. Title and messages present in the body replace the stored values; absent fields are left untouched.
// @Tags         open
// @Accept       json
// @Produce      json
// @Param        conversation body dto.UpsertConversationRequest true "Conversation transcript"
// @Success      200 {object}  dto.ConversationResponse "Conversation upserted"
// @Failure      400 {object}  map[string]string "Bad Request - Missing ids or invalid body"
// @Failure      401 {object}  map[string]string "Unauthorized - Missing or invalid API key"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /open/conversations [post]
// @Security     ApiKeyAuth
func (h *ConversationHandler) UpsertConversation(c *gin.Context) {
	var req dto.UpsertConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	h.upsert(c, &req)
}

// UpsertConversationByID godoc
// @Summary      Update a conversation by its external id
// @Description  Same upsert as POST /open/conversations, with the conversation id taken from the path.
// @Tags         open
// @Accept       json
// @Produce      json
// @Param        externalId path string true "Third-party conversation id"
// @Param        conversation body dto.UpsertConversationRequest true "Conversation transcript"
// @Success      200 {object}  dto.ConversationResponse "Conversation upserted"
// @Failure      400 {object}  map[string]string "Bad Request - Missing userId or invalid body"
// @Failure      401 {object}  map[string]string "Unauthorized - Missing or invalid API key"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /open/conversations/{externalId} [put]
// @Security     ApiKeyAuth
func (h *ConversationHandler) UpsertConversationByID(c *gin.Context) {
	var req dto.UpsertConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ConversationID = c.Param("externalId")
	h.upsert(c, &req)
}

func (h *ConversationHandler) upsert(c *gin.Context, req *dto.UpsertConversationRequest) {
	if err := h.validator.Struct(req); err != nil {
		validationErrors := FormatValidationErrors(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	conv, err := h.service.UpsertConversation(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			log.Printf("UpsertConversation: Error upserting conversation %s: %v", req.ConversationID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save conversation"})
		}
		return
	}

	c.JSON(http.StatusOK, MapConversationModelToResponse(conv))
}

// GetConversation godoc
// @Summary      Get a conversation
// @Description  Retrieves the transcript stored under a third-party conversation id.
// @Tags         open
// @Accept       json
// @Produce      json
// @Param        externalId path string true "Third-party conversation id"
// @Success      200 {object}  dto.ConversationResponse "Successfully retrieved conversation"
// @Failure      401 {object}  map[string]string "Unauthorized - Missing or invalid API key"
// @Failure      404 {object}  map[string]string "Conversation Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /open/conversations/{externalId} [get]
// @Security     ApiKeyAuth
func (h *ConversationHandler) GetConversation(c *gin.Context) {
	req := dto.GetConversationRequest{ConversationID: c.Param("externalId")}

	conv, err := h.service.GetConversation(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
		} else if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			log.Printf("GetConversation: Error fetching conversation %s: %v", req.ConversationID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve conversation"})
		}
		return
	}

	c.JSON(http.StatusOK, MapConversationModelToResponse(conv))
}

// ListConversations godoc
// @Summary      List an external user's conversations
// @Description  Retrieves every conversation stored under the given agent-issued user id, most recent first.
// @Tags         open
// @Accept       json
// @Produce      json
// @Param        userId query string true "External user id"
// @Success      200 {array}   dto.ConversationResponse "Successfully retrieved conversations"
// @Failure      400 {object}  map[string]string "Bad Request - Missing userId"
// @Failure      401 {object}  map[string]string "Unauthorized - Missing or invalid API key"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /open/conversations [get]
// @Security     ApiKeyAuth
func (h *ConversationHandler) ListConversations(c *gin.Context) {
	var req dto.ListConversationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		validationErrors := FormatValidationErrors(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": validationErrors})
		return
	}

	convs, err := h.service.ListConversations(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			log.Printf("ListConversations: Error listing conversations for user %s: %v", req.UserID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve conversations"})
		}
		return
	}

	convResponses := make([]dto.ConversationResponse, 0, len(convs))
	for _, conv := range convs {
		convResponses = append(convResponses, MapConversationModelToResponse(conv))
	}

	c.JSON(http.StatusOK, convResponses)
}
