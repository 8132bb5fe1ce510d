// controllers/message.go
package controllers

import (
	"net/http"

	"powercare-backend/models"
	"powercare-backend/repository"
	"powercare-backend/services"
	"powercare-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SendMessageInput struct {
	Content string `json:"content" binding:"required"`
}

// MessageController serves the conversation attached to a reservation,
// between the booking client and the assigned agent.
type MessageController struct {
	Messages     repository.MessageRepository
	Reservations *services.ReservationService
}

func userIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("userId")
	if !exists {
		return uuid.Nil, false
	}
	s, ok := raw.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// participants resolves the two user ids of a reservation's conversation.
func participants(r *models.Reservation) (clientUser, agentUser uuid.UUID, ok bool) {
	if r.Client == nil || r.Agent == nil {
		return uuid.Nil, uuid.Nil, false
	}
	return r.Client.UserID, r.Agent.UserID, true
}

// GetMessages lists a reservation's conversation and marks the caller's
// unread messages as read.
func (mc *MessageController) GetMessages(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, services.ErrAuthenticationRequired.Error())
		return
	}

	reservationUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reservation ID format")
		return
	}

	reservation, err := mc.Reservations.GetByID(c.Request.Context(), reservationUUID)
	if err != nil {
		respondReservationError(c, err)
		return
	}
	clientUser, agentUser, found := participants(reservation)
	if !found || (userID != clientUser && userID != agentUser) {
		utils.RespondWithError(c, http.StatusNotFound, services.ErrNotFound.Error())
		return
	}

	if err := mc.Messages.MarkRead(c.Request.Context(), reservationUUID, userID); err != nil {
		utils.GetLogger().Warn("mark read failed", zap.Error(err))
	}

	messages, err := mc.Messages.ListByReservation(c.Request.Context(), reservationUUID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Échec du chargement des messages")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "messages": messages})
}

// SendMessage appends a message to the reservation's conversation; the
// receiver is always the other party.
func (mc *MessageController) SendMessage(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, services.ErrAuthenticationRequired.Error())
		return
	}

	reservationUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reservation ID format")
		return
	}

	var input SendMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	reservation, err := mc.Reservations.GetByID(c.Request.Context(), reservationUUID)
	if err != nil {
		respondReservationError(c, err)
		return
	}
	clientUser, agentUser, found := participants(reservation)
	if !found || (userID != clientUser && userID != agentUser) {
		utils.RespondWithError(c, http.StatusNotFound, services.ErrNotFound.Error())
		return
	}

	receiver := clientUser
	if userID == clientUser {
		receiver = agentUser
	}

	message := models.Message{
		ReservationID: reservationUUID,
		SenderID:      userID,
		ReceiverID:    receiver,
		Content:       input.Content,
	}
	if err := mc.Messages.CreateMessage(c.Request.Context(), &message); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Échec de l'envoi du message")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": message})
}
