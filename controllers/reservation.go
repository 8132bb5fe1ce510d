// controllers/reservation.go
package controllers

import (
	"context"
	"errors"
	"net/http"

	"powercare-backend/services"
	"powercare-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReservationController exposes the reservation workflow over HTTP. The
// authenticated client id always comes from the token, never from the body.
type ReservationController struct {
	Svc *services.ReservationService
}

func clientIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("clientId")
	if !exists {
		return uuid.Nil, false
	}
	s, ok := raw.(string)
	if !ok || s == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// respondReservationError maps the flow's failure kinds onto HTTP statuses.
func respondReservationError(c *gin.Context, err error) {
	var submission *services.SubmissionError
	switch {
	case errors.Is(err, services.ErrAllFieldsRequired):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrAuthenticationRequired):
		utils.RespondWithError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrTimeout):
		utils.RespondWithError(c, http.StatusGatewayTimeout, err.Error())
	case errors.As(err, &submission):
		utils.RespondWithError(c, http.StatusUnprocessableEntity, submission.Error())
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Erreur lors du chargement des réservations")
	}
}

// CreateReservation submits a booking request; on success the reservation is
// returned in pending status.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	clientID, ok := clientIDFromContext(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, services.ErrAuthenticationRequired.Error())
		return
	}

	var form services.FormReservation
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	form.ClientID = clientID

	if form.Phone != "" && !utils.ValidatePhone(form.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Numéro de téléphone invalide")
		return
	}

	reservation, err := rc.Svc.Submit(c.Request.Context(), form)
	if err != nil {
		respondReservationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Votre reservation a bien été effectuée",
		"reservation": reservation,
	})
}

// GetReservations lists the authenticated client's reservations
func (rc *ReservationController) GetReservations(c *gin.Context) {
	clientID, ok := clientIDFromContext(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, services.ErrAuthenticationRequired.Error())
		return
	}

	reservations, err := rc.Svc.ListByClient(c.Request.Context(), clientID)
	if err != nil {
		respondReservationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "",
		"reservations": reservations,
	})
}

// GetReservation retrieves one reservation with full detail
func (rc *ReservationController) GetReservation(c *gin.Context) {
	clientID, ok := clientIDFromContext(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, services.ErrAuthenticationRequired.Error())
		return
	}

	reservationUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reservation ID format")
		return
	}

	reservation, err := rc.Svc.GetByID(c.Request.Context(), reservationUUID)
	if err != nil {
		respondReservationError(c, err)
		return
	}
	if reservation.ClientID != clientID {
		utils.RespondWithError(c, http.StatusNotFound, services.ErrNotFound.Error())
		return
	}

	c.JSON(http.StatusOK, reservation)
}

// CancelReservation moves a pending reservation to cancelled
func (rc *ReservationController) CancelReservation(c *gin.Context) {
	rc.mutate(c, rc.Svc.Cancel, "Réservation annulée")
}

// RemoveReservation permanently deletes a cancelled reservation
func (rc *ReservationController) RemoveReservation(c *gin.Context) {
	rc.mutate(c, rc.Svc.Remove, "Réservation supprimée")
}

func (rc *ReservationController) mutate(c *gin.Context, op func(context.Context, uuid.UUID) error, message string) {
	clientID, ok := clientIDFromContext(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, services.ErrAuthenticationRequired.Error())
		return
	}

	reservationUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reservation ID format")
		return
	}

	// Ownership check before mutating; foreign ids read as absent.
	reservation, err := rc.Svc.GetByID(c.Request.Context(), reservationUUID)
	if err != nil {
		respondReservationError(c, err)
		return
	}
	if reservation.ClientID != clientID {
		utils.RespondWithError(c, http.StatusNotFound, services.ErrNotFound.Error())
		return
	}

	if err := op(c.Request.Context(), reservationUUID); err != nil {
		respondReservationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}
