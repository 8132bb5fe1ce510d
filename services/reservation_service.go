// services/reservation_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"powercare-backend/models"
	"powercare-backend/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultRequestTimeout = 10 * time.Second

// ReservationService owns the reservation lifecycle: submission in pending
// status, the cancel and remove transitions, and the client-facing views.
type ReservationService struct {
	reservations repository.ReservationRepository
	catalog      repository.CatalogRepository
	notifier     Notifier
	logger       *zap.Logger

	// Timeout bounds every gateway call; exceeding it surfaces ErrTimeout.
	Timeout time.Duration
}

func NewReservationService(
	reservations repository.ReservationRepository,
	catalog repository.CatalogRepository,
	notifier Notifier,
	logger *zap.Logger,
) *ReservationService {
	return &ReservationService{
		reservations: reservations,
		catalog:      catalog,
		notifier:     notifier,
		logger:       logger,
		Timeout:      defaultRequestTimeout,
	}
}

// Submit revalidates the form server-side, dedupes on the request token and
// creates the reservation in pending status. The service, agent and client
// references are fixed here for good.
func (s *ReservationService) Submit(ctx context.Context, form FormReservation) (*models.Reservation, error) {
	if form.ClientID == uuid.Nil {
		return nil, ErrAuthenticationRequired
	}
	if form.Adresse == "" || form.Phone == "" || form.DateReservation == "" {
		return nil, ErrAllFieldsRequired
	}

	frequence := models.FrequencyHour
	if form.Frequence != "" {
		f, err := models.ParseFrequency(form.Frequence)
		if err != nil {
			return nil, &SubmissionError{Message: err.Error()}
		}
		frequence = f
	}

	date, err := time.Parse(time.RFC3339, form.DateReservation)
	if err != nil {
		return nil, &SubmissionError{Message: fmt.Sprintf("date invalide: %s", form.DateReservation)}
	}

	if form.Duree < 1 {
		form.Duree = 1
	}
	if form.NombrePersonnes < 1 {
		form.NombrePersonnes = 1
	}

	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	service, err := s.catalog.FindServiceByID(ctx, form.ServiceID)
	if err != nil {
		return nil, s.submissionErr(err, "Service introuvable.")
	}
	if service.TypeAgent == models.AgentMenager && form.TailleLogement == "" {
		return nil, ErrAllFieldsRequired
	}

	agent, err := s.catalog.FindAgentByID(ctx, form.AgentID)
	if err != nil {
		return nil, s.submissionErr(err, "Agent introuvable.")
	}
	if agent.ServiceID != service.ID {
		return nil, &SubmissionError{Message: "L'agent ne propose pas ce service."}
	}

	if form.RequestToken == "" {
		form.RequestToken = uuid.NewString()
	}
	// Same token, same reservation: a double-tapped submit must not create a
	// duplicate booking.
	if existing, err := s.reservations.FindByToken(ctx, form.RequestToken); err == nil {
		return existing, nil
	}

	reservation := &models.Reservation{
		ClientID:                form.ClientID,
		ServiceID:               form.ServiceID,
		AgentID:                 form.AgentID,
		Frequence:               frequence,
		DateReservation:         date,
		Duree:                   form.Duree,
		Adresse:                 form.Adresse,
		Phone:                   form.Phone,
		TransportInclus:         form.TransportInclus,
		Urgence:                 form.Urgence,
		NombrePersonnes:         form.NombrePersonnes,
		TailleLogement:          form.TailleLogement,
		TachesSpecifiques:       form.TachesSpecifiques,
		ConditionsParticulieres: form.ConditionsParticulieres,
		Statut:                  models.StatusPending,
		RequestToken:            form.RequestToken,
	}

	if err := s.reservations.Create(ctx, reservation); err != nil {
		return nil, s.submissionErr(err, "")
	}

	s.logger.Info("reservation created",
		zap.String("id", reservation.ID.String()),
		zap.String("client_id", form.ClientID.String()),
		zap.String("service", service.Nom))

	go func() {
		if err := s.notifier.Send(form.Phone, "Votre reservation a bien été effectuée"); err != nil {
			s.logger.Warn("confirmation notification failed", zap.Error(err))
		}
	}()

	return reservation, nil
}

// Cancel moves a pending reservation to cancelled. Any other current status
// is rejected and nothing is mutated.
func (s *ReservationService) Cancel(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	reservation, err := s.reservations.FindByID(ctx, id)
	if err != nil {
		return s.lookupErr(err)
	}
	if reservation.Statut != models.StatusPending {
		return &SubmissionError{Message: "Seule une réservation en attente peut être annulée."}
	}
	if err := s.reservations.UpdateStatus(ctx, id, models.StatusPending, models.StatusCancelled); err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			return &SubmissionError{Message: "Seule une réservation en attente peut être annulée."}
		}
		return s.submissionErr(err, "")
	}
	s.logger.Info("reservation cancelled", zap.String("id", id.String()))
	return nil
}

// Remove permanently deletes a cancelled reservation. Only reachable from
// cancelled; subsequent fetches return not-found.
func (s *ReservationService) Remove(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	reservation, err := s.reservations.FindByID(ctx, id)
	if err != nil {
		return s.lookupErr(err)
	}
	if reservation.Statut != models.StatusCancelled {
		return &SubmissionError{Message: "Seule une réservation annulée peut être supprimée."}
	}
	if err := s.reservations.Delete(ctx, id); err != nil {
		return s.submissionErr(err, "")
	}
	s.logger.Info("reservation removed", zap.String("id", id.String()))
	return nil
}

// ListByClient returns the client's reservations with denormalized agent and
// service summaries, most recent first.
func (s *ReservationService) ListByClient(ctx context.Context, clientID uuid.UUID) ([]models.Reservation, error) {
	if clientID == uuid.Nil {
		return nil, ErrAuthenticationRequired
	}
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	reservations, err := s.reservations.FindByClient(ctx, clientID)
	if err != nil {
		return nil, s.lookupErr(err)
	}
	return reservations, nil
}

// GetByID returns one reservation with full detail.
func (s *ReservationService) GetByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	reservation, err := s.reservations.FindByID(ctx, id)
	if err != nil {
		return nil, s.lookupErr(err)
	}
	return reservation, nil
}

func (s *ReservationService) lookupErr(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ErrTimeout
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	default:
		return err
	}
}

func (s *ReservationService) submissionErr(err error, message string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	if errors.Is(err, repository.ErrNotFound) && message != "" {
		return &SubmissionError{Message: message}
	}
	s.logger.Error("reservation gateway failure", zap.Error(err))
	return &SubmissionError{Message: message}
}
