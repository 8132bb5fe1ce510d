// Package repository holds the data gateways behind the reservation flow.
// Two implementations exist for each interface: a Postgres one (gorm) and an
// in-memory fixture one used when no database is configured. The choice is
// made once at composition time in main, never at call sites.
package repository

import (
	"context"
	"errors"
	"time"

	"powercare-backend/models"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned for any lookup miss.
	ErrNotFound = errors.New("enregistrement introuvable")
	// ErrStatusConflict is returned when a guarded status transition finds
	// the record in a different state than expected.
	ErrStatusConflict = errors.New("statut incompatible avec l'opération")
	// ErrInvalidCredentials is returned by Authenticate.
	ErrInvalidCredentials = errors.New("email ou mot de passe incorrect")
	// ErrInactiveAccount is returned when the account exists but is disabled.
	ErrInactiveAccount = errors.New("compte inactif, contactez le support")
	// ErrEmailTaken is returned on registration with a known email.
	ErrEmailTaken = errors.New("email déjà enregistré")
)

// ReservationRepository persists reservations and applies the two guarded
// transitions. UpdateStatus is compare-and-set on the current status so a
// concurrent mutation from another surface loses cleanly.
type ReservationRepository interface {
	Create(ctx context.Context, r *models.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error)
	FindByToken(ctx context.Context, token string) (*models.Reservation, error)
	FindByClient(ctx context.Context, clientID uuid.UUID) ([]models.Reservation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.Status) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CatalogRepository serves the read-only service/agent data.
type CatalogRepository interface {
	ListServices(ctx context.Context, typeAgent models.AgentType) ([]models.Service, error)
	FindServiceByID(ctx context.Context, id uuid.UUID) (*models.Service, error)
	FindAgentsByService(ctx context.Context, serviceID uuid.UUID) ([]models.Agent, error)
	FindAgentByID(ctx context.Context, id uuid.UUID) (*models.Agent, error)
}

// IdentityRepository is the authentication boundary.
type IdentityRepository interface {
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	CreateClient(ctx context.Context, user *models.User, client *models.Client) error
	FindUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindClientByUser(ctx context.Context, userID uuid.UUID) (*models.Client, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
}

// MessageRepository stores the per-reservation conversations.
type MessageRepository interface {
	ListByReservation(ctx context.Context, reservationID uuid.UUID) ([]models.Message, error)
	CreateMessage(ctx context.Context, m *models.Message) error
	MarkRead(ctx context.Context, reservationID, receiverID uuid.UUID) error
}
