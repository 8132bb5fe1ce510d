package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status is the closed set of reservation lifecycle states. Values are
// normalized at the API boundary; French display text lives in Display.
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusCancelled  Status = "cancelled"
	StatusTerminated Status = "terminated"
)

// ParseStatus normalizes a status string. It is case-insensitive and accepts
// the French display forms that older clients still send.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending", "en attente", "en_attente":
		return StatusPending, nil
	case "confirmed", "confirmée", "confirmee":
		return StatusConfirmed, nil
	case "cancelled", "annulée", "annulee":
		return StatusCancelled, nil
	case "terminated", "terminée", "terminee":
		return StatusTerminated, nil
	}
	return "", fmt.Errorf("statut inconnu: %q", s)
}

// Display returns the French label shown to users.
func (s Status) Display() string {
	switch s {
	case StatusPending:
		return "en attente"
	case StatusConfirmed:
		return "confirmée"
	case StatusCancelled:
		return "annulée"
	case StatusTerminated:
		return "terminée"
	}
	return string(s)
}

// Frequency is the recurrence unit of a reservation. The wire values are the
// French words the mobile app sends.
type Frequency string

const (
	FrequencyHour       Frequency = "Heure"
	FrequencyDay        Frequency = "Jour"
	FrequencyWeek       Frequency = "Semaine"
	FrequencyMonth      Frequency = "Mois"
	FrequencyYear       Frequency = "Année"
	FrequencyIndefinite Frequency = "Indefinie"
)

var frequencies = []Frequency{
	FrequencyHour, FrequencyDay, FrequencyWeek,
	FrequencyMonth, FrequencyYear, FrequencyIndefinite,
}

// Frequencies returns the allowed values in display order.
func Frequencies() []Frequency {
	out := make([]Frequency, len(frequencies))
	copy(out, frequencies)
	return out
}

// ParseFrequency validates membership in the closed set, case-insensitively.
func ParseFrequency(s string) (Frequency, error) {
	for _, f := range frequencies {
		if strings.EqualFold(strings.TrimSpace(s), string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("fréquence inconnue: %q", s)
}

// Reservation links a client, a service and an agent with scheduling and
// logistics detail. The three references are immutable after creation; the
// only client-driven transitions are pending -> cancelled and
// cancelled -> deleted.
type Reservation struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ClientID  uuid.UUID `gorm:"type:uuid;index;not null" json:"client_id"`
	ServiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"service_id"`
	AgentID   uuid.UUID `gorm:"type:uuid;index;not null" json:"agent_id"`

	Frequence       Frequency `gorm:"type:varchar(20);not null" json:"frequence"`
	DateReservation time.Time `gorm:"not null" json:"date_reservation"`
	Duree           int       `gorm:"not null;default:1" json:"duree"`

	Adresse         string `gorm:"not null" json:"adresse"`
	Phone           string `gorm:"not null" json:"phone"`
	TransportInclus bool   `gorm:"default:false" json:"transport_inclus"`
	Urgence         bool   `gorm:"default:false" json:"urgence"`

	NombrePersonnes         int    `gorm:"default:1" json:"nombre_personnes"`
	TailleLogement          string `json:"taille_logement,omitempty"`
	TachesSpecifiques       string `json:"taches_specifiques,omitempty"`
	ConditionsParticulieres string `json:"conditions_particulieres,omitempty"`

	Statut Status `gorm:"type:varchar(20);not null;index" json:"statut"`

	// One token per submission attempt; duplicate submissions with the same
	// token must resolve to the same reservation.
	RequestToken string `gorm:"uniqueIndex;not null" json:"request_token"`

	Client  *Client  `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Service *Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	Agent   *Agent   `gorm:"foreignKey:AgentID" json:"agent,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
