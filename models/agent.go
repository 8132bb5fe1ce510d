package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AgentType doubles as the service category flag: a service of a given type
// is fulfilled by agents of the same type. "menager" is the housekeeping
// category the mobile clients send.
type AgentType string

const (
	AgentBabysitter AgentType = "babysitter"
	AgentMenager    AgentType = "menager"
)

type Disponibilite string

const (
	TempsPlein   Disponibilite = "temps plein"
	TempsPartiel Disponibilite = "temps partiel"
	Occasionnel  Disponibilite = "occasionnel"
)

// Agent is a bookable service provider. The reservation flow reads agents,
// it never mutates them.
type Agent struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`

	Type          AgentType     `gorm:"type:varchar(20);not null" json:"type"`
	Experience    int           `json:"experience"`
	Disponibilite Disponibilite `gorm:"type:varchar(20)" json:"disponibilite"`
	TarifHoraire  float64       `gorm:"type:decimal(10,2)" json:"tarif_horaire"`
	Adresse       string        `json:"adresse"`
	Statut        string        `gorm:"type:varchar(20);default:'disponible'" json:"statut"`
	Rating        float64       `gorm:"default:0" json:"rating"`
	IsBadges      bool          `gorm:"default:false" json:"is_badges"`
	IsRecommended bool          `gorm:"default:false" json:"is_recommended"`

	ServiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"service_id"`

	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Service *Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (a *Agent) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
