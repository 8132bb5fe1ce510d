package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is a bookable offering (babysitting, cleaning). Read-only from the
// reservation flow.
type Service struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Nom         string    `gorm:"not null" json:"nom"`
	Image       string    `json:"image,omitempty"`
	Description string    `json:"description"`
	TypeAgent   AgentType `gorm:"type:varchar(20);not null;index" json:"type_agent"`
	PrixBase    float64   `gorm:"type:decimal(10,2);not null" json:"prix_base"`
	Actif       bool      `gorm:"default:true" json:"actif"`

	Taches   []Tache   `gorm:"foreignKey:ServiceID" json:"taches,omitempty"`
	Pricings []Pricing `gorm:"foreignKey:ServiceID" json:"pricings,omitempty"`

	gorm.Model `json:"-"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

// Tache is a constituent task of a service. Supplement marks tasks billed on
// top of the base price.
type Tache struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ServiceID   uuid.UUID `gorm:"type:uuid;index;not null" json:"service_id"`
	Nom         string    `gorm:"not null" json:"nom"`
	Description string    `json:"description"`
	Supplement  bool      `gorm:"default:false" json:"supplement"`
}

func (t *Tache) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}

// Pricing is one tier of a service (period + amount + currency).
type Pricing struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ServiceID   uuid.UUID `gorm:"type:uuid;index;not null" json:"service_id"`
	Amount      float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	Currency    string    `gorm:"type:varchar(10);not null" json:"currency"`
	Period      string    `gorm:"type:varchar(20);not null" json:"period"`
	Description string    `json:"description"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
}

func (p *Pricing) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
