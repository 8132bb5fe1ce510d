package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientType string

const (
	ClientPersonnel  ClientType = "personnel"
	ClientEntreprise ClientType = "entreprise"
)

// Client is the requester profile attached to a user account. EntrepriseNom
// is required when the client books on behalf of a company.
type Client struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`

	Type          ClientType `gorm:"type:varchar(20);not null;default:'personnel'" json:"type"`
	Adresse       string     `json:"adresse"`
	EntrepriseNom string     `json:"entreprise_nom,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	Reservations []Reservation `gorm:"foreignKey:ClientID" json:"-"`

	gorm.Model `json:"-"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
