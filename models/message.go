package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is one entry of the conversation attached to a reservation.
type Message struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ReservationID uuid.UUID `gorm:"type:uuid;index;not null" json:"reservation_id"`
	SenderID      uuid.UUID `gorm:"type:uuid;index;not null" json:"sender_id"`
	ReceiverID    uuid.UUID `gorm:"type:uuid;index;not null" json:"receiver_id"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	IsRead        bool      `gorm:"default:false" json:"is_read"`

	Sender *User `gorm:"foreignKey:SenderID" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}
