// models/notification_log.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationLog records every outbound reminder attempt so a failed send
// can be audited without digging through provider dashboards.
type NotificationLog struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ReservationID uuid.UUID `gorm:"type:uuid;index;not null" json:"reservation_id"`
	ClientID      uuid.UUID `gorm:"type:uuid;index;not null" json:"client_id"`
	Message       string    `gorm:"type:text" json:"message"`
	Status        string    `gorm:"type:varchar(20)" json:"status"` // sent, failed
	ErrorMessage  string    `gorm:"type:text" json:"error_message,omitempty"`
	Channel       string    `gorm:"type:varchar(20)" json:"channel"` // sms, log
	SentAt        time.Time `json:"sent_at"`
	gorm.Model    `json:"-"`
}

func (n *NotificationLog) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return
}
