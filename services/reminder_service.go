// services/reminder_service.go
package services

import (
	"fmt"
	"time"

	"powercare-backend/models"
	"powercare-backend/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ReminderService sends a day-ahead SMS to clients whose reservation starts
// within the next 24 hours. It only runs against the database-backed
// deployment; mock mode has nothing to remind.
type ReminderService struct {
	db       *gorm.DB
	notifier Notifier
	logger   *zap.Logger
}

func NewReminderService(db *gorm.DB, notifier Notifier) *ReminderService {
	return &ReminderService{
		db:       db,
		notifier: notifier,
		logger:   utils.GetLogger(),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", func() {
		s.SendDailyReminders()
	})

	c.Start()
	s.logger.Info("Reminder scheduler started")
}

// reminderWindow covers the whole of the day after now, so the 9 AM run
// reminds about tomorrow's reservations exactly once.
func reminderWindow(now time.Time) (time.Time, time.Time) {
	start := utils.BeginningOfDay(now.Add(24 * time.Hour))
	return start, start.Add(24 * time.Hour)
}

func (s *ReminderService) SendDailyReminders() {
	s.logger.Info("Starting daily reminder processing...")

	windowStart, windowEnd := reminderWindow(time.Now())

	var reservations []models.Reservation
	err := s.db.
		Preload("Service").
		Preload("Agent.User").
		Where("statut IN ?", []models.Status{models.StatusPending, models.StatusConfirmed}).
		Where("date_reservation >= ? AND date_reservation < ?", windowStart, windowEnd).
		Find(&reservations).Error
	if err != nil {
		s.logger.Error("Failed to fetch upcoming reservations", zap.Error(err))
		return
	}

	for _, reservation := range reservations {
		s.sendReminder(reservation)
	}

	s.logger.Info("Daily reminder processing completed",
		zap.Int("count", len(reservations)))
}

func (s *ReminderService) sendReminder(reservation models.Reservation) {
	serviceName := "votre service"
	if reservation.Service != nil {
		serviceName = reservation.Service.Nom
	}
	agentName := "votre agent"
	if reservation.Agent != nil && reservation.Agent.User != nil {
		agentName = reservation.Agent.User.Name
	}

	message := fmt.Sprintf(
		"Rappel PowerCare: %s avec %s prévu le %s.",
		serviceName, agentName,
		reservation.DateReservation.Format("02/01/2006 à 15h04"),
	)

	status := "sent"
	errorMsg := ""
	if err := s.notifier.Send(reservation.Phone, message); err != nil {
		s.logger.Warn("Failed to send reminder",
			zap.String("reservation_id", reservation.ID.String()), zap.Error(err))
		status = "failed"
		errorMsg = err.Error()
	}

	entry := models.NotificationLog{
		ReservationID: reservation.ID,
		ClientID:      reservation.ClientID,
		Message:       message,
		Status:        status,
		ErrorMessage:  errorMsg,
		Channel:       "sms",
		SentAt:        time.Now(),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		s.logger.Warn("Failed to log reminder",
			zap.String("reservation_id", reservation.ID.String()), zap.Error(err))
	}
}
