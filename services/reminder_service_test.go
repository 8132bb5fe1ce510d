package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReminderWindowCoversTomorrow(t *testing.T) {
	now := time.Date(2025, 11, 30, 9, 0, 0, 0, time.UTC)
	start, end := reminderWindow(now)

	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 12, 2, 0, 0, 0, 0, time.UTC), end)

	// A reservation later the same day is not tomorrow's business.
	tonight := time.Date(2025, 11, 30, 20, 0, 0, 0, time.UTC)
	assert.True(t, tonight.Before(start))
}

func TestReminderWindowStableWithinTheDay(t *testing.T) {
	morning := time.Date(2025, 11, 30, 9, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 11, 30, 22, 30, 0, 0, time.UTC)

	startA, endA := reminderWindow(morning)
	startB, endB := reminderWindow(evening)
	assert.Equal(t, startA, startB, "any run time on the same day targets the same window")
	assert.Equal(t, endA, endB)
}
