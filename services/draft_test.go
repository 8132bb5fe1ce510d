package services

import (
	"testing"

	"powercare-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func babysitterDraft() *Draft {
	service := &models.Service{ID: uuid.New(), TypeAgent: models.AgentBabysitter}
	agent := &models.Agent{ID: uuid.New(), ServiceID: service.ID}
	return NewDraft(uuid.New(), service, agent)
}

func menagerDraft() *Draft {
	service := &models.Service{ID: uuid.New(), TypeAgent: models.AgentMenager}
	agent := &models.Agent{ID: uuid.New(), ServiceID: service.ID}
	return NewDraft(uuid.New(), service, agent)
}

func TestDraftDureeFloorsAtOne(t *testing.T) {
	d := babysitterDraft()
	assert.Equal(t, 1, d.Duree())

	d.DecrementDuree()
	d.DecrementDuree()
	d.DecrementDuree()
	assert.Equal(t, 1, d.Duree(), "decrementing from 1 stays at 1")

	d.IncrementDuree()
	d.IncrementDuree()
	assert.Equal(t, 3, d.Duree())
	d.DecrementDuree()
	assert.Equal(t, 2, d.Duree())
}

func TestDraftPersonnesFloorsAtOne(t *testing.T) {
	d := babysitterDraft()
	d.DecrementPersonnes()
	assert.Equal(t, 1, d.Personnes())
	d.IncrementPersonnes()
	assert.Equal(t, 2, d.Personnes())
}

func TestDraftNextRequiresDateAndAdresse(t *testing.T) {
	d := babysitterDraft()

	err := d.Next()
	assert.ErrorIs(t, err, ErrAllFieldsRequired)
	assert.Equal(t, 1, d.Step())

	d.SetDate("2025-12-01T00:00:00Z")
	err = d.Next()
	assert.ErrorIs(t, err, ErrAllFieldsRequired, "adresse still empty")

	d.SetAdresse("12 Rue X")
	require.NoError(t, d.Next())
	assert.Equal(t, 2, d.Step())
}

func TestDraftBackKeepsValues(t *testing.T) {
	d := menagerDraft()
	d.SetDate("2025-12-01T00:00:00Z")
	d.SetAdresse("Dakar, Liberté 6")
	d.IncrementDuree()
	d.ToggleUrgence()
	require.NoError(t, d.Next())

	d.SetPhone("+221700000000")
	d.SetTailleLogement("T2")
	d.Back()
	assert.Equal(t, 1, d.Step())

	require.NoError(t, d.Next())
	form, err := d.Form()
	require.NoError(t, err)
	assert.Equal(t, "Dakar, Liberté 6", form.Adresse)
	assert.Equal(t, 2, form.Duree)
	assert.True(t, form.Urgence)
	assert.Equal(t, "T2", form.TailleLogement)
	assert.Equal(t, "+221700000000", form.Phone)
}

func TestDraftPickerCancelKeepsDate(t *testing.T) {
	d := babysitterDraft()
	d.SetDate("2025-12-01T00:00:00Z")
	d.SetDate("")
	d.SetAdresse("12 Rue X")
	assert.NoError(t, d.Next())
}

func TestDraftFrequencyMembership(t *testing.T) {
	d := babysitterDraft()
	assert.NoError(t, d.SetFrequency("Jour"))
	assert.NoError(t, d.SetFrequency("semaine"), "case-insensitive")
	assert.Error(t, d.SetFrequency("Quinzaine"))
}

func TestDraftFormRequiresHousingSizeForMenager(t *testing.T) {
	d := menagerDraft()
	d.SetDate("2025-12-01T00:00:00Z")
	d.SetAdresse("Dakar, Plateau")
	require.NoError(t, d.Next())
	d.SetPhone("+221700000000")

	_, err := d.Form()
	assert.ErrorIs(t, err, ErrAllFieldsRequired, "taille_logement missing")

	d.SetTailleLogement("studio")
	form, err := d.Form()
	require.NoError(t, err)
	assert.Equal(t, "studio", form.TailleLogement)
	assert.Zero(t, form.NombrePersonnes, "person counter not sent for menager")
}

func TestDraftFormBabysitterNeverRequiresHousingSize(t *testing.T) {
	d := babysitterDraft()
	d.SetDate("2025-12-01T00:00:00Z")
	d.SetAdresse("12 Rue X")
	require.NoError(t, d.Next())
	d.SetPhone("+221700000000")

	form, err := d.Form()
	require.NoError(t, err)
	assert.Empty(t, form.TailleLogement)
	assert.Equal(t, 1, form.NombrePersonnes, "defaults to 1 when untouched")
}

func TestDraftFormRequiresPhone(t *testing.T) {
	d := babysitterDraft()
	d.SetDate("2025-12-01T00:00:00Z")
	d.SetAdresse("12 Rue X")
	require.NoError(t, d.Next())

	_, err := d.Form()
	assert.ErrorIs(t, err, ErrAllFieldsRequired)
}

func TestDraftTokenStableAcrossAttempts(t *testing.T) {
	d := babysitterDraft()
	d.SetDate("2025-12-01T00:00:00Z")
	d.SetAdresse("12 Rue X")
	require.NoError(t, d.Next())
	d.SetPhone("+221700000000")

	first, err := d.Form()
	require.NoError(t, err)
	second, err := d.Form()
	require.NoError(t, err)
	assert.NotEmpty(t, first.RequestToken)
	assert.Equal(t, first.RequestToken, second.RequestToken,
		"a resubmitted draft reuses its token so the gateway can dedupe")
}
