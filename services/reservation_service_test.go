package services

import (
	"context"
	"testing"
	"time"

	"powercare-backend/models"
	"powercare-backend/repository"
	"powercare-backend/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	svc      *ReservationService
	fixtures *repository.Fixtures
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	fixtures := repository.DefaultFixtures()
	mem := repository.NewMemoryRepository(fixtures)
	svc := NewReservationService(mem, mem, LogNotifier{}, utils.GetLogger())
	return &testEnv{svc: svc, fixtures: fixtures}
}

// The fixture dataset has the babysitting service first and the housekeeping
// service second, each with one agent of the matching type.
func (e *testEnv) babysitting() (models.Service, models.Agent) {
	return e.fixtures.Services[0], e.fixtures.Agents[0]
}

func (e *testEnv) menage() (models.Service, models.Agent) {
	return e.fixtures.Services[1], e.fixtures.Agents[1]
}

func (e *testEnv) clientID() uuid.UUID {
	return e.fixtures.Clients[0].ID
}

func validMenageForm(e *testEnv) FormReservation {
	service, agent := e.menage()
	return FormReservation{
		ClientID:        e.clientID(),
		ServiceID:       service.ID,
		AgentID:         agent.ID,
		Frequence:       "Jour",
		DateReservation: "2025-12-01T00:00:00Z",
		Duree:           3,
		Adresse:         "12 Rue X",
		Phone:           "+221700000000",
		TailleLogement:  "T2",
	}
}

func TestSubmitCreatesPendingReservation(t *testing.T) {
	e := newTestEnv(t)
	form := validMenageForm(e)

	reservation, err := e.svc.Submit(context.Background(), form)
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, reservation.Statut)
	assert.Equal(t, "en attente", reservation.Statut.Display())

	// Submitted fields are echoed back unchanged on the next fetch.
	fetched, err := e.svc.GetByID(context.Background(), reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, fetched.Statut)
	assert.Equal(t, models.FrequencyDay, fetched.Frequence)
	assert.Equal(t, 3, fetched.Duree)
	assert.Equal(t, "12 Rue X", fetched.Adresse)
	assert.Equal(t, "+221700000000", fetched.Phone)
	assert.Equal(t, "T2", fetched.TailleLogement)
	assert.Equal(t, form.ClientID, fetched.ClientID)
	assert.Equal(t, form.ServiceID, fetched.ServiceID)
	assert.Equal(t, form.AgentID, fetched.AgentID)
}

func TestSubmitRefusedWithoutIdentity(t *testing.T) {
	e := newTestEnv(t)
	form := validMenageForm(e)
	form.ClientID = uuid.Nil

	_, err := e.svc.Submit(context.Background(), form)
	assert.ErrorIs(t, err, ErrAuthenticationRequired)
}

func TestSubmitRequiredFields(t *testing.T) {
	e := newTestEnv(t)

	for name, mutate := range map[string]func(*FormReservation){
		"empty adresse": func(f *FormReservation) { f.Adresse = "" },
		"empty phone":   func(f *FormReservation) { f.Phone = "" },
		"empty date":    func(f *FormReservation) { f.DateReservation = "" },
		"menager without taille_logement": func(f *FormReservation) {
			f.TailleLogement = ""
		},
	} {
		t.Run(name, func(t *testing.T) {
			form := validMenageForm(e)
			mutate(&form)
			_, err := e.svc.Submit(context.Background(), form)
			assert.ErrorIs(t, err, ErrAllFieldsRequired)
		})
	}
}

func TestSubmitBabysitterSkipsHousingSize(t *testing.T) {
	e := newTestEnv(t)
	service, agent := e.babysitting()
	form := FormReservation{
		ClientID:        e.clientID(),
		ServiceID:       service.ID,
		AgentID:         agent.ID,
		DateReservation: "2025-12-01T09:00:00Z",
		Adresse:         "Dakar, Point E",
		Phone:           "+221700000001",
	}

	reservation, err := e.svc.Submit(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, 1, reservation.NombrePersonnes, "defaults to 1 when untouched")
	assert.Equal(t, models.FrequencyHour, reservation.Frequence, "default frequency")
	assert.Equal(t, 1, reservation.Duree)
}

func TestSubmitRejectsUnknownFrequency(t *testing.T) {
	e := newTestEnv(t)
	form := validMenageForm(e)
	form.Frequence = "Quinzaine"

	_, err := e.svc.Submit(context.Background(), form)
	var submission *SubmissionError
	assert.ErrorAs(t, err, &submission)
}

func TestSubmitRejectsMismatchedAgent(t *testing.T) {
	e := newTestEnv(t)
	form := validMenageForm(e)
	_, babysitter := e.babysitting()
	form.AgentID = babysitter.ID

	_, err := e.svc.Submit(context.Background(), form)
	var submission *SubmissionError
	require.ErrorAs(t, err, &submission)
	assert.Equal(t, "L'agent ne propose pas ce service.", submission.Error())
}

func TestSubmitDedupesOnRequestToken(t *testing.T) {
	e := newTestEnv(t)
	form := validMenageForm(e)
	form.RequestToken = uuid.NewString()

	first, err := e.svc.Submit(context.Background(), form)
	require.NoError(t, err)
	second, err := e.svc.Submit(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "double-tap must not create a second booking")

	list, err := e.svc.ListByClient(context.Background(), form.ClientID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSubmitTokenReusableAfterRemoval(t *testing.T) {
	e := newTestEnv(t)
	form := validMenageForm(e)
	form.RequestToken = uuid.NewString()

	first, err := e.svc.Submit(context.Background(), form)
	require.NoError(t, err)
	require.NoError(t, e.svc.Cancel(context.Background(), first.ID))
	require.NoError(t, e.svc.Remove(context.Background(), first.ID))

	// Removal frees the token: the same payload creates a fresh booking
	// instead of deduping against (or colliding with) the purged one.
	second, err := e.svc.Submit(context.Background(), form)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, models.StatusPending, second.Statut)
}

func TestCancelOnlyFromPending(t *testing.T) {
	e := newTestEnv(t)
	reservation, err := e.svc.Submit(context.Background(), validMenageForm(e))
	require.NoError(t, err)

	require.NoError(t, e.svc.Cancel(context.Background(), reservation.ID))

	fetched, err := e.svc.GetByID(context.Background(), reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, fetched.Statut)
	assert.Equal(t, "annulée", fetched.Statut.Display())

	// Second cancel on the same id is rejected.
	err = e.svc.Cancel(context.Background(), reservation.ID)
	var submission *SubmissionError
	assert.ErrorAs(t, err, &submission)
}

func TestRemoveOnlyFromCancelled(t *testing.T) {
	e := newTestEnv(t)
	reservation, err := e.svc.Submit(context.Background(), validMenageForm(e))
	require.NoError(t, err)

	// Pending reservations cannot be removed.
	err = e.svc.Remove(context.Background(), reservation.ID)
	var submission *SubmissionError
	require.ErrorAs(t, err, &submission)

	require.NoError(t, e.svc.Cancel(context.Background(), reservation.ID))
	require.NoError(t, e.svc.Remove(context.Background(), reservation.ID))

	_, err = e.svc.GetByID(context.Background(), reservation.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExpiredDeadlineSurfacesAsTimeout(t *testing.T) {
	e := newTestEnv(t)
	reservation, err := e.svc.Submit(context.Background(), validMenageForm(e))
	require.NoError(t, err)

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	_, err = e.svc.GetByID(ctx, reservation.ID)
	assert.ErrorIs(t, err, ErrTimeout)

	_, err = e.svc.ListByClient(ctx, e.clientID())
	assert.ErrorIs(t, err, ErrTimeout)

	_, err = e.svc.Submit(ctx, validMenageForm(e))
	assert.ErrorIs(t, err, ErrTimeout)

	// The mutating calls time out without touching the reservation.
	assert.ErrorIs(t, e.svc.Cancel(ctx, reservation.ID), ErrTimeout)
	fetched, err := e.svc.GetByID(context.Background(), reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, fetched.Statut)
}

func TestCancelUnknownReservation(t *testing.T) {
	e := newTestEnv(t)
	err := e.svc.Cancel(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListByClientDenormalizes(t *testing.T) {
	e := newTestEnv(t)
	_, err := e.svc.Submit(context.Background(), validMenageForm(e))
	require.NoError(t, err)

	list, err := e.svc.ListByClient(context.Background(), e.clientID())
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Service)
	require.NotNil(t, list[0].Agent)
	require.NotNil(t, list[0].Agent.User)
	assert.Equal(t, "Ménage à domicile", list[0].Service.Nom)
	assert.Equal(t, "Moussa Ndiaye", list[0].Agent.User.Name)
}

func TestListByClientRequiresIdentity(t *testing.T) {
	e := newTestEnv(t)
	_, err := e.svc.ListByClient(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, ErrAuthenticationRequired)
}
