package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"powercare-backend/models"
	"powercare-backend/repository"
	"powercare-backend/services"
	"powercare-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reservationTestApp struct {
	router   *gin.Engine
	fixtures *repository.Fixtures
	clientID uuid.UUID
}

func newReservationTestApp(t *testing.T) *reservationTestApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fixtures := repository.DefaultFixtures()
	mem := repository.NewMemoryRepository(fixtures)
	svc := services.NewReservationService(mem, mem, services.LogNotifier{}, utils.GetLogger())

	clientID := fixtures.Clients[0].ID
	userID := fixtures.Clients[0].UserID

	// Stand-in for the JWT middleware: the token claims become context keys.
	auth := func(c *gin.Context) {
		c.Set("userId", userID.String())
		c.Set("clientId", clientID.String())
	}

	rc := ReservationController{Svc: svc}
	router := gin.New()
	group := router.Group("/api/reservations", auth)
	group.POST("", rc.CreateReservation)
	group.GET("", rc.GetReservations)
	group.GET("/:id", rc.GetReservation)
	group.POST("/:id/cancel", rc.CancelReservation)
	group.POST("/:id/remove", rc.RemoveReservation)

	return &reservationTestApp{router: router, fixtures: fixtures, clientID: clientID}
}

func (a *reservationTestApp) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *reservationTestApp) validForm() map[string]any {
	service := a.fixtures.Services[1] // housekeeping
	agent := a.fixtures.Agents[1]
	return map[string]any{
		"service_id":       service.ID,
		"agent_id":         agent.ID,
		"frequence":        "Jour",
		"date_reservation": "2025-12-01T00:00:00Z",
		"duree":            3,
		"adresse":          "12 Rue X",
		"phone":            "+221700000000",
		"taille_logement":  "T2",
	}
}

func TestCreateReservationEndpoint(t *testing.T) {
	app := newReservationTestApp(t)

	w := app.do(t, http.MethodPost, "/api/reservations", app.validForm())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Success     bool               `json:"success"`
		Message     string             `json:"message"`
		Reservation models.Reservation `json:"reservation"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Votre reservation a bien été effectuée", resp.Message)
	assert.Equal(t, models.StatusPending, resp.Reservation.Statut)
	assert.Equal(t, app.clientID, resp.Reservation.ClientID, "client id comes from the token")
}

func TestCreateReservationBlockedOnEmptyAdresse(t *testing.T) {
	app := newReservationTestApp(t)

	form := app.validForm()
	form["adresse"] = ""
	w := app.do(t, http.MethodPost, "/api/reservations", form)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Tout les champs sont récquis")

	// Nothing was created.
	w = app.do(t, http.MethodGet, "/api/reservations", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Reservations []models.Reservation `json:"reservations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Empty(t, list.Reservations)
}

func TestCreateReservationRejectsBadPhone(t *testing.T) {
	app := newReservationTestApp(t)

	form := app.validForm()
	form["phone"] = "not-a-phone"
	w := app.do(t, http.MethodPost, "/api/reservations", form)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetReservationNotFound(t *testing.T) {
	app := newReservationTestApp(t)

	w := app.do(t, http.MethodGet, "/api/reservations/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Réservation non trouvée")
}

func TestCancelThenRemoveLifecycle(t *testing.T) {
	app := newReservationTestApp(t)

	w := app.do(t, http.MethodPost, "/api/reservations", app.validForm())
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Reservation models.Reservation `json:"reservation"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created.Reservation.ID

	// Remove before cancel is rejected.
	w = app.do(t, http.MethodPost, fmt.Sprintf("/api/reservations/%s/remove", id), nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = app.do(t, http.MethodPost, fmt.Sprintf("/api/reservations/%s/cancel", id), nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Second cancel is rejected, already cancelled.
	w = app.do(t, http.MethodPost, fmt.Sprintf("/api/reservations/%s/cancel", id), nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = app.do(t, http.MethodPost, fmt.Sprintf("/api/reservations/%s/remove", id), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodGet, fmt.Sprintf("/api/reservations/%s", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
