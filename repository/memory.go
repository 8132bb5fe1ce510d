package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"powercare-backend/models"

	"github.com/google/uuid"
)

// MemoryRepository is the fixture-backed gateway used when no database is
// configured. Every instance owns its own dataset; tests construct one per
// case so nothing is shared process-wide. Fixture passwords are kept in
// plaintext alongside the users, local test data only.
type MemoryRepository struct {
	mu sync.Mutex

	users        map[uuid.UUID]models.User
	passwords    map[uuid.UUID]string
	clients      map[uuid.UUID]models.Client
	agents       map[uuid.UUID]models.Agent
	services     map[uuid.UUID]models.Service
	reservations map[uuid.UUID]models.Reservation
	byToken      map[string]uuid.UUID
	messages     []models.Message
}

// NewMemoryRepository builds an empty repository and applies the given seed.
func NewMemoryRepository(seed *Fixtures) *MemoryRepository {
	m := &MemoryRepository{
		users:        make(map[uuid.UUID]models.User),
		passwords:    make(map[uuid.UUID]string),
		clients:      make(map[uuid.UUID]models.Client),
		agents:       make(map[uuid.UUID]models.Agent),
		services:     make(map[uuid.UUID]models.Service),
		reservations: make(map[uuid.UUID]models.Reservation),
		byToken:      make(map[string]uuid.UUID),
	}
	if seed != nil {
		for i := range seed.Users {
			m.users[seed.Users[i].ID] = seed.Users[i]
			m.passwords[seed.Users[i].ID] = seed.Passwords[seed.Users[i].Email]
		}
		for i := range seed.Clients {
			m.clients[seed.Clients[i].ID] = seed.Clients[i]
		}
		for i := range seed.Services {
			m.services[seed.Services[i].ID] = seed.Services[i]
		}
		for i := range seed.Agents {
			m.agents[seed.Agents[i].ID] = seed.Agents[i]
		}
	}
	return m
}

func (m *MemoryRepository) Create(ctx context.Context, r *models.Reservation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	now := time.Now()
	r.CreatedAt = now
	r.UpdatedAt = now
	m.reservations[r.ID] = *r
	m.byToken[r.RequestToken] = r.ID
	return nil
}

func (m *MemoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.reservations[id]
	if !ok {
		return nil, ErrNotFound
	}
	m.denormalize(&r)
	return &r, nil
}

func (m *MemoryRepository) FindByToken(ctx context.Context, token string) (*models.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	id, ok := m.byToken[token]
	if !ok {
		return nil, ErrNotFound
	}
	r, ok := m.reservations[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &r, nil
}

func (m *MemoryRepository) FindByClient(ctx context.Context, clientID uuid.UUID) ([]models.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Reservation
	for _, r := range m.reservations {
		if r.ClientID == clientID {
			m.denormalize(&r)
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MemoryRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.Status) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.reservations[id]
	if !ok || r.Statut != from {
		return ErrStatusConflict
	}
	r.Statut = to
	r.UpdatedAt = time.Now()
	m.reservations[id] = r
	return nil
}

func (m *MemoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.reservations[id]
	if !ok {
		return ErrNotFound
	}
	delete(m.reservations, id)
	delete(m.byToken, r.RequestToken)
	return nil
}

// denormalize attaches the display summaries the list/detail screens expect.
// Caller holds the lock.
func (m *MemoryRepository) denormalize(r *models.Reservation) {
	if svc, ok := m.services[r.ServiceID]; ok {
		r.Service = &svc
	}
	if agent, ok := m.agents[r.AgentID]; ok {
		if user, ok := m.users[agent.UserID]; ok {
			agent.User = &user
		}
		r.Agent = &agent
	}
	if client, ok := m.clients[r.ClientID]; ok {
		if user, ok := m.users[client.UserID]; ok {
			client.User = &user
		}
		r.Client = &client
	}
}

func (m *MemoryRepository) ListServices(ctx context.Context, typeAgent models.AgentType) ([]models.Service, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Service
	for _, s := range m.services {
		if !s.Actif {
			continue
		}
		if typeAgent != "" && s.TypeAgent != typeAgent {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nom < out[j].Nom })
	return out, nil
}

func (m *MemoryRepository) FindServiceByID(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.services[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (m *MemoryRepository) FindAgentsByService(ctx context.Context, serviceID uuid.UUID) ([]models.Agent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Agent
	for _, a := range m.agents {
		if a.ServiceID != serviceID {
			continue
		}
		if user, ok := m.users[a.UserID]; ok {
			a.User = &user
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsRecommended != out[j].IsRecommended {
			return out[i].IsRecommended
		}
		return out[i].Rating > out[j].Rating
	})
	return out, nil
}

func (m *MemoryRepository) FindAgentByID(ctx context.Context, id uuid.UUID) (*models.Agent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.agents[id]
	if !ok {
		return nil, ErrNotFound
	}
	if user, ok := m.users[a.UserID]; ok {
		a.User = &user
	}
	if svc, ok := m.services[a.ServiceID]; ok {
		a.Service = &svc
	}
	return &a, nil
}

func (m *MemoryRepository) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if !strings.EqualFold(u.Email, email) {
			continue
		}
		if !u.IsActive {
			return nil, ErrInactiveAccount
		}
		if m.passwords[u.ID] != password {
			return nil, ErrInvalidCredentials
		}
		user := u
		return &user, nil
	}
	return nil, ErrInvalidCredentials
}

func (m *MemoryRepository) CreateClient(ctx context.Context, user *models.User, client *models.Client) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if strings.EqualFold(u.Email, user.Email) {
			return ErrEmailTaken
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	client.UserID = user.ID
	m.passwords[user.ID] = user.Password
	user.Password = ""
	m.users[user.ID] = *user
	m.clients[client.ID] = *client
	return nil
}

func (m *MemoryRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (m *MemoryRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[userID]
	if !ok {
		return ErrNotFound
	}
	u.LastLogin = &at
	m.users[userID] = u
	return nil
}

func (m *MemoryRepository) FindClientByUser(ctx context.Context, userID uuid.UUID) (*models.Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range m.clients {
		if c.UserID == userID {
			if user, ok := m.users[userID]; ok {
				c.User = &user
			}
			client := c
			return &client, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryRepository) ListByReservation(ctx context.Context, reservationID uuid.UUID) ([]models.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Message
	for _, msg := range m.messages {
		if msg.ReservationID == reservationID {
			if user, ok := m.users[msg.SenderID]; ok {
				msg.Sender = &user
			}
			out = append(out, msg)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *MemoryRepository) CreateMessage(ctx context.Context, msg *models.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	msg.CreatedAt = time.Now()
	m.messages = append(m.messages, *msg)
	return nil
}

func (m *MemoryRepository) MarkRead(ctx context.Context, reservationID, receiverID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.messages {
		if m.messages[i].ReservationID == reservationID && m.messages[i].ReceiverID == receiverID {
			m.messages[i].IsRead = true
		}
	}
	return nil
}
