package repository

import (
	"context"
	"errors"
	"time"

	"powercare-backend/models"
	"powercare-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRepository implements every gateway interface over Postgres.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (g *GormRepository) Create(ctx context.Context, r *models.Reservation) error {
	return g.db.WithContext(ctx).Create(r).Error
}

func (g *GormRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	var r models.Reservation
	err := g.db.WithContext(ctx).
		Preload("Client.User").
		Preload("Service").
		Preload("Agent.User").
		Where("id = ?", id).
		First(&r).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &r, nil
}

func (g *GormRepository) FindByToken(ctx context.Context, token string) (*models.Reservation, error) {
	var r models.Reservation
	err := g.db.WithContext(ctx).Where("request_token = ?", token).First(&r).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &r, nil
}

func (g *GormRepository) FindByClient(ctx context.Context, clientID uuid.UUID) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := g.db.WithContext(ctx).
		Preload("Service").
		Preload("Agent.User").
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&reservations).Error
	return reservations, err
}

// UpdateStatus flips the status only when the row is still in the expected
// state; zero rows affected means another surface got there first.
func (g *GormRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.Status) error {
	result := g.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("id = ? AND statut = ?", id, from).
		Update("statut", to)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}

// Delete purges the row outright. A soft delete would keep the request token
// under its unique index and block a later submission reusing it.
func (g *GormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := g.db.WithContext(ctx).Unscoped().Where("id = ?", id).Delete(&models.Reservation{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (g *GormRepository) ListServices(ctx context.Context, typeAgent models.AgentType) ([]models.Service, error) {
	var services []models.Service
	query := g.db.WithContext(ctx).
		Preload("Taches").
		Preload("Pricings").
		Where("actif = ?", true)
	if typeAgent != "" {
		query = query.Where("type_agent = ?", typeAgent)
	}
	err := query.Find(&services).Error
	return services, err
}

func (g *GormRepository) FindServiceByID(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	var service models.Service
	err := g.db.WithContext(ctx).
		Preload("Taches").
		Preload("Pricings").
		Where("id = ?", id).
		First(&service).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &service, nil
}

func (g *GormRepository) FindAgentsByService(ctx context.Context, serviceID uuid.UUID) ([]models.Agent, error) {
	var agents []models.Agent
	err := g.db.WithContext(ctx).
		Preload("User").
		Preload("Service").
		Where("service_id = ?", serviceID).
		Order("is_recommended DESC, rating DESC").
		Find(&agents).Error
	return agents, err
}

func (g *GormRepository) FindAgentByID(ctx context.Context, id uuid.UUID) (*models.Agent, error) {
	var agent models.Agent
	err := g.db.WithContext(ctx).
		Preload("User").
		Preload("Service.Taches").
		Preload("Service.Pricings").
		Where("id = ?", id).
		First(&agent).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &agent, nil
}

func (g *GormRepository) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	err := g.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInactiveAccount
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (g *GormRepository) CreateClient(ctx context.Context, user *models.User, client *models.Client) error {
	var existing models.User
	err := g.db.WithContext(ctx).Where("email = ?", user.Email).First(&existing).Error
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		client.UserID = user.ID
		return tx.Create(client).Error
	})
}

func (g *GormRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (g *GormRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	return g.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("last_login", at).Error
}

func (g *GormRepository) FindClientByUser(ctx context.Context, userID uuid.UUID) (*models.Client, error) {
	var client models.Client
	err := g.db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}

func (g *GormRepository) ListByReservation(ctx context.Context, reservationID uuid.UUID) ([]models.Message, error) {
	var messages []models.Message
	err := g.db.WithContext(ctx).
		Preload("Sender").
		Where("reservation_id = ?", reservationID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

func (g *GormRepository) CreateMessage(ctx context.Context, m *models.Message) error {
	return g.db.WithContext(ctx).Create(m).Error
}

func (g *GormRepository) MarkRead(ctx context.Context, reservationID, receiverID uuid.UUID) error {
	return g.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("reservation_id = ? AND receiver_id = ? AND is_read = ?", reservationID, receiverID, false).
		Update("is_read", true).Error
}
