package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"powercare-backend/models"
	"powercare-backend/repository"
	"powercare-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RegisterInput struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=8"`
	Phone         string `json:"phone" binding:"required"`
	Type          string `json:"type" binding:"omitempty,oneof=personnel entreprise"`
	Adresse       string `json:"adresse"`
	EntrepriseNom string `json:"entreprise_nom"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthController registers and authenticates client accounts.
type AuthController struct {
	Identity repository.IdentityRepository
}

func (a *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Numéro de téléphone invalide")
		return
	}

	clientType := models.ClientPersonnel
	if input.Type != "" {
		clientType = models.ClientType(input.Type)
	}
	if clientType == models.ClientEntreprise && input.EntrepriseNom == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Le nom de l'entreprise est requis")
		return
	}

	user := models.User{
		Name:     input.Name,
		Email:    strings.TrimSpace(strings.ToLower(input.Email)),
		Password: input.Password, // Hashed in BeforeCreate hook
		Phone:    input.Phone,
		Role:     models.RoleClient,
		IsActive: true,
	}
	client := models.Client{
		Type:          clientType,
		Adresse:       input.Adresse,
		EntrepriseNom: input.EntrepriseNom,
	}

	if err := a.Identity.CreateClient(c.Request.Context(), &user, &client); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			utils.RespondWithError(c, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Échec de la création du compte")
		return
	}

	token, err := utils.GenerateToken(user.ID.String(), client.ID.String())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Inscription réussie",
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"phone": user.Phone,
			"role":  user.Role,
		},
		"profile": client,
	})
}

func (a *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))
	user, err := a.Identity.Authenticate(c.Request.Context(), email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInactiveAccount):
			utils.RespondWithError(c, http.StatusForbidden, err.Error())
		case errors.Is(err, repository.ErrInvalidCredentials):
			utils.RespondWithError(c, http.StatusUnauthorized, err.Error())
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Erreur interne")
		}
		return
	}

	clientID := ""
	var profile *models.Client
	if user.Role == models.RoleClient {
		if p, err := a.Identity.FindClientByUser(c.Request.Context(), user.ID); err == nil {
			profile = p
			clientID = p.ID.String()
		}
	}

	token, err := utils.GenerateToken(user.ID.String(), clientID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	now := time.Now()
	if err := a.Identity.UpdateLastLogin(c.Request.Context(), user.ID, now); err != nil {
		utils.GetLogger().Warn("last login update failed", zap.Error(err))
	}
	user.LastLogin = &now

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"phone": user.Phone,
			"role":  user.Role,
		},
		"profile": profile,
	})
}

func (a *AuthController) Me(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusInternalServerError, "User ID not found in context")
		return
	}

	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	user, err := a.Identity.FindUserByID(c.Request.Context(), userUUID)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Utilisateur introuvable")
		return
	}

	var profile *models.Client
	if user.Role == models.RoleClient {
		profile, _ = a.Identity.FindClientByUser(c.Request.Context(), user.ID)
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"phone": user.Phone,
			"role":  user.Role,
		},
		"profile": profile,
	})
}
