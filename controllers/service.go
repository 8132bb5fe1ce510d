// controllers/service.go
package controllers

import (
	"errors"
	"net/http"

	"powercare-backend/models"
	"powercare-backend/repository"
	"powercare-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogController serves the read-only service and agent data the booking
// screens browse.
type CatalogController struct {
	Catalog repository.CatalogRepository
}

// GetServices lists active services, optionally filtered by category
func (ct *CatalogController) GetServices(c *gin.Context) {
	typeAgent := models.AgentType(c.Query("type_agent"))

	services, err := ct.Catalog.ListServices(c.Request.Context(), typeAgent)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Échec du chargement des services")
		return
	}

	c.JSON(http.StatusOK, services)
}

// GetService retrieves a specific service by ID
func (ct *CatalogController) GetService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	service, err := ct.Catalog.FindServiceByID(c.Request.Context(), serviceUUID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service introuvable.")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, service)
}

// GetServiceAgents lists the agents offering a service, recommended first
func (ct *CatalogController) GetServiceAgents(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	agents, err := ct.Catalog.FindAgentsByService(c.Request.Context(), serviceUUID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Échec du chargement des agents")
		return
	}

	c.JSON(http.StatusOK, agents)
}

// GetAgent retrieves a specific agent by ID
func (ct *CatalogController) GetAgent(c *gin.Context) {
	agentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid agent ID format")
		return
	}

	agent, err := ct.Catalog.FindAgentByID(c.Request.Context(), agentUUID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Agent introuvable.")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, agent)
}
