package repository

import (
	"powercare-backend/models"

	"github.com/google/uuid"
)

// Fixtures is the local dataset behind the mock gateway. It mirrors the seed
// data the mobile app ships for development, useful for maquettage before the
// real database is wired up.
type Fixtures struct {
	Users     []models.User
	Passwords map[string]string // email -> plaintext, local test data only
	Clients   []models.Client
	Agents    []models.Agent
	Services  []models.Service
}

// DefaultFixtures builds a fresh dataset with new identifiers on every call,
// so two repositories never share rows.
func DefaultFixtures() *Fixtures {
	uAgent1 := models.User{
		ID: uuid.New(), Name: "Awa Diop", Email: "awa.agent@powercare.test",
		Phone: "+221700000001", Role: models.RoleAgent, IsActive: true,
	}
	uAgent2 := models.User{
		ID: uuid.New(), Name: "Moussa Ndiaye", Email: "moussa.agent@powercare.test",
		Phone: "+221700000002", Role: models.RoleAgent, IsActive: true,
	}
	uClient1 := models.User{
		ID: uuid.New(), Name: "Fatou Sarr", Email: "fatou.client@powercare.test",
		Phone: "+221700000101", Role: models.RoleClient, IsActive: true,
	}
	uClient2 := models.User{
		ID: uuid.New(), Name: "Entreprise Kër Yaram", Email: "contact@keryaram.test",
		Phone: "+221700000201", Role: models.RoleClient, IsActive: true,
	}

	svcBaby := models.Service{
		ID: uuid.New(), Nom: "Garde d'enfant",
		Description: "Prise en charge des enfants à domicile: jeux, repas, accompagnement.",
		TypeAgent:   models.AgentBabysitter, PrixBase: 8000, Actif: true,
	}
	svcMenage := models.Service{
		ID: uuid.New(), Nom: "Ménage à domicile",
		Description: "Nettoyage des pièces principales (poussière, sols, sanitaires).",
		TypeAgent:   models.AgentMenager, PrixBase: 5000, Actif: true,
	}

	svcBaby.Taches = []models.Tache{
		{ID: uuid.New(), ServiceID: svcBaby.ID, Nom: "Jeux éducatifs",
			Description: "Activités ludiques et pédagogiques adaptées à l'âge.", Supplement: false},
		{ID: uuid.New(), ServiceID: svcBaby.ID, Nom: "Préparation repas enfant",
			Description: "Préparer et donner le repas (ingrédients fournis par les parents).", Supplement: true},
	}
	svcMenage.Taches = []models.Tache{
		{ID: uuid.New(), ServiceID: svcMenage.ID, Nom: "Dépoussiérage",
			Description: "Dépoussiérer les surfaces, meubles et appareils.", Supplement: false},
		{ID: uuid.New(), ServiceID: svcMenage.ID, Nom: "Nettoyage sols",
			Description: "Aspiration et lavage des sols.", Supplement: false},
		{ID: uuid.New(), ServiceID: svcMenage.ID, Nom: "Vitres",
			Description: "Nettoyage des vitres et encadrements.", Supplement: true},
	}

	svcBaby.Pricings = []models.Pricing{
		{ID: uuid.New(), ServiceID: svcBaby.ID, Amount: 8000, Currency: "XOF", Period: "journalier", IsActive: true},
		{ID: uuid.New(), ServiceID: svcBaby.ID, Amount: 45000, Currency: "XOF", Period: "hebdomadaire", IsActive: true},
	}
	svcMenage.Pricings = []models.Pricing{
		{ID: uuid.New(), ServiceID: svcMenage.ID, Amount: 5000, Currency: "XOF", Period: "journalier", IsActive: true},
		{ID: uuid.New(), ServiceID: svcMenage.ID, Amount: 28000, Currency: "XOF", Period: "hebdomadaire", IsActive: true},
	}

	agents := []models.Agent{
		{
			ID: uuid.New(), UserID: uAgent1.ID, Type: models.AgentBabysitter,
			Experience: 4, Disponibilite: models.TempsPartiel, TarifHoraire: 5000,
			Adresse: "Dakar, Point E", Statut: "disponible",
			Rating: 5, IsBadges: true, IsRecommended: true, ServiceID: svcBaby.ID,
		},
		{
			ID: uuid.New(), UserID: uAgent2.ID, Type: models.AgentMenager,
			Experience: 7, Disponibilite: models.TempsPlein, TarifHoraire: 3500,
			Adresse: "Dakar, Parcelles Assainies", Statut: "occupe",
			Rating: 3, IsBadges: true, IsRecommended: false, ServiceID: svcMenage.ID,
		},
	}

	clients := []models.Client{
		{ID: uuid.New(), UserID: uClient1.ID, Type: models.ClientPersonnel,
			Adresse: "Dakar, Liberté 6"},
		{ID: uuid.New(), UserID: uClient2.ID, Type: models.ClientEntreprise,
			Adresse: "Dakar, Plateau", EntrepriseNom: "Kër Yaram SA"},
	}

	return &Fixtures{
		Users: []models.User{uAgent1, uAgent2, uClient1, uClient2},
		Passwords: map[string]string{
			uAgent1.Email:  "password123",
			uAgent2.Email:  "password123",
			uClient1.Email: "password123",
			uClient2.Email: "password123",
		},
		Clients:  clients,
		Agents:   agents,
		Services: []models.Service{svcBaby, svcMenage},
	}
}
