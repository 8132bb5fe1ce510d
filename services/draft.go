package services

import (
	"powercare-backend/models"

	"github.com/google/uuid"
)

// FormReservation is the submission payload built by the wizard. Field names
// follow the mobile wire format.
type FormReservation struct {
	ClientID  uuid.UUID `json:"client_id"`
	ServiceID uuid.UUID `json:"service_id"`
	AgentID   uuid.UUID `json:"agent_id"`

	Frequence       string `json:"frequence"`
	DateReservation string `json:"date_reservation"` // ISO 8601
	Duree           int    `json:"duree"`

	TransportInclus bool   `json:"transport_inclus"`
	Urgence         bool   `json:"urgence"`
	Adresse         string `json:"adresse"`
	Phone           string `json:"phone"`

	NombrePersonnes         int    `json:"nombre_personnes,omitempty"`
	TachesSpecifiques       string `json:"taches_specifiques,omitempty"`
	TailleLogement          string `json:"taille_logement,omitempty"`
	ConditionsParticulieres string `json:"conditions_particulieres,omitempty"`

	RequestToken string `json:"request_token,omitempty"`
}

// Draft collects a reservation request across the two wizard steps and
// validates required fields against the selected service's category.
// Counters are clamped at 1: decrementing from the floor is a no-op, never
// an error.
type Draft struct {
	clientID  uuid.UUID
	serviceID uuid.UUID
	agentID   uuid.UUID
	category  models.AgentType

	step      int
	frequence models.Frequency
	date      string
	duree     int
	personnes int

	transportInclus bool
	urgence         bool

	adresse        string
	phone          string
	tailleLogement string
	taches         string
	conditions     string

	token string
}

// NewDraft starts a draft for one (client, service, agent) triple. The
// request token is minted here so a double-tapped submit reuses it.
func NewDraft(clientID uuid.UUID, service *models.Service, agent *models.Agent) *Draft {
	return &Draft{
		clientID:  clientID,
		serviceID: service.ID,
		agentID:   agent.ID,
		category:  service.TypeAgent,
		step:      1,
		frequence: models.FrequencyHour,
		duree:     1,
		personnes: 1,
		token:     uuid.NewString(),
	}
}

func (d *Draft) Step() int { return d.step }

// SetFrequency accepts only members of the closed set.
func (d *Draft) SetFrequency(s string) error {
	f, err := models.ParseFrequency(s)
	if err != nil {
		return err
	}
	d.frequence = f
	return nil
}

// SetDate stores the picker's value. An empty value means the picker was
// cancelled and leaves the current date unchanged.
func (d *Draft) SetDate(iso string) {
	if iso == "" {
		return
	}
	d.date = iso
}

func (d *Draft) IncrementDuree() { d.duree++ }

func (d *Draft) DecrementDuree() {
	if d.duree > 1 {
		d.duree--
	}
}

func (d *Draft) Duree() int { return d.duree }

// IncrementPersonnes and DecrementPersonnes adjust the number of people to
// mind; the counter only matters for the babysitter category.
func (d *Draft) IncrementPersonnes() { d.personnes++ }

func (d *Draft) DecrementPersonnes() {
	if d.personnes > 1 {
		d.personnes--
	}
}

func (d *Draft) Personnes() int { return d.personnes }

func (d *Draft) ToggleTransport() { d.transportInclus = !d.transportInclus }
func (d *Draft) ToggleUrgence()   { d.urgence = !d.urgence }

func (d *Draft) SetAdresse(s string)        { d.adresse = s }
func (d *Draft) SetPhone(s string)          { d.phone = s }
func (d *Draft) SetTailleLogement(s string) { d.tailleLogement = s }
func (d *Draft) SetTaches(s string)         { d.taches = s }
func (d *Draft) SetConditions(s string)     { d.conditions = s }

// Next advances to step 2. Date and address must both be set; the failure is
// reported as the single all-fields-required condition.
func (d *Draft) Next() error {
	if d.date == "" || d.adresse == "" {
		return ErrAllFieldsRequired
	}
	d.step = 2
	return nil
}

// Back returns to step 1 without discarding anything.
func (d *Draft) Back() { d.step = 1 }

// Form runs the step-2 gate and emits the submission payload. Housing size
// is required for the cleaner category and never requested for babysitting.
func (d *Draft) Form() (FormReservation, error) {
	if d.category == models.AgentMenager && d.tailleLogement == "" {
		return FormReservation{}, ErrAllFieldsRequired
	}
	if d.phone == "" || d.date == "" || d.adresse == "" {
		return FormReservation{}, ErrAllFieldsRequired
	}

	form := FormReservation{
		ClientID:                d.clientID,
		ServiceID:               d.serviceID,
		AgentID:                 d.agentID,
		Frequence:               string(d.frequence),
		DateReservation:         d.date,
		Duree:                   d.duree,
		TransportInclus:         d.transportInclus,
		Urgence:                 d.urgence,
		Adresse:                 d.adresse,
		Phone:                   d.phone,
		TachesSpecifiques:       d.taches,
		ConditionsParticulieres: d.conditions,
		RequestToken:            d.token,
	}
	if d.category == models.AgentBabysitter {
		form.NombrePersonnes = d.personnes
	}
	if d.category == models.AgentMenager {
		form.TailleLogement = d.tailleLogement
	}
	return form, nil
}
