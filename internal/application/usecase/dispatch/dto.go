package dispatch

import (
	"time"

	"github.com/roadassist/dispatch/internal/application/port/outbound"
	"github.com/roadassist/dispatch/internal/domain/entity"
	"github.com/roadassist/dispatch/internal/domain/geo"
)

// Input

type LocationInput struct {
	Coordinates []float64 `json:"coordinates"`
	Address     string    `json:"address,omitempty"`
}

type SubmitInput struct {
	CarIssue string        `json:"carIssue"`
	CarModel string        `json:"carModel"`
	Contact  string        `json:"contact"`
	Location LocationInput `json:"location"`

	// Requester is filled from the session when an authenticated user
	// submits, never from the request body.
	Requester string `json:"-"`
}

type AssignGarageInput struct {
	RequestID string `json:"requestId"`
	GarageID  string `json:"garageId"`
}

type AssignMechanicInput struct {
	RequestID  string          `json:"requestId"`
	MechanicID string          `json:"mechanicId"`
	Caller     outbound.Caller `json:"-"`
}

type CompleteInput struct {
	RequestID string
	Caller    outbound.Caller
}

type RejectInput struct {
	RequestID string
	Caller    outbound.Caller
}

// Output

type LocationOutput struct {
	Coordinates []float64 `json:"coordinates"`
	Address     string    `json:"address"`
}

type RequestOutput struct {
	ID               string         `json:"id"`
	CarIssue         string         `json:"carIssue"`
	CarModel         string         `json:"carModel"`
	Contact          string         `json:"contact"`
	Location         LocationOutput `json:"location"`
	Status           string         `json:"status"`
	AssignedGarage   string         `json:"assignedGarage,omitempty"`
	AssignedMechanic string         `json:"assignedMechanic,omitempty"`
	AssignedAt       *time.Time     `json:"assignedAt,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
}

type GarageOutput struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Phone       string         `json:"phone"`
	Location    LocationOutput `json:"location"`
}

type RankedGarageOutput struct {
	Garage     GarageOutput `json:"garage"`
	DistanceKm float64      `json:"distanceKm"`
}

type SubmitOutput struct {
	Request        RequestOutput        `json:"request"`
	NearestGarages []RankedGarageOutput `json:"nearestGarages"`
}

func requestOutput(r *entity.ServiceRequest) RequestOutput {
	return RequestOutput{
		ID:       r.ID(),
		CarIssue: r.CarIssue(),
		CarModel: r.CarModel(),
		Contact:  r.Contact(),
		Location: LocationOutput{
			Coordinates: r.Location().Coordinates(),
			Address:     r.Location().Address(),
		},
		Status:           r.StatusName(),
		AssignedGarage:   r.AssignedGarage(),
		AssignedMechanic: r.AssignedMechanic(),
		AssignedAt:       r.AssignedAt(),
		CreatedAt:        r.CreatedAt(),
	}
}

func rankedOutput(ranked []geo.RankedGarage) []RankedGarageOutput {
	out := make([]RankedGarageOutput, len(ranked))
	for i, rg := range ranked {
		out[i] = RankedGarageOutput{
			Garage: GarageOutput{
				ID:    rg.Garage.ID(),
				Name:  rg.Garage.Name(),
				Phone: rg.Garage.Phone(),
				Location: LocationOutput{
					Coordinates: rg.Garage.Location().Coordinates(),
					Address:     rg.Garage.Location().Address(),
				},
			},
			DistanceKm: rg.DistanceKm,
		}
	}
	return out
}
