package registry

import "github.com/roadassist/dispatch/internal/application/port/outbound"

// Input

type RegisterGarageInput struct {
	Name            string    `json:"garageName"`
	TINNumber       string    `json:"tinNumber"`
	Phone           string    `json:"phone"`
	Password        string    `json:"password"`
	Coordinates     []float64 `json:"coordinates"`
	Address         string    `json:"address"`
	CertificateName string    `json:"certificateName"`
	Certificate     []byte    `json:"certificate"`
}

type RegisterMechanicInput struct {
	GarageID       string `json:"garageId"`
	FullName       string `json:"fullName"`
	PhoneNumber    string `json:"phoneNumber"`
	Specialisation string `json:"specialisation"`
}

type GarageLoginInput struct {
	TINNumber string `json:"tinNumber"`
	Password  string `json:"password"`
}

type RegisterUserInput struct {
	Names       string `json:"names"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
	Role        string `json:"role,omitempty"`
}

type UserLoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateMechanicInput struct {
	MechanicID     string `json:"-"`
	FullName       string `json:"fullName"`
	PhoneNumber    string `json:"phoneNumber"`
	Specialisation string `json:"specialisation"`

	Caller outbound.Caller `json:"-"`
}

type DeleteMechanicInput struct {
	MechanicID string
	Caller     outbound.Caller
}

// Output

type RegisterGarageOutput struct {
	ID             string `json:"id"`
	Name           string `json:"garageName"`
	TINNumber      string `json:"tinNumber"`
	ApprovalStatus string `json:"approvalStatus"`
	Token          string `json:"token"`
}

type RegisterMechanicOutput struct {
	ID       string `json:"id"`
	GarageID string `json:"garageId"`
	FullName string `json:"fullName"`
}

type GarageLoginOutput struct {
	ID    string `json:"id"`
	Name  string `json:"garageName"`
	Token string `json:"token"`
}

type UserOutput struct {
	ID          string `json:"id"`
	Names       string `json:"names"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
	Token       string `json:"token"`
}

type MechanicOutput struct {
	ID             string `json:"id"`
	GarageID       string `json:"garageId"`
	FullName       string `json:"fullName"`
	PhoneNumber    string `json:"phoneNumber"`
	Specialisation string `json:"specialisation"`
}
