package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roadassist/dispatch/internal/application/port/outbound"
	"github.com/roadassist/dispatch/internal/domain/entity"
	"github.com/roadassist/dispatch/pkg/logger"
)

type fakeGarageRepo struct {
	garages map[string]*entity.Garage
	byTIN   map[string]*entity.Garage
}

func newFakeGarageRepo(garages ...*entity.Garage) *fakeGarageRepo {
	repo := &fakeGarageRepo{
		garages: make(map[string]*entity.Garage),
		byTIN:   make(map[string]*entity.Garage),
	}
	for _, g := range garages {
		repo.garages[g.ID()] = g
		repo.byTIN[g.TINNumber()] = g
	}
	return repo
}

func (r *fakeGarageRepo) Save(ctx context.Context, garage *entity.Garage) error {
	r.garages[garage.ID()] = garage
	r.byTIN[garage.TINNumber()] = garage
	return nil
}

func (r *fakeGarageRepo) FindByID(ctx context.Context, id string) (*entity.Garage, error) {
	garage, ok := r.garages[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return garage, nil
}

func (r *fakeGarageRepo) FindByTIN(ctx context.Context, tin string) (*entity.Garage, error) {
	garage, ok := r.byTIN[tin]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return garage, nil
}

func (r *fakeGarageRepo) FindByIDs(ctx context.Context, ids []string) ([]*entity.Garage, error) {
	return nil, nil
}

func (r *fakeGarageRepo) FindApproved(ctx context.Context) ([]*entity.Garage, error) {
	return nil, nil
}

func (r *fakeGarageRepo) UpdateApprovalStatus(ctx context.Context, id string, status entity.ApprovalStatus) error {
	return nil
}

func (r *fakeGarageRepo) Counts(ctx context.Context) (outbound.GarageCounts, error) {
	return outbound.GarageCounts{}, nil
}

type fakeMechanicRepo struct {
	saved []*entity.Mechanic
	byID  map[string]*entity.Mechanic
}

func newFakeMechanicRepo(mechanics ...*entity.Mechanic) *fakeMechanicRepo {
	repo := &fakeMechanicRepo{byID: make(map[string]*entity.Mechanic)}
	for _, m := range mechanics {
		repo.byID[m.ID()] = m
	}
	return repo
}

func (r *fakeMechanicRepo) Save(ctx context.Context, mechanic *entity.Mechanic) error {
	if r.byID == nil {
		r.byID = make(map[string]*entity.Mechanic)
	}
	r.saved = append(r.saved, mechanic)
	r.byID[mechanic.ID()] = mechanic
	return nil
}

func (r *fakeMechanicRepo) FindByID(ctx context.Context, id string) (*entity.Mechanic, error) {
	mechanic, ok := r.byID[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return mechanic, nil
}

func (r *fakeMechanicRepo) FindByGarage(ctx context.Context, garageID string) ([]*entity.Mechanic, error) {
	return nil, nil
}

func (r *fakeMechanicRepo) Update(ctx context.Context, mechanic *entity.Mechanic) error {
	if _, ok := r.byID[mechanic.ID()]; !ok {
		return entity.ErrNotFound
	}
	r.byID[mechanic.ID()] = mechanic
	return nil
}

func (r *fakeMechanicRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return entity.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeCertStore struct {
	uploads int
}

func (s *fakeCertStore) Upload(ctx context.Context, filename string, content []byte) (string, error) {
	s.uploads++
	return "https://certs.local/" + filename, nil
}

// plainHasher keeps assertions readable; real wiring uses bcrypt.
type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }
func (plainHasher) Verify(plain, hash string) bool    { return "hashed:"+plain == hash }

type fakeTokens struct{}

func (fakeTokens) Issue(subject, role string) (string, error) {
	return "token:" + subject + ":" + role, nil
}

func garageWith(id, tin string, status entity.ApprovalStatus) *entity.Garage {
	return entity.RestoreGarage(id, "Garage "+id, tin, "0788", "hashed:secret", "",
		entity.RestoreLocation(30.01, -1.95, "Kigali"), status)
}

func registerInput() RegisterGarageInput {
	return RegisterGarageInput{
		Name:            "Kigali Motors",
		TINNumber:       "TIN-001",
		Phone:           "+250788000111",
		Password:        "secret",
		Coordinates:     []float64{30.01, -1.95},
		Address:         "KN 5 Rd",
		CertificateName: "cert.pdf",
		Certificate:     []byte("%PDF-1.4"),
	}
}

func TestRegisterGarage(t *testing.T) {
	//Arrange
	repo := newFakeGarageRepo()
	certs := &fakeCertStore{}
	uc := NewRegisterGarageUseCase(repo, certs, plainHasher{}, fakeTokens{}, logger.NewNop())

	//Act
	output, err := uc.Execute(context.Background(), registerInput())

	//Assert
	assert.Nil(t, err)
	assert.NotEmpty(t, output.ID)
	assert.Equal(t, string(entity.ApprovalPending), output.ApprovalStatus)
	assert.Equal(t, "token:"+output.ID+":"+outbound.RoleGarage, output.Token)
	assert.Equal(t, 1, certs.uploads)

	saved, err := repo.FindByTIN(context.Background(), "TIN-001")
	assert.Nil(t, err)
	assert.False(t, saved.IsApproved())
	assert.Equal(t, "hashed:secret", saved.PasswordHash())
}

func TestRegisterGarage_CertificateRequired(t *testing.T) {
	uc := NewRegisterGarageUseCase(newFakeGarageRepo(), &fakeCertStore{}, plainHasher{}, fakeTokens{}, logger.NewNop())

	input := registerInput()
	input.Certificate = nil

	_, err := uc.Execute(context.Background(), input)

	assert.ErrorIs(t, err, ErrCertificateRequired)
}

func TestRegisterGarage_DuplicateTIN(t *testing.T) {
	repo := newFakeGarageRepo(garageWith("g-1", "TIN-001", entity.ApprovalPending))
	uc := NewRegisterGarageUseCase(repo, &fakeCertStore{}, plainHasher{}, fakeTokens{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), registerInput())

	assert.ErrorIs(t, err, entity.ErrDuplicateIdentity)
}

func TestRegisterGarage_InvalidCoordinates(t *testing.T) {
	uc := NewRegisterGarageUseCase(newFakeGarageRepo(), &fakeCertStore{}, plainHasher{}, fakeTokens{}, logger.NewNop())

	input := registerInput()
	input.Coordinates = []float64{200.0, 0.0}

	_, err := uc.Execute(context.Background(), input)

	assert.ErrorIs(t, err, entity.ErrInvalidLocation)
}

func TestGarageLogin(t *testing.T) {
	repo := newFakeGarageRepo(garageWith("g-1", "TIN-001", entity.ApprovalApproved))
	uc := NewGarageLoginUseCase(repo, plainHasher{}, fakeTokens{})

	output, err := uc.Execute(context.Background(), GarageLoginInput{TINNumber: "TIN-001", Password: "secret"})

	assert.Nil(t, err)
	assert.Equal(t, "g-1", output.ID)
	assert.Equal(t, "token:g-1:"+outbound.RoleGarage, output.Token)
}

func TestGarageLogin_Errors(t *testing.T) {
	tests := []struct {
		name        string
		garage      *entity.Garage
		tin         string
		password    string
		expectedErr error
	}{
		{"Should return not found for unknown TIN", nil, "TIN-404", "secret", entity.ErrNotFound},
		{"Should return invalid credentials for wrong password",
			garageWith("g-1", "TIN-001", entity.ApprovalApproved), "TIN-001", "wrong", entity.ErrInvalidCredentials},
		{"Should refuse an unapproved garage",
			garageWith("g-1", "TIN-001", entity.ApprovalPending), "TIN-001", "secret", entity.ErrGarageNotApproved},
		{"Should refuse a rejected garage",
			garageWith("g-1", "TIN-001", entity.ApprovalRejected), "TIN-001", "secret", entity.ErrGarageNotApproved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeGarageRepo()
			if tt.garage != nil {
				repo = newFakeGarageRepo(tt.garage)
			}
			uc := NewGarageLoginUseCase(repo, plainHasher{}, fakeTokens{})

			_, err := uc.Execute(context.Background(), GarageLoginInput{TINNumber: tt.tin, Password: tt.password})

			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestRegisterMechanic(t *testing.T) {
	repo := newFakeGarageRepo(garageWith("g-1", "TIN-001", entity.ApprovalApproved))
	mechanics := &fakeMechanicRepo{}
	uc := NewRegisterMechanicUseCase(repo, mechanics, logger.NewNop())

	output, err := uc.Execute(context.Background(), RegisterMechanicInput{
		GarageID:       "g-1",
		FullName:       "Jean Bosco",
		PhoneNumber:    "+250788000333",
		Specialisation: "electrics",
	})

	assert.Nil(t, err)
	assert.Equal(t, "g-1", output.GarageID)
	assert.Len(t, mechanics.saved, 1)
}

func TestRegisterMechanic_GarageMustBeApproved(t *testing.T) {
	repo := newFakeGarageRepo(garageWith("g-1", "TIN-001", entity.ApprovalPending))
	uc := NewRegisterMechanicUseCase(repo, &fakeMechanicRepo{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), RegisterMechanicInput{
		GarageID:    "g-1",
		FullName:    "Jean Bosco",
		PhoneNumber: "+250788000333",
	})

	assert.ErrorIs(t, err, entity.ErrGarageNotApproved)
}

type fakeUserRepo struct {
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{
		byID:    make(map[string]*entity.User),
		byEmail: make(map[string]*entity.User),
	}
	for _, u := range users {
		repo.byID[u.ID()] = u
		repo.byEmail[u.Email()] = u
	}
	return repo
}

func (r *fakeUserRepo) Save(ctx context.Context, user *entity.User) error {
	r.byID[user.ID()] = user
	r.byEmail[user.Email()] = user
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return user, nil
}

func userWith(id, email, role string) *entity.User {
	return entity.RestoreUser(id, "Alice Uwase", email, "0788", "hashed:secret", role)
}

func TestRegisterUser(t *testing.T) {
	//Arrange
	repo := newFakeUserRepo()
	uc := NewRegisterUserUseCase(repo, plainHasher{}, fakeTokens{}, logger.NewNop())

	//Act
	output, err := uc.Execute(context.Background(), RegisterUserInput{
		Names:       "Alice Uwase",
		Email:       "alice@example.com",
		PhoneNumber: "+250788000444",
		Password:    "secret",
	})

	//Assert
	assert.Nil(t, err)
	assert.NotEmpty(t, output.ID)
	assert.Equal(t, entity.UserRoleUser, output.Role)
	assert.Equal(t, "token:"+output.ID+":"+entity.UserRoleUser, output.Token)

	saved, err := repo.FindByEmail(context.Background(), "alice@example.com")
	assert.Nil(t, err)
	assert.Equal(t, "hashed:secret", saved.PasswordHash())
}

func TestRegisterUser_AdminRoleIssuesAdminToken(t *testing.T) {
	uc := NewRegisterUserUseCase(newFakeUserRepo(), plainHasher{}, fakeTokens{}, logger.NewNop())

	output, err := uc.Execute(context.Background(), RegisterUserInput{
		Names:    "Ops Admin",
		Email:    "ops@example.com",
		Password: "secret",
		Role:     entity.UserRoleAdmin,
	})

	assert.Nil(t, err)
	assert.Equal(t, entity.UserRoleAdmin, output.Role)
	assert.Equal(t, "token:"+output.ID+":"+entity.UserRoleAdmin, output.Token)
}

func TestRegisterUser_Errors(t *testing.T) {
	tests := []struct {
		name        string
		input       RegisterUserInput
		expectedErr error
	}{
		{"Should require a password",
			RegisterUserInput{Names: "Alice", Email: "alice@example.com"}, entity.ErrPasswordIsRequired},
		{"Should refuse a duplicate email",
			RegisterUserInput{Names: "Alice", Email: "taken@example.com", Password: "secret"}, entity.ErrDuplicateIdentity},
		{"Should refuse an unknown role",
			RegisterUserInput{Names: "Alice", Email: "alice@example.com", Password: "secret", Role: "superuser"}, entity.ErrInvalidUserRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeUserRepo(userWith("u-1", "taken@example.com", entity.UserRoleUser))
			uc := NewRegisterUserUseCase(repo, plainHasher{}, fakeTokens{}, logger.NewNop())

			_, err := uc.Execute(context.Background(), tt.input)

			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestUserLogin(t *testing.T) {
	repo := newFakeUserRepo(userWith("u-1", "alice@example.com", entity.UserRoleUser))
	uc := NewUserLoginUseCase(repo, plainHasher{}, fakeTokens{})

	output, err := uc.Execute(context.Background(), UserLoginInput{Email: "alice@example.com", Password: "secret"})

	assert.Nil(t, err)
	assert.Equal(t, "u-1", output.ID)
	assert.Equal(t, "token:u-1:"+entity.UserRoleUser, output.Token)
}

func TestUserLogin_Errors(t *testing.T) {
	repo := newFakeUserRepo(userWith("u-1", "alice@example.com", entity.UserRoleUser))
	uc := NewUserLoginUseCase(repo, plainHasher{}, fakeTokens{})

	t.Run("Should return not found for unknown email", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), UserLoginInput{Email: "nobody@example.com", Password: "secret"})
		assert.ErrorIs(t, err, entity.ErrNotFound)
	})

	t.Run("Should return invalid credentials for wrong password", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), UserLoginInput{Email: "alice@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
	})
}

func mechanicOwnedBy(garageID string) *entity.Mechanic {
	return entity.RestoreMechanic("m-1", garageID, "Jean Bosco", "+250788000333", "electrics")
}

func TestUpdateMechanic(t *testing.T) {
	//Arrange
	mechanics := newFakeMechanicRepo(mechanicOwnedBy("g-1"))
	uc := NewUpdateMechanicUseCase(mechanics, logger.NewNop())

	//Act
	output, err := uc.Execute(context.Background(), UpdateMechanicInput{
		MechanicID:     "m-1",
		FullName:       "Jean Bosco",
		PhoneNumber:    "+250788000555",
		Specialisation: "bodywork",
		Caller:         outbound.Caller{Subject: "g-1", Role: outbound.RoleGarage},
	})

	//Assert
	assert.Nil(t, err)
	assert.Equal(t, "+250788000555", output.PhoneNumber)
	assert.Equal(t, "bodywork", output.Specialisation)

	stored, err := mechanics.FindByID(context.Background(), "m-1")
	assert.Nil(t, err)
	assert.Equal(t, "bodywork", stored.Specialisation())
}

func TestUpdateMechanic_ByAnotherGarageRefused(t *testing.T) {
	mechanics := newFakeMechanicRepo(mechanicOwnedBy("g-owner"))
	uc := NewUpdateMechanicUseCase(mechanics, logger.NewNop())

	_, err := uc.Execute(context.Background(), UpdateMechanicInput{
		MechanicID:  "m-1",
		FullName:    "Jean Bosco",
		PhoneNumber: "+250788000555",
		Caller:      outbound.Caller{Subject: "g-other", Role: outbound.RoleGarage},
	})

	assert.ErrorIs(t, err, entity.ErrCapabilityDenied)

	stored, _ := mechanics.FindByID(context.Background(), "m-1")
	assert.Equal(t, "+250788000333", stored.PhoneNumber())
}

func TestUpdateMechanic_NameRequired(t *testing.T) {
	mechanics := newFakeMechanicRepo(mechanicOwnedBy("g-1"))
	uc := NewUpdateMechanicUseCase(mechanics, logger.NewNop())

	_, err := uc.Execute(context.Background(), UpdateMechanicInput{
		MechanicID:  "m-1",
		PhoneNumber: "+250788000555",
		Caller:      outbound.Caller{Subject: "g-1", Role: outbound.RoleGarage},
	})

	assert.ErrorIs(t, err, entity.ErrNameIsRequired)
}

func TestDeleteMechanic(t *testing.T) {
	mechanics := newFakeMechanicRepo(mechanicOwnedBy("g-1"))
	uc := NewDeleteMechanicUseCase(mechanics, logger.NewNop())

	err := uc.Execute(context.Background(), DeleteMechanicInput{
		MechanicID: "m-1",
		Caller:     outbound.Caller{Subject: "g-1", Role: outbound.RoleGarage},
	})

	assert.Nil(t, err)
	_, err = mechanics.FindByID(context.Background(), "m-1")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestDeleteMechanic_ByAnotherGarageRefused(t *testing.T) {
	mechanics := newFakeMechanicRepo(mechanicOwnedBy("g-owner"))
	uc := NewDeleteMechanicUseCase(mechanics, logger.NewNop())

	err := uc.Execute(context.Background(), DeleteMechanicInput{
		MechanicID: "m-1",
		Caller:     outbound.Caller{Subject: "g-other", Role: outbound.RoleGarage},
	})

	assert.ErrorIs(t, err, entity.ErrCapabilityDenied)
	_, err = mechanics.FindByID(context.Background(), "m-1")
	assert.Nil(t, err)
}

func TestDeleteMechanic_ByAdminAllowed(t *testing.T) {
	mechanics := newFakeMechanicRepo(mechanicOwnedBy("g-owner"))
	uc := NewDeleteMechanicUseCase(mechanics, logger.NewNop())

	err := uc.Execute(context.Background(), DeleteMechanicInput{
		MechanicID: "m-1",
		Caller:     outbound.Caller{Subject: "admin-1", Role: outbound.RoleAdmin},
	})

	assert.Nil(t, err)
}
