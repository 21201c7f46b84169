package registry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/roadassist/dispatch/internal/application/port/outbound"
	"github.com/roadassist/dispatch/internal/domain/entity"
	"github.com/roadassist/dispatch/pkg/logger"
)

var ErrCertificateRequired = errors.New("certificate is required")

const certificateUploadTimeout = 10 * time.Second

type RegisterGarageUseCaseImpl struct {
	Garages      outbound.GarageRepository
	Certificates outbound.CertificateStore
	Hasher       outbound.PasswordHasher
	Tokens       outbound.TokenIssuer
	Logger       logger.Logger
}

func NewRegisterGarageUseCase(
	garages outbound.GarageRepository,
	certificates outbound.CertificateStore,
	hasher outbound.PasswordHasher,
	tokens outbound.TokenIssuer,
	log logger.Logger,
) *RegisterGarageUseCaseImpl {
	return &RegisterGarageUseCaseImpl{
		Garages:      garages,
		Certificates: certificates,
		Hasher:       hasher,
		Tokens:       tokens,
		Logger:       log,
	}
}

func (uc *RegisterGarageUseCaseImpl) Execute(ctx context.Context, input RegisterGarageInput) (RegisterGarageOutput, error) {
	if len(input.Certificate) == 0 {
		return RegisterGarageOutput{}, ErrCertificateRequired
	}

	location, err := entity.NewLocation(input.Coordinates, input.Address)
	if err != nil {
		return RegisterGarageOutput{}, err
	}

	existing, err := uc.Garages.FindByTIN(ctx, input.TINNumber)
	if err != nil && !errors.Is(err, entity.ErrNotFound) {
		return RegisterGarageOutput{}, fmt.Errorf("tin lookup: %w", err)
	}
	if existing != nil {
		return RegisterGarageOutput{}, entity.ErrDuplicateIdentity
	}

	uploadCtx, cancel := context.WithTimeout(ctx, certificateUploadTimeout)
	defer cancel()
	certificateURL, err := uc.Certificates.Upload(uploadCtx, input.CertificateName, input.Certificate)
	if err != nil {
		return RegisterGarageOutput{}, fmt.Errorf("certificate upload: %w", err)
	}

	hash, err := uc.Hasher.Hash(input.Password)
	if err != nil {
		return RegisterGarageOutput{}, fmt.Errorf("hash password: %w", err)
	}

	garage, err := entity.NewGarage(
		uuid.New().String(),
		input.Name,
		input.TINNumber,
		input.Phone,
		hash,
		certificateURL,
		location,
	)
	if err != nil {
		return RegisterGarageOutput{}, err
	}

	if err := uc.Garages.Save(ctx, garage); err != nil {
		return RegisterGarageOutput{}, fmt.Errorf("save garage: %w", err)
	}

	token, err := uc.Tokens.Issue(garage.ID(), outbound.RoleGarage)
	if err != nil {
		return RegisterGarageOutput{}, fmt.Errorf("issue token: %w", err)
	}

	uc.Logger.Info(ctx, "garage registered",
		logger.String("garage_id", garage.ID()),
		logger.String("tin", garage.TINNumber()),
	)

	return RegisterGarageOutput{
		ID:             garage.ID(),
		Name:           garage.Name(),
		TINNumber:      garage.TINNumber(),
		ApprovalStatus: string(garage.ApprovalStatus()),
		Token:          token,
	}, nil
}
