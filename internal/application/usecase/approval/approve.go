package approval

import (
	"context"
	"fmt"

	"github.com/roadassist/dispatch/internal/application/port/outbound"
	"github.com/roadassist/dispatch/pkg/logger"
)

type ApproveGarageUseCaseImpl struct {
	Garages outbound.GarageRepository
	Index   outbound.GarageIndex
	Logger  logger.Logger
}

func NewApproveGarageUseCase(garages outbound.GarageRepository, index outbound.GarageIndex, log logger.Logger) *ApproveGarageUseCaseImpl {
	return &ApproveGarageUseCaseImpl{Garages: garages, Index: index, Logger: log}
}

func (uc *ApproveGarageUseCaseImpl) Execute(ctx context.Context, garageID string) error {
	garage, err := uc.Garages.FindByID(ctx, garageID)
	if err != nil {
		return fmt.Errorf("load garage: %w", err)
	}

	if err := garage.Approve(); err != nil {
		return err
	}

	// The durable status write happens before the index add so dispatch
	// never ranks a garage the store does not yet show as approved.
	if err := uc.Garages.UpdateApprovalStatus(ctx, garage.ID(), garage.ApprovalStatus()); err != nil {
		return fmt.Errorf("persist approval: %w", err)
	}

	if err := uc.Index.Add(ctx, garage.ID(), garage.Location()); err != nil {
		uc.Logger.Warn(ctx, "geo index add failed, ranking will fall back to full scan",
			logger.String("garage_id", garage.ID()),
			logger.WithError(err),
		)
	}

	uc.Logger.Info(ctx, "garage approved", logger.String("garage_id", garage.ID()))
	return nil
}
