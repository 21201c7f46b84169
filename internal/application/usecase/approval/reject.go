package approval

import (
	"context"
	"fmt"

	"github.com/roadassist/dispatch/internal/application/port/outbound"
	"github.com/roadassist/dispatch/pkg/logger"
)

type RejectGarageUseCaseImpl struct {
	Garages outbound.GarageRepository
	Index   outbound.GarageIndex
	Logger  logger.Logger
}

func NewRejectGarageUseCase(garages outbound.GarageRepository, index outbound.GarageIndex, log logger.Logger) *RejectGarageUseCaseImpl {
	return &RejectGarageUseCaseImpl{Garages: garages, Index: index, Logger: log}
}

func (uc *RejectGarageUseCaseImpl) Execute(ctx context.Context, garageID string) error {
	garage, err := uc.Garages.FindByID(ctx, garageID)
	if err != nil {
		return fmt.Errorf("load garage: %w", err)
	}

	if err := garage.Reject(); err != nil {
		return err
	}

	if err := uc.Garages.UpdateApprovalStatus(ctx, garage.ID(), garage.ApprovalStatus()); err != nil {
		return fmt.Errorf("persist rejection: %w", err)
	}

	if err := uc.Index.Remove(ctx, garage.ID()); err != nil {
		uc.Logger.Warn(ctx, "geo index remove failed",
			logger.String("garage_id", garage.ID()),
			logger.WithError(err),
		)
	}

	uc.Logger.Info(ctx, "garage rejected", logger.String("garage_id", garage.ID()))
	return nil
}

// ResubmitGarageUseCaseImpl returns a rejected garage to pending review.
// Only wired when approval resubmission is enabled in configuration.
type ResubmitGarageUseCaseImpl struct {
	Garages outbound.GarageRepository
	Logger  logger.Logger
}

func NewResubmitGarageUseCase(garages outbound.GarageRepository, log logger.Logger) *ResubmitGarageUseCaseImpl {
	return &ResubmitGarageUseCaseImpl{Garages: garages, Logger: log}
}

func (uc *ResubmitGarageUseCaseImpl) Execute(ctx context.Context, garageID string) error {
	garage, err := uc.Garages.FindByID(ctx, garageID)
	if err != nil {
		return fmt.Errorf("load garage: %w", err)
	}

	if err := garage.Resubmit(); err != nil {
		return err
	}

	if err := uc.Garages.UpdateApprovalStatus(ctx, garage.ID(), garage.ApprovalStatus()); err != nil {
		return fmt.Errorf("persist resubmission: %w", err)
	}

	uc.Logger.Info(ctx, "garage resubmitted for review", logger.String("garage_id", garage.ID()))
	return nil
}
