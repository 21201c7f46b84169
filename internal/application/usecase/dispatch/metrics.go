package dispatch

import (
	"context"
	"time"

	"github.com/roadassist/dispatch/pkg/metrics"
)

type SubmitMetricsDecorator struct {
	Next    SubmitUseCase
	Metrics metrics.Metrics
}

func (d *SubmitMetricsDecorator) Execute(ctx context.Context, input SubmitInput) (SubmitOutput, error) {
	start := time.Now()
	output, err := d.Next.Execute(ctx, input)
	d.Metrics.RecordUseCaseExecution("SubmitRequest", err == nil, time.Since(start))
	if err == nil {
		d.Metrics.RecordRequestCreated(output.Request.Status)
	}
	return output, err
}

type AssignGarageMetricsDecorator struct {
	Next    AssignGarageUseCase
	Metrics metrics.Metrics
}

func (d *AssignGarageMetricsDecorator) Execute(ctx context.Context, input AssignGarageInput) (RequestOutput, error) {
	start := time.Now()
	output, err := d.Next.Execute(ctx, input)
	d.Metrics.RecordUseCaseExecution("AssignGarage", err == nil, time.Since(start))
	if err == nil {
		d.Metrics.RecordGarageAssigned(output.Status)
	}
	return output, err
}

type AssignMechanicMetricsDecorator struct {
	Next    AssignMechanicUseCase
	Metrics metrics.Metrics
}

func (d *AssignMechanicMetricsDecorator) Execute(ctx context.Context, input AssignMechanicInput) (RequestOutput, error) {
	start := time.Now()
	output, err := d.Next.Execute(ctx, input)
	d.Metrics.RecordUseCaseExecution("AssignMechanic", err == nil, time.Since(start))
	return output, err
}

type CompleteMetricsDecorator struct {
	Next    CompleteUseCase
	Metrics metrics.Metrics
}

func (d *CompleteMetricsDecorator) Execute(ctx context.Context, input CompleteInput) (RequestOutput, error) {
	start := time.Now()
	output, err := d.Next.Execute(ctx, input)
	d.Metrics.RecordUseCaseExecution("CompleteRequest", err == nil, time.Since(start))
	return output, err
}

type RejectMetricsDecorator struct {
	Next    RejectUseCase
	Metrics metrics.Metrics
}

func (d *RejectMetricsDecorator) Execute(ctx context.Context, input RejectInput) (RequestOutput, error) {
	start := time.Now()
	output, err := d.Next.Execute(ctx, input)
	d.Metrics.RecordUseCaseExecution("RejectRequest", err == nil, time.Since(start))
	return output, err
}
