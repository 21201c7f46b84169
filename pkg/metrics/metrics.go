package metrics

import "time"

type Metrics interface {
	// Business
	RecordRequestCreated(status string)
	RecordGarageAssigned(status string)
	RecordUseCaseExecution(useCaseName string, success bool, duration time.Duration)
	RecordStaleRequestsSwept(count int)

	// Infrastructure
	ObserveHTTPRequestDuration(method, path, statusCode string, duration float64)
	IncGeoIndexFallback()
	IncEventsProcessed(status string)
}
