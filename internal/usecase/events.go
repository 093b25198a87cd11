package usecase

import (
	"doorway_ops/internal/domain/entities"
	"doorway_ops/internal/events"
)

// makeJobEvent serializes the slice of a job the dashboard stream cares
// about: identity plus current lifecycle position.
func makeJobEvent(typ string, job entities.Job) string {
	return events.Make(typ, map[string]any{
		"job_id":    job.ID,
		"client_id": job.ClientID,
		"status":    string(job.Status),
	})
}
