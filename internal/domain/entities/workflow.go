package entities

// jobWorkflow maps each status to the statuses directly reachable from
// it. PAID, LOST and CANCELLED are terminal; UNPAID can still settle to
// PAID when a late payment arrives through the webhook.
var jobWorkflow = map[JobStatus][]JobStatus{
	JobStatusLeadReceived: {JobStatusScheduled, JobStatusLost, JobStatusCancelled},
	JobStatusScheduled:    {JobStatusInvoiced, JobStatusCancelled, JobStatusCompleted},
	JobStatusCompleted:    {JobStatusInvoiced},
	JobStatusInvoiced:     {JobStatusPaid, JobStatusUnpaid},
	JobStatusUnpaid:       {JobStatusPaid},
	JobStatusPaid:         {},
	JobStatusLost:         {},
	JobStatusCancelled:    {},
}

// IsValidTransition reports whether a job may move from current to next.
//
// Two rules sit on top of the workflow table:
//   - SCHEDULED is always reachable, from any status: staff must be able
//     to reschedule or reset a job by hand.
//   - An unrecognized or empty current status is treated as
//     LEAD_RECEIVED, the implicit initial state.
//
// This is a pure predicate; it never writes and never logs.
func IsValidTransition(current, next JobStatus) bool {
	if next == JobStatusScheduled {
		return true
	}

	moves, ok := jobWorkflow[current]
	if !ok {
		moves = jobWorkflow[JobStatusLeadReceived]
	}
	for _, s := range moves {
		if s == next {
			return true
		}
	}
	return false
}
