package response

import "doorway_ops/internal/usecase"

// QuoteResponse acknowledges a quote submission. Duplicate submissions
// inside the intake window get the original job id back so the caller
// cannot tell a resubmission from a slow first response.
type QuoteResponse struct {
	ClientID string `json:"client_id"`
	JobID    string `json:"job_id"`
	Message  string `json:"message"`
}

func FromQuoteResult(res usecase.QuoteResult) QuoteResponse {
	return QuoteResponse{
		ClientID: res.ClientID,
		JobID:    res.JobID,
		Message:  "Thanks! We received your request and will be in touch shortly.",
	}
}
