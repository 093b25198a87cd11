package request

// QuoteRequest is the public quote-form payload. Field presence is
// validated by the use case so the form can evolve without binding
// errors turning into 400s with no body.
type QuoteRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Service string `json:"service"`
}
