package request

type ClientRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	PropertyNotes  string `json:"property_notes"`
	GateCode       string `json:"gate_code"`
	ReferralSource string `json:"referral_source"`
	Status         string `json:"status"`
}
