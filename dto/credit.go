package dto

import "ccx-marketplace/model"

// PublicCreditResponse is the catalog view every caller may see. It carries
// the declared public fields only; neither detail blob is expanded here.
type PublicCreditResponse struct {
	ID                 string  `json:"id"`
	ProjectName        string  `json:"project_name"`
	Supplier           string  `json:"supplier"`
	CreditType         string  `json:"credit_type"`
	Vintage            int     `json:"vintage"`
	QuantityAvailable  int     `json:"quantity_available"`
	PricePerTon        float64 `json:"price_per_ton"`
	Location           string  `json:"location"`
	VerificationStatus string  `json:"verification_status"`
	Methodology        string  `json:"methodology"`
}

func NewPublicCreditResponse(m *model.CarbonCredit) *PublicCreditResponse {
	return &PublicCreditResponse{
		ID:                 m.ID,
		ProjectName:        m.ProjectName,
		Supplier:           m.Supplier,
		CreditType:         m.CreditType,
		Vintage:            m.Vintage,
		QuantityAvailable:  m.QuantityAvailable,
		PricePerTon:        m.PricePerTon,
		Location:           m.Location,
		VerificationStatus: m.VerificationStatus,
		Methodology:        m.Methodology,
	}
}

// CreditResponse is the full record, served to buyer and admin roles only.
type CreditResponse struct {
	PublicCreditResponse
	PublicDetails  map[string]any `json:"public_details"`
	PrivateDetails map[string]any `json:"private_details,omitempty"`
}

func NewCreditResponse(m *model.CarbonCredit) *CreditResponse {
	return &CreditResponse{
		PublicCreditResponse: *NewPublicCreditResponse(m),
		PublicDetails:        m.PublicDetails,
		PrivateDetails:       m.PrivateDetails,
	}
}

type TotalAvailableResponse struct {
	TotalAvailableAmount int `json:"total_available_amount"`
}

func NewTotalAvailableResponse(total int) *TotalAvailableResponse {
	return &TotalAvailableResponse{TotalAvailableAmount: total}
}
