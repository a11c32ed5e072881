package dto

import "ccx-marketplace/model"

// TransactionResponse is the full ledger record, visible to admins and to the
// buyer who owns it.
type TransactionResponse struct {
	ID              string  `json:"id"`
	CreditID        string  `json:"credit_id"`
	BuyerID         string  `json:"buyer_id"`
	Quantity        int     `json:"quantity"`
	PricePerTon     float64 `json:"price_per_ton"`
	TransactionDate string  `json:"transaction_date"`
	TransactionHash string  `json:"transaction_hash"`
	Status          string  `json:"status"`
}

func NewTransactionResponse(m *model.CreditTransaction) *TransactionResponse {
	return &TransactionResponse{
		ID:              m.ID,
		CreditID:        m.CreditID,
		BuyerID:         m.BuyerID,
		Quantity:        m.Quantity,
		PricePerTon:     m.PricePerTon,
		TransactionDate: m.TransactionDate,
		TransactionHash: m.TransactionHash,
		Status:          m.Status,
	}
}

// PublicTransactionResponse is the anonymized history view: no transaction
// id, no buyer identity, credit surfaced only by type.
type PublicTransactionResponse struct {
	TransactionDate string  `json:"transaction_date"`
	CreditType      string  `json:"credit_type"`
	Quantity        int     `json:"quantity"`
	PricePerTon     float64 `json:"price_per_ton"`
}

func NewPublicTransactionResponse(m *model.CreditTransaction, creditType string) *PublicTransactionResponse {
	return &PublicTransactionResponse{
		TransactionDate: m.TransactionDate,
		CreditType:      creditType,
		Quantity:        m.Quantity,
		PricePerTon:     m.PricePerTon,
	}
}
