package dto

import (
	"errors"

	"ccx-marketplace/model"
)

type PurchaseRequest struct {
	CreditID string `json:"credit_id"`
	Quantity int    `json:"quantity"`
}

func (r *PurchaseRequest) Validate() error {
	if r.CreditID == "" {
		return errors.New("credit_id is required")
	}
	if r.Quantity <= 0 {
		return errors.New("quantity must be greater than 0")
	}
	return nil
}

type PurchaseResponse struct {
	TransactionID   string  `json:"transaction_id"`
	TransactionHash string  `json:"transaction_hash"`
	TotalCost       float64 `json:"total_cost"`
	Status          string  `json:"status"`
}

func NewPurchaseResponse(tx *model.CreditTransaction) *PurchaseResponse {
	return &PurchaseResponse{
		TransactionID:   tx.ID,
		TransactionHash: tx.TransactionHash,
		TotalCost:       float64(tx.Quantity) * tx.PricePerTon,
		Status:          tx.Status,
	}
}
