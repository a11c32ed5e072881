package model

import "github.com/google/uuid"

// TransactionDateLayout is the ISO-8601 form recorded on transactions. The
// integrity hash covers this exact string, so the stored value and the hashed
// value can never diverge.
const TransactionDateLayout = "2006-01-02T15:04:05"

const TransactionStatusCompleted = "completed"

type CreditTransaction struct {
	ID              string  `db:"id"`
	CreditID        string  `db:"credit_id"`
	BuyerID         string  `db:"buyer_id"`
	Quantity        int     `db:"quantity"`
	PricePerTon     float64 `db:"price_per_ton"`
	TransactionDate string  `db:"transaction_date"`
	TransactionHash string  `db:"transaction_hash"`
	Status          string  `db:"status"`
}

func NewCreditTransaction(creditID, buyerID string, quantity int, pricePerTon float64, transactionDate string) *CreditTransaction {
	return &CreditTransaction{
		ID:              uuid.NewString(),
		CreditID:        creditID,
		BuyerID:         buyerID,
		Quantity:        quantity,
		PricePerTon:     pricePerTon,
		TransactionDate: transactionDate,
		Status:          TransactionStatusCompleted,
	}
}
