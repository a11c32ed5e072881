package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccx-marketplace/model"
)

func ledgerFixture() []model.CreditTransaction {
	return []model.CreditTransaction{
		{
			ID:              "tx-1",
			CreditID:        "CC-1001",
			BuyerID:         "buyer_001",
			Quantity:        100,
			PricePerTon:     18.5,
			TransactionDate: "2024-01-01T10:00:00",
			TransactionHash: "aaaa",
			Status:          model.TransactionStatusCompleted,
		},
		{
			ID:              "tx-2",
			CreditID:        "CC-1002",
			BuyerID:         "buyer_002",
			Quantity:        250,
			PricePerTon:     9.75,
			TransactionDate: "2024-01-02T11:30:00",
			TransactionHash: "bbbb",
			Status:          model.TransactionStatusCompleted,
		},
		{
			ID:              "tx-3",
			CreditID:        "CC-9999",
			BuyerID:         "buyer_001",
			Quantity:        5,
			PricePerTon:     40.0,
			TransactionDate: "2024-01-03T09:15:00",
			TransactionHash: "cccc",
			Status:          model.TransactionStatusCompleted,
		},
	}
}

func newTransactionFixture() *TransactionService {
	txRepo := &fakeTransactionRepo{transactions: ledgerFixture()}
	creditRepo := &fakeCreditRepo{credits: catalogFixture()}
	return NewTransactionService(txRepo, creditRepo)
}

func TestAllTransactions(t *testing.T) {
	t.Parallel()

	svc := newTransactionFixture()

	resp, err := svc.AllTransactions(context.Background())
	require.NoError(t, err)
	require.Len(t, resp, 3)

	assert.Equal(t, "tx-1", resp[0].ID)
	assert.Equal(t, "buyer_001", resp[0].BuyerID)
	assert.Equal(t, "aaaa", resp[0].TransactionHash)
}

func TestBuyerTransactions(t *testing.T) {
	t.Parallel()

	svc := newTransactionFixture()

	resp, err := svc.BuyerTransactions(context.Background(), "buyer_001")
	require.NoError(t, err)
	require.Len(t, resp, 2)
	for _, tx := range resp {
		assert.Equal(t, "buyer_001", tx.BuyerID)
	}

	resp, err = svc.BuyerTransactions(context.Background(), "buyer_999")
	require.NoError(t, err)
	assert.Empty(t, resp)
}

func TestPublicTransactions(t *testing.T) {
	t.Parallel()

	svc := newTransactionFixture()

	resp, err := svc.PublicTransactions(context.Background())
	require.NoError(t, err)
	require.Len(t, resp, 3)

	assert.Equal(t, "REDD+ Forestry", resp[0].CreditType)
	assert.Equal(t, 100, resp[0].Quantity)
	assert.Equal(t, "Renewable Energy", resp[1].CreditType)

	// Transactions against delisted credits still show up, typed as Unknown.
	assert.Equal(t, "Unknown", resp[2].CreditType)

	// The anonymized view must not leak identity fields when serialized.
	body, err := json.Marshal(resp[0])
	require.NoError(t, err)
	var fields map[string]any
	require.NoError(t, json.Unmarshal(body, &fields))
	assert.NotContains(t, fields, "id")
	assert.NotContains(t, fields, "buyer_id")
	assert.NotContains(t, fields, "transaction_hash")
	assert.Contains(t, fields, "transaction_date")
	assert.Contains(t, fields, "credit_type")
}
