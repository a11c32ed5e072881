package service

import (
	"context"

	"ccx-marketplace/dto"
	"ccx-marketplace/repository"
	"ccx-marketplace/util/logger"
)

const unknownCreditType = "Unknown"

type TransactionService struct {
	txRepo     repository.TransactionRepository
	creditRepo repository.CreditRepository
}

func NewTransactionService(txRepo repository.TransactionRepository, creditRepo repository.CreditRepository) *TransactionService {
	return &TransactionService{
		txRepo:     txRepo,
		creditRepo: creditRepo,
	}
}

// AllTransactions returns the full ledger (admin view).
func (s *TransactionService) AllTransactions(ctx context.Context) ([]*dto.TransactionResponse, error) {
	transactions, err := s.txRepo.FindAll(ctx)
	if err != nil {
		logger.Log().Error(err.Error())
		return nil, err
	}

	resp := make([]*dto.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		resp = append(resp, dto.NewTransactionResponse(&transactions[i]))
	}
	return resp, nil
}

// BuyerTransactions returns only the caller's own purchases.
func (s *TransactionService) BuyerTransactions(ctx context.Context, buyerID string) ([]*dto.TransactionResponse, error) {
	transactions, err := s.txRepo.FindByBuyer(ctx, buyerID)
	if err != nil {
		logger.Log().Error(err.Error())
		return nil, err
	}

	resp := make([]*dto.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		resp = append(resp, dto.NewTransactionResponse(&transactions[i]))
	}
	return resp, nil
}

// PublicTransactions returns every transaction stripped of buyer identity
// and transaction id, joined against the catalog for the credit type.
func (s *TransactionService) PublicTransactions(ctx context.Context) ([]*dto.PublicTransactionResponse, error) {
	transactions, err := s.txRepo.FindAll(ctx)
	if err != nil {
		logger.Log().Error(err.Error())
		return nil, err
	}
	credits, err := s.creditRepo.FindAll(ctx)
	if err != nil {
		logger.Log().Error(err.Error())
		return nil, err
	}

	creditTypes := make(map[string]string, len(credits))
	for i := range credits {
		creditTypes[credits[i].ID] = credits[i].CreditType
	}

	resp := make([]*dto.PublicTransactionResponse, 0, len(transactions))
	for i := range transactions {
		creditType, ok := creditTypes[transactions[i].CreditID]
		if !ok {
			creditType = unknownCreditType
		}
		resp = append(resp, dto.NewPublicTransactionResponse(&transactions[i], creditType))
	}
	return resp, nil
}
