package handler

import (
	"context"

	"ccx-marketplace/model"
	"ccx-marketplace/repository"
)

type fakeCreditRepo struct {
	credits []model.CarbonCredit
}

func (f *fakeCreditRepo) FindAll(_ context.Context) ([]model.CarbonCredit, error) {
	out := make([]model.CarbonCredit, len(f.credits))
	copy(out, f.credits)
	return out, nil
}

func (f *fakeCreditRepo) TotalAvailable(_ context.Context) (int, error) {
	total := 0
	for i := range f.credits {
		total += f.credits[i].QuantityAvailable
	}
	return total, nil
}

func (f *fakeCreditRepo) FindByID(_ context.Context, id string) (*model.CarbonCredit, error) {
	for i := range f.credits {
		if f.credits[i].ID == id {
			credit := f.credits[i]
			return &credit, nil
		}
	}
	return nil, nil
}

func (f *fakeCreditRepo) DecrementAvailability(_ context.Context, id string, quantity int) error {
	for i := range f.credits {
		if f.credits[i].ID == id {
			if f.credits[i].QuantityAvailable < quantity {
				return repository.ErrQuantityConflict
			}
			f.credits[i].QuantityAvailable -= quantity
			return nil
		}
	}
	return repository.ErrQuantityConflict
}

type fakeTransactionRepo struct {
	transactions []model.CreditTransaction
}

func (f *fakeTransactionRepo) Create(_ context.Context, tx *model.CreditTransaction) error {
	f.transactions = append(f.transactions, *tx)
	return nil
}

func (f *fakeTransactionRepo) FindAll(_ context.Context) ([]model.CreditTransaction, error) {
	out := make([]model.CreditTransaction, len(f.transactions))
	copy(out, f.transactions)
	return out, nil
}

func (f *fakeTransactionRepo) FindByBuyer(_ context.Context, buyerID string) ([]model.CreditTransaction, error) {
	out := []model.CreditTransaction{}
	for _, tx := range f.transactions {
		if tx.BuyerID == buyerID {
			out = append(out, tx)
		}
	}
	return out, nil
}

type fakeTransactor struct{}

func (fakeTransactor) WithinTransaction(ctx context.Context, txFunc func(ctx context.Context) error) error {
	return txFunc(ctx)
}
