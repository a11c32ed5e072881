package service

import (
	"context"

	"ccx-marketplace/model"
	"ccx-marketplace/repository"
)

// fakeCreditRepo keeps listings in a slice to preserve catalog order.
type fakeCreditRepo struct {
	credits []model.CarbonCredit
	findErr error
	decErr  error
}

func (f *fakeCreditRepo) FindAll(_ context.Context) ([]model.CarbonCredit, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	out := make([]model.CarbonCredit, len(f.credits))
	copy(out, f.credits)
	return out, nil
}

func (f *fakeCreditRepo) TotalAvailable(_ context.Context) (int, error) {
	if f.findErr != nil {
		return 0, f.findErr
	}
	total := 0
	for i := range f.credits {
		total += f.credits[i].QuantityAvailable
	}
	return total, nil
}

func (f *fakeCreditRepo) FindByID(_ context.Context, id string) (*model.CarbonCredit, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for i := range f.credits {
		if f.credits[i].ID == id {
			credit := f.credits[i]
			return &credit, nil
		}
	}
	return nil, nil
}

func (f *fakeCreditRepo) DecrementAvailability(_ context.Context, id string, quantity int) error {
	if f.decErr != nil {
		return f.decErr
	}
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
	createErr    error
	findErr      error
}

func (f *fakeTransactionRepo) Create(_ context.Context, tx *model.CreditTransaction) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.transactions = append(f.transactions, *tx)
	return nil
}

func (f *fakeTransactionRepo) FindAll(_ context.Context) ([]model.CreditTransaction, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	out := make([]model.CreditTransaction, len(f.transactions))
	copy(out, f.transactions)
	return out, nil
}

func (f *fakeTransactionRepo) FindByBuyer(_ context.Context, buyerID string) ([]model.CreditTransaction, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	out := []model.CreditTransaction{}
	for _, tx := range f.transactions {
		if tx.BuyerID == buyerID {
			out = append(out, tx)
		}
	}
	return out, nil
}

// fakeTransactor runs the function directly; failures short-circuit like a
// failed begin.
type fakeTransactor struct {
	beginErr error
}

func (f fakeTransactor) WithinTransaction(ctx context.Context, txFunc func(ctx context.Context) error) error {
	if f.beginErr != nil {
		return f.beginErr
	}
	return txFunc(ctx)
}
