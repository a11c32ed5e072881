package service

import (
	"context"
	"errors"

	"ccx-marketplace/dto"
	"ccx-marketplace/model"
	"ccx-marketplace/repository"
	"ccx-marketplace/util/clock"
	"ccx-marketplace/util/logger"
	"ccx-marketplace/util/storage/sqldb/transactor"
)

type PurchaseService struct {
	transactor transactor.Transactor
	creditRepo repository.CreditRepository
	txRepo     repository.TransactionRepository
	clock      clock.Clock
}

func NewPurchaseService(transactor transactor.Transactor, creditRepo repository.CreditRepository, txRepo repository.TransactionRepository, clk clock.Clock) *PurchaseService {
	return &PurchaseService{
		transactor: transactor,
		creditRepo: creditRepo,
		txRepo:     txRepo,
		clock:      clk,
	}
}

// Purchase converts available quantity on a listing into a recorded
// transaction. The ledger insert and the inventory decrement happen in one
// database transaction: either both take effect or neither does.
func (s *PurchaseService) Purchase(ctx context.Context, req *dto.PurchaseRequest, buyerID string) (*dto.PurchaseResponse, error) {
	credit, err := s.creditRepo.FindByID(ctx, req.CreditID)
	if err != nil {
		logger.Log().Error(err.Error())
		return nil, err
	}
	if credit == nil {
		return nil, ErrCreditNotFound
	}

	// No partial fulfillment. The decrement re-checks this inside the
	// transaction; this early answer just keeps the common case cheap.
	if req.Quantity > credit.QuantityAvailable {
		return nil, ErrInsufficientInventory
	}

	// Price is snapshotted now; later listing changes do not touch the record.
	transactionDate := s.clock.Now().Format(model.TransactionDateLayout)
	tx := model.NewCreditTransaction(credit.ID, buyerID, req.Quantity, credit.PricePerTon, transactionDate)
	tx.TransactionHash = transactionHash(tx.CreditID, tx.BuyerID, tx.Quantity, tx.TransactionDate)

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.txRepo.Create(ctx, tx); err != nil {
			return err
		}
		return s.creditRepo.DecrementAvailability(ctx, credit.ID, req.Quantity)
	})
	if err != nil {
		logger.Log().Error(err.Error())
		if errors.Is(err, repository.ErrQuantityConflict) {
			// A concurrent purchase won the remaining quantity.
			return nil, ErrInsufficientInventory
		}
		// Persistence detail stays internal; the caller sees a generic failure.
		return nil, ErrTransactionFailed
	}

	return dto.NewPurchaseResponse(tx), nil
}
