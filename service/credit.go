package service

import (
	"context"

	"ccx-marketplace/dto"
	"ccx-marketplace/model"
	"ccx-marketplace/repository"
	"ccx-marketplace/util/logger"
)

type CreditService struct {
	creditRepo repository.CreditRepository
}

func NewCreditService(creditRepo repository.CreditRepository) *CreditService {
	return &CreditService{
		creditRepo: creditRepo,
	}
}

// ListCredits returns the public catalog view of every listing.
func (s *CreditService) ListCredits(ctx context.Context) ([]*dto.PublicCreditResponse, error) {
	credits, err := s.creditRepo.FindAll(ctx)
	if err != nil {
		logger.Log().Error(err.Error())
		return nil, err
	}

	resp := make([]*dto.PublicCreditResponse, 0, len(credits))
	for i := range credits {
		resp = append(resp, dto.NewPublicCreditResponse(&credits[i]))
	}
	return resp, nil
}

func (s *CreditService) TotalAvailable(ctx context.Context) (*dto.TotalAvailableResponse, error) {
	total, err := s.creditRepo.TotalAvailable(ctx)
	if err != nil {
		logger.Log().Error(err.Error())
		return nil, err
	}
	return dto.NewTotalAvailableResponse(total), nil
}

// GetCredit looks up a single listing. The role-dependent projection happens
// at the handler; absence becomes ErrCreditNotFound here.
func (s *CreditService) GetCredit(ctx context.Context, id string) (*model.CarbonCredit, error) {
	credit, err := s.creditRepo.FindByID(ctx, id)
	if err != nil {
		logger.Log().Error(err.Error())
		return nil, err
	}
	if credit == nil {
		return nil, ErrCreditNotFound
	}
	return credit, nil
}
