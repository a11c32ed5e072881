package handler

import (
	"ccx-marketplace/auth"
	"ccx-marketplace/dto"
	"ccx-marketplace/service"
	"ccx-marketplace/util/errs"

	"github.com/gofiber/fiber/v3"
)

type CreditHandler struct {
	creditSvc *service.CreditService
}

func NewCreditHandler(creditSvc *service.CreditService) *CreditHandler {
	return &CreditHandler{creditSvc: creditSvc}
}

func (h *CreditHandler) ListCredits(c fiber.Ctx) error {
	resp, err := h.creditSvc.ListCredits(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func (h *CreditHandler) TotalAvailable(c fiber.Ctx) error {
	resp, err := h.creditSvc.TotalAvailable(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func (h *CreditHandler) GetCredit(c fiber.Ctx) error {
	identity, ok := auth.IdentityFromCtx(c)
	if !ok {
		return auth.ErrUnauthorized
	}

	credit, err := h.creditSvc.GetCredit(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	// Project the record down to what the caller's role may see.
	switch identity.Role {
	case auth.RolePublic:
		return c.JSON(dto.NewPublicCreditResponse(credit))
	case auth.RoleBuyer, auth.RoleAdmin:
		return c.JSON(dto.NewCreditResponse(credit))
	default:
		return errs.ForbiddenError("access forbidden")
	}
}
