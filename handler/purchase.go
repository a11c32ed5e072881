package handler

import (
	"fmt"

	"ccx-marketplace/auth"
	"ccx-marketplace/dto"
	"ccx-marketplace/service"
	"ccx-marketplace/util/errs"
	"ccx-marketplace/util/logger"

	"github.com/gofiber/fiber/v3"
)

type PurchaseHandler struct {
	purchaseSvc *service.PurchaseService
}

func NewPurchaseHandler(purchaseSvc *service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseSvc: purchaseSvc}
}

func (h *PurchaseHandler) PurchaseCredits(c fiber.Ctx) error {
	identity, ok := auth.IdentityFromCtx(c)
	if !ok {
		return auth.ErrUnauthorized
	}
	if !identity.HasBuyerAccess() {
		return errs.ForbiddenError("only buyers or admin can make purchases")
	}

	var req dto.PurchaseRequest
	if err := c.Bind().Body(&req); err != nil {
		return errs.InputValidationError(err.Error())
	}
	if err := req.Validate(); err != nil {
		return errs.InputValidationError(err.Error())
	}

	logger.Log().Info(fmt.Sprintf("Received purchase request: credit=%s quantity=%d buyer=%s", req.CreditID, req.Quantity, identity.SubjectID))

	resp, err := h.purchaseSvc.Purchase(c.Context(), &req, identity.SubjectID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}
