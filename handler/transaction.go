package handler

import (
	"ccx-marketplace/auth"
	"ccx-marketplace/service"

	"github.com/gofiber/fiber/v3"
)

type TransactionHandler struct {
	txSvc *service.TransactionService
}

func NewTransactionHandler(txSvc *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{txSvc: txSvc}
}

// GetTransactions serves the history view scoped to the caller's role:
// admins see everything, buyers see their own purchases, everyone else gets
// the anonymized view.
func (h *TransactionHandler) GetTransactions(c fiber.Ctx) error {
	identity, ok := auth.IdentityFromCtx(c)
	if !ok {
		return auth.ErrUnauthorized
	}

	switch identity.Role {
	case auth.RoleAdmin:
		resp, err := h.txSvc.AllTransactions(c.Context())
		if err != nil {
			return err
		}
		return c.JSON(resp)
	case auth.RoleBuyer:
		resp, err := h.txSvc.BuyerTransactions(c.Context(), identity.SubjectID)
		if err != nil {
			return err
		}
		return c.JSON(resp)
	default:
		resp, err := h.txSvc.PublicTransactions(c.Context())
		if err != nil {
			return err
		}
		return c.JSON(resp)
	}
}
