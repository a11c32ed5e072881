package handler

import (
	"ccx-marketplace/auth"

	"github.com/gofiber/fiber/v3"
)

// RegisterRoutes mounts the marketplace API onto the given router. Catalog
// browsing is open; detail, purchase and history require a bearer token.
// The available_amount route must be registered before the :id route so it
// is not captured as a credit id.
func RegisterRoutes(r fiber.Router, store *auth.TokenStore, creditH *CreditHandler, purchaseH *PurchaseHandler, txH *TransactionHandler) {
	requireToken := auth.RequireToken(store)

	r.Get("/credits/", creditH.ListCredits)
	r.Get("/credits/available_amount/", creditH.TotalAvailable)
	r.Get("/credits/:id", creditH.GetCredit, requireToken)
	r.Post("/purchase", purchaseH.PurchaseCredits, requireToken)
	r.Get("/transactions", txH.GetTransactions, requireToken)
}
