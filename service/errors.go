package service

import "ccx-marketplace/util/errs"

var (
	ErrCreditNotFound        = errs.ResourceNotFoundError("credit not found")
	ErrInsufficientInventory = errs.BusinessRuleError("insufficient quantity available")
	ErrTransactionFailed     = errs.OperationFailedError("transaction failed")
)
