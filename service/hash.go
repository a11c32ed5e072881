package service

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// transactionHash fingerprints the fields that identify a purchase: credit
// id, buyer id, decimal quantity and the exact transaction date string,
// concatenated in that order with no separators, hashed with SHA-256 and
// rendered as lowercase hex. The input order is part of the recorded format;
// changing it invalidates every stored hash.
//
// This is a per-record tamper check only. It is not chained to prior
// transactions and detects nothing about deleted or reordered rows.
func transactionHash(creditID, buyerID string, quantity int, transactionDate string) string {
	sum := sha256.Sum256([]byte(creditID + buyerID + strconv.Itoa(quantity) + transactionDate))
	return hex.EncodeToString(sum[:])
}
