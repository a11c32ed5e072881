package auth

import "ccx-marketplace/util/errs"

var ErrUnauthorized = errs.UnauthorizedError("invalid authentication credentials")

type Role string

const (
	RolePublic Role = "public"
	RoleBuyer  Role = "buyer"
	RoleAdmin  Role = "admin"
)

// Identity is the caller resolved from a bearer credential. It is derived
// per request and never persisted.
type Identity struct {
	Role      Role
	SubjectID string
}

// HasBuyerAccess reports whether the identity may purchase credits and see
// full listing detail. Admin is implicitly included wherever buyer is.
func (i Identity) HasBuyerAccess() bool {
	return i.Role == RoleBuyer || i.Role == RoleAdmin
}

// TokenStore maps opaque bearer tokens to fixed identities. The table is
// injected at construction so tests can substitute credentials; there is no
// issuance, rotation, or expiry.
type TokenStore struct {
	tokens map[string]Identity
}

func NewTokenStore(tokens map[string]Identity) *TokenStore {
	store := &TokenStore{tokens: make(map[string]Identity, len(tokens))}
	for token, identity := range tokens {
		store.tokens[token] = identity
	}
	return store
}

func (s *TokenStore) Resolve(token string) (Identity, error) {
	identity, ok := s.tokens[token]
	if !ok {
		return Identity{}, ErrUnauthorized
	}
	return identity, nil
}
