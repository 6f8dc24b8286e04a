package services

import (
	"errors"
	"fmt"
)

// Business failures callers map onto HTTP statuses. Everything here is a
// terminal rejection except ErrCodeAllocation, which the client may retry.
var (
	ErrStoreNotFound      = errors.New("store not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrStoreExists        = errors.New("account already has a store")
	ErrNoStore            = errors.New("account has no store yet")
	ErrNotOwner           = errors.New("resource belongs to another store")
	ErrCodeAllocation     = errors.New("could not allocate a unique code, please retry")
)

// InvalidLineError rejects one malformed order line before any stock is
// touched.
type InvalidLineError struct {
	ProductID uint
	Reason    string
}

func (e InvalidLineError) Error() string {
	return fmt.Sprintf("invalid order line for product %d: %s", e.ProductID, e.Reason)
}

// ProductNotFoundError rejects a line whose product does not exist, is
// inactive, or belongs to a different store. All three look identical to
// the customer so the error does not leak which one it was.
type ProductNotFoundError struct {
	ProductID uint
}

func (e ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %d is not available in this store", e.ProductID)
}

// InsufficientStockError rejects a line that asked for more units than
// remain. The whole order fails; no partial fulfilment.
type InsufficientStockError struct {
	ProductID uint
}

func (e InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for product %d", e.ProductID)
}

// InvalidTransitionError rejects an order status change the lifecycle does
// not allow.
type InvalidTransitionError struct {
	From, To string
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot move order from %s to %s", e.From, e.To)
}
