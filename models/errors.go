package models

import (
	"errors"
	"fmt"
)

// ErrEmptyCart is returned by checkout when the user has nothing carted.
var ErrEmptyCart = errors.New("cart is empty")

// ValidationError reports malformed or out-of-range input. Recoverable;
// handlers surface the message to the client.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports a missing referenced entity.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// InsufficientStockError carries the offending product and the maximum
// quantity that could still be satisfied.
type InsufficientStockError struct {
	ProductID   uint
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: requested %d, available %d",
		e.ProductName, e.Requested, e.Available)
}

// ConcurrencyConflictError signals that the locking mechanism detected a
// racing writer. Callers retry the whole operation once, then give up.
type ConcurrencyConflictError struct {
	Op  string
	Err error
}

func (e *ConcurrencyConflictError) Error() string {
	return fmt.Sprintf("concurrent conflict during %s: %v", e.Op, e.Err)
}

func (e *ConcurrencyConflictError) Unwrap() error { return e.Err }
