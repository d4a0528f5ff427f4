package models

import (
	"errors"
)

// Authentication-related errors
var (
	// ErrNotLoggedIn is returned when an operation requires a stored session
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrInvalidAuthState is returned when the persisted auth state cannot be decoded
	ErrInvalidAuthState = errors.New("invalid persisted auth state")
)

// Cart-related errors
var (
	// ErrCartItemNotFound is returned when an item id is not in the cart
	ErrCartItemNotFound = errors.New("item not in cart")
)
