package errs

import (
	"errors"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrDefault     = errors.New("some error")
	ErrNoUser      = errors.New("user is not logged in")
	ErrInvalidPage = errors.New("page is invalid")
)

// Human-readable messages shown for upstream failures.
const (
	MsgLoadBooks    = "Failed to load books."
	MsgLoadBook     = "Error occurred while loading book info"
	MsgLoadWishlist = "Failed to load books or wishlist."
	MsgLoadOrders   = "Failed to load your orders. Please try again later."
)
