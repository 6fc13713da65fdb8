package service

import (
	"github.com/dukerupert/vanir/internal/domain"
)

// Cart errors - use domain.ENOTFOUND / domain.EINVALID
var (
	ErrCartNotFound    = domain.ErrCartNotFound
	ErrItemNotFound    = domain.ErrItemNotFound
	ErrSessionNotFound = domain.ErrSessionNotFound
	ErrInvalidQuantity = domain.ErrInvalidQuantity
	ErrInvalidPrice    = domain.ErrInvalidPrice
	ErrMissingProduct  = domain.Errorf(domain.EINVALID, "", "Product ID is required")
)

// Coupon errors
var (
	ErrCouponNotFound = domain.ErrCouponNotFound
)
