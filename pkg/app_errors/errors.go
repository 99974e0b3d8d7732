package apperrors

import "errors"

var (
	ErrStageNotFound       = errors.New("stage not found")
	ErrUnknownCategory     = errors.New("unknown category")
	ErrCategorySoldOut     = errors.New("category sold out")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrSaleNotFound        = errors.New("sale not found")
	ErrCountsNotCached     = errors.New("stock counts not cached")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInternalServerError = errors.New("internal server error")
)
