package transaction

import "errors"

var (
	ErrInvalidUserID = errors.New("invalid user id")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidType   = errors.New("invalid transaction type")
	ErrInvalidStatus = errors.New("invalid transaction status")
)
