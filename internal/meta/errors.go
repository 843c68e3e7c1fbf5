// internal/meta/errors.go
package meta

import "errors"

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrMaxedOut          = errors.New("upgrade is at max level")
	ErrUnknownCategory   = errors.New("unknown upgrade category")
)
