package payroll

import "errors"

// Payroll domain errors
var (
	ErrInvalidPayDate    = errors.New("invalid pay date")
	ErrPayPeriodNotFound = errors.New("pay period not found")
)
