// =============================
// File: internal/feesharing/errors.go
// =============================
package feesharing

import (
	"errors"
	"fmt"
)

// ErrSharingPaused возникает при распределении по приостановленной конфигурации
var ErrSharingPaused = errors.New("fee sharing config is paused")

// NoShareholdersError is returned for an empty shareholder table.
type NoShareholdersError struct{}

func (e *NoShareholdersError) Error() string {
	return "No shareholders provided"
}

// TooManyShareholdersError is returned when the table exceeds MaxShareholders.
type TooManyShareholdersError struct {
	Count int
	Max   int
}

func (e *TooManyShareholdersError) Error() string {
	return fmt.Sprintf("Too many shareholders. Maximum allowed is %d, got %d", e.Max, e.Count)
}

// ZeroShareError is returned for a shareholder without a positive share.
type ZeroShareError struct {
	Address string
}

func (e *ZeroShareError) Error() string {
	return fmt.Sprintf("Zero or negative share not allowed for address %s", e.Address)
}

// ShareCalculationOverflowError is returned when share arithmetic leaves its integer range.
type ShareCalculationOverflowError struct{}

func (e *ShareCalculationOverflowError) Error() string {
	return "Share calculation overflow - total shares exceed maximum value"
}

// InvalidShareTotalError is returned when shares do not add up to 10000 bps.
type InvalidShareTotalError struct {
	Total uint64
}

func (e *InvalidShareTotalError) Error() string {
	return fmt.Sprintf("Invalid share total. Must equal 10,000 basis points (100%%). Got %d", e.Total)
}

// DuplicateShareholderError is returned when an address appears twice.
type DuplicateShareholderError struct {
	Address string
}

func (e *DuplicateShareholderError) Error() string {
	return "Duplicate shareholder addresses not allowed"
}

// SharingConfigNotFoundError is returned when a mint has no sharing config.
type SharingConfigNotFoundError struct {
	Mint string
}

func (e *SharingConfigNotFoundError) Error() string {
	return fmt.Sprintf("Sharing config not found for mint: %s", e.Mint)
}
