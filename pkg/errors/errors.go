package errors

import (
	"errors"
	"fmt"
)

var (
	ErrUsage         = errors.New("invalid usage")
	ErrInvalidDays   = errors.New("invalid number of days")
	ErrDirectoryRead = errors.New("error reading directory")
	ErrSourceRead    = errors.New("error reading source file")
	ErrLedgerRead    = errors.New("error reading ledger")
	ErrLedgerWrite   = errors.New("error writing ledger")
	ErrLedgerLocked  = errors.New("ledger is locked by another run")
	ErrConfigInvalid = errors.New("invalid configuration")
	ErrInvalidFilter = errors.New("invalid filter expression")
)

func NewDaysError(value string) error {
	return fmt.Errorf("%w: %q", ErrInvalidDays, value)
}

func NewDirectoryError(path string, reason error) error {
	return fmt.Errorf("%w: %s: %w", ErrDirectoryRead, path, reason)
}

func NewSourceError(path string, reason error) error {
	return fmt.Errorf("%w: %s: %w", ErrSourceRead, path, reason)
}

func NewLedgerReadError(path string, reason error) error {
	return fmt.Errorf("%w: %s: %w", ErrLedgerRead, path, reason)
}

func NewLedgerWriteError(path string, reason error) error {
	return fmt.Errorf("%w: %s: %w", ErrLedgerWrite, path, reason)
}

func NewLockError(path string, reason error) error {
	return fmt.Errorf("%w: %s: %v", ErrLedgerLocked, path, reason)
}

func NewConfigError(field string, value interface{}) error {
	return fmt.Errorf("%w: field=%s value=%v", ErrConfigInvalid, field, value)
}

func NewFilterError(source string, reason error) error {
	return fmt.Errorf("%w: %q: %v", ErrInvalidFilter, source, reason)
}
