package service

import (
	"errors"
	"fmt"

	"github.com/kaapav/kaapav-bot/internal/payment"
	"github.com/kaapav/kaapav-bot/internal/repository"
	"github.com/kaapav/kaapav-bot/internal/shipping"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = repository.ErrNotFound
	ErrConflict         = errors.New("conflict")
	ErrNotConfigured    = errors.New("provider not configured")
	ErrInvalidSignature = errors.New("invalid webhook signature")
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// translate maps lower-layer sentinels onto the service taxonomy the
// handlers understand.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrConflict),
		errors.Is(err, ErrNotConfigured), errors.Is(err, ErrInvalidSignature):
		return err
	case errors.Is(err, repository.ErrConflict):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case errors.Is(err, repository.ErrInvalidTransition), errors.Is(err, repository.ErrOutOfStock):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case errors.Is(err, payment.ErrNotConfigured), errors.Is(err, shipping.ErrNotConfigured):
		return fmt.Errorf("%w: %v", ErrNotConfigured, err)
	case errors.Is(err, payment.ErrInvalidSignature):
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	return err
}
