package keyring

import (
	"errors"
	"fmt"

	"github.com/example/choreboard/internal/constants"
	"github.com/zalando/go-keyring"
)

var (
	// ErrNotFound is returned when no session is stored in the keyring
	ErrNotFound = errors.New("session not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetSessionCookie retrieves the stored session cookie from the OS keyring.
// Returns ErrNotFound if no session is stored.
func GetSessionCookie() (string, error) {
	cookie, err := keyring.Get(constants.AppName, constants.DefaultKeyringKey)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return cookie, nil
}

// SetSessionCookie stores the session cookie in the OS keyring.
func SetSessionCookie(cookie string) error {
	if cookie == "" {
		return errors.New("session cookie cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringKey, cookie); err != nil {
		return fmt.Errorf("failed to store session in keyring: %w", err)
	}
	return nil
}

// DeleteSessionCookie removes the session cookie from the OS keyring.
func DeleteSessionCookie() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringKey)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete session from keyring: %w", err)
	}
	return nil
}

// IsAvailable checks if the OS keyring is available on the current system.
// This is a best-effort check and may not catch all failure scenarios.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || err == keyring.ErrNotFound
}
