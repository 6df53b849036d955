// Package id generates unique identifiers for domain records.
package id

import "github.com/google/uuid"

// NewID returns a new random identifier.
func NewID() (string, error) {
	value, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return value.String(), nil
}
