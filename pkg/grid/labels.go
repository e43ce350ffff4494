package grid

import (
	apperrors "github.com/hyprgrid/hyprgrid/pkg/errors"
)

const (
	// PrioritySymbols are typed first: the home row, left to right.
	PrioritySymbols = "asdfghjkl"

	// SecondarySymbols are the remaining letters in alphabetical order.
	SecondarySymbols = "bceimnopqrtuvwxyz"

	// Alphabet is the full label alphabet in assignment order.
	Alphabet = PrioritySymbols + SecondarySymbols

	// MaxCells is the number of distinct two-letter labels.
	MaxCells = len(Alphabet) * len(Alphabet)
)

// Labels returns the first n labels in assignment order. Label i is
// Alphabet[i/26] followed by Alphabet[i%26]. It fails with
// ErrCodeGridTooLarge when n exceeds MaxCells and generates nothing.
func Labels(n int) ([]string, error) {
	if n > MaxCells {
		return nil, apperrors.New(apperrors.ErrCodeGridTooLarge,
			"grid too large: %d cells exceeds maximum of %d (%d×%d)", n, MaxCells, len(Alphabet), len(Alphabet))
	}
	if n < 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "label count must not be negative, got %d", n)
	}

	k := len(Alphabet)
	labels := make([]string, n)
	for i := range labels {
		labels[i] = string([]byte{Alphabet[i/k], Alphabet[i%k]})
	}
	return labels, nil
}
