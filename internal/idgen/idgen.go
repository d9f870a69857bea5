// Package idgen generates short, human-readable ticket numbers backed by nanoid.
package idgen

import (
	"fmt"

	nanoid "github.com/matoous/go-nanoid/v2"
)

// DefaultPrefix is prepended to every ticket number.
var DefaultPrefix = "T-"

// Alphabet omits characters that are easy to misread on a printed ticket
// (0/O, 1/I/L).
var Alphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

// DefaultLength is the number of random characters after the prefix.
var DefaultLength = 6

// TicketNumber returns a new ticket number using the default prefix and length.
func TicketNumber() (string, error) {
	return TicketNumberWith(DefaultPrefix, DefaultLength)
}

// TicketNumberWith returns a new ticket number with the given prefix and
// random length.
func TicketNumberWith(prefix string, length int) (string, error) {
	id, err := nanoid.Generate(Alphabet, length)
	if err != nil {
		return "", fmt.Errorf("idgen: %w", err)
	}
	return prefix + id, nil
}
