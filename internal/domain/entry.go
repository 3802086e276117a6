package domain

import "errors"

var (
	// ErrEntryNotFound is returned by lookups for identifiers that were
	// never issued. An entry with empty content is not a miss.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrIdentifierExhausted is returned when a free identifier could not
	// be generated within the attempt budget.
	ErrIdentifierExhausted = errors.New("identifier space exhausted")
)
