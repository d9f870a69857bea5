package domain

import "errors"

var (
	// ErrUnknownWorkType is returned for identifiers missing from a catalog
	// or the classification table.
	ErrUnknownWorkType = errors.New("unknown work type")
	// ErrNotAListField is returned when a list operation targets a field
	// that is not a structured list.
	ErrNotAListField = errors.New("not a list field")
	// ErrEmptyBatch is returned when committing a quick-entry batch with no entries.
	ErrEmptyBatch = errors.New("batch has no entries")
	// ErrInvalidDimension rejects a zero or negative dimension at entry time.
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrDetailsMismatch is returned when a work item's details variant does
	// not match its work type category.
	ErrDetailsMismatch = errors.New("details do not match work type")
	// ErrNoBlades is returned when a sawing cut is committed without blades.
	ErrNoBlades = errors.New("at least one blade is required")
	ErrNotFound = errors.New("not found")
)
