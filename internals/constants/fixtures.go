package constants

import "errors"

// Submission metadata stamped on every generated class-day record.
const (
	SchoolDayRegular = "Regular"
	PeriodMorning    = "Morning"
	DefaultMarkTime  = "08:00:00"

	// StatsScopeAll is the filter scope used in cache keys (all classes / all grades).
	StatsScopeAll = "all"

	StudentIDPrefix = "student-"
)

var (
	ErrEmptyTaxonomy     = errors.New("taxonomy has no sections")
	ErrInvalidRange      = errors.New("value out of range")
	ErrDocumentNotFound  = errors.New("fixture document not found")
	ErrInvalidWindowDays = errors.New("attendance window must be at least one day")
	ErrUnknownRole       = errors.New("unknown role")
)
