package search

import (
	"errors"
	"regexp"
	"unicode/utf8"
)

// MinQueryLength is the shortest query the catalog is asked for without a warning
const MinQueryLength = 3

// Validation errors shown under the search box
var (
	ErrEmptyQuery    = errors.New("cannot search an empty movie title")
	ErrNumericQuery  = errors.New("cannot search a movie title that is a number")
	ErrQueryTooShort = errors.New("query must be at least 3 characters")
)

var numericQuery = regexp.MustCompile(`^\d+$`)

// Validate checks a query. While isFirstEdit is set validation is suppressed,
// and the returned flag stays set until a non-empty query is seen.
func Validate(query string, isFirstEdit bool) (stillFirstEdit bool, err error) {
	if isFirstEdit {
		return query == "", nil
	}
	return false, checkQuery(query)
}

func checkQuery(query string) error {
	if query == "" {
		return ErrEmptyQuery
	}
	if numericQuery.MatchString(query) {
		return ErrNumericQuery
	}
	if utf8.RuneCountInString(query) < MinQueryLength {
		return ErrQueryTooShort
	}
	return nil
}

// Phase is the validator's position in its one-way lifecycle
type Phase int

const (
	// PhaseUnvalidated suppresses errors until the first non-empty input
	PhaseUnvalidated Phase = iota
	// PhaseActive validates every input
	PhaseActive
)

// Status classifies a query after validation
type Status int

const (
	StatusUnvalidated Status = iota
	StatusValid
	StatusInvalid
)

func (s Status) String() string {
	switch s {
	case StatusUnvalidated:
		return "unvalidated"
	case StatusValid:
		return "valid"
	case StatusInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// ValidationState is the outcome of validating the current query
type ValidationState struct {
	Status Status
	Reason error // set only when Status is StatusInvalid
}

// Message returns the user-facing error text, or "" when there is none
func (v ValidationState) Message() string {
	if v.Reason == nil {
		return ""
	}
	return v.Reason.Error()
}

// Validator tracks the first-edit phase and the state of the last query
type Validator struct {
	phase Phase
	state ValidationState
}

// NewValidator creates a validator in the unvalidated phase
func NewValidator() *Validator {
	return &Validator{}
}

// Update validates query and advances the phase when appropriate
func (v *Validator) Update(query string) ValidationState {
	stillFirst, err := Validate(query, v.phase == PhaseUnvalidated)
	wasUnvalidated := v.phase == PhaseUnvalidated
	if !stillFirst {
		v.phase = PhaseActive
	}

	switch {
	case wasUnvalidated:
		v.state = ValidationState{Status: StatusUnvalidated}
	case err != nil:
		v.state = ValidationState{Status: StatusInvalid, Reason: err}
	default:
		v.state = ValidationState{Status: StatusValid}
	}
	return v.state
}

// State returns the result of the last Update
func (v *Validator) State() ValidationState {
	return v.state
}

// Phase returns the current lifecycle phase
func (v *Validator) Phase() Phase {
	return v.phase
}
