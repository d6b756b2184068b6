package entity

import "errors"

// OutcomeKind tags a LookupOutcome.
type OutcomeKind string

const (
	OutcomeSuccess        OutcomeKind = "SUCCESS"
	OutcomeNotFound       OutcomeKind = "NOT_FOUND"
	OutcomeTransportError OutcomeKind = "TRANSPORT_ERROR"
)

// LookupOutcome is the tagged result of one lookup: exactly one of Success, NotFound or TransportError.
type LookupOutcome struct {
	Kind   OutcomeKind    `json:"kind"`
	Report *WeatherReport `json:"report,omitempty"`
	Detail string         `json:"detail,omitempty"`
}

// OutcomeOf folds a lookup result into its tagged form.
func OutcomeOf(report WeatherReport, err error) LookupOutcome {
	if err == nil {
		return LookupOutcome{Kind: OutcomeSuccess, Report: &report}
	}
	if errors.Is(err, ErrCityNotFound) {
		return LookupOutcome{Kind: OutcomeNotFound, Detail: err.Error()}
	}
	return LookupOutcome{Kind: OutcomeTransportError, Detail: err.Error()}
}
