package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrLedgerContention is returned when a counter update could not be
	// applied atomically. Callers may retry once.
	ErrLedgerContention = errors.New("frequency ledger contention")
	// ErrDecisionTimeout is returned when a decision exceeds its deadline.
	ErrDecisionTimeout = errors.New("decision timed out")
)

// NotFoundError reports a missing entity. Empty Resource or zero ID on the
// target act as wildcards in errors.Is.
type NotFoundError struct {
	Resource string
	ID       int64
	Key      string
}

func (e *NotFoundError) Error() string {
	switch {
	case e.Key != "":
		return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
	case e.ID != 0:
		return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
	case e.Resource != "":
		return e.Resource + " not found"
	default:
		return "not found"
	}
}

// Is matches other NotFoundErrors by resource.
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	if t.Resource != "" && t.Resource != e.Resource {
		return false
	}
	if t.ID != 0 && t.ID != e.ID {
		return false
	}
	return true
}

var (
	ErrNotFound          = &NotFoundError{}
	ErrCampaignNotFound  = &NotFoundError{Resource: "campaign"}
	ErrAdUnitNotFound    = &NotFoundError{Resource: "ad unit"}
	ErrSiteNotFound      = &NotFoundError{Resource: "site"}
	ErrCandidateNotFound = &NotFoundError{Resource: "ad"}
	ErrOutcomeNotFound   = &NotFoundError{Resource: "outcome"}
)

// CampaignNotFound builds a NotFoundError for a campaign id.
func CampaignNotFound(id int64) error { return &NotFoundError{Resource: "campaign", ID: id} }

// AdUnitNotFound builds a NotFoundError for an ad unit id.
func AdUnitNotFound(id int64) error { return &NotFoundError{Resource: "ad unit", ID: id} }

// SiteNotFound builds a NotFoundError for a site id.
func SiteNotFound(id int64) error { return &NotFoundError{Resource: "site", ID: id} }

// CandidateNotFound builds a NotFoundError for an ad id.
func CandidateNotFound(id int64) error { return &NotFoundError{Resource: "ad", ID: id} }

// OutcomeNotFound builds a NotFoundError for a request id.
func OutcomeNotFound(requestID string) error {
	return &NotFoundError{Resource: "outcome", Key: requestID}
}

// FieldViolation is one failed validation rule.
type FieldViolation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// ValidationError aggregates every violation found in a request.
type ValidationError struct {
	Violations []FieldViolation `json:"violations"`
}

// Missing lists the fields that failed the "required" rule.
func (e *ValidationError) Missing() []string {
	var out []string
	for _, v := range e.Violations {
		if v.Rule == "required" {
			out = append(out, v.Field)
		}
	}
	return out
}

func (e *ValidationError) Error() string {
	var (
		missing = e.Missing()
		invalid []string
	)
	for _, v := range e.Violations {
		if v.Rule != "required" {
			invalid = append(invalid, fmt.Sprintf("%s (%s)", v.Field, v.Rule))
		}
	}
	parts := make([]string, 0, 2)
	if len(missing) > 0 {
		parts = append(parts, "missing required fields: "+strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		parts = append(parts, "invalid fields: "+strings.Join(invalid, ", "))
	}
	if len(parts) == 0 {
		return "validation failed"
	}
	return strings.Join(parts, "; ")
}
