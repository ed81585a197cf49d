// Package quoteform models the site's event quote wizard: one mutable
// submission record plus a step index, mutated field-by-field and gated by
// per-step validity. Embedding clients (the site, CLI tooling, tests) drive
// it exactly like the browser form drives its state.
package quoteform

import (
	"strconv"
	"strings"

	"github.com/profefranko/profefranko-api/internal/models"
)

const (
	FirstStep = 1
	LastStep  = 4
)

// Quote holds the wizard state for one quote in progress.
type Quote struct {
	record models.EventQuoteSubmission
	step   int
}

// NewQuote creates an empty quote with the wizard's initial defaults:
// one fight and a professional ring. These defaults exist only here; the
// server trusts whatever payload is posted.
func NewQuote() *Quote {
	return &Quote{
		record: models.EventQuoteSubmission{
			NumberOfFights:     1,
			RingNeeded:         true,
			EquipmentNeeded:    []string{},
			AdditionalServices: []string{},
		},
		step: FirstStep,
	}
}

// Record returns a copy of the current submission record.
func (q *Quote) Record() models.EventQuoteSubmission {
	return q.record
}

// CurrentStep returns the wizard step index, always within [1, 4].
func (q *Quote) CurrentStep() int {
	return q.step
}

// SetField sets exactly one field from its control value. Numeric fields
// parse the input as an integer, coercing invalid input to 0. Boolean and
// set-valued fields have their own operations and are ignored here.
func (q *Quote) SetField(name, value string) {
	switch name {
	case "client_name":
		q.record.ClientName = value
	case "client_email":
		q.record.ClientEmail = value
	case "client_phone":
		q.record.ClientPhone = value
	case "event_date":
		q.record.EventDate = value
	case "event_time":
		q.record.EventTime = value
	case "event_type":
		q.record.EventType = models.EventType(value)
	case "number_of_fights":
		q.record.NumberOfFights = parseIntOrZero(value)
	case "expected_attendance":
		q.record.ExpectedAttendance = parseIntOrZero(value)
	case "budget_range":
		q.record.BudgetRange = value
	case "venue_name":
		q.record.VenueName = value
	case "venue_address":
		q.record.VenueAddress = value
	case "special_requirements":
		q.record.SpecialRequirements = value
	}
}

// SetBool sets a boolean-backed control from its checked state.
func (q *Quote) SetBool(name string, value bool) {
	if name == "ring_needed" {
		q.record.RingNeeded = value
	}
}

// ToggleMember inserts value into a set-valued field if absent, removes it
// if present, and returns the mutated set. Toggling twice restores the set.
func (q *Quote) ToggleMember(field, value string) []string {
	var set *[]string
	switch field {
	case "equipment_needed":
		set = &q.record.EquipmentNeeded
	case "additional_services":
		set = &q.record.AdditionalServices
	default:
		return nil
	}

	for i, member := range *set {
		if member == value {
			*set = append((*set)[:i], (*set)[i+1:]...)
			return *set
		}
	}
	*set = append(*set, value)
	return *set
}

// AdvanceStep moves to the next step if the current one is valid. The index
// never leaves [1, 4].
func (q *Quote) AdvanceStep() {
	if q.step < LastStep && q.StepValid(q.step) {
		q.step++
	}
}

// RetreatStep moves to the previous step; there is nothing to validate when
// going backwards.
func (q *Quote) RetreatStep() {
	if q.step > FirstStep {
		q.step--
	}
}

// StepValid reports whether the given step's required fields are filled.
// Step 4 has no required fields, so it (and any out-of-range index) is
// always valid.
func (q *Quote) StepValid(step int) bool {
	switch step {
	case 1:
		return strings.TrimSpace(q.record.ClientName) != "" &&
			strings.TrimSpace(q.record.ClientEmail) != "" &&
			strings.TrimSpace(q.record.ClientPhone) != ""
	case 2:
		return q.record.EventDate != "" &&
			q.record.EventTime != "" &&
			q.record.EventType != "" &&
			q.record.NumberOfFights > 0 &&
			q.record.ExpectedAttendance >= 0 &&
			q.record.BudgetRange != ""
	case 3:
		return strings.TrimSpace(q.record.VenueName) != "" &&
			strings.TrimSpace(q.record.VenueAddress) != ""
	default:
		return true
	}
}

// CanSubmit reports whether the wizard sits on the final step with every
// preceding step valid.
func (q *Quote) CanSubmit() bool {
	if q.step != LastStep {
		return false
	}
	for step := FirstStep; step < LastStep; step++ {
		if !q.StepValid(step) {
			return false
		}
	}
	return true
}

// Reset restores the initial wizard state after a successful submission.
func (q *Quote) Reset() {
	*q = *NewQuote()
}

func parseIntOrZero(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return n
}
