package scheduler

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/model"
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/suggest"
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/validator"
)

// Config contains the inputs for one generation run.
type Config struct {
	// Rota is the draft to fill. Generation mutates it in place; existing
	// manual assignments are kept and scheduled around.
	Rota *model.Rota

	// Staff is the pool of candidates to draw from.
	Staff []model.Staff

	// Prior is the preceding week's rota, when the caller has it. Rest and
	// consecutive-day rules then hold across the week boundary.
	Prior *validator.PriorWeek

	// Options select which soft criteria score candidates. They never
	// change the fill order or the hard rules.
	Options suggest.Options

	// Actor is recorded on every assignment the run commits.
	Actor string

	// Now is the timestamp stamped on committed assignments.
	Now time.Time

	// NewID mints assignment identifiers. Left nil, it defaults to random
	// UUIDs; tests inject a counter for stable output.
	NewID func() string
}

// UnfilledSlot is one role on one shift the generator could not staff.
type UnfilledSlot struct {
	ShiftID   string
	Date      string
	Slot      model.Slot
	Role      model.Role
	Remaining int
	Reason    string
}

// Outcome reports what a generation run did.
type Outcome struct {
	// Assigned is the number of assignments this run committed.
	Assigned int

	// Unfilled lists every slot left short, in fill order. An unfillable
	// slot is reported, never an error.
	Unfilled []UnfilledSlot

	// Complete is true when every shift ended the run fully staffed.
	Complete bool

	// Violations is the validation report for the final rota state.
	// Warnings can survive a successful run; errors mean the rota still
	// needs attention.
	Violations []validator.Violation
}

// Generate fills the rota's open slots with the best available candidates.
//
// Shifts fill in week order, earliest date then earliest slot start, and
// within each shift specialist roles fill before general ones. Each slot is
// ranked fresh against the current rota state, so every committed assignment
// feeds into the next decision. Candidates that would break a hard rule
// (double-booking, minimum rest, consecutive-day limits, the weekly hours
// cap) are passed over no matter how well they score.
//
// A slot nobody can fill is recorded in the outcome and left open. The rota
// is always returned in a usable state.
func Generate(cfg Config) (*Outcome, error) {
	if cfg.Rota == nil {
		return nil, errors.New("no rota to generate")
	}
	newID := cfg.NewID
	if newID == nil {
		newID = uuid.NewString
	}

	outcome := &Outcome{}

	// Step 1: fill every open slot in the fixed order.
	for _, shift := range cfg.Rota.SortedShifts() {
		for _, role := range model.FillOrder() {
			if !shift.RequiresRole(role) {
				continue
			}
			if err := fillRole(cfg, shift, role, newID, outcome); err != nil {
				return nil, err
			}
		}
	}

	// Step 2: report on the final state.
	outcome.Complete = len(outcome.Unfilled) == 0
	outcome.Violations = validator.Validate(validator.Input{
		Rota:  cfg.Rota,
		Staff: model.StaffByID(cfg.Staff),
		Prior: cfg.Prior,
	})
	return outcome, nil
}

// fillRole commits candidates into one shift's role until it is filled or
// nobody suitable remains.
func fillRole(cfg Config, shift *model.Shift, role model.Role, newID func() string, outcome *Outcome) error {
	for shift.RemainingForRole(role) > 0 {
		// Rank against the rota as it stands right now.
		suggestion := suggest.Rank(suggest.Request{
			Rota:    cfg.Rota,
			Shift:   shift,
			Role:    role,
			Staff:   cfg.Staff,
			Options: cfg.Options,
		})

		picked := false
		for _, candidate := range suggestion.Candidates {
			staff := staffByID(cfg.Staff, candidate.StaffID)
			if violatesHardConstraint(cfg.Rota, cfg.Prior, shift, staff) {
				continue
			}
			if _, err := shift.Assign(newID(), staff.ID, role, cfg.Actor, cfg.Now); err != nil {
				return fmt.Errorf("failed to assign %s to shift %s: %w", staff.ID, shift.ID, err)
			}
			outcome.Assigned++
			picked = true
			break
		}

		if !picked {
			outcome.Unfilled = append(outcome.Unfilled, UnfilledSlot{
				ShiftID:   shift.ID,
				Date:      shift.Date,
				Slot:      shift.Slot,
				Role:      role,
				Remaining: shift.RemainingForRole(role),
				Reason:    unfilledReason(suggestion, role),
			})
			return nil
		}
	}
	return nil
}

func unfilledReason(suggestion *suggest.Suggestion, role model.Role) string {
	if len(suggestion.Candidates) == 0 {
		return fmt.Sprintf("no available staff hold the %s role", role)
	}
	return fmt.Sprintf("every available %s would break a scheduling rule", role)
}

func staffByID(staff []model.Staff, id string) model.Staff {
	for _, s := range staff {
		if s.ID == id {
			return s
		}
	}
	return model.Staff{ID: id}
}
