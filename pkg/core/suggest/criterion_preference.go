package suggest

import (
	"fmt"
	"strings"

	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/model"
)

// PreferenceCriterion scores how well the slot lines up with the candidate's
// shift-type and site preferences.
//
// Score:
//   - slot part: 1.0 for a preferred slot, 0.5 when no slot preference is
//     recorded, 0 for a slot they would rather not work
//   - a nights-only worker scores 1.0 on night slots and 0 on day slots
//   - site part: same scale against the rota's site
//   - the two parts average to the final score
type PreferenceCriterion struct {
	weight float64
}

func NewPreferenceCriterion(weight float64) *PreferenceCriterion {
	return &PreferenceCriterion{weight: weight}
}

func (c *PreferenceCriterion) Name() string {
	return "Preference"
}

func (c *PreferenceCriterion) Weight() float64 {
	return c.weight
}

func (c *PreferenceCriterion) Gate() bool {
	return false
}

func (c *PreferenceCriterion) Score(ctx Context, candidate model.Staff) float64 {
	return (c.slotScore(ctx, candidate) + c.siteScore(ctx, candidate)) / 2
}

func (c *PreferenceCriterion) slotScore(ctx Context, candidate model.Staff) float64 {
	prefs := candidate.Preferences
	if prefs.NightsOnly {
		if ctx.Shift.Slot.Classification() == model.ShiftTypeNight {
			return 1.0
		}
		return 0
	}
	if len(prefs.PreferredSlots) == 0 {
		return 0.5
	}
	if prefs.PrefersSlot(ctx.Shift.Slot) {
		return 1.0
	}
	return 0
}

func (c *PreferenceCriterion) siteScore(ctx Context, candidate model.Staff) float64 {
	prefs := candidate.Preferences
	if len(prefs.PreferredSites) == 0 {
		return 0.5
	}
	if prefs.PrefersSite(ctx.Rota.Site) {
		return 1.0
	}
	return 0
}

func (c *PreferenceCriterion) Reason(ctx Context, candidate model.Staff, score float64) (string, bool) {
	var parts []string
	prefs := candidate.Preferences
	if prefs.NightsOnly && ctx.Shift.Slot.Classification() == model.ShiftTypeNight {
		parts = append(parts, "nights-only worker")
	} else if prefs.PrefersSlot(ctx.Shift.Slot) {
		parts = append(parts, fmt.Sprintf("prefers %s shifts", strings.ToLower(string(ctx.Shift.Slot))))
	}
	if prefs.PrefersSite(ctx.Rota.Site) {
		parts = append(parts, fmt.Sprintf("prefers the %s site", ctx.Rota.Site))
	}
	if len(parts) == 0 || score <= 0.5 {
		return "", false
	}
	return strings.Join(parts, " and "), true
}
