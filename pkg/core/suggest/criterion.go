package suggest

import "github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/model"

// Context is the rota state one open slot is scored against.
type Context struct {
	Rota  *model.Rota
	Shift *model.Shift
	Role  model.Role
}

// Criterion scores one facet of putting a candidate into an open slot.
//
// Score returns a normalized value: positive criteria score in [0, 1],
// penalties in [-1, 0]. Weight scales the contribution to the weighted sum.
// A gating criterion excludes any candidate scoring zero from the ranking
// outright. Reason explains a score that materially contributed; ok is false
// when the score is not worth surfacing.
type Criterion interface {
	Name() string
	Weight() float64
	Gate() bool
	Score(ctx Context, candidate model.Staff) float64
	Reason(ctx Context, candidate model.Staff, score float64) (reason string, ok bool)
}

// Options name the independently toggleable scoring effects. Each switch
// changes which criteria join the weighted sum and nothing else; in
// particular the generator's fill order never depends on them.
type Options struct {
	RespectPreferences bool
	PrioritizeFairness bool
	AllowOvertimeStaff bool
}

// DefaultOptions honors preferences and fairness and keeps staff inside
// their contracted hours.
func DefaultOptions() Options {
	return Options{
		RespectPreferences: true,
		PrioritizeFairness: true,
		AllowOvertimeStaff: false,
	}
}

// CriteriaFor assembles the criterion set the options select. Role match
// always gates; the overtime gate joins only while overtime staffing is
// disallowed.
func CriteriaFor(opts Options) []Criterion {
	criteria := []Criterion{NewRoleMatchCriterion(WeightRoleMatch)}
	if opts.RespectPreferences {
		criteria = append(criteria, NewPreferenceCriterion(WeightPreference))
	}
	criteria = append(criteria, NewFatigueCriterion(WeightFatigue))
	if opts.PrioritizeFairness {
		criteria = append(criteria, NewFairnessCriterion(WeightFairness))
	}
	criteria = append(criteria, NewPerformanceCriterion(WeightPerformance))
	if !opts.AllowOvertimeStaff {
		criteria = append(criteria, NewOvertimeCriterion())
	}
	return criteria
}
