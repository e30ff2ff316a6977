package suggest

import (
	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/model"
)

// PerformanceCriterion scores the candidate's track record. Attendance and
// punctuality dominate the blend; completion rate and feedback refine it.
type PerformanceCriterion struct {
	weight float64
}

func NewPerformanceCriterion(weight float64) *PerformanceCriterion {
	return &PerformanceCriterion{weight: weight}
}

func (c *PerformanceCriterion) Name() string {
	return "Performance"
}

func (c *PerformanceCriterion) Weight() float64 {
	return c.weight
}

func (c *PerformanceCriterion) Gate() bool {
	return false
}

func (c *PerformanceCriterion) Score(ctx Context, candidate model.Staff) float64 {
	m := candidate.Metrics
	return 0.4*m.AttendanceRate + 0.4*m.PunctualityRate + 0.1*m.CompletionRate + 0.1*m.FeedbackScore
}

func (c *PerformanceCriterion) Reason(ctx Context, candidate model.Staff, score float64) (string, bool) {
	if score < 0.8 {
		return "", false
	}
	return "strong attendance and punctuality record", true
}
