package suggest

import (
	"sort"

	"github.com/j0ey1992/Carehomedashboard-sub000/pkg/core/model"
)

// Request asks for a ranking of candidates to fill one open role slot on a
// shift.
type Request struct {
	Rota    *model.Rota
	Shift   *model.Shift
	Role    model.Role
	Staff   []model.Staff
	Options Options
}

// Candidate is one ranked staff member with their fitness for the slot.
type Candidate struct {
	StaffID string
	Name    string
	Score   float64
	Reasons []string
}

// Suggestion is the ranked answer for one open slot. Scores maps staff id to
// the raw per-criterion evaluations behind their total. Reasons and
// Confidence describe the top candidate.
type Suggestion struct {
	ShiftID    string
	Role       model.Role
	Candidates []Candidate
	Confidence float64
	Reasons    []string
	Scores     map[string]map[string]float64
}

// Rank scores every eligible candidate for the slot and returns them sorted
// best first. The result is fully deterministic: identical input produces an
// identical ranking, identical reasons, and identical confidence. Ties break
// by staff id.
//
// Eligible means active, not already on the shift, and not marked
// unavailable on the shift's date. Gating criteria then drop candidates
// without the role (and, unless overtime staffing is allowed, candidates the
// shift would push past contracted hours).
func Rank(req Request) *Suggestion {
	criteria := CriteriaFor(req.Options)
	ctx := Context{Rota: req.Rota, Shift: req.Shift, Role: req.Role}

	pool := make([]model.Staff, len(req.Staff))
	copy(pool, req.Staff)
	sort.Slice(pool, func(i, j int) bool { return pool[i].ID < pool[j].ID })

	positiveWeight := 0.0
	for _, criterion := range criteria {
		if criterion.Weight() > 0 {
			positiveWeight += criterion.Weight()
		}
	}

	suggestion := &Suggestion{
		ShiftID: req.Shift.ID,
		Role:    req.Role,
		Scores:  make(map[string]map[string]float64),
	}

	for _, candidate := range pool {
		if !eligible(req.Shift, candidate) {
			continue
		}

		scores := make(map[string]float64, len(criteria))
		total := 0.0
		gated := false
		var reasons []string

		for _, criterion := range criteria {
			score := criterion.Score(ctx, candidate)
			if criterion.Gate() && score == 0 {
				gated = true
				break
			}
			scores[criterion.Name()] = score
			total += score * criterion.Weight()
			if reason, ok := criterion.Reason(ctx, candidate, score); ok {
				reasons = append(reasons, reason)
			}
		}
		if gated {
			continue
		}

		normalized := total
		if positiveWeight > 0 {
			normalized = total / positiveWeight
		}

		suggestion.Scores[candidate.ID] = scores
		suggestion.Candidates = append(suggestion.Candidates, Candidate{
			StaffID: candidate.ID,
			Name:    candidate.FullName(),
			Score:   normalized,
			Reasons: reasons,
		})
	}

	sort.SliceStable(suggestion.Candidates, func(i, j int) bool {
		if suggestion.Candidates[i].Score != suggestion.Candidates[j].Score {
			return suggestion.Candidates[i].Score > suggestion.Candidates[j].Score
		}
		return suggestion.Candidates[i].StaffID < suggestion.Candidates[j].StaffID
	})

	if len(suggestion.Candidates) > 0 {
		top := suggestion.Candidates[0]
		suggestion.Confidence = clip01(top.Score)
		suggestion.Reasons = top.Reasons
	}

	return suggestion
}

// eligible filters the raw staff pool down to candidates worth scoring.
func eligible(shift *model.Shift, candidate model.Staff) bool {
	if !candidate.IsActive() {
		return false
	}
	if shift.HasStaff(candidate.ID) {
		return false
	}
	if candidate.Preferences.UnavailableOn(shift.Date) {
		return false
	}
	return true
}

func clip01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
