package suggest

const (
	// WeightRoleMatch is the weight of holding the slot's role. The role
	// criterion also gates, so it mostly anchors the score scale.
	WeightRoleMatch = 1.0

	// WeightPreference is the weight of slot-type and site preference
	// alignment.
	WeightPreference = 0.8

	// WeightFatigue is the weight of the consecutive-days-worked penalty.
	// The criterion scores negatively, so a higher weight pushes tired
	// staff further down the ranking.
	WeightFatigue = 0.6

	// WeightFairness is the weight of the under-scheduled bonus. Staff with
	// spare contracted hours rank higher so work spreads across the team.
	WeightFairness = 0.8

	// WeightPerformance is the weight of the blended attendance and
	// punctuality record.
	WeightPerformance = 0.5
)
