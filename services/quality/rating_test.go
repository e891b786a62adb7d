package quality

import (
	"testing"

	"goodrunss/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func perfectAttrs() map[string]models.QualityAttributes {
	return map[string]models.QualityAttributes{
		"Basketball": models.BasketballCourtQuality{
			RimQuality: 5, HasNets: true, Slipperiness: 0,
			Lighting: 5, BackboardCondition: 5, LineVisibility: 5, SingleRim: true,
		},
		"Golf": models.GolfCourseQuality{
			Patchiness: 0, GrassQuality: 5, GreenSpeed: 5,
			BunkerCondition: 5, FairwayCondition: 5, Drainage: 5,
		},
		"Tennis": models.TennisCourtQuality{
			Surface: models.SurfaceHard, SurfaceCondition: 5, NetCondition: 5,
			LineVisibility: 5, Lighting: 5, Fencing: 5,
		},
		"Yoga": models.StudioQuality{
			Cleanliness: 5, EquipmentQuality: 5, Flooring: 5,
			TemperatureControl: 5, Ambiance: 5, Spacing: 5,
		},
		"Soccer": models.SoccerFieldQuality{
			FieldCondition: 5, TurfQuality: 5, GoalQuality: 5,
			LineVisibility: 5, Drainage: 5, Lighting: 5,
		},
	}
}

func worstAttrs() map[string]models.QualityAttributes {
	return map[string]models.QualityAttributes{
		"Basketball": models.BasketballCourtQuality{
			RimQuality: 1, HasNets: false, Slipperiness: 1,
			Lighting: 1, BackboardCondition: 1, LineVisibility: 1, SingleRim: false,
		},
		"Golf": models.GolfCourseQuality{
			Patchiness: 1, GrassQuality: 1, GreenSpeed: 1,
			BunkerCondition: 1, FairwayCondition: 1, Drainage: 1,
		},
		"Tennis": models.TennisCourtQuality{
			Surface: models.SurfaceClay, SurfaceCondition: 1, NetCondition: 1,
			LineVisibility: 1, Lighting: 1, Fencing: 1,
		},
		"Pilates": models.StudioQuality{
			Cleanliness: 1, EquipmentQuality: 1, Flooring: 1,
			TemperatureControl: 1, Ambiance: 1, Spacing: 1,
		},
		"Soccer": models.SoccerFieldQuality{
			FieldCondition: 1, TurfQuality: 1, GoalQuality: 1,
			LineVisibility: 1, Drainage: 1, Lighting: 1,
		},
	}
}

func TestPerfectVenueScoresMaxAndTiersElite(t *testing.T) {
	// Basketball's weight table sums to 90, so that is its ceiling; every
	// other schema reaches 100.
	maxBySport := map[string]int{
		"Basketball": 90,
		"Golf":       100,
		"Tennis":     100,
		"Yoga":       100,
		"Soccer":     100,
	}
	for sport, attrs := range perfectAttrs() {
		rating := CalculateRating(sport, attrs, 0)
		assert.Equal(t, maxBySport[sport], rating.OverallScore, "sport %s", sport)
		assert.Equal(t, models.TierElite, rating.Tier, "sport %s", sport)
		assert.Equal(t, "🏆", rating.Badge, "sport %s", sport)
	}
}

func TestReviewBonusNeverPushesPast100(t *testing.T) {
	for sport, attrs := range perfectAttrs() {
		base := CalculateRating(sport, attrs, 0).OverallScore
		boosted := CalculateRating(sport, attrs, 500).OverallScore
		assert.LessOrEqual(t, boosted, 100, "sport %s", sport)
		assert.Equal(t, min(base+5, 100), boosted, "sport %s", sport)
	}
}

func TestWorstVenueIsPoor(t *testing.T) {
	// With every numeric sub-score at 1 and booleans in their worst state,
	// inverted attributes contribute (5-1) points per weight unit and the
	// rest contribute 1.
	expected := map[string]int{
		"Basketball": 24, // 4 + 0 + 12 + 3 + 3 + 2 + 0
		"Golf":       32, // 16 + 4 + 3 + 3 + 3 + 3
		"Tennis":     20, // 5 + 4 + 4 + 4 + 3
		"Pilates":    20, // 5 + 4 + 3 + 3 + 3 + 2
		"Soccer":     20, // 5 + 4 + 3 + 3 + 3 + 2
	}
	for sport, attrs := range worstAttrs() {
		rating := CalculateRating(sport, attrs, 0)
		require.Equal(t, expected[sport], rating.OverallScore, "sport %s", sport)
		assert.Equal(t, models.TierPoor, rating.Tier, "sport %s", sport)
		assert.Equal(t, "⚠", rating.Badge, "sport %s", sport)
	}
}

func TestReliabilityBonusMonotonicAndSaturating(t *testing.T) {
	// All 4s on a studio schema normalizes to exactly 80.
	attrs := models.StudioQuality{
		Cleanliness: 4, EquipmentQuality: 4, Flooring: 4,
		TemperatureControl: 4, Ambiance: 4, Spacing: 4,
	}

	cases := []struct {
		reviews int
		want    int
	}{
		{0, 80},
		{10, 81},
		{25, 83}, // 2.5 rounds up
		{50, 85},
		{500, 85}, // saturates at 5 extra points
	}
	for _, tc := range cases {
		rating := CalculateRating("Yoga", attrs, tc.reviews)
		assert.Equal(t, tc.want, rating.OverallScore, "reviews=%d", tc.reviews)
	}
}

func TestStudioModalitiesShareOneSchema(t *testing.T) {
	attrs := perfectAttrs()["Yoga"]
	for _, sport := range []string{"Pilates", "Yoga", "Lagree", "Barre", "Meditation"} {
		rating := CalculateRating(sport, attrs, 0)
		assert.Equal(t, 100, rating.OverallScore, "sport %s", sport)
	}
}

func TestUnsupportedSportFallsBackToNeutralDefault(t *testing.T) {
	rating := CalculateRating("Curling", nil, 0)
	assert.Equal(t, 75, rating.OverallScore)
	assert.Equal(t, 100, rating.MaxScore)
	assert.Equal(t, models.TierGood, rating.Tier)
	assert.Equal(t, "✓", rating.Badge)
}

func TestMismatchedAttributesFallBackToNeutralDefault(t *testing.T) {
	// Basketball sport with a golf record is bad taxonomy data, not a crash.
	rating := CalculateRating("Basketball", models.GolfCourseQuality{GrassQuality: 5}, 0)
	assert.Equal(t, 75, rating.OverallScore)
	assert.Equal(t, models.TierGood, rating.Tier)
}

func TestOutOfRangeSubScoresAreClamped(t *testing.T) {
	attrs := models.StudioQuality{
		Cleanliness: 99, EquipmentQuality: -3, Flooring: 5,
		TemperatureControl: 5, Ambiance: 5, Spacing: 5,
	}
	// Cleanliness clamps to 5 (25 pts), EquipmentQuality to 0 (0 pts).
	rating := CalculateRating("Pilates", attrs, 0)
	assert.Equal(t, 80, rating.OverallScore)
}

func TestRatingIsEphemeral(t *testing.T) {
	attrs := perfectAttrs()["Tennis"]
	a := CalculateRating("Tennis", attrs, 3)
	b := CalculateRating("Tennis", attrs, 3)
	assert.Equal(t, a.OverallScore, b.OverallScore)
	assert.False(t, a.LastUpdated.IsZero())
	assert.False(t, b.LastUpdated.Before(a.LastUpdated))
}
