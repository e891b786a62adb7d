// Package quality computes the GoodRunss-verified rating for a venue from its
// sport-specific condition attributes. The engine is a pure function: it owns
// no state, performs no I/O, and allocates a fresh result per call, so
// concurrent use needs no locking.
package quality

import (
	"math"
	"time"

	"goodrunss/models"
)

// DefaultScore is substituted when the sport has no quality schema. Bad
// taxonomy data must never crash a caller, at the cost of hiding it.
const DefaultScore = 75

// MaxScore is the ceiling of the rating scale.
const MaxScore = 100

// CalculateRating converts raw condition attributes into a 0-100 score, a
// tier and a badge. Each attribute weight is a percentage of the final score,
// pre-scaled against the 1-5 rating domain so a perfect venue lands on the
// sum of its sport's weights. reviewCount feeds a saturating reliability
// bonus; it can rescue a borderline score but never push past 100.
func CalculateRating(sport string, attrs models.QualityAttributes, reviewCount int) models.VerifiedRating {
	normalized, ok := normalizedScore(sport, attrs)
	if !ok {
		return defaultRating(reviewCount)
	}

	final := normalized + reliabilityBonus(reviewCount)
	if final > MaxScore {
		final = MaxScore
	}

	score := int(math.Round(final))
	tier, badge := models.TierForScore(score)
	return models.VerifiedRating{
		OverallScore: score,
		MaxScore:     MaxScore,
		Tier:         tier,
		Badge:        badge,
		ReviewCount:  reviewCount,
		LastUpdated:  time.Now(),
	}
}

// defaultRating is the neutral substitute for an unsupported sport or a
// schema mismatch: a fixed "Good" rating at the default score. The review
// bonus still applies, but the neutral tier does not change with it.
func defaultRating(reviewCount int) models.VerifiedRating {
	final := DefaultScore + reliabilityBonus(reviewCount)
	if final > MaxScore {
		final = MaxScore
	}
	return models.VerifiedRating{
		OverallScore: int(math.Round(final)),
		MaxScore:     MaxScore,
		Tier:         models.TierGood,
		Badge:        "✓",
		ReviewCount:  reviewCount,
		LastUpdated:  time.Now(),
	}
}

// reliabilityBonus grants up to 5 extra points, saturating at 50 reviews.
func reliabilityBonus(reviewCount int) float64 {
	bonus := float64(reviewCount) / 10
	if bonus > 5 {
		bonus = 5
	}
	if bonus < 0 {
		bonus = 0
	}
	return bonus
}

// normalizedScore dispatches on the sport's schema. The second return is
// false when the sport is unsupported or the attributes don't match its
// schema, in which case the caller substitutes the default.
func normalizedScore(sport string, attrs models.QualityAttributes) (float64, bool) {
	switch models.SportCategory(sport) {
	case "Basketball":
		if q, ok := attrs.(models.BasketballCourtQuality); ok {
			return basketballScore(q), true
		}
	case "Golf":
		if q, ok := attrs.(models.GolfCourseQuality); ok {
			return golfScore(q), true
		}
	case "Tennis":
		if q, ok := attrs.(models.TennisCourtQuality); ok {
			return tennisScore(q), true
		}
	case "Studio":
		if q, ok := attrs.(models.StudioQuality); ok {
			return studioScore(q), true
		}
	case "Soccer":
		if q, ok := attrs.(models.SoccerFieldQuality); ok {
			return soccerScore(q), true
		}
	}
	return 0, false
}

// rated contributes rating/5 of the attribute's percentage weight.
func rated(rating int, weight float64) float64 {
	r := clamp(rating)
	return r * weight / 5
}

// inverted contributes (5-rating)/5 of the weight: lower raw is better. A raw
// of 0 (condition absent entirely) earns the full weight.
func inverted(rating int, weight float64) float64 {
	r := clamp(rating)
	return (5 - r) * weight / 5
}

// flag contributes the full weight or nothing.
func flag(present bool, weight float64) float64 {
	if present {
		return weight
	}
	return 0
}

// clamp constrains a raw sub-score to the scoring domain. Out-of-range input
// is a caller contract violation; clamping keeps the result well-defined.
func clamp(rating int) float64 {
	if rating < 0 {
		return 0
	}
	if rating > 5 {
		return 5
	}
	return float64(rating)
}

func basketballScore(q models.BasketballCourtQuality) float64 {
	return rated(q.RimQuality, 20) +
		flag(q.HasNets, 10) +
		inverted(q.Slipperiness, 15) +
		rated(q.Lighting, 15) +
		rated(q.BackboardCondition, 15) +
		rated(q.LineVisibility, 10) +
		flag(q.SingleRim, 5)
}

func golfScore(q models.GolfCourseQuality) float64 {
	return inverted(q.Patchiness, 20) +
		rated(q.GrassQuality, 20) +
		rated(q.GreenSpeed, 15) +
		rated(q.BunkerCondition, 15) +
		rated(q.FairwayCondition, 15) +
		rated(q.Drainage, 15)
}

func tennisScore(q models.TennisCourtQuality) float64 {
	return rated(q.SurfaceCondition, 25) +
		rated(q.NetCondition, 20) +
		rated(q.LineVisibility, 20) +
		rated(q.Lighting, 20) +
		rated(q.Fencing, 15)
}

func studioScore(q models.StudioQuality) float64 {
	return rated(q.Cleanliness, 25) +
		rated(q.EquipmentQuality, 20) +
		rated(q.Flooring, 15) +
		rated(q.TemperatureControl, 15) +
		rated(q.Ambiance, 15) +
		rated(q.Spacing, 10)
}

func soccerScore(q models.SoccerFieldQuality) float64 {
	return rated(q.FieldCondition, 25) +
		rated(q.TurfQuality, 20) +
		rated(q.GoalQuality, 15) +
		rated(q.LineVisibility, 15) +
		rated(q.Drainage, 15) +
		rated(q.Lighting, 10)
}
