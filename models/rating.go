package models

import "time"

// Rating tiers, ordered best to worst.
const (
	TierElite   = "Elite"
	TierPremium = "Premium"
	TierGood    = "Good"
	TierFair    = "Fair"
	TierPoor    = "Poor"
)

// VerifiedRating is the GoodRunss-verified quality rating for a venue. It is
// computed on demand and never persisted; LastUpdated is the time of
// computation, not of the underlying condition data.
type VerifiedRating struct {
	OverallScore int       `json:"overallScore"` // 0-100
	MaxScore     int       `json:"maxScore"`     // always 100
	Tier         string    `json:"tier"`
	Badge        string    `json:"badge"`
	ReviewCount  int       `json:"reviewCount"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

// TierForScore maps a final score onto its tier and badge. Thresholds are
// evaluated high to low, first match wins.
func TierForScore(score int) (tier, badge string) {
	switch {
	case score >= 90:
		return TierElite, "🏆"
	case score >= 75:
		return TierPremium, "⭐"
	case score >= 60:
		return TierGood, "✓"
	case score >= 40:
		return TierFair, "○"
	default:
		return TierPoor, "⚠"
	}
}
