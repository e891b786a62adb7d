package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierBoundariesAreExact(t *testing.T) {
	cases := []struct {
		score int
		tier  string
		badge string
	}{
		{100, TierElite, "🏆"},
		{90, TierElite, "🏆"},
		{89, TierPremium, "⭐"},
		{75, TierPremium, "⭐"},
		{74, TierGood, "✓"},
		{60, TierGood, "✓"},
		{59, TierFair, "○"},
		{40, TierFair, "○"},
		{39, TierPoor, "⚠"},
		{0, TierPoor, "⚠"},
	}
	for _, tc := range cases {
		tier, badge := TierForScore(tc.score)
		assert.Equal(t, tc.tier, tier, "score=%d", tc.score)
		assert.Equal(t, tc.badge, badge, "score=%d", tc.score)
	}
}
