package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elementa/backend/internal/app/content"
)

func TestDominantDistribution(t *testing.T) {
	t.Run("absent elements appear at zero", func(t *testing.T) {
		dist := dominantDistribution(map[string]int64{"fiery": 12, "aquatic": 3})

		require.Len(t, dist, len(content.ElementSlugs))
		assert.Equal(t, int64(12), dist["fiery"])
		assert.Equal(t, int64(3), dist["aquatic"])
		assert.Equal(t, int64(0), dist["electric"])
		assert.Equal(t, int64(0), dist["metallic"])
	})

	t.Run("empty input gives all zeroes", func(t *testing.T) {
		dist := dominantDistribution(map[string]int64{})
		require.Len(t, dist, len(content.ElementSlugs))
		for _, slug := range content.ElementSlugs {
			assert.Zero(t, dist[slug], slug)
		}
	})
}
