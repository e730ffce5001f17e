package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElements(t *testing.T) {
	t.Run("six elements in canonical order", func(t *testing.T) {
		require.Len(t, Elements, 6)
		require.Len(t, ElementSlugs, 6)
		for i, el := range Elements {
			assert.Equal(t, ElementSlugs[i], el.Slug)
			assert.NotEmpty(t, el.Name)
			assert.NotEmpty(t, el.Tagline)
			assert.NotEmpty(t, el.Description)
			assert.NotEmpty(t, el.Traits)
		}
	})

	t.Run("lookup by slug", func(t *testing.T) {
		el, ok := ElementBySlug("aquatic")
		require.True(t, ok)
		assert.Equal(t, "Aquatic", el.Name)

		_, ok = ElementBySlug("plasma")
		assert.False(t, ok)
	})

	t.Run("IsElementSlug", func(t *testing.T) {
		for _, slug := range ElementSlugs {
			assert.True(t, IsElementSlug(slug), slug)
		}
		assert.False(t, IsElementSlug("Fiery"))
		assert.False(t, IsElementSlug(""))
	})
}

func TestCompatibility(t *testing.T) {
	t.Run("all pairs defined", func(t *testing.T) {
		for i, a := range ElementSlugs {
			for _, b := range ElementSlugs[i:] {
				level, ok := Compatibility(a, b)
				require.True(t, ok, "missing pair %s/%s", a, b)
				assert.GreaterOrEqual(t, level.Score, 0)
				assert.LessOrEqual(t, level.Score, 100)
				assert.NotEmpty(t, level.Label)
			}
		}
	})

	t.Run("symmetric", func(t *testing.T) {
		for _, a := range ElementSlugs {
			for _, b := range ElementSlugs {
				ab, okAB := Compatibility(a, b)
				ba, okBA := Compatibility(b, a)
				require.True(t, okAB)
				require.True(t, okBA)
				assert.Equal(t, ab, ba, "%s/%s", a, b)
			}
		}
	})

	t.Run("unknown slug", func(t *testing.T) {
		_, ok := Compatibility("electric", "plasma")
		assert.False(t, ok)
		_, ok = Compatibility("", "fiery")
		assert.False(t, ok)
	})
}

func TestCompatibilityList(t *testing.T) {
	t.Run("covers all elements in canonical order", func(t *testing.T) {
		entries, ok := CompatibilityList("aquatic")
		require.True(t, ok)
		require.Len(t, entries, len(ElementSlugs))

		for i, entry := range entries {
			assert.Equal(t, ElementSlugs[i], entry.Element)
			assert.NotEmpty(t, entry.Name)

			level, found := Compatibility("aquatic", entry.Element)
			require.True(t, found)
			assert.Equal(t, level.Score, entry.Score)
			assert.Equal(t, level.Label, entry.Label)
		}
	})

	t.Run("unknown slug", func(t *testing.T) {
		_, ok := CompatibilityList("plasma")
		assert.False(t, ok)
	})
}

func TestQuestions(t *testing.T) {
	t.Run("bank size and distribution", func(t *testing.T) {
		require.Len(t, Questions, len(ElementSlugs)*QuestionsPerElement)

		perElement := make(map[string]int)
		seenIDs := make(map[int]bool)
		for _, q := range Questions {
			assert.True(t, IsElementSlug(q.Element), "question %d has unknown element %q", q.ID, q.Element)
			assert.NotEmpty(t, q.Text)
			assert.False(t, seenIDs[q.ID], "duplicate question id %d", q.ID)
			seenIDs[q.ID] = true
			perElement[q.Element]++
		}

		for _, slug := range ElementSlugs {
			assert.Equal(t, QuestionsPerElement, perElement[slug], slug)
		}
	})

	t.Run("lookup by id", func(t *testing.T) {
		q, ok := QuestionByID(9)
		require.True(t, ok)
		assert.Equal(t, "aquatic", q.Element)

		_, ok = QuestionByID(0)
		assert.False(t, ok)
		_, ok = QuestionByID(25)
		assert.False(t, ok)
	})
}
