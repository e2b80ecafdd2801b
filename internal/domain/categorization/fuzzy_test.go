package categorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Suggest(t *testing.T) {
	engine := NewEngine([]CategoryRule{
		rule("starbucks", "Food & Drink", MatchContains),
		rule("star", "Misc", MatchContains),
		rule("uber", "Transport", MatchContains),
	})

	t.Run("ranks closer keywords first", func(t *testing.T) {
		suggestions := engine.Suggest("STARBUCKS #4417", 0)
		require.NotEmpty(t, suggestions)

		keywords := make([]string, len(suggestions))
		for i, s := range suggestions {
			keywords[i] = s.Rule.Keyword
		}
		assert.Contains(t, keywords, "starbucks")
		assert.NotContains(t, keywords, "uber")
		for i := 1; i < len(suggestions); i++ {
			assert.LessOrEqual(t, suggestions[i-1].Distance, suggestions[i].Distance)
		}
	})

	t.Run("limit caps the result", func(t *testing.T) {
		suggestions := engine.Suggest("STARBUCKS", 1)
		assert.Len(t, suggestions, 1)
	})

	t.Run("no match yields nothing", func(t *testing.T) {
		assert.Empty(t, engine.Suggest("zzzzqqq", 0))
	})
}
