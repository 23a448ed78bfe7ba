package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummaryKey_Format(t *testing.T) {
	assert.Equal(t, "summary:u1:2024-03", SummaryKey("u1", 2024, 3))
	assert.Equal(t, "summary:u1:2024-12", SummaryKey("u1", 2024, 12))
}

func TestSummaryKey_Deterministic(t *testing.T) {
	assert.Equal(t, SummaryKey("user-a", 2025, 7), SummaryKey("user-a", 2025, 7))
}

func TestSummaryKey_DistinctInputsDistinctKeys(t *testing.T) {
	keys := map[string]bool{}
	for _, user := range []string{"u1", "u2"} {
		for year := 2023; year <= 2025; year++ {
			for month := 1; month <= 12; month++ {
				keys[SummaryKey(user, year, month)] = true
			}
		}
	}
	assert.Len(t, keys, 2*3*12)
}

func TestSummaryKey_ZeroPadsMonth(t *testing.T) {
	// Without padding, (2024, 1) and (2024, 11) could collide with
	// differently-split user ids; the fixed width keeps keys injective.
	assert.Equal(t, "summary:u1:2024-01", SummaryKey("u1", 2024, 1))
	assert.NotEqual(t, SummaryKey("u1", 2024, 1), SummaryKey("u1", 2024, 11))
}
