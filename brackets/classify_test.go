package brackets

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/Dosada05/volleyball-league/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyDoubleElimination(t *testing.T) {
	matches, metas := doubleElimination()
	combined := Combine(matches, metas)
	Classify(combined)

	want := map[int]Section{
		1: SectionWinners,
		2: SectionWinners,
		3: SectionWinners,
		4: SectionLosers,
		5: SectionLosers,
		6: SectionChampionship,
		7: SectionChampionship,
	}
	got := make(map[int]Section)
	for num, pm := range byNumber(combined) {
		got[num] = pm.Section
	}
	assert.Equal(t, want, got)
}

func TestClassifyResetIgnoresLabel(t *testing.T) {
	reset := meta(9, "W5", "L5")
	reset.Bracket = ptr("winners")
	swapped := meta(10, "L9", "W9")
	swapped.Bracket = ptr("losers")

	combined := Combine(nil, []models.BracketMeta{reset, swapped})
	Classify(combined)

	for _, pm := range combined {
		assert.Equal(t, SectionChampionship, pm.Section, "match %d", *pm.MatchNum())
	}
}

func TestClassifyUsesMetadataLabel(t *testing.T) {
	m := meta(1, "X", "Y")
	m.Bracket = ptr(" Losers ")
	other := meta(2, "W1", "")

	combined := Combine(nil, []models.BracketMeta{m, other})
	Classify(combined)

	nums := byNumber(combined)
	assert.Equal(t, SectionLosers, nums[1].Section)
	assert.Equal(t, SectionLosers, nums[2].Section, "adopts the section of the referenced match")
}

func TestClassifyFallsBackToWinners(t *testing.T) {
	combined := Combine(nil, []models.BracketMeta{meta(1, "???", ""), meta(2, "W7", "")})
	Classify(combined)
	for _, pm := range combined {
		assert.Equal(t, SectionWinners, pm.Section)
	}
}

func TestClassifyLongChainSettles(t *testing.T) {
	// Each pass moves the losers section one step down this chain, so it
	// needs more passes than the minimum budget.
	const n = 20
	metas := make([]models.BracketMeta, 0, n)
	lead := meta(n, "L99", "")
	metas = append(metas, lead)
	for i := n - 1; i >= 1; i-- {
		metas = append(metas, meta(i, fmt.Sprintf("W%d", i+1), "?"))
	}
	combined := Combine(nil, metas)
	Classify(combined)

	for _, pm := range combined {
		assert.Equal(t, SectionLosers, pm.Section, "match %d", *pm.MatchNum())
	}
}

var tokenPool = []string{"", "S1", "S2", "3", "W1", "W2", "W3", "W4", "W5", "L1", "L2", "L3", "L4", "L5", "junk", "W9"}

func randomBracket(r *rand.Rand) []models.BracketMeta {
	n := 1 + r.Intn(8)
	metas := make([]models.BracketMeta, 0, n)
	for i := 1; i <= n; i++ {
		m := meta(i, tokenPool[r.Intn(len(tokenPool))], tokenPool[r.Intn(len(tokenPool))])
		switch r.Intn(4) {
		case 0:
			m.Bracket = ptr("winners")
		case 1:
			m.Bracket = ptr("losers")
		case 2:
			m.Bracket = ptr("consolation")
		}
		metas = append(metas, m)
	}
	return metas
}

func TestClassifyIsTotal(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	valid := map[Section]bool{SectionWinners: true, SectionLosers: true, SectionChampionship: true}
	for i := 0; i < 500; i++ {
		combined := Combine(nil, randomBracket(r))
		Classify(combined)
		for _, pm := range combined {
			require.True(t, valid[pm.Section], "iteration %d match %s got %q", i, pm.Key, pm.Section)
		}
	}
}

func TestPrepareIsIdempotent(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		combined := Combine(nil, randomBracket(r))
		Prepare(combined)
		first := snapshot(combined)
		Prepare(combined)
		require.Equal(t, first, snapshot(combined), "iteration %d", i)
	}
}

func snapshot(matches []*PlayoffMatch) map[string][2]interface{} {
	out := make(map[string][2]interface{}, len(matches))
	for _, pm := range matches {
		out[pm.Key] = [2]interface{}{pm.Section, pm.Round}
	}
	return out
}

func TestPropagationPasses(t *testing.T) {
	assert.Equal(t, minPropagationPasses, propagationPasses(0))
	assert.Equal(t, minPropagationPasses, propagationPasses(8))
	assert.Equal(t, 30, propagationPasses(30))
}
