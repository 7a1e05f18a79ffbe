package brackets

import (
	"math/rand"
	"testing"

	"github.com/Dosada05/volleyball-league/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignRoundsDoubleElimination(t *testing.T) {
	matches, metas := doubleElimination()
	combined := Combine(matches, metas)
	Prepare(combined)

	want := map[int]int{1: 1, 2: 1, 3: 2, 4: 1, 5: 2, 6: 1, 7: 2}
	got := make(map[int]int)
	for num, pm := range byNumber(combined) {
		got[num] = pm.Round
	}
	assert.Equal(t, want, got)
}

func TestAssignRoundsMonotonic(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 300; i++ {
		combined := Combine(nil, randomBracket(r))
		Prepare(combined)
		nums := byNumber(combined)
		for _, pm := range combined {
			for _, ref := range []SourceRef{pm.Home, pm.Away} {
				parent, ok := nums[ref.N]
				if !ref.IsMatchRef() || !ok || parent == pm || parent.Section != pm.Section {
					continue
				}
				if onCycle(parent, pm, nums) {
					continue
				}
				require.Greater(t, pm.Round, parent.Round, "iteration %d: %s -> %s", i, parent.Key, pm.Key)
			}
		}
	}
}

// onCycle reports whether from can reach to by following same-section
// references backwards, i.e. whether the edge to -> from closes a cycle.
func onCycle(from, to *PlayoffMatch, nums map[int]*PlayoffMatch) bool {
	seen := map[*PlayoffMatch]bool{}
	stack := []*PlayoffMatch{from}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == to {
			return true
		}
		if seen[cur] {
			continue
		}
		seen[cur] = true
		for _, ref := range []SourceRef{cur.Home, cur.Away} {
			if p, ok := nums[ref.N]; ok && ref.IsMatchRef() && p.Section == cur.Section {
				stack = append(stack, p)
			}
		}
	}
	return false
}

func TestAssignRoundsBreaksCycles(t *testing.T) {
	combined := Combine(nil, []models.BracketMeta{
		meta(1, "W2", "S1"),
		meta(2, "W1", "S2"),
		meta(3, "W3", "S3"),
	})
	require.NotPanics(t, func() { Prepare(combined) })

	nums := byNumber(combined)
	assert.Equal(t, 1, nums[3].Round, "self reference is ignored")
	rounds := []int{nums[1].Round, nums[2].Round}
	assert.ElementsMatch(t, []int{2, 3}, rounds)
}

func TestAssignRoundsIgnoresOtherSections(t *testing.T) {
	combined := Combine(nil, []models.BracketMeta{
		meta(1, "S1", "S2"),
		meta(2, "L1", "9"),
	})
	Prepare(combined)
	nums := byNumber(combined)
	assert.Equal(t, SectionWinners, nums[1].Section)
	assert.Equal(t, SectionLosers, nums[2].Section)
	assert.Equal(t, 1, nums[2].Round)
}
