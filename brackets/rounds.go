package brackets

// AssignRounds numbers the rounds inside each section: a match with no
// parent in its own section is round 1, otherwise one more than its deepest
// same-section parent. Parents are the matches named by winner/loser
// references. A reference cycle is cut by treating the re-entered match as
// round 1.
func AssignRounds(matches []*PlayoffMatch) {
	byNum := indexByNum(matches)
	memo := make(map[string]int, len(matches))
	visiting := make(map[string]bool)

	var roundOf func(pm *PlayoffMatch) int
	roundOf = func(pm *PlayoffMatch) int {
		if r, ok := memo[pm.Key]; ok {
			return r
		}
		if visiting[pm.Key] {
			return 1
		}
		visiting[pm.Key] = true
		defer delete(visiting, pm.Key)

		round := 1
		for _, ref := range []SourceRef{pm.Home, pm.Away} {
			if !ref.IsMatchRef() {
				continue
			}
			i, ok := byNum[ref.N]
			if !ok {
				continue
			}
			parent := matches[i]
			if parent == pm || parent.Section != pm.Section {
				continue
			}
			if r := roundOf(parent) + 1; r > round {
				round = r
			}
		}
		memo[pm.Key] = round
		return round
	}

	for _, pm := range matches {
		pm.Round = roundOf(pm)
	}
}

// Prepare runs classification and round assignment over matches in place.
func Prepare(matches []*PlayoffMatch) {
	Classify(matches)
	AssignRounds(matches)
}
