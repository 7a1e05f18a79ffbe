package brackets

// minPropagationPasses is the historical pass budget; brackets with more
// matches than this get one pass per match, which is enough for the longest
// dependency chain to settle.
const minPropagationPasses = 8

// Classify assigns every match to the winners, losers or championship
// section. It runs a seeding pass from tokens and metadata labels, propagates
// sections along winner/loser references until nothing changes, then defaults
// whatever is still unclassified. Any previous classification is discarded.
func Classify(matches []*PlayoffMatch) {
	byNum := indexByNum(matches)

	for _, pm := range matches {
		pm.Section = seedSection(pm)
	}

	passes := propagationPasses(len(matches))
	for pass := 0; pass < passes; pass++ {
		changed := false
		for _, pm := range matches {
			next := propagateSection(pm, matches, byNum)
			if next != SectionUnclassified && next != pm.Section {
				pm.Section = next
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	for _, pm := range matches {
		if pm.Section == SectionUnclassified {
			pm.Section = fallbackSection(pm)
		}
	}
}

func propagationPasses(n int) int {
	if n > minPropagationPasses {
		return n
	}
	return minPropagationPasses
}

func seedSection(pm *PlayoffMatch) Section {
	if isResetPair(pm.Home, pm.Away) {
		return SectionChampionship
	}
	if label := pm.metaLabel(); label != SectionUnclassified {
		return label
	}
	if pm.Home.Kind == RefLoser || pm.Away.Kind == RefLoser {
		return SectionLosers
	}
	if pm.Home.IsDirect() || pm.Away.IsDirect() {
		return SectionWinners
	}
	return SectionUnclassified
}

// propagateSection returns the section implied by the match's references
// and the current sections of the matches they point at, or unclassified
// when nothing can be inferred this pass.
func propagateSection(pm *PlayoffMatch, matches []*PlayoffMatch, byNum map[int]int) Section {
	if isResetPair(pm.Home, pm.Away) {
		return SectionChampionship
	}
	if pm.Home.Kind == RefLoser || pm.Away.Kind == RefLoser {
		return SectionLosers
	}

	var sawWinners, sawLosers bool
	var agreed Section
	mixed := false
	for _, ref := range []SourceRef{pm.Home, pm.Away} {
		if !ref.IsMatchRef() {
			continue
		}
		i, ok := byNum[ref.N]
		if !ok {
			continue
		}
		sec := matches[i].Section
		if sec == SectionUnclassified {
			continue
		}
		switch sec {
		case SectionWinners:
			sawWinners = true
		case SectionLosers:
			sawLosers = true
		}
		if agreed == SectionUnclassified {
			agreed = sec
		} else if agreed != sec {
			mixed = true
		}
	}

	switch {
	case sawWinners && sawLosers:
		return SectionChampionship
	case agreed != SectionUnclassified && !mixed:
		return agreed
	case pm.Home.IsDirect() || pm.Away.IsDirect():
		return SectionWinners
	}
	return SectionUnclassified
}

func fallbackSection(pm *PlayoffMatch) Section {
	if isResetPair(pm.Home, pm.Away) {
		return SectionChampionship
	}
	if pm.Home.Kind == RefLoser || pm.Away.Kind == RefLoser {
		return SectionLosers
	}
	return SectionWinners
}
