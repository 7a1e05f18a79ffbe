package brackets

import (
	"context"
	"errors"
	"fmt"
	"math/bits"

	"github.com/Dosada05/volleyball-league/models"
)

const MaxTemplateTeams = 64

var (
	ErrTooFewTeams  = errors.New("not enough teams to generate a bracket (minimum 2)")
	ErrTooManyTeams = fmt.Errorf("too many teams to generate a bracket (maximum %d)", MaxTemplateTeams)
)

type node struct {
	seed     int
	matchNum int
}

func (n node) token() string {
	if n.matchNum > 0 {
		return fmt.Sprintf("W%d", n.matchNum)
	}
	return fmt.Sprintf("S%d", n.seed)
}

type SeededWinnersGenerator struct{}

func NewSeededWinnersGenerator() BracketGenerator {
	return &SeededWinnersGenerator{}
}

func (g *SeededWinnersGenerator) GetName() string {
	return "SeededWinners"
}

// GenerateBracket lays out a seeded winners bracket. Seeds are paired in
// standard order (1 v N, 2 v N-1, ...) in a power-of-two field; seeds without
// an opponent skip round 1 and enter round 2 directly as "S<n>" tokens, the
// shape the synthesizer pads with bye matches.
//
// When two adjacent seeds both skip round 1 (5, 9, 10 and similar field
// sizes) they meet in a round-2 match with two direct sides. That match gets
// no bye, so the match it feeds has feeders from different rounds and the
// synthesized bracket carries a warning for it.
func (g *SeededWinnersGenerator) GenerateBracket(ctx context.Context, params GenerateBracketParams) ([]models.BracketMeta, error) {
	n := params.Teams
	if n < 2 {
		return nil, ErrTooFewTeams
	}
	if n > MaxTemplateTeams {
		return nil, ErrTooManyTeams
	}

	size := 1 << bits.Len(uint(n-1))
	order := seedOrder(size)

	// First column: pair the seeds, drop matches against empty seeds.
	current := make([]node, 0, size/2)
	var metas []models.BracketMeta
	matchNum := 0
	winners := string(SectionWinners)

	for i := 0; i < size; i += 2 {
		a, b := order[i], order[i+1]
		switch {
		case a <= n && b <= n:
			matchNum++
			metas = append(metas, newTemplateMeta(params, matchNum, winners, node{seed: a}.token(), node{seed: b}.token()))
			current = append(current, node{matchNum: matchNum})
		case a <= n:
			current = append(current, node{seed: a})
		default:
			current = append(current, node{seed: b})
		}
	}

	for len(current) > 1 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		next := make([]node, 0, len(current)/2)
		for i := 0; i < len(current); i += 2 {
			home, away := current[i], current[i+1]
			matchNum++
			metas = append(metas, newTemplateMeta(params, matchNum, winners, home.token(), away.token()))
			for _, src := range []node{home, away} {
				if src.matchNum > 0 {
					metas[src.matchNum-1].NextMatchNum = intPtr(matchNum)
				}
			}
			next = append(next, node{matchNum: matchNum})
		}
		current = next
	}

	return metas, nil
}

func newTemplateMeta(params GenerateBracketParams, matchNum int, bracket, home, away string) models.BracketMeta {
	return models.BracketMeta{
		ID:         matchNum,
		DivisionID: params.DivisionID,
		Week:       params.Week,
		MatchNum:   matchNum,
		Bracket:    &bracket,
		HomeSource: &home,
		AwaySource: &away,
	}
}

// seedOrder returns the bracket line order for a field of size seeds, e.g.
// 1 8 4 5 2 7 3 6 for eight.
func seedOrder(size int) []int {
	order := []int{1}
	for len(order) < size {
		m := len(order) * 2
		next := make([]int, 0, m)
		for _, s := range order {
			next = append(next, s, m+1-s)
		}
		order = next
	}
	return order
}
