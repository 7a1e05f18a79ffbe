package brackets

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

type RefKind string

const (
	RefNone    RefKind = "none"
	RefSeed    RefKind = "seed"
	RefWinner  RefKind = "winner"
	RefLoser   RefKind = "loser"
	RefTeam    RefKind = "team"
	RefUnknown RefKind = "unknown"
)

// SourceRef is a parsed source token. N is set for seed, winner, loser and
// team references; Raw keeps the normalized token for unknown ones.
type SourceRef struct {
	Kind RefKind `json:"kind"`
	N    int     `json:"n,omitempty"`
	Raw  string  `json:"raw,omitempty"`
}

var (
	seedTokenRe   = regexp.MustCompile(`^S(?:EED)?(\d+)$`)
	winnerTokenRe = regexp.MustCompile(`^W(?:INNER)?(\d+)$`)
	loserTokenRe  = regexp.MustCompile(`^L(?:OSER)?(\d+)$`)
)

// ParseSource turns a home/away source token such as "S1", "W3", "loser2" or
// "7" into a SourceRef. It never fails: anything unrecognised comes back as
// RefUnknown with the normalized text.
func ParseSource(raw string) SourceRef {
	token := normalizeToken(raw)
	if token == "" {
		return SourceRef{Kind: RefNone}
	}

	for _, p := range []struct {
		re   *regexp.Regexp
		kind RefKind
	}{
		{seedTokenRe, RefSeed},
		{winnerTokenRe, RefWinner},
		{loserTokenRe, RefLoser},
	} {
		if m := p.re.FindStringSubmatch(token); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				return SourceRef{Kind: p.kind, N: n}
			}
		}
	}

	if n, err := strconv.Atoi(token); err == nil {
		return SourceRef{Kind: RefTeam, N: n}
	}
	return SourceRef{Kind: RefUnknown, Raw: token}
}

func ParseSourcePtr(raw *string) SourceRef {
	if raw == nil {
		return SourceRef{Kind: RefNone}
	}
	return ParseSource(*raw)
}

func normalizeToken(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, "\"'`")
	return strings.ToUpper(strings.TrimSpace(s))
}

// IsDirect reports whether the side is filled straight from the seeding
// rather than by another match's result.
func (r SourceRef) IsDirect() bool {
	return r.Kind == RefSeed || r.Kind == RefTeam
}

// IsMatchRef reports whether the side is the winner or loser of another match.
func (r SourceRef) IsMatchRef() bool {
	return r.Kind == RefWinner || r.Kind == RefLoser
}

func (r SourceRef) String() string {
	switch r.Kind {
	case RefSeed:
		return fmt.Sprintf("S%d", r.N)
	case RefWinner:
		return fmt.Sprintf("W%d", r.N)
	case RefLoser:
		return fmt.Sprintf("L%d", r.N)
	case RefTeam:
		return strconv.Itoa(r.N)
	case RefUnknown:
		return r.Raw
	default:
		return ""
	}
}

// isResetPair matches the grand-final reset shape: one side is the winner of
// match k and the other the loser of the same match k.
func isResetPair(home, away SourceRef) bool {
	if home.Kind == RefWinner && away.Kind == RefLoser {
		return home.N == away.N
	}
	if home.Kind == RefLoser && away.Kind == RefWinner {
		return home.N == away.N
	}
	return false
}
