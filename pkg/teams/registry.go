// Package teams canonicalizes free-text team references through layered
// alias tables. The registry is immutable after construction and safe to
// share across parse runs.
package teams

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/phenomenon0/gradebook/pkg/picks"
)

// CanonicalTeam is a league-qualified team identity. Multiple raw strings
// map to the same CanonicalTeam; the mapping is a pure function of
// (raw text, league hint).
type CanonicalTeam struct {
	Name      string       // "Buffalo Bills"
	League    picks.League // "nfl"
	ShortCode string       // "BUF"
	Mascot    string       // "Bills"
	Aliases   []string     // cities, nicknames, alternate abbreviations
}

// CollisionFunc is invoked when an alias is claimed by teams in more than
// one league and no hint disambiguates. The registry still resolves (by
// league priority) but the collision is reported rather than silent.
type CollisionFunc func(alias string, candidates []*CanonicalTeam)

// Registry holds the alias tables. Construct once, share freely.
type Registry struct {
	teams     []*CanonicalTeam
	byAlias   map[string][]*CanonicalTeam // normalized alias -> claimants
	byCompact map[string][]*CanonicalTeam // punctuation-stripped alias -> claimants
	byShort   map[string][]*CanonicalTeam // lowercased short code -> claimants
	mascots   []mascotEntry

	priority    []picks.League
	onCollision CollisionFunc
}

type mascotEntry struct {
	norm string
	team *CanonicalTeam
}

// Option configures a Registry.
type Option func(*Registry)

// WithLeaguePriority overrides the order used to break cross-league alias
// collisions when no hint is available.
func WithLeaguePriority(order []picks.League) Option {
	return func(r *Registry) {
		if len(order) > 0 {
			r.priority = order
		}
	}
}

// WithCollisionFunc installs a collision reporter.
func WithCollisionFunc(fn CollisionFunc) Option {
	return func(r *Registry) { r.onCollision = fn }
}

// WithExtraAliases registers additional raw-alias -> canonical-name mappings
// on top of the built-in tables. The canonical name must already exist.
func WithExtraAliases(extra map[string]string) Option {
	return func(r *Registry) {
		byName := make(map[string]*CanonicalTeam, len(r.teams))
		for _, t := range r.teams {
			byName[normalizeText(t.Name)] = t
		}
		for alias, name := range extra {
			if t, ok := byName[normalizeText(name)]; ok {
				r.indexAlias(alias, t)
			}
		}
	}
}

// NewRegistry builds a registry from the built-in NFL/NBA/NCAA tables.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		byAlias:   make(map[string][]*CanonicalTeam),
		byCompact: make(map[string][]*CanonicalTeam),
		byShort:   make(map[string][]*CanonicalTeam),
		priority:  []picks.League{picks.LeagueNFL, picks.LeagueNBA, picks.LeagueNCAAF, picks.LeagueNCAAB},
	}

	for _, table := range [][]CanonicalTeam{nflTeams, nbaTeams, ncaafTeams, ncaabTeams} {
		for i := range table {
			r.register(&table[i])
		}
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) register(t *CanonicalTeam) {
	r.teams = append(r.teams, t)

	r.indexAlias(t.Name, t)
	for _, a := range t.Aliases {
		r.indexAlias(a, t)
	}
	if t.Mascot != "" {
		r.indexAlias(t.Mascot, t)
		r.mascots = append(r.mascots, mascotEntry{norm: normalizeText(t.Mascot), team: t})
	}
	if t.ShortCode != "" {
		key := strings.ToLower(t.ShortCode)
		r.byShort[key] = appendUnique(r.byShort[key], t)
	}
}

func (r *Registry) indexAlias(alias string, t *CanonicalTeam) {
	n := normalizeText(alias)
	if n == "" {
		return
	}
	r.byAlias[n] = appendUnique(r.byAlias[n], t)
	if c := stripNonAlnum(n); c != "" {
		r.byCompact[c] = appendUnique(r.byCompact[c], t)
	}
}

func appendUnique(list []*CanonicalTeam, t *CanonicalTeam) []*CanonicalTeam {
	for _, have := range list {
		if have == t {
			return list
		}
	}
	return append(list, t)
}

// Teams returns all registered teams.
func (r *Registry) Teams() []*CanonicalTeam {
	return r.teams
}

// TeamsByLeague returns all teams registered for a league.
func (r *Registry) TeamsByLeague(league picks.League) []*CanonicalTeam {
	var out []*CanonicalTeam
	for _, t := range r.teams {
		if t.League == league {
			out = append(out, t)
		}
	}
	return out
}

// Resolve maps free text to a canonical team, or nil when nothing matches.
// A nil result is a normal outcome, never an error. Lookup layers, first
// hit wins:
//
//  1. exact alias match (full names, nicknames, cities, abbreviations)
//  2. short-code match (2-5 letter league codes)
//  3. punctuation-normalized alias match
//  4. mascot substring match, either direction
//  5. token-level match on whitespace tokens of length >= 3
func (r *Registry) Resolve(raw string, hint picks.League) *CanonicalTeam {
	norm := normalizeText(raw)
	if norm == "" {
		return nil
	}

	if cands, ok := r.byAlias[norm]; ok {
		return r.pick(raw, cands, hint)
	}

	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if len(trimmed) >= 2 && len(trimmed) <= 5 {
		if cands, ok := r.byShort[trimmed]; ok {
			return r.pick(raw, cands, hint)
		}
	}

	if compact := stripNonAlnum(norm); compact != "" {
		if cands, ok := r.byCompact[compact]; ok {
			return r.pick(raw, cands, hint)
		}
	}

	if t := r.mascotMatch(norm, hint); t != nil {
		return t
	}

	for _, tok := range strings.Fields(norm) {
		if len(tok) < 3 {
			continue
		}
		if cands, ok := r.byAlias[tok]; ok {
			return r.pick(raw, cands, hint)
		}
	}

	return nil
}

// mascotMatch returns a team whose mascot contains, or is contained in,
// the normalized input.
func (r *Registry) mascotMatch(norm string, hint picks.League) *CanonicalTeam {
	var cands []*CanonicalTeam
	for _, m := range r.mascots {
		if strings.Contains(norm, m.norm) || strings.Contains(m.norm, norm) {
			cands = appendUnique(cands, m.team)
		}
	}
	if len(cands) == 0 {
		return nil
	}
	return r.pick(norm, cands, hint)
}

// pick applies the league hint, then registration priority, to a candidate
// set that may span leagues.
func (r *Registry) pick(raw string, cands []*CanonicalTeam, hint picks.League) *CanonicalTeam {
	if len(cands) == 1 {
		return cands[0]
	}

	if hint != picks.LeagueUnknown {
		for _, t := range cands {
			if t.League == hint {
				return t
			}
		}
	}

	// Cross-league collision with no usable hint: report it, then fall
	// back to the configured priority order.
	if r.onCollision != nil {
		r.onCollision(raw, cands)
	}
	for _, league := range r.priority {
		for _, t := range cands {
			if t.League == league {
				return t
			}
		}
	}
	return cands[0]
}

// LeaguesFor returns the distinct leagues that claim the given raw text.
// Used by the matchup tracker to detect teams unambiguous to one league.
func (r *Registry) LeaguesFor(raw string) []picks.League {
	norm := normalizeText(raw)
	cands := r.byAlias[norm]
	if len(cands) == 0 {
		cands = r.byCompact[stripNonAlnum(norm)]
	}
	var out []picks.League
	for _, t := range cands {
		dup := false
		for _, l := range out {
			if l == t.League {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, t.League)
		}
	}
	return out
}

// normalizeText lowercases, strips accents, and collapses whitespace.
func normalizeText(s string) string {
	s = strings.ToLower(s)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, _ = transform.String(t, s)
	return strings.Join(strings.Fields(s), " ")
}

// stripNonAlnum removes everything but letters and digits.
func stripNonAlnum(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Normalize exposes the registry's text normalization for callers that
// need to compare names the same way resolution does.
func Normalize(s string) string {
	return normalizeText(s)
}
