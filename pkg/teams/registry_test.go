package teams

import (
	"testing"

	"github.com/phenomenon0/gradebook/pkg/picks"
)

func TestResolveLayers(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name string
		raw  string
		hint picks.League
		want string
	}{
		{"exact mascot", "Bills", picks.LeagueUnknown, "Buffalo Bills"},
		{"exact full name", "Buffalo Bills", picks.LeagueUnknown, "Buffalo Bills"},
		{"city alias", "Buffalo", picks.LeagueUnknown, "Buffalo Bills"},
		{"short code lower", "buf", picks.LeagueUnknown, "Buffalo Bills"},
		{"short code upper", "LAL", picks.LeagueUnknown, "Los Angeles Lakers"},
		{"case insensitive", "lAkErS", picks.LeagueUnknown, "Los Angeles Lakers"},
		{"punctuation stripped", "49'ers", picks.LeagueUnknown, "San Francisco 49ers"},
		{"mascot substring", "the mighty Seahawks tonight", picks.LeagueUnknown, "Seattle Seahawks"},
		{"token match", "Gonzaga game", picks.LeagueUnknown, "Gonzaga Bulldogs"},
		{"college alias", "Bama", picks.LeagueUnknown, "Alabama Crimson Tide"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(tt.raw, tt.hint)
			if got == nil {
				t.Fatalf("Resolve(%q, %q) = nil, want %q", tt.raw, tt.hint, tt.want)
			}
			if got.Name != tt.want {
				t.Errorf("Resolve(%q, %q) = %q, want %q", tt.raw, tt.hint, got.Name, tt.want)
			}
		})
	}
}

func TestResolveNoMatch(t *testing.T) {
	r := NewRegistry()

	for _, raw := range []string{"", "   ", "xyzzy", "qq"} {
		if got := r.Resolve(raw, picks.LeagueUnknown); got != nil {
			t.Errorf("Resolve(%q) = %q, want nil", raw, got.Name)
		}
	}
}

func TestResolveHintDisambiguates(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		raw  string
		hint picks.League
		want string
	}{
		{"Miami", picks.LeagueNFL, "Miami Dolphins"},
		{"Miami", picks.LeagueNBA, "Miami Heat"},
		{"Miami", picks.LeagueNCAAF, "Miami Hurricanes"},
		{"Houston", picks.LeagueNFL, "Houston Texans"},
		{"Houston", picks.LeagueNCAAF, "Houston Cougars"},
	}

	for _, tt := range tests {
		got := r.Resolve(tt.raw, tt.hint)
		if got == nil || got.Name != tt.want {
			name := "<nil>"
			if got != nil {
				name = got.Name
			}
			t.Errorf("Resolve(%q, %q) = %q, want %q", tt.raw, tt.hint, name, tt.want)
		}
	}
}

func TestResolveCollisionReported(t *testing.T) {
	var collided []string
	r := NewRegistry(
		WithCollisionFunc(func(alias string, cands []*CanonicalTeam) {
			collided = append(collided, alias)
		}),
	)

	// "Miami" is claimed by the NFL, NBA, and NCAAF tables. With no hint it
	// still resolves (by priority) but the collision must be reported.
	got := r.Resolve("Miami", picks.LeagueUnknown)
	if got == nil || got.Name != "Miami Dolphins" {
		t.Fatalf("Resolve(Miami) = %v, want Miami Dolphins by priority", got)
	}
	if len(collided) == 0 {
		t.Error("collision callback never fired for ambiguous alias")
	}

	// A usable hint means no collision to report.
	collided = nil
	r.Resolve("Miami", picks.LeagueNBA)
	if len(collided) != 0 {
		t.Errorf("collision reported despite disambiguating hint: %v", collided)
	}
}

func TestResolveLeaguePriority(t *testing.T) {
	r := NewRegistry(WithLeaguePriority([]picks.League{picks.LeagueNBA, picks.LeagueNFL}))

	got := r.Resolve("Miami", picks.LeagueUnknown)
	if got == nil || got.Name != "Miami Heat" {
		t.Fatalf("Resolve(Miami) with NBA priority = %v, want Miami Heat", got)
	}
}

func TestExtraAliases(t *testing.T) {
	r := NewRegistry(WithExtraAliases(map[string]string{
		"the squad": "Buffalo Bills",
	}))

	got := r.Resolve("the squad", picks.LeagueUnknown)
	if got == nil || got.Name != "Buffalo Bills" {
		t.Fatalf("Resolve(the squad) = %v, want Buffalo Bills", got)
	}
}

func TestLeaguesFor(t *testing.T) {
	r := NewRegistry()

	leagues := r.LeaguesFor("Miami")
	if len(leagues) < 3 {
		t.Errorf("LeaguesFor(Miami) = %v, want at least nfl, nba, ncaaf", leagues)
	}

	leagues = r.LeaguesFor("Gonzaga")
	if len(leagues) != 1 || leagues[0] != picks.LeagueNCAAB {
		t.Errorf("LeaguesFor(Gonzaga) = %v, want [ncaab]", leagues)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"  Buffalo   Bills ", "buffalo bills"},
		{"San José", "san jose"},
		{"LAKERS", "lakers"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
