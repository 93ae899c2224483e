package teams

import "github.com/phenomenon0/gradebook/pkg/picks"

// nflTeams covers all 32 franchises. Aliases hold the city names and the
// abbreviations that show up in chat; the mascot doubles as the nickname.
var nflTeams = []CanonicalTeam{
	{Name: "Arizona Cardinals", League: picks.LeagueNFL, ShortCode: "ARI", Mascot: "Cardinals", Aliases: []string{"Arizona", "Cards", "ARZ"}},
	{Name: "Atlanta Falcons", League: picks.LeagueNFL, ShortCode: "ATL", Mascot: "Falcons", Aliases: []string{"Atlanta"}},
	{Name: "Baltimore Ravens", League: picks.LeagueNFL, ShortCode: "BAL", Mascot: "Ravens", Aliases: []string{"Baltimore"}},
	{Name: "Buffalo Bills", League: picks.LeagueNFL, ShortCode: "BUF", Mascot: "Bills", Aliases: []string{"Buffalo"}},
	{Name: "Carolina Panthers", League: picks.LeagueNFL, ShortCode: "CAR", Mascot: "Panthers", Aliases: []string{"Carolina"}},
	{Name: "Chicago Bears", League: picks.LeagueNFL, ShortCode: "CHI", Mascot: "Bears", Aliases: []string{"Chicago", "Da Bears"}},
	{Name: "Cincinnati Bengals", League: picks.LeagueNFL, ShortCode: "CIN", Mascot: "Bengals", Aliases: []string{"Cincinnati", "Cincy"}},
	{Name: "Cleveland Browns", League: picks.LeagueNFL, ShortCode: "CLE", Mascot: "Browns", Aliases: []string{"Cleveland"}},
	{Name: "Dallas Cowboys", League: picks.LeagueNFL, ShortCode: "DAL", Mascot: "Cowboys", Aliases: []string{"Dallas", "Boys"}},
	{Name: "Denver Broncos", League: picks.LeagueNFL, ShortCode: "DEN", Mascot: "Broncos", Aliases: []string{"Denver"}},
	{Name: "Detroit Lions", League: picks.LeagueNFL, ShortCode: "DET", Mascot: "Lions", Aliases: []string{"Detroit"}},
	{Name: "Green Bay Packers", League: picks.LeagueNFL, ShortCode: "GB", Mascot: "Packers", Aliases: []string{"Green Bay", "GNB", "Pack"}},
	{Name: "Houston Texans", League: picks.LeagueNFL, ShortCode: "HOU", Mascot: "Texans", Aliases: []string{"Houston"}},
	{Name: "Indianapolis Colts", League: picks.LeagueNFL, ShortCode: "IND", Mascot: "Colts", Aliases: []string{"Indianapolis", "Indy"}},
	{Name: "Jacksonville Jaguars", League: picks.LeagueNFL, ShortCode: "JAX", Mascot: "Jaguars", Aliases: []string{"Jacksonville", "Jags", "JAC"}},
	{Name: "Kansas City Chiefs", League: picks.LeagueNFL, ShortCode: "KC", Mascot: "Chiefs", Aliases: []string{"Kansas City", "KAN"}},
	{Name: "Las Vegas Raiders", League: picks.LeagueNFL, ShortCode: "LV", Mascot: "Raiders", Aliases: []string{"Las Vegas", "Vegas", "Oakland", "OAK", "LVR"}},
	{Name: "Los Angeles Chargers", League: picks.LeagueNFL, ShortCode: "LAC", Mascot: "Chargers", Aliases: []string{"LA Chargers", "San Diego", "SD", "Bolts"}},
	{Name: "Los Angeles Rams", League: picks.LeagueNFL, ShortCode: "LAR", Mascot: "Rams", Aliases: []string{"LA Rams"}},
	{Name: "Miami Dolphins", League: picks.LeagueNFL, ShortCode: "MIA", Mascot: "Dolphins", Aliases: []string{"Miami", "Fins", "Phins"}},
	{Name: "Minnesota Vikings", League: picks.LeagueNFL, ShortCode: "MIN", Mascot: "Vikings", Aliases: []string{"Minnesota", "Vikes"}},
	{Name: "New England Patriots", League: picks.LeagueNFL, ShortCode: "NE", Mascot: "Patriots", Aliases: []string{"New England", "Pats", "NWE"}},
	{Name: "New Orleans Saints", League: picks.LeagueNFL, ShortCode: "NO", Mascot: "Saints", Aliases: []string{"New Orleans", "NOLA", "NOR"}},
	{Name: "New York Giants", League: picks.LeagueNFL, ShortCode: "NYG", Mascot: "Giants", Aliases: []string{"NY Giants", "G-Men"}},
	{Name: "New York Jets", League: picks.LeagueNFL, ShortCode: "NYJ", Mascot: "Jets", Aliases: []string{"NY Jets", "Gang Green"}},
	{Name: "Philadelphia Eagles", League: picks.LeagueNFL, ShortCode: "PHI", Mascot: "Eagles", Aliases: []string{"Philadelphia", "Philly", "Birds"}},
	{Name: "Pittsburgh Steelers", League: picks.LeagueNFL, ShortCode: "PIT", Mascot: "Steelers", Aliases: []string{"Pittsburgh"}},
	{Name: "San Francisco 49ers", League: picks.LeagueNFL, ShortCode: "SF", Mascot: "49ers", Aliases: []string{"San Francisco", "Niners", "SFO"}},
	{Name: "Seattle Seahawks", League: picks.LeagueNFL, ShortCode: "SEA", Mascot: "Seahawks", Aliases: []string{"Seattle", "Hawks"}},
	{Name: "Tampa Bay Buccaneers", League: picks.LeagueNFL, ShortCode: "TB", Mascot: "Buccaneers", Aliases: []string{"Tampa Bay", "Tampa", "Bucs", "TAM"}},
	{Name: "Tennessee Titans", League: picks.LeagueNFL, ShortCode: "TEN", Mascot: "Titans", Aliases: []string{"Tennessee"}},
	{Name: "Washington Commanders", League: picks.LeagueNFL, ShortCode: "WAS", Mascot: "Commanders", Aliases: []string{"Washington", "WSH", "Commies"}},
}
