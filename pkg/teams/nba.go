package teams

import "github.com/phenomenon0/gradebook/pkg/picks"

// nbaTeams covers all 30 franchises.
var nbaTeams = []CanonicalTeam{
	{Name: "Atlanta Hawks", League: picks.LeagueNBA, ShortCode: "ATL", Mascot: "Hawks", Aliases: []string{"Atlanta"}},
	{Name: "Boston Celtics", League: picks.LeagueNBA, ShortCode: "BOS", Mascot: "Celtics", Aliases: []string{"Boston", "Cs"}},
	{Name: "Brooklyn Nets", League: picks.LeagueNBA, ShortCode: "BKN", Mascot: "Nets", Aliases: []string{"Brooklyn", "BRK"}},
	{Name: "Charlotte Hornets", League: picks.LeagueNBA, ShortCode: "CHA", Mascot: "Hornets", Aliases: []string{"Charlotte", "CHO"}},
	{Name: "Chicago Bulls", League: picks.LeagueNBA, ShortCode: "CHI", Mascot: "Bulls", Aliases: []string{"Chicago"}},
	{Name: "Cleveland Cavaliers", League: picks.LeagueNBA, ShortCode: "CLE", Mascot: "Cavaliers", Aliases: []string{"Cleveland", "Cavs"}},
	{Name: "Dallas Mavericks", League: picks.LeagueNBA, ShortCode: "DAL", Mascot: "Mavericks", Aliases: []string{"Dallas", "Mavs"}},
	{Name: "Denver Nuggets", League: picks.LeagueNBA, ShortCode: "DEN", Mascot: "Nuggets", Aliases: []string{"Denver", "Nugs"}},
	{Name: "Detroit Pistons", League: picks.LeagueNBA, ShortCode: "DET", Mascot: "Pistons", Aliases: []string{"Detroit"}},
	{Name: "Golden State Warriors", League: picks.LeagueNBA, ShortCode: "GSW", Mascot: "Warriors", Aliases: []string{"Golden State", "GS", "Dubs"}},
	{Name: "Houston Rockets", League: picks.LeagueNBA, ShortCode: "HOU", Mascot: "Rockets", Aliases: []string{"Houston"}},
	{Name: "Indiana Pacers", League: picks.LeagueNBA, ShortCode: "IND", Mascot: "Pacers", Aliases: []string{"Indiana"}},
	{Name: "Los Angeles Clippers", League: picks.LeagueNBA, ShortCode: "LAC", Mascot: "Clippers", Aliases: []string{"LA Clippers", "Clips"}},
	{Name: "Los Angeles Lakers", League: picks.LeagueNBA, ShortCode: "LAL", Mascot: "Lakers", Aliases: []string{"LA Lakers", "Lake Show"}},
	{Name: "Memphis Grizzlies", League: picks.LeagueNBA, ShortCode: "MEM", Mascot: "Grizzlies", Aliases: []string{"Memphis", "Grizz"}},
	{Name: "Miami Heat", League: picks.LeagueNBA, ShortCode: "MIA", Mascot: "Heat", Aliases: []string{"Miami"}},
	{Name: "Milwaukee Bucks", League: picks.LeagueNBA, ShortCode: "MIL", Mascot: "Bucks", Aliases: []string{"Milwaukee"}},
	{Name: "Minnesota Timberwolves", League: picks.LeagueNBA, ShortCode: "MIN", Mascot: "Timberwolves", Aliases: []string{"Minnesota", "Wolves"}},
	{Name: "New Orleans Pelicans", League: picks.LeagueNBA, ShortCode: "NOP", Mascot: "Pelicans", Aliases: []string{"New Orleans", "Pels", "NO Pelicans"}},
	{Name: "New York Knicks", League: picks.LeagueNBA, ShortCode: "NYK", Mascot: "Knicks", Aliases: []string{"New York", "NY Knicks"}},
	{Name: "Oklahoma City Thunder", League: picks.LeagueNBA, ShortCode: "OKC", Mascot: "Thunder", Aliases: []string{"Oklahoma City"}},
	{Name: "Orlando Magic", League: picks.LeagueNBA, ShortCode: "ORL", Mascot: "Magic", Aliases: []string{"Orlando"}},
	{Name: "Philadelphia 76ers", League: picks.LeagueNBA, ShortCode: "PHI", Mascot: "76ers", Aliases: []string{"Philadelphia", "Sixers", "Philly"}},
	{Name: "Phoenix Suns", League: picks.LeagueNBA, ShortCode: "PHX", Mascot: "Suns", Aliases: []string{"Phoenix", "PHO"}},
	{Name: "Portland Trail Blazers", League: picks.LeagueNBA, ShortCode: "POR", Mascot: "Trail Blazers", Aliases: []string{"Portland", "Blazers", "Rip City"}},
	{Name: "Sacramento Kings", League: picks.LeagueNBA, ShortCode: "SAC", Mascot: "Kings", Aliases: []string{"Sacramento"}},
	{Name: "San Antonio Spurs", League: picks.LeagueNBA, ShortCode: "SAS", Mascot: "Spurs", Aliases: []string{"San Antonio", "SA"}},
	{Name: "Toronto Raptors", League: picks.LeagueNBA, ShortCode: "TOR", Mascot: "Raptors", Aliases: []string{"Toronto", "Raps"}},
	{Name: "Utah Jazz", League: picks.LeagueNBA, ShortCode: "UTA", Mascot: "Jazz", Aliases: []string{"Utah", "UTH"}},
	{Name: "Washington Wizards", League: picks.LeagueNBA, ShortCode: "WAS", Mascot: "Wizards", Aliases: []string{"Washington", "Wiz"}},
}
