package teams

import "github.com/phenomenon0/gradebook/pkg/picks"

// College tables cover the programs that actually show up in the logs:
// power-conference schools plus the mid-majors with a betting following.
// Several cities and mascots collide with pro teams (Miami, Houston,
// Memphis, Charlotte); those collisions are resolved by league hint or
// priority order and reported through the registry's CollisionFunc.

var ncaafTeams = []CanonicalTeam{
	{Name: "Alabama Crimson Tide", League: picks.LeagueNCAAF, ShortCode: "ALA", Mascot: "Crimson Tide", Aliases: []string{"Alabama", "Bama", "Tide"}},
	{Name: "Arkansas Razorbacks", League: picks.LeagueNCAAF, ShortCode: "ARK", Mascot: "Razorbacks", Aliases: []string{"Arkansas", "Hogs"}},
	{Name: "Auburn Tigers", League: picks.LeagueNCAAF, ShortCode: "AUB", Mascot: "", Aliases: []string{"Auburn"}},
	{Name: "Boise State Broncos", League: picks.LeagueNCAAF, ShortCode: "BSU", Mascot: "", Aliases: []string{"Boise State", "Boise"}},
	{Name: "Clemson Tigers", League: picks.LeagueNCAAF, ShortCode: "CLEM", Mascot: "", Aliases: []string{"Clemson"}},
	{Name: "Colorado Buffaloes", League: picks.LeagueNCAAF, ShortCode: "COLO", Mascot: "Buffaloes", Aliases: []string{"Colorado", "Buffs"}},
	{Name: "Florida Gators", League: picks.LeagueNCAAF, ShortCode: "FLA", Mascot: "Gators", Aliases: []string{"Florida", "UF"}},
	{Name: "Florida State Seminoles", League: picks.LeagueNCAAF, ShortCode: "FSU", Mascot: "Seminoles", Aliases: []string{"Florida State", "Noles"}},
	{Name: "Georgia Bulldogs", League: picks.LeagueNCAAF, ShortCode: "UGA", Mascot: "", Aliases: []string{"Georgia", "Dawgs"}},
	{Name: "Houston Cougars", League: picks.LeagueNCAAF, ShortCode: "HOU", Mascot: "Cougars", Aliases: []string{"Houston", "UH", "Coogs"}},
	{Name: "Iowa Hawkeyes", League: picks.LeagueNCAAF, ShortCode: "IOWA", Mascot: "Hawkeyes", Aliases: []string{"Iowa"}},
	{Name: "LSU Tigers", League: picks.LeagueNCAAF, ShortCode: "LSU", Mascot: "", Aliases: []string{"Louisiana State", "Bayou Bengals"}},
	{Name: "Miami Hurricanes", League: picks.LeagueNCAAF, ShortCode: "MIA", Mascot: "Hurricanes", Aliases: []string{"Miami", "The U", "Canes"}},
	{Name: "Michigan Wolverines", League: picks.LeagueNCAAF, ShortCode: "MICH", Mascot: "Wolverines", Aliases: []string{"Michigan"}},
	{Name: "Michigan State Spartans", League: picks.LeagueNCAAF, ShortCode: "MSU", Mascot: "Spartans", Aliases: []string{"Michigan State", "Sparty"}},
	{Name: "Nebraska Cornhuskers", League: picks.LeagueNCAAF, ShortCode: "NEB", Mascot: "Cornhuskers", Aliases: []string{"Nebraska", "Huskers"}},
	{Name: "North Carolina Tar Heels", League: picks.LeagueNCAAF, ShortCode: "UNC", Mascot: "Tar Heels", Aliases: []string{"North Carolina", "Heels"}},
	{Name: "Notre Dame Fighting Irish", League: picks.LeagueNCAAF, ShortCode: "ND", Mascot: "Fighting Irish", Aliases: []string{"Notre Dame", "Irish"}},
	{Name: "Ohio State Buckeyes", League: picks.LeagueNCAAF, ShortCode: "OSU", Mascot: "Buckeyes", Aliases: []string{"Ohio State", "Bucks"}},
	{Name: "Oklahoma Sooners", League: picks.LeagueNCAAF, ShortCode: "OKLA", Mascot: "Sooners", Aliases: []string{"Oklahoma", "OU"}},
	{Name: "Oklahoma State Cowboys", League: picks.LeagueNCAAF, ShortCode: "OKST", Mascot: "", Aliases: []string{"Oklahoma State", "Pokes"}},
	{Name: "Ole Miss Rebels", League: picks.LeagueNCAAF, ShortCode: "MISS", Mascot: "Rebels", Aliases: []string{"Ole Miss", "Mississippi"}},
	{Name: "Oregon Ducks", League: picks.LeagueNCAAF, ShortCode: "ORE", Mascot: "Ducks", Aliases: []string{"Oregon"}},
	{Name: "Penn State Nittany Lions", League: picks.LeagueNCAAF, ShortCode: "PSU", Mascot: "Nittany Lions", Aliases: []string{"Penn State"}},
	{Name: "SMU Mustangs", League: picks.LeagueNCAAF, ShortCode: "SMU", Mascot: "Mustangs", Aliases: []string{"Southern Methodist"}},
	{Name: "TCU Horned Frogs", League: picks.LeagueNCAAF, ShortCode: "TCU", Mascot: "Horned Frogs", Aliases: []string{"Texas Christian", "Frogs"}},
	{Name: "Tennessee Volunteers", League: picks.LeagueNCAAF, ShortCode: "TENN", Mascot: "Volunteers", Aliases: []string{"Tennessee", "Vols"}},
	{Name: "Texas Longhorns", League: picks.LeagueNCAAF, ShortCode: "TEX", Mascot: "Longhorns", Aliases: []string{"Texas", "Horns"}},
	{Name: "Texas A&M Aggies", League: picks.LeagueNCAAF, ShortCode: "TAMU", Mascot: "Aggies", Aliases: []string{"Texas A&M", "A&M"}},
	{Name: "USC Trojans", League: picks.LeagueNCAAF, ShortCode: "USC", Mascot: "Trojans", Aliases: []string{"Southern Cal", "Southern California"}},
	{Name: "Utah Utes", League: picks.LeagueNCAAF, ShortCode: "UTAH", Mascot: "Utes", Aliases: []string{}},
	{Name: "Washington Huskies", League: picks.LeagueNCAAF, ShortCode: "WASH", Mascot: "Huskies", Aliases: []string{"UW", "UDub"}},
	{Name: "Wisconsin Badgers", League: picks.LeagueNCAAF, ShortCode: "WIS", Mascot: "Badgers", Aliases: []string{"Wisconsin"}},
}

var ncaabTeams = []CanonicalTeam{
	{Name: "Arizona Wildcats", League: picks.LeagueNCAAB, ShortCode: "ARIZ", Mascot: "Wildcats", Aliases: []string{"Arizona", "Zona"}},
	{Name: "Baylor Bears", League: picks.LeagueNCAAB, ShortCode: "BAY", Mascot: "", Aliases: []string{"Baylor"}},
	{Name: "Connecticut Huskies", League: picks.LeagueNCAAB, ShortCode: "CONN", Mascot: "", Aliases: []string{"UConn", "Connecticut"}},
	{Name: "Creighton Bluejays", League: picks.LeagueNCAAB, ShortCode: "CREI", Mascot: "Bluejays", Aliases: []string{"Creighton", "Jays"}},
	{Name: "Duke Blue Devils", League: picks.LeagueNCAAB, ShortCode: "DUKE", Mascot: "Blue Devils", Aliases: []string{}},
	{Name: "Gonzaga Bulldogs", League: picks.LeagueNCAAB, ShortCode: "GONZ", Mascot: "", Aliases: []string{"Gonzaga", "Zags"}},
	{Name: "Houston Cougars", League: picks.LeagueNCAAB, ShortCode: "HOU", Mascot: "", Aliases: []string{"Houston", "Coogs"}},
	{Name: "Illinois Fighting Illini", League: picks.LeagueNCAAB, ShortCode: "ILL", Mascot: "Fighting Illini", Aliases: []string{"Illinois", "Illini"}},
	{Name: "Kansas Jayhawks", League: picks.LeagueNCAAB, ShortCode: "KU", Mascot: "Jayhawks", Aliases: []string{"Kansas"}},
	{Name: "Kentucky Wildcats", League: picks.LeagueNCAAB, ShortCode: "UK", Mascot: "", Aliases: []string{"Kentucky", "Cats"}},
	{Name: "Marquette Golden Eagles", League: picks.LeagueNCAAB, ShortCode: "MARQ", Mascot: "Golden Eagles", Aliases: []string{"Marquette"}},
	{Name: "Memphis Tigers", League: picks.LeagueNCAAB, ShortCode: "MEM", Mascot: "", Aliases: []string{"Memphis"}},
	{Name: "Purdue Boilermakers", League: picks.LeagueNCAAB, ShortCode: "PUR", Mascot: "Boilermakers", Aliases: []string{"Purdue", "Boilers"}},
	{Name: "Saint Mary's Gaels", League: picks.LeagueNCAAB, ShortCode: "SMC", Mascot: "Gaels", Aliases: []string{"Saint Marys", "St Marys"}},
	{Name: "San Diego State Aztecs", League: picks.LeagueNCAAB, ShortCode: "SDSU", Mascot: "Aztecs", Aliases: []string{"San Diego State"}},
	{Name: "Syracuse Orange", League: picks.LeagueNCAAB, ShortCode: "CUSE", Mascot: "Orange", Aliases: []string{"Syracuse"}},
	{Name: "UCLA Bruins", League: picks.LeagueNCAAB, ShortCode: "UCLA", Mascot: "Bruins", Aliases: []string{}},
	{Name: "Villanova Wildcats", League: picks.LeagueNCAAB, ShortCode: "NOVA", Mascot: "", Aliases: []string{"Villanova"}},
	{Name: "Virginia Cavaliers", League: picks.LeagueNCAAB, ShortCode: "UVA", Mascot: "", Aliases: []string{"Virginia", "Hoos"}},
	{Name: "Xavier Musketeers", League: picks.LeagueNCAAB, ShortCode: "XAV", Mascot: "Musketeers", Aliases: []string{"Xavier"}},
}
