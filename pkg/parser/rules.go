package parser

import (
	"regexp"
	"strings"

	"github.com/phenomenon0/gradebook/pkg/picks"
)

// Free text has no fixed grammar; recognition is an ordered list of
// (pattern, builder) rules tried in documented priority. Order matters and
// is part of the contract: the first matching shape wins.

// statement separators inside one message
var fragmentSep = regexp.MustCompile(`[;\n]+`)

func splitFragments(text string) []string {
	var out []string
	for _, f := range fragmentSep.Split(text, -1) {
		f = strings.TrimSpace(f)
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// --- Context tokens ---

type segmentToken struct {
	re  *regexp.Regexp
	seg picks.Segment
}

var segmentTokens = []segmentToken{
	{regexp.MustCompile(`(?i)\b(?:first half|1st half|1h)\b`), picks.SegmentFirstHalf},
	{regexp.MustCompile(`(?i)\b(?:second half|2nd half|2h)\b`), picks.SegmentSecondHalf},
	{regexp.MustCompile(`(?i)\b(?:first quarter|1st quarter|1q)\b`), picks.SegmentQ1},
	{regexp.MustCompile(`(?i)\b(?:second quarter|2nd quarter|2q)\b`), picks.SegmentQ2},
	{regexp.MustCompile(`(?i)\b(?:third quarter|3rd quarter|3q)\b`), picks.SegmentQ3},
	{regexp.MustCompile(`(?i)\b(?:fourth quarter|4th quarter|4q)\b`), picks.SegmentQ4},
	{regexp.MustCompile(`(?i)\b(?:full game|fg)\b`), picks.SegmentFullGame},
}

type leagueToken struct {
	re     *regexp.Regexp
	league picks.League
}

var leagueTokens = []leagueToken{
	{regexp.MustCompile(`(?i)\bnfl\b`), picks.LeagueNFL},
	{regexp.MustCompile(`(?i)\bnba\b`), picks.LeagueNBA},
	{regexp.MustCompile(`(?i)\b(?:ncaaf|cfb|college football)\b`), picks.LeagueNCAAF},
	{regexp.MustCompile(`(?i)\b(?:ncaab|cbb|college basketball|college hoops)\b`), picks.LeagueNCAAB},
}

// matchupRe recognizes a matchup announcement like "Bills @ Dolphins".
// Only digit-free fragments qualify; anything with numbers is a bet shape.
var matchupRe = regexp.MustCompile(`(?i)^\s*([a-z][a-z .'&-]*?)\s+(?:@|at|vs\.?|v\.?)\s+([a-z][a-z .'&-]*?)\s*[?!.]*\s*$`)

var hasDigit = regexp.MustCompile(`\d`)

// --- Proposer pick shapes, in precedence order ---

// total: "over 47.5", "u 220", optionally preceded by a team (team total)
var proposalTotalRe = regexp.MustCompile(`(?i)^(.*?)\b(over|under|o|u)\s*(\d+(?:\.\d+)?)\b`)

// moneyline: "Bills ml", "Bills ML +150"
var proposalMoneylineRe = regexp.MustCompile(`(?i)\b([a-z][a-z .'&-]{1,40}?)\s+ml\b\s*([+-]\d{3,})?`)

// spread: "Bills +3", "Lakers -6.5"
var proposalSpreadRe = regexp.MustCompile(`(?i)([a-z][a-z .'&-]{1,40}?)\s*([+-]\d+(?:\.\d+)?)`)

// --- Confirmer shapes ---

// A stake marker makes a confirmer fragment self-contained.
var stakeMarkerRe = regexp.MustCompile(`\$\s*\d`)

// bare affirmation plus a stake: "In $50", "ok $25"
var affirmStakeRe = regexp.MustCompile(`(?i)^\W*(?:yes|yep|yeah|yup|ok|okay|sure|bet|in|i'?m in|book it|done|deal|confirmed|got it)[\s,!.]*\$\s*(\d+(?:\.\d+)?)\W*$`)

// confirmShape is one (pattern, builder) rule. Shapes are tried in
// descending specificity; a confirmed bet is authoritative over any
// pending proposal.
type confirmShape struct {
	name  string
	re    *regexp.Regexp
	build func(p *Parser, ctx *ConversationContext, m []string, frag string) *picks.Pick
}

var (
	// "Lakers -6.5 -110 $50" (odds optional: "Lakers -6.5 $50")
	confirmSpreadRe = regexp.MustCompile(`(?i)^\s*([a-z][a-z .'&-]*?)\s*([+-]\d+(?:\.\d+)?)(?:\s+([+-]\d{3,}))?\s*\$\s*(\d+(?:\.\d+)?)\s*$`)

	// "over 47 -115 $30", "Heat u 210.5 $20"
	confirmTotalRe = regexp.MustCompile(`(?i)^\s*([a-z][a-z .'&-]*?)?\b(over|under|o|u)\s*(\d+(?:\.\d+)?)\s*(?:([+-]\d{3,})\s*)?\$\s*(\d+(?:\.\d+)?)\s*$`)

	// "-115 $50": inherits team and line from the pending proposal
	confirmBareOddsRe = regexp.MustCompile(`(?i)^\s*([+-]\d{3,})\s*\$\s*(\d+(?:\.\d+)?)\s*$`)

	// "-110 on the +3 $50"
	confirmOddsOnLineRe = regexp.MustCompile(`(?i)^\s*([+-]\d{3,})\s+on\s+(?:the\s+)?([+-]?\d+(?:\.\d+)?)\s*\$\s*(\d+(?:\.\d+)?)\s*$`)

	// "Bills pk $40", "pick em -105 $25"
	confirmPickEmRe = regexp.MustCompile(`(?i)^\s*([a-z][a-z .'&-]*?)?\s*\b(?:pk|pick\s*'?em)\b\s*(?:([+-]\d{3,})\s*)?\$\s*(\d+(?:\.\d+)?)\s*$`)

	// "Bills ml $50", "Bills ml +150 $50"
	confirmMoneylineRe = regexp.MustCompile(`(?i)^\s*([a-z][a-z .'&-]*?)\s+ml\b\s*(?:([+-]\d{3,})\s*)?\$\s*(\d+(?:\.\d+)?)\s*$`)
)

// --- Acknowledgement / rejection token sets ---

var affirmativeTokens = map[string]bool{
	"yes": true, "yep": true, "yeah": true, "yup": true, "y": true,
	"ok": true, "okay": true, "sure": true, "bet": true, "in": true,
	"im in": true, "i'm in": true, "book it": true, "booked": true,
	"done": true, "deal": true, "confirmed": true, "got it": true,
	"lets go": true, "let's go": true, "send it": true, "lock it": true,
	"lock it in": true,
}

var rejectionPhrases = []string{
	"off the board", "off board", "otb", "no good", "too late", "cant take", "can't take",
}

var rejectionTokens = map[string]bool{
	"no": true, "nah": true, "ng": true, "pass": true, "dead": true, "off": true,
}

func isAffirmative(text string) bool {
	return affirmativeTokens[normalizeToken(text)]
}

func isRejection(text string) bool {
	norm := normalizeToken(text)
	if rejectionTokens[norm] {
		return true
	}
	lower := strings.ToLower(text)
	for _, phrase := range rejectionPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

func normalizeToken(text string) string {
	return strings.ToLower(strings.Trim(strings.TrimSpace(text), ".,!? "))
}

// cleanTeamText trims a captured team reference: punctuation, stray
// betting tokens, leading articles.
func cleanTeamText(s string) string {
	s = strings.TrimSpace(strings.Trim(s, ".,;:!?"))
	for stripped := true; stripped; {
		stripped = false
		lower := strings.ToLower(s)
		for _, prefix := range []string{"i like ", "give me ", "the ", "take ", "gimme ", "like ", "i'll take ", "ill take "} {
			if strings.HasPrefix(lower, prefix) {
				s = strings.TrimSpace(s[len(prefix):])
				stripped = true
				break
			}
		}
	}
	lower := strings.ToLower(s)
	if strings.HasSuffix(lower, " ml") {
		s = s[:len(s)-3]
	}
	return strings.TrimSpace(s)
}
