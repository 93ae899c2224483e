package games

import "github.com/phenomenon0/gradebook/pkg/picks"

// SegmentScore is the (home, away) score pair for one segment of a game.
type SegmentScore struct {
	Home int
	Away int
}

// Total returns home plus away points.
func (s SegmentScore) Total() int {
	return s.Home + s.Away
}

// ExtractSegment derives the score pair for a segment, or nil when the
// needed breakdown is missing. Nil must propagate to Ungradeable; it is
// never a silent zero.
//
// The rules are league-sensitive because feeds disagree on what a "half"
// field means:
//   - college feeds store true halves; 2H = final - 1H, which folds
//     overtime into the second half (the betting convention)
//   - NBA feeds store quarters mislabeled as halves (H1=Q1, H2=Q2, ...);
//     1H = H1+H2 and 2H = final - 1H
//   - otherwise quarters are used directly: 1H = Q1+Q2, 2H = final - 1H
func ExtractSegment(g *GameRecord, seg picks.Segment) *SegmentScore {
	if g == nil {
		return nil
	}

	switch seg {
	case picks.SegmentFullGame:
		return &SegmentScore{Home: g.HomeScore, Away: g.AwayScore}
	case picks.SegmentFirstHalf:
		return firstHalf(g)
	case picks.SegmentSecondHalf:
		fh := firstHalf(g)
		if fh == nil {
			return nil
		}
		return &SegmentScore{Home: g.HomeScore - fh.Home, Away: g.AwayScore - fh.Away}
	default:
		return quarter(g, seg.Quarter())
	}
}

func firstHalf(g *GameRecord) *SegmentScore {
	if g.League.IsCollege() {
		if s := periodScore(g.HalfScores, 0); s != nil {
			return s
		}
		// College football feeds sometimes carry only quarters.
		return sumPeriods(g.QuarterScores, 0, 2)
	}

	if g.League == picks.LeagueNBA {
		// The "half" fields are actually quarters here.
		if s := sumPeriods(g.HalfScores, 0, 2); s != nil {
			return s
		}
		return sumPeriods(g.QuarterScores, 0, 2)
	}

	// Football fallback: first half is the first two quarters.
	if s := sumPeriods(g.QuarterScores, 0, 2); s != nil {
		return s
	}
	return periodScore(g.HalfScores, 0)
}

// quarter returns the score of the 1-based quarter q. Single-quarter
// segments require explicit per-quarter data; nothing is derived.
func quarter(g *GameRecord, q int) *SegmentScore {
	if q < 1 || q > 4 {
		return nil
	}
	if s := periodScore(g.QuarterScores, q-1); s != nil {
		return s
	}
	if g.League == picks.LeagueNBA {
		// Mislabeled halves carry the quarters for NBA feeds.
		return periodScore(g.HalfScores, q-1)
	}
	return nil
}

// periodScore returns the i-th period pair, or nil when absent.
func periodScore(lines *Lines, i int) *SegmentScore {
	if lines == nil || i >= len(lines.Home) || i >= len(lines.Away) {
		return nil
	}
	return &SegmentScore{Home: lines.Home[i], Away: lines.Away[i]}
}

// sumPeriods sums periods [from, to), or nil when any is absent.
func sumPeriods(lines *Lines, from, to int) *SegmentScore {
	if lines == nil || to > len(lines.Home) || to > len(lines.Away) {
		return nil
	}
	var s SegmentScore
	for i := from; i < to; i++ {
		s.Home += lines.Home[i]
		s.Away += lines.Away[i]
	}
	return &s
}
