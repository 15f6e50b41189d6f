package summary

import "time"

// Selection mode: where in the UI flow the pick happens.
type Mode string

// Selection modes.
const (
	// ModeInitial picks globally after first ingest.
	ModeInitial Mode = "initial"
	// ModeRegenerateDetail prefers staying in the current custom or
	// default lane.
	ModeRegenerateDetail Mode = "regenerate_detail"
	// ModeRegenerateAdd picks globally from the add flow.
	ModeRegenerateAdd Mode = "regenerate_add"
)

// Lane identifies the summary table a selection currently points at.
type Lane string

// Lanes.
const (
	LaneAny     Lane = ""
	LaneDefault Lane = "default"
	LaneCustom  Lane = "custom"
)

// Candidate is one READY summary eligible for display/vectorisation.
// Exactly one of DefaultSummaryID/CustomSummaryID is set.
type Candidate struct {
	DefaultSummaryID string
	CustomSummaryID  string
	Character        string
	CreatedAt        time.Time
}

// IsCustom reports the candidate's lane.
func (c Candidate) IsCustom() bool {
	return c.CustomSummaryID != ""
}

// Score ranks a candidate against the user's selected character.
func Score(c Candidate, selectedCharacter string) int {
	score := 0
	if c.IsCustom() {
		score += 1000
	}
	if hasCharacter(c.Character) {
		switch {
		case !hasCharacter(selectedCharacter):
			score += 100
		case c.Character == selectedCharacter:
			score += 200
		default:
			score -= 50
		}
	}
	return score
}

func hasCharacter(ch string) bool {
	return ch != "" && ch != "none"
}

// Select picks the summary to display and vectorise. currentLane is the
// lane the UserPaperLink points at now; it only matters in
// regenerate_detail mode. Returns nil when candidates is empty.
// Ties break toward the newer created_at.
func Select(candidates []Candidate, selectedCharacter string, mode Mode, currentLane Lane) *Candidate {
	if len(candidates) == 0 {
		return nil
	}

	pool := candidates
	if mode == ModeRegenerateDetail && currentLane != LaneAny {
		var sameLane []Candidate
		for _, c := range candidates {
			if (currentLane == LaneCustom) == c.IsCustom() {
				sameLane = append(sameLane, c)
			}
		}
		if len(sameLane) > 0 {
			pool = sameLane
		}
	}

	best := pool[0]
	bestScore := Score(best, selectedCharacter)
	for _, c := range pool[1:] {
		s := Score(c, selectedCharacter)
		if s > bestScore || (s == bestScore && c.CreatedAt.After(best.CreatedAt)) {
			best = c
			bestScore = s
		}
	}
	return &best
}
