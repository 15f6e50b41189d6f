package summary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	cases := []struct {
		name     string
		cand     Candidate
		selected string
		want     int
	}{
		{"default no character", Candidate{DefaultSummaryID: "d1"}, "none", 0},
		{"custom base", Candidate{CustomSummaryID: "c1"}, "none", 1000},
		{"character matches", Candidate{DefaultSummaryID: "d1", Character: "sakura"}, "sakura", 200},
		{"character mismatch", Candidate{DefaultSummaryID: "d1", Character: "miyabi"}, "sakura", -50},
		{"character but none selected", Candidate{DefaultSummaryID: "d1", Character: "sakura"}, "none", 100},
		{"custom with matching character", Candidate{CustomSummaryID: "c1", Character: "sakura"}, "sakura", 1200},
		{"custom with mismatch", Candidate{CustomSummaryID: "c1", Character: "miyabi"}, "sakura", 950},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Score(tc.cand, tc.selected))
		})
	}
}

func TestSelect_DualGenerationPrefersMatchingCharacter(t *testing.T) {
	// A custom prompt produced both variants; the character match wins.
	none := Candidate{CustomSummaryID: "c-none", Character: "none", CreatedAt: time.Now()}
	chara := Candidate{CustomSummaryID: "c-sakura", Character: "sakura", CreatedAt: time.Now()}

	got := Select([]Candidate{none, chara}, "sakura", ModeInitial, LaneAny)
	require.NotNil(t, got)
	assert.Equal(t, "c-sakura", got.CustomSummaryID)
}

func TestSelect_CustomBeatsDefault(t *testing.T) {
	def := Candidate{DefaultSummaryID: "d1", Character: "sakura", CreatedAt: time.Now()}
	custom := Candidate{CustomSummaryID: "c1", CreatedAt: time.Now()}

	got := Select([]Candidate{def, custom}, "sakura", ModeInitial, LaneAny)
	require.NotNil(t, got)
	assert.Equal(t, "c1", got.CustomSummaryID)
}

func TestSelect_TieBreaksToNewer(t *testing.T) {
	older := Candidate{DefaultSummaryID: "old", CreatedAt: time.Now().Add(-time.Hour)}
	newer := Candidate{DefaultSummaryID: "new", CreatedAt: time.Now()}

	got := Select([]Candidate{older, newer}, "none", ModeInitial, LaneAny)
	require.NotNil(t, got)
	assert.Equal(t, "new", got.DefaultSummaryID)
}

func TestSelect_RegenerateDetailStaysInLane(t *testing.T) {
	def := Candidate{DefaultSummaryID: "d1", CreatedAt: time.Now()}
	custom := Candidate{CustomSummaryID: "c1", CreatedAt: time.Now()}
	cands := []Candidate{def, custom}

	// Detail-page regeneration keeps the current default lane even
	// though the custom candidate scores higher globally.
	got := Select(cands, "none", ModeRegenerateDetail, LaneDefault)
	require.NotNil(t, got)
	assert.Equal(t, "d1", got.DefaultSummaryID)

	// The add flow picks globally.
	got = Select(cands, "none", ModeRegenerateAdd, LaneDefault)
	require.NotNil(t, got)
	assert.Equal(t, "c1", got.CustomSummaryID)
}

func TestSelect_RegenerateDetailEmptyLaneFallsBackGlobally(t *testing.T) {
	custom := Candidate{CustomSummaryID: "c1", CreatedAt: time.Now()}

	got := Select([]Candidate{custom}, "none", ModeRegenerateDetail, LaneDefault)
	require.NotNil(t, got)
	assert.Equal(t, "c1", got.CustomSummaryID)
}

func TestSelect_Empty(t *testing.T) {
	assert.Nil(t, Select(nil, "none", ModeInitial, LaneAny))
}

func TestSelect_Idempotent(t *testing.T) {
	cands := []Candidate{
		{DefaultSummaryID: "d1", Character: "none", CreatedAt: time.Unix(1, 0)},
		{DefaultSummaryID: "d2", Character: "sakura", CreatedAt: time.Unix(2, 0)},
		{CustomSummaryID: "c1", Character: "miyabi", CreatedAt: time.Unix(3, 0)},
	}
	first := Select(cands, "sakura", ModeInitial, LaneAny)
	second := Select(cands, "sakura", ModeInitial, LaneAny)
	assert.Equal(t, first, second)
}
