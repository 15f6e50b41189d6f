package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditionMatches(t *testing.T) {
	cond := Condition{MetaUserID: "u1", MetaPaperID: "p1"}

	assert.True(t, cond.Matches(map[string]string{"user_id": "u1", "paper_id": "p1", "extra": "x"}))
	assert.False(t, cond.Matches(map[string]string{"user_id": "u1", "paper_id": "p2"}))
	assert.False(t, cond.Matches(map[string]string{"user_id": "u1"}))
}

func TestFilterMatches_Disjunction(t *testing.T) {
	f := ForUserPapers("u1", []string{"p1", "p2"})

	assert.True(t, f.Matches(map[string]string{"user_id": "u1", "paper_id": "p1"}))
	assert.True(t, f.Matches(map[string]string{"user_id": "u1", "paper_id": "p2"}))
	assert.False(t, f.Matches(map[string]string{"user_id": "u1", "paper_id": "p3"}))
	assert.False(t, f.Matches(map[string]string{"user_id": "u2", "paper_id": "p1"}))
}

func TestFilterMatches_NilAndEmptyMatchAll(t *testing.T) {
	var f *Filter
	assert.True(t, f.Matches(map[string]string{"user_id": "u1"}))
	assert.True(t, NewFilter().Matches(nil))
}

func TestForUserPapers_NoPapers(t *testing.T) {
	f := ForUserPapers("u1", nil)
	require.Len(t, f.AnyOf, 1)
	assert.Equal(t, Condition{MetaUserID: "u1"}, f.AnyOf[0])
}

func TestConditionSQL(t *testing.T) {
	where, args, err := conditionSQL(Condition{MetaPaperID: "p1", MetaUserID: "u1"}, 1)
	require.NoError(t, err)
	// Keys render in sorted order with sequential placeholders.
	assert.Equal(t, "paper_id = $1 AND user_id = $2", where)
	assert.Equal(t, []any{"p1", "u1"}, args)
}

func TestConditionSQL_RejectsUnknownKey(t *testing.T) {
	_, _, err := conditionSQL(Condition{"evil; DROP TABLE": "x"}, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown filter key")
}

func TestFilterSQL_Disjunction(t *testing.T) {
	f := ForUserPapers("u1", []string{"p1", "p2"})
	where, args, err := filterSQL(f, 2)
	require.NoError(t, err)
	assert.Equal(t, "(paper_id = $2 AND user_id = $3) OR (paper_id = $4 AND user_id = $5)", where)
	assert.Equal(t, []any{"p1", "u1", "p2", "u1"}, args)
}

func TestFilterSQL_EmptyFilter(t *testing.T) {
	where, args, err := filterSQL(nil, 1)
	require.NoError(t, err)
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestVectorLiteralRoundTrip(t *testing.T) {
	in := []float32{0.25, -1, 3.5}
	lit := vectorLiteral(in)
	assert.Equal(t, "[0.25,-1,3.5]", lit)

	out, err := parseVectorLiteral(lit)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestParseVectorLiteral_Empty(t *testing.T) {
	out, err := parseVectorLiteral("[]")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestChunk(t *testing.T) {
	items := make([]int, 250)
	batches := chunk(items, 100)
	require.Len(t, batches, 3)
	assert.Len(t, batches[0], 100)
	assert.Len(t, batches[2], 50)

	assert.Nil(t, chunk([]int{}, 100))
}

func TestDocumentID(t *testing.T) {
	assert.Equal(t, "user_u1_paper_2401.00001", DocumentID("u1", "2401.00001"))
}
