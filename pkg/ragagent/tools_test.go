package ragagent

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSnippetKeepsRuneBoundary(t *testing.T) {
	// 3-byte runes; 200 is not a multiple of 3, so a byte cut would
	// split a rune.
	long := strings.Repeat("要約の抜粋", 20)
	got := snippet(long)
	assert.True(t, utf8.ValidString(got))
	assert.LessOrEqual(t, len(got), snippetLen)
	assert.Greater(t, len(got), snippetLen-utf8.UTFMax)

	short := "短いテキスト"
	assert.Equal(t, short, snippet(" "+short+" "))
}
