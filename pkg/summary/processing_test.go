package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessingBodyRoundTrip(t *testing.T) {
	body := ProcessingBody(7)
	n, processing := ParseProcessing(body)
	assert.True(t, processing)
	assert.Equal(t, 7, n)
	assert.False(t, IsReady(body))
}

func TestParseProcessing_ReadyBodies(t *testing.T) {
	for _, body := range []string{
		"## 一言でいうと\n本文",
		"Plain summary text",
		"",
		"[PROCESSING] no number",
		"mid [PROCESSING_2] not a prefix",
	} {
		_, processing := ParseProcessing(body)
		assert.False(t, processing, "body %q", body)
		assert.True(t, IsReady(body))
	}
}

func TestParseProcessing_LargeEpoch(t *testing.T) {
	n, processing := ParseProcessing("[PROCESSING_103] 生成中")
	assert.True(t, processing)
	assert.Equal(t, 103, n)
}

func TestSafeNumber(t *testing.T) {
	// Normal bump: last seen plus the configured bump.
	assert.Equal(t, 101, SafeNumber(1, 100))
	assert.Equal(t, 103, SafeNumber(3, 100))
	assert.Equal(t, 205, SafeNumber(105, 100))
	// Floor: never below bump+1 even from zero.
	assert.Equal(t, 101, SafeNumber(0, 100))
	// A zero bump falls back to the default of 100.
	assert.Equal(t, 101, SafeNumber(1, 0))
}

func TestExtractOnePoint_HeadingForm(t *testing.T) {
	body := "# 論文要約\n\n## 一言でいうと\n注意機構だけで系列変換を実現した。\n\n## 背景\n..."
	assert.Equal(t, "注意機構だけで系列変換を実現した。", ExtractOnePoint(body, "一言でいうと"))
}

func TestExtractOnePoint_InlineForm(t *testing.T) {
	body := "一言でいうと: 蒸留で推論コストを半減させた。\n詳細は以下。"
	assert.Equal(t, "蒸留で推論コストを半減させた。", ExtractOnePoint(body, "一言でいうと"))
}

func TestExtractOnePoint_MultiLineSection(t *testing.T) {
	body := "## 一言でいうと\n行1。\n行2。\n\n## 次"
	assert.Equal(t, "行1。 行2。", ExtractOnePoint(body, "一言でいうと"))
}

func TestExtractOnePoint_MissingMarker(t *testing.T) {
	assert.Empty(t, ExtractOnePoint("本文のみ", "一言でいうと"))
	assert.Empty(t, ExtractOnePoint("本文のみ", ""))
}

func TestExtractOnePoint_CustomMarker(t *testing.T) {
	body := "## TL;DR\nOne line.\n\n## Rest"
	assert.Equal(t, "One line.", ExtractOnePoint(body, "TL;DR"))
}
