// Package summary coordinates LLM summary generation so that at most
// one generation runs system-wide per summary key, with concurrent
// requesters sharing the result. The database row is the only
// coordination primitive: a unique index arbitrates ownership and
// conditional updates transfer it.
package summary

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// processingPrefix encodes an in-flight placeholder at epoch n as the
// body prefix "[PROCESSING_n] ".
var processingRe = regexp.MustCompile(`^\[PROCESSING_(\d+)\]`)

// ProcessingBody builds the placeholder body for epoch n.
func ProcessingBody(n int) string {
	return fmt.Sprintf("[PROCESSING_%d] 生成中です。しばらくお待ちください。", n)
}

// ParseProcessing extracts the epoch from a placeholder body. ok is
// false for READY bodies.
func ParseProcessing(body string) (int, bool) {
	m := processingRe.FindStringSubmatch(strings.TrimSpace(body))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// IsReady reports whether the body is real content rather than a
// placeholder.
func IsReady(body string) bool {
	_, processing := ParseProcessing(body)
	return !processing
}

// SafeNumber picks the epoch for a placeholder re-inserted after the
// previous row disappeared. The large bump makes a collision with a
// resurrected owner statistically impossible.
func SafeNumber(lastSeen, bump int) int {
	if bump <= 0 {
		bump = 100
	}
	n := lastSeen + bump
	if min := bump + 1; n < min {
		n = min
	}
	return n
}
