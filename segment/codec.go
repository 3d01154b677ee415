package segment

import (
	"strings"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/arloliu/go-edifact/edifact"
)

// rewriters caches one compiled rewriter per delimiter set. Every line of
// an interchange goes through the same advice, so the substitution plan is
// derived once and shared; the map is safe for concurrent use.
var rewriters = xsync.NewMapOf[edifact.ServiceStringAdvice, *rewriter]()

// ApplyServiceAdvice rewrites a raw segment line expressed in the custom
// delimiter set declared by advice into the canonical delimiter set
// ('+', '.', '?', '\''). It is pure and total: any input string yields an
// output, and already-escaped occurrences of delimiter characters stay
// escaped.
//
// The rewrite runs in three ordered passes; the order is load-bearing,
// in particular when the custom release indicator is the space character:
//
//  1. Canonical characters that the custom set does not use structurally
//     ('+', '.', '\'' where the custom counterpart differs) are escaped,
//     since after normalization they would collide with canonical syntax
//     they did not originally represent.
//  2. The custom release indicator is replaced by '?', keeping each escape
//     pair intact.
//  3. The custom delimiters are mapped to their canonical counterparts,
//     passing every sequence that starts with '?' through untouched.
func ApplyServiceAdvice(line string, advice edifact.ServiceStringAdvice) string {
	if advice.IsCanonical() {
		return line
	}

	w, _ := rewriters.LoadOrCompute(advice, func() *rewriter {
		return newRewriter(advice)
	})
	return w.rewrite(line)
}

// rewriter is the compiled substitution plan for one delimiter set.
type rewriter struct {
	advice edifact.ServiceStringAdvice

	// escapeSet marks canonical characters that must gain a release
	// indicator before normalization (pass 1).
	escapeSet [256]bool
	// replacement maps a custom delimiter byte to its canonical
	// counterpart (pass 3); zero means "copy through".
	replacement [256]byte
}

func newRewriter(advice edifact.ServiceStringAdvice) *rewriter {
	w := &rewriter{advice: advice}

	pairs := [3]struct {
		canonical byte
		custom    byte
	}{
		{edifact.DataElementSeparator, advice.DataElementSeparator},
		{edifact.DecimalNotation, advice.DecimalNotation},
		{edifact.SegmentTerminator, advice.SegmentTerminator},
	}
	for _, pair := range pairs {
		if pair.custom != pair.canonical {
			w.escapeSet[pair.canonical] = true
			w.replacement[pair.custom] = pair.canonical
		}
	}

	return w
}

func (w *rewriter) rewrite(line string) string {
	return w.replaceDelimiters(w.replaceRelease(w.escapeCanonical(line)))
}

// escapeCanonical is pass 1: every literal occurrence of a canonical
// delimiter character that differs from its custom counterpart gains a
// release indicator. Occurrences inside an existing escape pair are
// literal data already and stay as they are.
func (w *rewriter) escapeCanonical(line string) string {
	release := w.advice.ReleaseIndicator

	var sb strings.Builder
	sb.Grow(len(line) + 8)
	for i := 0; i < len(line); i++ {
		ch := line[i]
		if ch == release && i+1 < len(line) {
			sb.WriteByte(ch)
			sb.WriteByte(line[i+1])
			i++
			continue
		}
		if w.escapeSet[ch] {
			sb.WriteByte(edifact.ReleaseIndicator)
		}
		sb.WriteByte(ch)
	}
	return sb.String()
}

// replaceRelease is pass 2: each literal occurrence of the custom release
// indicator becomes '?', carrying its escaped byte along unchanged. This
// runs after pass 1 so that a space acting as release indicator is read as
// an escape, not as ordinary data.
func (w *rewriter) replaceRelease(line string) string {
	release := w.advice.ReleaseIndicator
	if release == edifact.ReleaseIndicator {
		return line
	}

	var sb strings.Builder
	sb.Grow(len(line))
	for i := 0; i < len(line); i++ {
		ch := line[i]
		if ch == release {
			sb.WriteByte(edifact.ReleaseIndicator)
			if i+1 < len(line) {
				sb.WriteByte(line[i+1])
				i++
			}
			continue
		}
		sb.WriteByte(ch)
	}
	return sb.String()
}

// replaceDelimiters is pass 3: custom delimiters become their canonical
// counterparts. Any sequence beginning with the canonical release
// indicator is a recognized escape by now and is copied through verbatim.
func (w *rewriter) replaceDelimiters(line string) string {
	var sb strings.Builder
	sb.Grow(len(line))
	for i := 0; i < len(line); i++ {
		ch := line[i]
		if ch == edifact.ReleaseIndicator {
			sb.WriteByte(ch)
			if i+1 < len(line) {
				sb.WriteByte(line[i+1])
				i++
			}
			continue
		}
		if canonical := w.replacement[ch]; canonical != 0 {
			sb.WriteByte(canonical)
			continue
		}
		sb.WriteByte(ch)
	}
	return sb.String()
}
