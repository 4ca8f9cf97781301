package proposalint

import (
	"bufio"
	"io"
	"strings"
)

const fence = "---"

// ExtractPreamble scans a proposal document for its front-matter block. The
// document must open with a "---" fence on the first line; the block runs to
// the next "---" line. The returned node carries the raw block text and the
// line position of its first content line.
//
// It returns ErrNoPreamble when the document does not open with a fence and
// ErrUnterminatedPreamble when the opening fence is never closed.
func ExtractPreamble(r io.Reader) (*PreambleNode, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, ErrNoPreamble
	}
	if strings.TrimRight(sc.Text(), "\r") != fence {
		return nil, ErrNoPreamble
	}

	var b strings.Builder
	line := 1
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if text == fence {
			return &PreambleNode{
				Kind: KindPreamble,
				Raw:  b.String(),
				Pos:  Position{Line: 2, Column: 1},
			}, nil
		}
		b.WriteString(text)
		b.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return nil, ErrUnterminatedPreamble
}
