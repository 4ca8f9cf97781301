package proposalint

import "fmt"

// Position represents a position in the source document.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// NodeKind discriminates document node types handed to the linter.
type NodeKind int

const (
	// KindPreamble identifies a front-matter preamble block.
	KindPreamble NodeKind = iota
)

// PreambleNode is one preamble block lifted out of a proposal document.
// The linter borrows it read-only for the duration of a single Lint call;
// it never mutates the node.
type PreambleNode struct {
	Kind NodeKind
	Raw  string   // raw YAML text between the fences, without the fence lines
	Pos  Position // position of the block's first content line in the document
}
