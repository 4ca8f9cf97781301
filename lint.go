package proposalint

import "time"

// Rule is a single independent preamble check. Rules report their own
// diagnostics and never abort the remaining rules; no rule's execution
// depends on another rule's outcome.
type Rule func(l *Linter, p Preamble, node *PreambleNode, r Reporter)

// Linter validates preamble blocks. It holds no per-call state and is safe
// for concurrent use across documents.
type Linter struct {
	rules []Rule
	now   func() time.Time
}

// NewLinter creates a Linter with the full built-in rule set.
func NewLinter(opts ...func(*Linter)) *Linter {
	l := &Linter{now: time.Now}
	l.rules = []Rule{
		checkRequiredFields,
		checkUnknownFields,
		checkFieldOrder,
		checkDateFields,
		checkStatus,
		checkUpdatedForLiving,
		checkCategory,
		checkAuthors,
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// WithClock overrides the clock used by date recency checks. The default is
// time.Now.
func WithClock(now func() time.Time) func(*Linter) {
	return func(l *Linter) { l.now = now }
}

// Register appends a custom rule after the built-in ones.
func (l *Linter) Register(rule Rule) {
	if rule == nil {
		return
	}
	l.rules = append(l.rules, rule)
}

// Lint validates one preamble block, reporting every violation to r. When
// the block is not valid structured data (or a field has the wrong type),
// exactly one diagnostic is reported and no field-level rules run, since
// they all require a validly-typed mapping.
func (l *Linter) Lint(node *PreambleNode, r Reporter) {
	if node == nil || node.Kind != KindPreamble {
		return
	}
	p, err := ParsePreamble(node.Raw)
	if err != nil {
		r.Report(err.Error(), node)
		return
	}
	for _, rule := range l.rules {
		rule(l, p, node, r)
	}
}
