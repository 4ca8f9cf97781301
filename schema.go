package proposalint

import "regexp"

// FieldKind is the primitive type a preamble field must decode to.
type FieldKind int

const (
	KindNumber FieldKind = iota
	KindString
)

// String returns the human-readable name used in diagnostics.
func (k FieldKind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	}
	return "unknown"
}

// FieldSpec describes one recognized preamble field. The set of specs and
// their canonical order are fixed for the process lifetime.
type FieldSpec struct {
	Name     string
	Kind     FieldKind
	Required bool
}

// fieldOrder is the canonical declared order of preamble fields. Its index
// is the field's canonical position for the order check.
var fieldOrder = []string{
	"proposal",
	"title",
	"author",
	"status",
	"category",
	"created",
	"updated",
}

var fieldSpecs = map[string]FieldSpec{
	"proposal": {Name: "proposal", Kind: KindNumber, Required: true},
	"title":    {Name: "title", Kind: KindString, Required: true},
	"author":   {Name: "author", Kind: KindString, Required: true},
	"status":   {Name: "status", Kind: KindString, Required: true},
	"category": {Name: "category", Kind: KindString},
	"created":  {Name: "created", Kind: KindString, Required: true},
	"updated":  {Name: "updated", Kind: KindString},
}

var statusValues = map[string]bool{
	"Draft":     true,
	"Review":    true,
	"Final":     true,
	"Withdrawn": true,
	"Living":    true,
}

var categoryValues = map[string]bool{
	"Core":       true,
	"Blockchain": true,
	"Meta":       true,
}

// dateFields are the fields whose string values must be dates.
var dateFields = map[string]bool{
	"created": true,
	"updated": true,
}

var (
	// headerRe extracts field names line by line from the raw block text.
	// Maps are not trusted to preserve source order, so the order check
	// re-scans the raw text instead.
	headerRe = regexp.MustCompile(`(?m)^([A-Za-z][A-Za-z0-9_-]*)\s*:`)

	// dateRe is the strict YYYY-MM-DD form with literal hyphens.
	dateRe = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

	// authorRe accepts "Name", "Name <email>", "Name (@handle)" and
	// "Name <email> (@handle)". A handle is 1-39 alphanumerics with
	// internal hyphens only.
	authorRe = regexp.MustCompile(`^([A-Za-z][-A-Za-z0-9 .']*?)(?:\s+<([^<>@\s]+@[^<>\s]+)>)?(?:\s+\(@([A-Za-z0-9](?:[A-Za-z0-9-]{0,37}[A-Za-z0-9])?)\))?$`)
)

// headerNames returns the field names in the order they appear in the raw
// block text.
func headerNames(raw string) []string {
	var names []string
	for _, m := range headerRe.FindAllStringSubmatch(raw, -1) {
		names = append(names, m[1])
	}
	return names
}
