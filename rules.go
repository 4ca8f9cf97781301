package proposalint

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// checkRequiredFields reports every required field absent from the parsed
// mapping.
func checkRequiredFields(_ *Linter, p Preamble, node *PreambleNode, r Reporter) {
	for _, name := range fieldOrder {
		if !fieldSpecs[name].Required {
			continue
		}
		if _, ok := p[name]; !ok {
			r.Report(fmt.Sprintf("preamble is missing required field %q", name), node)
		}
	}
}

// checkUnknownFields reports every parsed key outside the recognized field
// set, in lexical order so output is deterministic.
func checkUnknownFields(_ *Linter, p Preamble, node *PreambleNode, r Reporter) {
	var unknown []string
	for name := range p {
		if _, ok := fieldSpecs[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		r.Report(fmt.Sprintf("unknown preamble field %q", name), node)
	}
}

// checkFieldOrder re-scans the raw text to recover the order fields were
// declared in, then walks it in lock-step against the canonical order
// restricted to the names actually present. Ordering is a single structural
// property, so the scan stops at the first mismatch.
func checkFieldOrder(_ *Linter, _ Preamble, node *PreambleNode, r Reporter) {
	found := headerNames(node.Raw)
	present := make(map[string]bool, len(found))
	for _, name := range found {
		present[name] = true
	}
	var expected []string
	for _, name := range fieldOrder {
		if present[name] {
			expected = append(expected, name)
		}
	}
	for i := 0; i < len(found) && i < len(expected); i++ {
		if found[i] != expected[i] {
			r.Report(fmt.Sprintf("preamble field %q is out of order, expected %q", found[i], expected[i]), node)
			return
		}
	}
}

// checkDateFields verifies each present date-typed field against the strict
// YYYY-MM-DD pattern and against today's date. The recency comparison is
// component-wise on year, month and day independently, not a calendar
// comparison.
func checkDateFields(l *Linter, p Preamble, node *PreambleNode, r Reporter) {
	now := l.now()
	for _, name := range fieldOrder {
		if !dateFields[name] {
			continue
		}
		s, ok := p.str(name)
		if !ok {
			continue
		}
		m := dateRe.FindStringSubmatch(s)
		if m == nil {
			r.Report(fmt.Sprintf("field %q value %q is not a date in YYYY-MM-DD form", name, s), node)
			continue
		}
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if year > now.Year() || month > int(now.Month()) || day > now.Day() {
			r.Report(fmt.Sprintf("field %q value %q must not be later than today", name, s), node)
		}
	}
}

// checkStatus verifies the status value against the fixed vocabulary.
// Matching is case-sensitive.
func checkStatus(_ *Linter, p Preamble, node *PreambleNode, r Reporter) {
	s, ok := p.str("status")
	if !ok {
		return
	}
	if !statusValues[s] {
		r.Report(fmt.Sprintf("field \"status\" value %q is not one of Draft, Review, Final, Withdrawn, Living", s), node)
	}
}

// checkUpdatedForLiving requires an "updated" field on living proposals.
// NB: this compares against the lowercase literal "living", while the status
// vocabulary holds "Living"; a value that passed the enum check never
// matches here. Kept verbatim pending clarification of the intended casing.
func checkUpdatedForLiving(_ *Linter, p Preamble, node *PreambleNode, r Reporter) {
	s, ok := p.str("status")
	if !ok || s != "living" {
		return
	}
	if _, ok := p["updated"]; !ok {
		r.Report("proposals with status \"living\" must have an \"updated\" field", node)
	}
}

// checkCategory verifies the category value against the fixed vocabulary.
// Matching is case-sensitive.
func checkCategory(_ *Linter, p Preamble, node *PreambleNode, r Reporter) {
	s, ok := p.str("category")
	if !ok {
		return
	}
	if !categoryValues[s] {
		r.Report(fmt.Sprintf("field \"category\" value %q is not one of Core, Blockchain, Meta", s), node)
	}
}

// checkAuthors splits the author field on commas and matches each entry
// against the author pattern. The first malformed entry stops the scan; if
// every entry parses but none carries a (@handle), the proposal has no
// attributable account and that is reported instead.
func checkAuthors(_ *Linter, p Preamble, node *PreambleNode, r Reporter) {
	s, ok := p.str("author")
	if !ok {
		return
	}
	hasHandle := false
	for _, part := range strings.Split(s, ",") {
		author := strings.TrimSpace(part)
		m := authorRe.FindStringSubmatch(author)
		if m == nil {
			r.Report(fmt.Sprintf("author %q is malformed; expected \"Name\", \"Name <email>\" or \"Name (@handle)\"", author), node)
			return
		}
		if m[3] != "" {
			hasHandle = true
		}
	}
	if !hasHandle {
		r.Report("at least one author must include a (@handle)", node)
	}
}
