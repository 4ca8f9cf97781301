package proposalint

// Diagnostic is one reported rule violation.
type Diagnostic struct {
	Message string
	Node    *PreambleNode
}

// Reporter receives diagnostics as they are found. Implementations must not
// panic and must not assume that reporting stops further checks.
type Reporter interface {
	Report(message string, node *PreambleNode)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(message string, node *PreambleNode)

func (f ReporterFunc) Report(message string, node *PreambleNode) { f(message, node) }

// Collector is a Reporter that accumulates diagnostics in order.
type Collector struct {
	Diagnostics []Diagnostic
}

func (c *Collector) Report(message string, node *PreambleNode) {
	c.Diagnostics = append(c.Diagnostics, Diagnostic{Message: message, Node: node})
}

// Messages returns just the message strings, in report order.
func (c *Collector) Messages() []string {
	out := make([]string, len(c.Diagnostics))
	for i, d := range c.Diagnostics {
		out[i] = d.Message
	}
	return out
}
