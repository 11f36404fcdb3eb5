package contentlog

// Classifier turns content log lines into Events. It is immutable after
// construction and safe to share.
type Classifier struct {
	patterns []Pattern
}

// NewClassifier returns a Classifier over the six content log shapes.
func NewClassifier() *Classifier {
	return &Classifier{patterns: defaultPatterns()}
}

// Patterns returns a copy of the patterns in classification order.
func (c *Classifier) Patterns() []Pattern {
	out := make([]Pattern, len(c.patterns))
	copy(out, c.patterns)
	return out
}

// Classify returns the Event for the first pattern that matches line.
func (c *Classifier) Classify(line string) (Event, bool) {
	for _, p := range c.patterns {
		if ev, ok := p.Match(line); ok {
			return ev, true
		}
	}
	return nil, false
}

// Window classifies lines in order, dropping the ones no pattern recognises.
func (c *Classifier) Window(lines []string) []Event {
	if len(lines) == 0 {
		return nil
	}
	events := make([]Event, 0, len(lines)/4)
	for _, line := range lines {
		if ev, ok := c.Classify(line); ok {
			events = append(events, ev)
		}
	}
	return events
}
