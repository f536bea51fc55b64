package logging

import (
	"strings"
	"sync"
)

// PanelSink keeps the last N log lines and publishes them to a callback,
// typically a UI text binding.
type PanelSink struct {
	mu      sync.Mutex
	lines   []string
	limit   int
	publish func(string)
}

// NewPanelSink returns a sink holding at most limit lines.
func NewPanelSink(limit int, publish func(string)) *PanelSink {
	if limit <= 0 {
		limit = 200
	}
	return &PanelSink{limit: limit, publish: publish}
}

// Write implements io.Writer.
func (p *PanelSink) Write(b []byte) (int, error) {
	p.mu.Lock()
	text := strings.ReplaceAll(string(b), "\r\n", "\n")
	for _, part := range strings.Split(text, "\n") {
		if part == "" {
			continue
		}
		p.lines = append(p.lines, part)
	}
	if len(p.lines) > p.limit {
		p.lines = p.lines[len(p.lines)-p.limit:]
	}
	joined := strings.Join(p.lines, "\n")
	p.mu.Unlock()
	if p.publish != nil {
		p.publish(joined)
	}
	return len(b), nil
}

// Text returns the buffered lines joined by newlines.
func (p *PanelSink) Text() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return strings.Join(p.lines, "\n")
}
