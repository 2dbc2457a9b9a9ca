package palisade

import "strings"

// ContextChain tracks error propagation across layers while preserving
// the public/internal split at every link. Index 0 is the root cause;
// the last link is the final symptom.
type ContextChain struct {
	links []*DualContextError
}

// NewContextChain starts a chain with a root error.
func NewContextChain(root *DualContextError) *ContextChain {
	return &ContextChain{links: []*DualContextError{root}}
}

// Push appends a propagated error as the new head.
func (c *ContextChain) Push(err *DualContextError) {
	c.links = append(c.links, err)
}

// Root returns the root cause.
func (c *ContextChain) Root() *DualContextError { return c.links[0] }

// Head returns the most recent error.
func (c *ContextChain) Head() *DualContextError { return c.links[len(c.links)-1] }

// Depth returns the number of links.
func (c *ContextChain) Depth() int { return len(c.links) }

// Links returns the chain from root to head for iteration.
func (c *ContextChain) Links() []*DualContextError { return c.links }

// ExternalSummary renders the public narrative progression from root to
// head, joined by arrows. Safe for untrusted display: only public
// contexts contribute.
func (c *ContextChain) ExternalSummary() string {
	parts := make([]string, 0, len(c.links))
	for _, e := range c.links {
		parts = append(parts, e.ExternalMessage())
	}
	return strings.Join(parts, " -> ")
}

// Destroy erases every link. Idempotent through the links' own Destroy.
func (c *ContextChain) Destroy() {
	for _, e := range c.links {
		e.Destroy()
	}
}
