package input

import (
	"fmt"
	"os"
)

// frameStats holds per-frame event counts. Only logged when debug is true.
type frameStats struct {
	events   int
	rejected int
	injected int
}

// debugLog prints the finished frame's stats and subscriber backlog to stderr.
func (c *Context) debugLog() {
	if !c.debug || c.frame == 0 {
		return
	}
	backlog := 0
	for _, log := range c.subscribers {
		backlog += len(log)
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[input] frame %d | events: %d | injected: %d | rejected: %d | subscribers: %d | backlog: %d\n",
		c.frame, c.stats.events, c.stats.injected, c.stats.rejected, len(c.subscribers), backlog)
}

// debugf prints a single debug line to stderr when debug mode is on.
func (c *Context) debugf(format string, args ...any) {
	if !c.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[input] "+format+"\n", args...)
}
