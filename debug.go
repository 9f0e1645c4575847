package marionette

import (
	"fmt"
	"log"
)

// globalDebug mirrors the most recently set Stage debug flag so that node
// operations (which lack a Stage pointer) can check it cheaply. Only valid
// with a single Stage; multiple Stages with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// diagf logs a recoverable diagnostic. Every not-found reference, dropped
// asset group, and skipped queue entry passes through here; none of them are
// errors to the caller.
func diagf(format string, args ...any) {
	log.Printf("marionette: "+format, args...)
}

// debugCheckDisposed panics with a descriptive message when a disposed node
// is used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("marionette debug: %s on disposed node %q", op, n.Name))
	}
}
