package main

import "fmt"

// PrintPostMortem prints the crash report: the fatal diagnostic already
// printed by Diagnostics.Emit, followed by the display-list call stack,
// open debug scopes, and the segment table (spec.md §4.3 termination).
func PrintPostMortem(i *Interpreter) {
	fmt.Fprintf(i.Out, "\n--- post-mortem ---\n")
	fmt.Fprintf(i.Out, "crashed at packet %d, pc=%08X\n", i.NGfx, i.PC)

	printBacktrace(i)
	printDebugScopes(i)
	printSegmentTable(i)
}

// printBacktrace walks the DLStack deepest-last, matching debug_backtrace.go's
// one-frame-per-line convention.
func printBacktrace(i *Interpreter) {
	frames := i.DLStack.Frames()
	if len(frames) == 0 {
		fmt.Fprintf(i.Out, "display-list stack: empty\n")
		return
	}
	fmt.Fprintf(i.Out, "display-list stack (%d frames):\n", len(frames))
	for depth, pc := range frames {
		fmt.Fprintf(i.Out, "  #%d  return to %08X\n", depth, pc)
	}
}

// printDebugScopes prints any NoOp debug scopes still open at the point of
// the crash.
func printDebugScopes(i *Interpreter) {
	if len(i.DebugScopes) == 0 {
		return
	}
	fmt.Fprintf(i.Out, "open debug scopes:\n")
	for _, scope := range i.DebugScopes {
		fmt.Fprintf(i.Out, "  %q opened at %08X\n", scope.Tag, scope.PC)
	}
}

// printSegmentTable dumps every assigned segment base.
func printSegmentTable(i *Interpreter) {
	fmt.Fprintf(i.Out, "segment table:\n")
	for n := 0; n < numSegments; n++ {
		base, assigned := i.Segments.Base(n)
		if !assigned {
			continue
		}
		fmt.Fprintf(i.Out, "  segment %2d = %08X\n", n, base)
	}
}
