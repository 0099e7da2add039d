package main

import (
	"bytes"
	"fmt"

	"golang.design/x/clipboard"
)

// CopyReportToClipboard copies report to the system clipboard (spec.md §6
// --copy-report), the write-direction counterpart of the teacher's
// handleClipboardPaste (clipboard.Init / clipboard.Write rather than Read).
func CopyReportToClipboard(report []byte) error {
	if err := clipboard.Init(); err != nil {
		return fmt.Errorf("gbd: clipboard unavailable: %w", err)
	}
	clipboard.Write(clipboard.FmtText, report)
	return nil
}

// BuildReport renders a compact summary of the finished run, suitable for
// pasting into a bug report.
func BuildReport(i *Interpreter) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "gbd report: %d commands executed, pc=%08X, ucode=%s\n",
		i.NGfx, i.PC, i.ActiveUcode)
	if i.Diag.Crashed() {
		fmt.Fprintf(&buf, "terminated: crashed\n")
	} else if i.TaskDone {
		fmt.Fprintf(&buf, "terminated: task_done\n")
	}
	fmt.Fprintf(&buf, "warnings=%d errors=%d\n", i.Diag.warningCount, i.Diag.errorCount)
	return buf.Bytes()
}
