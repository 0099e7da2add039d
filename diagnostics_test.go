package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestDiagnosticsEmitError(t *testing.T) {
	var buf bytes.Buffer
	d := NewDiagnostics(&buf, false)
	d.Emit(DiagAddrNotInRdram)
	if !d.Crashed() {
		t.Fatal("expected error diagnostic to latch crashed")
	}
	if d.errorCount != 1 {
		t.Fatalf("errorCount = %d, want 1", d.errorCount)
	}
	if !strings.Contains(buf.String(), "Address not in rdram") {
		t.Fatalf("output %q missing expected message", buf.String())
	}
}

func TestDiagnosticsEmitWarningDoesNotCrash(t *testing.T) {
	var buf bytes.Buffer
	d := NewDiagnostics(&buf, false)
	d.Emit(DiagMissingPipesync)
	if d.Crashed() {
		t.Fatal("warning must not latch crashed")
	}
	if d.warningCount != 1 {
		t.Fatalf("warningCount = %d, want 1", d.warningCount)
	}
}

func TestDiagnosticsQuietSuppressesWarnings(t *testing.T) {
	var buf bytes.Buffer
	d := NewDiagnostics(&buf, true)
	d.Emit(DiagMissingPipesync)
	if buf.Len() != 0 {
		t.Fatalf("quiet mode printed output: %q", buf.String())
	}
	if d.warningCount != 1 {
		t.Fatal("warning count should still be tracked in quiet mode")
	}
}

func TestDiagnosticsQuietStillReportsErrors(t *testing.T) {
	var buf bytes.Buffer
	d := NewDiagnostics(&buf, true)
	d.Emit(DiagAddrNotInRdram)
	if buf.Len() == 0 {
		t.Fatal("quiet mode must still print errors")
	}
	if !d.Crashed() {
		t.Fatal("error must still latch crashed in quiet mode")
	}
}

func TestDiagnosticsCrashedLatchIsSticky(t *testing.T) {
	var buf bytes.Buffer
	d := NewDiagnostics(&buf, false)
	d.Emit(DiagAddrNotInRdram)
	d.Emit(DiagMissingPipesync)
	if !d.Crashed() {
		t.Fatal("crashed latch must remain set after a later warning")
	}
}

func TestDiagnosticsTemplateArgs(t *testing.T) {
	var buf bytes.Buffer
	d := NewDiagnostics(&buf, false)
	d.Emit(DiagInvalidSegmentNum, 7)
	if !strings.Contains(buf.String(), "Invalid segment number 7") {
		t.Fatalf("output %q missing formatted template", buf.String())
	}
}
