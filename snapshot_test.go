package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestTakeSnapshotCapturesState(t *testing.T) {
	img := make([]byte, 0x100)
	interp, _ := newTestInterpreter(img)
	interp.PC = 0x1234
	interp.NGfx = 7
	interp.Pipeline.GeometryMode = GeomShade
	interp.Segments.Assign(interp.Diag, 4, 0x04000000)

	snap := TakeSnapshot(interp)
	if snap.PC != 0x1234 || snap.NGfx != 7 {
		t.Fatalf("snap = %+v, missing expected PC/NGfx", snap)
	}
	if snap.ActiveUcode != "F3DEX2" {
		t.Fatalf("ActiveUcode = %q, want F3DEX2", snap.ActiveUcode)
	}
	if !snap.Segments[4].Assigned || snap.Segments[4].Base != 0x04000000 {
		t.Fatalf("Segments[4] = %+v, want assigned 0x04000000", snap.Segments[4])
	}
	if snap.Segments[7].Assigned {
		t.Fatal("segment 7 was never assigned")
	}
}

func TestWriteSnapshotFileRoundTrip(t *testing.T) {
	img := make([]byte, 0x100)
	interp, _ := newTestInterpreter(img)
	interp.PC = 0x8

	snap := TakeSnapshot(interp)
	path := filepath.Join(t.TempDir(), "snap.json")
	if err := WriteSnapshotFile(path, snap); err != nil {
		t.Fatalf("WriteSnapshotFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var got stateSnapshot
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.PC != 0x8 {
		t.Fatalf("round-tripped PC = %#x, want 0x8", got.PC)
	}
}
