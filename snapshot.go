package main

import (
	"encoding/json"
	"os"
)

// stateSnapshot captures the Interpreter's substates for --dump-state,
// adapted from the teacher's save/load MachineSnapshot convention but
// JSON-encoded rather than a raw memory blob, since this tool's state is
// small, structured, and meant to be read by a human or a diffing script.
type stateSnapshot struct {
	NGfx        int      `json:"ngfx"`
	PC          uint32   `json:"pc"`
	ActiveUcode string   `json:"active_ucode"`
	Segments    [16]segmentEntry `json:"segments"`
	MatrixDepth int      `json:"matrix_stack_depth"`
	GeometryMode uint32  `json:"geometry_mode"`
	RenderTile  uint32   `json:"render_tile"`
	PipeBusy    bool     `json:"pipe_busy"`
	LoadBusy    bool     `json:"load_busy"`
	TileBusy    [8]int   `json:"tile_busy"`
}

type segmentEntry struct {
	Assigned bool   `json:"assigned"`
	Base     uint32 `json:"base"`
}

// TakeSnapshot captures i's current substates.
func TakeSnapshot(i *Interpreter) *stateSnapshot {
	snap := &stateSnapshot{
		NGfx:         i.NGfx,
		PC:           i.PC,
		ActiveUcode:  i.ActiveUcode.String(),
		MatrixDepth:  i.Matrices.Depth(),
		GeometryMode: i.Pipeline.GeometryMode,
		RenderTile:   i.Pipeline.RenderTile,
		PipeBusy:     i.Pipeline.PipeBusy,
		LoadBusy:     i.Pipeline.LoadBusy,
		TileBusy:     i.Pipeline.TileBusy,
	}
	for n := 0; n < numSegments; n++ {
		base, assigned := i.Segments.Base(n)
		snap.Segments[n] = segmentEntry{Assigned: assigned, Base: base}
	}
	return snap
}

// WriteSnapshotFile writes snap to path as indented JSON.
func WriteSnapshotFile(path string, snap *stateSnapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}
