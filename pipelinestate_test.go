package main

import "testing"

func TestPipelineStateInitialConditions(t *testing.T) {
	p := NewPipelineState()
	if p.GeometryMode != GeomClipping {
		t.Fatalf("GeometryMode = %#x, want GeomClipping", p.GeometryMode)
	}
	if p.PipeBusy || p.LoadBusy {
		t.Fatal("busy flags should start clear")
	}
	if p.RenderTile != 0 || p.RenderTileOn {
		t.Fatal("render tile should start at 0/off")
	}
}

func TestPipelineStatePipeSyncWarnsWhenClean(t *testing.T) {
	p := NewPipelineState()
	d := newTestDiagnostics()
	p.PipeSync(d)
	if d.warningCount != 1 {
		t.Fatalf("warningCount = %d, want 1 for a superfluous pipesync", d.warningCount)
	}
}

func TestPipelineStatePipeSyncClearsBusy(t *testing.T) {
	p := NewPipelineState()
	p.PipeBusy = true
	d := newTestDiagnostics()
	p.PipeSync(d)
	if p.PipeBusy {
		t.Fatal("PipeSync should clear PipeBusy")
	}
	if d.warningCount != 0 {
		t.Fatal("clearing a genuinely busy flag should not warn")
	}
}

func TestPipelineStateTileSync(t *testing.T) {
	p := NewPipelineState()
	p.TileBusy[3] = 1
	d := newTestDiagnostics()
	p.TileSync(d)
	for i, b := range p.TileBusy {
		if b != 0 {
			t.Fatalf("TileBusy[%d] = %d after TileSync, want 0", i, b)
		}
	}
	if d.warningCount != 0 {
		t.Fatal("clearing a genuinely busy tile should not warn")
	}
}

func TestPipelineStateFullSyncLatches(t *testing.T) {
	p := NewPipelineState()
	p.PipeBusy = true
	p.LoadBusy = true
	p.TileBusy[0] = 1
	p.FullSync()
	if p.PipeBusy || p.LoadBusy || p.TileBusy[0] != 0 {
		t.Fatal("FullSync should clear all busy flags")
	}
	if !p.fullSyncSeen {
		t.Fatal("FullSync should latch fullSyncSeen")
	}
}

func TestPipelineStateSetColorImageValid(t *testing.T) {
	p := NewPipelineState()
	backend := newFakeRDRAMBackend(1 << 20)
	r := NewRDRAMReader(backend)
	d := newTestDiagnostics()

	p.SetColorImage(d, r, FmtRGBA, SizBits16, 320, 0x1000)
	if d.Crashed() {
		t.Fatal("a valid, aligned color image binding should not crash")
	}
	if !p.ColorImage.set || p.ColorImage.Addr != 0x1000 {
		t.Fatalf("ColorImage = %+v, not stored correctly", p.ColorImage)
	}
}

func TestPipelineStateSetColorImageBadAlignment(t *testing.T) {
	p := NewPipelineState()
	backend := newFakeRDRAMBackend(1 << 20)
	r := NewRDRAMReader(backend)
	d := newTestDiagnostics()

	p.SetColorImage(d, r, FmtRGBA, SizBits16, 320, 0x1001)
	if !d.Crashed() {
		t.Fatal("a 64-byte misaligned color image address must be fatal")
	}
}

func TestPipelineStateSetScissorRejectsEmpty(t *testing.T) {
	p := NewPipelineState()
	backend := newFakeRDRAMBackend(1 << 20)
	r := NewRDRAMReader(backend)
	d := newTestDiagnostics()

	p.SetScissor(d, r, 10, 10, 10, 20)
	if !d.Crashed() {
		t.Fatal("a zero-width scissor region must be fatal")
	}
}

func TestPipelineStateScissorCimgCrossCheckRunsOnce(t *testing.T) {
	p := NewPipelineState()
	backend := newFakeRDRAMBackend(1 << 20)
	r := NewRDRAMReader(backend)
	d := newTestDiagnostics()

	p.SetColorImage(d, r, FmtRGBA, SizBits16, 320, 0x1000)
	p.SetScissor(d, r, 0, 0, 320<<2, 240<<2)
	if !p.cimgScissorValid {
		t.Fatal("cimgScissorValid should latch true after the cross-check runs")
	}
}

func TestPipelineStateSetTextureImageValid(t *testing.T) {
	p := NewPipelineState()
	backend := newFakeRDRAMBackend(1 << 20)
	r := NewRDRAMReader(backend)
	d := newTestDiagnostics()

	p.SetTextureImage(d, r, FmtRGBA, SizBits16, 32, 0x2000)
	if d.Crashed() {
		t.Fatal("a valid RGBA16 texture image should not crash")
	}
}

func TestPipelineStateSetTextureImageBadFmtSiz(t *testing.T) {
	p := NewPipelineState()
	backend := newFakeRDRAMBackend(1 << 20)
	r := NewRDRAMReader(backend)
	d := newTestDiagnostics()

	p.SetTextureImage(d, r, FmtRGBA, SizBits4, 32, 0x2000)
	if !d.Crashed() {
		t.Fatal("RGBA has no 4-bit format; this combination must be fatal")
	}
}

func TestPipelineStateScissorTooWideForCimg(t *testing.T) {
	p := NewPipelineState()
	backend := newFakeRDRAMBackend(1 << 20)
	r := NewRDRAMReader(backend)
	d := newTestDiagnostics()

	p.SetColorImage(d, r, FmtRGBA, SizBits16, 16, 0x1000)
	p.SetScissor(d, r, 0, 0, (16<<2)+4, 4<<2)
	if !d.Crashed() {
		t.Fatal("a scissor region wider than the bound color image must be fatal")
	}
}

func TestPipelineStateSetFillColor(t *testing.T) {
	p := NewPipelineState()
	if p.FillColorSet {
		t.Fatal("FillColorSet should start false")
	}
	p.SetFillColor(0xFF0000FF)
	if !p.FillColorSet || p.FillColor != 0xFF0000FF {
		t.Fatalf("fill color not stored: %+v", p)
	}
}
