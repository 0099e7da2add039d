package main

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// scriptHook runs a user-supplied Lua script's on_step callback after every
// decoded macro, letting a session script inspect or annotate the trace
// (spec.md §6 --script), grounded on the teacher's go.mod dependency on
// gopher-lua (unused in the teacher's own source).
type scriptHook struct {
	state  *lua.LState
	onStepFn *lua.LFunction
}

// loadScriptHook compiles path and resolves its on_step(ngfx, pc, name)
// global function, if one is defined.
func loadScriptHook(path string) (*scriptHook, error) {
	L := lua.NewState()
	if err := L.DoFile(path); err != nil {
		L.Close()
		return nil, fmt.Errorf("gbd: loading script %q: %w", path, err)
	}
	h := &scriptHook{state: L}
	if fn, ok := L.GetGlobal("on_step").(*lua.LFunction); ok {
		h.onStepFn = fn
	}
	return h, nil
}

// onStep invokes the script's on_step callback, if defined, passing the
// current command count, program counter, and decoded macro name.
func (h *scriptHook) onStep(i *Interpreter, m Macro) {
	if h.onStepFn == nil {
		return
	}
	L := h.state
	err := L.CallByParam(lua.P{
		Fn:      h.onStepFn,
		NRet:    0,
		Protect: true,
	}, lua.LNumber(i.NGfx), lua.LNumber(i.PC), lua.LString(m.Name))
	if err != nil {
		i.Diag.Notef("script error: %v\n", err)
	}
}

// Close releases the Lua interpreter state.
func (h *scriptHook) Close() {
	h.state.Close()
}
