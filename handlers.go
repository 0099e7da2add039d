package main

// macroHandlers is the dense dispatch table mapping a decoded macro id to
// its handler, per spec.md §9's "dynamic dispatch on opcode id... a dense
// table indexed by opcode-id" guidance and grounded on the teacher's own
// map[uint8]opcode dispatch-table idiom (bdwalton-gintendo/mos6502/mos6502.go).
// Each handlers_*.go file populates its slice of this table from init().
var macroHandlers = map[MacroID]func(*Interpreter, Macro){}

func registerHandler(id MacroID, fn func(*Interpreter, Macro)) {
	macroHandlers[id] = fn
}
