package app

import "shell-life/internal/core"

// Session extends the minimal Sim contract with the interaction surface the
// driver exposes to the user: undo, rewind, clearing and rule switching.
type Session interface {
	core.Sim
	Undo() bool
	Scrub(index int) bool
	HistoryLen() int
	Generation() int
	Clear()
	SetRule(name string) bool
	LastStats() core.StepStats
}
