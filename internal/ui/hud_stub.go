//go:build !ebiten

package ui

import "shell-life/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Sim) *HUD { return nil }

// Flash is a no-op in the headless build.
func (h *HUD) Flash(string, ...any) {}

// Update is a no-op in the headless build.
func (h *HUD) Update() {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
