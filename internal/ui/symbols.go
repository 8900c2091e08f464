package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess  = "✓" // Healthy / passing
	SymbolFail     = "✗" // Failed
	SymbolPending  = "○" // Not yet known
	SymbolProgress = "◐" // In progress
	SymbolComplete = "●" // Done
)
