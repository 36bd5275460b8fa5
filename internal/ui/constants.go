package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconFolder = "📁"
	IconOpen   = "📂"
)

// Window sizing
const (
	WindowWidth  float32 = 600
	WindowHeight float32 = 500
)

// Log panel
const (
	MaxLogLines  = 1000
	ReadyMessage = "Ready."
)
