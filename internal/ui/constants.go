package ui

import "time"

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconClose    = "×"
	IconMusic    = "🎵"
	IconFolder   = "📁"
	IconGlobe    = "🌐"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
)

// Layout sizing
const (
	WindowWidth  float32 = 820
	WindowHeight float32 = 680

	LogoSize          float32 = 32
	QualitySelectW    float32 = 110
	ResultRowMinWidth float32 = 420
	PlaceholderIconSz float32 = 36

	SettingsDialogWidth  float32 = 520
	SettingsDialogHeight float32 = 460
)

// Toast notification behavior
const (
	ToastAutoHide = 5 * time.Second
)
