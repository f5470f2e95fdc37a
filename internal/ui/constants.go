package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconAdd      = "+"
	IconClose    = "×"
	IconEdit     = "✎"
	IconDelete   = "🗑"
)

// Weather condition icons
const (
	IconClear        = "☀"
	IconPartlyCloudy = "⛅"
	IconCloudy       = "☁"
	IconRain         = "🌧"
	IconSnow         = "❄"
	IconStorm        = "⛈"
)

// Tile grid sizing
const (
	TileWidth    float32 = 104
	TileHeight   float32 = 104
	TileIconSize float32 = 32
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 320
	ToastHeight   float32 = 100
	ToastMargin   float32 = 20
	ToastAutoHide         = 5 * time.Second
)

// Dialog sizing
const (
	FavoriteDialogWidth  float32 = 440
	FavoriteDialogHeight float32 = 340
	SettingsDialogWidth  float32 = 540
	SettingsDialogHeight float32 = 560
)

// Clock refresh
const (
	ClockTick = time.Second
)

// Time/date display formats
const (
	ClockFormat = "15:04"
	DateFormat  = "Mon, Jan 2"
)
