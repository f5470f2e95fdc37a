package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/dashtab/dashtab/internal/model"
)

// AppTheme pins the Fyne variant to the configured light or dark theme
// instead of following the system, and tightens a few sizes for a grid of
// small tiles.
type AppTheme struct {
	variant fyne.ThemeVariant
}

// NewAppTheme creates a theme for the given setting
func NewAppTheme(setting model.Theme) fyne.Theme {
	variant := theme.VariantDark
	if setting == model.ThemeLight {
		variant = theme.VariantLight
	}
	return &AppTheme{variant: variant}
}

// Color returns theme colors for the pinned variant
func (t *AppTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255} // Blue for primary actions
	case theme.ColorNameBackground:
		if t.variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255} // Dark gray
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255} // Light gray
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, t.variant)
}

// Font returns theme fonts
func (t *AppTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *AppTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *AppTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameText:
		return 13 // Reduced from default 14
	case theme.SizeNameCaptionText:
		return 10 // Reduced from default 11
	}

	// Use default theme for everything else
	return theme.DefaultTheme().Size(name)
}
