package view

// Theming for the annotator window. InitStyles activates the base theme and
// configures the semantic colours used by the panels.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Palette defines core semantic colors used across widgets.
const (
	ColorBg        = "#f7f9fb" // app background
	ColorSurface   = "#ffffff" // image panel backdrop
	ColorBorder    = "#d0d7de"
	ColorDanger    = "#dc2626"
	ColorText      = "#1e293b"
	ColorTextMuted = "#64748b"
)

// style names used with Style("danger.TButton") etc.
const (
	StylePrimaryButton = "primary.TButton"
	StyleDangerButton  = "danger.TButton"
)

// InitStyles applies the theme. Call once after Tk is up and before Build.
func InitStyles() {
	_ = ActivateTheme("azure light") // baseline metrics
	App.Configure(Background(ColorBg))

	StyleConfigure(StylePrimaryButton,
		Foreground(ColorText),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleDangerButton,
		Background(ColorDanger),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
}

// statusColor picks the status line colour.
func statusColor(isError bool) string {
	if isError {
		return ColorDanger
	}
	return ColorTextMuted
}
