package theme

// NewGilded creates the default theme: gold accents on deep slate.
func NewGilded() *Theme {
	return &Theme{
		Name:   "gilded",
		IsDark: true,

		Primary:   "#eab308", // gold-500
		Secondary: "#facc15", // gold-400
		Tertiary:  "#fef08a", // gold-200

		BgBase:     "#0f172a", // slate-900
		BgMantle:   "#0b1120",
		BgSurface0: "#1e293b", // slate-800
		BgSurface1: "#334155", // slate-700
		BgOverlay:  "#475569", // slate-600

		FgMuted:  "#64748b", // slate-500
		FgSubtle: "#94a3b8", // slate-400
		FgBase:   "#e2e8f0", // slate-200
		FgBright: "#f8fafc", // slate-50

		Success: "#4ade80",
		Warning: "#fbbf24",
		Error:   "#f87171", // red-400
		Info:    "#60a5fa",

		DiffInsertBg: "#1f3324",
		DiffDeleteBg: "#3a2026",
	}
}

// NewCatppuccinMocha creates the Catppuccin Mocha theme.
func NewCatppuccinMocha() *Theme {
	return &Theme{
		Name:   "catppuccin-mocha",
		IsDark: true,

		Primary:   "#cba6f7", // Mauve
		Secondary: "#b4befe", // Lavender
		Tertiary:  "#f5c2e7", // Pink

		BgBase:     "#1e1e2e",
		BgMantle:   "#181825",
		BgSurface0: "#313244",
		BgSurface1: "#45475a",
		BgOverlay:  "#6c7086",

		FgMuted:  "#6c7086",
		FgSubtle: "#a6adc8",
		FgBase:   "#cdd6f4",
		FgBright: "#ffffff",

		Success: "#a6e3a1",
		Warning: "#f9e2af",
		Error:   "#f38ba8",
		Info:    "#89b4fa",

		DiffInsertBg: "#303a30",
		DiffDeleteBg: "#3a3030",
	}
}
