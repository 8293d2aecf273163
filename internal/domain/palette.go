package domain

// Colors is the fixed palette of allowed project colors.
var Colors = []string{
	"#6366f1", // Indigo
	"#8b5cf6", // Violet
	"#ec4899", // Pink
	"#ef4444", // Red
	"#f97316", // Orange
	"#eab308", // Yellow
	"#22c55e", // Green
	"#14b8a6", // Teal
	"#06b6d4", // Cyan
	"#3b82f6", // Blue
}

// ValidColor reports whether c is part of the palette.
func ValidColor(c string) bool {
	for _, color := range Colors {
		if color == c {
			return true
		}
	}
	return false
}
