package util

import "strings"

// CategoryIcon returns a Unicode icon for a course category.
// Matching is case-insensitive on whole words of the category.
func CategoryIcon(category string) string {
	lower := strings.ToLower(category)
	if icon, ok := categoryIcons[lower]; ok {
		return icon
	}
	for _, word := range strings.FieldsFunc(lower, func(r rune) bool {
		return r == ' ' || r == '-' || r == '/' || r == '&'
	}) {
		if icon, ok := categoryIcons[word]; ok {
			return icon
		}
	}
	return "📘"
}

var categoryIcons = map[string]string{
	"programming": "💻",
	"development": "💻",
	"dev":         "💻",
	"web":         "🌐",
	"frontend":    "🌐",
	"backend":     "🗄️",
	"data":        "📊",
	"science":     "🔬",
	"math":        "📐",
	"design":      "🎨",
	"art":         "🎨",
	"music":       "🎵",
	"language":    "🗣️",
	"languages":   "🗣️",
	"business":    "💼",
	"marketing":   "📣",
	"finance":     "💰",
	"security":    "🔐",
	"devops":      "⚙️",
	"ops":         "⚙️",
	"cloud":       "☁️",
	"ai":          "🤖",
	"writing":     "📝",
	"health":      "🩺",
	"photography": "📷",
}
