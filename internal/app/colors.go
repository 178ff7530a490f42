package app

// languageColors are the display colors github associates with
// popular languages.
var languageColors = map[string]string{
	"JavaScript": "#f7df1e",
	"TypeScript": "#3178c6",
	"Python":     "#3572A5",
	"Java":       "#b07219",
	"C++":        "#f34b7d",
	"C":          "#555555",
	"C#":         "#178600",
	"Go":         "#00ADD8",
	"Rust":       "#dea584",
	"Ruby":       "#701516",
	"PHP":        "#4F5D95",
	"Swift":      "#F05138",
	"Kotlin":     "#A97BFF",
	"Dart":       "#00B4AB",
	"Scala":      "#c22d40",
	"Shell":      "#89e051",
	"HTML":       "#e34c26",
	"CSS":        "#563d7c",
	"Vue":        "#41b883",
	"SCSS":       "#c6538c",
	"Lua":        "#000080",
	"R":          "#198CE7",
	"Perl":       "#0298c3",
	"Haskell":    "#5e5086",
	"Elixir":     "#6e4a7e",
	"Clojure":    "#db5855",
}

const defaultLanguageColor = "#8b949e"

func languageColor(language string) string {
	if color, ok := languageColors[language]; ok {
		return color
	}

	return defaultLanguageColor
}
