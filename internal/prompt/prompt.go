// Package prompt holds the stage prompt templates and renders them with
// literal token substitution.
//
// Placeholders are fixed $name tokens replaced with strings.ReplaceAll.
// Nothing here goes through fmt or text/template on purpose: the analysis
// user prompt embeds a serialized deals document, and a formatting engine
// would re-interpret the braces inside it.
package prompt

import (
	"embed"
	"strings"

	"github.com/rotisserie/eris"
)

//go:embed templates/*.txt
var templates embed.FS

// Template names.
const (
	ResearchSystem = "research_system"
	ResearchUser   = "research_user"
	AnalysisSystem = "analysis_system"
	AnalysisUser   = "analysis_user"
)

// Render loads the named template and substitutes each $key token with its
// value. Rendering the same inputs always yields byte-identical output.
// Unknown template names are an error; unreferenced substitution keys are
// silently ignored.
func Render(name string, subs map[string]string) (string, error) {
	b, err := templates.ReadFile("templates/" + name + ".txt")
	if err != nil {
		return "", eris.Wrapf(err, "prompt: unknown template %q", name)
	}

	out := string(b)
	for key, value := range subs {
		out = strings.ReplaceAll(out, "$"+key, value)
	}
	return out, nil
}
