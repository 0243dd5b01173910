package deal

import (
	_ "embed"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed keywords.yaml
var keywordsYAML []byte

type categoryDef struct {
	Score    int      `yaml:"score"`
	Keywords []string `yaml:"keywords"`
}

type keywordFile struct {
	Categories map[string]categoryDef `yaml:"categories"`
}

var categoryDefs map[string]categoryDef

func init() {
	var f keywordFile
	if err := yaml.Unmarshal(keywordsYAML, &f); err != nil {
		panic("deal: invalid embedded keywords.yaml: " + err.Error())
	}
	categoryDefs = f.Categories
}

// KnownCategory reports whether the extractor's category label is one we
// track. Unknown labels fall back to "other".
func KnownCategory(category string) bool {
	_, ok := categoryDefs[strings.ToLower(strings.TrimSpace(category))]
	return ok
}

// CanonicalCategory maps an extractor label onto our fixed category set.
func CanonicalCategory(category string) string {
	c := strings.ToLower(strings.TrimSpace(category))
	if _, ok := categoryDefs[c]; ok {
		return c
	}
	return "other"
}

// TitleMatchesCategory checks category/keyword coherence: whether any
// keyword from the category's fixed set appears in the normalized title.
// Categories with empty keyword sets always cohere.
func TitleMatchesCategory(title, category string) bool {
	def, ok := categoryDefs[CanonicalCategory(category)]
	if !ok || len(def.Keywords) == 0 {
		return true
	}
	norm := NormalizeTitle(title)
	for _, kw := range def.Keywords {
		if strings.Contains(norm, NormalizeTitle(kw)) {
			return true
		}
	}
	return false
}

// CategoryScore is the downstream sort weight for a category. Computed after
// ranking, purely presentational.
func CategoryScore(category string) int {
	def, ok := categoryDefs[CanonicalCategory(category)]
	if !ok {
		return 0
	}
	return def.Score
}
