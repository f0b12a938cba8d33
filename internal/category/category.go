// Package category assigns a best-effort category to a transaction
// description using an ordered keyword rule list.
package category

import (
	"strings"

	"golang.org/x/text/cases"
)

// Rule maps a keyword set to a category. Rules are evaluated in slice order
// and the first rule with a matching keyword wins.
type Rule struct {
	Category string   `toml:"category"`
	Keywords []string `toml:"keywords"`
}

// Engine matches descriptions against a fixed rule list. It is immutable
// after construction and safe for concurrent use.
type Engine struct {
	rules []compiledRule
}

type compiledRule struct {
	category string
	keywords []string
}

func NewEngine(rules []Rule) *Engine {
	folder := cases.Fold()

	compiled := make([]compiledRule, 0, len(rules))

	for _, r := range rules {
		cr := compiledRule{category: r.Category}
		for _, kw := range r.Keywords {
			if kw == "" {
				continue
			}

			cr.keywords = append(cr.keywords, folder.String(kw))
		}

		compiled = append(compiled, cr)
	}

	return &Engine{rules: compiled}
}

// Categorize returns the category of the first rule whose keyword set
// contains a substring match against the case-folded description. It returns
// the empty string when nothing matches or the description is empty.
func (e *Engine) Categorize(description string) string {
	if description == "" {
		return ""
	}

	normalized := cases.Fold().String(description)

	for _, r := range e.rules {
		for _, kw := range r.keywords {
			if strings.Contains(normalized, kw) {
				return r.category
			}
		}
	}

	return ""
}
