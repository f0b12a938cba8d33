package category

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

type rulesFile struct {
	Rules []Rule `toml:"rule"`
}

// LoadRules reads an ordered rule list from a TOML file. File order is
// priority order.
func LoadRules(path string) ([]Rule, error) {
	var f rulesFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("decoding rules file: %w", err)
	}

	if len(f.Rules) == 0 {
		return nil, fmt.Errorf("rules file %s contains no rules", path)
	}

	return f.Rules, nil
}

// DefaultRules is the compiled-in rule list, used when no rules file is
// configured.
func DefaultRules() []Rule {
	return []Rule{
		{Category: "groceries", Keywords: []string{"supermarket", "שופרסל", "רמי לוי", "ויקטורי", "יינות ביתן", "מגה"}},
		{Category: "dining", Keywords: []string{"restaurant", "cafe", "מסעדה", "קפה", "wolt", "פיצה"}},
		{Category: "transport", Keywords: []string{"fuel", "paz", "delek", "דלק", "פז", "סונול", "רב קו", "gett"}},
		{Category: "utilities", Keywords: []string{"electric", "חשמל", "מים", "bezeq", "בזק", "hot", "cellcom", "סלקום", "פרטנר"}},
		{Category: "insurance", Keywords: []string{"insurance", "ביטוח", "הראל", "מגדל", "כלל ביטוח"}},
		{Category: "health", Keywords: []string{"pharm", "פארם", "מכבי", "כללית", "קופת חולים"}},
		{Category: "entertainment", Keywords: []string{"netflix", "spotify", "cinema", "סינמה", "yes", "סטימצקי"}},
		{Category: "salary", Keywords: []string{"salary", "משכורת", "שכר"}},
	}
}
