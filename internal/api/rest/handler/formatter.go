package handler

import (
	"github.com/palemoky/name-chemi/internal/chemi"
)

// formatResult adds the strongest and weakest attributes to a result.
func formatResult(r *chemi.Result) map[string]any {
	return map[string]any{
		"names":               r.Names,
		"original_names":      r.OriginalNames,
		"score":               r.Score,
		"level":               r.Level,
		"attributes":          r.Attributes,
		"attribute_levels":    r.AttributeLevels,
		"strongest_attribute": formatAttributeScore(chemi.StrongestAttribute(r.Attributes)),
		"weakest_attribute":   formatAttributeScore(chemi.WeakestAttribute(r.Attributes)),
		"emoji_pair":          r.EmojiPair,
		"one_liner":           r.OneLiner,
		"date_scenario":       r.DateScenario,
		"date":                r.Date,
	}
}

func formatAttributeScore(s chemi.AttributeScore) map[string]any {
	return map[string]any{
		"attribute": s.Attribute,
		"label":     s.Attribute.Label(),
		"score":     s.Score,
	}
}

// formatAttributeLabels lists the attributes in their fixed order.
func formatAttributeLabels() []map[string]string {
	out := make([]map[string]string, 0, len(chemi.Attributes))
	for _, attr := range chemi.Attributes {
		out = append(out, map[string]string{
			"attribute": string(attr),
			"label":     attr.Label(),
		})
	}
	return out
}
