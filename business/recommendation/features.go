package recommendation

import (
	"regexp"
	"strings"

	"smartShop/domain"
)

// featurePattern captures "Label: value" clauses from a product description,
// e.g. "RAM: 8GB, Storage: 128GB". Commas, semicolons and colons all act as
// clause delimiters, so a value never swallows the next label.
var featurePattern = regexp.MustCompile(`([^:,;]+):\s*([^:,;]+)`)

// ExtractFeatures parses a free-text description into an attribute map.
// Empty or malformed input yields an empty map, never an error. Repeated
// keys: the last occurrence wins.
func ExtractFeatures(description string) domain.FeatureMap {
	features := make(domain.FeatureMap)

	if strings.TrimSpace(description) == "" {
		return features
	}

	for _, match := range featurePattern.FindAllStringSubmatch(description, -1) {
		key := strings.TrimSpace(match[1])
		value := strings.TrimSpace(match[2])
		if key == "" || value == "" {
			continue
		}
		features[key] = value
	}

	return features
}

// lookupFeature finds a value by case-insensitive key match.
func lookupFeature(features domain.FeatureMap, key string) (string, bool) {
	for k, v := range features {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return "", false
}
