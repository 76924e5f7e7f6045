package guidance

import "strings"

// KeywordConfig carries the keyword lists the classifier matches against.
// The defaults mirror the advice service's output conventions, but the lists
// are jurisdiction-specific and therefore configuration, not logic.
type KeywordConfig struct {
	// Compliance marks a heading as compliance-related.
	Compliance []string
	// Document marks a checklist item as a required document.
	Document []string
	// DocumentExtras extends Document matching for step-structured guidance,
	// where the advice service names concrete legal documents.
	DocumentExtras []string
}

func DefaultKeywords() KeywordConfig {
	return KeywordConfig{
		Compliance: []string{
			"compliance",
			"legal requirement",
			"regulatory",
			"regulation",
			"law",
			"legal",
			"requirement",
		},
		Document:       []string{"document", "certificate", "license", "form"},
		DocumentExtras: []string{"pan card", "moa", "aoa"},
	}
}

func containsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if kw != "" && strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// IsComplianceRelated reports whether a heading belongs to the compliance
// bucket rather than opening a regular section.
func (k KeywordConfig) IsComplianceRelated(headingText string) bool {
	return containsAny(headingText, k.Compliance)
}

// ExtractDocumentRequirements returns the items that look like required
// documents. Duplicates are preserved on purpose: deduplication happens once,
// at persistence time, so extraction counts stay meaningful.
func ExtractDocumentRequirements(items []string, keywords []string) []string {
	var matches []string
	for _, item := range items {
		if containsAny(item, keywords) {
			matches = append(matches, item)
		}
	}
	return matches
}
