package guidance

import (
	"strings"

	"startup-compliance-be/pkg/markdown"
)

// Section is a titled group of checklist items derived from one heading of the
// guidance document. Title uniqueness is enforced at reconciliation time, not
// here.
type Section struct {
	Title          string
	ChecklistItems []string
}

// ParsedGuidance is the classification of one guidance document.
type ParsedGuidance struct {
	Sections             []Section
	ComplianceChecklist  []string
	DocumentRequirements []string
}

type Classifier struct {
	keywords KeywordConfig
}

func NewClassifier(keywords KeywordConfig) *Classifier {
	return &Classifier{keywords: keywords}
}

// strategy parameterizes the single classification fold. Step-structured
// guidance ("### Step N" + "#### Actionable Steps") gates item capture on the
// actionable-steps subheading; free-form guidance captures the list that
// directly follows a section heading.
type strategy struct {
	isSectionHeading func(depth int, text string) bool
	gateOnActionable bool
	docKeywords      []string
}

func (c *Classifier) stepStrategy() strategy {
	return strategy{
		isSectionHeading: func(depth int, text string) bool {
			return depth == 3 && strings.HasPrefix(text, "Step") && !c.keywords.IsComplianceRelated(text)
		},
		gateOnActionable: true,
		docKeywords:      append(append([]string{}, c.keywords.Document...), c.keywords.DocumentExtras...),
	}
}

func (c *Classifier) adaptiveStrategy() strategy {
	return strategy{
		isSectionHeading: func(depth int, text string) bool {
			return (depth == 2 || depth == 3) &&
				!c.keywords.IsComplianceRelated(text) &&
				!strings.Contains(text, "Actionable Steps")
		},
		gateOnActionable: false,
		docKeywords:      append([]string{}, c.keywords.Document...),
	}
}

// Classify partitions a token stream into sections, the compliance bucket and
// document-requirement candidates. It is a pure fold over the stream; the
// worst case (no recognizable structure) is an empty result, never an error.
func (c *Classifier) Classify(tokens []markdown.Token) ParsedGuidance {
	hasStepHeadings := false
	for _, t := range tokens {
		if t.Type == markdown.TokenHeading && strings.HasPrefix(t.Text, "Step ") {
			hasStepHeadings = true
			break
		}
	}

	var strat strategy
	if hasStepHeadings {
		strat = c.stepStrategy()
	} else {
		strat = c.adaptiveStrategy()
	}

	result := c.fold(tokens, strat)
	c.backfillCompliance(&result)
	return result
}

func (c *Classifier) fold(tokens []markdown.Token, strat strategy) ParsedGuidance {
	var result ParsedGuidance

	var current *Section
	inCompliance := false
	// capturing guards list attribution to the open section. In step mode it
	// is armed by the "Actionable Steps" subheading; in adaptive mode it is
	// armed by the section heading itself and disarmed by any later depth-2/3
	// heading that does not open a section, so trailing lists are not
	// attributed to a section they do not belong to.
	capturing := false

	closeSection := func() {
		if current != nil {
			result.Sections = append(result.Sections, *current)
			current = nil
		}
	}

	for _, token := range tokens {
		switch token.Type {
		case markdown.TokenHeading:
			switch {
			case c.keywords.IsComplianceRelated(token.Text):
				closeSection()
				inCompliance = true
				capturing = false

			case strat.isSectionHeading(token.Depth, token.Text):
				closeSection()
				current = &Section{Title: token.Text}
				inCompliance = false
				capturing = !strat.gateOnActionable

			case strat.gateOnActionable && token.Depth == 4 && strings.Contains(token.Text, "Actionable Steps"):
				capturing = true

			case token.Depth == 2 || token.Depth == 3:
				// Unclassified structural heading: whatever follows no
				// longer belongs to the open section.
				capturing = false
			}

		case markdown.TokenList:
			switch {
			case inCompliance:
				result.ComplianceChecklist = append(result.ComplianceChecklist, token.Items...)
				result.DocumentRequirements = append(result.DocumentRequirements,
					ExtractDocumentRequirements(token.Items, strat.docKeywords)...)

			case current != nil && capturing:
				current.ChecklistItems = append(current.ChecklistItems, token.Items...)
				result.DocumentRequirements = append(result.DocumentRequirements,
					ExtractDocumentRequirements(token.Items, strat.docKeywords)...)
			}
			// Lists outside both buckets are ignored.
		}
	}

	closeSection()
	return result
}

// backfillCompliance guarantees every absorbed guidance document contributes a
// minimal compliance view: when no explicit compliance heading existed, the
// first two items of every section are promoted, prefixed with their section
// title.
func (c *Classifier) backfillCompliance(result *ParsedGuidance) {
	if len(result.ComplianceChecklist) > 0 || len(result.Sections) == 0 {
		return
	}
	for _, section := range result.Sections {
		items := section.ChecklistItems
		if len(items) > 2 {
			items = items[:2]
		}
		for _, item := range items {
			result.ComplianceChecklist = append(result.ComplianceChecklist, section.Title+": "+item)
		}
	}
}
