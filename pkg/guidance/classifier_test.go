package guidance

import (
	"testing"

	"startup-compliance-be/pkg/markdown"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stepGuidance = `### Step 1: Register
#### Actionable Steps
1. File Form A
2. Get Certificate B
### Compliance
1. Requirement X`

func classify(t *testing.T, input string) ParsedGuidance {
	t.Helper()
	return NewClassifier(DefaultKeywords()).Classify(markdown.Parse(input))
}

func TestClassifyStepGuidance(t *testing.T) {
	result := classify(t, stepGuidance)

	require.Len(t, result.Sections, 1)
	assert.Equal(t, "Step 1: Register", result.Sections[0].Title)
	assert.Equal(t, []string{"File Form A", "Get Certificate B"}, result.Sections[0].ChecklistItems)

	assert.Equal(t, []string{"Requirement X"}, result.ComplianceChecklist)

	// Both items match via "form" / "certificate".
	assert.Equal(t, []string{"File Form A", "Get Certificate B"}, result.DocumentRequirements)
}

func TestClassifyFenceStrippingIsTransparent(t *testing.T) {
	bare := classify(t, stepGuidance)
	fenced := classify(t, "```markdown\n"+stepGuidance+"\n```")

	assert.Equal(t, bare, fenced)
}

func TestClassifyAdaptiveGuidance(t *testing.T) {
	input := `## Market Research
1. Survey your customers
2. Review your goals

## Register the Business
1. Submit your Business License form
2. Collect the incorporation certificate

### Legal Requirements
1. Appoint an auditor`

	result := classify(t, input)

	require.Len(t, result.Sections, 2)
	assert.Equal(t, "Market Research", result.Sections[0].Title)
	assert.Equal(t, []string{"Survey your customers", "Review your goals"}, result.Sections[0].ChecklistItems)
	assert.Equal(t, "Register the Business", result.Sections[1].Title)

	// "Legal Requirements" is compliance-related: its list lands in the
	// compliance bucket, not in a third section.
	assert.Equal(t, []string{"Appoint an auditor"}, result.ComplianceChecklist)

	assert.Contains(t, result.DocumentRequirements, "Submit your Business License form")
	assert.Contains(t, result.DocumentRequirements, "Collect the incorporation certificate")
	assert.NotContains(t, result.DocumentRequirements, "Review your goals")
}

func TestClassifyBackfillsCompliance(t *testing.T) {
	input := `## Launch Prep
1. First task
2. Second task
3. Third task

## Marketing
1. Only task`

	result := classify(t, input)

	require.Len(t, result.Sections, 2)
	assert.Equal(t, []string{
		"Launch Prep: First task",
		"Launch Prep: Second task",
		"Marketing: Only task",
	}, result.ComplianceChecklist)
}

func TestClassifyNoStructure(t *testing.T) {
	result := classify(t, "Just a plain sentence with no markdown structure.")

	assert.Empty(t, result.Sections)
	assert.Empty(t, result.ComplianceChecklist)
	assert.Empty(t, result.DocumentRequirements)
}

func TestClassifyEmptyInput(t *testing.T) {
	result := classify(t, "")

	assert.Empty(t, result.Sections)
	assert.Empty(t, result.ComplianceChecklist)
	assert.Empty(t, result.DocumentRequirements)
}

func TestClassifyStepModeIgnoresUngatedLists(t *testing.T) {
	input := `### Step 1: Plan
1. Not actionable, no subheading
#### Actionable Steps
1. Gated item
## Trailing Notes
1. Trailing item`

	result := classify(t, input)

	require.Len(t, result.Sections, 1)
	assert.Equal(t, []string{"Gated item"}, result.Sections[0].ChecklistItems)
	// "Trailing Notes" is not a step heading: in step mode it opens no
	// section, disarms capture, and its list is dropped.
}

func TestClassifyStepExtrasOnlyInStepMode(t *testing.T) {
	step := classify(t, `### Step 1: File
#### Actionable Steps
1. Submit the MoA draft`)
	assert.Equal(t, []string{"Submit the MoA draft"}, step.DocumentRequirements)

	adaptive := classify(t, `## Filing
1. Submit the MoA draft`)
	assert.Empty(t, adaptive.DocumentRequirements)
}

func TestClassifyCustomKeywords(t *testing.T) {
	keywords := DefaultKeywords()
	keywords.Document = append(keywords.Document, "permit")

	result := NewClassifier(keywords).Classify(markdown.Parse(`## Zoning
1. Obtain the construction permit`))

	assert.Equal(t, []string{"Obtain the construction permit"}, result.DocumentRequirements)
}

func TestExtractDocumentRequirementsPreservesDuplicates(t *testing.T) {
	items := []string{"Business License", "Business License", "Review goals"}
	matches := ExtractDocumentRequirements(items, DefaultKeywords().Document)

	assert.Equal(t, []string{"Business License", "Business License"}, matches)
}
