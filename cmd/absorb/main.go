package main

import (
	"fmt"
	"log"
	"os"

	"startup-compliance-be/internal/config"
	"startup-compliance-be/pkg/guidance"
	"startup-compliance-be/pkg/markdown"

	"github.com/fatih/color"
)

// Offline classification probe: feed it a markdown file and see exactly which
// checklists, items and documents an absorption would create, without touching
// the database.
func main() {
	if len(os.Args) < 2 {
		log.Fatalf("Usage: %s <guidance.md>", os.Args[0])
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("Error: failed to read %s: %v", os.Args[1], err)
	}

	cfg := config.Load()
	keywords := guidance.DefaultKeywords()
	if cfg.Guidance.ComplianceKeywords != nil {
		keywords.Compliance = cfg.Guidance.ComplianceKeywords
	}
	if cfg.Guidance.DocumentKeywords != nil {
		keywords.Document = cfg.Guidance.DocumentKeywords
	}
	if cfg.Guidance.DocumentExtraKeywords != nil {
		keywords.DocumentExtras = cfg.Guidance.DocumentExtraKeywords
	}

	classifier := guidance.NewClassifier(keywords)
	parsed := classifier.Classify(markdown.Parse(string(raw)))

	color.Cyan("🔍 Classification of %s\n", os.Args[1])

	color.Yellow("\nSections (%d):", len(parsed.Sections))
	for _, section := range parsed.Sections {
		color.Green("  %s", section.Title)
		for i, item := range section.ChecklistItems {
			fmt.Printf("    %d. %s\n", i+1, item)
		}
	}

	color.Yellow("\nCompliance checklist (%d items):", len(parsed.ComplianceChecklist))
	for i, item := range parsed.ComplianceChecklist {
		fmt.Printf("  %d. %s\n", i+1, item)
	}

	color.Yellow("\nDocument requirements (%d, duplicates kept):", len(parsed.DocumentRequirements))
	for _, name := range parsed.DocumentRequirements {
		fmt.Printf("  - %s\n", name)
	}

	if len(parsed.Sections) == 0 && len(parsed.ComplianceChecklist) == 0 && len(parsed.DocumentRequirements) == 0 {
		color.Red("\nNothing extracted: absorption would create no records.")
	}
}
