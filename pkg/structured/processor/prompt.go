package processor

// ABOUTME: Repair prompt construction for healing rounds
// ABOUTME: Embeds the malformed payload, target schema, and corrected-JSON-only instructions

import (
	"fmt"
	"strings"

	schemaDomain "github.com/estiens/open-router-enhanced-sub001/pkg/schema/domain"
	"github.com/estiens/open-router-enhanced-sub001/pkg/util/json"
)

// RepairSystemPrompt is the system message sent with every heal round.
const RepairSystemPrompt = "You are a JSON repair assistant. You receive malformed or " +
	"schema-violating JSON and respond with a corrected JSON document only. " +
	"Never include explanations, markdown code blocks, or any text around the JSON."

// BuildRepairPrompt constructs the user message for a heal round. It embeds
// the malformed payload, the target schema when present, and the validation
// errors from the previous parse attempt so the healer knows what to fix.
func BuildRepairPrompt(malformed string, schema *schemaDomain.Schema, validationErrors []string) (string, error) {
	var b strings.Builder

	b.WriteString("The following text was supposed to be a valid JSON document but is not:\n\n")
	b.WriteString(malformed)
	b.WriteString("\n\n")

	if schema != nil {
		schemaJSON, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshaling schema: %w", err)
		}
		b.WriteString("The corrected document must conform to this JSON schema:\n\n")
		b.WriteString("```json\n")
		b.Write(schemaJSON)
		b.WriteString("\n```\n\n")
	}

	if len(validationErrors) > 0 {
		b.WriteString("The previous attempt failed validation with these errors:\n")
		for _, e := range validationErrors {
			b.WriteString("- ")
			b.WriteString(e)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("Respond with the corrected JSON only, following these guidelines:\n")
	b.WriteString("1. Do not include any explanations, markdown code blocks, or additional text before or after the JSON.\n")
	b.WriteString("2. Preserve every piece of salvageable data from the original text.\n")
	if schema != nil && len(schema.Required) > 0 {
		b.WriteString("3. The required fields are: ")
		b.WriteString(strings.Join(schema.Required, ", "))
		b.WriteString(".\n")
	}

	return b.String(), nil
}
