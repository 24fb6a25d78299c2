package ai

import (
	"fmt"
	"strings"
)

const classifyPromptTemplate = `You are a healthcare professional reviewing care visit notes. Please classify the following visit note into one of three categories based on the level of concern:

RED: Urgent/critical issues requiring immediate attention (safety concerns, medical emergencies, serious incidents, safeguarding issues)
AMBER: Moderate concerns that need follow-up (minor health changes, care plan adjustments needed, family concerns)
GREEN: Routine visit with no significant concerns (normal care delivery, positive outcomes, standard activities)

Visit Note: "%s"

Classification (respond with only RED, AMBER, or GREEN):`

const summarisePromptTemplate = `You are a healthcare professional summarising a client's home-care visit notes. Provide a concise summary (max 150 words) that highlights changes, concerns, and any trends over time. Use clear, professional language.

Visit Notes (oldest to newest):
%s

Summary:`

// buildClassifyPrompt embeds the trimmed note verbatim into the fixed
// classification instructions.
func buildClassifyPrompt(note string) string {
	return fmt.Sprintf(classifyPromptTemplate, strings.TrimSpace(note))
}

// buildSummarisePrompt enumerates the notes 1-indexed, oldest to newest.
func buildSummarisePrompt(notes []string) string {
	var b strings.Builder
	for i, note := range notes {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s", i+1, note)
	}
	return fmt.Sprintf(summarisePromptTemplate, b.String())
}
