package services

import (
	"fmt"
	"strings"

	"parshjain/portfolio-assistant/internal/models"
)

// Resume text injected into the prompt is capped so a long PDF cannot blow up
// request latency or token usage.
const maxResumePromptChars = 6000

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildAssistantPrompt assembles the system prompt for one chat turn: the full
// profile as JSON context, key facts restated explicitly, an optional resume
// excerpt, formatting instructions, and the user question.
func (pb *PromptBuilder) BuildAssistantPrompt(profileJSON string, profile *models.ProfileRecord, resumeText, userMessage string) string {
	var sb strings.Builder

	name := profile.PersonalInfo.Name
	first := firstName(name)

	fmt.Fprintf(&sb, `You are %s's AI Assistant. You have access to his complete professional profile and must provide accurate, helpful responses.

COMPLETE PERSONAL DATA:
%s
`, name, profileJSON)

	sb.WriteString("\nKEY EXPERIENCE DETAILS:\n")
	fmt.Fprintf(&sb, "- %s has %s years of experience\n", first, profile.PersonalInfo.YearsOfExperience)

	if len(profile.WorkExperience) > 0 {
		var roles []string
		for _, entry := range profile.WorkExperience {
			roles = append(roles, fmt.Sprintf("%s (%s)", entry.Company, entry.Position))
		}
		fmt.Fprintf(&sb, "- He has completed %d internships: %s\n", len(roles), strings.Join(roles, ", "))
	}

	if len(profile.VolunteeringExperience) > 0 {
		var roles []string
		for _, entry := range profile.VolunteeringExperience {
			roles = append(roles, fmt.Sprintf("%s (%s)", entry.Organization, entry.Role))
		}
		fmt.Fprintf(&sb, "- He has %d volunteering experiences: %s\n", len(roles), strings.Join(roles, ", "))
	}

	fmt.Fprintf(&sb, "- Total projects completed: %d\n", profile.PersonalInfo.ProjectsCompleted)
	fmt.Fprintf(&sb, "- Hackathons participated: %d\n", profile.PersonalInfo.HackathonsParticipated)

	if resumeText != "" {
		excerpt := resumeText
		if len(excerpt) > maxResumePromptChars {
			excerpt = excerpt[:maxResumePromptChars]
		}
		fmt.Fprintf(&sb, "\nRESUME EXCERPT:\n%s\n", excerpt)
	}

	fmt.Fprintf(&sb, `
RESPONSE GUIDELINES:
- Answer in 100-200 words max
- Use **bold** for key achievements and technologies
- Use bullet points for lists to improve readability
- Be enthusiastic and professional
- Always reference accurate data from the profile above
- Focus on what's most relevant to the user's question

USER QUESTION: %s

RESPONSE:`, userMessage)

	return sb.String()
}

func firstName(fullName string) string {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return fullName
	}
	return parts[0]
}
