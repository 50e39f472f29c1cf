package services

import (
	"fmt"
	"strings"

	"parshjain/portfolio-assistant/internal/models"
)

// MinimalProfileSummary is the always-available answer of last resort: it is
// returned on recovered panics and whenever a template would otherwise come
// out empty, so the endpoint never responds with an empty string.
const MinimalProfileSummary = "⚡ **Quick Info**: Parsh is a Full Stack Developer with Barclays experience, skilled in React, Python, JavaScript. Available for opportunities!"

// FallbackService answers a question from structured profile data alone.
// Classification is ordered keyword matching, first match wins; every template
// is pure string formatting, so the same question and profile always produce
// byte-identical output.
type FallbackService interface {
	Respond(question string, profile *models.ProfileRecord) string
}

type fallbackService struct{}

func NewFallbackService() FallbackService {
	return &fallbackService{}
}

// Respond implements FallbackService.
func (f *fallbackService) Respond(question string, profile *models.ProfileRecord) string {
	message := strings.ToLower(question)

	var answer string
	switch {
	case containsAny(message, "experience", "years", "how long", "how many"):
		answer = f.experienceAnswer(profile)
	case containsAny(message, "skill", "technology", "tech", "programming"):
		answer = f.skillsAnswer(profile)
	case containsAny(message, internshipKeywords(profile)...):
		answer = f.internshipsAnswer(profile)
	case containsAny(message, "project", "portfolio", "built", "developed"):
		answer = f.projectsAnswer(profile)
	case containsAny(message, "education", "degree", "university", "college"):
		answer = f.educationAnswer(profile)
	case containsAny(message, "achievement", "award", "recognition", "accomplishment"):
		answer = f.achievementsAnswer(profile)
	case containsAny(message, "available", "hire", "opportunity", "job"):
		answer = f.availabilityAnswer(profile)
	case containsAny(message, "contact", "reach", "email", "linkedin"):
		answer = f.contactAnswer(profile)
	default:
		answer = f.overviewAnswer(profile)
	}

	if strings.TrimSpace(answer) == "" {
		return MinimalProfileSummary
	}

	return answer
}

// internshipKeywords extends the generic intent keyword with the lowercased
// company names from the profile, so "tell me about barclays" lands here.
func internshipKeywords(profile *models.ProfileRecord) []string {
	keywords := []string{"internship"}
	for _, entry := range profile.WorkExperience {
		keywords = append(keywords, strings.ToLower(entry.Company))
	}
	return keywords
}

func (f *fallbackService) experienceAnswer(p *models.ProfileRecord) string {
	first := firstName(p.PersonalInfo.Name)

	var sb strings.Builder
	fmt.Fprintf(&sb, "**💼 %s's Professional Experience:**\n\n", first)
	fmt.Fprintf(&sb, "**%s years** of professional experience in software development!\n", p.PersonalInfo.YearsOfExperience)

	if len(p.WorkExperience) > 0 {
		fmt.Fprintf(&sb, "\n**%d Key Internships:**\n", len(p.WorkExperience))
		for _, entry := range firstWorkEntries(p.WorkExperience, 3) {
			fmt.Fprintf(&sb, "• **%s** - %s (%s)\n", entry.Company, entry.Position, entry.Duration)
		}
	}

	if len(p.VolunteeringExperience) > 0 {
		lead := p.VolunteeringExperience[0]
		fmt.Fprintf(&sb, "\n**Volunteering:** %d leadership roles including **%s %s** 🏆",
			len(p.VolunteeringExperience), lead.Organization, lead.Role)
	}

	return sb.String()
}

func (f *fallbackService) skillsAnswer(p *models.ProfileRecord) string {
	first := firstName(p.PersonalInfo.Name)
	skills := p.TechnicalSkills

	var sb strings.Builder
	fmt.Fprintf(&sb, "**🚀 %s's Technical Skills:**\n\n", first)
	fmt.Fprintf(&sb, "**Frontend:** %s | %s\n",
		strings.Join(skills.Frontend.Frameworks, ", "),
		strings.Join(skills.Frontend.Languages, ", "))
	fmt.Fprintf(&sb, "**Backend:** %s | %s\n",
		strings.Join(skills.Backend.Languages, ", "),
		strings.Join(skills.Backend.Frameworks, ", "))
	fmt.Fprintf(&sb, "**AI/ML:** %s | %s\n",
		strings.Join(skills.AIMl.Languages, ", "),
		strings.Join(firstStrings(skills.AIMl.Libraries, 3), ", "))
	fmt.Fprintf(&sb, "**Databases:** %s\n", strings.Join(skills.Backend.Databases, ", "))
	fmt.Fprintf(&sb, "\n**%s** years experience | **%d** technologies mastered! 💻",
		p.PersonalInfo.YearsOfExperience, p.PersonalInfo.TechnologiesMastered)

	return sb.String()
}

func (f *fallbackService) internshipsAnswer(p *models.ProfileRecord) string {
	first := firstName(p.PersonalInfo.Name)

	var sb strings.Builder
	fmt.Fprintf(&sb, "**🏢 %s's Internship Journey:**\n", first)

	for i, entry := range p.WorkExperience {
		fmt.Fprintf(&sb, "\n**%d. %s** - %s\n", i+1, entry.Company, entry.Position)
		fmt.Fprintf(&sb, "   📅 %s | 📍 %s\n", entry.Duration, entry.Location)
		if len(entry.Technologies) > 0 {
			fmt.Fprintf(&sb, "   🔧 %s\n", strings.Join(firstStrings(entry.Technologies, 4), ", "))
		}
	}

	fmt.Fprintf(&sb, "\nTotal: **%d successful internships** with increasing responsibilities! 🚀", len(p.WorkExperience))

	return sb.String()
}

func (f *fallbackService) projectsAnswer(p *models.ProfileRecord) string {
	first := firstName(p.PersonalInfo.Name)

	var sb strings.Builder
	fmt.Fprintf(&sb, "**🛠️ %s's Key Projects (%d total):**\n\n", first, p.PersonalInfo.ProjectsCompleted)

	for _, project := range firstProjects(p.Projects, 4) {
		fmt.Fprintf(&sb, "• **%s** - %s\n", project.Title, truncate(project.Description, 80))
	}

	categories := projectCategories(p.Projects)
	if len(categories) > 0 {
		fmt.Fprintf(&sb, "\n**Categories:** %s 📈", strings.Join(categories, ", "))
	}

	return sb.String()
}

func (f *fallbackService) educationAnswer(p *models.ProfileRecord) string {
	first := firstName(p.PersonalInfo.Name)

	var sb strings.Builder
	fmt.Fprintf(&sb, "**🎓 %s's Education:**\n", first)

	if len(p.Education) > 0 {
		current := p.Education[0]
		fmt.Fprintf(&sb, "\n**%s**\n", current.Degree)
		fmt.Fprintf(&sb, "%s, %s\n", current.Institution, p.PersonalInfo.Location)
		fmt.Fprintf(&sb, "%s (%s)\n", current.Duration, current.Status)
		if len(current.Coursework) > 0 {
			fmt.Fprintf(&sb, "\n**Key Coursework:** %s\n", strings.Join(firstStrings(current.Coursework, 5), ", "))
		}
	}

	sb.WriteString("\n**Academic Focus:** Artificial Intelligence & Full-Stack Development 📚")

	return sb.String()
}

func (f *fallbackService) achievementsAnswer(p *models.ProfileRecord) string {
	first := firstName(p.PersonalInfo.Name)

	var sb strings.Builder
	fmt.Fprintf(&sb, "**🏆 %s's Key Achievements:**\n\n", first)

	for _, achievement := range firstAchievements(p.Achievements, 3) {
		fmt.Fprintf(&sb, "• **%s** - %s\n", achievement.Title, achievement.Description)
	}

	fmt.Fprintf(&sb, "\n**Stats:** %d hackathons | %d projects | %s years experience ⭐",
		p.PersonalInfo.HackathonsParticipated,
		p.PersonalInfo.ProjectsCompleted,
		p.PersonalInfo.YearsOfExperience)

	return sb.String()
}

func (f *fallbackService) availabilityAnswer(p *models.ProfileRecord) string {
	first := firstName(p.PersonalInfo.Name)

	var sb strings.Builder
	fmt.Fprintf(&sb, "**✅ %s is %s for Opportunities!**\n", first, p.Availability.Status)

	if len(p.Availability.LookingFor) > 0 {
		sb.WriteString("\n**Looking for:**\n")
		for _, item := range firstStrings(p.Availability.LookingFor, 4) {
			fmt.Fprintf(&sb, "• %s\n", item)
		}
	}

	if len(p.Availability.WorkPreferences) > 0 {
		fmt.Fprintf(&sb, "\n**Work Preferences:** %s\n", strings.Join(p.Availability.WorkPreferences, ", "))
	}
	fmt.Fprintf(&sb, "**Location:** %s\n", p.PersonalInfo.Location)
	fmt.Fprintf(&sb, "**Experience:** %s years\n", p.PersonalInfo.YearsOfExperience)

	sb.WriteString("\nReady to contribute to innovative projects! 🚀")

	return sb.String()
}

func (f *fallbackService) contactAnswer(p *models.ProfileRecord) string {
	first := firstName(p.PersonalInfo.Name)

	var sb strings.Builder
	fmt.Fprintf(&sb, "**📞 Get in Touch with %s:**\n\n", first)
	fmt.Fprintf(&sb, "**Email:** %s\n", p.PersonalInfo.Email)
	fmt.Fprintf(&sb, "**Phone:** %s\n", p.PersonalInfo.Phone)
	fmt.Fprintf(&sb, "**Location:** %s\n", p.PersonalInfo.Location)
	fmt.Fprintf(&sb, "**LinkedIn:** %s\n", p.SocialMedia.LinkedIn)
	fmt.Fprintf(&sb, "**GitHub:** %s\n", p.SocialMedia.GitHub)
	sb.WriteString("\nFeel free to connect for opportunities, collaborations, or project discussions! 💬")

	return sb.String()
}

func (f *fallbackService) overviewAnswer(p *models.ProfileRecord) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**👋 About %s:**\n\n", p.PersonalInfo.Name)
	fmt.Fprintf(&sb, "**%s**\n", p.PersonalInfo.Title)

	if len(p.Education) > 0 {
		fmt.Fprintf(&sb, "📍 %s | 🎓 %s\n", p.PersonalInfo.Location, p.Education[0].Degree)
	} else {
		fmt.Fprintf(&sb, "📍 %s\n", p.PersonalInfo.Location)
	}

	fmt.Fprintf(&sb, "\n**Experience:** %s years", p.PersonalInfo.YearsOfExperience)
	if len(p.WorkExperience) > 0 {
		fmt.Fprintf(&sb, " | **%d Internships** (%s)", len(p.WorkExperience), strings.Join(companyNames(p.WorkExperience), ", "))
	}
	fmt.Fprintf(&sb, "\n**Projects:** %d completed | **Hackathons:** %d\n",
		p.PersonalInfo.ProjectsCompleted, p.PersonalInfo.HackathonsParticipated)

	fmt.Fprintf(&sb, "\n**Ask me about:** Experience, internships, projects, skills, education, or availability! 🚀")

	return sb.String()
}

func containsAny(message string, keywords ...string) bool {
	for _, keyword := range keywords {
		if keyword != "" && strings.Contains(message, keyword) {
			return true
		}
	}
	return false
}

func firstStrings(items []string, n int) []string {
	if len(items) < n {
		return items
	}
	return items[:n]
}

func firstWorkEntries(items []models.WorkEntry, n int) []models.WorkEntry {
	if len(items) < n {
		return items
	}
	return items[:n]
}

func firstProjects(items []models.Project, n int) []models.Project {
	if len(items) < n {
		return items
	}
	return items[:n]
}

func firstAchievements(items []models.Achievement, n int) []models.Achievement {
	if len(items) < n {
		return items
	}
	return items[:n]
}

func projectCategories(projects []models.Project) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, project := range projects {
		for _, category := range project.Categories {
			if !seen[category] {
				seen[category] = true
				categories = append(categories, category)
			}
		}
	}
	return categories
}

func companyNames(entries []models.WorkEntry) []string {
	var names []string
	for _, entry := range entries {
		names = append(names, entry.Company)
	}
	return names
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return strings.TrimSpace(string(runes[:n])) + "..."
}
