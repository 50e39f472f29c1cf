package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parshjain/portfolio-assistant/internal/models"
)

func testProfile() *models.ProfileRecord {
	return &models.ProfileRecord{
		PersonalInfo: models.PersonalInfo{
			Name:                   "Parsh Jain",
			Title:                  "Full Stack Developer",
			Location:               "Delhi, India",
			Email:                  "parsh@example.com",
			Phone:                  "+91 9876543210",
			YearsOfExperience:      "1+",
			ProjectsCompleted:      15,
			HackathonsParticipated: 5,
			TechnologiesMastered:   20,
		},
		WorkExperience: []models.WorkEntry{
			{Company: "Barclays", Position: "Software Testing Intern", Duration: "Jun 2023 - Aug 2023", Location: "Pune, India", Technologies: []string{"Python", "Selenium", "SQL", "Jira", "Agile"}},
			{Company: "MBP Trust", Position: "Web Developer Intern", Duration: "Jan 2023 - Apr 2023", Location: "Remote", Technologies: []string{"React", "Node.js"}},
			{Company: "Falcon X", Position: "Web Developer Intern", Duration: "Aug 2022 - Dec 2022", Location: "Remote", Technologies: []string{"Next.js", "TypeScript"}},
		},
		VolunteeringExperience: []models.Volunteering{
			{Organization: "KJSCE CodeCell", Role: "Committee Head", Duration: "2022 - 2023"},
			{Organization: "Redshift Racing India", Role: "Web Developer", Duration: "2021 - 2022"},
		},
		Projects: []models.Project{
			{Title: "Chess Prediction System", Description: "Machine learning system that predicts chess game outcomes from live board positions using a TensorFlow model.", Categories: []string{"AI/ML"}},
			{Title: "Fashion Hub E-commerce", Description: "Full-stack e-commerce platform with product catalog, cart and payments.", Categories: []string{"Web Development"}},
		},
		Education: []models.Education{
			{Degree: "B.Tech in Computer Science", Institution: "Maharaja Agrasen Institute of Technology", Duration: "2021 - 2025", Status: "Pursuing", Coursework: []string{"Data Structures", "Algorithms", "Machine Learning", "Web Development", "Database Management", "Computer Vision"}},
		},
		Achievements: []models.Achievement{
			{Title: "Smart India Hackathon Finalist", Description: "Reached the national finals"},
			{Title: "Barclays Spot Award", Description: "Automated a regression test suite"},
			{Title: "CodeCell Hackathon Winner", Description: "First place among 60+ teams"},
		},
		TechnicalSkills: models.TechnicalSkills{
			Frontend: models.SkillGroup{Languages: []string{"JavaScript", "TypeScript"}, Frameworks: []string{"React", "Next.js"}},
			Backend:  models.SkillGroup{Languages: []string{"Python", "SQL"}, Frameworks: []string{"Node.js", "Flask"}, Databases: []string{"MongoDB", "MySQL"}},
			AIMl:     models.SkillGroup{Languages: []string{"Python"}, Libraries: []string{"TensorFlow", "scikit-learn", "Pandas", "NumPy"}},
		},
		Availability: models.Availability{
			Status:          "Open",
			LookingFor:      []string{"Full-time Software Engineering roles", "AI/ML Engineering roles"},
			WorkPreferences: []string{"Remote", "Hybrid"},
		},
		SocialMedia: models.SocialMedia{
			LinkedIn: "https://linkedin.com/in/parshjain",
			GitHub:   "https://github.com/parshjain",
		},
	}
}

func TestRespondIntentSelection(t *testing.T) {
	fallback := NewFallbackService()
	profile := testProfile()

	tests := []struct {
		name     string
		question string
		want     []string
	}{
		{
			name:     "experience",
			question: "How many years of experience does he have?",
			want:     []string{"Professional Experience", "1+ years", "Barclays"},
		},
		{
			name:     "skills",
			question: "What are his technical skills?",
			want:     []string{"Technical Skills", "Frontend:", "Backend:", "AI/ML:", "React", "MongoDB"},
		},
		{
			name:     "internships by keyword",
			question: "Tell me about his internship history",
			want:     []string{"Internship Journey", "Barclays", "MBP Trust", "Falcon X"},
		},
		{
			name:     "internships by company name",
			question: "What did he do at barclays?",
			want:     []string{"Internship Journey", "Software Testing Intern"},
		},
		{
			name:     "projects",
			question: "What has he built?",
			want:     []string{"Key Projects", "Chess Prediction System", "Fashion Hub E-commerce"},
		},
		{
			name:     "education",
			question: "Where did he get his degree?",
			want:     []string{"Education", "B.Tech in Computer Science", "Maharaja Agrasen Institute of Technology"},
		},
		{
			name:     "achievements",
			question: "Any awards or recognition?",
			want:     []string{"Key Achievements", "Smart India Hackathon Finalist"},
		},
		{
			name:     "availability",
			question: "Is he available for hire?",
			want:     []string{"Opportunities", "Looking for", "Remote, Hybrid"},
		},
		{
			name:     "contact",
			question: "How do I reach him?",
			want:     []string{"Get in Touch", "parsh@example.com", "linkedin.com/in/parshjain"},
		},
		{
			name:     "default overview",
			question: "Who is this person?",
			want:     []string{"About Parsh Jain", "Full Stack Developer", "Ask me about"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fallback.Respond(tt.question, profile)
			require.NotEmpty(t, got)
			for _, want := range tt.want {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestRespondFirstMatchWins(t *testing.T) {
	fallback := NewFallbackService()
	profile := testProfile()

	// "experience" outranks "project" in the intent order.
	got := fallback.Respond("Tell me about his experience with projects", profile)
	assert.Contains(t, got, "Professional Experience")
	assert.NotContains(t, got, "Key Projects")
}

func TestRespondDeterministic(t *testing.T) {
	fallback := NewFallbackService()
	profile := testProfile()

	questions := []string{
		"What are his technical skills?",
		"completely unrelated question about the weather",
		"",
	}

	for _, question := range questions {
		first := fallback.Respond(question, profile)
		second := fallback.Respond(question, profile)
		assert.Equal(t, first, second, "question %q must be reproducible", question)
	}
}

func TestRespondOutputBounded(t *testing.T) {
	fallback := NewFallbackService()
	profile := testProfile()

	questions := []string{
		"experience", "skills", "internship", "projects",
		"education", "achievements", "available", "contact",
		"no keyword here",
	}

	for _, question := range questions {
		got := fallback.Respond(question, profile)
		require.NotEmpty(t, got, "question %q", question)
		words := len(strings.Fields(got))
		assert.LessOrEqual(t, words, 300, "question %q produced %d words", question, words)
	}
}

func TestRespondShortProfile(t *testing.T) {
	fallback := NewFallbackService()

	// Sparse profile: one work entry, nothing else populated.
	profile := &models.ProfileRecord{
		PersonalInfo: models.PersonalInfo{
			Name:  "Parsh Jain",
			Title: "Full Stack Developer",
		},
		WorkExperience: []models.WorkEntry{
			{Company: "Barclays", Position: "Intern", Duration: "2023"},
		},
	}

	questions := []string{
		"experience", "skills", "internship", "projects",
		"education", "achievements", "available", "contact",
		"overview please",
	}

	for _, question := range questions {
		got := fallback.Respond(question, profile)
		assert.NotEmpty(t, got, "question %q must not come back empty on a sparse profile", question)
	}
}

func TestRespondEmptyProfileFallsBackToSummary(t *testing.T) {
	fallback := NewFallbackService()

	got := fallback.Respond("internship", &models.ProfileRecord{})
	assert.NotEmpty(t, got)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 80))
	long := strings.Repeat("a", 100)
	got := truncate(long, 80)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Len(t, got, 83)
}
