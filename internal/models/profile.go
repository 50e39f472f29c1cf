package models

// ProfileRecord is the structured professional profile served by the
// assistant. It is loaded once at startup and never mutated afterwards;
// every service receives it by reference and treats it as read-only.
type ProfileRecord struct {
	PersonalInfo           PersonalInfo    `json:"personalInfo"`
	WorkExperience         []WorkEntry     `json:"workExperience"`
	VolunteeringExperience []Volunteering  `json:"volunteeringExperience"`
	Projects               []Project       `json:"projects"`
	Education              []Education     `json:"education"`
	Achievements           []Achievement   `json:"achievements"`
	TechnicalSkills        TechnicalSkills `json:"technicalSkills"`
	Availability           Availability    `json:"availability"`
	SocialMedia            SocialMedia     `json:"socialMedia"`
}

type PersonalInfo struct {
	Name                   string `json:"name"`
	Title                  string `json:"title"`
	Location               string `json:"location"`
	Email                  string `json:"email"`
	Phone                  string `json:"phone"`
	YearsOfExperience      string `json:"yearsOfExperience"`
	ProjectsCompleted      int    `json:"projectsCompleted"`
	HackathonsParticipated int    `json:"hackathonsParticipated"`
	TechnologiesMastered   int    `json:"technologiesMastered"`
}

type WorkEntry struct {
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Duration     string   `json:"duration"`
	Location     string   `json:"location"`
	Technologies []string `json:"technologies"`
}

type Volunteering struct {
	Organization string `json:"organization"`
	Role         string `json:"role"`
	Duration     string `json:"duration"`
}

type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
}

type Education struct {
	Degree      string   `json:"degree"`
	Institution string   `json:"institution"`
	Duration    string   `json:"duration"`
	Status      string   `json:"status"`
	Coursework  []string `json:"coursework"`
}

type Achievement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TechnicalSkills groups skills by domain. Not every group fills every
// sub-list (frontend has no databases, AI/ML lists libraries instead of
// frameworks), so all sub-lists are optional.
type TechnicalSkills struct {
	Frontend SkillGroup `json:"frontend"`
	Backend  SkillGroup `json:"backend"`
	AIMl     SkillGroup `json:"aiMl"`
}

type SkillGroup struct {
	Languages  []string `json:"languages,omitempty"`
	Frameworks []string `json:"frameworks,omitempty"`
	Databases  []string `json:"databases,omitempty"`
	Libraries  []string `json:"libraries,omitempty"`
}

type Availability struct {
	Status          string   `json:"status"`
	LookingFor      []string `json:"lookingFor"`
	WorkPreferences []string `json:"workPreferences"`
}

type SocialMedia struct {
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}
