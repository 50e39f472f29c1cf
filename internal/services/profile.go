package services

import (
	"encoding/json"
	"fmt"
	"os"

	"parshjain/portfolio-assistant/internal/models"
)

// ProfileService owns the professional profile loaded at startup. The record
// is validated once here so downstream template code can assume its shape.
type ProfileService interface {
	Record() *models.ProfileRecord
	JSON() string
}

type profileService struct {
	record  *models.ProfileRecord
	rawJSON string
}

func NewProfileService(dataPath string) (ProfileService, error) {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile data: %w", err)
	}

	var record models.ProfileRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse profile data: %w", err)
	}

	if err := validateProfile(&record); err != nil {
		return nil, fmt.Errorf("invalid profile data: %w", err)
	}

	// Pretty-printed copy embedded verbatim into the model prompt.
	pretty, err := json.MarshalIndent(&record, "", " ")
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode profile data: %w", err)
	}

	return &profileService{
		record:  &record,
		rawJSON: string(pretty),
	}, nil
}

// Record implements ProfileService.
func (p *profileService) Record() *models.ProfileRecord {
	return p.record
}

// JSON implements ProfileService.
func (p *profileService) JSON() string {
	return p.rawJSON
}

func validateProfile(record *models.ProfileRecord) error {
	if record.PersonalInfo.Name == "" {
		return fmt.Errorf("personalInfo.name is required")
	}

	if record.PersonalInfo.Title == "" {
		return fmt.Errorf("personalInfo.title is required")
	}

	for i, entry := range record.WorkExperience {
		if entry.Company == "" {
			return fmt.Errorf("workExperience[%d].company is required", i)
		}
	}

	for i, project := range record.Projects {
		if project.Title == "" {
			return fmt.Errorf("projects[%d].title is required", i)
		}
	}

	return nil
}
