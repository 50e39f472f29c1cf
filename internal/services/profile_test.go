package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfileFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewProfileServiceLoadsShippedData(t *testing.T) {
	service, err := NewProfileService("../../data/profile.json")
	require.NoError(t, err)

	record := service.Record()
	assert.Equal(t, "Parsh Jain", record.PersonalInfo.Name)
	assert.NotEmpty(t, record.WorkExperience)
	assert.NotEmpty(t, record.Projects)
	assert.NotEmpty(t, record.TechnicalSkills.Frontend.Frameworks)
	assert.NotEmpty(t, record.TechnicalSkills.Backend.Databases)
	assert.NotEmpty(t, record.TechnicalSkills.AIMl.Libraries)

	assert.Contains(t, service.JSON(), `"personalInfo"`)
}

func TestNewProfileServiceMissingFile(t *testing.T) {
	_, err := NewProfileService(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestNewProfileServiceMalformedJSON(t *testing.T) {
	path := writeProfileFile(t, "{not json")
	_, err := NewProfileService(path)
	assert.ErrorContains(t, err, "failed to parse profile data")
}

func TestNewProfileServiceValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing name",
			content: `{"personalInfo":{"title":"Full Stack Developer"}}`,
			wantErr: "personalInfo.name is required",
		},
		{
			name:    "missing title",
			content: `{"personalInfo":{"name":"Parsh Jain"}}`,
			wantErr: "personalInfo.title is required",
		},
		{
			name:    "work entry without company",
			content: `{"personalInfo":{"name":"Parsh Jain","title":"Dev"},"workExperience":[{"position":"Intern"}]}`,
			wantErr: "workExperience[0].company is required",
		},
		{
			name:    "project without title",
			content: `{"personalInfo":{"name":"Parsh Jain","title":"Dev"},"projects":[{"description":"x"}]}`,
			wantErr: "projects[0].title is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeProfileFile(t, tt.content)
			_, err := NewProfileService(path)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
