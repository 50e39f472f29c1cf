package services

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ResumeService extracts plain text from the site owner's resume PDF. The
// text is loaded once at startup and appended to the model prompt as extra
// context; the feature is optional and off when no resume path is configured.
type ResumeService interface {
	ExtractText(filePath string) (string, error)
}

type resumeService struct{}

func NewResumeService() ResumeService {
	return &resumeService{}
}

// ExtractText implements ResumeService. Pages that fail to decode are skipped
// so one bad page does not lose the rest of the document.
func (r *resumeService) ExtractText(filePath string) (string, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return "", fmt.Errorf("resume file does not exist: %s", filePath)
	}

	f, reader, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open resume PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPages := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPages; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := normalizeResumeText(textBuilder.String())
	if text == "" {
		return "", fmt.Errorf("no text content found in resume PDF")
	}

	return text, nil
}

// normalizeResumeText trims each line and collapses blank lines.
func normalizeResumeText(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}

	return strings.Join(cleaned, "\n")
}
