package email

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Template is a reusable message skeleton. Subject, Text, and HTML may
// contain {{key}} placeholders filled in at send time.
type Template struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Subject string `yaml:"subject"`
	Text    string `yaml:"text"`
	HTML    string `yaml:"html"`
	// Variables documents the placeholder keys the template expects. It is
	// informational only; substitution is driven by the vars actually passed.
	Variables []string `yaml:"variables"`
}

// RegisterTemplate adds or replaces a template in the service's in-memory
// registry. Last write wins; the registry lives for the process lifetime.
func (s *Service) RegisterTemplate(t Template) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates[t.ID] = t
}

// Template looks up a registered template by id.
func (s *Service) Template(id string) (Template, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.templates[id]
	return t, ok
}

// LoadTemplates registers every template from a YAML file. The file holds a
// top-level "templates" list; entries without an id are rejected.
func (s *Service) LoadTemplates(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read template file: %w", err)
	}

	var file struct {
		Templates []Template `yaml:"templates"`
	}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("failed to parse template file: %w", err)
	}

	for i, t := range file.Templates {
		if t.ID == "" {
			return fmt.Errorf("template at index %d has no id", i)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range file.Templates {
		s.templates[t.ID] = t
	}

	return nil
}

// SendEmailWithTemplate sends using a registered template: the template
// supplies subject and bodies, vars drive substitution, and everything else
// (recipients, attachments, metadata) comes from data. Fields already set on
// data win over the template's. Template data already present on data is
// merged with vars, vars winning on key collision.
func (s *Service) SendEmailWithTemplate(ctx context.Context, templateID string, data EmailData, vars map[string]any) EmailResult {
	t, ok := s.Template(templateID)
	if !ok {
		result := EmailResult{
			Provider: s.provider.Name(),
			Error:    errors.Join(ErrTemplateNotFound, fmt.Errorf("template %q", templateID)).Error(),
		}
		return result
	}

	if data.Subject == "" {
		data.Subject = t.Subject
	}
	if data.Text == "" {
		data.Text = t.Text
	}
	if data.HTML == "" {
		data.HTML = t.HTML
	}
	data.TemplateID = templateID
	if len(data.TemplateData) > 0 || len(vars) > 0 {
		merged := make(map[string]any, len(data.TemplateData)+len(vars))
		for k, v := range data.TemplateData {
			merged[k] = v
		}
		for k, v := range vars {
			merged[k] = v
		}
		data.TemplateData = merged
	}

	return s.SendEmail(ctx, data)
}

// substitute replaces every {{key}} occurrence with the stringified value.
// Unknown placeholders are left verbatim. Values are NOT escaped: callers
// interpolating untrusted input into HTML templates must escape it themselves.
func substitute(text string, vars map[string]any) string {
	if text == "" || len(vars) == 0 {
		return text
	}
	for key, value := range vars {
		text = strings.ReplaceAll(text, "{{"+key+"}}", fmt.Sprint(value))
	}
	return text
}
