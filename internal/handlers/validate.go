package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"pagesmith/internal/models"
)

// Validation limits for page and document fields.
const (
	maxTitleLen      = 300
	maxSlugLen       = 300
	maxDescLen       = 1_000
	maxComponentsLen = 200
	maxPagesLen      = 500
)

// validateDocument checks the overall shape of an incoming document before
// it replaces the stored one. Returns the first problem found, or "".
// Metadata is not required here: the store stamps it on every save and
// never trusts the client's copy.
func validateDocument(cfg *models.LandingConfig) string {
	if cfg.Version == "" {
		return "Document version is required."
	}
	if cfg.Themes == nil {
		return "Document must contain a themes map."
	}
	if cfg.Pages == nil {
		return "Document must contain a pages map."
	}
	if len(cfg.Pages) > maxPagesLen {
		return fmt.Sprintf("Too many pages (max %d).", maxPagesLen)
	}

	seen := make(map[string]string, len(cfg.Pages))
	for id, page := range cfg.Pages {
		if msg := validatePage(&page); msg != "" {
			return fmt.Sprintf("Page %q: %s", id, msg)
		}
		if other, dup := seen[page.Slug]; dup {
			return fmt.Sprintf("Pages %q and %q share the slug %q.", other, id, page.Slug)
		}
		seen[page.Slug] = id
	}
	return ""
}

// validatePage checks a single page's fields and component list.
func validatePage(p *models.LandingPage) string {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return fmt.Sprintf("Title is too long (max %d characters).", maxTitleLen)
	}
	if p.Slug == "" {
		return "Slug is required."
	}
	if utf8.RuneCountInString(p.Slug) > maxSlugLen {
		return fmt.Sprintf("Slug is too long (max %d characters).", maxSlugLen)
	}
	if utf8.RuneCountInString(p.Description) > maxDescLen {
		return fmt.Sprintf("Description is too long (max %d characters).", maxDescLen)
	}
	if len(p.Components) > maxComponentsLen {
		return fmt.Sprintf("Too many components (max %d).", maxComponentsLen)
	}
	for i := range p.Components {
		if p.Components[i].ID == "" {
			return fmt.Sprintf("Component %d is missing an id.", i)
		}
		if p.Components[i].Type == "" {
			return fmt.Sprintf("Component %d is missing a type.", i)
		}
	}
	return ""
}

// validateImportComponent checks one raw component from an import payload:
// id must be a JSON string, type a JSON string, and config a JSON object.
func validateImportComponent(i int, raw json.RawMessage) error {
	var probe struct {
		ID     json.RawMessage `json:"id"`
		Type   json.RawMessage `json:"type"`
		Config json.RawMessage `json:"config"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return fmt.Errorf("component %d is not an object", i)
	}

	var s string
	if probe.ID == nil || json.Unmarshal(probe.ID, &s) != nil {
		return fmt.Errorf("component %d: id must be a string", i)
	}
	if probe.Type == nil || json.Unmarshal(probe.Type, &s) != nil {
		return fmt.Errorf("component %d: type must be a string", i)
	}
	if probe.Config == nil || !bytes.HasPrefix(bytes.TrimSpace(probe.Config), []byte("{")) {
		return fmt.Errorf("component %d: config must be an object", i)
	}
	return nil
}
