package project

import "strings"

// Project is a portfolio entry as presented to site callers.
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Technologies []string `json:"technologies"`
	GitHub       string   `json:"github,omitempty"`
	Demo         string   `json:"demo,omitempty"`
	Category     string   `json:"category"`
	Featured     bool     `json:"featured"`
}

// Input carries the fields of a project being created.
type Input struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Technologies []string `json:"technologies"`
	GitHub       string   `json:"github,omitempty"`
	Demo         string   `json:"demo,omitempty"`
	Category     string   `json:"category"`
	Featured     bool     `json:"featured"`
}

// Validate checks the fields required to create a project.
func (in Input) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrInvalidInput
	}
	return nil
}

// Patch carries a partial project update. Nil fields are left untouched; a
// non-nil Technologies pointing at an empty list clears the list.
type Patch struct {
	Title        *string   `json:"title,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Image        *string   `json:"image,omitempty"`
	Technologies *[]string `json:"technologies,omitempty"`
	GitHub       *string   `json:"github,omitempty"`
	Demo         *string   `json:"demo,omitempty"`
	Category     *string   `json:"category,omitempty"`
	Featured     *bool     `json:"featured,omitempty"`
}

// Validate rejects patches that would blank the title.
func (p Patch) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return ErrInvalidInput
	}
	return nil
}
