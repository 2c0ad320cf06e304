package mcp

import (
	"github.com/pranikov/sitekit/internal/domain/analytics"
	"github.com/pranikov/sitekit/internal/domain/content"
	"github.com/pranikov/sitekit/internal/domain/message"
	"github.com/pranikov/sitekit/internal/domain/project"
)

type NoParams struct{}

type SaveProjectParams struct {
	Title        string   `json:"title" jsonschema:"project title"`
	Description  string   `json:"description,omitempty"`
	Image        string   `json:"image,omitempty" jsonschema:"image URL, see upload_image"`
	Technologies []string `json:"technologies,omitempty"`
	GitHub       string   `json:"github,omitempty" jsonschema:"source repository URL"`
	Demo         string   `json:"demo,omitempty" jsonschema:"live demo URL"`
	Category     string   `json:"category,omitempty"`
	Featured     bool     `json:"featured,omitempty"`
}

type UpdateProjectParams struct {
	ID           string    `json:"id"`
	Title        *string   `json:"title,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Image        *string   `json:"image,omitempty"`
	Technologies *[]string `json:"technologies,omitempty" jsonschema:"replaces the list; an empty list clears it"`
	GitHub       *string   `json:"github,omitempty"`
	Demo         *string   `json:"demo,omitempty"`
	Category     *string   `json:"category,omitempty"`
	Featured     *bool     `json:"featured,omitempty"`
}

type IDParams struct {
	ID string `json:"id"`
}

type UploadImageParams struct {
	Filename string `json:"filename" jsonschema:"file name including extension"`
	Content  string `json:"content" jsonschema:"base64-encoded file content"`
}

type SendContactMessageParams struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

type SaveServicesParams struct {
	Services []content.Service `json:"services"`
}

type SaveAboutParams struct {
	About content.About `json:"about"`
}

type SaveAnalyticsParams struct {
	Analytics analytics.Data `json:"analytics"`
}

type ThemeParams struct {
	Theme string `json:"theme" jsonschema:"light or dark"`
}

type LoginStateParams struct {
	LoggedIn bool `json:"logged_in"`
}

type ImportParams struct {
	Document string `json:"document" jsonschema:"backup JSON document as produced by export_all"`
}

type ProjectsResponse struct {
	Projects []project.Project `json:"projects"`
	Fallback bool              `json:"fallback"`
	Warning  string            `json:"warning,omitempty"`
}

type ProjectResponse struct {
	Project project.Project `json:"project"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

type UploadImageResponse struct {
	URL string `json:"url"`
}

type MessageResponse struct {
	Message message.ContactMessage `json:"message"`
}

type MessagesResponse struct {
	Messages []message.ContactMessage `json:"messages"`
}

type ServicesResponse struct {
	Services []content.Service `json:"services"`
}

type AboutResponse struct {
	About content.About `json:"about"`
}

type AnalyticsResponse struct {
	Analytics analytics.Data `json:"analytics"`
}

type ThemeResponse struct {
	Theme string `json:"theme"`
}

type LoginStateResponse struct {
	LoggedIn bool `json:"logged_in"`
}

type ExportResponse struct {
	File string `json:"file"`
}
