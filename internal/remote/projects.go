package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pranikov/sitekit/internal/domain/project"
)

// backendProject is the project shape served by the backend.
type backendProject struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Technologies []string `json:"technologies"`
	GitHubURL    string   `json:"githubUrl,omitempty"`
	LiveURL      string   `json:"liveUrl,omitempty"`
	Category     string   `json:"category"`
	Featured     bool     `json:"featured"`
	CreatedAt    string   `json:"createdAt,omitempty"`
}

func (p backendProject) toProject() project.Project {
	technologies := p.Technologies
	if technologies == nil {
		technologies = []string{}
	}
	return project.Project{
		ID:           strconv.FormatInt(p.ID, 10),
		Title:        p.Title,
		Description:  p.Description,
		Image:        p.Image,
		Technologies: technologies,
		GitHub:       p.GitHubURL,
		Demo:         p.LiveURL,
		Category:     p.Category,
		Featured:     p.Featured,
	}
}

// projectBody is the create payload in backend field names.
type projectBody struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Technologies []string `json:"technologies"`
	GitHubURL    string   `json:"githubUrl"`
	LiveURL      string   `json:"liveUrl"`
	Category     string   `json:"category"`
	Featured     bool     `json:"featured"`
}

// projectPatchBody is the update payload; absent fields are omitted.
type projectPatchBody struct {
	Title        *string   `json:"title,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Image        *string   `json:"image,omitempty"`
	Technologies *[]string `json:"technologies,omitempty"`
	GitHubURL    *string   `json:"githubUrl,omitempty"`
	LiveURL      *string   `json:"liveUrl,omitempty"`
	Category     *string   `json:"category,omitempty"`
	Featured     *bool     `json:"featured,omitempty"`
}

// ListProjects fetches all projects.
func (c *Client) ListProjects(ctx context.Context) ([]project.Project, error) {
	const failMsg = "failed to load projects"

	req, err := c.newRequest(ctx, http.MethodGet, "/api/projects", nil, false)
	if err != nil {
		return nil, err
	}
	res, err := c.do(req)
	if err != nil {
		return nil, transportError(failMsg, err)
	}
	if !res.ok() {
		return nil, newStatusError(res, failMsg)
	}

	var data []backendProject
	if err := decode(res.body, projectListResolved, &data); err != nil {
		return nil, err
	}

	projects := make([]project.Project, 0, len(data))
	for _, p := range data {
		projects = append(projects, p.toProject())
	}
	return projects, nil
}

// CreateProject creates a project and returns it as stored by the backend.
func (c *Client) CreateProject(ctx context.Context, in project.Input) (project.Project, error) {
	if err := in.Validate(); err != nil {
		return project.Project{}, err
	}
	body := projectBody{
		Title:        in.Title,
		Description:  in.Description,
		Image:        in.Image,
		Technologies: in.Technologies,
		GitHubURL:    in.GitHub,
		LiveURL:      in.Demo,
		Category:     in.Category,
		Featured:     in.Featured,
	}
	if body.Technologies == nil {
		body.Technologies = []string{}
	}
	return c.sendProject(ctx, http.MethodPost, "/api/projects", body, "failed to save project")
}

// UpdateProject applies patch to the project with the given ID.
func (c *Client) UpdateProject(ctx context.Context, id string, patch project.Patch) (project.Project, error) {
	if id == "" {
		return project.Project{}, project.ErrMissingID
	}
	if err := patch.Validate(); err != nil {
		return project.Project{}, err
	}
	body := projectPatchBody{
		Title:        patch.Title,
		Description:  patch.Description,
		Image:        patch.Image,
		GitHubURL:    patch.GitHub,
		LiveURL:      patch.Demo,
		Category:     patch.Category,
		Featured:     patch.Featured,
	}
	if patch.Technologies != nil {
		technologies := *patch.Technologies
		if technologies == nil {
			technologies = []string{}
		}
		body.Technologies = &technologies
	}
	return c.sendProject(ctx, http.MethodPut, "/api/projects/"+url.PathEscape(id), body, "failed to update project")
}

func (c *Client) sendProject(ctx context.Context, method, path string, body any, failMsg string) (project.Project, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return project.Project{}, fmt.Errorf("encoding project: %w", err)
	}

	req, err := c.newRequest(ctx, method, path, bytes.NewReader(payload), true)
	if err != nil {
		return project.Project{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.do(req)
	if err != nil {
		return project.Project{}, transportError(failMsg, err)
	}
	if !res.ok() {
		return project.Project{}, newStatusError(res, failMsg)
	}

	var data backendProject
	if err := decode(res.body, projectResolved, &data); err != nil {
		return project.Project{}, err
	}
	return data.toProject(), nil
}

// DeleteProject deletes the project with the given ID.
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	const failMsg = "failed to delete project"

	if id == "" {
		return project.ErrMissingID
	}
	req, err := c.newRequest(ctx, http.MethodDelete, "/api/projects/"+url.PathEscape(id), nil, true)
	if err != nil {
		return err
	}
	res, err := c.do(req)
	if err != nil {
		return transportError(failMsg, err)
	}
	if !res.ok() {
		return newStatusError(res, failMsg)
	}
	return nil
}
