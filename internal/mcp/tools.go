package mcp

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/pranikov/sitekit/internal/domain/analytics"
	"github.com/pranikov/sitekit/internal/domain/content"
	"github.com/pranikov/sitekit/internal/domain/message"
	"github.com/pranikov/sitekit/internal/domain/preference"
	"github.com/pranikov/sitekit/internal/domain/project"
)

func registerTools(server *sdkmcp.Server, s Site) {
	// Projects
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List portfolio projects from the backend; falls back to sample projects when the backend fails",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ NoParams) (*sdkmcp.CallToolResult, ProjectsResponse, error) {
		result := s.Projects(ctx)
		resp := ProjectsResponse{Projects: normalizeProjects(result.Projects), Fallback: result.Fallback}
		if result.Err != nil {
			resp.Warning = result.Err.Error()
		}
		return nil, resp, nil
	})
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "save_project",
		Description: "Create a portfolio project",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in SaveProjectParams) (*sdkmcp.CallToolResult, ProjectResponse, error) {
		created, err := s.SaveProject(ctx, project.Input{
			Title:        in.Title,
			Description:  in.Description,
			Image:        in.Image,
			Technologies: in.Technologies,
			GitHub:       in.GitHub,
			Demo:         in.Demo,
			Category:     in.Category,
			Featured:     in.Featured,
		})
		if err != nil {
			return nil, ProjectResponse{}, err
		}
		return nil, ProjectResponse{Project: normalizeProject(created)}, nil
	})
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_project",
		Description: "Update fields of a portfolio project; omitted fields are unchanged",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in UpdateProjectParams) (*sdkmcp.CallToolResult, ProjectResponse, error) {
		updated, err := s.UpdateProject(ctx, in.ID, project.Patch{
			Title:        in.Title,
			Description:  in.Description,
			Image:        in.Image,
			Technologies: in.Technologies,
			GitHub:       in.GitHub,
			Demo:         in.Demo,
			Category:     in.Category,
			Featured:     in.Featured,
		})
		if err != nil {
			return nil, ProjectResponse{}, err
		}
		return nil, ProjectResponse{Project: normalizeProject(updated)}, nil
	})
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_project",
		Description: "Delete a portfolio project",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in IDParams) (*sdkmcp.CallToolResult, OKResponse, error) {
		if err := s.DeleteProject(ctx, in.ID); err != nil {
			return nil, OKResponse{}, err
		}
		return nil, OKResponse{OK: true}, nil
	})
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "upload_image",
		Description: "Upload an image and return its public URL",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in UploadImageParams) (*sdkmcp.CallToolResult, UploadImageResponse, error) {
		data, err := base64.StdEncoding.DecodeString(in.Content)
		if err != nil {
			return nil, UploadImageResponse{}, fmt.Errorf("content is not valid base64: %w", err)
		}
		url, err := s.UploadImage(ctx, in.Filename, bytes.NewReader(data))
		if err != nil {
			return nil, UploadImageResponse{}, err
		}
		return nil, UploadImageResponse{URL: url}, nil
	})

	// Contact messages
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "send_contact_message",
		Description: "Submit a contact form message",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in SendContactMessageParams) (*sdkmcp.CallToolResult, MessageResponse, error) {
		sent, err := s.SendContactMessage(ctx, message.Input{
			Name:    in.Name,
			Email:   in.Email,
			Subject: in.Subject,
			Message: in.Message,
		})
		if err != nil {
			return nil, MessageResponse{}, err
		}
		return nil, MessageResponse{Message: sent}, nil
	})
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_contact_messages",
		Description: "List contact messages with their local read state",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ NoParams) (*sdkmcp.CallToolResult, MessagesResponse, error) {
		messages, err := s.ListContactMessages(ctx)
		if err != nil {
			return nil, MessagesResponse{}, err
		}
		if messages == nil {
			messages = []message.ContactMessage{}
		}
		return nil, MessagesResponse{Messages: messages}, nil
	})
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_contact_message",
		Description: "Delete a contact message",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in IDParams) (*sdkmcp.CallToolResult, OKResponse, error) {
		if err := s.DeleteContactMessage(ctx, in.ID); err != nil {
			return nil, OKResponse{}, err
		}
		return nil, OKResponse{OK: true}, nil
	})
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "mark_message_read",
		Description: "Mark a contact message as read in the local store",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in IDParams) (*sdkmcp.CallToolResult, OKResponse, error) {
		if err := s.MarkMessageRead(ctx, in.ID); err != nil {
			return nil, OKResponse{}, err
		}
		return nil, OKResponse{OK: true}, nil
	})

	// Local content
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_services",
		Description: "Get the services shown on the services page",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ NoParams) (*sdkmcp.CallToolResult, ServicesResponse, error) {
		services, err := s.Services(ctx)
		if err != nil {
			return nil, ServicesResponse{}, err
		}
		return nil, ServicesResponse{Services: normalizeServices(services)}, nil
	})
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "save_services",
		Description: "Replace the services shown on the services page",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in SaveServicesParams) (*sdkmcp.CallToolResult, OKResponse, error) {
		if err := s.SaveServices(ctx, in.Services); err != nil {
			return nil, OKResponse{}, err
		}
		return nil, OKResponse{OK: true}, nil
	})
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_about",
		Description: "Get the about-page content",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ NoParams) (*sdkmcp.CallToolResult, AboutResponse, error) {
		about, err := s.About(ctx)
		if err != nil {
			return nil, AboutResponse{}, err
		}
		return nil, AboutResponse{About: normalizeAbout(about)}, nil
	})
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "save_about",
		Description: "Replace the about-page content",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in SaveAboutParams) (*sdkmcp.CallToolResult, OKResponse, error) {
		if err := s.SaveAbout(ctx, in.About); err != nil {
			return nil, OKResponse{}, err
		}
		return nil, OKResponse{OK: true}, nil
	})
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_analytics",
		Description: "Get page view, interaction, theme usage and visit counters",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ NoParams) (*sdkmcp.CallToolResult, AnalyticsResponse, error) {
		data, err := s.Analytics(ctx)
		if err != nil {
			return nil, AnalyticsResponse{}, err
		}
		return nil, AnalyticsResponse{Analytics: normalizeAnalytics(data)}, nil
	})
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "save_analytics",
		Description: "Replace the analytics counters",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in SaveAnalyticsParams) (*sdkmcp.CallToolResult, OKResponse, error) {
		if err := s.SaveAnalytics(ctx, in.Analytics); err != nil {
			return nil, OKResponse{}, err
		}
		return nil, OKResponse{OK: true}, nil
	})
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_theme",
		Description: "Get the stored site theme",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ NoParams) (*sdkmcp.CallToolResult, ThemeResponse, error) {
		theme, err := s.Theme(ctx)
		if err != nil {
			return nil, ThemeResponse{}, err
		}
		return nil, ThemeResponse{Theme: string(theme)}, nil
	})
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "save_theme",
		Description: "Store the site theme (light or dark)",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ThemeParams) (*sdkmcp.CallToolResult, ThemeResponse, error) {
		theme, err := preference.ParseTheme(in.Theme)
		if err != nil {
			return nil, ThemeResponse{}, err
		}
		if err := s.SaveTheme(ctx, theme); err != nil {
			return nil, ThemeResponse{}, err
		}
		return nil, ThemeResponse{Theme: string(theme)}, nil
	})
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_login_state",
		Description: "Get the admin-panel login flag (UI state only)",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ NoParams) (*sdkmcp.CallToolResult, LoginStateResponse, error) {
		loggedIn, err := s.IsLoggedIn(ctx)
		if err != nil {
			return nil, LoginStateResponse{}, err
		}
		return nil, LoginStateResponse{LoggedIn: loggedIn}, nil
	})
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "set_login_state",
		Description: "Set the admin-panel login flag (UI state only)",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in LoginStateParams) (*sdkmcp.CallToolResult, LoginStateResponse, error) {
		if err := s.SetLoggedIn(ctx, in.LoggedIn); err != nil {
			return nil, LoginStateResponse{}, err
		}
		return nil, LoginStateResponse{LoggedIn: in.LoggedIn}, nil
	})

	// Backups
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "export_all",
		Description: "Write a full backup file to the backup directory",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ NoParams) (*sdkmcp.CallToolResult, ExportResponse, error) {
		name, err := s.ExportAll(ctx)
		if err != nil {
			return nil, ExportResponse{}, err
		}
		return nil, ExportResponse{File: name}, nil
	})
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "import_all",
		Description: "Restore services, about content and analytics from a backup document",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ImportParams) (*sdkmcp.CallToolResult, OKResponse, error) {
		if err := s.ImportAll(ctx, []byte(in.Document)); err != nil {
			return nil, OKResponse{}, err
		}
		return nil, OKResponse{OK: true}, nil
	})
}

// Structured output is validated against the inferred schema, so slices and
// maps are sent as empty values rather than null.

func normalizeProject(p project.Project) project.Project {
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	return p
}

func normalizeProjects(projects []project.Project) []project.Project {
	out := make([]project.Project, 0, len(projects))
	for _, p := range projects {
		out = append(out, normalizeProject(p))
	}
	return out
}

func normalizeServices(services []content.Service) []content.Service {
	out := make([]content.Service, 0, len(services))
	for _, svc := range services {
		if svc.Features == nil {
			svc.Features = []string{}
		}
		out = append(out, svc)
	}
	return out
}

func normalizeAbout(about content.About) content.About {
	if about.Values == nil {
		about.Values = []content.Value{}
	}
	if about.Milestones == nil {
		about.Milestones = []content.Milestone{}
	}
	return about
}

func normalizeAnalytics(data analytics.Data) analytics.Data {
	if data.PageViews == nil {
		data.PageViews = map[string]int{}
	}
	if data.Interactions == nil {
		data.Interactions = map[string]int{}
	}
	if data.VisitHistory == nil {
		data.VisitHistory = []analytics.Visit{}
	}
	return data
}
