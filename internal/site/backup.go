package site

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-git/go-billy/v5/util"
	"github.com/pranikov/sitekit/internal/domain/analytics"
	"github.com/pranikov/sitekit/internal/domain/content"
	"github.com/pranikov/sitekit/internal/domain/message"
	"github.com/pranikov/sitekit/internal/domain/project"
)

// ErrInvalidBackup indicates a backup document that cannot be imported.
var ErrInvalidBackup = errors.New("invalid backup document")

// Backup is the full export document.
type Backup struct {
	Projects  []project.Project        `json:"projects"`
	Services  []content.Service        `json:"services"`
	About     content.About            `json:"about"`
	Messages  []message.ContactMessage `json:"messages"`
	Analytics analytics.Data           `json:"analytics"`
}

// BackupFilename returns the export file name for the date of t (UTC).
func BackupFilename(t time.Time) string {
	return "pranikov_backup_" + t.UTC().Format(time.DateOnly) + ".json"
}

// Snapshot gathers the current state of every entity. Projects degrade to
// seeds like Projects does; a message listing failure aborts the snapshot.
func (s *Site) Snapshot(ctx context.Context) (*Backup, error) {
	projects := s.Projects(ctx)

	services, err := s.local.Services(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading services: %w", err)
	}
	about, err := s.local.About(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading about: %w", err)
	}
	messages, err := s.ListContactMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	stats, err := s.local.Analytics(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading analytics: %w", err)
	}

	return &Backup{
		Projects:  projects.Projects,
		Services:  services,
		About:     about,
		Messages:  messages,
		Analytics: stats,
	}, nil
}

// ExportAll writes a backup file to the backup filesystem and returns its
// name.
func (s *Site) ExportAll(ctx context.Context) (string, error) {
	backup, err := s.Snapshot(ctx)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding backup: %w", err)
	}

	name := BackupFilename(s.now())
	if err := util.WriteFile(s.backups, name, data, 0o644); err != nil {
		return "", fmt.Errorf("writing backup %s: %w", name, err)
	}

	s.logger.Info("exported backup", "file", s.backups.Join(s.backups.Root(), name), "projects", len(backup.Projects), "messages", len(backup.Messages))
	return name, nil
}

type importDocument struct {
	Services  json.RawMessage `json:"services"`
	About     json.RawMessage `json:"about"`
	Analytics json.RawMessage `json:"analytics"`
}

func present(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// ImportAll restores services, about content and analytics from a backup
// document, which must be a JSON object. Sections that are absent are left untouched; other keys are
// ignored. Every present section is decoded before anything is written, so
// malformed input writes nothing. Slots are written one at a time.
func (s *Site) ImportAll(ctx context.Context, data []byte) error {
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '{' {
		s.logger.Error("import failed", "error", "document is not a JSON object")
		return fmt.Errorf("%w: document is not a JSON object", ErrInvalidBackup)
	}

	var doc importDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Error("import failed", "error", err)
		return fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}

	var (
		services []content.Service
		about    content.About
		stats    analytics.Data
	)
	if present(doc.Services) {
		if err := json.Unmarshal(doc.Services, &services); err != nil {
			return fmt.Errorf("%w: services: %v", ErrInvalidBackup, err)
		}
	}
	if present(doc.About) {
		if err := json.Unmarshal(doc.About, &about); err != nil {
			return fmt.Errorf("%w: about: %v", ErrInvalidBackup, err)
		}
	}
	if present(doc.Analytics) {
		if err := json.Unmarshal(doc.Analytics, &stats); err != nil {
			return fmt.Errorf("%w: analytics: %v", ErrInvalidBackup, err)
		}
	}

	if present(doc.Services) {
		if err := s.local.SaveServices(ctx, services); err != nil {
			return fmt.Errorf("importing services: %w", err)
		}
	}
	if present(doc.About) {
		if err := s.local.SaveAbout(ctx, about); err != nil {
			return fmt.Errorf("importing about: %w", err)
		}
	}
	if present(doc.Analytics) {
		if err := s.local.SaveAnalytics(ctx, stats); err != nil {
			return fmt.Errorf("importing analytics: %w", err)
		}
	}

	s.logger.Info("imported backup", "services", present(doc.Services), "about", present(doc.About), "analytics", present(doc.Analytics))
	return nil
}
