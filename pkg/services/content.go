package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"content-gateway/pkg/clients/supabase"
	"content-gateway/pkg/models"
)

// ContentTable holds the singleton site content row
const ContentTable = "site_content"

var (
	ErrContentNotFound = errors.New("no content found")
	ErrContentExists   = errors.New("content already exists")
)

// ContentService reads and replaces the site content document
type ContentService interface {
	GetContent(ctx context.Context) (*models.Content, error)
	UpdateContent(ctx context.Context, content models.Content) error
	SeedContent(ctx context.Context, content models.Content, force bool) error
}

type contentServiceImpl struct {
	store supabase.Client
	rowID int
}

// NewContentService creates a content service bound to the given row id
func NewContentService(store supabase.Client, rowID int) ContentService {
	return &contentServiceImpl{
		store: store,
		rowID: rowID,
	}
}

// GetContent returns ErrContentNotFound when the row is missing or empty
func (s *contentServiceImpl) GetContent(ctx context.Context) (*models.Content, error) {
	var rows []struct {
		Content json.RawMessage `json:"content"`
	}

	query := supabase.Query{
		Columns: "content",
		Filters: []supabase.Filter{supabase.Eq("id", s.rowID)},
	}
	if err := s.store.Select(ctx, ContentTable, query, &rows); err != nil {
		return nil, fmt.Errorf("error fetching content: %w", err)
	}

	if len(rows) == 0 || len(rows[0].Content) == 0 || string(rows[0].Content) == "null" {
		return nil, ErrContentNotFound
	}

	// A bad stored document is a server fault, so the validation error is
	// flattened rather than wrapped
	var content models.Content
	if err := models.Unmarshal(rows[0].Content, &content); err != nil {
		return nil, fmt.Errorf("stored content is invalid: %v", err)
	}

	return &content, nil
}

// UpdateContent overwrites the whole document
func (s *contentServiceImpl) UpdateContent(ctx context.Context, content models.Content) error {
	if err := models.Validate(content); err != nil {
		return err
	}

	values := map[string]interface{}{"content": content}
	n, err := s.store.Update(ctx, ContentTable, []supabase.Filter{supabase.Eq("id", s.rowID)}, values)
	if err != nil {
		return fmt.Errorf("error updating content: %w", err)
	}
	if n == 0 {
		return ErrContentNotFound
	}

	log.Printf("Updated site content row %d", s.rowID)
	return nil
}

// SeedContent creates the content row. Without force an existing document is
// left untouched and ErrContentExists is returned.
func (s *contentServiceImpl) SeedContent(ctx context.Context, content models.Content, force bool) error {
	if err := models.Validate(content); err != nil {
		return err
	}

	if !force {
		_, err := s.GetContent(ctx)
		switch {
		case err == nil:
			return ErrContentExists
		case !errors.Is(err, ErrContentNotFound):
			return err
		}
	}

	row := map[string]interface{}{
		"id":      s.rowID,
		"content": content,
	}
	if err := s.store.Upsert(ctx, ContentTable, row); err != nil {
		return fmt.Errorf("error seeding content: %w", err)
	}

	log.Printf("Seeded site content row %d", s.rowID)
	return nil
}
