package services

import (
	"context"
	"fmt"
	"log"

	"content-gateway/pkg/clients/supabase"
	"content-gateway/pkg/models"
	"content-gateway/pkg/utils"
)

// LeadsTable is append-only from this service's point of view
const LeadsTable = "leads"

// LeadService captures contact form submissions and lists them back
type LeadService interface {
	SubmitLead(ctx context.Context, lead models.LeadSubmission) error
	ListLeads(ctx context.Context) ([]models.Lead, error)
}

type leadServiceImpl struct {
	store supabase.Client
}

// NewLeadService creates a new lead service
func NewLeadService(store supabase.Client) LeadService {
	return &leadServiceImpl{store: store}
}

// SubmitLead inserts one row per call; repeated submissions are stored twice.
// Key presence is checked when the request body is decoded.
func (s *leadServiceImpl) SubmitLead(ctx context.Context, lead models.LeadSubmission) error {
	// Keep the address itself out of the logs
	emailHash := utils.HashString(lead.Email)
	log.Printf("Capturing lead from %s (%s)", lead.Company, emailHash)

	if err := s.store.Insert(ctx, LeadsTable, lead); err != nil {
		return fmt.Errorf("error saving lead: %w", err)
	}

	return nil
}

// ListLeads returns every lead, newest first
func (s *leadServiceImpl) ListLeads(ctx context.Context) ([]models.Lead, error) {
	leads := []models.Lead{}

	query := supabase.Query{
		OrderBy: "created_at",
		Desc:    true,
	}
	if err := s.store.Select(ctx, LeadsTable, query, &leads); err != nil {
		return nil, fmt.Errorf("error fetching leads: %w", err)
	}

	// A JSON null from the store decodes to a nil slice
	if leads == nil {
		leads = []models.Lead{}
	}

	return leads, nil
}
