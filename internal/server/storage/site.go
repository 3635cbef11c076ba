package storage

import (
	"context"

	"github.com/iudanet/gophtext/internal/models"
)

//go:generate moq -out site_mock.go . SiteStorage

// SiteStorage defines interface for registered sites persistence
type SiteStorage interface {
	// CreateSite registers a new site
	// Returns ErrSiteAlreadyExists if site id is taken
	CreateSite(ctx context.Context, site *models.Site) error

	// GetSite retrieves site by id
	// Returns ErrSiteNotFound if site doesn't exist
	GetSite(ctx context.Context, siteID string) (*models.Site, error)
}
