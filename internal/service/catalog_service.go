package service

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/wynet321/fund-insight-backend/internal/fundapi"
	"github.com/wynet321/fund-insight-backend/internal/model"
	"github.com/wynet321/fund-insight-backend/internal/repository"
	"github.com/wynet321/fund-insight-backend/internal/validation"
)

// refreshConcurrency caps how many fund types are paged from the provider at
// once during a refresh.
const refreshConcurrency = 3

// CatalogService maintains the local year-rate catalog and serves the
// comparison listing from it.
type CatalogService struct {
	client    fundapi.Client
	repo      *repository.CatalogRepository
	fundTypes []string
	pageSize  int
}

// NewCatalogService creates a CatalogService refreshing the given fund types
// in pages of pageSize.
func NewCatalogService(client fundapi.Client, repo *repository.CatalogRepository, fundTypes []string, pageSize int) *CatalogService {
	return &CatalogService{
		client:    client,
		repo:      repo,
		fundTypes: fundTypes,
		pageSize:  pageSize,
	}
}

// Refresh pages the provider's rate listing for every configured fund type
// and upserts the rows into the local catalog. Types are fetched
// concurrently; a failing type aborts the whole refresh so a half-updated
// catalog is noticed in the logs rather than silently served.
func (s *CatalogService) Refresh(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(refreshConcurrency)

	for _, fundType := range s.fundTypes {
		fundType := fundType
		g.Go(func() error {
			if err := s.refreshType(ctx, fundType); err != nil {
				return fmt.Errorf("refresh %s: %w", fundType, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func (s *CatalogService) refreshType(ctx context.Context, fundType string) error {
	for page := 0; ; page++ {
		result, err := s.client.RatePage(ctx, "oneYearRate", fundType, page, s.pageSize)
		if err != nil {
			return err
		}
		if len(result.Entries) == 0 {
			return nil
		}
		if err := s.repo.Upsert(ctx, result.Entries); err != nil {
			return err
		}
		log.Printf("catalog refresh: %s page %d, %d entries", fundType, page, len(result.Entries))
		if (page+1)*s.pageSize >= result.TotalItems {
			return nil
		}
	}
}

// List returns one page of the catalog ordered by the requested year-rate
// field descending, optionally filtered by fund types.
func (s *CatalogService) List(ctx context.Context, yearField string, types []string, page, size int) (model.CatalogPage, error) {
	if err := validation.ValidateListQuery(yearField, page, size); err != nil {
		return model.CatalogPage{}, err
	}
	return s.repo.List(ctx, validation.YearRateColumns[yearField], types, page, size)
}
