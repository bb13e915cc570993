package repositories

import (
	"context"
	"net/url"

	"bakery_console_backend/internal/models"
	"bakery_console_backend/internal/remote"
)

// ProductionRepository defines the remote operations for production records.
type ProductionRepository interface {
	ListProductions(ctx context.Context, username string) ([]models.ProductionRecord, error)
	GetProductionByID(ctx context.Context, id int64) (*models.ProductionRecord, error)
	CreateProduction(ctx context.Context, record *models.ProductionRecord) (*models.ProductionRecord, error)
	UpdateProduction(ctx context.Context, record *models.ProductionRecord) (*models.ProductionRecord, error)
	DeleteProduction(ctx context.Context, id int64) error
}

type productionRepository struct {
	client *remote.Client
}

// NewProductionRepository creates a new instance of ProductionRepository.
func NewProductionRepository(client *remote.Client) ProductionRepository {
	return &productionRepository{client: client}
}

func (r *productionRepository) ListProductions(ctx context.Context, username string) ([]models.ProductionRecord, error) {
	query := url.Values{}
	if username != "" {
		query.Set("username", username)
	}
	records := []models.ProductionRecord{}
	if err := r.client.List(ctx, "productions", query, &records); err != nil {
		return nil, translate(err, "listing production records")
	}
	return records, nil
}

func (r *productionRepository) GetProductionByID(ctx context.Context, id int64) (*models.ProductionRecord, error) {
	record := &models.ProductionRecord{}
	if err := r.client.Get(ctx, "productions", id, record); err != nil {
		return nil, translate(err, "getting production record")
	}
	return record, nil
}

func (r *productionRepository) CreateProduction(ctx context.Context, record *models.ProductionRecord) (*models.ProductionRecord, error) {
	created := &models.ProductionRecord{}
	if err := r.client.Create(ctx, "productions", record, created); err != nil {
		return nil, translate(err, "creating production record")
	}
	return created, nil
}

func (r *productionRepository) UpdateProduction(ctx context.Context, record *models.ProductionRecord) (*models.ProductionRecord, error) {
	updated := &models.ProductionRecord{}
	if err := r.client.Update(ctx, "productions", record.ID, record, updated); err != nil {
		return nil, translate(err, "updating production record")
	}
	return updated, nil
}

func (r *productionRepository) DeleteProduction(ctx context.Context, id int64) error {
	if err := r.client.Delete(ctx, "productions", id); err != nil {
		return translate(err, "deleting production record")
	}
	return nil
}
