package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakery_console_backend/internal/models"
)

func validProductionRequest() SaveProductionRequest {
	return SaveProductionRequest{
		ProductName:      "Cake",
		RawMaterials:     []int64{1, 2},
		QuantityUsed:     []int64{5, 3},
		QuantityProduced: 50,
		QuantityDamaged:  5,
		ProductionDate:   "2024-05-03T10:00:00Z",
		UnitPrice:        "10.00",
	}
}

func TestCreateProductionStoresRecord(t *testing.T) {
	repo := &stubProductionRepo{}
	svc := NewProductionService(repo)

	record, err := svc.CreateProduction(context.Background(), "apio", validProductionRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), record.ID)
	assert.Equal(t, "apio", record.Username)
	require.Len(t, repo.records, 1)
	assert.Equal(t, []int64{5, 3}, repo.records[0].QuantityUsed)
}

func TestCreateProductionRejectsMismatchedListsWithoutWriting(t *testing.T) {
	// RawMaterials and QuantityUsed are index-aligned; unequal lengths never
	// reach the store.
	repo := &stubProductionRepo{}
	svc := NewProductionService(repo)

	req := validProductionRequest()
	req.RawMaterials = []int64{1, 2}
	req.QuantityUsed = []int64{5}

	_, err := svc.CreateProduction(context.Background(), "apio", req)
	require.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, repo.records)
}

func TestCreateProductionRejectsDamagedExceedingProduced(t *testing.T) {
	repo := &stubProductionRepo{}
	svc := NewProductionService(repo)

	req := validProductionRequest()
	req.QuantityProduced = 10
	req.QuantityDamaged = 11

	_, err := svc.CreateProduction(context.Background(), "apio", req)
	require.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, repo.records)
}

func TestCreateProductionValidation(t *testing.T) {
	svc := NewProductionService(&stubProductionRepo{})

	req := validProductionRequest()
	req.ProductName = " "
	_, err := svc.CreateProduction(context.Background(), "apio", req)
	assert.ErrorIs(t, err, ErrValidation)

	req = validProductionRequest()
	req.QuantityDamaged = -1
	_, err = svc.CreateProduction(context.Background(), "apio", req)
	assert.ErrorIs(t, err, ErrValidation)

	req = validProductionRequest()
	req.QuantityUsed = []int64{5, -3}
	_, err = svc.CreateProduction(context.Background(), "apio", req)
	assert.ErrorIs(t, err, ErrValidation)

	req = validProductionRequest()
	req.UnitPrice = "ten"
	_, err = svc.CreateProduction(context.Background(), "apio", req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateProductionRejectsInvalidRequestWithoutWriting(t *testing.T) {
	repo := &stubProductionRepo{records: []models.ProductionRecord{{
		ID:               1,
		ProductName:      "Cake",
		RawMaterials:     []int64{1},
		QuantityUsed:     []int64{5},
		QuantityProduced: 50,
		UnitPrice:        "10.00",
	}}}
	svc := NewProductionService(repo)

	req := validProductionRequest()
	req.QuantityDamaged = 100

	_, err := svc.UpdateProduction(context.Background(), "apio", 1, req)
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, int64(0), repo.records[0].QuantityDamaged, "stored record untouched")
}

func TestUpdateProductionReplacesFields(t *testing.T) {
	repo := &stubProductionRepo{records: []models.ProductionRecord{{
		ID:               1,
		ProductName:      "Cake",
		RawMaterials:     []int64{1},
		QuantityUsed:     []int64{5},
		QuantityProduced: 50,
		ProductionDate:   "2024-05-01T10:00:00Z",
		UnitPrice:        "10.00",
		Username:         "apio",
	}}}
	svc := NewProductionService(repo)

	req := validProductionRequest()
	req.QuantityProduced = 60

	updated, err := svc.UpdateProduction(context.Background(), "apio", 1, req)
	require.NoError(t, err)
	assert.Equal(t, int64(60), updated.QuantityProduced)
	assert.Equal(t, "apio", updated.Username, "creator is kept")
	assert.Equal(t, int64(60), repo.records[0].QuantityProduced)
}

func TestGetProductionNotFound(t *testing.T) {
	svc := NewProductionService(&stubProductionRepo{})
	_, err := svc.GetProduction(context.Background(), 9)
	assert.ErrorIs(t, err, ErrProductionNotFound)
}
