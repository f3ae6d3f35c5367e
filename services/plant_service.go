package services

import (
	"context"
	"plantstore_server/database"
	"plantstore_server/lib"
	"plantstore_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

type PlantService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewPlantService(logger *gecho.Logger, db *database.DB) *PlantService {
	return &PlantService{
		logger: logger,
		db:     db,
	}
}

// ListAvailable returns plants with stock, in name order, for the shop page.
func (ps *PlantService) ListAvailable(ctx context.Context) ([]tables.Plant, error) {
	var plants []tables.Plant

	err := database.WithRetry(ctx, func() error {
		plants = nil
		return ps.db.NewSelect().
			Model(&plants).
			Where("stock_quantity > 0").
			Order("name ASC").
			Scan(ctx)
	})
	if err != nil {
		ps.logger.Error("Failed to list available plants", gecho.Field("error", err))
		return nil, lib.MapDBError(err)
	}

	return plants, nil
}
