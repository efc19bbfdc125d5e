package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tapea/backoffice/internal/pkg/constants"
	"github.com/tapea/backoffice/internal/pkg/models"
)

// StorePosition records a live driver position: the shared geo set for
// radius queries, plus a per-driver key whose TTL doubles as a liveness
// marker. Geo set members never expire on their own, so readers must
// check the per-driver key.
func (r *FleetRepo) StorePosition(ctx context.Context, pos *models.DriverPosition) error {
	member := pos.DriverID.String()

	if err := r.redis.GeoAdd(ctx, constants.KeyDriverGeo, pos.Longitude, pos.Latitude, member); err != nil {
		return fmt.Errorf("failed to record driver position: %w", err)
	}

	raw, err := json.Marshal(pos)
	if err != nil {
		return fmt.Errorf("failed to marshal driver position: %w", err)
	}
	key := fmt.Sprintf(constants.KeyDriverPosition, member)
	if err := r.redis.Set(ctx, key, raw, constants.DriverPositionTTL); err != nil {
		return fmt.Errorf("failed to store driver position: %w", err)
	}
	return nil
}

// NearbyDrivers finds live drivers within radiusKm of a point, nearest
// first. Drivers whose position key expired are dropped as stale.
func (r *FleetRepo) NearbyDrivers(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.NearbyDriver, error) {
	locations, err := r.redis.GeoRadius(ctx, constants.KeyDriverGeo, longitude, latitude, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("failed to query driver positions: %w", err)
	}

	result := make([]models.NearbyDriver, 0, len(locations))
	for _, loc := range locations {
		key := fmt.Sprintf(constants.KeyDriverPosition, loc.Name)
		if _, err := r.redis.Get(ctx, key); err != nil {
			// Expired or unreadable: the driver stopped reporting
			continue
		}
		result = append(result, models.NearbyDriver{
			DriverID:   loc.Name,
			Latitude:   loc.Latitude,
			Longitude:  loc.Longitude,
			DistanceKm: loc.Dist,
		})
	}
	return result, nil
}
