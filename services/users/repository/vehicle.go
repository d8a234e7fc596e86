package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/ridepool/ridepool/internal/pkg/models"
)

// CreateVehicle inserts a new vehicle for an owner
func (r *UserRepo) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	query := `
		INSERT INTO vehicles (id, owner_id, brand, model, license_plate, color, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		vehicle.ID,
		vehicle.OwnerID,
		vehicle.Brand,
		vehicle.Model,
		vehicle.LicensePlate,
		vehicle.Color,
		vehicle.CreatedAt,
	)

	return err
}

// GetVehicle retrieves a vehicle by id
func (r *UserRepo) GetVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	query := `
		SELECT id, owner_id, brand, model, license_plate, color, created_at
		FROM vehicles
		WHERE id = $1
	`

	vehicle := &models.Vehicle{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&vehicle.ID,
		&vehicle.OwnerID,
		&vehicle.Brand,
		&vehicle.Model,
		&vehicle.LicensePlate,
		&vehicle.Color,
		&vehicle.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return vehicle, nil
}

// ListVehiclesByOwner retrieves all vehicles owned by a user
func (r *UserRepo) ListVehiclesByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Vehicle, error) {
	query := `
		SELECT id, owner_id, brand, model, license_plate, color, created_at
		FROM vehicles
		WHERE owner_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vehicles := []models.Vehicle{}
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(&v.ID, &v.OwnerID, &v.Brand, &v.Model, &v.LicensePlate, &v.Color, &v.CreatedAt); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}

	return vehicles, rows.Err()
}

// UpdateVehicle persists vehicle changes
func (r *UserRepo) UpdateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	query := `
		UPDATE vehicles
		SET brand = $1, model = $2, license_plate = $3, color = $4
		WHERE id = $5
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		vehicle.Brand,
		vehicle.Model,
		vehicle.LicensePlate,
		vehicle.Color,
		vehicle.ID,
	)

	return err
}

// DeleteVehicle removes a vehicle
func (r *UserRepo) DeleteVehicle(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("vehicle not found")
	}

	return nil
}

// CountOpenTripsByVehicle counts non-terminal trips referencing a vehicle
func (r *UserRepo) CountOpenTripsByVehicle(ctx context.Context, vehicleID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*) FROM trips
		WHERE vehicle_id = $1
		AND status IN ('PUBLISHED', 'PARTIALLY_BOOKED', 'FULL', 'ONGOING')
	`

	var count int
	err := r.db.QueryRowContext(ctx, query, vehicleID).Scan(&count)
	return count, err
}
