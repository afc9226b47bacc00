package postgres

import (
	"context"
	"fmt"
	"log"

	"hardings-auto/go_backend/internal/domain/catalog"
)

const (
	servicesSQL = `SELECT name, supports_description FROM service_catalog ORDER BY position, name`
	vehiclesSQL = `SELECT make, model FROM vehicle_models ORDER BY position, make, model`
)

type vehicleRow struct {
	Make  string
	Model *string
}

// LoadCatalog reads the garage catalog. Empty tables keep the built-in lists.
func (db *DB) LoadCatalog(ctx context.Context) (*catalog.Services, *catalog.Vehicles, error) {
	services, err := db.loadServices(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load services: %w", err)
	}
	rows, err := db.loadVehicles(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load vehicles: %w", err)
	}
	log.Printf("catalog: loaded from db services=%d vehicle_rows=%d", len(services), len(rows))
	return servicesOrDefault(services), vehiclesOrDefault(rows), nil
}

func (db *DB) loadServices(ctx context.Context) ([]catalog.Service, error) {
	rows, err := db.Pool.Query(ctx, servicesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []catalog.Service
	for rows.Next() {
		var s catalog.Service
		if err := rows.Scan(&s.Name, &s.SupportsDescription); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (db *DB) loadVehicles(ctx context.Context) ([]vehicleRow, error) {
	rows, err := db.Pool.Query(ctx, vehiclesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []vehicleRow
	for rows.Next() {
		var v vehicleRow
		if err := rows.Scan(&v.Make, &v.Model); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func servicesOrDefault(list []catalog.Service) *catalog.Services {
	s := catalog.NewServices(list)
	if s.Len() == 0 {
		return catalog.DefaultServices()
	}
	return s
}

// vehiclesOrDefault groups rows by make in first-seen order. A NULL model
// registers the make with a free-text model.
func vehiclesOrDefault(rows []vehicleRow) *catalog.Vehicles {
	makes := make([]catalog.Make, 0, len(rows))
	for _, r := range rows {
		m := catalog.Make{Name: r.Make}
		if r.Model != nil {
			m.Models = []string{*r.Model}
		}
		makes = append(makes, m)
	}
	v := catalog.NewVehicles(makes)
	if len(v.Makes()) == 0 {
		return catalog.DefaultVehicles()
	}
	return v
}
