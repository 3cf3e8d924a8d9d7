package driver

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"route-service/internal/entities"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "name", "latitude", "longitude", "vehicle_class", "status",
	"current_deliveries", "max_concurrent_deliveries", "created_at", "updated_at",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Driver, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate блокирует строку водителя до конца транзакции из ctx.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id string) (*entities.Driver, error) {
	return r.getByID(ctx, id, true)
}

func (r *Repository) getByID(ctx context.Context, id string, forUpdate bool) (*entities.Driver, error) {
	builder := qb.Select(columns...).
		From("drivers").
		Where(sq.Eq{"id": id})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository getbyid error: %w", err)
	}

	driverDB, err := scanDriver(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected driver repository getbyid error: %w", err)
	}

	return ToDomain(driverDB), nil
}

func (r *Repository) GetAll(ctx context.Context, filter entities.DriverFilter) ([]entities.Driver, error) {
	builder := qb.Select(columns...).
		From("drivers").
		OrderBy("id")
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository getall error: %w", err)
	}
	defer rows.Close()

	driversDB := make([]DriverDB, 0, 8)
	for rows.Next() {
		driverDB, err := scanDriver(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected driver repository getall error: %w", err)
		}
		driversDB = append(driversDB, *driverDB)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected driver repository getall error: %w", err)
	}

	return ToDomainList(driversDB), nil
}

func (r *Repository) Update(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error) {
	modifyDB := FromDomainModify(&driverModify)
	if modifyDB.ID == nil {
		return nil, entities.ErrDriverNotFound
	}

	builder := qb.Update("drivers")

	// опциональные поля
	if modifyDB.Latitude != nil && modifyDB.Longitude != nil {
		builder = builder.
			Set("latitude", *modifyDB.Latitude).
			Set("longitude", *modifyDB.Longitude)
	}
	if modifyDB.Status != nil {
		builder = builder.Set("status", *modifyDB.Status)
	}
	if modifyDB.CurrentDeliveries != nil {
		builder = builder.Set("current_deliveries", *modifyDB.CurrentDeliveries)
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": *modifyDB.ID}).
		Suffix("RETURNING id, name, latitude, longitude, vehicle_class, status, " +
			"current_deliveries, max_concurrent_deliveries, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	driverDB, err := scanDriver(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	return ToDomain(driverDB), nil
}

func scanDriver(row pgx.Row) (*DriverDB, error) {
	var d DriverDB
	err := row.Scan(
		&d.ID,
		&d.Name,
		&d.Latitude,
		&d.Longitude,
		&d.VehicleClass,
		&d.Status,
		&d.CurrentDeliveries,
		&d.MaxConcurrentDeliveries,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
