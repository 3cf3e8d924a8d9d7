package route

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"route-service/internal/entities"
	"route-service/internal/pkg/geometry"
	"route-service/internal/repository"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const selectColumns = "id, driver_id, start_latitude, start_longitude, waypoints, delivery_requests, path_wkb, " +
	"status, start_time, estimated_end_time, actual_end_time, total_distance_km, total_duration_ms, " +
	"created_at, updated_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create сохраняет новый маршрут; id генерируется, если не передан. Вместе с маршрутом пишется его линия в WKB.
func (r *Repository) Create(ctx context.Context, routeModify entities.RouteModify) (*entities.Route, error) {
	m := FromDomainModify(&routeModify)
	if m.DriverID == nil || m.StartLatitude == nil || m.StartTime == nil || m.EstimatedEndTime == nil {
		return nil, errors.New("unexpected route repository create error: driver, start and times are required")
	}

	id := uuid.NewString()
	if m.ID != nil {
		id = *m.ID
	}

	waypointsJSON, err := json.Marshal(m.Waypoints)
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository create error: %w", err)
	}

	path, err := geometry.Path(*routeModify.Start, routeModify.Waypoints)
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository create error: %w", err)
	}
	pathWKB, err := geometry.MarshalWKB(path)
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository create error: %w", err)
	}

	deliveryRequests := []string{}
	if m.DeliveryRequests != nil {
		deliveryRequests = *m.DeliveryRequests
	}
	status := entities.RouteActive.String()
	if m.Status != nil {
		status = *m.Status
	}

	query, args, err := qb.Insert("routes").
		Columns(
			"id", "driver_id", "start_latitude", "start_longitude", "waypoints", "delivery_requests",
			"path_wkb", "status", "start_time", "estimated_end_time", "total_distance_km", "total_duration_ms",
		).
		Values(
			id, *m.DriverID, *m.StartLatitude, *m.StartLongitude, waypointsJSON, deliveryRequests,
			pathWKB, status, *m.StartTime, *m.EstimatedEndTime, valueOrZero(m.TotalDistanceKm), valueOrZero(m.TotalDurationMs),
		).
		Suffix("RETURNING " + selectColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository create error: %w", err)
	}

	routeDB, err := scanRoute(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, entities.ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected route repository create error: %w", err)
	}

	return ToDomain(routeDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Route, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate блокирует строку маршрута до конца транзакции из ctx.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id string) (*entities.Route, error) {
	return r.getByID(ctx, id, true)
}

func (r *Repository) getByID(ctx context.Context, id string, forUpdate bool) (*entities.Route, error) {
	builder := qb.Select(selectColumns).
		From("routes").
		Where(sq.Eq{"id": id})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository getbyid error: %w", err)
	}

	routeDB, err := scanRoute(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrRouteNotFound
		}
		return nil, fmt.Errorf("unexpected route repository getbyid error: %w", err)
	}

	return ToDomain(routeDB), nil
}

// GetActiveByDriver - активные маршруты водителя, новые последними.
func (r *Repository) GetActiveByDriver(ctx context.Context, driverID string) ([]entities.Route, error) {
	query, args, err := qb.Select(selectColumns).
		From("routes").
		Where(sq.Eq{"driver_id": driverID, "status": entities.RouteActive.String()}).
		OrderBy("start_time", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository getactive error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository getactive error: %w", err)
	}
	defer rows.Close()

	routesDB := make([]RouteDB, 0, 2)
	for rows.Next() {
		routeDB, err := scanRoute(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected route repository getactive error: %w", err)
		}
		routesDB = append(routesDB, *routeDB)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected route repository getactive error: %w", err)
	}

	return ToDomainList(routesDB), nil
}

// Update меняет только изменяемую часть маршрута: список открытых заявок, статус и фактическое окончание.
func (r *Repository) Update(ctx context.Context, routeModify entities.RouteModify) (*entities.Route, error) {
	m := FromDomainModify(&routeModify)
	if m.ID == nil {
		return nil, entities.ErrRouteNotFound
	}

	builder := qb.Update("routes")

	// опциональные поля
	if m.DeliveryRequests != nil {
		builder = builder.Set("delivery_requests", *m.DeliveryRequests)
	}
	if m.Status != nil {
		builder = builder.Set("status", *m.Status)
	}
	if m.ActualEndTime != nil {
		builder = builder.Set("actual_end_time", *m.ActualEndTime)
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": *m.ID}).
		Suffix("RETURNING " + selectColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository update error: %w", err)
	}

	routeDB, err := scanRoute(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrRouteNotFound
		}
		return nil, fmt.Errorf("unexpected route repository update error: %w", err)
	}

	return ToDomain(routeDB), nil
}

// CountOverdue считает активные маршруты, чьё расчётное окончание уже прошло.
func (r *Repository) CountOverdue(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := qb.Select("COUNT(*)").
		From("routes").
		Where(sq.Eq{"status": entities.RouteActive.String()}).
		Where(sq.Lt{"estimated_end_time": now}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected route repository countoverdue error: %w", err)
	}

	var count int64
	if err := r.querier.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("unexpected route repository countoverdue error: %w", err)
	}
	return count, nil
}

func scanRoute(row pgx.Row) (*RouteDB, error) {
	var (
		r             RouteDB
		waypointsJSON []byte
	)
	err := row.Scan(
		&r.ID,
		&r.DriverID,
		&r.StartLatitude,
		&r.StartLongitude,
		&waypointsJSON,
		&r.DeliveryRequests,
		&r.PathWKB,
		&r.Status,
		&r.StartTime,
		&r.EstimatedEndTime,
		&r.ActualEndTime,
		&r.TotalDistanceKm,
		&r.TotalDurationMs,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(waypointsJSON, &r.Waypoints); err != nil {
		return nil, fmt.Errorf("decode waypoints of route %s: %w", r.ID, err)
	}
	return &r, nil
}

func valueOrZero[T int64 | float64](v *T) T {
	if v == nil {
		return 0
	}
	return *v
}
