package request

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"route-service/internal/entities"
	"route-service/internal/repository"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id",
	"pickup_latitude", "pickup_longitude", "pickup_address",
	"delivery_latitude", "delivery_longitude", "delivery_address",
	"is_priority", "status", "assigned_driver_id", "batch_id",
	"created_at", "accepted_at", "delivered_at", "cancelled_at", "updated_at",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create вставляет pending-заявку; повтор того же id даёт ErrRequestAlreadyExists.
func (r *Repository) Create(ctx context.Context, requestModify entities.DeliveryRequestModify) (*entities.DeliveryRequest, error) {
	m := FromDomainModify(&requestModify)
	if m.ID == nil || m.PickupLatitude == nil || m.DeliveryLatitude == nil {
		return nil, errors.New("unexpected request repository create error: id and coordinates are required")
	}

	cols := []string{
		"id",
		"pickup_latitude", "pickup_longitude", "pickup_address",
		"delivery_latitude", "delivery_longitude", "delivery_address",
		"is_priority", "status",
	}
	values := []any{
		*m.ID,
		*m.PickupLatitude, *m.PickupLongitude, valueOrEmpty(m.PickupAddress),
		*m.DeliveryLatitude, *m.DeliveryLongitude, valueOrEmpty(m.DeliveryAddress),
		m.IsPriority != nil && *m.IsPriority, entities.RequestPending.String(),
	}
	if m.CreatedAt != nil {
		cols = append(cols, "created_at")
		values = append(values, *m.CreatedAt)
	}

	builder := qb.Insert("delivery_requests").
		Columns(cols...).
		Values(values...)

	query, args, err := builder.
		Suffix("ON CONFLICT (id) DO NOTHING RETURNING " + returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected request repository create error: %w", err)
	}

	requestDB, err := scanRequest(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrRequestAlreadyExists
		}
		return nil, fmt.Errorf("unexpected request repository create error: %w", err)
	}

	return ToDomain(requestDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.DeliveryRequest, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate блокирует строку заявки до конца транзакции из ctx.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id string) (*entities.DeliveryRequest, error) {
	return r.getByID(ctx, id, true)
}

func (r *Repository) getByID(ctx context.Context, id string, forUpdate bool) (*entities.DeliveryRequest, error) {
	builder := qb.Select(columns...).
		From("delivery_requests").
		Where(sq.Eq{"id": id})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected request repository getbyid error: %w", err)
	}

	requestDB, err := scanRequest(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrRequestNotFound
		}
		return nil, fmt.Errorf("unexpected request repository getbyid error: %w", err)
	}

	return ToDomain(requestDB), nil
}

// GetByIDs возвращает заявки в порядке id; отсутствующие id просто не попадают в результат.
func (r *Repository) GetByIDs(ctx context.Context, ids []string) ([]entities.DeliveryRequest, error) {
	return r.getByIDs(ctx, ids, false)
}

// GetByIDsForUpdate блокирует строки в порядке id, чтобы параллельные транзакции не ловили дедлок.
func (r *Repository) GetByIDsForUpdate(ctx context.Context, ids []string) ([]entities.DeliveryRequest, error) {
	return r.getByIDs(ctx, ids, true)
}

func (r *Repository) getByIDs(ctx context.Context, ids []string, forUpdate bool) ([]entities.DeliveryRequest, error) {
	builder := qb.Select(columns...).
		From("delivery_requests").
		Where(sq.Eq{"id": ids}).
		OrderBy("id")
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected request repository getbyids error: %w", err)
	}

	return r.list(ctx, "getbyids", query, args)
}

// GetPending - пул заявок без водителя, старые первыми.
func (r *Repository) GetPending(ctx context.Context) ([]entities.DeliveryRequest, error) {
	query, args, err := qb.Select(columns...).
		From("delivery_requests").
		Where(sq.Eq{"status": entities.RequestPending.String()}).
		Where(sq.Eq{"assigned_driver_id": nil}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected request repository getpending error: %w", err)
	}

	return r.list(ctx, "getpending", query, args)
}

func (r *Repository) Update(ctx context.Context, requestModify entities.DeliveryRequestModify) (*entities.DeliveryRequest, error) {
	m := FromDomainModify(&requestModify)
	if m.ID == nil {
		return nil, entities.ErrRequestNotFound
	}

	builder := qb.Update("delivery_requests")

	// опциональные поля
	if m.Status != nil {
		builder = builder.Set("status", *m.Status)
	}
	if m.AssignedDriverID != nil {
		builder = builder.Set("assigned_driver_id", *m.AssignedDriverID)
	}
	if m.BatchID != nil {
		builder = builder.Set("batch_id", *m.BatchID)
	}
	if m.AcceptedAt != nil {
		builder = builder.Set("accepted_at", *m.AcceptedAt)
	}
	if m.DeliveredAt != nil {
		builder = builder.Set("delivered_at", *m.DeliveredAt)
	}
	if m.CancelledAt != nil {
		builder = builder.Set("cancelled_at", *m.CancelledAt)
	}
	if m.IsPriority != nil {
		builder = builder.Set("is_priority", *m.IsPriority)
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": *m.ID}).
		Suffix("RETURNING " + returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected request repository update error: %w", err)
	}

	requestDB, err := scanRequest(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrRequestNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, fmt.Errorf("request %s references missing driver or route: %w", *m.ID, err)
		}
		return nil, fmt.Errorf("unexpected request repository update error: %w", err)
	}

	return ToDomain(requestDB), nil
}

func (r *Repository) list(ctx context.Context, op, query string, args []any) ([]entities.DeliveryRequest, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected request repository %s error: %w", op, err)
	}
	defer rows.Close()

	requestsDB := make([]DeliveryRequestDB, 0, 8)
	for rows.Next() {
		requestDB, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected request repository %s error: %w", op, err)
		}
		requestsDB = append(requestsDB, *requestDB)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected request repository %s error: %w", op, err)
	}

	return ToDomainList(requestsDB), nil
}

func returning() string {
	return "id, pickup_latitude, pickup_longitude, pickup_address, " +
		"delivery_latitude, delivery_longitude, delivery_address, " +
		"is_priority, status, assigned_driver_id, batch_id, " +
		"created_at, accepted_at, delivered_at, cancelled_at, updated_at"
}

func scanRequest(row pgx.Row) (*DeliveryRequestDB, error) {
	var r DeliveryRequestDB
	err := row.Scan(
		&r.ID,
		&r.PickupLatitude,
		&r.PickupLongitude,
		&r.PickupAddress,
		&r.DeliveryLatitude,
		&r.DeliveryLongitude,
		&r.DeliveryAddress,
		&r.IsPriority,
		&r.Status,
		&r.AssignedDriverID,
		&r.BatchID,
		&r.CreatedAt,
		&r.AcceptedAt,
		&r.DeliveredAt,
		&r.CancelledAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
