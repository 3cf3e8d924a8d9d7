package request

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"route-service/internal/entities"
	"route-service/internal/pkg/geo"
)

type Request struct {
	repository  Repository
	drivers     DriverRepository
	timeFactory TravelTimeFactory
}

func New(repository Repository, drivers DriverRepository, timeFactory TravelTimeFactory) *Request {
	return &Request{
		repository:  repository,
		drivers:     drivers,
		timeFactory: timeFactory,
	}
}

// ListPending - пул свободных заявок глазами конкретного водителя: расстояния,
// оценка времени на его транспорте и сколько заявок он ещё может взять.
func (s *Request) ListPending(ctx context.Context, driverID string, sortKey entities.RequestSortKey) (*entities.PendingSelection, error) {
	if strings.TrimSpace(driverID) == "" {
		return nil, ErrInvalidDriverID
	}
	if sortKey == "" {
		sortKey = entities.DefaultRequestSortKey
	}
	if !sortKey.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSortKey, sortKey)
	}

	driver, err := s.drivers.GetByID(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("get driver: %w", err)
	}

	pending, err := s.repository.GetPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("get pending requests: %w", err)
	}

	candidates := make([]entities.RequestCandidate, 0, len(pending))
	for _, req := range pending {
		if !req.IsSelectable() {
			continue
		}
		candidate, err := s.candidate(driver, req)
		if err != nil {
			return nil, fmt.Errorf("estimate request %s: %w", req.ID, err)
		}
		candidates = append(candidates, candidate)
	}
	sortCandidates(candidates, sortKey)

	return &entities.PendingSelection{
		DriverID:      driver.ID,
		MaxSelectable: driver.RemainingCapacity(),
		Candidates:    candidates,
	}, nil
}

// Ingest заводит новую pending-заявку. Повтор с тем же id ничего не меняет,
// заявка без id получает новый uuid.
func (s *Request) Ingest(ctx context.Context, requestModify entities.DeliveryRequestModify) (*entities.DeliveryRequest, bool, error) {
	if requestModify.Pickup == nil || requestModify.Delivery == nil {
		return nil, false, ErrMissingRequiredFields
	}
	if requestModify.ID == nil {
		id := uuid.NewString()
		requestModify.ID = &id
	}
	if strings.TrimSpace(*requestModify.ID) == "" {
		return nil, false, ErrInvalidRequestID
	}
	if err := geo.Validate(*requestModify.Pickup); err != nil {
		return nil, false, fmt.Errorf("pickup: %w", err)
	}
	if err := geo.Validate(*requestModify.Delivery); err != nil {
		return nil, false, fmt.Errorf("delivery: %w", err)
	}

	pending := entities.RequestPending
	requestModify.Status = &pending
	requestModify.AssignedDriverID = nil
	requestModify.BatchID = nil
	if requestModify.CreatedAt == nil {
		now := time.Now().UTC()
		requestModify.CreatedAt = &now
	}

	created, err := s.repository.Create(ctx, requestModify)
	if errors.Is(err, entities.ErrRequestAlreadyExists) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("create request: %w", err)
	}
	return created, true, nil
}

func (s *Request) candidate(driver *entities.Driver, req entities.DeliveryRequest) (entities.RequestCandidate, error) {
	distance, err := geo.Distance(req.Pickup, req.Delivery)
	if err != nil {
		return entities.RequestCandidate{}, err
	}

	candidate := entities.RequestCandidate{
		Request:           req,
		Distance:          distance,
		EstimatedDuration: s.timeFactory.EstimateDuration(driver.VehicleClass, distance),
	}

	if driver.Position != nil {
		approach, err := geo.Distance(*driver.Position, req.Pickup)
		if err != nil {
			return entities.RequestCandidate{}, fmt.Errorf("driver position: %w", err)
		}
		candidate.ApproachDistance = &approach
	}
	return candidate, nil
}

// sortCandidates сортирует устойчиво; при равенстве ключа порядок по created_at, затем по id.
func sortCandidates(candidates []entities.RequestCandidate, sortKey entities.RequestSortKey) {
	slices.SortStableFunc(candidates, func(a, b entities.RequestCandidate) int {
		var c int
		switch sortKey {
		case entities.SortByDistance:
			c = cmp.Compare(a.Distance, b.Distance)
		case entities.SortByTime:
			c = cmp.Compare(a.EstimatedDuration, b.EstimatedDuration)
		case entities.SortByPriority:
			c = -compareBool(a.Request.IsPriority, b.Request.IsPriority)
		}
		if c != 0 {
			return c
		}
		if c = a.Request.CreatedAt.Compare(b.Request.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.Request.ID, b.Request.ID)
	})
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}
