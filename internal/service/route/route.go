package route

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"route-service/internal/entities"
	"route-service/internal/pkg/metrics"
	"route-service/internal/service/optimizer"
	"route-service/pkg/locker"
)

const (
	driverLockPrefix = "driver:"
	routeLockPrefix  = "route:"
)

// Service - жизненный цикл маршрута: создание из результата построителя,
// закрытие остановок, отмена заявок. Все изменения водителя, заявок и маршрута
// в рамках одной операции атомарны; конфликтующие операции сериализуются
// блокировкой по водителю и по маршруту.
type Service struct {
	routes    RouteRepository
	requests  RequestRepository
	drivers   DriverRepository
	builder   Builder
	locker    Locker
	publisher EventPublisher
	txManager TxManager
	lockWait  time.Duration
}

func New(
	routes RouteRepository,
	requests RequestRepository,
	drivers DriverRepository,
	builder Builder,
	locker Locker,
	publisher EventPublisher,
	txManager TxManager,
	lockWait time.Duration,
) *Service {
	return &Service{
		routes:    routes,
		requests:  requests,
		drivers:   drivers,
		builder:   builder,
		locker:    locker,
		publisher: publisher,
		txManager: txManager,
		lockWait:  lockWait,
	}
}

// PreviewRoute строит маршрут без сохранения.
func (s *Service) PreviewRoute(ctx context.Context, driverID string, requestIDs []string) (*entities.OptimizedRoute, error) {
	if err := validateSelection(driverID, requestIDs); err != nil {
		return nil, err
	}

	driver, err := s.drivers.GetByID(ctx, driverID)
	if err != nil {
		return nil, classify(fmt.Errorf("get driver: %w", err))
	}

	requests, err := s.requests.GetByIDs(ctx, requestIDs)
	if err != nil {
		return nil, classify(fmt.Errorf("get requests: %w", err))
	}
	if err := checkSelectable(requestIDs, requests); err != nil {
		return nil, err
	}

	return s.build(driver, requests)
}

// CreateRoute сохраняет готовый результат построителя за водителем.
func (s *Service) CreateRoute(ctx context.Context, driverID string, plan *entities.OptimizedRoute) (*entities.Route, error) {
	if driverID == "" {
		return nil, ErrInvalidID
	}
	if plan == nil || len(plan.RequestIDs) == 0 {
		return nil, optimizer.ErrNoRequestsSelected
	}
	if err := validateSelection(driverID, plan.RequestIDs); err != nil {
		return nil, err
	}
	if err := validatePlan(plan); err != nil {
		return nil, err
	}

	unlock, err := s.lock(ctx, driverLockPrefix+driverID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	var route *entities.Route
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		driver, err := s.drivers.GetByIDForUpdate(ctx, driverID)
		if err != nil {
			return fmt.Errorf("get driver: %w", err)
		}

		requests, err := s.requests.GetByIDsForUpdate(ctx, plan.RequestIDs)
		if err != nil {
			return fmt.Errorf("get requests: %w", err)
		}
		if err := checkSelectable(plan.RequestIDs, requests); err != nil {
			return err
		}

		route, err = s.persist(ctx, driver, plan)
		return err
	})
	if err != nil {
		return nil, classify(err)
	}

	s.routeCreated(ctx, route)
	return route, nil
}

// OptimizeAndCreateRoute строит и сохраняет маршрут в одной транзакции, на актуальном состоянии водителя и заявок.
func (s *Service) OptimizeAndCreateRoute(ctx context.Context, driverID string, requestIDs []string) (*entities.Route, error) {
	if err := validateSelection(driverID, requestIDs); err != nil {
		return nil, err
	}

	unlock, err := s.lock(ctx, driverLockPrefix+driverID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	var route *entities.Route
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		driver, err := s.drivers.GetByIDForUpdate(ctx, driverID)
		if err != nil {
			return fmt.Errorf("get driver: %w", err)
		}

		requests, err := s.requests.GetByIDsForUpdate(ctx, requestIDs)
		if err != nil {
			return fmt.Errorf("get requests: %w", err)
		}
		if err := checkSelectable(requestIDs, requests); err != nil {
			return err
		}

		plan, err := s.build(driver, requests)
		if err != nil {
			return err
		}

		route, err = s.persist(ctx, driver, plan)
		return err
	})
	if err != nil {
		return nil, classify(err)
	}

	s.routeCreated(ctx, route)
	return route, nil
}

// CompleteStop закрывает доставку заявки в маршруте. Повтор для уже доставленной
// заявки этого маршрута ничего не меняет и возвращает текущее состояние.
func (s *Service) CompleteStop(ctx context.Context, routeID, requestID string) (*entities.StopCompletion, error) {
	if strings.TrimSpace(routeID) == "" || strings.TrimSpace(requestID) == "" {
		return nil, ErrInvalidID
	}

	head, err := s.routes.GetByID(ctx, routeID)
	if err != nil {
		return nil, classify(fmt.Errorf("get route: %w", err))
	}

	unlock, err := s.lock(ctx, driverLockPrefix+head.DriverID, routeLockPrefix+routeID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	var (
		completion *entities.StopCompletion
		applied    bool
	)
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		route, err := s.routes.GetByIDForUpdate(ctx, routeID)
		if err != nil {
			return fmt.Errorf("get route: %w", err)
		}

		request, err := s.requests.GetByIDForUpdate(ctx, requestID)
		if err != nil {
			if isNotFound(err) {
				return fmt.Errorf("%w: %s", ErrUnknownRequestInRoute, requestID)
			}
			return fmt.Errorf("get request: %w", err)
		}

		if !route.HasPendingRequest(requestID) {
			if belongsTo(request, route.ID) && request.Status == entities.RequestDelivered {
				completion = &entities.StopCompletion{Outcome: outcomeOf(route), Route: route}
				return nil
			}
			return fmt.Errorf("%w: %s", ErrUnknownRequestInRoute, requestID)
		}
		if !request.Status.CanTransitionTo(entities.RequestDelivered) {
			return fmt.Errorf("%w: %s is %s", ErrUnknownRequestInRoute, requestID, request.Status)
		}

		now := time.Now().UTC()
		delivered := entities.RequestDelivered
		_, err = s.requests.Update(ctx, entities.DeliveryRequestModify{
			ID:          &requestID,
			Status:      &delivered,
			DeliveredAt: &now,
		})
		if err != nil {
			return fmt.Errorf("mark request delivered: %w", err)
		}

		updated, err := s.releaseRequest(ctx, route, requestID, now)
		if err != nil {
			return err
		}

		completion = &entities.StopCompletion{Outcome: outcomeOf(updated), Route: updated}
		applied = true
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	if applied {
		metrics.StopsCompletedTotal.WithLabelValues(completion.Outcome.String()).Inc()
		s.publish(ctx, entities.RouteEventStopCompleted, completion.Route, []string{requestID})
		if completion.Outcome == entities.RouteClosed {
			s.publish(ctx, entities.RouteEventCompleted, completion.Route, nil)
		}
	}
	return completion, nil
}

// CancelRequest отменяет заявку. Назначенная заявка уходит из маршрута и освобождает
// единицу загрузки водителя; если маршрут опустел, он закрывается. Для доставленной
// или уже отменённой заявки ничего не меняется.
func (s *Service) CancelRequest(ctx context.Context, requestID string) (*entities.DeliveryRequest, error) {
	if strings.TrimSpace(requestID) == "" {
		return nil, ErrInvalidID
	}

	head, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, classify(fmt.Errorf("get request: %w", err))
	}
	if head.Status.IsTerminal() {
		return head, nil
	}

	if head.Status == entities.RequestAssigned && head.BatchID != nil {
		route, err := s.routes.GetByID(ctx, *head.BatchID)
		if err != nil {
			return nil, classify(fmt.Errorf("get route: %w", err))
		}
		unlock, err := s.lock(ctx, driverLockPrefix+route.DriverID, routeLockPrefix+route.ID)
		if err != nil {
			return nil, err
		}
		defer unlock()
	}

	var (
		cancelled  *entities.DeliveryRequest
		fromStatus entities.RequestStatus
		route      *entities.Route
	)
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		request, err := s.requests.GetByIDForUpdate(ctx, requestID)
		if err != nil {
			return fmt.Errorf("get request: %w", err)
		}
		fromStatus = request.Status
		if request.Status.IsTerminal() {
			cancelled = request
			return nil
		}

		now := time.Now().UTC()
		status := entities.RequestCancelled
		cancelled, err = s.requests.Update(ctx, entities.DeliveryRequestModify{
			ID:          &requestID,
			Status:      &status,
			CancelledAt: &now,
		})
		if err != nil {
			return fmt.Errorf("cancel request: %w", err)
		}

		if request.Status != entities.RequestAssigned || request.BatchID == nil {
			return nil
		}

		current, err := s.routes.GetByIDForUpdate(ctx, *request.BatchID)
		if err != nil {
			return fmt.Errorf("get route: %w", err)
		}
		if !current.HasPendingRequest(requestID) {
			return nil
		}

		route, err = s.releaseRequest(ctx, current, requestID, now)
		return err
	})
	if err != nil {
		return nil, classify(err)
	}

	if !fromStatus.IsTerminal() {
		metrics.RequestsCancelledTotal.WithLabelValues(fromStatus.String()).Inc()
	}
	if route != nil {
		s.publish(ctx, entities.RouteEventRequestCancelled, route, []string{requestID})
		if route.Status == entities.RouteCompleted {
			s.publish(ctx, entities.RouteEventCompleted, route, nil)
		}
	}
	return cancelled, nil
}

func (s *Service) GetRoute(ctx context.Context, routeID string) (*entities.Route, error) {
	if strings.TrimSpace(routeID) == "" {
		return nil, ErrInvalidID
	}

	route, err := s.routes.GetByID(ctx, routeID)
	if err != nil {
		return nil, classify(fmt.Errorf("get route: %w", err))
	}
	return route, nil
}

func (s *Service) GetActiveRoutes(ctx context.Context, driverID string) ([]entities.Route, error) {
	if strings.TrimSpace(driverID) == "" {
		return nil, ErrInvalidID
	}

	if _, err := s.drivers.GetByID(ctx, driverID); err != nil {
		return nil, classify(fmt.Errorf("get driver: %w", err))
	}

	routes, err := s.routes.GetActiveByDriver(ctx, driverID)
	if err != nil {
		return nil, classify(fmt.Errorf("get active routes: %w", err))
	}
	return routes, nil
}

// CountOverdueRoutes - активные маршруты с прошедшим расчётным окончанием. Маршруты не меняются.
func (s *Service) CountOverdueRoutes(ctx context.Context) (int64, error) {
	count, err := s.routes.CountOverdue(ctx, time.Now().UTC())
	if err != nil {
		return 0, classify(fmt.Errorf("count overdue routes: %w", err))
	}
	return count, nil
}

func (s *Service) build(driver *entities.Driver, requests []entities.DeliveryRequest) (*entities.OptimizedRoute, error) {
	start := time.Now()
	defer func() {
		metrics.RouteBuildDuration.Observe(time.Since(start).Seconds())
	}()

	return s.builder.Build(entities.RoutePlanInput{
		DriverPosition:    driver.Position,
		VehicleClass:      driver.VehicleClass,
		Requests:          requests,
		RemainingCapacity: driver.RemainingCapacity(),
	})
}

// persist - всё или ничего, вызывается внутри транзакции.
func (s *Service) persist(ctx context.Context, driver *entities.Driver, plan *entities.OptimizedRoute) (*entities.Route, error) {
	count := len(plan.RequestIDs)
	if count > driver.RemainingCapacity() {
		return nil, fmt.Errorf("%w: route of %d, driver %s has %d of %d",
			optimizer.ErrCapacityExceeded, count, driver.ID, driver.CurrentDeliveries, driver.Capacity())
	}

	now := time.Now().UTC()
	estimatedEnd := now.Add(plan.TotalDuration)
	status := entities.RouteActive
	requestIDs := slices.Clone(plan.RequestIDs)

	route, err := s.routes.Create(ctx, entities.RouteModify{
		DriverID:         &driver.ID,
		Start:            &plan.Start,
		Waypoints:        plan.Waypoints,
		DeliveryRequests: &requestIDs,
		Status:           &status,
		StartTime:        &now,
		EstimatedEndTime: &estimatedEnd,
		TotalDistance:    &plan.TotalDistance,
		TotalDuration:    &plan.TotalDuration,
	})
	if err != nil {
		return nil, fmt.Errorf("create route: %w", err)
	}

	assigned := entities.RequestAssigned
	for _, id := range plan.RequestIDs {
		_, err := s.requests.Update(ctx, entities.DeliveryRequestModify{
			ID:               &id,
			Status:           &assigned,
			AssignedDriverID: &driver.ID,
			BatchID:          &route.ID,
			AcceptedAt:       &now,
		})
		if err != nil {
			return nil, fmt.Errorf("assign request %s: %w", id, err)
		}
	}

	load := driver.CurrentDeliveries + count
	driverModify := entities.DriverModify{
		ID:                &driver.ID,
		CurrentDeliveries: &load,
	}
	if driver.Status == entities.DriverAvailable {
		busy := entities.DriverBusy
		driverModify.Status = &busy
	}
	if _, err := s.drivers.Update(ctx, driverModify); err != nil {
		return nil, fmt.Errorf("update driver load: %w", err)
	}

	return route, nil
}

// releaseRequest убирает заявку из открытых в маршруте и снимает единицу загрузки с водителя.
// Опустевший маршрут закрывается; водитель без других активных маршрутов освобождается полностью.
func (s *Service) releaseRequest(ctx context.Context, route *entities.Route, requestID string, now time.Time) (*entities.Route, error) {
	remaining := slices.DeleteFunc(slices.Clone(route.DeliveryRequests), func(id string) bool {
		return id == requestID
	})

	routeModify := entities.RouteModify{
		ID:               &route.ID,
		DeliveryRequests: &remaining,
	}
	closed := len(remaining) == 0
	if closed {
		completed := entities.RouteCompleted
		routeModify.Status = &completed
		routeModify.ActualEndTime = &now
	}

	updated, err := s.routes.Update(ctx, routeModify)
	if err != nil {
		return nil, fmt.Errorf("update route: %w", err)
	}

	driver, err := s.drivers.GetByIDForUpdate(ctx, route.DriverID)
	if err != nil {
		return nil, fmt.Errorf("get driver: %w", err)
	}

	load := max(driver.CurrentDeliveries-1, 0)
	var status *entities.DriverStatus
	if closed {
		others, err := s.routes.GetActiveByDriver(ctx, driver.ID)
		if err != nil {
			return nil, fmt.Errorf("get active routes: %w", err)
		}
		if len(others) == 0 {
			load = 0
			available := entities.DriverAvailable
			status = &available
		}
	}

	driverModify := entities.DriverModify{
		ID:                &driver.ID,
		Status:            status,
		CurrentDeliveries: &load,
	}
	if _, err := s.drivers.Update(ctx, driverModify); err != nil {
		return nil, fmt.Errorf("update driver load: %w", err)
	}
	return updated, nil
}

func (s *Service) lock(ctx context.Context, keys ...string) (locker.Unlock, error) {
	lockCtx, cancel := context.WithTimeout(ctx, s.lockWait)
	defer cancel()

	unlocks := make([]locker.Unlock, 0, len(keys))
	release := func() {
		for i := len(unlocks) - 1; i >= 0; i-- {
			unlocks[i]()
		}
	}

	for _, key := range keys {
		unlock, err := s.locker.Lock(lockCtx, key)
		if err != nil {
			release()
			return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		unlocks = append(unlocks, unlock)
	}
	return release, nil
}

func (s *Service) routeCreated(ctx context.Context, route *entities.Route) {
	metrics.RoutesCreatedTotal.Inc()
	s.publish(ctx, entities.RouteEventCreated, route, route.DeliveryRequests)
}

func (s *Service) publish(ctx context.Context, eventType entities.RouteEventType, route *entities.Route, requestIDs []string) {
	s.publisher.Publish(ctx, entities.RouteEvent{
		Type:       eventType,
		RouteID:    route.ID,
		DriverID:   route.DriverID,
		RequestIDs: slices.Clone(requestIDs),
		OccurredAt: time.Now().UTC(),
	})
}

func validateSelection(driverID string, requestIDs []string) error {
	if strings.TrimSpace(driverID) == "" {
		return ErrInvalidID
	}
	if len(requestIDs) == 0 {
		return optimizer.ErrNoRequestsSelected
	}

	seen := make(map[string]struct{}, len(requestIDs))
	for _, id := range requestIDs {
		if strings.TrimSpace(id) == "" {
			return ErrInvalidID
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: %s", optimizer.ErrDuplicateRequest, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// validatePlan - на каждую заявку плана ровно один pickup и одна доставка после него,
// порядок точек сквозной с 1, чужих заявок нет.
func validatePlan(plan *entities.OptimizedRoute) error {
	if len(plan.Waypoints) != 2*len(plan.RequestIDs) {
		return fmt.Errorf("%w: %d waypoints for %d requests", ErrInvalidPlan, len(plan.Waypoints), len(plan.RequestIDs))
	}

	pickedUp := make(map[string]bool, len(plan.RequestIDs))
	for _, id := range plan.RequestIDs {
		pickedUp[id] = false
	}
	delivered := make(map[string]bool, len(plan.RequestIDs))

	for i, waypoint := range plan.Waypoints {
		if waypoint.Order != i+1 {
			return fmt.Errorf("%w: waypoint %d has order %d", ErrInvalidPlan, i+1, waypoint.Order)
		}
		picked, ok := pickedUp[waypoint.RequestID]
		if !ok {
			return fmt.Errorf("%w: request %s is not in plan", ErrInvalidPlan, waypoint.RequestID)
		}

		switch waypoint.Type {
		case entities.WaypointPickup:
			if picked {
				return fmt.Errorf("%w: second pickup of %s", ErrInvalidPlan, waypoint.RequestID)
			}
			pickedUp[waypoint.RequestID] = true
		case entities.WaypointDelivery:
			if !picked {
				return fmt.Errorf("%w: delivery of %s before pickup", ErrInvalidPlan, waypoint.RequestID)
			}
			if delivered[waypoint.RequestID] {
				return fmt.Errorf("%w: second delivery of %s", ErrInvalidPlan, waypoint.RequestID)
			}
			delivered[waypoint.RequestID] = true
		default:
			return fmt.Errorf("%w: waypoint %d has type %q", ErrInvalidPlan, i+1, waypoint.Type)
		}
	}
	return nil
}

// checkSelectable - каждая выбранная заявка существует, в статусе pending и ни к кому не привязана.
func checkSelectable(requestIDs []string, requests []entities.DeliveryRequest) error {
	found := make(map[string]*entities.DeliveryRequest, len(requests))
	for i := range requests {
		found[requests[i].ID] = &requests[i]
	}

	for _, id := range requestIDs {
		request, ok := found[id]
		if !ok {
			return fmt.Errorf("%w: %s", entities.ErrRequestNotFound, id)
		}
		if !request.IsSelectable() {
			return fmt.Errorf("%w: %s is %s", ErrRequestNotPending, id, request.Status)
		}
	}
	return nil
}

func belongsTo(request *entities.DeliveryRequest, routeID string) bool {
	return request.BatchID != nil && *request.BatchID == routeID
}

func outcomeOf(route *entities.Route) entities.StopOutcome {
	if route.Status == entities.RouteCompleted {
		return entities.RouteClosed
	}
	return entities.RouteStillActive
}

func isNotFound(err error) bool {
	return errors.Is(err, entities.ErrRequestNotFound)
}
