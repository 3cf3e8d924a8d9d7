package optimizer

import (
	"fmt"
	"slices"
	"strings"

	"route-service/internal/entities"
	"route-service/internal/pkg/geo"
)

// Builder строит маршрут жадным "ближайшим соседом" с учётом порядка
// pickup -> delivery и приоритетных заявок. Состояния не держит, безопасен
// для конкурентного использования.
type Builder struct {
	timeFactory TravelTimeFactory
}

func New(timeFactory TravelTimeFactory) *Builder {
	return &Builder{
		timeFactory: timeFactory,
	}
}

type point struct {
	requestID string
	kind      entities.WaypointType
	location  entities.Coordinate
	priority  bool
	pair      int // индекс парной точки той же заявки
}

func (b *Builder) Build(input entities.RoutePlanInput) (*entities.OptimizedRoute, error) {
	if input.DriverPosition == nil {
		return nil, ErrUnknownDriverPosition
	}
	if len(input.Requests) == 0 {
		return nil, ErrNoRequestsSelected
	}
	if len(input.Requests) > input.RemainingCapacity {
		return nil, fmt.Errorf("%w: selected %d, remaining capacity %d",
			ErrCapacityExceeded, len(input.Requests), input.RemainingCapacity)
	}

	start := *input.DriverPosition
	if err := geo.Validate(start); err != nil {
		return nil, fmt.Errorf("driver position: %w", err)
	}

	points, requestIDs, err := newArena(input.Requests)
	if err != nil {
		return nil, err
	}

	sequence, err := visitOrder(start, points)
	if err != nil {
		return nil, fmt.Errorf("visit order: %w", err)
	}

	return b.assemble(start, input.VehicleClass, points, sequence, requestIDs)
}

// newArena раскладывает заявки в массив точек: [2i] - pickup, [2i+1] - delivery.
// Заявки сортируются по ID, поэтому порядок обхода массива и есть тай-брейк.
func newArena(requests []entities.DeliveryRequest) ([]point, []string, error) {
	sorted := slices.Clone(requests)
	slices.SortFunc(sorted, func(a, b entities.DeliveryRequest) int {
		return strings.Compare(a.ID, b.ID)
	})

	points := make([]point, 0, 2*len(sorted))
	requestIDs := make([]string, 0, len(sorted))
	for i, request := range sorted {
		if i > 0 && sorted[i-1].ID == request.ID {
			return nil, nil, fmt.Errorf("%w: %s", ErrDuplicateRequest, request.ID)
		}
		if err := geo.Validate(request.Pickup); err != nil {
			return nil, nil, fmt.Errorf("request %s pickup: %w", request.ID, err)
		}
		if err := geo.Validate(request.Delivery); err != nil {
			return nil, nil, fmt.Errorf("request %s delivery: %w", request.ID, err)
		}

		pickup := len(points)
		points = append(points,
			point{
				requestID: request.ID,
				kind:      entities.WaypointPickup,
				location:  request.Pickup,
				priority:  request.IsPriority,
				pair:      pickup + 1,
			},
			point{
				requestID: request.ID,
				kind:      entities.WaypointDelivery,
				location:  request.Delivery,
				priority:  request.IsPriority,
				pair:      pickup,
			},
		)
		requestIDs = append(requestIDs, request.ID)
	}

	return points, requestIDs, nil
}

// visitOrder возвращает индексы точек в порядке посещения.
// На каждом шаге по убыванию старшинства:
//  1. доставка, чей pickup уже посещён;
//  2. ближайшая приоритетная точка;
//  3. ближайшая любая точка.
//
// Если выбрана доставка без посещённого pickup, pickup вставляется перед ней.
func visitOrder(start entities.Coordinate, points []point) ([]int, error) {
	visited := make([]bool, len(points))
	sequence := make([]int, 0, len(points))
	current := start

	isOpenDelivery := func(i int) bool {
		return points[i].kind == entities.WaypointDelivery && visited[points[i].pair]
	}
	isPriority := func(i int) bool {
		return points[i].priority
	}
	anyPoint := func(int) bool {
		return true
	}

	for len(sequence) < len(points) {
		next := -1
		for _, eligible := range []func(int) bool{isOpenDelivery, isPriority, anyPoint} {
			idx, err := nearest(current, points, visited, eligible)
			if err != nil {
				return nil, err
			}
			if idx >= 0 {
				next = idx
				break
			}
		}

		if points[next].kind == entities.WaypointDelivery && !visited[points[next].pair] {
			pickup := points[next].pair
			visited[pickup] = true
			sequence = append(sequence, pickup)
		}

		visited[next] = true
		sequence = append(sequence, next)
		current = points[next].location
	}

	return sequence, nil
}

// nearest возвращает -1, если подходящих точек не осталось.
// При равных расстояниях побеждает точка с меньшим индексом.
func nearest(from entities.Coordinate, points []point, visited []bool, eligible func(int) bool) (int, error) {
	best := -1
	bestDistance := 0.0
	for i := range points {
		if visited[i] || !eligible(i) {
			continue
		}

		d, err := geo.Distance(from, points[i].location)
		if err != nil {
			return -1, err
		}
		if best < 0 || d < bestDistance {
			best = i
			bestDistance = d
		}
	}
	return best, nil
}

func (b *Builder) assemble(
	start entities.Coordinate,
	vehicle entities.VehicleClass,
	points []point,
	sequence []int,
	requestIDs []string,
) (*entities.OptimizedRoute, error) {
	route := &entities.OptimizedRoute{
		Start:      start,
		Waypoints:  make([]entities.Waypoint, 0, len(sequence)),
		RequestIDs: requestIDs,
	}

	previous := start
	for i, idx := range sequence {
		p := points[idx]

		legDistance, err := geo.Distance(previous, p.location)
		if err != nil {
			return nil, fmt.Errorf("leg %d: %w", i+1, err)
		}
		legDuration := b.timeFactory.EstimateDuration(vehicle, legDistance)

		route.Waypoints = append(route.Waypoints, entities.Waypoint{
			RequestID:   p.requestID,
			Location:    p.location,
			Type:        p.kind,
			IsPriority:  p.priority,
			Order:       i + 1,
			LegDistance: legDistance,
			LegDuration: legDuration,
		})
		route.TotalDistance += legDistance
		route.TotalDuration += legDuration
		previous = p.location
	}

	return route, nil
}
