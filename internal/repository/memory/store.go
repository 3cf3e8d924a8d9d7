package memory

import (
	"context"
	"maps"
	"sync"

	"route-service/internal/entities"
)

// Store - хранилище в памяти процесса для тестов и локального запуска без Postgres.
// Транзакции сериализуются целиком, при ошибке fn состояние откатывается к снимку.
type Store struct {
	txMu sync.Mutex

	mu       sync.RWMutex
	drivers  map[string]entities.Driver
	requests map[string]entities.DeliveryRequest
	routes   map[string]entities.Route
}

func New() *Store {
	return &Store{
		drivers:  map[string]entities.Driver{},
		requests: map[string]entities.DeliveryRequest{},
		routes:   map[string]entities.Route{},
	}
}

func (s *Store) Drivers() *DriverRepository {
	return &DriverRepository{store: s}
}

func (s *Store) Requests() *RequestRepository {
	return &RequestRepository{store: s}
}

func (s *Store) Routes() *RouteRepository {
	return &RouteRepository{store: s}
}

func (s *Store) TxManager() *TxManager {
	return &TxManager{store: s}
}

// SeedDriver добавляет или заменяет водителя: водители заводятся извне.
func (s *Store) SeedDriver(d entities.Driver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drivers[d.ID] = d
}

func (s *Store) SeedRequest(r entities.DeliveryRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[r.ID] = r
}

type snapshot struct {
	drivers  map[string]entities.Driver
	requests map[string]entities.DeliveryRequest
	routes   map[string]entities.Route
}

// Значения в картах не мутируются на месте, поэтому достаточно копии карт.
func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{
		drivers:  maps.Clone(s.drivers),
		requests: maps.Clone(s.requests),
		routes:   maps.Clone(s.routes),
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drivers = snap.drivers
	s.requests = snap.requests
	s.routes = snap.routes
}

type TxManager struct {
	store *Store
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.store.txMu.Lock()
	defer m.store.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	snap := m.store.snapshot()
	if err := fn(ctx); err != nil {
		m.store.restore(snap)
		return err
	}
	return nil
}
