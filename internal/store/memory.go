package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// MemoryStore keeps stations and contacts in process memory. IDs are
// assigned from per-kind counters starting at 1.
type MemoryStore struct {
	logger *zap.Logger
	now    func() time.Time

	mu            sync.RWMutex
	stations      map[int]Station
	contacts      map[int]Contact
	nextStationID int
	nextContactID int
}

// NewMemoryStore returns an empty store seeded with stations.
func NewMemoryStore(logger *zap.Logger, seed []InsertStation) (*MemoryStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &MemoryStore{
		logger:        logger,
		now:           time.Now,
		stations:      make(map[int]Station),
		contacts:      make(map[int]Contact),
		nextStationID: 1,
		nextContactID: 1,
	}
	for i, station := range seed {
		if _, err := s.CreateStation(context.Background(), station); err != nil {
			return nil, fmt.Errorf("invalid seed station %d: %w", i, err)
		}
	}
	return s, nil
}

// ListStations returns all stations ordered by ID.
func (s *MemoryStore) ListStations(ctx context.Context) ([]Station, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	stations := make([]Station, 0, len(s.stations))
	for id := 1; id < s.nextStationID; id++ {
		if station, ok := s.stations[id]; ok {
			stations = append(stations, station)
		}
	}
	return stations, nil
}

// GetStation returns the station with the given ID.
func (s *MemoryStore) GetStation(ctx context.Context, id int) (Station, error) {
	if err := ctx.Err(); err != nil {
		return Station{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	station, ok := s.stations[id]
	if !ok {
		return Station{}, fmt.Errorf("station %d: %w", id, ErrNotFound)
	}
	return station, nil
}

// CreateStation validates and stores a station.
func (s *MemoryStore) CreateStation(ctx context.Context, in InsertStation) (Station, error) {
	if err := ctx.Err(); err != nil {
		return Station{}, err
	}
	if err := in.Validate(); err != nil {
		return Station{}, err
	}
	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = StationStatusPlanned
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	station := Station{
		ID:          s.nextStationID,
		Name:        strings.TrimSpace(in.Name),
		Location:    strings.TrimSpace(in.Location),
		Region:      strings.TrimSpace(in.Region),
		Status:      status,
		CapacityKW:  in.CapacityKW,
		Parcels:     in.Parcels,
		Description: strings.TrimSpace(in.Description),
	}
	s.stations[station.ID] = station
	s.nextStationID++

	s.logger.Debug("station created",
		zap.String("op", "store.CreateStation"),
		zap.Int("id", station.ID),
		zap.String("name", station.Name),
	)
	return station, nil
}

// CreateContact validates and stores a contact submission.
func (s *MemoryStore) CreateContact(ctx context.Context, in InsertContact) (Contact, error) {
	if err := ctx.Err(); err != nil {
		return Contact{}, err
	}
	if err := in.Validate(); err != nil {
		return Contact{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	contact := Contact{
		ID:              s.nextContactID,
		Name:            strings.TrimSpace(in.Name),
		Email:           strings.TrimSpace(in.Email),
		Phone:           strings.TrimSpace(in.Phone),
		Company:         strings.TrimSpace(in.Company),
		InvestmentRange: strings.TrimSpace(in.InvestmentRange),
		Message:         strings.TrimSpace(in.Message),
		CreatedAt:       s.now().UTC(),
	}
	s.contacts[contact.ID] = contact
	s.nextContactID++

	s.logger.Info("contact received",
		zap.String("op", "store.CreateContact"),
		zap.Int("id", contact.ID),
	)
	return contact, nil
}

// ListContacts returns all contacts ordered by ID.
func (s *MemoryStore) ListContacts(ctx context.Context) ([]Contact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	contacts := make([]Contact, 0, len(s.contacts))
	for id := 1; id < s.nextContactID; id++ {
		if contact, ok := s.contacts[id]; ok {
			contacts = append(contacts, contact)
		}
	}
	return contacts, nil
}
