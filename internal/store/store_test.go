package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *MemoryStore {
	t.Helper()
	s, err := NewMemoryStore(zap.NewNop(), DefaultStations())
	require.NoError(t, err)
	s.now = func() time.Time { return time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC) }
	return s
}

func TestSeededStations(t *testing.T) {
	s := newTestStore(t)

	stations, err := s.ListStations(context.Background())
	require.NoError(t, err)
	require.Len(t, stations, 3)
	for i, station := range stations {
		assert.Equal(t, i+1, station.ID)
	}
	assert.Equal(t, "Estación Quilicura", stations[0].Name)
	assert.Equal(t, StationStatusOperational, stations[0].Status)
}

func TestGetStation(t *testing.T) {
	s := newTestStore(t)

	station, err := s.GetStation(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Pudahuel", station.Location)

	_, err = s.GetStation(context.Background(), 99)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestCreateStationDefaultsStatus(t *testing.T) {
	s := newTestStore(t)

	station, err := s.CreateStation(context.Background(), InsertStation{
		Name:     " Estación Talca ",
		Location: "Talca",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, station.ID)
	assert.Equal(t, "Estación Talca", station.Name)
	assert.Equal(t, StationStatusPlanned, station.Status)
}

func TestCreateStationValidation(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		name  string
		in    InsertStation
		field string
	}{
		{"missing name", InsertStation{Location: "Talca"}, "name"},
		{"missing location", InsertStation{Name: "X"}, "location"},
		{"negative capacity", InsertStation{Name: "X", Location: "Y", CapacityKW: -1}, "capacityKw"},
		{"negative parcels", InsertStation{Name: "X", Location: "Y", Parcels: -1}, "parcels"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.CreateStation(context.Background(), tt.in)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}

	stations, err := s.ListStations(context.Background())
	require.NoError(t, err)
	assert.Len(t, stations, 3, "rejected stations must not consume IDs")
}

func TestNewMemoryStoreRejectsInvalidSeed(t *testing.T) {
	_, err := NewMemoryStore(nil, []InsertStation{{Name: "no location"}})
	require.Error(t, err)
}

func TestCreateContact(t *testing.T) {
	s := newTestStore(t)

	first, err := s.CreateContact(context.Background(), InsertContact{
		Name:            "Ana Pérez",
		Email:           "ana@example.cl",
		Phone:           "+56 9 1234 5678",
		InvestmentRange: "100-500 MM",
		Message:         "Quiero conocer el proyecto Pudahuel.",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC), first.CreatedAt)

	second, err := s.CreateContact(context.Background(), InsertContact{
		Name:    "Luis Soto",
		Email:   "luis@example.cl",
		Message: "Hola",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)

	contacts, err := s.ListContacts(context.Background())
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "Ana Pérez", contacts[0].Name)
	assert.Equal(t, "Luis Soto", contacts[1].Name)
}

func TestInsertContactValidate(t *testing.T) {
	tests := []struct {
		name  string
		in    InsertContact
		field string
	}{
		{"valid", InsertContact{Name: "A", Email: "a@b.cl", Message: "m"}, ""},
		{"missing name", InsertContact{Email: "a@b.cl", Message: "m"}, "name"},
		{"missing email", InsertContact{Name: "A", Message: "m"}, "email"},
		{"malformed email", InsertContact{Name: "A", Email: "not-an-email", Message: "m"}, "email"},
		{"display name email", InsertContact{Name: "A", Email: "A <a@b.cl>", Message: "m"}, "email"},
		{"blank message", InsertContact{Name: "A", Email: "a@b.cl", Message: "  "}, "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestConcurrentContacts(t *testing.T) {
	s := newTestStore(t)

	const writers = 50
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			_, err := s.CreateContact(context.Background(), InsertContact{Name: "A", Email: "a@b.cl", Message: "m"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	contacts, err := s.ListContacts(context.Background())
	require.NoError(t, err)
	require.Len(t, contacts, writers)
	for i, contact := range contacts {
		assert.Equal(t, i+1, contact.ID)
	}
}

func TestCancelledContext(t *testing.T) {
	s := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.ListStations(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = s.CreateContact(ctx, InsertContact{Name: "A", Email: "a@b.cl", Message: "m"})
	assert.ErrorIs(t, err, context.Canceled)
}
