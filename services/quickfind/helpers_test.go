package quickfind

import (
	"context"
	"errors"
	"fmt"
	"sync"

	accountRepo "quickfind/database/repository/account"
	providerRepo "quickfind/database/repository/provider"
	"quickfind/models"
)

type fakeProviderRepo struct {
	providers   map[string]*models.Provider
	active      []models.Provider
	gotCategory string
	activeErr   error
}

func (f *fakeProviderRepo) GetByID(id string) (*models.Provider, error) {
	p, ok := f.providers[id]
	if !ok {
		return nil, fmt.Errorf("provider %s: %w", id, providerRepo.ErrNotFound)
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProviderRepo) GetActive(category string) ([]models.Provider, error) {
	f.gotCategory = category
	if f.activeErr != nil {
		return nil, f.activeErr
	}
	return f.active, nil
}

type fakeBookingRepo struct {
	mu        sync.Mutex
	bookings  []models.Booking
	createErr error
}

func (f *fakeBookingRepo) Create(booking *models.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookings = append(f.bookings, *booking)
	return nil
}

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, errors.New("booking not found")
}

type fakeAccountRepo struct {
	accounts map[string]*models.Account
}

func (f *fakeAccountRepo) GetByID(id string) (*models.Account, error) {
	a, ok := f.accounts[id]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", id, accountRepo.ErrNotFound)
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAccountRepo) DecrementCredits(id string) error {
	a, ok := f.accounts[id]
	if !ok || a.Credits <= 0 {
		return fmt.Errorf("account %s: %w", id, accountRepo.ErrInsufficientCredits)
	}
	a.Credits--
	return nil
}

type publishRecord struct {
	topic   string
	event   string
	payload interface{}
}

type recordingBus struct {
	mu        sync.Mutex
	published []publishRecord
	fail      bool
}

func (b *recordingBus) Publish(_ context.Context, topic, event string, payload interface{}) error {
	if b.fail {
		return errors.New("bus unreachable")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = append(b.published, publishRecord{topic: topic, event: event, payload: payload})
	return nil
}

type recordingDispatcher struct {
	payloads []models.SolicitationPayload
	fail     bool
}

func (d *recordingDispatcher) Dispatch(_ context.Context, payload models.SolicitationPayload) error {
	if d.fail {
		return errors.New("queue unreachable")
	}
	d.payloads = append(d.payloads, payload)
	return nil
}

func testProvider(id string) *models.Provider {
	return &models.Provider{
		ID: id,
		Profile: models.Profile{
			ProviderName: "Atlas Cleaners",
			Address:      "12 Avenue Hassan II",
			LogoURL:      "https://cdn.example.com/logos/" + id + ".png",
			Rating:       4.5,
			LocationGeo:  models.NewGeoPoint(34.02, -6.84),
		},
		Category: "cleaning",
		Services: []models.Service{
			{ID: "svc-deep", Name: "Deep clean", Price: 45},
			{ID: "svc-basic", Name: "Basic clean", Price: 25},
		},
		Active: true,
	}
}
