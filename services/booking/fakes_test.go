package booking

import (
	"context"
	"sync"
	"time"

	"barberflow/models"
)

// In-memory repository fakes backing the service tests.

type memApptRepo struct {
	mu    sync.Mutex
	appts map[string]models.Appointment
}

func newMemApptRepo() *memApptRepo {
	return &memApptRepo{appts: make(map[string]models.Appointment)}
}

func (r *memApptRepo) Create(_ context.Context, appt *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appts[appt.ID] = *appt
	return nil
}

func (r *memApptRepo) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	appt, ok := r.appts[id]
	if !ok {
		return nil, nil
	}
	copied := appt
	return &copied, nil
}

func (r *memApptRepo) Update(_ context.Context, appt *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appts[appt.ID] = *appt
	return nil
}

func (r *memApptRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.appts, id)
	return nil
}

func (r *memApptRepo) FindOverlapping(_ context.Context, barberID string, start, end time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, a := range r.appts {
		if a.BarberID != barberID || a.Status == models.StatusCancelled {
			continue
		}
		if a.StartsAt.Before(end) && a.EndsAt.After(start) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memApptRepo) List(_ context.Context, filter models.AppointmentFilter) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Appointment
	for _, a := range r.appts {
		if filter.BarberID != "" && a.BarberID != filter.BarberID {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

type memConvRepo struct {
	mu    sync.Mutex
	convs map[string]models.Conversation
}

func newMemConvRepo() *memConvRepo {
	return &memConvRepo{convs: make(map[string]models.Conversation)}
}

func (r *memConvRepo) Create(_ context.Context, conv *models.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.convs[conv.ID] = *conv
	return nil
}

func (r *memConvRepo) GetByID(_ context.Context, id string) (*models.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	conv, ok := r.convs[id]
	if !ok {
		return nil, nil
	}
	copied := conv
	if conv.Context.PendingBooking != nil {
		pb := *conv.Context.PendingBooking
		copied.Context.PendingBooking = &pb
	}
	return &copied, nil
}

func (r *memConvRepo) Update(_ context.Context, conv *models.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.convs[conv.ID] = *conv
	return nil
}

type memCatalog struct {
	services map[string]models.Service
	barbers  map[string]models.Barber
}

func (c *memCatalog) GetServiceByID(_ context.Context, id string) (*models.Service, error) {
	svc, ok := c.services[id]
	if !ok {
		return nil, nil
	}
	return &svc, nil
}

func (c *memCatalog) ListActiveServices(_ context.Context) ([]models.Service, error) {
	var out []models.Service
	for _, s := range c.services {
		if s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (c *memCatalog) GetBarberByID(_ context.Context, id string) (*models.Barber, error) {
	b, ok := c.barbers[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (c *memCatalog) ListActiveBarbers(_ context.Context) ([]models.Barber, error) {
	var out []models.Barber
	for _, b := range c.barbers {
		if b.IsActive {
			out = append(out, b)
		}
	}
	return out, nil
}

type memReminders struct {
	mu        sync.Mutex
	scheduled []string
}

func (r *memReminders) ScheduleReminder(_ context.Context, appt *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scheduled = append(r.scheduled, appt.ID)
	return nil
}

// fixture wires the booking core over the in-memory fakes with a seeded
// catalog: a 45-minute haircut, a 30-minute shave and two barbers.
type fixture struct {
	appts     *memApptRepo
	convs     *memConvRepo
	catalog   *memCatalog
	reminders *memReminders

	availability *DefaultAvailabilityEngine
	staging      *DefaultStagingService
	commit       *DefaultCommitService
	cancel       *DefaultCancellationService
	status       *DefaultStatusService
	appointments *DefaultAppointmentService
}

func newFixture() *fixture {
	appts := newMemApptRepo()
	convs := newMemConvRepo()
	catalog := &memCatalog{
		services: map[string]models.Service{
			"svc-cut": {
				ID: "svc-cut", Name: "Haircut",
				DurationMinutes: 45, PriceCents: 2500, IsActive: true,
			},
			"svc-shave": {
				ID: "svc-shave", Name: "Shave",
				DurationMinutes: 30, PriceCents: 1500, IsActive: true,
			},
		},
		barbers: map[string]models.Barber{
			"barber-s": {ID: "barber-s", Name: "Sam", IsActive: true},
			"barber-t": {ID: "barber-t", Name: "Tony", IsActive: true},
		},
	}
	reminders := &memReminders{}

	availability := &DefaultAvailabilityEngine{ApptRepo: appts, Catalog: catalog}
	f := &fixture{
		appts:        appts,
		convs:        convs,
		catalog:      catalog,
		reminders:    reminders,
		availability: availability,
		staging: &DefaultStagingService{
			Catalog: catalog, ConvRepo: convs, Availability: availability,
		},
		commit: &DefaultCommitService{
			ConvRepo: convs, ApptRepo: appts, Catalog: catalog,
			Availability: availability, Reminders: reminders,
		},
		cancel: &DefaultCancellationService{ApptRepo: appts},
		status: &DefaultStatusService{ApptRepo: appts, Catalog: catalog},
		appointments: &DefaultAppointmentService{
			ApptRepo: appts, Catalog: catalog, Availability: availability,
		},
	}
	return f
}

func (f *fixture) newConversation(id string) {
	_ = f.convs.Create(context.Background(), &models.Conversation{
		ID:        id,
		UserID:    "user-1",
		CreatedAt: time.Now(),
	})
}

// at builds a timestamp on a fixed test day.
func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 10, hour, minute, 0, 0, time.UTC)
}
