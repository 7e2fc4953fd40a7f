package scheduling

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

// fakeRepo implementa domain.Repository em memória para os testes de
// use case. A revalidação de conflito em CreateAppointmentGuarded roda
// sob o mesmo mutex que a escrita, como a transação real no Postgres.
type fakeRepo struct {
	mu sync.Mutex

	workers      map[uint]models.Worker
	services     map[uint]models.Service
	additionals  map[uint]models.Additional
	customers    map[uint]models.Customer
	schedule     map[uint][]models.WorkerSchedule
	blockedDates map[uint]models.BlockedDate
	appointments map[uint]models.Appointment

	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		workers:      map[uint]models.Worker{},
		services:     map[uint]models.Service{},
		additionals:  map[uint]models.Additional{},
		customers:    map[uint]models.Customer{},
		schedule:     map[uint][]models.WorkerSchedule{},
		blockedDates: map[uint]models.BlockedDate{},
		appointments: map[uint]models.Appointment{},
		nextID:       1,
	}
}

var _ domain.Repository = (*fakeRepo)(nil)

func (r *fakeRepo) nextIDLocked() uint {
	id := r.nextID
	r.nextID++
	return id
}

func (r *fakeRepo) addWorker(w models.Worker) models.Worker {
	r.mu.Lock()
	defer r.mu.Unlock()
	if w.ID == 0 {
		w.ID = r.nextIDLocked()
	}
	r.workers[w.ID] = w
	return w
}

func (r *fakeRepo) addService(s models.Service) models.Service {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID == 0 {
		s.ID = r.nextIDLocked()
	}
	r.services[s.ID] = s
	return s
}

func (r *fakeRepo) addAdditional(a models.Additional) models.Additional {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.ID == 0 {
		a.ID = r.nextIDLocked()
	}
	r.additionals[a.ID] = a
	return a
}

func (r *fakeRepo) addCustomer(c models.Customer) models.Customer {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID == 0 {
		c.ID = r.nextIDLocked()
	}
	r.customers[c.ID] = c
	return c
}

func (r *fakeRepo) addAppointment(ap models.Appointment) models.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ap.ID == 0 {
		ap.ID = r.nextIDLocked()
	}
	r.appointments[ap.ID] = ap
	return ap
}

// -------- domain.Repository --------

func (r *fakeRepo) GetWorkerByID(_ context.Context, id uint) (*models.Worker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.workers[id]
	if !ok {
		return nil, httperr.ErrNotFound("worker_not_found")
	}
	return &w, nil
}

func (r *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.services[id]
	if !ok {
		return nil, httperr.ErrNotFound("service_not_found")
	}
	return &s, nil
}

func (r *fakeRepo) GetAdditional(_ context.Context, id uint) (*models.Additional, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.additionals[id]
	if !ok {
		return nil, httperr.ErrNotFound("additional_not_found")
	}
	return &a, nil
}

func (r *fakeRepo) GetCustomerByID(_ context.Context, id uint) (*models.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.customers[id]
	if !ok {
		return nil, httperr.ErrNotFound("customer_not_found")
	}
	return &c, nil
}

func (r *fakeRepo) GetOrCreateCustomer(_ context.Context, name, phone, email string) (*models.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.customers {
		if c.Phone == phone {
			return &c, nil
		}
	}
	c := models.Customer{
		ID:    r.nextIDLocked(),
		Name:  name,
		Phone: phone,
		Email: email,
	}
	r.customers[c.ID] = c
	return &c, nil
}

func (r *fakeRepo) GetScheduleEntry(_ context.Context, workerID uint, weekday int) (*models.WorkerSchedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.schedule[workerID] {
		if e.Weekday == weekday {
			entry := e
			return &entry, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) ListSchedule(_ context.Context, workerID uint) ([]models.WorkerSchedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]models.WorkerSchedule{}, r.schedule[workerID]...)
	sort.Slice(out, func(i, j int) bool { return out[i].Weekday < out[j].Weekday })
	return out, nil
}

func (r *fakeRepo) ReplaceSchedule(_ context.Context, workerID uint, entries []models.WorkerSchedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schedule[workerID] = append([]models.WorkerSchedule{}, entries...)
	return nil
}

func (r *fakeRepo) GetBlockedDate(_ context.Context, workerID uint, date time.Time) (*models.BlockedDate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, bd := range r.blockedDates {
		if bd.WorkerID == workerID && bd.Date.Equal(date) {
			found := bd
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) ListBlockedDates(_ context.Context, workerID uint, from time.Time) ([]models.BlockedDate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.BlockedDate{}
	for _, bd := range r.blockedDates {
		if bd.WorkerID == workerID && !bd.Date.Before(from) {
			out = append(out, bd)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *fakeRepo) CreateBlockedDate(_ context.Context, bd *models.BlockedDate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	bd.ID = r.nextIDLocked()
	r.blockedDates[bd.ID] = *bd
	return nil
}

func (r *fakeRepo) DeleteBlockedDate(_ context.Context, workerID, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	bd, ok := r.blockedDates[id]
	if !ok || bd.WorkerID != workerID {
		return httperr.ErrNotFound("blocked_date_not_found")
	}
	delete(r.blockedDates, id)
	return nil
}

func (r *fakeRepo) CreateAppointmentGuarded(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.appointments {
		if existing.WorkerID != ap.WorkerID {
			continue
		}
		if !domain.IsActive(domain.Status(existing.Status)) {
			continue
		}
		if domain.Overlaps(ap.StartTime, ap.EndTime, existing.StartTime, existing.EndTime) {
			return httperr.ErrConflict("slot_conflict")
		}
	}

	ap.ID = r.nextIDLocked()
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ap, ok := r.appointments[id]
	if !ok {
		return nil, httperr.ErrNotFound("appointment_not_found")
	}
	return &ap, nil
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.appointments[ap.ID]; !ok {
		return httperr.ErrNotFound("appointment_not_found")
	}
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *fakeRepo) ListActiveAppointmentsForDay(_ context.Context, workerID uint, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Appointment{}
	for _, ap := range r.appointments {
		if ap.WorkerID != workerID || !domain.IsActive(domain.Status(ap.Status)) {
			continue
		}
		if ap.StartTime.Before(dayEnd) && dayStart.Before(ap.EndTime) {
			out = append(out, ap)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (r *fakeRepo) ListAppointmentsForPeriod(_ context.Context, workerID uint, start, end time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Appointment{}
	for _, ap := range r.appointments {
		if ap.WorkerID != workerID {
			continue
		}
		if ap.StartTime.Before(end) && start.Before(ap.EndTime) {
			out = append(out, r.preloadLocked(ap))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (r *fakeRepo) ListAppointmentsByCustomerPhone(_ context.Context, phone string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Appointment{}
	for _, ap := range r.appointments {
		customer, ok := r.customers[ap.CustomerID]
		if ok && customer.Phone == phone {
			out = append(out, r.preloadLocked(ap))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (r *fakeRepo) ListAllAppointments(_ context.Context, workerID uint) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Appointment{}
	for _, ap := range r.appointments {
		if ap.WorkerID == workerID {
			out = append(out, r.preloadLocked(ap))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (r *fakeRepo) CountOpenAppointmentsFrom(_ context.Context, workerID uint, from time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, ap := range r.appointments {
		if ap.WorkerID == workerID &&
			domain.IsActive(domain.Status(ap.Status)) &&
			!ap.StartTime.Before(from) {
			count++
		}
	}
	return count, nil
}

func (r *fakeRepo) preloadLocked(ap models.Appointment) models.Appointment {
	if c, ok := r.customers[ap.CustomerID]; ok {
		ap.Customer = c
	}
	if s, ok := r.services[ap.ServiceID]; ok {
		ap.Service = s
	}
	if ap.AdditionalID != nil {
		if a, ok := r.additionals[*ap.AdditionalID]; ok {
			ap.Additional = &a
		}
	}
	return ap
}
