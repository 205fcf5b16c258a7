package scheduler

import (
	"time"

	"github.com/UDAVALAPATISURESH/backend-spn/config"
	"github.com/UDAVALAPATISURESH/backend-spn/models"
)

// fakeStore is an in-memory Store for engine tests.
type fakeStore struct {
	services     map[uint]*models.Service
	staff        map[uint]*models.Staff
	links        map[[2]uint]bool
	windows      []models.StaffAvailability
	appointments map[uint]*models.Appointment
	payments     map[uint]*models.Payment
	nextID       uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		services:     map[uint]*models.Service{},
		staff:        map[uint]*models.Staff{},
		links:        map[[2]uint]bool{},
		appointments: map[uint]*models.Appointment{},
		payments:     map[uint]*models.Payment{},
	}
}

func (f *fakeStore) addService(id uint, name string, minutes int, price float64) {
	svc := &models.Service{Name: name, DurationMinutes: minutes, Price: price, IsActive: true}
	svc.ID = id
	f.services[id] = svc
}

func (f *fakeStore) addStaff(id uint, name string) {
	st := &models.Staff{Name: name, IsActive: true}
	st.ID = id
	f.staff[id] = st
}

func (f *fakeStore) link(staffID, serviceID uint) {
	f.links[[2]uint{staffID, serviceID}] = true
}

func (f *fakeStore) addWindow(staffID uint, day int, start, end string) {
	f.windows = append(f.windows, models.StaffAvailability{
		StaffID: staffID, DayOfWeek: day, StartTime: start, EndTime: end,
	})
}

func (f *fakeStore) ServiceByID(id uint) (*models.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, NotFoundf("service %d not found", id)
	}
	return svc, nil
}

func (f *fakeStore) StaffByID(id uint) (*models.Staff, error) {
	st, ok := f.staff[id]
	if !ok {
		return nil, NotFoundf("staff %d not found", id)
	}
	return st, nil
}

func (f *fakeStore) StaffCanPerform(staffID, serviceID uint) (bool, error) {
	return f.links[[2]uint{staffID, serviceID}], nil
}

func (f *fakeStore) Window(staffID uint, weekday int) (*models.StaffAvailability, error) {
	for i := range f.windows {
		w := &f.windows[i]
		if w.StaffID == staffID && w.DayOfWeek == weekday {
			return w, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) WindowsForStaff(staffID uint) ([]models.StaffAvailability, error) {
	var out []models.StaffAvailability
	for _, w := range f.windows {
		if w.StaffID == staffID {
			out = append(out, w)
		}
	}
	return out, nil
}

// involves reports whether the staff member works this appointment, via the
// primary reference or any assignment.
func involves(a *models.Appointment, staffID uint) bool {
	if a.StaffID != nil && *a.StaffID == staffID {
		return true
	}
	for _, sa := range a.Services {
		if sa.StaffID == staffID {
			return true
		}
	}
	return false
}

func (f *fakeStore) HasConflict(staffID uint, start, end time.Time, excludeAppointmentID uint) (bool, error) {
	for _, a := range f.appointments {
		if a.ID == excludeAppointmentID || a.Status == models.StatusCancelled {
			continue
		}
		if involves(a, staffID) && Overlaps(start, end, a.StartTime, a.EndTime) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) DayAppointments(staffID uint, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.Status == models.StatusCancelled || !involves(a, staffID) {
			continue
		}
		if !a.StartTime.Before(dayStart) && a.StartTime.Before(dayEnd) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeStore) AppointmentByID(id uint) (*models.Appointment, error) {
	a, ok := f.appointments[id]
	if !ok {
		return nil, NotFoundf("appointment %d not found", id)
	}
	return a, nil
}

func (f *fakeStore) PaymentByAppointment(appointmentID uint) (*models.Payment, error) {
	return f.payments[appointmentID], nil
}

func (f *fakeStore) CreateAppointment(a *models.Appointment) error {
	f.nextID++
	a.ID = f.nextID
	for i := range a.Services {
		f.nextID++
		a.Services[i].ID = f.nextID
		a.Services[i].AppointmentID = a.ID
	}
	f.appointments[a.ID] = a
	return nil
}

func (f *fakeStore) SaveAppointment(a *models.Appointment) error {
	f.appointments[a.ID] = a
	return nil
}

func (f *fakeStore) SaveAssignment(sa *models.ServiceAssignment) error {
	return nil
}

func (f *fakeStore) Transact(fn func(Store) error) error {
	return fn(f)
}

func (f *fakeStore) setPaid(appointmentID uint) {
	f.payments[appointmentID] = &models.Payment{
		AppointmentID: appointmentID,
		Status:        models.PaymentPaid,
		Amount:        100,
		Currency:      "INR",
		Provider:      models.ProviderRazorpay,
	}
}

// testNow is a Monday morning; availability windows in tests use weekday 1.
var testNow = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

func newTestEngine(store *fakeStore) *Engine {
	cfg := &config.Config{MinRescheduleHours: 24, MinCancelHours: 24}
	e := NewEngine(store, cfg)
	e.now = func() time.Time { return testNow }
	return e
}
