package appointment

import (
	"context"
	"sort"

	"gorm.io/gorm"

	domain "github.com/VetCareCL/vetcare-api/internal/domain/appointment"
	"github.com/VetCareCL/vetcare-api/internal/httperr"
	"github.com/VetCareCL/vetcare-api/internal/models"
)

// fakeRepo implementa domain.Repository em memória para os testes de
// use case, devolvendo cópias como um banco de verdade faria.
type fakeRepo struct {
	users        map[uint]models.User
	pets         map[uint]models.Pet
	vets         map[uint]models.Veterinarian
	services     map[uint]models.Service
	appointments map[uint]models.Appointment
	payments     []models.Payment

	nextID uint

	// quando setados, os lookups/escritas devolvem o erro em vez de
	// consultar os maps (simula o banco fora do ar)
	petErr           error
	vetErr           error
	serviceErr       error
	appointmentErr   error
	recordPaymentErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:        make(map[uint]models.User),
		pets:         make(map[uint]models.Pet),
		vets:         make(map[uint]models.Veterinarian),
		services:     make(map[uint]models.Service),
		appointments: make(map[uint]models.Appointment),
	}
}

func (r *fakeRepo) GetUser(_ context.Context, id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r *fakeRepo) GetPetForUser(_ context.Context, petID, userID uint) (*models.Pet, error) {
	if r.petErr != nil {
		return nil, r.petErr
	}
	p, ok := r.pets[petID]
	if !ok || p.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r *fakeRepo) GetActiveVeterinarian(_ context.Context, id uint) (*models.Veterinarian, error) {
	if r.vetErr != nil {
		return nil, r.vetErr
	}
	v, ok := r.vets[id]
	if !ok || !v.IsActive {
		return nil, gorm.ErrRecordNotFound
	}
	return &v, nil
}

func (r *fakeRepo) GetActiveService(_ context.Context, id uint) (*models.Service, error) {
	if r.serviceErr != nil {
		return nil, r.serviceErr
	}
	s, ok := r.services[id]
	if !ok || !s.IsActive {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func (r *fakeRepo) CreateIfSlotFree(_ context.Context, ap *models.Appointment) error {
	for _, existing := range r.appointments {
		if existing.VeterinarianID == ap.VeterinarianID &&
			existing.AppointmentDate == ap.AppointmentDate &&
			existing.AppointmentTime == ap.AppointmentTime &&
			existing.Status != string(domain.StatusCancelled) {
			return httperr.ErrBusiness("slot_conflict")
		}
	}

	r.nextID++
	ap.ID = r.nextID
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *fakeRepo) GetAppointmentForUser(_ context.Context, appointmentID, userID uint) (*models.Appointment, error) {
	if r.appointmentErr != nil {
		return nil, r.appointmentErr
	}
	ap, ok := r.appointments[appointmentID]
	if !ok || ap.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return &ap, nil
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	if _, ok := r.appointments[ap.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.appointments[ap.ID] = *ap
	return nil
}

// RecordPayment espelha a transação do repositório real: ou a cita e a
// linha do ledger são gravadas juntas, ou nenhuma das duas.
func (r *fakeRepo) RecordPayment(_ context.Context, ap *models.Appointment, p *models.Payment) error {
	if r.recordPaymentErr != nil {
		return r.recordPaymentErr
	}
	if _, ok := r.appointments[ap.ID]; !ok {
		return gorm.ErrRecordNotFound
	}

	r.appointments[ap.ID] = *ap
	p.ID = uint(len(r.payments) + 1)
	r.payments = append(r.payments, *p)
	return nil
}

func (r *fakeRepo) ListAppointmentsForUser(_ context.Context, userID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.UserID == userID {
			out = append(out, r.withAssociations(ap))
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].AppointmentDate != out[j].AppointmentDate {
			return out[i].AppointmentDate > out[j].AppointmentDate
		}
		return out[i].AppointmentTime > out[j].AppointmentTime
	})

	return out, nil
}

func (r *fakeRepo) GetAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	if r.appointmentErr != nil {
		return nil, r.appointmentErr
	}
	ap, ok := r.appointments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	full := r.withAssociations(ap)
	return &full, nil
}

func (r *fakeRepo) withAssociations(ap models.Appointment) models.Appointment {
	ap.Pet = r.pets[ap.PetID]
	ap.Veterinarian = r.vets[ap.VeterinarianID]
	ap.Service = r.services[ap.ServiceID]
	return ap
}

var _ domain.Repository = (*fakeRepo)(nil)

// ------------------------------------------------------
// seed helpers
// ------------------------------------------------------

func (r *fakeRepo) seedUser(id uint, address string) {
	r.users[id] = models.User{ID: id, FirstName: "María", LastName: "González", Address: address}
}

func (r *fakeRepo) seedPet(id, userID uint, name, species string) {
	r.pets[id] = models.Pet{ID: id, UserID: userID, Name: name, Species: species}
}

func (r *fakeRepo) seedVet(id uint, active bool) {
	r.vets[id] = models.Veterinarian{
		ID:             id,
		FirstName:      "Dr. Carlos",
		LastName:       "Rodríguez",
		Specialization: "Medicina General",
		IsActive:       active,
	}
}

func (r *fakeRepo) seedService(id uint, price float64, active bool) {
	r.services[id] = models.Service{ID: id, Name: "Consulta General a Domicilio", Price: price, IsActive: active}
}
