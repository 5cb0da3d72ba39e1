package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VetCareCL/vetcare-api/internal/httperr"
)

func TestListMyAppointments_EmptyIsNotAnError(t *testing.T) {
	repo := seededRepo()
	uc := NewListMyAppointments(repo)

	out, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestListMyAppointments_MostRecentFirst(t *testing.T) {
	repo := seededRepo()
	createUC := NewCreateAppointment(repo, newTestDispatcher())

	slots := []struct {
		date string
		tm   string
	}{
		{"2030-09-10", "09:00"},
		{"2030-09-11", "08:00"},
		{"2030-09-10", "15:30"},
	}

	for _, s := range slots {
		in := validInput()
		in.Date = s.date
		in.Time = s.tm
		_, err := createUC.Execute(context.Background(), in)
		require.NoError(t, err)
	}

	uc := NewListMyAppointments(repo)
	out, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, "2030-09-11 08:00", out[0].AppointmentDate)
	assert.Equal(t, "2030-09-10 15:30", out[1].AppointmentDate)
	assert.Equal(t, "2030-09-10 09:00", out[2].AppointmentDate)
}

func TestListMyAppointments_OnlyOwnRows(t *testing.T) {
	repo := seededRepo()
	repo.seedUser(2, "")
	repo.seedPet(20, 2, "Luna", "Gato")

	createUC := NewCreateAppointment(repo, newTestDispatcher())

	_, err := createUC.Execute(context.Background(), validInput())
	require.NoError(t, err)

	in := validInput()
	in.UserID = 2
	in.PetID = 20
	in.Time = "16:00"
	_, err = createUC.Execute(context.Background(), in)
	require.NoError(t, err)

	uc := NewListMyAppointments(repo)

	mine, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Max", mine[0].PetName)
}

func TestGetAppointmentDetail_ComposedFields(t *testing.T) {
	repo := seededRepo()
	createUC := NewCreateAppointment(repo, newTestDispatcher())

	ap, err := createUC.Execute(context.Background(), validInput())
	require.NoError(t, err)

	uc := NewGetAppointmentDetail(repo)
	detail, err := uc.Execute(context.Background(), ap.ID)
	require.NoError(t, err)

	assert.Equal(t, ap.ID, detail.ID)
	assert.Equal(t, "Consulta General a Domicilio", detail.ServiceName)
	assert.Equal(t, "Dr. Carlos Rodríguez", detail.VeterinarianName)
	assert.Equal(t, "Medicina General", detail.VeterinarianSpecialization)
	assert.Equal(t, "2030-09-10 14:00", detail.AppointmentDate)
	assert.Equal(t, "Max", detail.PetName)
	assert.Equal(t, "Perro", detail.PetSpecies)
	assert.Equal(t, "programada", detail.Status)
	assert.Equal(t, "pending", detail.PaymentStatus)
	assert.Equal(t, 45000.0, detail.Price)
}

func TestGetAppointmentDetail_NotFound(t *testing.T) {
	repo := seededRepo()
	uc := NewGetAppointmentDetail(repo)

	_, err := uc.Execute(context.Background(), 999)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}
