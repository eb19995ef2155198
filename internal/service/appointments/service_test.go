package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type mockRepo struct {
	appointments map[int64]*domain.Appointment

	updatedStatus *domain.AppointmentStatus
	cancelReason  *string
	lastFilter    domain.AppointmentFilter
}

func newMockRepo(appointments ...*domain.Appointment) *mockRepo {
	m := &mockRepo{appointments: make(map[int64]*domain.Appointment)}
	for _, appt := range appointments {
		m.appointments[appt.ID] = appt
	}
	return m
}

func (m *mockRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := m.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *appt
	return &copied, nil
}

func (m *mockRepo) FindWithFilter(_ context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	m.lastFilter = filter
	result := make([]*domain.Appointment, 0)
	for _, appt := range m.appointments {
		if filter.CustomerEmail != nil && appt.CustomerEmail != *filter.CustomerEmail {
			continue
		}
		if filter.Status != nil && appt.Status != *filter.Status {
			continue
		}
		result = append(result, appt)
	}
	return result, nil
}

func (m *mockRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	appt, ok := m.appointments[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	appt.Status = status
	m.updatedStatus = &status
	return nil
}

func (m *mockRepo) Cancel(_ context.Context, id int64, reason string) error {
	appt, ok := m.appointments[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	appt.Status = domain.StatusCancelled
	m.cancelReason = &reason
	return nil
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func futureAppointment(id int64, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		CustomerName:    "Jane Doe",
		CustomerEmail:   "jane@example.com",
		CustomerPhone:   "+14155551234",
		ServiceID:       1,
		ServiceName:     "Haircut",
		AppointmentDate: time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("10:00"),
		DurationMinutes: 30,
		Status:          status,
		CreatedAt:       time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:       time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}
}

func pastAppointment(id int64, status domain.AppointmentStatus) *domain.Appointment {
	appt := futureAppointment(id, status)
	appt.AppointmentDate = time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	return appt
}

// newTestService сервис с "сейчас" = 2026-09-15 12:00 бизнес-времени
func newTestService(repo *mockRepo) *Service {
	svc := NewService(repo, 0, nopLogger{})
	svc.timeProvider = &fixedTime{now: time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)}
	return svc
}

func TestGetByID(t *testing.T) {
	repo := newMockRepo(futureAppointment(1, domain.StatusPending))
	svc := newTestService(repo)

	t.Run("found", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "pending", resp.Status)
		assert.Equal(t, "2026-09-20", resp.AppointmentDate)
		assert.Equal(t, "10:00", resp.StartTime)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 99)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestGetCustomerAppointments(t *testing.T) {
	first := pastAppointment(1, domain.StatusCompleted)
	second := futureAppointment(2, domain.StatusPending)
	repo := newMockRepo(first, second)
	svc := newTestService(repo)

	t.Run("all statuses", func(t *testing.T) {
		resp, err := svc.GetCustomerAppointments(context.Background(), &models.GetCustomerAppointmentsRequest{
			CustomerEmail: "  Jane@Example.com ",
		})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Total)

		// Email нормализуется перед выборкой
		require.NotNil(t, repo.lastFilter.CustomerEmail)
		assert.Equal(t, "jane@example.com", *repo.lastFilter.CustomerEmail)
	})

	t.Run("filtered by status", func(t *testing.T) {
		resp, err := svc.GetCustomerAppointments(context.Background(), &models.GetCustomerAppointmentsRequest{
			CustomerEmail: "jane@example.com",
			Status:        ptr.Ptr("completed"),
		})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := svc.GetCustomerAppointments(context.Background(), &models.GetCustomerAppointmentsRequest{
			CustomerEmail: "jane@example.com",
			Status:        ptr.Ptr("no-show"),
		})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("empty email", func(t *testing.T) {
		_, err := svc.GetCustomerAppointments(context.Background(), &models.GetCustomerAppointmentsRequest{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestUpdateStatus_Transitions(t *testing.T) {
	t.Run("pending to confirmed after scheduled time", func(t *testing.T) {
		repo := newMockRepo(pastAppointment(1, domain.StatusPending))
		svc := newTestService(repo)

		resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "confirmed"})
		require.NoError(t, err)
		assert.Equal(t, "confirmed", resp.Status)
	})

	t.Run("confirmed to completed", func(t *testing.T) {
		repo := newMockRepo(pastAppointment(1, domain.StatusConfirmed))
		svc := newTestService(repo)

		resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "completed"})
		require.NoError(t, err)
		assert.Equal(t, "completed", resp.Status)
	})

	t.Run("pending straight to completed rejected", func(t *testing.T) {
		repo := newMockRepo(pastAppointment(1, domain.StatusPending))
		svc := newTestService(repo)

		_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "completed"})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("terminal status rejected", func(t *testing.T) {
		repo := newMockRepo(pastAppointment(1, domain.StatusCompleted))
		svc := newTestService(repo)

		_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "no_show"})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		repo := newMockRepo(pastAppointment(1, domain.StatusPending))
		svc := newTestService(repo)

		_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "archived"})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("not found", func(t *testing.T) {
		repo := newMockRepo()
		svc := newTestService(repo)

		_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "confirmed"})
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestUpdateStatus_RetrospectiveGuard(t *testing.T) {
	t.Run("future appointment cannot be completed", func(t *testing.T) {
		repo := newMockRepo(futureAppointment(1, domain.StatusConfirmed))
		svc := newTestService(repo)

		_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "completed"})
		assert.ErrorIs(t, err, ErrAppointmentInFuture)
	})

	t.Run("future appointment cannot be marked no_show", func(t *testing.T) {
		repo := newMockRepo(futureAppointment(1, domain.StatusPending))
		svc := newTestService(repo)

		_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "no_show"})
		assert.ErrorIs(t, err, ErrAppointmentInFuture)
	})

	t.Run("caller timezone offset can move now past the slot", func(t *testing.T) {
		// Запись сегодня в 13:00; "сейчас" 12:00 UTC, для вызывающего
		// восточнее UTC (смещение -120) уже 14:00
		appt := futureAppointment(1, domain.StatusConfirmed)
		appt.AppointmentDate = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
		appt.StartTime = types.TimeString("13:00")
		repo := newMockRepo(appt)
		svc := newTestService(repo)

		// Без смещения переход отклоняется
		_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "completed"})
		require.ErrorIs(t, err, ErrAppointmentInFuture)

		resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
			Status:                "completed",
			TimezoneOffsetMinutes: ptr.Ptr(-120),
		})
		require.NoError(t, err)
		assert.Equal(t, "completed", resp.Status)
	})
}

func TestUpdateStatus_CancelRoute(t *testing.T) {
	// Отмена через смену статуса подчиняется тем же ограничениям, что и Cancel
	repo := newMockRepo(pastAppointment(1, domain.StatusPending))
	svc := newTestService(repo)

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "cancelled"})
	assert.ErrorIs(t, err, ErrAppointmentInPast)
}

func TestCancel(t *testing.T) {
	t.Run("success with reason", func(t *testing.T) {
		repo := newMockRepo(futureAppointment(1, domain.StatusPending))
		svc := newTestService(repo)

		err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{Reason: "schedule conflict"})
		require.NoError(t, err)
		require.NotNil(t, repo.cancelReason)
		assert.Equal(t, "schedule conflict", *repo.cancelReason)
	})

	t.Run("already cancelled", func(t *testing.T) {
		repo := newMockRepo(futureAppointment(1, domain.StatusCancelled))
		svc := newTestService(repo)

		err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{})
		assert.ErrorIs(t, err, ErrAlreadyCancelled)
	})

	t.Run("completed cannot be cancelled", func(t *testing.T) {
		repo := newMockRepo(pastAppointment(1, domain.StatusCompleted))
		svc := newTestService(repo)

		err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{})
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("past appointment cannot be cancelled", func(t *testing.T) {
		repo := newMockRepo(pastAppointment(1, domain.StatusConfirmed))
		svc := newTestService(repo)

		err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{})
		assert.ErrorIs(t, err, ErrAppointmentInPast)
	})

	t.Run("not found", func(t *testing.T) {
		repo := newMockRepo()
		svc := newTestService(repo)

		err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{})
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}
