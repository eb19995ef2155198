package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/directoryservice"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type mockRepo struct {
	appointments []*domain.Appointment
	err          error
	lastFilter   domain.AppointmentFilter
}

func (m *mockRepo) FindWithFilter(_ context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	m.lastFilter = filter
	return m.appointments, m.err
}

type mockDirectory struct {
	service    *directoryservice.Service
	serviceErr error
	staff      *directoryservice.Staff
	staffErr   error
	holiday    *directoryservice.Holiday
	holidayErr error
}

func (m *mockDirectory) GetService(_ context.Context, _ int64) (*directoryservice.Service, error) {
	return m.service, m.serviceErr
}

func (m *mockDirectory) GetStaff(_ context.Context, _ int64) (*directoryservice.Staff, error) {
	return m.staff, m.staffErr
}

func (m *mockDirectory) GetHolidayByDate(_ context.Context, _ time.Time) (*directoryservice.Holiday, error) {
	return m.holiday, m.holidayErr
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// testDate вторник
var testDate = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

func testPolicy() Policy {
	open := types.TimeString("09:00")
	closeTime := types.TimeString("17:00")
	day := domain.DaySchedule{IsOpen: true, OpenTime: &open, CloseTime: &closeTime}

	return Policy{
		BusinessHours: domain.BusinessHours{
			Monday:    day,
			Tuesday:   day,
			Wednesday: day,
			Thursday:  day,
			Friday:    day,
		},
		SlotStepMinutes:        30,
		DefaultDurationMinutes: 30,
		DefaultTimezoneOffset:  0,
	}
}

func newTestUseCase(repo *mockRepo, dir *mockDirectory, now time.Time) *UseCase {
	uc := NewUseCase(repo, dir, testPolicy(), nopLogger{})
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

// yesterday момент накануне тестовой даты: все слоты дня в будущем
var yesterday = testDate.AddDate(0, 0, -1)

func serviceWithDuration(minutes int) *directoryservice.Service {
	return &directoryservice.Service{ID: 1, Name: "Haircut", DurationMinutes: minutes}
}

func TestExecute_FullGrid(t *testing.T) {
	repo := &mockRepo{}
	dir := &mockDirectory{service: serviceWithDuration(30), holidayErr: directoryservice.ErrHolidayNotFound}
	uc := newTestUseCase(repo, dir, yesterday)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: testDate})
	require.NoError(t, err)

	// 09:00-17:00 с шагом 30 минут и длительностью 30: 16 слотов, последний 16:30
	require.Len(t, resp.Slots, 16)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("16:30"), resp.Slots[15].StartTime)
	for _, slot := range resp.Slots {
		assert.True(t, slot.Available, "slot %s", slot.StartTime)
		assert.Equal(t, 30, slot.DurationMinutes)
	}

	// Отмененные бронирования не должны попадать в выборку занятости
	assert.Equal(t, domain.CancelledStatuses, repo.lastFilter.ExcludeStatuses)
}

func TestExecute_LongServiceShrinksGrid(t *testing.T) {
	repo := &mockRepo{}
	dir := &mockDirectory{service: serviceWithDuration(60), holidayErr: directoryservice.ErrHolidayNotFound}
	uc := newTestUseCase(repo, dir, yesterday)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: testDate})
	require.NoError(t, err)

	// Последний 60-минутный слот должен закончиться не позже 17:00
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, types.TimeString("16:00"), resp.Slots[len(resp.Slots)-1].StartTime)
	assert.Len(t, resp.Slots, 15)
}

func TestExecute_OverlapMarksUnavailable(t *testing.T) {
	booked := &domain.Appointment{
		StartTime:       types.TimeString("10:00"),
		DurationMinutes: 60,
		Status:          domain.StatusConfirmed,
	}
	repo := &mockRepo{appointments: []*domain.Appointment{booked}}
	dir := &mockDirectory{service: serviceWithDuration(30), holidayErr: directoryservice.ErrHolidayNotFound}
	uc := newTestUseCase(repo, dir, yesterday)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: testDate})
	require.NoError(t, err)

	availability := make(map[types.TimeString]bool)
	for _, slot := range resp.Slots {
		availability[slot.StartTime] = slot.Available
	}

	// Бронирование 10:00-11:00 закрывает слоты 10:00 и 10:30
	assert.False(t, availability["10:00"])
	assert.False(t, availability["10:30"])

	// Смежные слоты свободны: интервалы полуоткрытые
	assert.True(t, availability["09:30"])
	assert.True(t, availability["11:00"])
}

func TestExecute_CancelledAppointmentFreesSlot(t *testing.T) {
	cancelled := &domain.Appointment{
		StartTime:       types.TimeString("10:00"),
		DurationMinutes: 30,
		Status:          domain.StatusCancelled,
	}
	repo := &mockRepo{appointments: []*domain.Appointment{cancelled}}
	dir := &mockDirectory{service: serviceWithDuration(30), holidayErr: directoryservice.ErrHolidayNotFound}
	uc := newTestUseCase(repo, dir, yesterday)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: testDate})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		assert.True(t, slot.Available, "slot %s", slot.StartTime)
	}
}

func TestExecute_PastSlotsExcluded(t *testing.T) {
	repo := &mockRepo{}
	dir := &mockDirectory{service: serviceWithDuration(30), holidayErr: directoryservice.ErrHolidayNotFound}

	// 12:05 бизнес-времени в день запроса
	now := time.Date(2026, 9, 15, 12, 5, 0, 0, time.UTC)
	uc := newTestUseCase(repo, dir, now)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: testDate})
	require.NoError(t, err)

	// Слоты по 12:00 включительно уже не строго в будущем
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, types.TimeString("12:30"), resp.Slots[0].StartTime)
}

func TestExecute_ClientTimezoneOffsetShiftsNow(t *testing.T) {
	repo := &mockRepo{}
	dir := &mockDirectory{service: serviceWithDuration(30), holidayErr: directoryservice.ErrHolidayNotFound}

	// 15:00 UTC; для клиента со смещением 300 минут (UTC-5) сейчас 10:00
	now := time.Date(2026, 9, 15, 15, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, dir, now)

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID:             1,
		Date:                  testDate,
		TimezoneOffsetMinutes: ptr.Ptr(300),
	})
	require.NoError(t, err)

	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, types.TimeString("10:30"), resp.Slots[0].StartTime)
}

func TestExecute_StaffWindowRestrictsSlots(t *testing.T) {
	repo := &mockRepo{}
	staff := &directoryservice.Staff{
		ID:   7,
		Name: "Alice",
		Schedule: domain.WeeklySchedule{
			Tuesday: &domain.WorkingWindow{Start: "10:00", End: "14:00"},
		},
	}
	dir := &mockDirectory{service: serviceWithDuration(30), staff: staff, holidayErr: directoryservice.ErrHolidayNotFound}
	uc := newTestUseCase(repo, dir, yesterday)

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID: 1,
		StaffID:   ptr.Ptr(int64(7)),
		Date:      testDate,
	})
	require.NoError(t, err)

	// Слоты 10:00..13:30 внутри окна мастера
	require.Len(t, resp.Slots, 8)
	assert.Equal(t, types.TimeString("10:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("13:30"), resp.Slots[7].StartTime)
}

func TestExecute_StaffNotWorkingThatDay(t *testing.T) {
	repo := &mockRepo{}
	staff := &directoryservice.Staff{
		ID:   7,
		Name: "Alice",
		Schedule: domain.WeeklySchedule{
			Monday: &domain.WorkingWindow{Start: "09:00", End: "17:00"},
		},
	}
	dir := &mockDirectory{service: serviceWithDuration(30), staff: staff, holidayErr: directoryservice.ErrHolidayNotFound}
	uc := newTestUseCase(repo, dir, yesterday)

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID: 1,
		StaffID:   ptr.Ptr(int64(7)),
		Date:      testDate, // вторник
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ClosedWeekday(t *testing.T) {
	repo := &mockRepo{}
	dir := &mockDirectory{service: serviceWithDuration(30), holidayErr: directoryservice.ErrHolidayNotFound}
	uc := newTestUseCase(repo, dir, yesterday)

	sunday := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: sunday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ClosedHoliday(t *testing.T) {
	repo := &mockRepo{}
	dir := &mockDirectory{
		service: serviceWithDuration(30),
		holiday: &directoryservice.Holiday{Date: "2026-09-15", Name: "Founders Day", IsClosed: true},
	}
	uc := newTestUseCase(repo, dir, yesterday)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: testDate})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	repo := &mockRepo{}
	dir := &mockDirectory{serviceErr: directoryservice.ErrServiceNotFound}
	uc := newTestUseCase(repo, dir, yesterday)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 99, Date: testDate})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_StaffNotFound(t *testing.T) {
	repo := &mockRepo{}
	dir := &mockDirectory{service: serviceWithDuration(30), staffErr: directoryservice.ErrStaffNotFound, holidayErr: directoryservice.ErrHolidayNotFound}
	uc := newTestUseCase(repo, dir, yesterday)

	_, err := uc.Execute(context.Background(), &Request{
		ServiceID: 1,
		StaffID:   ptr.Ptr(int64(99)),
		Date:      testDate,
	})
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestExecute_ZeroDurationFallsBackToDefault(t *testing.T) {
	repo := &mockRepo{}
	dir := &mockDirectory{service: serviceWithDuration(0), holidayErr: directoryservice.ErrHolidayNotFound}
	uc := newTestUseCase(repo, dir, yesterday)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: testDate})
	require.NoError(t, err)

	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, 30, resp.Slots[0].DurationMinutes)
}

func TestExecute_InvalidInput(t *testing.T) {
	repo := &mockRepo{}
	dir := &mockDirectory{service: serviceWithDuration(30)}
	uc := newTestUseCase(repo, dir, yesterday)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 0, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ServiceID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
