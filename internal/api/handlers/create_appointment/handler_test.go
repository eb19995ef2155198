package create_appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/validation"
	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Один набор метрик на тестовый процесс: повторная регистрация паникует
var testMetrics = metrics.New("appointment-service-test")

type stubUseCase struct {
	resp *createAppointment.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, _ *createAppointment.Request) (*createAppointment.Response, error) {
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc CreateAppointmentUseCase, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewReader(data))
	rec := httptest.NewRecorder()

	NewHandler(uc, testMetrics, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &stubUseCase{
		resp: &createAppointment.Response{
			ID:              42,
			CustomerName:    "Jane Doe",
			CustomerEmail:   "jane@example.com",
			CustomerPhone:   "+14155551234",
			ServiceID:       1,
			ServiceName:     "Haircut",
			StaffID:         7,
			StaffName:       "Alice",
			AppointmentDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
			StartTime:       types.TimeString("10:00"),
			DurationMinutes: 30,
			Status:          "pending",
			CreatedAt:       time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
			UpdatedAt:       time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	rec := doRequest(t, uc, map[string]interface{}{
		"customerName":    "Jane Doe",
		"customerEmail":   "jane@example.com",
		"customerPhone":   "+14155551234",
		"serviceId":       1,
		"staffId":         7,
		"appointmentDate": "2026-09-15",
		"startTime":       "10:00",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "2026-09-15", resp.AppointmentDate)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "pending", resp.Status)
}

func TestHandle_ValidationMessageForwarded(t *testing.T) {
	uc := &stubUseCase{
		err: validation.ErrInvalidPhone,
	}

	rec := doRequest(t, uc, map[string]interface{}{"customerPhone": "bad"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid phone number")
}

func TestHandle_SlotConflict(t *testing.T) {
	uc := &stubUseCase{err: createAppointment.ErrSlotNotAvailable}

	rec := doRequest(t, uc, map[string]interface{}{"startTime": "10:00"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_DuplicateConflict(t *testing.T) {
	uc := &stubUseCase{err: createAppointment.ErrDuplicateAppointment}

	rec := doRequest(t, uc, map[string]interface{}{"startTime": "10:00"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_ServiceNotFound(t *testing.T) {
	uc := &stubUseCase{err: createAppointment.ErrServiceNotFound}

	rec := doRequest(t, uc, map[string]interface{}{"serviceId": 99})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	NewHandler(&stubUseCase{}, testMetrics, nopLogger{}).Handle(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	uc := &stubUseCase{err: createAppointment.ErrInternal}

	rec := doRequest(t, uc, map[string]interface{}{"startTime": "10:00"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
