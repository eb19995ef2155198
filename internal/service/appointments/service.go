package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

// Service сервис для работы с существующими бронированиями:
// чтение, смена статуса по таблице переходов и отмена.
type Service struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger

	// defaultTimezoneOffset смещение бизнес-таймзоны от UTC в минутах
	// для временных ограничений переходов, когда клиент не передал свое
	defaultTimezoneOffset int
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	appointmentRepo AppointmentRepository,
	defaultTimezoneOffset int,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo:       appointmentRepo,
		timeProvider:          &RealTimeProvider{},
		logger:                logger,
		defaultTimezoneOffset: defaultTimezoneOffset,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// GetCustomerAppointments получает историю бронирований клиента по email
// Опционально фильтрует по статусу
func (s *Service) GetCustomerAppointments(ctx context.Context, req *models.GetCustomerAppointmentsRequest) (*models.AppointmentListResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.CustomerEmail))
	if email == "" {
		return nil, fmt.Errorf("%w: customer email is required", ErrInvalidInput)
	}

	s.logger.Info("GetCustomerAppointments: fetching appointments for email=%s, status=%v", email, req.Status)

	filter := domain.AppointmentFilter{CustomerEmail: &email}
	if req.Status != nil {
		status, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetCustomerAppointments: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidStatus)
		}
		filter.Status = &status
	}

	appointments, err := s.appointmentRepo.FindWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetCustomerAppointments: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: GetCustomerAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerAppointments: fetched %d appointments for email=%s", len(appointments), email)
	return models.FromDomainAppointmentList(appointments), nil
}

// UpdateStatus изменяет статус бронирования по таблице переходов.
//
// Переходы в confirmed, completed и no_show - ретроспективные действия:
// они разрешены только когда назначенное время бронирования уже наступило
// (с учетом смещения часового пояса вызывающего). Отмена через смену статуса
// подчиняется тем же ограничениям, что и Cancel.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: appointment id=%d -> status=%s", id, req.Status)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	newStatus, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidStatus, req.Status)
	}

	if !appt.Status.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s rejected for appointment id=%d",
			appt.Status, newStatus, id)
		return nil, fmt.Errorf("%w: cannot change status from %s to %s",
			ErrInvalidTransition, appt.Status, newStatus)
	}

	businessNow := s.businessNow(req.TimezoneOffsetMinutes)

	switch newStatus {
	case domain.StatusConfirmed, domain.StatusCompleted, domain.StatusNoShow:
		// Ретроспективные переходы недопустимы для будущих бронирований
		if appt.ScheduledAt().After(businessNow) {
			s.logger.Warn("UpdateStatus: appointment id=%d is still in the future, %s rejected", id, newStatus)
			return nil, fmt.Errorf("%w: cannot mark as %s before the scheduled time",
				ErrAppointmentInFuture, newStatus)
		}
	case domain.StatusCancelled:
		if err := s.checkCancelAllowed(appt, businessNow); err != nil {
			return nil, err
		}
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: appointment id=%d updated to status=%s", id, newStatus)

	appt.Status = newStatus
	return models.FromDomainAppointment(appt), nil
}

// Cancel отменяет бронирование с указанием причины
// Уже прошедшее или уже отмененное бронирование отменить нельзя
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if err := s.checkCancelAllowed(appt, s.businessNow(req.TimezoneOffsetMinutes)); err != nil {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled: %v", id, err)
		return err
	}

	if err := s.appointmentRepo.Cancel(ctx, id, req.Reason); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)
	return nil
}

// businessNow возвращает текущий момент в настенном времени вызывающего
// (или бизнес-таймзоны, если смещение не передано)
func (s *Service) businessNow(offsetMinutes *int) time.Time {
	offset := s.defaultTimezoneOffset
	if offsetMinutes != nil {
		offset = *offsetMinutes
	}
	return domain.BusinessNow(s.timeProvider.Now(), offset)
}

// checkCancelAllowed проверяет ограничения на отмену бронирования
func (s *Service) checkCancelAllowed(appt *domain.Appointment, businessNow time.Time) error {
	if appt.Status == domain.StatusCancelled {
		return ErrAlreadyCancelled
	}
	if !appt.CanBeCancelled() {
		return fmt.Errorf("%w: status is %s", ErrCannotCancel, appt.Status)
	}
	if appt.ScheduledAt().Before(businessNow) {
		return ErrAppointmentInPast
	}
	return nil
}
