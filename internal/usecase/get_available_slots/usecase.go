package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	directoryClient "github.com/m04kA/SMC-AppointmentService/internal/integrations/directoryservice"
)

// UseCase use case для получения доступных слотов для бронирования.
// Единственный источник истины о доступности: координатор бронирования
// переиспользует его для перепроверки слота под блокировкой.
type UseCase struct {
	appointmentRepo AppointmentRepository
	directory       DirectoryClient
	policy          Policy
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	directory DirectoryClient,
	policy Policy,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		directory:       directory,
		policy:          policy,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, staff=%v, date=%s",
		req.ServiceID, req.StaffID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущий бизнес-момент с учетом смещения клиента
	offset := uc.policy.DefaultTimezoneOffset
	if req.TimezoneOffsetMinutes != nil {
		offset = *req.TimezoneOffsetMinutes
	}
	refNow := domain.BusinessNow(uc.timeProvider.Now(), offset)

	emptyResponse := &Response{
		Date:      req.Date,
		ServiceID: req.ServiceID,
		StaffID:   req.StaffID,
		Slots:     []Slot{},
	}

	// 3. Определяем длительность услуги (с фолбэком на дефолт)
	service, err := uc.directory.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, directoryClient.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	duration := service.DurationMinutes
	if duration <= 0 {
		duration = uc.policy.DefaultDurationMinutes
		uc.logger.Info("GetAvailableSlots: service id=%d has no duration, using default %d minutes",
			req.ServiceID, duration)
	}

	// 4. Рабочие часы бизнеса на день недели
	day := uc.policy.BusinessHours.ForWeekday(req.Date.Weekday())
	if !day.IsOpen {
		uc.logger.Info("GetAvailableSlots: closed on %s", req.Date.Format(domain.DateFormat))
		return emptyResponse, nil
	}

	// 5. Проверка праздничного дня
	holiday, err := uc.directory.GetHolidayByDate(ctx, req.Date)
	if err != nil && !errors.Is(err, directoryClient.ErrHolidayNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get holiday for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get holiday: %v", ErrInternal, err)
	}
	if holiday != nil && holiday.IsClosed {
		uc.logger.Info("GetAvailableSlots: %s is a closed holiday (%s)",
			req.Date.Format(domain.DateFormat), holiday.Name)
		return emptyResponse, nil
	}

	// 6. Рабочее окно мастера, если задан фильтр по мастеру
	var staffWindow *domain.WorkingWindow
	if req.StaffID != nil {
		staff, err := uc.directory.GetStaff(ctx, *req.StaffID)
		if err != nil {
			if errors.Is(err, directoryClient.ErrStaffNotFound) {
				uc.logger.Warn("GetAvailableSlots: staff id=%d not found", *req.StaffID)
				return nil, ErrStaffNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get staff id=%d: %v", *req.StaffID, err)
			return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
		}

		staffWindow = staff.Schedule.ForWeekday(req.Date.Weekday())
		if staffWindow == nil {
			uc.logger.Info("GetAvailableSlots: staff id=%d does not work on %s",
				*req.StaffID, req.Date.Weekday())
			return emptyResponse, nil
		}
	}

	// 7. Существующие бронирования на эту дату (в рамках фильтра по мастеру)
	existing, err := uc.appointmentRepo.FindWithFilter(ctx, domain.AppointmentFilter{
		Date:            &req.Date,
		StaffID:         req.StaffID,
		ExcludeStatuses: domain.CancelledStatuses,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 8. Генерируем сетку слотов и размечаем доступность
	slots, err := generateSlots(day, staffWindow, duration, uc.policy.SlotStepMinutes, req.Date, refNow, existing)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for service=%d, date=%s",
		len(slots), req.ServiceID, req.Date.Format(domain.DateFormat))

	result := make([]Slot, 0, len(slots))
	for _, s := range slots {
		result = append(result, Slot{
			StartTime:       s.StartTime,
			DurationMinutes: s.DurationMinutes,
			Available:       s.Available,
		})
	}

	return &Response{
		Date:      req.Date,
		ServiceID: req.ServiceID,
		StaffID:   req.StaffID,
		Slots:     result,
	}, nil
}
