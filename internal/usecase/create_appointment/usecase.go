package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	directoryClient "github.com/m04kA/SMC-AppointmentService/internal/integrations/directoryservice"
	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AppointmentService/internal/validation"
	"github.com/m04kA/SMC-AppointmentService/pkg/slotlock"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// UseCase use case для создания бронирования.
//
// Порядок шагов фиксирован: валидация, проверка справочников, проверка
// дубликата, захват advisory-блокировки слота, перепроверка доступности под
// блокировкой и создание записи. Блокировка снимается на любом пути выхода.
type UseCase struct {
	appointmentRepo AppointmentRepository
	directory       DirectoryClient
	availability    AvailabilityProvider
	validator       BookingValidator
	locks           SlotLocker
	txManager       TransactionManager
	policy          Policy
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	directory DirectoryClient,
	availability AvailabilityProvider,
	validator BookingValidator,
	locks SlotLocker,
	txManager TransactionManager,
	policy Policy,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		directory:       directory,
		availability:    availability,
		validator:       validator,
		locks:           locks,
		txManager:       txManager,
		policy:          policy,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: email=%s, service=%d, staff=%v, date=%s, time=%s",
		req.CustomerEmail, req.ServiceID, req.StaffID, req.Date, req.StartTime)

	// 1. Нормализация и валидация заявки
	// "Сегодня" для проверки даты считается в бизнес-таймзоне
	businessNow := domain.BusinessNow(uc.timeProvider.Now(), uc.policy.DefaultTimezoneOffset)

	validated, err := uc.validator.ValidateBooking(&validation.BookingInput{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Date:          req.Date,
		StartTime:     req.StartTime,
		Notes:         req.Notes,
	}, businessNow)
	if err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование услуги
	service, err := uc.directory.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, directoryClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Выбор мастера обязателен
	if req.StaffID == nil || *req.StaffID <= 0 {
		uc.logger.Warn("CreateAppointment: staff not specified")
		return nil, ErrStaffRequired
	}

	staff, err := uc.directory.GetStaff(ctx, *req.StaffID)
	if err != nil {
		if errors.Is(err, directoryClient.ErrStaffNotFound) {
			uc.logger.Warn("CreateAppointment: staff id=%d not found", *req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get staff id=%d: %v", *req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	// 4. Защита от повторной отправки той же заявки
	if err := uc.checkDuplicate(ctx, req, validated); err != nil {
		return nil, err
	}

	// 5. Захватываем advisory-блокировку по ключу (дата, время)
	// Блокировка грубая - по времени, не по мастеру: одна простая точка
	// сериализации ценой лишней конкуренции между несвязанными мастерами
	key := slotlock.Key(validated.Date, validated.StartTime)
	release := uc.locks.Acquire(key)
	defer release()

	uc.logger.Info("CreateAppointment: acquired slot lock %s", key)

	duration := service.DurationMinutes
	if duration <= 0 {
		duration = uc.policy.DefaultDurationMinutes
	}

	// 6. Под блокировкой: перепроверяем доступность и создаем бронирование
	var result *domain.Appointment

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Перепроверка через калькулятор доступности
		// Прошедшие слоты не попадают в выдачу, поэтому эта же проверка
		// отсекает и слот, успевший уйти в прошлое
		slots, err := uc.availability.Execute(txCtx, &getAvailableSlots.Request{
			ServiceID:             req.ServiceID,
			StaffID:               req.StaffID,
			Date:                  validated.Date,
			TimezoneOffsetMinutes: req.TimezoneOffsetMinutes,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to recheck availability: %v", ErrInternal, err)
		}

		if !slotStillAvailable(slots, validated.StartTime) {
			uc.logger.Warn("CreateAppointment: slot %s %s no longer available",
				validated.Date.Format(domain.DateFormat), validated.StartTime)
			return ErrSlotNotAvailable
		}

		// 6.2. Создаем бронирование со статусом pending
		appt := &domain.Appointment{
			CustomerName:    validated.CustomerName,
			CustomerEmail:   validated.CustomerEmail,
			CustomerPhone:   validated.CustomerPhone,
			ServiceID:       service.ID,
			ServiceName:     service.Name,
			StaffID:         &staff.ID,
			StaffName:       &staff.Name,
			AppointmentDate: validated.Date,
			StartTime:       validated.StartTime,
			DurationMinutes: duration,
			Status:          domain.StatusPending,
			Notes:           validated.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if !errors.Is(err, ErrSlotNotAvailable) {
			uc.logger.Error("CreateAppointment: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return fromDomain(result), nil
}

// checkDuplicate отклоняет заявку, если активное бронирование с тем же
// клиентом, датой, услугой, временем и мастером уже существует
func (uc *UseCase) checkDuplicate(ctx context.Context, req *Request, validated *validation.ValidatedBooking) error {
	existing, err := uc.appointmentRepo.FindWithFilter(ctx, domain.AppointmentFilter{
		Date:            &validated.Date,
		CustomerEmail:   &validated.CustomerEmail,
		ExcludeStatuses: domain.CancelledStatuses,
	})
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to check duplicates: %v", err)
		return fmt.Errorf("%w: failed to check duplicates: %v", ErrInternal, err)
	}

	for _, appt := range existing {
		if appt.ServiceID == req.ServiceID &&
			appt.StartTime == validated.StartTime &&
			appt.StaffID != nil && req.StaffID != nil && *appt.StaffID == *req.StaffID {
			uc.logger.Warn("CreateAppointment: duplicate appointment for email=%s, date=%s, time=%s",
				validated.CustomerEmail, validated.Date.Format(domain.DateFormat), validated.StartTime)
			return ErrDuplicateAppointment
		}
	}

	return nil
}

// slotStillAvailable проверяет, что запрошенное время есть в выдаче
// калькулятора и помечено доступным
func slotStillAvailable(resp *getAvailableSlots.Response, startTime types.TimeString) bool {
	for _, slot := range resp.Slots {
		if slot.StartTime == startTime {
			return slot.Available
		}
	}
	return false
}
