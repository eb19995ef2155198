// Package stats агрегирует статистику бронирований: счетчики по статусам
// и долю неявок за скользящие 30 дней.
package stats

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// noShowWindowDays окно для расчета доли неявок
const noShowWindowDays = 30

// Response агрегированная статистика бронирований
type Response struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`
	NoShow    int64 `json:"noShow"`

	// NoShowRate30d доля неявок за последние 30 дней в целых процентах:
	// noShow / (completed + noShow), 0 при нулевом знаменателе
	NoShowRate30d int `json:"noShowRate30d"`
}

// Service сервис агрегации статистики
type Service struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса статистики
func NewService(appointmentRepo AppointmentRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetStats собирает счетчики по статусам и долю неявок за 30 дней.
// Все подсчеты выполняются в одной read-only транзакции, чтобы счетчики
// были согласованы между собой
func (s *Service) GetStats(ctx context.Context) (*Response, error) {
	s.logger.Info("GetStats: collecting appointment statistics")

	resp := &Response{}

	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		return s.collect(ctx, resp)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetStats: total=%d, noShowRate30d=%d%%", resp.Total, resp.NoShowRate30d)
	return resp, nil
}

func (s *Service) collect(ctx context.Context, resp *Response) error {
	counters := []struct {
		status domain.AppointmentStatus
		dst    *int64
	}{
		{domain.StatusPending, &resp.Pending},
		{domain.StatusConfirmed, &resp.Confirmed},
		{domain.StatusCompleted, &resp.Completed},
		{domain.StatusCancelled, &resp.Cancelled},
		{domain.StatusNoShow, &resp.NoShow},
	}

	for _, c := range counters {
		status := c.status
		count, err := s.appointmentRepo.CountWithFilter(ctx, domain.AppointmentFilter{Status: &status})
		if err != nil {
			s.logger.Error("GetStats: failed to count status=%s: %v", status, err)
			return fmt.Errorf("%w: failed to count appointments: %v", ErrInternal, err)
		}
		*c.dst = count
		resp.Total += count
	}

	rate, err := s.noShowRate30d(ctx)
	if err != nil {
		return err
	}
	resp.NoShowRate30d = rate

	return nil
}

// noShowRate30d считает долю неявок за скользящее 30-дневное окно
func (s *Service) noShowRate30d(ctx context.Context) (int, error) {
	now := s.timeProvider.Now()
	windowStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -noShowWindowDays)

	count := func(status domain.AppointmentStatus) (int64, error) {
		return s.appointmentRepo.CountWithFilter(ctx, domain.AppointmentFilter{
			Status:    &status,
			StartDate: &windowStart,
		})
	}

	completed, err := count(domain.StatusCompleted)
	if err != nil {
		s.logger.Error("GetStats: failed to count completed in window: %v", err)
		return 0, fmt.Errorf("%w: failed to count completed appointments: %v", ErrInternal, err)
	}

	noShow, err := count(domain.StatusNoShow)
	if err != nil {
		s.logger.Error("GetStats: failed to count no-shows in window: %v", err)
		return 0, fmt.Errorf("%w: failed to count no-show appointments: %v", ErrInternal, err)
	}

	return NoShowRate(completed, noShow), nil
}

// NoShowRate считает долю неявок в целых процентах с округлением
// к ближайшему целому; при нулевом знаменателе возвращает 0
func NoShowRate(completed, noShow int64) int {
	denominator := completed + noShow
	if denominator == 0 {
		return 0
	}
	return int(math.Round(float64(noShow) / float64(denominator) * 100))
}
