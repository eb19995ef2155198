// Package validation нормализует и валидирует сырые данные заявки на бронирование.
//
// Каждое правило возвращает свою ошибку с человекочитаемым сообщением;
// проверка останавливается на первом нарушении.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// emailPattern форма local@domain.tld: без пробелов, ровно один @, точка в домене
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// phoneStripper символы форматирования, допустимые в номере телефона
var phoneStripper = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")

// BookingInput сырые данные заявки, как они пришли от клиента
type BookingInput struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Date          string // "YYYY-MM-DD"
	StartTime     string // "HH:MM"
	Notes         *string
}

// ValidatedBooking нормализованный и разобранный результат валидации
type ValidatedBooking struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Date          time.Time
	StartTime     types.TimeString
	Notes         *string
}

// Validator проверяет заявки на бронирование по статической конфигурации бизнеса
type Validator struct {
	businessHours  domain.BusinessHours
	maxAdvanceDays int
}

// NewValidator создает валидатор заявок
func NewValidator(businessHours domain.BusinessHours, maxAdvanceDays int) *Validator {
	return &Validator{
		businessHours:  businessHours,
		maxAdvanceDays: maxAdvanceDays,
	}
}

// ValidateBooking нормализует входные данные и прогоняет все проверки по порядку.
// now — текущий момент в бизнес-таймзоне ("бизнес-сегодня" считается от него).
func (v *Validator) ValidateBooking(input *BookingInput, now time.Time) (*ValidatedBooking, error) {
	result := &ValidatedBooking{
		CustomerName:  strings.TrimSpace(input.CustomerName),
		CustomerEmail: strings.ToLower(strings.TrimSpace(input.CustomerEmail)),
		CustomerPhone: strings.TrimSpace(input.CustomerPhone),
	}

	if err := validateName(result.CustomerName); err != nil {
		return nil, err
	}
	if err := validateEmail(result.CustomerEmail); err != nil {
		return nil, err
	}
	if err := validatePhone(result.CustomerPhone); err != nil {
		return nil, err
	}

	date, err := v.validateDate(strings.TrimSpace(input.Date), now)
	if err != nil {
		return nil, err
	}
	result.Date = date

	startTime, err := validateTime(strings.TrimSpace(input.StartTime))
	if err != nil {
		return nil, err
	}
	result.StartTime = startTime

	if err := v.validateOpenWeekday(date); err != nil {
		return nil, err
	}

	if input.Notes != nil {
		notes := strings.TrimSpace(*input.Notes)
		if len(notes) > domain.MaxNotesLength {
			return nil, fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidNotes, domain.MaxNotesLength)
		}
		if notes != "" {
			result.Notes = &notes
		}
	}

	return result, nil
}

func validateName(name string) error {
	if len(name) < domain.MinCustomerNameLength {
		return fmt.Errorf("%w: name must be at least %d characters", ErrInvalidName, domain.MinCustomerNameLength)
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidEmail)
	}
	if len(email) > domain.MaxEmailLength {
		return fmt.Errorf("%w: email must not exceed %d characters", ErrInvalidEmail, domain.MaxEmailLength)
	}
	if strings.Count(email, "@") != 1 || !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: expected format local@domain.tld", ErrInvalidEmail)
	}
	return nil
}

// validatePhone проверяет номер в международном формате
// Номер должен начинаться с "+", после удаления форматирования остаются только
// цифры; длина национального номера сверяется с таблицей кодов стран,
// для неизвестных кодов действует общее правило 8-15 цифр
func validatePhone(phone string) error {
	if !strings.HasPrefix(phone, "+") {
		return fmt.Errorf("%w: phone must start with + and a country code", ErrInvalidPhone)
	}

	digits := phoneStripper.Replace(phone[1:])
	if digits == "" {
		return fmt.Errorf("%w: phone must contain digits after +", ErrInvalidPhone)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: phone may contain only digits, spaces, dashes, dots and parentheses", ErrInvalidPhone)
		}
	}

	rule, known := lookupCountryPhoneRule(digits)
	if !known {
		if len(digits) < domain.MinGenericPhoneDigits || len(digits) > domain.MaxGenericPhoneDigits {
			return fmt.Errorf("%w: expected %d-%d digits total, got %d",
				ErrInvalidPhone, domain.MinGenericPhoneDigits, domain.MaxGenericPhoneDigits, len(digits))
		}
		return nil
	}

	national := len(digits) - len(rule.Code)
	if national < rule.MinDigits || national > rule.MaxDigits {
		if rule.MinDigits == rule.MaxDigits {
			return fmt.Errorf("%w: %s numbers must have %d digits after the country code, got %d",
				ErrInvalidPhone, rule.Country, rule.MinDigits, national)
		}
		return fmt.Errorf("%w: %s numbers must have %d-%d digits after the country code, got %d",
			ErrInvalidPhone, rule.Country, rule.MinDigits, rule.MaxDigits, national)
	}

	return nil
}

func (v *Validator) validateDate(raw string, now time.Time) (time.Time, error) {
	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil || date.Format(domain.DateFormat) != raw {
		return time.Time{}, fmt.Errorf("%w: expected format YYYY-MM-DD", ErrInvalidDate)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return time.Time{}, fmt.Errorf("%w: %s is before today", ErrDateInPast, raw)
	}

	if v.maxAdvanceDays > 0 {
		maxDate := today.AddDate(0, 0, v.maxAdvanceDays)
		if date.After(maxDate) {
			return time.Time{}, fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, v.maxAdvanceDays)
		}
	}

	return date, nil
}

func validateTime(raw string) (types.TimeString, error) {
	ts, err := types.NewTimeStringFromString(raw)
	if err != nil {
		return "", fmt.Errorf("%w: expected format HH:MM", ErrInvalidTime)
	}
	return ts, nil
}

func (v *Validator) validateOpenWeekday(date time.Time) error {
	weekday := date.Weekday()
	if !v.businessHours.ForWeekday(weekday).IsOpen {
		return fmt.Errorf("%w: closed on %ss", ErrClosedDay, strings.ToLower(weekday.String()))
	}
	return nil
}
