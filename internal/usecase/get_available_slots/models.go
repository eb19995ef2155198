package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceID int64     // ID услуги
	StaffID   *int64    // Фильтр по мастеру (опционально)
	Date      time.Time // Дата для получения слотов (без времени)

	// TimezoneOffsetMinutes смещение часового пояса клиента от UTC в минутах
	// (знаковая конвенция getTimezoneOffset). Если не задано, используется
	// смещение бизнес-таймзоны из конфигурации
	TimezoneOffsetMinutes *int
}

// Response модель ответа со списком слотов
type Response struct {
	Date      time.Time // Дата, на которую запрашивались слоты
	ServiceID int64     // ID услуги
	StaffID   *int64    // Фильтр по мастеру, если был задан
	Slots     []Slot    // Слоты по возрастанию времени начала
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Длительность слота в минутах
	Available       bool             // Свободен ли слот
}

// Policy статические политики генерации слотов из конфигурации
type Policy struct {
	BusinessHours          domain.BusinessHours
	SlotStepMinutes        int
	DefaultDurationMinutes int
	DefaultTimezoneOffset  int
}
