package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Config конфигурация сервиса, загружаемая из config.toml
type Config struct {
	Server           ServerConfig           `toml:"server"`
	Logs             LogsConfig             `toml:"logs"`
	Database         DatabaseConfig         `toml:"database"`
	Metrics          MetricsConfig          `toml:"metrics"`
	DirectoryService DirectoryServiceConfig `toml:"directory_service"`
	Booking          BookingConfig          `toml:"booking"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DirectoryServiceConfig настройки клиента DirectoryService
// (справочник услуг, мастеров и праздничных дней)
type DirectoryServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// BookingConfig политики бронирования
type BookingConfig struct {
	MaxAdvanceBookingDays         int `toml:"max_advance_booking_days"`
	DefaultServiceDurationMinutes int `toml:"default_service_duration_minutes"`
	SlotStepMinutes               int `toml:"slot_step_minutes"`

	// TimezoneOffsetMinutes смещение бизнес-таймзоны от UTC в минутах
	// (знаковая конвенция getTimezoneOffset: 300 = UTC-5)
	TimezoneOffsetMinutes int `toml:"timezone_offset_minutes"`

	BusinessHours BusinessHoursConfig `toml:"business_hours"`
}

// BusinessHoursConfig рабочие часы по дням недели
// Отсутствие секции для дня означает, что бизнес закрыт
type BusinessHoursConfig struct {
	Monday    *DayHours `toml:"monday"`
	Tuesday   *DayHours `toml:"tuesday"`
	Wednesday *DayHours `toml:"wednesday"`
	Thursday  *DayHours `toml:"thursday"`
	Friday    *DayHours `toml:"friday"`
	Saturday  *DayHours `toml:"saturday"`
	Sunday    *DayHours `toml:"sunday"`
}

// DayHours окно открытия на один день
type DayHours struct {
	Open  string `toml:"open"`
	Close string `toml:"close"`
}

// Load загружает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Database: DatabaseConfig{
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "appointment-service",
		},
		DirectoryService: DirectoryServiceConfig{
			Timeout: 5,
		},
		Booking: BookingConfig{
			MaxAdvanceBookingDays:         domain.DefaultMaxAdvanceBookingDays,
			DefaultServiceDurationMinutes: domain.DefaultServiceDurationMinutes,
			SlotStepMinutes:               domain.DefaultSlotStepMinutes,
			TimezoneOffsetMinutes:         domain.DefaultTimezoneOffsetMinutes,
		},
	}
}

func (c *Config) validate() error {
	if c.Booking.SlotStepMinutes <= 0 {
		return fmt.Errorf("booking.slot_step_minutes must be positive")
	}
	if c.Booking.DefaultServiceDurationMinutes <= 0 {
		return fmt.Errorf("booking.default_service_duration_minutes must be positive")
	}
	if c.Booking.MaxAdvanceBookingDays < 0 {
		return fmt.Errorf("booking.max_advance_booking_days must not be negative")
	}
	if _, err := c.Booking.DomainBusinessHours(); err != nil {
		return err
	}
	return nil
}

// DomainBusinessHours конвертирует конфигурацию рабочих часов в доменную модель
func (b BookingConfig) DomainBusinessHours() (domain.BusinessHours, error) {
	var hours domain.BusinessHours

	days := []struct {
		name string
		cfg  *DayHours
		dst  *domain.DaySchedule
	}{
		{"monday", b.BusinessHours.Monday, &hours.Monday},
		{"tuesday", b.BusinessHours.Tuesday, &hours.Tuesday},
		{"wednesday", b.BusinessHours.Wednesday, &hours.Wednesday},
		{"thursday", b.BusinessHours.Thursday, &hours.Thursday},
		{"friday", b.BusinessHours.Friday, &hours.Friday},
		{"saturday", b.BusinessHours.Saturday, &hours.Saturday},
		{"sunday", b.BusinessHours.Sunday, &hours.Sunday},
	}

	for _, day := range days {
		if day.cfg == nil {
			*day.dst = domain.DaySchedule{IsOpen: false}
			continue
		}

		open, err := types.NewTimeStringFromString(day.cfg.Open)
		if err != nil {
			return hours, fmt.Errorf("business_hours.%s.open: %w", day.name, err)
		}
		closeTime, err := types.NewTimeStringFromString(day.cfg.Close)
		if err != nil {
			return hours, fmt.Errorf("business_hours.%s.close: %w", day.name, err)
		}
		if !open.IsBefore(closeTime) {
			return hours, fmt.Errorf("business_hours.%s: open must be before close", day.name)
		}

		*day.dst = domain.DaySchedule{
			IsOpen:    true,
			OpenTime:  &open,
			CloseTime: &closeTime,
		}
	}

	return hours, nil
}
