package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/llbeautybar/salon-booking-service/pkg/types"
)

var (
	// ErrInvalidSchedule возвращается при некорректном расписании мастера
	ErrInvalidSchedule = errors.New("domain: invalid work schedule")
)

// Дни недели в нижнем регистре — ключи шаблона рабочих часов
const (
	Monday    = "monday"
	Tuesday   = "tuesday"
	Wednesday = "wednesday"
	Thursday  = "thursday"
	Friday    = "friday"
	Saturday  = "saturday"
	Sunday    = "sunday"
)

var weekdayNames = map[time.Weekday]string{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

// WeekdayName возвращает ключ дня недели для даты ("monday".."sunday")
func WeekdayName(date time.Time) string {
	return weekdayNames[date.Weekday()]
}

// DayHours интервал работы мастера в течение дня
type DayHours struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

// WorkSchedule шаблон рабочих часов мастера: день недели -> интервал.
// Отсутствие ключа означает выходной день.
type WorkSchedule map[string]DayHours

// Day возвращает интервал работы на указанный день недели,
// nil — если день не настроен (выходной)
func (s WorkSchedule) Day(weekday string) *DayHours {
	if s == nil {
		return nil
	}
	hours, ok := s[weekday]
	if !ok {
		return nil
	}
	return &hours
}

// Validate проверяет ключи и формат интервалов шаблона.
// Некорректные шаблоны отклоняются на границе хранилища,
// а не внутри движка слотов.
func (s WorkSchedule) Validate() error {
	for day, hours := range s {
		if _, ok := validDays[day]; !ok {
			return fmt.Errorf("%w: unknown weekday %q", ErrInvalidSchedule, day)
		}
		if _, err := types.NewTimeStringFromString(hours.Start.String()); err != nil {
			return fmt.Errorf("%w: %s start: %v", ErrInvalidSchedule, day, err)
		}
		if _, err := types.NewTimeStringFromString(hours.End.String()); err != nil {
			return fmt.Errorf("%w: %s end: %v", ErrInvalidSchedule, day, err)
		}
	}
	return nil
}

var validDays = map[string]struct{}{
	Monday: {}, Tuesday: {}, Wednesday: {}, Thursday: {},
	Friday: {}, Saturday: {}, Sunday: {},
}

// Value реализует driver.Valuer — расписание хранится в JSONB
func (s WorkSchedule) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan реализует sql.Scanner с валидацией на границе хранилища
func (s *WorkSchedule) Scan(src interface{}) error {
	if src == nil {
		*s = nil
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidSchedule, src)
	}

	var parsed WorkSchedule
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}
	if err := parsed.Validate(); err != nil {
		return err
	}

	*s = parsed
	return nil
}
