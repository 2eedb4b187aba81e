package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// timeLayout формат времени "HH:MM" (24-часовой, с ведущим нулём)
const timeLayout = "15:04"

var (
	// ErrInvalidTimeString возвращается при некорректном формате строки времени
	ErrInvalidTimeString = errors.New("types: invalid time string format, expected HH:MM")

	// ErrTimeOutOfRange возвращается, когда арифметика времени выходит за пределы суток
	ErrTimeOutOfRange = errors.New("types: time out of range")
)

// TimeString время суток в виде строки "HH:MM".
// Строки с ведущими нулями сравниваются лексикографически так же,
// как и хронологически, поэтому тип безопасно использовать как ключ сортировки.
type TimeString string

// endOfDay псевдовремя "конец суток", которое возвращает AddMinutes
// для интервалов, заканчивающихся ровно в полночь. Не парсится
// как время суток и обрабатывается отдельно.
const endOfDay = TimeString("24:00")

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString парсит и валидирует строку "HH:MM"
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	// Нормализуем к каноническому виду с ведущими нулями
	return TimeString(t.Format(timeLayout)), nil
}

// String возвращает строковое представление "HH:MM"
func (ts TimeString) String() string {
	return string(ts)
}

// Minutes возвращает количество минут с начала суток.
// "24:00" даёт 1440, чтобы арифметика от конца суток уходила
// в ErrTimeOutOfRange, а не заворачивалась на утро.
func (ts TimeString) Minutes() int {
	if ts == endOfDay {
		return 24 * 60
	}
	t, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return 0
	}
	return t.Hour()*60 + t.Minute()
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперёд.
// Выход за пределы суток считается ошибкой: бронирования не пересекают полночь.
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	total := ts.Minutes() + minutes
	if total < 0 || total > 24*60 {
		return "", fmt.Errorf("%w: %s + %d minutes", ErrTimeOutOfRange, ts, minutes)
	}
	// Конец суток представим для сравнения "не позже закрытия"
	if total == 24*60 {
		return endOfDay, nil
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore возвращает true, если ts строго раньше other
func (ts TimeString) IsBefore(other TimeString) bool {
	return string(ts) < string(other)
}

// IsAfter возвращает true, если ts строго позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	return string(ts) > string(other)
}

// Value реализует driver.Valuer для записи в БД
func (ts TimeString) Value() (driver.Value, error) {
	return string(ts), nil
}

// Scan реализует sql.Scanner для чтения из БД
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*ts = parsed
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*ts = parsed
	case time.Time:
		*ts = NewTimeString(v)
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidTimeString, src)
	}
	return nil
}
