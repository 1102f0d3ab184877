package types

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidTimeFormat возвращается при некорректном формате времени
	ErrInvalidTimeFormat = errors.New("types: invalid time format, expected HH:MM")

	// ErrTimeOutOfRange возвращается, когда результат операции выходит за пределы суток
	ErrTimeOutOfRange = errors.New("types: time out of range")
)

// TimeString время дня в формате "HH:MM" (без даты и часового пояса)
type TimeString string

// NewTimeString создает TimeString из time.Time, отбрасывая дату
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString парсит строку "HH:MM" и валидирует диапазоны
func NewTimeStringFromString(s string) (TimeString, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", hour, minute)), nil
}

// NewTimeStringFromHour создает TimeString для ровного часа
func NewTimeStringFromHour(hour int) TimeString {
	return TimeString(fmt.Sprintf("%02d:00", hour))
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// Hour возвращает час (0-23)
func (t TimeString) Hour() int {
	return t.minutes() / 60
}

// Minute возвращает минуты внутри часа (0-59)
func (t TimeString) Minute() int {
	return t.minutes() % 60
}

// Minutes возвращает количество минут от полуночи
func (t TimeString) Minutes() int {
	return t.minutes()
}

// IsBefore проверяет, что время строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.minutes() < other.minutes()
}

// IsAfter проверяет, что время строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.minutes() > other.minutes()
}

// AddMinutes возвращает время, сдвинутое на m минут вперед.
// Выход за пределы суток считается ошибкой, а не переносом на следующий день.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	total := t.minutes() + m
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %s + %d min", ErrTimeOutOfRange, t, m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// minutes парсит внутреннее представление; для значений, созданных через
// конструкторы, ошибка невозможна, битые значения трактуются как 00:00
func (t TimeString) minutes() int {
	var hour, minute int
	if _, err := fmt.Sscanf(string(t), "%d:%d", &hour, &minute); err != nil {
		return 0
	}
	return hour*60 + minute
}
