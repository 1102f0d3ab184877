package domain

import (
	"time"

	"github.com/m04kA/SMC-HotelBookingService/pkg/types"
)

// RawBookingInput сырые поля формы бронирования.
// Какие поля обязательны, определяет активный тариф:
// Date нужна всегда, EndDate — только для DAILY,
// CheckInTime и DurationHours — только для HOURLY.
type RawBookingInput struct {
	Date          time.Time
	EndDate       *time.Time
	CheckInTime   *types.TimeString
	DurationHours *int
}

// TimeWindow represents the canonical check-in/check-out window
// Для HOURLY CheckOut не материализуется — окно хранит длительность,
// а каноничный выезд доступен через EffectiveCheckOut
type TimeWindow struct {
	CheckIn  time.Time
	CheckOut *time.Time
	Hours    *int
}

// EffectiveCheckOut возвращает каноничное время выезда.
// Единственная формула для всех потребителей: для HOURLY это CheckIn + Hours,
// для остальных тарифов — материализованный CheckOut.
func (w TimeWindow) EffectiveCheckOut() time.Time {
	if w.CheckOut != nil {
		return *w.CheckOut
	}
	if w.Hours != nil {
		return w.CheckIn.Add(time.Duration(*w.Hours) * time.Hour)
	}
	return w.CheckIn
}

// ResolveWindow переводит выбор тарифа и сырые поля формы в каноничное окно.
// Второй результат false означает "данные неполные": это не ошибка,
// форма ещё не готова к запросу доступности. Значения вне наборов-кандидатов
// тоже дают неполный результат, а не ошибку.
func ResolveWindow(m Modality, in RawBookingInput) (TimeWindow, bool) {
	switch m {
	case ModalityHourly:
		return resolveHourly(in)
	case ModalityOvernight:
		return resolveOvernight(in)
	case ModalityDaily:
		return resolveDaily(in)
	default:
		return TimeWindow{}, false
	}
}

// resolveHourly требует дату, время заезда из набора-кандидата и длительность
func resolveHourly(in RawBookingInput) (TimeWindow, bool) {
	if in.Date.IsZero() || in.CheckInTime == nil || in.DurationHours == nil {
		return TimeWindow{}, false
	}
	if !IsHourlyCheckInTime(*in.CheckInTime) || !IsHourlyDuration(*in.DurationHours) {
		return TimeWindow{}, false
	}

	hours := *in.DurationHours
	return TimeWindow{
		CheckIn: atHour(in.Date, in.CheckInTime.Hour()),
		Hours:   &hours,
	}, true
}

// resolveOvernight требует только дату: заезд в 21:00, выезд в полдень следующего дня.
// Остальные поля формы в расчёте не участвуют, даже если остались от другого тарифа.
func resolveOvernight(in RawBookingInput) (TimeWindow, bool) {
	if in.Date.IsZero() {
		return TimeWindow{}, false
	}

	checkOut := atHour(in.Date.AddDate(0, 0, 1), CheckOutHour)
	return TimeWindow{
		CheckIn:  atHour(in.Date, OvernightCheckInHour),
		CheckOut: &checkOut,
	}, true
}

// resolveDaily требует дату заезда и строго более позднюю (по календарю) дату выезда
func resolveDaily(in RawBookingInput) (TimeWindow, bool) {
	if in.Date.IsZero() || in.EndDate == nil {
		return TimeWindow{}, false
	}
	if !DateOnly(*in.EndDate).After(DateOnly(in.Date)) {
		return TimeWindow{}, false
	}

	checkOut := atHour(*in.EndDate, CheckOutHour)
	return TimeWindow{
		CheckIn:  atHour(in.Date, DailyCheckInHour),
		CheckOut: &checkOut,
	}, true
}

// NormalizeInput очищает поля, не участвующие в активном тарифе.
// При переключении тарифа форма хранит старые значения, и они не должны
// протекать в расчёт окна. Для DAILY дополнительно сбрасывается дата выезда,
// оказавшаяся не позже даты заезда, вместо построения перевёрнутого окна.
func NormalizeInput(m Modality, in RawBookingInput) RawBookingInput {
	switch m {
	case ModalityHourly:
		in.EndDate = nil
	case ModalityOvernight:
		in.EndDate = nil
		in.CheckInTime = nil
		in.DurationHours = nil
	case ModalityDaily:
		in.CheckInTime = nil
		in.DurationHours = nil
		if in.EndDate != nil && !in.Date.IsZero() && !DateOnly(*in.EndDate).After(DateOnly(in.Date)) {
			in.EndDate = nil
		}
	}
	return in
}

// DefaultHourlyInput подбирает предзаполнение почасовой формы:
// ближайший разумный слот, с переносом на завтра только после того,
// как последний слот сегодняшнего дня прошёл.
func DefaultHourlyInput(now time.Time) (time.Time, types.TimeString) {
	h := now.Hour()
	if h >= OvernightCheckInHour {
		return DateOnly(now).AddDate(0, 0, 1), types.NewTimeStringFromHour(HourlyFirstCheckInHour)
	}

	candidate := h + 1
	if candidate >= HourlyFirstCheckInHour && candidate <= HourlyLastCheckInHour {
		return DateOnly(now), types.NewTimeStringFromHour(candidate)
	}
	return DateOnly(now), types.NewTimeStringFromHour(HourlyFirstCheckInHour)
}

// IsHourlyCheckInTime проверяет принадлежность времени заезда набору-кандидату
// (ровные часы с 13:00 по 20:00)
func IsHourlyCheckInTime(t types.TimeString) bool {
	return t.Minute() == 0 &&
		t.Hour() >= HourlyFirstCheckInHour &&
		t.Hour() <= HourlyLastCheckInHour
}

// IsHourlyDuration проверяет принадлежность длительности набору-кандидату (1-6 часов)
func IsHourlyDuration(hours int) bool {
	return hours >= MinHourlyDuration && hours <= MaxHourlyDuration
}

// HourlyCheckInTimes возвращает упорядоченный набор доступных времён заезда
func HourlyCheckInTimes() []types.TimeString {
	times := make([]types.TimeString, 0, HourlyLastCheckInHour-HourlyFirstCheckInHour+1)
	for h := HourlyFirstCheckInHour; h <= HourlyLastCheckInHour; h++ {
		times = append(times, types.NewTimeStringFromHour(h))
	}
	return times
}

// HourlyDurations возвращает упорядоченный набор доступных длительностей
func HourlyDurations() []int {
	durations := make([]int, 0, MaxHourlyDuration-MinHourlyDuration+1)
	for h := MinHourlyDuration; h <= MaxHourlyDuration; h++ {
		durations = append(durations, h)
	}
	return durations
}

// DateOnly обнуляет время, оставляя только календарную дату
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// atHour возвращает инстант в заданный ровный час указанной календарной даты
func atHour(date time.Time, hour int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
}

// isSameDay проверяет, что два инстанта относятся к одному календарному дню
func isSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
