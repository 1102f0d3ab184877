package domain

// Кандидаты для почасового тарифа
const (
	HourlyFirstCheckInHour = 13 // первый доступный час заезда
	HourlyLastCheckInHour  = 20 // последний доступный час заезда
	MinHourlyDuration      = 1  // минимальная длительность, часов
	MaxHourlyDuration      = 6  // максимальная длительность, часов
)

// Фиксированные часы заезда и выезда для суточных тарифов
const (
	OvernightCheckInHour = 21
	DailyCheckInHour     = 14
	CheckOutHour         = 12 // полдень — расчётный час выезда для overnight и daily
)

// Сетка штабного таймлайна: 12 колонок на просматриваемый день.
// Колонка 1 покрывает всё до 12:00, колонки 2-11 — часы с 12:00 до 21:00,
// колонка 12 — с 22:00 до полудня следующего дня.
const (
	GridColumns        = 12
	GridSentinelColumn = GridColumns + 1 // граница "ушло за край", не рисуется
	GridFirstHour      = 12              // начало колонки 2
	GridLastHour       = 22              // всё позже попадает в последнюю колонку
)

// Видимое окно индикатора текущего времени: 11:00-22:00
const (
	VisibleStartMinute = 11 * 60
	VisibleEndMinute   = 22 * 60
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, исключаемых из таймлайна
// Используется для фильтрации при выборке бронирований на визуализацию
var InactiveStatuses = []BookingStatus{
	StatusCancelledByGuest,
	StatusCancelledByStaff,
	StatusNoShow,
}
