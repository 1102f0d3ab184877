package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending          BookingStatus = "pending"
	StatusConfirmed        BookingStatus = "confirmed"
	StatusCheckedIn        BookingStatus = "checked_in"
	StatusCheckedOut       BookingStatus = "checked_out"
	StatusCancelledByGuest BookingStatus = "cancelled_by_guest"
	StatusCancelledByStaff BookingStatus = "cancelled_by_staff"
	StatusNoShow           BookingStatus = "no_show"
)

// BookingInterval уже сохранённое бронирование, используемое только
// для визуализации на штабном таймлайне. Интервал всегда полностью
// разрешён: корректность CheckIn < CheckOut — инвариант создания
// бронирования и гарантируется выше по потоку.
type BookingInterval struct {
	ID        int64
	BranchID  int64
	RoomID    int64
	GuestName string
	Status    BookingStatus
	CheckIn   time.Time
	CheckOut  time.Time
}

// IsActive returns true if the booking should appear on the timeline
func (b *BookingInterval) IsActive() bool {
	return b.Status != StatusCancelledByGuest &&
		b.Status != StatusCancelledByStaff &&
		b.Status != StatusNoShow
}

// Duration возвращает длительность интервала
func (b *BookingInterval) Duration() time.Duration {
	return b.CheckOut.Sub(b.CheckIn)
}

// OverlapsDay проверяет, что интервал пересекает видимое окно
// просматриваемого дня (с полуночи до полудня следующего дня)
func (b *BookingInterval) OverlapsDay(viewedDay time.Time) bool {
	dayStart := DateOnly(viewedDay)
	windowEnd := atHour(dayStart.AddDate(0, 0, 1), CheckOutHour)
	return b.CheckIn.Before(windowEnd) && b.CheckOut.After(dayStart)
}
