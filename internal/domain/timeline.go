package domain

import "time"

// GridPosition позиция и ширина полосы бронирования в процентах ширины сетки
type GridPosition struct {
	LeftPercent  float64
	WidthPercent float64
}

// NowIndicator положение маркера текущего времени на таймлайне.
// Невидим, если просматриваемый день не сегодняшний или текущее время
// вне окна 11:00-22:00.
type NowIndicator struct {
	Visible bool
	Percent float64
}

// ProjectToGrid проецирует интервал бронирования на фиксированную
// 12-колоночную сетку просматриваемого дня. Начало, выпавшее за левую
// границу дня, прижимается к первой колонке; конец, ушедший за 22:00,
// прижимается к sentinel-границе. Минимальная видимая ширина — одна колонка.
func ProjectToGrid(interval BookingInterval, viewedDay time.Time) GridPosition {
	start := startColumn(interval.CheckIn, viewedDay)
	end := endColumn(interval.CheckOut, viewedDay)

	if start > GridColumns {
		start = GridColumns
	}
	if end > GridSentinelColumn {
		end = GridSentinelColumn
	}
	if end-start < 1 {
		end = start + 1
	}

	return GridPosition{
		LeftPercent:  float64(start-1) / GridColumns * 100,
		WidthPercent: float64(end-start) / GridColumns * 100,
	}
}

// NowIndicatorAt вычисляет положение маркера текущего времени.
// На 11:00 это ровно 0%, на 22:00 — ровно 100%.
func NowIndicatorAt(now, viewedDay time.Time) NowIndicator {
	if !isSameDay(now, viewedDay) {
		return NowIndicator{}
	}

	minutes := now.Hour()*60 + now.Minute()
	if minutes < VisibleStartMinute || minutes > VisibleEndMinute {
		return NowIndicator{}
	}

	progress := float64(minutes-VisibleStartMinute) / float64(VisibleEndMinute-VisibleStartMinute)
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}

	return NowIndicator{Visible: true, Percent: progress * 100}
}

// startColumn переводит начало интервала в номер колонки.
// До начала дня — колонка 1 (клип слева), час < 12 — колонка 1,
// часы 12-21 — колонки 2-11, час >= 22 — колонка 12.
func startColumn(t time.Time, viewedDay time.Time) int {
	dayStart := DateOnly(viewedDay)
	if t.Before(dayStart) {
		return 1
	}
	if !t.Before(dayStart.AddDate(0, 0, 1)) {
		// Начало на следующий день: прижимаем к последней колонке
		return GridColumns
	}
	return hourColumn(t.Hour())
}

// endColumn переводит конец интервала в номер колонки по тому же правилу,
// но с доступом к sentinel-границе: всё, что позже 22:00 просматриваемого дня,
// прижимается к 13. Минуты на стороне конца двигают колонку на одну дальше
// (ceil), чтобы бронирование, заканчивающееся в 14:30, целиком занимало
// колонку 14:00.
func endColumn(t time.Time, viewedDay time.Time) int {
	dayStart := DateOnly(viewedDay)
	if t.After(atHour(dayStart, GridLastHour)) {
		return GridSentinelColumn
	}
	if !t.After(dayStart) {
		return 1
	}

	col := hourColumn(t.Hour())
	if t.Minute() > 0 || t.Second() > 0 {
		col++
	}
	return col
}

// hourColumn маппинг часа дня в колонку сетки
func hourColumn(hour int) int {
	if hour < GridFirstHour {
		return 1
	}
	if hour >= GridLastHour {
		return GridColumns
	}
	return hour - GridFirstHour + 2
}
