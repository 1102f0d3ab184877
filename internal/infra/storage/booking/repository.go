package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelBookingService/pkg/psqlbuilder"
)

// Repository read-only репозиторий бронирований для штабного таймлайна.
// Создание и изменение бронирований принадлежит сервису бронирования,
// этот сервис их только визуализирует.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByBranchForDay возвращает активные бронирования филиала, пересекающие
// видимое окно просматриваемого дня: с полуночи до полудня следующего дня
func (r *Repository) ListByBranchForDay(ctx context.Context, branchID int64, day time.Time) ([]*domain.BookingInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	dayStart := domain.DateOnly(day)
	windowEnd := time.Date(dayStart.Year(), dayStart.Month(), dayStart.Day()+1,
		domain.CheckOutHour, 0, 0, 0, dayStart.Location())

	query, args, err := psqlbuilder.Select(
		"id",
		"branch_id",
		"room_id",
		"guest_name",
		"status",
		"check_in",
		"check_out",
	).
		From("bookings").
		Where(squirrel.Eq{"branch_id": branchID}).
		Where(squirrel.Lt{"check_in": windowEnd}).
		Where(squirrel.Gt{"check_out": dayStart}).
		Where(squirrel.NotEq{"status": domain.InactiveStatuses}).
		OrderBy("room_id", "check_in").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBranchForDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBranchForDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanIntervals(rows)
}

// scanIntervals сканирует строки результата в доменные интервалы
func scanIntervals(rows *sql.Rows) ([]*domain.BookingInterval, error) {
	intervals := make([]*domain.BookingInterval, 0)

	for rows.Next() {
		var interval domain.BookingInterval
		if err := rows.Scan(
			&interval.ID,
			&interval.BranchID,
			&interval.RoomID,
			&interval.GuestName,
			&interval.Status,
			&interval.CheckIn,
			&interval.CheckOut,
		); err != nil {
			return nil, fmt.Errorf("%w: scanIntervals: %v", ErrScanRow, err)
		}
		intervals = append(intervals, &interval)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanIntervals - rows iteration: %v", ErrScanRow, err)
	}

	return intervals, nil
}
