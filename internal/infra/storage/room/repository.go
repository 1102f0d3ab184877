package room

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelBookingService/pkg/psqlbuilder"
)

// Repository read-only репозиторий номеров филиала
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория номеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByBranch возвращает номера филиала вместе с названием типа.
// Сортировка по порядку типа и номеру задаёт порядок отображения
// на таймлайне: группировка по типу сохраняет первый встреченный порядок.
func (r *Repository) ListByBranch(ctx context.Context, branchID int64) ([]domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"r.id",
		"r.branch_id",
		"r.number",
		"r.room_type_id",
		"rt.name",
	).
		From("rooms r").
		Join("room_types rt ON rt.id = r.room_type_id").
		Where(squirrel.Eq{"r.branch_id": branchID}).
		OrderBy("rt.sort_order", "r.number").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBranch - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBranch - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rooms := make([]domain.Room, 0)
	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(
			&room.ID,
			&room.BranchID,
			&room.Number,
			&room.TypeID,
			&room.TypeName,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByBranch: %v", ErrScanRow, err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBranch - rows iteration: %v", ErrScanRow, err)
	}

	return rooms, nil
}
