package search_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrIncompleteInput возвращается, когда форма не заполнена для
	// активного тарифа: запрос к сервису доступности не выполняется
	ErrIncompleteInput = errors.New("booking input is incomplete")

	// ErrBranchNotFound возвращается, когда филиал не найден
	ErrBranchNotFound = errors.New("branch not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
