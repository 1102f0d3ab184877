package window

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (неизвестный тариф, нечитаемая дата или время)
	ErrInvalidInput = errors.New("invalid input data")

	// ErrIncompleteInput возвращается, когда форма ещё не заполнена
	// для активного тарифа. Это не сбой: вызывающая сторона должна
	// показать недоступное действие, а не ошибку пользователю.
	ErrIncompleteInput = errors.New("booking input is incomplete")
)
