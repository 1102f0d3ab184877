package availability

import "errors"

var (
	// ErrBranchNotFound возвращается, когда филиал не известен сервису доступности
	ErrBranchNotFound = errors.New("branch not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("availability client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("availability client: invalid response")
)
