package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownModality возвращается при неизвестном тарифе бронирования
var ErrUnknownModality = errors.New("unknown booking modality")

// Modality represents the booking modality (tariff style)
// Закрытое множество: тарифы взаимоисключающие и не комбинируются
type Modality string

const (
	ModalityHourly    Modality = "hourly"
	ModalityOvernight Modality = "overnight"
	ModalityDaily     Modality = "daily"
)

// ParseModality парсит строковое представление тарифа
func ParseModality(s string) (Modality, error) {
	switch Modality(s) {
	case ModalityHourly, ModalityOvernight, ModalityDaily:
		return Modality(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownModality, s)
	}
}

// IsValid returns true if the modality belongs to the closed set
func (m Modality) IsValid() bool {
	switch m {
	case ModalityHourly, ModalityOvernight, ModalityDaily:
		return true
	default:
		return false
	}
}

// String возвращает строковое представление тарифа
func (m Modality) String() string {
	return string(m)
}
