package tracking

import (
	"fmt"
	"math"
	"time"
)

const (
	arrivalUnknown   = "No disponible"
	arrivalScheduled = "Entrega programada"
)

// EstimatedArrival возвращает текст ориентировочного прибытия.
// Часы округляются вверх, от 24 часов считаются дни.
func EstimatedArrival(deliveryDate, now time.Time) string {
	if deliveryDate.IsZero() {
		return arrivalUnknown
	}

	diffHours := int(math.Ceil(deliveryDate.Sub(now).Hours()))
	if diffHours <= 0 {
		return arrivalScheduled
	}
	if diffHours < 24 {
		return fmt.Sprintf("Aproximadamente %d horas", diffHours)
	}

	diffDays := int(math.Ceil(float64(diffHours) / 24))
	if diffDays > 1 {
		return fmt.Sprintf("Aproximadamente %d días", diffDays)
	}
	return fmt.Sprintf("Aproximadamente %d día", diffDays)
}
