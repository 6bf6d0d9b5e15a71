package rules

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// civilDate trunca t a medianoche conservando su fecha de calendario (en UTC para evitar
// saltos por horario de verano al restar fechas).
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NextBirthday devuelve la próxima ocurrencia del mes/día de birthday en o después de la
// fecha de now, y los días de calendario que faltan. Si este año ya pasó, salta al siguiente.
// Un 29 de febrero en año no bisiesto cae el 1 de marzo (normalización de time.Date).
func NextBirthday(birthday, now time.Time) (time.Time, int) {
	today := civilDate(now)
	next := time.Date(today.Year(), birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(today) {
		next = time.Date(today.Year()+1, birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
	}
	return next, int(next.Sub(today) / day)
}

// DaysSince días completos transcurridos entre t y now (división entera).
func DaysSince(t, now time.Time) int {
	return int(now.Sub(t) / day)
}

// HoursSince horas completas transcurridas entre t y now.
func HoursSince(t, now time.Time) int {
	return int(now.Sub(t) / time.Hour)
}

// CeilDays días hacia adelante redondeando hacia arriba el delta en milisegundos.
func CeilDays(d time.Duration) int {
	return int(math.Ceil(float64(d.Milliseconds()) / float64(day.Milliseconds())))
}
