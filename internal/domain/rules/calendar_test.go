package rules_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sunstone-app/sunstone-api/internal/domain/rules"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextBirthday_MismoAnio(t *testing.T) {
	now := time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)
	next, n := rules.NextBirthday(date(1990, time.March, 13), now)

	assert.Equal(t, date(2026, time.March, 13), next)
	assert.Equal(t, 3, n)
}

func TestNextBirthday_Hoy(t *testing.T) {
	now := time.Date(2026, time.March, 10, 23, 59, 0, 0, time.UTC)
	_, n := rules.NextBirthday(date(1985, time.March, 10), now)

	assert.Equal(t, 0, n, "el cumpleaños de hoy cuenta como 0 días")
}

// Cumpleaños anterior a hoy en el calendario: salta al año siguiente.
func TestNextBirthday_SaltaAlAnioSiguiente(t *testing.T) {
	now := date(2026, time.December, 25)
	next, n := rules.NextBirthday(date(2000, time.January, 2), now)

	assert.Equal(t, date(2027, time.January, 2), next)
	assert.Equal(t, 8, n)
}

func TestNextBirthday_29FebreroEnAnioNoBisiesto(t *testing.T) {
	now := date(2026, time.February, 20)
	next, n := rules.NextBirthday(date(2004, time.February, 29), now)

	assert.Equal(t, date(2026, time.March, 1), next)
	assert.Equal(t, 9, n)
}

func TestCeilDays(t *testing.T) {
	assert.Equal(t, 1, rules.CeilDays(time.Millisecond))
	assert.Equal(t, 1, rules.CeilDays(24*time.Hour))
	assert.Equal(t, 2, rules.CeilDays(24*time.Hour+time.Millisecond))
	assert.Equal(t, 0, rules.CeilDays(0))
	assert.Equal(t, 0, rules.CeilDays(-time.Hour))
}

func TestDaysSince_TruncaDiasIncompletos(t *testing.T) {
	now := date(2026, time.June, 10)
	assert.Equal(t, 95, rules.DaysSince(now.AddDate(0, 0, -95), now))
	assert.Equal(t, 0, rules.DaysSince(now.Add(-23*time.Hour), now))
}
