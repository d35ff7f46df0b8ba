// backend/motor/hora_test.go
package motor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHora(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado Hora
	}{
		{"00:00:00", 0},
		{"09:00:00", 9 * 3600},
		{"9:00", 9 * 3600},
		{"13:30", 13*3600 + 30*60},
		{"23:59:59", FinDelDia},
	}
	for _, c := range casos {
		h, err := ParseHora(c.entrada)
		require.NoError(t, err, "hora %q", c.entrada)
		assert.Equal(t, c.esperado, h, "hora %q", c.entrada)
	}
}

func TestParseHoraMalformada(t *testing.T) {
	for _, s := range []string{"", "mediodía", "25:00:00", "12:61", "-1:00"} {
		_, err := ParseHora(s)
		require.Error(t, err, "hora %q debería fallar", s)
		assert.ErrorIs(t, err, ErrRegistroMalformado)
	}
}

func TestHoraString(t *testing.T) {
	h, err := ParseHora("09:05:07")
	require.NoError(t, err)
	assert.Equal(t, "09:05:07", h.String())
	assert.Equal(t, "23:59:59", FinDelDia.String())
}

func TestHoraHoras(t *testing.T) {
	assert.Equal(t, 1.5, Hora(90*60).Horas())
}

func TestHoraDe(t *testing.T) {
	tt := time.Date(2025, 3, 10, 14, 30, 15, 0, time.UTC)
	assert.Equal(t, Hora(14*3600+30*60+15), HoraDe(tt))
}

func TestDiaEnEspanol(t *testing.T) {
	// 2025-03-10 fue lunes
	assert.Equal(t, "lunes", DiaEnEspanol(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "domingo", DiaEnEspanol(time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)))
}

func TestNormalizarDia(t *testing.T) {
	assert.Equal(t, "lunes", NormalizarDia("Lunes"))
	assert.Equal(t, "lunes", NormalizarDia("Monday"))
	assert.Equal(t, "miércoles", NormalizarDia("wednesday"))
	assert.Equal(t, "sábado", NormalizarDia("sábado"))
}
