// backend/motor/horas_test.go
package motor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAcumularHorasVacio(t *testing.T) {
	a := AcumularHoras(nil)
	assert.Equal(t, 0.0, a.HorasTotales)
	assert.Equal(t, 0, a.Dias)
	assert.Equal(t, 0.0, a.DiasEquivalentes)
}

func TestAcumularHoras(t *testing.T) {
	ivs := []Intervalo{
		{Fecha: "2025-03-10", Entrada: hora("09:00:00"), Salida: hora("12:00:00")},
		{Fecha: "2025-03-10", Entrada: hora("13:00:00"), Salida: hora("17:00:00")},
		{Fecha: "2025-03-11", Entrada: hora("10:00:00"), Salida: hora("11:00:00")},
	}
	a := AcumularHoras(ivs)
	assert.InDelta(t, 8.0, a.HorasTotales, 1e-9)
	assert.Equal(t, 0.0, a.HorasFicticias)
	assert.Equal(t, 2, a.Dias)
	assert.InDelta(t, 1.0, a.DiasEquivalentes, 1e-9)
}

func TestAcumularHorasDesglosaFicticias(t *testing.T) {
	ivs := []Intervalo{
		{Fecha: "2025-03-10", Entrada: hora("09:00:00"), Salida: hora("12:00:00")},
		{Fecha: "2025-03-11", Entrada: hora("22:00:00"), Salida: FinDelDia, Ficticio: true},
	}
	a := AcumularHoras(ivs)
	assert.InDelta(t, 3.0+FinDelDia.Horas()-22.0, a.HorasTotales, 1e-9)
	assert.InDelta(t, FinDelDia.Horas()-22.0, a.HorasFicticias, 1e-9)
	assert.Equal(t, 2, a.Dias)
}

func TestAcumularHorasDescartaInvalidos(t *testing.T) {
	ivs := []Intervalo{
		{Fecha: "2025-03-10", Entrada: hora("12:00:00"), Salida: hora("09:00:00")},
		{Fecha: "2025-03-10", Entrada: hora("10:00:00"), Salida: hora("10:00:00")},
	}
	a := AcumularHoras(ivs)
	assert.Equal(t, 0.0, a.HorasTotales)
	assert.Equal(t, 0, a.Dias, "una fecha sin intervalos válidos no cuenta como día")
}

func TestAcumularHorasConmutativa(t *testing.T) {
	ivs := []Intervalo{
		{Fecha: "2025-03-10", Entrada: hora("09:00:00"), Salida: hora("12:00:00")},
		{Fecha: "2025-03-11", Entrada: hora("13:00:00"), Salida: hora("17:00:00")},
		{Fecha: "2025-03-12", Entrada: hora("08:00:00"), Salida: hora("09:30:00")},
	}
	invertido := []Intervalo{ivs[2], ivs[1], ivs[0]}
	assert.Equal(t, AcumularHoras(ivs), AcumularHoras(invertido))
}
