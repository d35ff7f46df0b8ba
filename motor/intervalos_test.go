// backend/motor/intervalos_test.go
package motor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmparejarDiaVacio(t *testing.T) {
	assert.Nil(t, EmparejarDia(nil))
	assert.Nil(t, EmparejarDia([]Registro{}))
}

func TestEmparejarDiaParCompleto(t *testing.T) {
	ivs := EmparejarDia([]Registro{
		reg(1, "09:00:00", Entrada),
		reg(2, "12:00:00", Salida),
		reg(3, "13:00:00", Entrada),
		reg(4, "17:00:00", Salida),
	})
	require.Len(t, ivs, 2)

	assert.Equal(t, 3.0, ivs[0].Duracion())
	assert.False(t, ivs[0].Ficticio)
	assert.Equal(t, 4.0, ivs[1].Duracion())
	assert.False(t, ivs[1].Ficticio)
}

func TestEmparejarDiaImparSintetizaSalida(t *testing.T) {
	ivs := EmparejarDia([]Registro{reg(1, "09:00:00", Entrada)})
	require.Len(t, ivs, 1)
	assert.Equal(t, FinDelDia, ivs[0].Salida)
	assert.True(t, ivs[0].Ficticio)
	assert.True(t, ivs[0].Valido())
}

func TestEmparejarDiaDesordenado(t *testing.T) {
	// El emparejamiento es posicional sobre (hora, id), no sobre el orden de
	// llegada del slice
	ivs := EmparejarDia([]Registro{
		reg(4, "17:00:00", Salida),
		reg(1, "09:00:00", Entrada),
		reg(3, "13:00:00", Entrada),
		reg(2, "12:00:00", Salida),
	})
	require.Len(t, ivs, 2)
	assert.Equal(t, "09:00:00", ivs[0].Entrada.String())
	assert.Equal(t, "12:00:00", ivs[0].Salida.String())
	assert.Equal(t, "13:00:00", ivs[1].Entrada.String())
	assert.Equal(t, "17:00:00", ivs[1].Salida.String())
}

func TestEmparejarDiaNoMutaLaEntrada(t *testing.T) {
	rs := []Registro{
		reg(2, "12:00:00", Salida),
		reg(1, "09:00:00", Entrada),
	}
	EmparejarDia(rs)
	assert.Equal(t, int64(2), rs[0].ID, "el slice original no debe reordenarse")
}

func TestIntervaloInvalidoNoAportaDuracion(t *testing.T) {
	iv := Intervalo{Fecha: "2025-03-10", Entrada: 12 * 3600, Salida: 9 * 3600}
	assert.False(t, iv.Valido())
	assert.Equal(t, 0.0, iv.Duracion())
}

func TestEmparejarPorDia(t *testing.T) {
	lunes := "2025-03-10"
	martes := "2025-03-11"
	rs := []Registro{
		{ID: 1, Fecha: lunes, Hora: 9 * 3600, Tipo: Entrada},
		{ID: 2, Fecha: lunes, Hora: 12 * 3600, Tipo: Salida},
		{ID: 3, Fecha: martes, Hora: 10 * 3600, Tipo: Entrada},
	}
	ivs := EmparejarPorDia(rs)
	require.Len(t, ivs, 2)
	assert.Equal(t, lunes, ivs[0].Fecha)
	assert.False(t, ivs[0].Ficticio)
	assert.Equal(t, martes, ivs[1].Fecha)
	assert.True(t, ivs[1].Ficticio, "la cola impar del martes se cierra ficticia")
}
