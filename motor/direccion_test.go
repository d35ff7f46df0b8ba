// backend/motor/direccion_test.go
package motor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func reg(id int64, hora string, tipo Tipo) Registro {
	h, err := ParseHora(hora)
	if err != nil {
		panic(err)
	}
	return Registro{ID: id, Fecha: "2025-03-10", Hora: h, Tipo: tipo}
}

func TestResolverTipoPrimerEscaneo(t *testing.T) {
	assert.Equal(t, Entrada, ResolverTipo(nil))
	assert.Equal(t, Entrada, ResolverTipo([]Registro{}))
}

func TestResolverTipoAlterna(t *testing.T) {
	hoy := []Registro{reg(1, "09:00:00", Entrada)}
	assert.Equal(t, Salida, ResolverTipo(hoy))

	hoy = append(hoy, reg(2, "12:00:00", Salida))
	assert.Equal(t, Entrada, ResolverTipo(hoy))

	hoy = append(hoy, reg(3, "13:00:00", Entrada))
	assert.Equal(t, Salida, ResolverTipo(hoy))
}

func TestResolverTipoUsaElUltimoPorHoraEId(t *testing.T) {
	// Registros desordenados: manda el más reciente, no el último del slice
	hoy := []Registro{
		reg(2, "12:00:00", Salida),
		reg(1, "09:00:00", Entrada),
	}
	assert.Equal(t, Entrada, ResolverTipo(hoy))

	// Empate de hora: desempata el id de inserción
	hoy = []Registro{
		reg(5, "12:00:00", Entrada),
		reg(4, "12:00:00", Salida),
	}
	assert.Equal(t, Salida, ResolverTipo(hoy))
}

func TestPresente(t *testing.T) {
	assert.False(t, Presente(nil))
	assert.True(t, Presente([]Registro{reg(1, "09:00:00", Entrada)}))
	assert.False(t, Presente([]Registro{
		reg(1, "09:00:00", Entrada),
		reg(2, "12:00:00", Salida),
	}))
}

func TestOrdenarRegistros(t *testing.T) {
	rs := []Registro{
		reg(3, "13:00:00", Entrada),
		reg(2, "09:00:00", Salida),
		reg(1, "09:00:00", Entrada),
	}
	OrdenarRegistros(rs)
	assert.Equal(t, int64(1), rs[0].ID)
	assert.Equal(t, int64(2), rs[1].ID)
	assert.Equal(t, int64(3), rs[2].ID)
}
