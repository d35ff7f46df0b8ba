// backend/motor/cumplimiento_test.go
package motor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContarEstados(t *testing.T) {
	c := ContarEstados([]EstadoBloque{
		BloqueCumplido,
		BloqueIncompleto,
		BloqueAtrasado,
		BloqueAusente,
		BloquePendiente,
		BloqueCumpliendo,
	})
	assert.Equal(t, 1, c.Cumplidos)
	assert.Equal(t, 2, c.Incompletos, "Atrasado cuenta como incompleto")
	assert.Equal(t, 1, c.Ausentes)
	assert.Equal(t, 2, c.Pendientes, "Cumpliendo cuenta como pendiente")
}

func TestResumirEstados(t *testing.T) {
	casos := []struct {
		nombre   string
		estados  []EstadoBloque
		esperado EstadoUsuario
	}{
		{"sin bloques", nil, UsuarioNoAplica},
		{"todos cumplidos", []EstadoBloque{BloqueCumplido, BloqueCumplido}, UsuarioCumple},
		{"todos ausentes", []EstadoBloque{BloqueAusente, BloqueAusente}, UsuarioAusente},
		{"algún incompleto", []EstadoBloque{BloqueCumplido, BloqueIncompleto}, UsuarioIncompleto},
		{"atrasado cuenta como incompleto", []EstadoBloque{BloqueAtrasado}, UsuarioIncompleto},
		{"cumplido con ausente", []EstadoBloque{BloqueCumplido, BloqueAusente}, UsuarioIncompleto},
		{"pendiente sin ausentes", []EstadoBloque{BloqueCumplido, BloquePendiente}, UsuarioPendiente},
		{"cumpliendo cuenta como pendiente", []EstadoBloque{BloqueCumpliendo}, UsuarioPendiente},
		{"pendiente con ausente", []EstadoBloque{BloquePendiente, BloqueAusente}, UsuarioNoCumple},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, ResumirEstados(c.estados), c.nombre)
	}
}
