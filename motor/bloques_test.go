// backend/motor/bloques_test.go
package motor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const gracia = 15

// bloque de prueba: lunes 09:00–13:00
var bloqueLunes = Bloque{Dia: "lunes", Entrada: 9 * 3600, Salida: 13 * 3600}

func iv(entrada, salida string, ficticio bool) Intervalo {
	e, err := ParseHora(entrada)
	if err != nil {
		panic(err)
	}
	s, err := ParseHora(salida)
	if err != nil {
		panic(err)
	}
	return Intervalo{Fecha: "2025-03-10", Entrada: e, Salida: s, Ficticio: ficticio}
}

func hora(s string) Hora {
	h, err := ParseHora(s)
	if err != nil {
		panic(err)
	}
	return h
}

func TestEvaluarBloqueCoberturaCompleta(t *testing.T) {
	casos := []struct {
		nombre string
		ivs    []Intervalo
	}{
		{"exacta", []Intervalo{iv("09:00:00", "13:00:00", false)}},
		{"sobrada", []Intervalo{iv("08:30:00", "14:00:00", false)}},
		{"entre varios, uno completo", []Intervalo{
			iv("07:00:00", "08:00:00", false),
			iv("08:45:00", "13:15:00", false),
		}},
	}
	for _, c := range casos {
		got := EvaluarBloque(bloqueLunes, c.ivs, true, hora("15:00:00"), gracia)
		assert.Equal(t, BloqueCumplido, got, c.nombre)
	}
}

func TestEvaluarBloqueParcialHoy(t *testing.T) {
	// Estuvo una hora adentro y ya salió: el bloque sigue corriendo pero la
	// cobertura no llega hasta ahora
	ivs := []Intervalo{iv("10:00:00", "11:00:00", false)}
	got := EvaluarBloque(bloqueLunes, ivs, true, hora("12:00:00"), gracia)
	assert.Equal(t, BloqueIncompleto, got)
}

func TestEvaluarBloqueCumpliendo(t *testing.T) {
	// Entró a las 09:00 y sigue adentro (salida ficticia): a las 11:00 el
	// bloque va en curso y cubierto hasta ahora
	ivs := []Intervalo{iv("09:00:00", "23:59:59", true)}
	got := EvaluarBloque(bloqueLunes, ivs, true, hora("11:00:00"), gracia)
	assert.Equal(t, BloqueCumpliendo, got)
}

func TestEvaluarBloqueFicticiaNoAnticipaCumplido(t *testing.T) {
	// La salida ficticia de hoy vale sólo hasta ahora: a las 10:00 el bloque
	// no puede estar Cumplido aunque la salida sintética diga 23:59:59
	ivs := []Intervalo{iv("09:00:00", "23:59:59", true)}
	got := EvaluarBloque(bloqueLunes, ivs, true, hora("10:00:00"), gracia)
	assert.NotEqual(t, BloqueCumplido, got)
	assert.Equal(t, BloqueCumpliendo, got)
}

func TestEvaluarBloqueFicticiaCumpleTrasElBloque(t *testing.T) {
	// Sigue adentro a las 14:00, el bloque ya terminó cubierto de punta a punta
	ivs := []Intervalo{iv("09:00:00", "23:59:59", true)}
	got := EvaluarBloque(bloqueLunes, ivs, true, hora("14:00:00"), gracia)
	assert.Equal(t, BloqueCumplido, got)
}

func TestEvaluarBloqueSinCoberturaHoy(t *testing.T) {
	casos := []struct {
		nombre   string
		ahora    string
		esperado EstadoBloque
	}{
		{"antes del inicio", "08:00:00", BloquePendiente},
		{"dentro de la gracia", "09:10:00", BloquePendiente},
		{"pasada la gracia", "10:00:00", BloqueAtrasado},
		{"bloque terminado", "13:00:00", BloqueAusente},
		{"fin del día", "18:00:00", BloqueAusente},
	}
	for _, c := range casos {
		got := EvaluarBloque(bloqueLunes, nil, true, hora(c.ahora), gracia)
		assert.Equal(t, c.esperado, got, c.nombre)
	}
}

func TestEvaluarBloqueDiaPasado(t *testing.T) {
	// En días pasados no hay Pendiente ni Atrasado ni Cumpliendo
	assert.Equal(t, BloqueAusente,
		EvaluarBloque(bloqueLunes, nil, false, 0, gracia))

	assert.Equal(t, BloqueIncompleto,
		EvaluarBloque(bloqueLunes, []Intervalo{iv("10:00:00", "11:00:00", false)}, false, 0, gracia))

	// La salida ficticia de un día ya cerrado vale completa
	assert.Equal(t, BloqueCumplido,
		EvaluarBloque(bloqueLunes, []Intervalo{iv("09:00:00", "23:59:59", true)}, false, 0, gracia))
}

func TestEvaluarBloqueIntervaloInvalido(t *testing.T) {
	// Un intervalo con salida <= entrada se descarta, no cuenta como parcial
	ivs := []Intervalo{{Fecha: "2025-03-10", Entrada: 12 * 3600, Salida: 10 * 3600}}
	got := EvaluarBloque(bloqueLunes, ivs, true, hora("14:00:00"), gracia)
	assert.Equal(t, BloqueAusente, got)
}

func TestEvaluarBloqueSinTraslape(t *testing.T) {
	// Intervalo fuera del bloque: no es cobertura parcial
	ivs := []Intervalo{iv("14:00:00", "16:00:00", false)}
	got := EvaluarBloque(bloqueLunes, ivs, false, 0, gracia)
	assert.Equal(t, BloqueAusente, got)
}
