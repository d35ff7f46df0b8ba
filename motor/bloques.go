// backend/motor/bloques.go
package motor

// EvaluarBloque clasifica un bloque horario contra los intervalos del período
// relevante. Para bloques de hoy, `ahora` es la hora actual en la zona
// configurada; para días anteriores de la semana se pasa esHoy=false y `ahora`
// se ignora.
//
// Cobertura de un intervalo sobre el bloque [Entrada, Salida):
//   - completa: entrada <= bloque.Entrada y salida >= bloque.Salida
//   - parcial: cualquier traslape (entrada < bloque.Salida y salida > bloque.Entrada)
//
// Precedencia: cobertura completa → Cumplido. Cobertura parcial que llega
// hasta ahora con el bloque en curso → Cumpliendo (el usuario sigue adentro).
// Otra cobertura parcial → Incompleto. Sin cobertura: antes del inicio →
// Pendiente; bloque en curso dentro de la gracia → Pendiente; en curso pasada
// la gracia → Atrasado; bloque ya terminado → Ausente. Para días pasados no
// existe la distinción Pendiente/Atrasado: sin cobertura es Ausente.
//
// Las salidas ficticias de un día aún en curso sólo valen hasta `ahora`: un
// usuario que entró a las 09:00 y sigue adentro no puede dar por cumplido un
// bloque que termina a las 18:00.
func EvaluarBloque(b Bloque, intervalos []Intervalo, esHoy bool, ahora Hora, graciaMinutos int) EstadoBloque {
	cumplio := false
	parcial := false
	enCurso := false

	for _, iv := range intervalos {
		entrada, salida := iv.Entrada, iv.Salida
		if esHoy && iv.Ficticio && salida > ahora {
			salida = ahora
		}
		if salida <= entrada {
			continue
		}
		if entrada <= b.Entrada && salida >= b.Salida {
			cumplio = true
			break
		}
		if entrada < b.Salida && salida > b.Entrada {
			parcial = true
			if esHoy && salida >= ahora {
				enCurso = true
			}
		}
	}

	if cumplio {
		return BloqueCumplido
	}

	if esHoy {
		switch {
		case enCurso && ahora >= b.Entrada && ahora < b.Salida:
			return BloqueCumpliendo
		case parcial:
			return BloqueIncompleto
		case ahora < b.Entrada:
			return BloquePendiente
		case ahora < b.Salida:
			if ahora < b.Entrada+Hora(graciaMinutos*60) {
				return BloquePendiente
			}
			return BloqueAtrasado
		default:
			return BloqueAusente
		}
	}

	if parcial {
		return BloqueIncompleto
	}
	return BloqueAusente
}
