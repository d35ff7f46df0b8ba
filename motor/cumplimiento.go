// backend/motor/cumplimiento.go
package motor

// ConteoEstados resume los estados de los bloques de un usuario.
type ConteoEstados struct {
	Cumplidos   int
	Incompletos int // incluye Atrasado: el bloque corre sin registro de entrada
	Ausentes    int
	Pendientes  int // incluye Cumpliendo: el bloque sigue en curso
}

// ContarEstados clasifica cada estado de bloque en los cuatro contadores que
// alimentan el estado semanal.
func ContarEstados(estados []EstadoBloque) ConteoEstados {
	var c ConteoEstados
	for _, e := range estados {
		switch e {
		case BloqueCumplido:
			c.Cumplidos++
		case BloqueIncompleto, BloqueAtrasado:
			c.Incompletos++
		case BloqueAusente:
			c.Ausentes++
		case BloquePendiente, BloqueCumpliendo:
			c.Pendientes++
		}
	}
	return c
}

// ResumirEstados combina los estados de todos los bloques de la semana en el
// estado general del usuario. Precedencia:
//
//	sin bloques                  → No Aplica
//	todos Cumplido               → Cumple
//	todos Ausente                → Ausente
//	algún Incompleto, o mezcla
//	de Cumplido con Ausente      → Incompleto
//	algún Pendiente sin Ausente  → Pendiente
//	resto                        → No Cumple
func ResumirEstados(estados []EstadoBloque) EstadoUsuario {
	n := len(estados)
	if n == 0 {
		return UsuarioNoAplica
	}
	c := ContarEstados(estados)
	switch {
	case c.Cumplidos == n:
		return UsuarioCumple
	case c.Ausentes == n:
		return UsuarioAusente
	case c.Incompletos > 0 || (c.Cumplidos > 0 && c.Ausentes > 0):
		return UsuarioIncompleto
	case c.Pendientes > 0 && c.Ausentes == 0:
		return UsuarioPendiente
	default:
		return UsuarioNoCumple
	}
}
