// backend/motor/horas.go
package motor

// HorasPorDia define cuántas horas equivalen a un día completo de asistencia.
const HorasPorDia = 8.0

// Acumulado resume las horas trabajadas de un usuario.
type Acumulado struct {
	HorasTotales     float64 // suma de los intervalos válidos, ficticios incluidos
	HorasFicticias   float64 // parte de HorasTotales que proviene de salidas sintetizadas
	Dias             int     // fechas distintas con al menos un intervalo válido
	DiasEquivalentes float64 // HorasTotales / HorasPorDia
}

// AcumularHoras suma la duración de todos los intervalos válidos. Los
// intervalos con salida ficticia cuentan, pero su aporte queda desglosado en
// HorasFicticias para que quien consulta pueda excluirlo. La suma es
// conmutativa: el orden de los intervalos no altera el resultado.
func AcumularHoras(intervalos []Intervalo) Acumulado {
	var a Acumulado
	fechas := make(map[string]bool)
	for _, iv := range intervalos {
		if !iv.Valido() {
			continue
		}
		d := iv.Duracion()
		a.HorasTotales += d
		if iv.Ficticio {
			a.HorasFicticias += d
		}
		fechas[iv.Fecha] = true
	}
	a.Dias = len(fechas)
	a.DiasEquivalentes = a.HorasTotales / HorasPorDia
	return a
}
