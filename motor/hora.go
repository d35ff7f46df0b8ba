// backend/motor/hora.go
package motor

import (
	"fmt"
	"strings"
	"time"
)

// Hora es la representación canónica de una hora del día: segundos desde
// medianoche. Los registros llegan de la base con la hora como texto en
// formatos variados; toda normalización ocurre al construir una Hora, de modo
// que el motor nunca vuelve a distinguir representaciones.
type Hora int

// FinDelDia es la hora asignada a las salidas ficticias (23:59:59).
const FinDelDia Hora = 23*3600 + 59*60 + 59

// ParseHora convierte un texto "HH:MM:SS" o "HH:MM" en una Hora.
func ParseHora(s string) (Hora, error) {
	var hh, mm, ss int
	if _, err := fmt.Sscanf(s, "%d:%d:%d", &hh, &mm, &ss); err != nil {
		ss = 0
		if _, err := fmt.Sscanf(s, "%d:%d", &hh, &mm); err != nil {
			return 0, fmt.Errorf("%w: hora %q", ErrRegistroMalformado, s)
		}
	}
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 || ss < 0 || ss > 59 {
		return 0, fmt.Errorf("%w: hora %q fuera de rango", ErrRegistroMalformado, s)
	}
	return Hora(hh*3600 + mm*60 + ss), nil
}

// HoraDe extrae la Hora de un time.Time (ya convertido a la zona configurada).
func HoraDe(t time.Time) Hora {
	return Hora(t.Hour()*3600 + t.Minute()*60 + t.Second())
}

// String devuelve la hora en formato HH:MM:SS.
func (h Hora) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", int(h)/3600, (int(h)%3600)/60, int(h)%60)
}

// Horas devuelve la hora como fracción decimal de horas (p. ej. 90 min → 1.5).
func (h Hora) Horas() float64 {
	return float64(h) / 3600.0
}

// diasSemana traduce el día de la semana de Go al nombre en español que se
// guarda en la tabla de registros y en los horarios asignados.
var diasSemana = map[time.Weekday]string{
	time.Monday:    "lunes",
	time.Tuesday:   "martes",
	time.Wednesday: "miércoles",
	time.Thursday:  "jueves",
	time.Friday:    "viernes",
	time.Saturday:  "sábado",
	time.Sunday:    "domingo",
}

// diasTraduccion normaliza nombres de día que pudieran venir en inglés de
// versiones antiguas del lector.
var diasTraduccion = map[string]string{
	"monday":    "lunes",
	"tuesday":   "martes",
	"wednesday": "miércoles",
	"thursday":  "jueves",
	"friday":    "viernes",
	"saturday":  "sábado",
	"sunday":    "domingo",
}

// DiaEnEspanol devuelve el nombre en español del día de t.
func DiaEnEspanol(t time.Time) string {
	return diasSemana[t.Weekday()]
}

// NormalizarDia traduce un nombre de día (posiblemente en inglés) a español
// en minúsculas. Los nombres ya en español se devuelven tal cual.
func NormalizarDia(dia string) string {
	d := strings.ToLower(dia)
	if esp, ok := diasTraduccion[d]; ok {
		return esp
	}
	return d
}
