// backend/models/historial_cumplimiento.go
package models

import "time"

// HistorialCumplimiento guarda la foto semanal del cumplimiento de un usuario,
// tomada por el reinicio semanal antes de abrir la nueva semana.
type HistorialCumplimiento struct {
	ID           int       `json:"id"`
	UsuarioID    int       `json:"usuario_id"`
	Email        string    `json:"email"`
	Nombre       string    `json:"nombre"`
	Apellido     string    `json:"apellido"`
	SemanaInicio string    `json:"semana_inicio"` // YYYY-MM-DD (lunes)
	SemanaFin    string    `json:"semana_fin"`    // YYYY-MM-DD (domingo)
	Estado       string    `json:"estado"`
	Cumplidos    int       `json:"cumplidos"`
	Incompletos  int       `json:"incompletos"`
	Ausentes     int       `json:"ausentes"`
	CreatedAt    time.Time `json:"created_at"`
}
