// backend/models/registro.go
package models

import "time"

// Registro representa una fila de la tabla registros: un evento de acceso
// generado por un escaneo (QR o reconocimiento facial) o por el cierre diario.
// Los registros nunca se modifican; sólo un administrador puede borrarlos.
// Para un mismo (email, fecha) el orden total es (hora, id).
type Registro struct {
	ID           int64     `json:"id"`
	Fecha        string    `json:"fecha"` // YYYY-MM-DD
	Hora         string    `json:"hora"`  // HH:MM:SS
	Dia          string    `json:"dia"`
	Nombre       string    `json:"nombre"`
	Apellido     string    `json:"apellido"`
	Email        string    `json:"email"`
	Tipo         string    `json:"tipo"` // "Entrada" o "Salida"
	AutoGenerado bool      `json:"auto_generado"`
	Timestamp    time.Time `json:"timestamp"`
}
