// backend/models/horario.go
package models

// Horario representa una fila de horarios_asignados: un bloque semanal en que
// se espera al usuario en el laboratorio. Invariante: hora_entrada < hora_salida.
// Un usuario puede tener varios bloques el mismo día; no vienen ordenados.
type Horario struct {
	ID          int    `json:"id"`
	UsuarioID   int    `json:"usuario_id"`
	Dia         string `json:"dia"` // nombre del día en español, minúsculas
	HoraEntrada string `json:"hora_entrada"`
	HoraSalida  string `json:"hora_salida"`

	// Campos del JOIN con usuarios_permitidos para los listados
	Nombre   string `json:"nombre,omitempty"`
	Apellido string `json:"apellido,omitempty"`
	Email    string `json:"email,omitempty"`
}
