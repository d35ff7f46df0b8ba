// backend/models/estado_usuario.go
package models

import "time"

// EstadoUsuario es la vista materializada "¿está dentro?" de un usuario.
// Es una optimización de lectura: la fuente de verdad es siempre el último
// registro del día, y esta fila se repara desde los registros si difiere.
type EstadoUsuario struct {
	Email         string     `json:"email"`
	Nombre        string     `json:"nombre"`
	Apellido      string     `json:"apellido"`
	Estado        string     `json:"estado"` // "dentro" o "fuera"
	UltimaEntrada *time.Time `json:"ultima_entrada,omitempty"`
	UltimaSalida  *time.Time `json:"ultima_salida,omitempty"`
	UpdatedAt     time.Time  `json:"updated_at"`
	FotoURL       *string    `json:"foto_url,omitempty"`
}
