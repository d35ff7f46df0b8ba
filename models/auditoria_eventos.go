// backend/models/auditoria_eventos.go
package models

import "time"

// EventoAuditoria representa una fila de la tabla auditoria_eventos
type EventoAuditoria struct {
	IDEvento      int       `json:"id_evento"`      // PK de auditoria_eventos
	Email         string    `json:"email"`          // Usuario involucrado en la acción
	Accion        string    `json:"accion"`         // "INSERT", "FALLO-INSERT", "FALLO-QUERY", etc.
	TablaAfectada string    `json:"tabla_afectada"` // Nombre de la tabla afectada (p.ej. "registros")
	Descripcion   string    `json:"descripcion"`    // Texto libre con detalles de la operación
	FechaEvento   time.Time `json:"fecha_evento"`   // Marca de tiempo en que ocurrió el evento
	Exito         bool      `json:"exito"`
	ErrorMensaje  string    `json:"error_mensaje,omitempty"`
}
