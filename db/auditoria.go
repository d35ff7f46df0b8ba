// backend/db/auditoria.go
package db

import (
	"context"

	"github.com/pkg/errors"

	"backend/models"
)

// InsertarEventoAuditoria registra una acción en auditoria_eventos. Las fallas
// de auditoría se loguean en el llamador pero nunca abortan la operación.
func InsertarEventoAuditoria(ctx context.Context, e models.EventoAuditoria) error {
	_, err := Pool.Exec(ctx, `
        INSERT INTO auditoria_eventos
          (email, accion, tabla_afectada, descripcion, fecha_evento, exito, error_mensaje)
        VALUES ($1, $2, $3, $4, NOW(), $5, $6)
    `, e.Email, e.Accion, e.TablaAfectada, e.Descripcion, e.Exito, e.ErrorMensaje)
	if err != nil {
		return errors.Wrap(err, "insertando evento de auditoría")
	}
	return nil
}

// ListarAuditoria devuelve los eventos de auditoría más recientes, hasta el
// límite indicado.
func ListarAuditoria(ctx context.Context, limite int) ([]models.EventoAuditoria, error) {
	rows, err := Pool.Query(ctx, `
        SELECT id_evento, email, accion, tabla_afectada, descripcion,
               fecha_evento, exito, COALESCE(error_mensaje, '')
          FROM auditoria_eventos
         ORDER BY fecha_evento DESC
         LIMIT $1
    `, limite)
	if err != nil {
		return nil, errors.Wrap(err, "consultando auditoría")
	}
	defer rows.Close()

	var lista []models.EventoAuditoria
	for rows.Next() {
		var e models.EventoAuditoria
		if err := rows.Scan(&e.IDEvento, &e.Email, &e.Accion, &e.TablaAfectada,
			&e.Descripcion, &e.FechaEvento, &e.Exito, &e.ErrorMensaje); err != nil {
			return nil, errors.Wrap(err, "leyendo evento de auditoría")
		}
		lista = append(lista, e)
	}
	return lista, rows.Err()
}
