// backend/db/historial.go
package db

import (
	"context"

	"github.com/pkg/errors"

	"backend/models"
)

// InsertarHistorial guarda la foto semanal de cumplimiento de un usuario.
func InsertarHistorial(ctx context.Context, h models.HistorialCumplimiento) error {
	_, err := Pool.Exec(ctx, `
        INSERT INTO historial_cumplimiento
          (usuario_id, email, nombre, apellido, semana_inicio, semana_fin,
           estado, cumplidos, incompletos, ausentes)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
    `, h.UsuarioID, h.Email, h.Nombre, h.Apellido, h.SemanaInicio, h.SemanaFin,
		h.Estado, h.Cumplidos, h.Incompletos, h.Ausentes)
	if err != nil {
		return errors.Wrap(err, "insertando historial")
	}
	return nil
}

// LeerHistorial devuelve el historial de cumplimiento de un usuario,
// semanas más recientes primero.
func LeerHistorial(ctx context.Context, email string) ([]models.HistorialCumplimiento, error) {
	rows, err := Pool.Query(ctx, `
        SELECT id, usuario_id, email, nombre, apellido,
               semana_inicio::text, semana_fin::text,
               estado, cumplidos, incompletos, ausentes, created_at
          FROM historial_cumplimiento
         WHERE email = $1
         ORDER BY semana_inicio DESC
    `, email)
	if err != nil {
		return nil, errors.Wrap(err, "consultando historial")
	}
	defer rows.Close()

	var lista []models.HistorialCumplimiento
	for rows.Next() {
		var h models.HistorialCumplimiento
		if err := rows.Scan(&h.ID, &h.UsuarioID, &h.Email, &h.Nombre, &h.Apellido,
			&h.SemanaInicio, &h.SemanaFin, &h.Estado,
			&h.Cumplidos, &h.Incompletos, &h.Ausentes, &h.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "leyendo historial")
		}
		lista = append(lista, h)
	}
	return lista, rows.Err()
}

// MarcarReinicio deja en sistema_config la fecha del último reinicio semanal,
// que marca el inicio de la semana vigente.
func MarcarReinicio(ctx context.Context, fecha string) error {
	_, err := Pool.Exec(ctx, `
        INSERT INTO sistema_config (clave, valor)
        VALUES ('ultimo_reinicio_cumplimiento', $1)
        ON CONFLICT (clave) DO UPDATE SET valor = $1, updated_at = NOW()
    `, fecha)
	if err != nil {
		return errors.Wrap(err, "marcando reinicio semanal")
	}
	return nil
}
