// backend/db/estado.go
package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"backend/models"
)

// LeerEstados devuelve la tabla estado_usuarios con la foto del usuario.
func LeerEstados(ctx context.Context) ([]models.EstadoUsuario, error) {
	rows, err := Pool.Query(ctx, `
        SELECT e.email, e.nombre, e.apellido, e.estado,
               e.ultima_entrada, e.ultima_salida, e.updated_at, u.foto_url
          FROM estado_usuarios e
          LEFT JOIN usuarios_permitidos u ON e.email = u.email
         ORDER BY e.updated_at DESC
    `)
	if err != nil {
		return nil, errors.Wrap(err, "consultando estados")
	}
	defer rows.Close()

	var lista []models.EstadoUsuario
	for rows.Next() {
		var e models.EstadoUsuario
		if err := rows.Scan(&e.Email, &e.Nombre, &e.Apellido, &e.Estado,
			&e.UltimaEntrada, &e.UltimaSalida, &e.UpdatedAt, &e.FotoURL); err != nil {
			return nil, errors.Wrap(err, "leyendo estado")
		}
		lista = append(lista, e)
	}
	return lista, rows.Err()
}

// EstadoDe devuelve la fila de cache de presencia de un usuario, o nil si no
// existe todavía.
func EstadoDe(ctx context.Context, email string) (*models.EstadoUsuario, error) {
	var e models.EstadoUsuario
	err := Pool.QueryRow(ctx, `
        SELECT email, nombre, apellido, estado, ultima_entrada, ultima_salida, updated_at
          FROM estado_usuarios
         WHERE email = $1
    `, email).Scan(&e.Email, &e.Nombre, &e.Apellido, &e.Estado,
		&e.UltimaEntrada, &e.UltimaSalida, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "consultando estado")
	}
	return &e, nil
}

// GuardarEstado actualiza (o crea) la cache de presencia de un usuario. La
// marca de última entrada o salida se toma del momento del cambio.
func GuardarEstado(ctx context.Context, email, nombre, apellido, estado string, momento time.Time) error {
	_, err := Pool.Exec(ctx, `
        INSERT INTO estado_usuarios (email, nombre, apellido, estado, ultima_entrada, ultima_salida, updated_at)
        VALUES ($1, $2, $3, $4,
                CASE WHEN $4 = 'dentro' THEN $5 ELSE NULL END,
                CASE WHEN $4 = 'fuera'  THEN $5 ELSE NULL END,
                $5)
        ON CONFLICT (email) DO UPDATE SET
            estado = EXCLUDED.estado,
            ultima_entrada = CASE WHEN EXCLUDED.estado = 'dentro' THEN $5 ELSE estado_usuarios.ultima_entrada END,
            ultima_salida  = CASE WHEN EXCLUDED.estado = 'fuera'  THEN $5 ELSE estado_usuarios.ultima_salida  END,
            updated_at = $5
    `, email, nombre, apellido, estado, momento)
	if err != nil {
		return errors.Wrap(err, "guardando estado")
	}
	return nil
}
