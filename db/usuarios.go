// backend/db/usuarios.go
package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"backend/models"
	"backend/motor"
)

// LeerUsuariosActivos devuelve los usuarios permitidos que siguen activos.
func LeerUsuariosActivos(ctx context.Context) ([]models.Usuario, error) {
	rows, err := Pool.Query(ctx, `
        SELECT id, nombre, apellido, email, activo, foto_url
          FROM usuarios_permitidos
         WHERE activo = TRUE
         ORDER BY apellido, nombre
    `)
	if err != nil {
		return nil, errors.Wrap(err, "consultando usuarios")
	}
	defer rows.Close()

	var lista []models.Usuario
	for rows.Next() {
		var u models.Usuario
		if err := rows.Scan(&u.ID, &u.Nombre, &u.Apellido, &u.Email, &u.Activo, &u.FotoURL); err != nil {
			return nil, errors.Wrap(err, "leyendo usuario")
		}
		lista = append(lista, u)
	}
	return lista, rows.Err()
}

// UsuarioPorEmail busca un usuario activo por email (clave única, sin
// distinguir mayúsculas). Devuelve motor.ErrUsuarioNoEncontrado si no existe
// o está inactivo; el error llega al cliente, nunca se asume un usuario.
func UsuarioPorEmail(ctx context.Context, email string) (*models.Usuario, error) {
	var u models.Usuario
	err := Pool.QueryRow(ctx, `
        SELECT id, nombre, apellido, email, activo, foto_url
          FROM usuarios_permitidos
         WHERE LOWER(email) = LOWER($1) AND activo = TRUE
    `, email).Scan(&u.ID, &u.Nombre, &u.Apellido, &u.Email, &u.Activo, &u.FotoURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, motor.ErrUsuarioNoEncontrado
		}
		return nil, errors.Wrap(err, "consultando usuario")
	}
	return &u, nil
}

// CrearUsuario inserta un usuario permitido y devuelve su id.
func CrearUsuario(ctx context.Context, u models.Usuario) (int, error) {
	var id int
	err := Pool.QueryRow(ctx, `
        INSERT INTO usuarios_permitidos (nombre, apellido, email, activo, foto_url)
        VALUES ($1, $2, LOWER($3), TRUE, $4)
        RETURNING id
    `, u.Nombre, u.Apellido, u.Email, u.FotoURL).Scan(&id)
	if err != nil {
		return 0, err // el handler distingue el duplicado de email
	}
	return id, nil
}

// ActualizarUsuario modifica nombre, apellido y foto.
func ActualizarUsuario(ctx context.Context, u models.Usuario) error {
	tag, err := Pool.Exec(ctx, `
        UPDATE usuarios_permitidos
           SET nombre = $1, apellido = $2, foto_url = $3
         WHERE id = $4 AND activo = TRUE
    `, u.Nombre, u.Apellido, u.FotoURL, u.ID)
	if err != nil {
		return errors.Wrap(err, "actualizando usuario")
	}
	if tag.RowsAffected() == 0 {
		return motor.ErrUsuarioNoEncontrado
	}
	return nil
}

// DesactivarUsuario hace el borrado lógico: el usuario y sus registros quedan,
// pero deja de aparecer en presencia, cumplimiento y horas.
func DesactivarUsuario(ctx context.Context, id int) error {
	tag, err := Pool.Exec(ctx, `
        UPDATE usuarios_permitidos SET activo = FALSE WHERE id = $1 AND activo = TRUE
    `, id)
	if err != nil {
		return errors.Wrap(err, "desactivando usuario")
	}
	if tag.RowsAffected() == 0 {
		return motor.ErrUsuarioNoEncontrado
	}
	return nil
}
