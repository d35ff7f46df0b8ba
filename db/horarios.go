// backend/db/horarios.go
package db

import (
	"context"
	"log"

	"github.com/pkg/errors"

	"backend/models"
	"backend/motor"
)

// ListarHorarios devuelve todos los horarios asignados con los datos del usuario.
func ListarHorarios(ctx context.Context) ([]models.Horario, error) {
	rows, err := Pool.Query(ctx, `
        SELECT h.id, h.usuario_id, u.nombre, u.apellido, u.email,
               h.dia, h.hora_entrada::text, h.hora_salida::text
          FROM horarios_asignados h
          JOIN usuarios_permitidos u ON h.usuario_id = u.id
         WHERE u.activo = TRUE
         ORDER BY u.apellido, u.nombre, h.dia
    `)
	if err != nil {
		return nil, errors.Wrap(err, "consultando horarios")
	}
	defer rows.Close()

	var lista []models.Horario
	for rows.Next() {
		var h models.Horario
		if err := rows.Scan(&h.ID, &h.UsuarioID, &h.Nombre, &h.Apellido, &h.Email,
			&h.Dia, &h.HoraEntrada, &h.HoraSalida); err != nil {
			return nil, errors.Wrap(err, "leyendo horario")
		}
		lista = append(lista, h)
	}
	return lista, rows.Err()
}

// BloquesDeUsuario devuelve los horarios de un usuario ya normalizados para el
// motor, ordenados por día y hora de entrada. Filas con horas ilegibles o con
// hora_entrada >= hora_salida se omiten y quedan en el log.
func BloquesDeUsuario(ctx context.Context, usuarioID int) ([]motor.Bloque, error) {
	rows, err := Pool.Query(ctx, `
        SELECT id, dia, hora_entrada::text, hora_salida::text
          FROM horarios_asignados
         WHERE usuario_id = $1
         ORDER BY dia, hora_entrada
    `, usuarioID)
	if err != nil {
		return nil, errors.Wrap(err, "consultando horarios del usuario")
	}
	defer rows.Close()

	var bloques []motor.Bloque
	for rows.Next() {
		var id int
		var dia, he, hs string
		if err := rows.Scan(&id, &dia, &he, &hs); err != nil {
			return nil, errors.Wrap(err, "leyendo horario")
		}
		entrada, err := motor.ParseHora(he)
		if err != nil {
			log.Printf("Horario %d omitido: %v", id, err)
			continue
		}
		salida, err := motor.ParseHora(hs)
		if err != nil {
			log.Printf("Horario %d omitido: %v", id, err)
			continue
		}
		if entrada >= salida {
			log.Printf("Horario %d omitido: %v (%s-%s)", id, motor.ErrBloqueInvalido, he, hs)
			continue
		}
		bloques = append(bloques, motor.Bloque{
			Dia:     motor.NormalizarDia(dia),
			Entrada: entrada,
			Salida:  salida,
		})
	}
	return bloques, rows.Err()
}

// CrearHorario inserta un bloque horario y devuelve su id.
func CrearHorario(ctx context.Context, h models.Horario) (int, error) {
	var id int
	err := Pool.QueryRow(ctx, `
        INSERT INTO horarios_asignados (usuario_id, dia, hora_entrada, hora_salida)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `, h.UsuarioID, motor.NormalizarDia(h.Dia), h.HoraEntrada, h.HoraSalida).Scan(&id)
	if err != nil {
		return 0, errors.Wrap(err, "insertando horario")
	}
	return id, nil
}

// ActualizarHorario modifica día y horas de un bloque.
func ActualizarHorario(ctx context.Context, h models.Horario) error {
	tag, err := Pool.Exec(ctx, `
        UPDATE horarios_asignados
           SET dia = $1, hora_entrada = $2, hora_salida = $3
         WHERE id = $4
    `, motor.NormalizarDia(h.Dia), h.HoraEntrada, h.HoraSalida, h.ID)
	if err != nil {
		return errors.Wrap(err, "actualizando horario")
	}
	if tag.RowsAffected() == 0 {
		return errors.New("horario no encontrado")
	}
	return nil
}

// EliminarHorario borra un bloque horario.
func EliminarHorario(ctx context.Context, id int) error {
	tag, err := Pool.Exec(ctx, `DELETE FROM horarios_asignados WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "eliminando horario")
	}
	if tag.RowsAffected() == 0 {
		return errors.New("horario no encontrado")
	}
	return nil
}
