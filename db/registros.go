// backend/db/registros.go
package db

import (
	"context"
	"log"

	"github.com/pkg/errors"

	"backend/models"
	"backend/motor"
)

// filaRegistro es la proyección mínima que consume el motor.
type filaRegistro struct {
	id           int64
	fecha        string
	hora         string
	tipo         string
	autoGenerado bool
}

// aMotor normaliza filas crudas a registros del motor. La hora llega como
// texto y aquí se convierte a la representación canónica; las filas con hora
// ilegible se omiten del emparejamiento y quedan en el log, sin abortar la
// evaluación del usuario.
func aMotor(filas []filaRegistro) []motor.Registro {
	registros := make([]motor.Registro, 0, len(filas))
	for _, f := range filas {
		h, err := motor.ParseHora(f.hora)
		if err != nil {
			log.Printf("Registro %d omitido: %v", f.id, err)
			continue
		}
		registros = append(registros, motor.Registro{
			ID:       f.id,
			Fecha:    f.fecha,
			Hora:     h,
			Tipo:     motor.Tipo(f.tipo),
			Ficticio: f.autoGenerado,
		})
	}
	return registros
}

func leerFilas(ctx context.Context, consulta string, args ...interface{}) ([]filaRegistro, error) {
	rows, err := Pool.Query(ctx, consulta, args...)
	if err != nil {
		return nil, errors.Wrap(err, "consultando registros")
	}
	defer rows.Close()

	var filas []filaRegistro
	for rows.Next() {
		var f filaRegistro
		if err := rows.Scan(&f.id, &f.fecha, &f.hora, &f.tipo, &f.autoGenerado); err != nil {
			return nil, errors.Wrap(err, "leyendo registro")
		}
		filas = append(filas, f)
	}
	return filas, rows.Err()
}

// LeerRegistrosDia devuelve los registros de un usuario en una fecha,
// ordenados por (hora, id), ya normalizados para el motor.
func LeerRegistrosDia(ctx context.Context, email, fecha string) ([]motor.Registro, error) {
	filas, err := leerFilas(ctx, `
        SELECT id, fecha::text, hora::text, tipo, auto_generado
          FROM registros
         WHERE email = $1 AND fecha = $2
         ORDER BY hora, id
    `, email, fecha)
	if err != nil {
		return nil, err
	}
	return aMotor(filas), nil
}

// LeerRegistrosSemanaDia devuelve los registros de un usuario en la semana
// [desde, hasta] cuyo día coincide con el del bloque. El nombre del día puede
// venir guardado en español o en inglés en registros antiguos del lector.
func LeerRegistrosSemanaDia(ctx context.Context, email, dia, desde, hasta string) ([]motor.Registro, error) {
	diaEsp := motor.NormalizarDia(dia)
	filas, err := leerFilas(ctx, `
        SELECT id, fecha::text, hora::text, tipo, auto_generado
          FROM registros
         WHERE email = $1
           AND (LOWER(dia) = $2 OR LOWER(dia) = $3)
           AND fecha BETWEEN $4 AND $5
         ORDER BY fecha, hora, id
    `, email, diaEsp, dia, desde, hasta)
	if err != nil {
		return nil, err
	}
	return aMotor(filas), nil
}

// LeerTodosRegistros devuelve todos los registros de un usuario, ordenados,
// para el cálculo de horas acumuladas.
func LeerTodosRegistros(ctx context.Context, email string) ([]motor.Registro, error) {
	filas, err := leerFilas(ctx, `
        SELECT id, fecha::text, hora::text, tipo, auto_generado
          FROM registros
         WHERE email = $1
         ORDER BY fecha, hora, id
    `, email)
	if err != nil {
		return nil, err
	}
	return aMotor(filas), nil
}

// InsertarRegistro persiste un evento de acceso y devuelve su id.
func InsertarRegistro(ctx context.Context, reg models.Registro) (int64, error) {
	var id int64
	err := Pool.QueryRow(ctx, `
        INSERT INTO registros
          (fecha, hora, dia, nombre, apellido, email, tipo, auto_generado, timestamp)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id
    `, reg.Fecha, reg.Hora, reg.Dia, reg.Nombre, reg.Apellido,
		reg.Email, reg.Tipo, reg.AutoGenerado, reg.Timestamp).Scan(&id)
	if err != nil {
		return 0, errors.Wrap(err, "insertando registro")
	}
	return id, nil
}

// ListarRegistros devuelve todos los registros, más recientes primero.
func ListarRegistros(ctx context.Context) ([]models.Registro, error) {
	return listarRegistros(ctx, `
        SELECT id, fecha::text, hora::text, dia, nombre, apellido, email, tipo, auto_generado, timestamp
          FROM registros
         ORDER BY fecha DESC, hora DESC
    `)
}

// ListarRegistrosFecha devuelve los registros de una fecha, más recientes primero.
func ListarRegistrosFecha(ctx context.Context, fecha string) ([]models.Registro, error) {
	return listarRegistros(ctx, `
        SELECT id, fecha::text, hora::text, dia, nombre, apellido, email, tipo, auto_generado, timestamp
          FROM registros
         WHERE fecha = $1
         ORDER BY hora DESC
    `, fecha)
}

func listarRegistros(ctx context.Context, consulta string, args ...interface{}) ([]models.Registro, error) {
	rows, err := Pool.Query(ctx, consulta, args...)
	if err != nil {
		return nil, errors.Wrap(err, "consultando registros")
	}
	defer rows.Close()

	var lista []models.Registro
	for rows.Next() {
		var r models.Registro
		if err := rows.Scan(&r.ID, &r.Fecha, &r.Hora, &r.Dia, &r.Nombre,
			&r.Apellido, &r.Email, &r.Tipo, &r.AutoGenerado, &r.Timestamp); err != nil {
			return nil, errors.Wrap(err, "leyendo registro")
		}
		lista = append(lista, r)
	}
	return lista, rows.Err()
}

// UsuariosConEntradaSinSalida devuelve los usuarios que en la fecha dada
// tienen una Entrada sin Salida posterior: los candidatos del cierre diario.
func UsuariosConEntradaSinSalida(ctx context.Context, fecha string) ([]models.Usuario, error) {
	rows, err := Pool.Query(ctx, `
        SELECT DISTINCT u.id, u.nombre, u.apellido, u.email
          FROM usuarios_permitidos u
          JOIN registros r ON u.email = r.email
         WHERE r.fecha = $1 AND r.tipo = 'Entrada'
           AND NOT EXISTS (
                 SELECT 1 FROM registros r2
                  WHERE r2.email = r.email
                    AND r2.fecha = r.fecha
                    AND r2.tipo = 'Salida'
                    AND r2.id > r.id
               )
    `, fecha)
	if err != nil {
		return nil, errors.Wrap(err, "consultando entradas sin salida")
	}
	defer rows.Close()

	var lista []models.Usuario
	for rows.Next() {
		var u models.Usuario
		if err := rows.Scan(&u.ID, &u.Nombre, &u.Apellido, &u.Email); err != nil {
			return nil, errors.Wrap(err, "leyendo usuario")
		}
		u.Activo = true
		lista = append(lista, u)
	}
	return lista, rows.Err()
}

// TieneEntradaSinSalida re-verifica, justo antes de insertar la salida
// sintética, que la Entrada colgante siga existiendo. Dos cierres concurrentes
// no deben cerrar dos veces el mismo día.
func TieneEntradaSinSalida(ctx context.Context, email, fecha string) (bool, error) {
	var existe bool
	err := Pool.QueryRow(ctx, `
        SELECT EXISTS (
            SELECT 1 FROM registros r
             WHERE r.email = $1 AND r.fecha = $2 AND r.tipo = 'Entrada'
               AND NOT EXISTS (
                     SELECT 1 FROM registros r2
                      WHERE r2.email = r.email
                        AND r2.fecha = r.fecha
                        AND r2.tipo = 'Salida'
                        AND r2.id > r.id
                   )
        )
    `, email, fecha).Scan(&existe)
	if err != nil {
		return false, errors.Wrap(err, "verificando entrada sin salida")
	}
	return existe, nil
}
