// backend/motor/errores.go
package motor

import "errors"

var (
	// ErrUsuarioNoEncontrado indica que el email no corresponde a un usuario
	// permitido activo. Nunca se resuelve en silencio con un valor por defecto.
	ErrUsuarioNoEncontrado = errors.New("usuario no encontrado o inactivo")

	// ErrRegistroMalformado marca filas con fecha u hora que no se pueden
	// interpretar. El adaptador las omite del emparejamiento y las deja en el
	// log, sin abortar la evaluación del usuario.
	ErrRegistroMalformado = errors.New("registro malformado")

	// ErrBloqueInvalido indica un horario con hora_entrada >= hora_salida.
	ErrBloqueInvalido = errors.New("bloque horario inválido")
)
