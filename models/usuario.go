// backend/models/usuario.go
package models

// Usuario representa una fila de usuarios_permitidos: personal del laboratorio
// (ayudantes y estudiantes) habilitado para registrar acceso. Los usuarios se
// desactivan, no se borran.
type Usuario struct {
	ID       int     `json:"id"`
	Nombre   string  `json:"nombre"`
	Apellido string  `json:"apellido"`
	Email    string  `json:"email"`
	Activo   bool    `json:"activo"`
	FotoURL  *string `json:"foto_url,omitempty"`
}
