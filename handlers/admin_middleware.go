// backend/handlers/admin_middleware.go
package handlers

import (
	"context"
	"log"
	"net/http"

	"backend/db"
)

// ctxKey es el tipo que usamos para guardar el email del administrador en el
// contexto de la petición
type ctxKey string

const (
	CtxAdminEmailKey ctxKey = "adminEmail"
)

// AdminOnlyMiddleware verifica que quien hace la petición sea un administrador
// registrado. Se espera que el cliente incluya un header "X-Admin-Email" en
// cada petición a las rutas de administración.
func AdminOnlyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := r.Header.Get("X-Admin-Email")
		if email == "" {
			http.Error(w, "No se indicó administrador autenticado", http.StatusUnauthorized)
			return
		}

		var exists int
		err := db.Pool.QueryRow(
			r.Context(),
			`
			SELECT 1
			FROM credenciales_admin
			WHERE LOWER(email) = LOWER($1)
			LIMIT 1
			`,
			email,
		).Scan(&exists)

		if err != nil {
			if err.Error() == "no rows in result set" {
				log.Println("Middleware: Acceso denegado para", email)
				http.Error(w, "Acceso denegado: se requiere administrador", http.StatusForbidden)
				return
			}
			log.Println("Middleware: Error en consulta SQL:", err)
			http.Error(w, "Error interno al verificar administrador", http.StatusInternalServerError)
			return
		}

		ctx := context.WithValue(r.Context(), CtxAdminEmailKey, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminEmailFromCtx es un helper para extraer el email del administrador
// desde el contexto
func AdminEmailFromCtx(ctx context.Context) (string, bool) {
	v := ctx.Value(CtxAdminEmailKey)
	if v == nil {
		return "", false
	}
	email, ok := v.(string)
	return email, ok
}
