// backend/handlers/presencia.go
package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"backend/config"
	"backend/db"
	"backend/models"
	"backend/motor"
)

// AyudantesPresentes maneja GET /ayudantes_presentes: quiénes están dentro
// ahora. Se deriva siempre de los registros crudos (último registro de hoy es
// una Entrada), no de la tabla estado_usuarios.
func AyudantesPresentes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	hoy := config.Ahora().Format("2006-01-02")

	rows, err := db.Pool.Query(ctx, `
        SELECT r.email, r.nombre, r.apellido, r.hora::text AS ultima_hora, u.foto_url
          FROM registros r
          JOIN (
                SELECT email, MAX(id) AS last_id
                  FROM registros
                 WHERE fecha = $1
                 GROUP BY email
               ) ultimos ON r.id = ultimos.last_id
          LEFT JOIN usuarios_permitidos u ON r.email = u.email
         WHERE r.fecha = $1
           AND r.tipo = 'Entrada'
         ORDER BY r.hora DESC
    `, hoy)
	if err != nil {
		log.Printf("Error consultando presentes: %v", err)
		http.Error(w, "Error consultando presentes", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	type presente struct {
		Email      string  `json:"email"`
		Nombre     string  `json:"nombre"`
		Apellido   string  `json:"apellido"`
		UltimaHora string  `json:"ultima_entrada"`
		Estado     string  `json:"estado"`
		FotoURL    *string `json:"foto_url,omitempty"`
	}
	presentes := []presente{}
	for rows.Next() {
		var p presente
		if err := rows.Scan(&p.Email, &p.Nombre, &p.Apellido, &p.UltimaHora, &p.FotoURL); err != nil {
			http.Error(w, "Error leyendo resultados", http.StatusInternalServerError)
			return
		}
		p.Estado = motor.Dentro
		presentes = append(presentes, p)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(presentes)
}

// ObtenerEstadosUsuarios maneja GET /estado_usuarios: la cache de presencia,
// contrastada fila por fila con la derivación sobre registros crudos. Si la
// cache difiere, manda la derivación y la fila se repara de paso.
func ObtenerEstadosUsuarios(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	now := config.Ahora()
	hoy := now.Format("2006-01-02")

	estados, err := db.LeerEstados(ctx)
	if err != nil {
		log.Printf("Error obteniendo estados de usuarios: %v", err)
		http.Error(w, "Error consultando estados", http.StatusInternalServerError)
		return
	}

	for i := range estados {
		registrosHoy, err := db.LeerRegistrosDia(ctx, estados[i].Email, hoy)
		if err != nil {
			log.Printf("Error verificando estado de %s: %v", estados[i].Email, err)
			continue
		}
		real := motor.Fuera
		if motor.Presente(registrosHoy) {
			real = motor.Dentro
		}
		if estados[i].Estado != real {
			log.Printf("Cache de presencia desfasada para %s: %q vs %q, reparando",
				estados[i].Email, estados[i].Estado, real)
			if err := db.GuardarEstado(ctx, estados[i].Email, estados[i].Nombre,
				estados[i].Apellido, real, now); err != nil {
				log.Printf("Error reparando estado de %s: %v", estados[i].Email, err)
			}
			estados[i].Estado = real
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if estados == nil {
		estados = []models.EstadoUsuario{}
	}
	json.NewEncoder(w).Encode(estados)
}

// ActualizarEstadoUsuario maneja PUT /estado_usuario/{email}: corrección
// manual de la cache de presencia.
func ActualizarEstadoUsuario(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	var in struct {
		Estado string `json:"estado"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Datos inválidos", http.StatusBadRequest)
		return
	}
	if in.Estado != motor.Dentro && in.Estado != motor.Fuera {
		in.Estado = motor.Fuera
	}
	ctx := r.Context()

	usuario, err := db.UsuarioPorEmail(ctx, email)
	if err != nil {
		http.Error(w, "Usuario no encontrado", http.StatusNotFound)
		return
	}

	anterior := ""
	if previo, err := db.EstadoDe(ctx, usuario.Email); err == nil && previo != nil {
		anterior = previo.Estado
	}

	if err := db.GuardarEstado(ctx, usuario.Email, usuario.Nombre, usuario.Apellido,
		in.Estado, config.Ahora()); err != nil {
		log.Printf("Error actualizando estado de usuario: %v", err)
		http.Error(w, "Error actualizando estado", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"mensaje":         "Estado de usuario actualizado a '" + in.Estado + "'",
		"estado_anterior": anterior,
	})
}
