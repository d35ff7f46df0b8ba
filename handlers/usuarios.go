// backend/handlers/usuarios.go
package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/lib/pq"
	pkgerrors "github.com/pkg/errors"

	"backend/db"
	"backend/models"
	"backend/motor"
)

// ObtenerUsuarios maneja GET /usuarios: los usuarios permitidos activos.
func ObtenerUsuarios(w http.ResponseWriter, r *http.Request) {
	usuarios, err := db.LeerUsuariosActivos(r.Context())
	if err != nil {
		log.Printf("Error en ObtenerUsuarios: %v", err)
		http.Error(w, "Error consultando usuarios", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if usuarios == nil {
		usuarios = []models.Usuario{}
	}
	json.NewEncoder(w).Encode(usuarios)
}

// CrearUsuario maneja POST /usuarios: alta administrativa de un usuario.
func CrearUsuario(w http.ResponseWriter, r *http.Request) {
	var in models.Usuario
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil ||
		in.Nombre == "" || in.Apellido == "" || in.Email == "" {
		http.Error(w, "Datos inválidos", http.StatusBadRequest)
		return
	}

	id, err := db.CrearUsuario(r.Context(), in)
	if err != nil {
		// si el email ya existía
		if pqErr, ok := pkgerrors.Cause(err).(*pq.Error); ok && pqErr.Code == "23505" {
			http.Error(w, "Email ya registrado", http.StatusConflict)
			return
		}
		log.Printf("Error creando usuario: %v", err)
		http.Error(w, "Error al crear usuario", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"mensaje": "Usuario creado correctamente",
		"id":      id,
	})
}

// ActualizarUsuario maneja PUT /usuarios/{id}.
func ActualizarUsuario(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "id inválido", http.StatusBadRequest)
		return
	}
	var in models.Usuario
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Datos inválidos", http.StatusBadRequest)
		return
	}
	in.ID = id

	if err := db.ActualizarUsuario(r.Context(), in); err != nil {
		if pkgerrors.Is(err, motor.ErrUsuarioNoEncontrado) {
			http.Error(w, "Usuario no encontrado", http.StatusNotFound)
			return
		}
		log.Printf("Error actualizando usuario: %v", err)
		http.Error(w, "Error actualizando usuario", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"mensaje": "Usuario actualizado correctamente"})
}

// DesactivarUsuario maneja DELETE /usuarios/{id}: borrado lógico. Los
// registros históricos del usuario se conservan.
func DesactivarUsuario(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "id inválido", http.StatusBadRequest)
		return
	}

	if err := db.DesactivarUsuario(r.Context(), id); err != nil {
		if pkgerrors.Is(err, motor.ErrUsuarioNoEncontrado) {
			http.Error(w, "Usuario no encontrado", http.StatusNotFound)
			return
		}
		log.Printf("Error desactivando usuario: %v", err)
		http.Error(w, "Error desactivando usuario", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"mensaje": "Usuario desactivado correctamente"})
}
