// backend/handlers/login.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"

	"backend/db"
	"backend/models"
	"backend/utils"
)

// LoginRequest es el payload de POST /login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginAdmin maneja POST /login para los administradores del panel web.
func LoginAdmin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Datos inválidos", http.StatusBadRequest)
		return
	}

	// 1) Traer salt y hash
	var salt, hashGuardado []byte
	err := db.Pool.QueryRow(context.Background(),
		`SELECT salt, hash_password
		   FROM credenciales_admin
		  WHERE LOWER(email) = LOWER($1)`,
		req.Email,
	).Scan(&salt, &hashGuardado)
	if err != nil {
		http.Error(w, "Credenciales no encontradas", http.StatusUnauthorized)
		return
	}

	// 2) Comparar hash
	hashIngresado := utils.HashConSalt(req.Password, salt)
	if !bytes.Equal([]byte(hashIngresado), hashGuardado) {
		http.Error(w, "Contraseña incorrecta", http.StatusUnauthorized)
		return
	}

	// 3) Actualizar último acceso
	if _, err := db.Pool.Exec(context.Background(),
		`UPDATE credenciales_admin
		    SET ultimo_acceso = NOW()
		  WHERE LOWER(email) = LOWER($1)`,
		req.Email,
	); err != nil {
		http.Error(w, "Error al actualizar último acceso", http.StatusInternalServerError)
		return
	}

	// 4) Auditoría (opcional)
	if err := db.InsertarEventoAuditoria(context.Background(), models.EventoAuditoria{
		Email:         req.Email,
		Accion:        "LOGIN",
		TablaAfectada: "credenciales_admin",
		Descripcion:   "Inicio de sesión",
		Exito:         true,
	}); err != nil {
		log.Println("Error auditando login:", err)
	}

	// 5) Responder
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"mensaje": "Inicio de sesión exitoso",
		"email":   req.Email,
	})
}

// CrearAdmin maneja POST /admin/credenciales: da de alta un administrador del
// panel. Sólo un administrador existente puede crear otro.
func CrearAdmin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
		req.Email == "" || req.Password == "" {
		http.Error(w, "Datos inválidos", http.StatusBadRequest)
		return
	}

	// 1) Generar salt y hash
	salt, err := utils.GenerarSalt()
	if err != nil {
		http.Error(w, "Error generando credenciales", http.StatusInternalServerError)
		return
	}
	hash := utils.HashConSalt(req.Password, salt)

	// 2) Insertar
	if _, err := db.Pool.Exec(r.Context(), `
		INSERT INTO credenciales_admin (email, salt, hash_password)
		VALUES (LOWER($1), $2, $3)
	`, req.Email, salt, []byte(hash)); err != nil {
		log.Println("Error creando administrador:", err)
		http.Error(w, "Error creando administrador", http.StatusInternalServerError)
		return
	}

	// 3) Auditoría
	creador, _ := AdminEmailFromCtx(r.Context())
	if err := db.InsertarEventoAuditoria(r.Context(), models.EventoAuditoria{
		Email:         creador,
		Accion:        "CREAR-ADMIN",
		TablaAfectada: "credenciales_admin",
		Descripcion:   "Alta de administrador " + req.Email,
		Exito:         true,
	}); err != nil {
		log.Println("Error auditando alta de administrador:", err)
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{
		"mensaje": "Administrador creado correctamente",
		"email":   req.Email,
	})
}
