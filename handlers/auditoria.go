// backend/handlers/auditoria.go
package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"backend/db"
	"backend/models"
)

// ObtenerAuditoria maneja GET /admin/auditoria: los eventos más recientes.
// Acepta ?limite=N (por defecto 100).
func ObtenerAuditoria(w http.ResponseWriter, r *http.Request) {
	limite := 100
	if v := r.URL.Query().Get("limite"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limite = n
		}
	}

	eventos, err := db.ListarAuditoria(r.Context(), limite)
	if err != nil {
		log.Printf("Error consultando auditoría: %v", err)
		http.Error(w, "Error consultando auditoría", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if eventos == nil {
		eventos = []models.EventoAuditoria{}
	}
	json.NewEncoder(w).Encode(eventos)
}
