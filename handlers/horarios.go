// backend/handlers/horarios.go
package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"backend/db"
	"backend/models"
	"backend/motor"
)

// validarHorario revisa que el bloque tenga día conocido y hora_entrada <
// hora_salida. Los horarios quedan inmutables durante cada evaluación de
// cumplimiento: la evaluación trabaja sobre la foto que leyó al empezar.
func validarHorario(h models.Horario) string {
	entrada, err := motor.ParseHora(h.HoraEntrada)
	if err != nil {
		return "hora_entrada inválida"
	}
	salida, err := motor.ParseHora(h.HoraSalida)
	if err != nil {
		return "hora_salida inválida"
	}
	if entrada >= salida {
		return "hora_entrada debe ser anterior a hora_salida"
	}
	return ""
}

// ObtenerHorarios maneja GET /horarios: todos los bloques asignados.
func ObtenerHorarios(w http.ResponseWriter, r *http.Request) {
	horarios, err := db.ListarHorarios(r.Context())
	if err != nil {
		log.Printf("Error en ObtenerHorarios: %v", err)
		http.Error(w, "Error consultando horarios", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if horarios == nil {
		horarios = []models.Horario{}
	}
	json.NewEncoder(w).Encode(horarios)
}

// CrearHorario maneja POST /horarios.
func CrearHorario(w http.ResponseWriter, r *http.Request) {
	var in models.Horario
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.UsuarioID == 0 || in.Dia == "" {
		http.Error(w, "Datos inválidos", http.StatusBadRequest)
		return
	}
	if msg := validarHorario(in); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	id, err := db.CrearHorario(r.Context(), in)
	if err != nil {
		log.Printf("Error creando horario: %v", err)
		http.Error(w, "Error creando horario", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"mensaje": "Horario creado correctamente",
		"id":      id,
	})
}

// ActualizarHorario maneja PUT /horarios/{id}.
func ActualizarHorario(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "id inválido", http.StatusBadRequest)
		return
	}
	var in models.Horario
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Datos inválidos", http.StatusBadRequest)
		return
	}
	if msg := validarHorario(in); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	in.ID = id

	if err := db.ActualizarHorario(r.Context(), in); err != nil {
		log.Printf("Error actualizando horario: %v", err)
		http.Error(w, "Error actualizando horario", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"mensaje": "Horario actualizado correctamente"})
}

// EliminarHorario maneja DELETE /horarios/{id}.
func EliminarHorario(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "id inválido", http.StatusBadRequest)
		return
	}

	if err := db.EliminarHorario(r.Context(), id); err != nil {
		log.Printf("Error eliminando horario: %v", err)
		http.Error(w, "Error eliminando horario", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"mensaje": "Horario eliminado correctamente"})
}
