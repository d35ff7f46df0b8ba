// backend/handlers/registros.go
package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/pkg/errors"

	"backend/config"
	"backend/db"
	"backend/models"
	"backend/motor"
)

// RegistroRequest es el payload de POST /registros. El lector (QR o facial)
// sólo manda el email; fecha, hora y día los pone el servidor en la zona
// configurada, salvo que vengan explícitos de una corrección administrativa.
type RegistroRequest struct {
	Email     string `json:"email"`
	Fecha     string `json:"fecha,omitempty"`
	Hora      string `json:"hora,omitempty"`
	Dia       string `json:"dia,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// candados serializa los escaneos por email: dos escaneos casi simultáneos del
// mismo usuario no deben leer ambos "fuera" y escribir ambos "Entrada".
var candados sync.Map

func candadoDe(email string) *sync.Mutex {
	m, _ := candados.LoadOrStore(email, &sync.Mutex{})
	return m.(*sync.Mutex)
}

// RegistrarScan maneja POST /registros: clasifica el escaneo como Entrada o
// Salida según el último registro del día, lo persiste y actualiza la cache
// de presencia.
func RegistrarScan(w http.ResponseWriter, r *http.Request) {
	var req RegistroRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		http.Error(w, "Datos inválidos", http.StatusBadRequest)
		return
	}
	ctx := r.Context()

	// 1) Verificar que el email corresponda a un usuario permitido activo
	usuario, err := db.UsuarioPorEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, motor.ErrUsuarioNoEncontrado) {
			http.Error(w, "Usuario no encontrado o inactivo", http.StatusNotFound)
			return
		}
		http.Error(w, "Error consultando usuario", http.StatusInternalServerError)
		return
	}

	// 2) Fecha, hora y día del evento en la zona configurada
	now := config.Ahora()
	fecha := req.Fecha
	if fecha == "" {
		fecha = now.Format("2006-01-02")
	}
	hora := req.Hora
	if hora == "" {
		hora = now.Format("15:04:05")
	}
	dia := req.Dia
	if dia == "" {
		dia = motor.DiaEnEspanol(now)
	}
	momento := now
	if req.Timestamp != "" {
		if t, err := time.Parse(time.RFC3339, req.Timestamp); err == nil {
			momento = t.In(config.Ubicacion)
		}
	}

	// 3) Resolver dirección y escribir, serializado por email
	candado := candadoDe(usuario.Email)
	candado.Lock()
	defer candado.Unlock()

	registrosHoy, err := db.LeerRegistrosDia(ctx, usuario.Email, fecha)
	if err != nil {
		http.Error(w, "Error consultando registros", http.StatusInternalServerError)
		return
	}
	tipo := motor.ResolverTipo(registrosHoy)

	nuevoEstado := motor.Fuera
	if tipo == motor.Entrada {
		nuevoEstado = motor.Dentro
	}

	id, err := db.InsertarRegistro(ctx, models.Registro{
		Fecha:        fecha,
		Hora:         hora,
		Dia:          motor.NormalizarDia(dia),
		Nombre:       usuario.Nombre,
		Apellido:     usuario.Apellido,
		Email:        usuario.Email,
		Tipo:         string(tipo),
		AutoGenerado: false,
		Timestamp:    momento,
	})
	if err != nil {
		if errAud := db.InsertarEventoAuditoria(ctx, models.EventoAuditoria{
			Email:         usuario.Email,
			Accion:        "FALLO-INSERT",
			TablaAfectada: "registros",
			Descripcion:   err.Error(),
			Exito:         false,
			ErrorMensaje:  err.Error(),
		}); errAud != nil {
			log.Printf("Error auditando fallo de registro: %v", errAud)
		}

		http.Error(w, "Error guardando registro", http.StatusInternalServerError)
		return
	}

	// 4) Actualizar la cache de presencia en la misma operación lógica
	if err := db.GuardarEstado(ctx, usuario.Email, usuario.Nombre, usuario.Apellido, nuevoEstado, momento); err != nil {
		log.Printf("Error actualizando estado de %s: %v", usuario.Email, err)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"mensaje": "Registro agregado correctamente",
		"id":      id,
		"tipo":    tipo,
		"estado":  nuevoEstado,
		"fecha":   fecha,
		"hora":    hora,
	})
}

// ObtenerRegistros maneja GET /registros: todos los registros, recientes primero.
func ObtenerRegistros(w http.ResponseWriter, r *http.Request) {
	registros, err := db.ListarRegistros(r.Context())
	if err != nil {
		log.Printf("Error en ObtenerRegistros: %v", err)
		http.Error(w, "Error consultando registros", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if registros == nil {
		registros = []models.Registro{}
	}
	json.NewEncoder(w).Encode(registros)
}

// ObtenerRegistrosHoy maneja GET /registros_hoy.
func ObtenerRegistrosHoy(w http.ResponseWriter, r *http.Request) {
	hoy := config.Ahora().Format("2006-01-02")
	registros, err := db.ListarRegistrosFecha(r.Context(), hoy)
	if err != nil {
		log.Printf("Error en ObtenerRegistrosHoy: %v", err)
		http.Error(w, "Error consultando registros", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if registros == nil {
		registros = []models.Registro{}
	}
	json.NewEncoder(w).Encode(registros)
}
