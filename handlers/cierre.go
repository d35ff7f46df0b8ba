// backend/handlers/cierre.go
package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"backend/config"
	"backend/db"
	"backend/models"
	"backend/motor"
)

// SalidaProcesada describe una salida sintética creada por el cierre diario.
type SalidaProcesada struct {
	Email    string `json:"email"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Fecha    string `json:"fecha"`
	Hora     string `json:"hora"`
}

// EjecutarCierreDiario inserta una Salida sintética para cada usuario que
// quedó con una Entrada sin cerrar en la fecha dada, y deja su cache de
// presencia en "fuera". Es idempotente: la condición se re-verifica bajo el
// candado del usuario justo antes de cada inserción, de modo que una segunda
// corrida (o dos cierres concurrentes) no duplica salidas.
func EjecutarCierreDiario(ctx context.Context, fecha string) ([]SalidaProcesada, error) {
	now := config.Ahora()
	if fecha == "" {
		fecha = now.Format("2006-01-02")
	}
	hora := config.Cfg.HoraSalidaAuto

	// El día de la semana es el de la fecha que se cierra, no el de hoy
	dia := motor.DiaEnEspanol(now)
	if t, err := time.ParseInLocation("2006-01-02", fecha, config.Ubicacion); err == nil {
		dia = motor.DiaEnEspanol(t)
	}

	candidatos, err := db.UsuariosConEntradaSinSalida(ctx, fecha)
	if err != nil {
		return nil, err
	}

	procesados := []SalidaProcesada{}
	for _, u := range candidatos {
		candado := candadoDe(u.Email)
		candado.Lock()

		// Re-verificar: otro cierre o un escaneo pudo haber cerrado el día
		pendiente, err := db.TieneEntradaSinSalida(ctx, u.Email, fecha)
		if err != nil {
			candado.Unlock()
			return procesados, err
		}
		if !pendiente {
			candado.Unlock()
			continue
		}

		if _, err := db.InsertarRegistro(ctx, models.Registro{
			Fecha:        fecha,
			Hora:         hora,
			Dia:          dia,
			Nombre:       u.Nombre,
			Apellido:     u.Apellido,
			Email:        u.Email,
			Tipo:         string(motor.Salida),
			AutoGenerado: true,
			Timestamp:    now,
		}); err != nil {
			candado.Unlock()
			return procesados, err
		}

		if err := db.GuardarEstado(ctx, u.Email, u.Nombre, u.Apellido, motor.Fuera, now); err != nil {
			log.Printf("Error actualizando estado de %s tras cierre: %v", u.Email, err)
		}
		candado.Unlock()

		procesados = append(procesados, SalidaProcesada{
			Email:    u.Email,
			Nombre:   u.Nombre,
			Apellido: u.Apellido,
			Fecha:    fecha,
			Hora:     hora,
		})
	}
	return procesados, nil
}

// ProcesarSalidasPendientes maneja POST /procesar_salidas_pendientes.
// Acepta una fecha opcional en el body para cerrar un día anterior.
func ProcesarSalidasPendientes(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Fecha string `json:"fecha,omitempty"`
	}
	// El body puede venir vacío
	_ = json.NewDecoder(r.Body).Decode(&in)

	procesados, err := EjecutarCierreDiario(r.Context(), in.Fecha)
	if err != nil {
		log.Printf("Error al procesar salidas pendientes: %v", err)
		http.Error(w, "Error procesando salidas pendientes", http.StatusInternalServerError)
		return
	}

	fecha := in.Fecha
	if fecha == "" {
		fecha = config.Ahora().Format("2006-01-02")
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"fecha_procesada":   fecha,
		"registros_creados": len(procesados),
		"detalle":           procesados,
	})
}
