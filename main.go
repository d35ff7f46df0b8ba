// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"backend/config"
	"backend/db"
	"backend/handlers"
)

func habilitarCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Admin-Email")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func main() {
	// 0️⃣ Configuración y conexión a la base de datos
	config.Cargar()
	db.ConectarDB()
	defer db.Pool.Close()

	// 1️⃣ Configurar router y rutas
	r := mux.NewRouter()

	// — PÚBLICAS —
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Backend funcionando correctamente")
	}).Methods("GET")
	r.HandleFunc("/login", handlers.LoginAdmin).Methods("POST")

	// • Registros de acceso (los manda el lector QR/facial)
	r.HandleFunc("/registros", handlers.RegistrarScan).Methods("POST")
	r.HandleFunc("/registros", handlers.ObtenerRegistros).Methods("GET")
	r.HandleFunc("/registros_hoy", handlers.ObtenerRegistrosHoy).Methods("GET")

	// • Presencia
	r.HandleFunc("/ayudantes_presentes", handlers.AyudantesPresentes).Methods("GET")
	r.HandleFunc("/estado_usuarios", handlers.ObtenerEstadosUsuarios).Methods("GET")

	// • Cumplimiento y horas
	r.HandleFunc("/cumplimiento", handlers.ObtenerCumplimiento).Methods("GET")
	r.HandleFunc("/diagnostico_cumplimiento/{email}", handlers.DiagnosticoCumplimiento).Methods("GET")
	r.HandleFunc("/historial_cumplimiento/{email}", handlers.ObtenerHistorialCumplimiento).Methods("GET")
	r.HandleFunc("/horas_acumuladas", handlers.ObtenerHorasAcumuladas).Methods("GET")
	r.HandleFunc("/horas_detalle/{email}", handlers.ObtenerHorasDetalle).Methods("GET")

	// • Usuarios y horarios (lectura)
	r.HandleFunc("/usuarios", handlers.ObtenerUsuarios).Methods("GET")
	r.HandleFunc("/horarios", handlers.ObtenerHorarios).Methods("GET")

	// — ADMINISTRACIÓN —
	adm := r.PathPrefix("/admin").Subrouter()
	adm.Use(handlers.AdminOnlyMiddleware)

	// • Gestión de usuarios permitidos
	adm.HandleFunc("/usuarios", handlers.CrearUsuario).Methods("POST")
	adm.HandleFunc("/usuarios/{id}", handlers.ActualizarUsuario).Methods("PUT")
	adm.HandleFunc("/usuarios/{id}", handlers.DesactivarUsuario).Methods("DELETE")

	// • Gestión de horarios asignados
	adm.HandleFunc("/horarios", handlers.CrearHorario).Methods("POST")
	adm.HandleFunc("/horarios/{id}", handlers.ActualizarHorario).Methods("PUT")
	adm.HandleFunc("/horarios/{id}", handlers.EliminarHorario).Methods("DELETE")

	// • Corrección de presencia y procesos batch
	adm.HandleFunc("/estado_usuario/{email}", handlers.ActualizarEstadoUsuario).Methods("PUT")
	adm.HandleFunc("/procesar_salidas_pendientes", handlers.ProcesarSalidasPendientes).Methods("POST")
	adm.HandleFunc("/reiniciar_cumplimiento", handlers.ReiniciarCumplimiento).Methods("POST")
	adm.HandleFunc("/auditoria", handlers.ObtenerAuditoria).Methods("GET")
	adm.HandleFunc("/credenciales", handlers.CrearAdmin).Methods("POST")

	// 2️⃣ Tareas background

	// 2.1) Cierre diario de salidas pendientes a la hora configurada
	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		var ultimoCierre string
		for range ticker.C {
			now := config.Ahora()
			if now.Format("15:04") != config.Cfg.HoraCierre {
				continue
			}
			hoy := now.Format("2006-01-02")
			if ultimoCierre == hoy {
				continue
			}
			ultimoCierre = hoy
			procesados, err := handlers.EjecutarCierreDiario(context.Background(), hoy)
			if err != nil {
				log.Printf("Error en cierre diario: %v", err)
				continue
			}
			log.Printf("Cierre diario ejecutado: %d salidas generadas", len(procesados))
		}
	}()

	// 2.2) Reinicio semanal de cumplimiento (domingos 23:55)
	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		var ultimoReinicio string
		for range ticker.C {
			now := config.Ahora()
			if now.Weekday() != time.Sunday || now.Format("15:04") != "23:55" {
				continue
			}
			hoy := now.Format("2006-01-02")
			if ultimoReinicio == hoy {
				continue
			}
			ultimoReinicio = hoy
			insertados, err := handlers.EjecutarReinicioSemanal(context.Background())
			if err != nil {
				log.Printf("Error en reinicio semanal: %v", err)
				continue
			}
			log.Printf("Reinicio semanal de cumplimiento ejecutado: %d usuarios archivados", insertados)
		}
	}()

	// 3️⃣ Arrancar servidor
	log.Println("Servidor corriendo en http://localhost:" + config.Cfg.Puerto)
	log.Fatal(http.ListenAndServe(":"+config.Cfg.Puerto, habilitarCORS(r)))
}
