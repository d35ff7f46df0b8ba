// backend/handlers/cumplimiento.go
package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"backend/config"
	"backend/db"
	"backend/models"
	"backend/motor"
)

// BloqueInfo es el detalle por bloque que consume el front.
type BloqueInfo struct {
	Bloque string             `json:"bloque"`
	Estado motor.EstadoBloque `json:"estado"`
}

// CumplimientoUsuario es un elemento de la respuesta de GET /cumplimiento.
type CumplimientoUsuario struct {
	Nombre      string              `json:"nombre"`
	Apellido    string              `json:"apellido"`
	Email       string              `json:"email"`
	Estado      motor.EstadoUsuario `json:"estado"`
	Bloques     []string            `json:"bloques"`
	BloquesInfo []BloqueInfo        `json:"bloques_info"`
}

// evaluarBloquesUsuario evalúa cada bloque del usuario contra sus registros.
// Para el bloque de hoy se consultan sólo los registros de hoy; para los demás
// días, los registros de la semana en curso filtrados por nombre de día.
func evaluarBloquesUsuario(ctx context.Context, email string, bloques []motor.Bloque, now time.Time) ([]motor.EstadoBloque, []BloqueInfo, error) {
	diaActual := motor.DiaEnEspanol(now)
	fechaActual := now.Format("2006-01-02")
	inicioSemana := config.InicioSemana(now).Format("2006-01-02")
	horaActual := motor.HoraDe(now)

	estados := make([]motor.EstadoBloque, 0, len(bloques))
	info := make([]BloqueInfo, 0, len(bloques))

	for _, b := range bloques {
		esHoy := b.Dia == diaActual

		var registros []motor.Registro
		var err error
		if esHoy {
			registros, err = db.LeerRegistrosDia(ctx, email, fechaActual)
		} else {
			registros, err = db.LeerRegistrosSemanaDia(ctx, email, b.Dia, inicioSemana, fechaActual)
		}
		if err != nil {
			return nil, nil, err
		}

		intervalos := motor.EmparejarPorDia(registros)
		estado := motor.EvaluarBloque(b, intervalos, esHoy, horaActual, config.Cfg.GraciaMinutos)

		estados = append(estados, estado)
		info = append(info, BloqueInfo{Bloque: b.Etiqueta(), Estado: estado})
	}
	return estados, info, nil
}

// ObtenerCumplimiento maneja GET /cumplimiento: estado semanal de todos los
// usuarios activos, con el detalle por bloque.
func ObtenerCumplimiento(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	now := config.Ahora()

	usuarios, err := db.LeerUsuariosActivos(ctx)
	if err != nil {
		log.Printf("Error en cumplimiento: %v", err)
		http.Error(w, "Error consultando usuarios", http.StatusInternalServerError)
		return
	}

	resultado := []CumplimientoUsuario{}
	for _, u := range usuarios {
		bloques, err := db.BloquesDeUsuario(ctx, u.ID)
		if err != nil {
			log.Printf("Error consultando horarios de %s: %v", u.Email, err)
			http.Error(w, "Error consultando horarios", http.StatusInternalServerError)
			return
		}

		item := CumplimientoUsuario{
			Nombre:      u.Nombre,
			Apellido:    u.Apellido,
			Email:       u.Email,
			Bloques:     []string{},
			BloquesInfo: []BloqueInfo{},
		}

		// Sin horarios asignados no hay nada que evaluar
		if len(bloques) == 0 {
			item.Estado = motor.UsuarioNoAplica
			resultado = append(resultado, item)
			continue
		}

		estados, info, err := evaluarBloquesUsuario(ctx, u.Email, bloques, now)
		if err != nil {
			log.Printf("Error evaluando bloques de %s: %v", u.Email, err)
			http.Error(w, "Error consultando registros", http.StatusInternalServerError)
			return
		}

		item.Estado = motor.ResumirEstados(estados)
		for _, b := range bloques {
			item.Bloques = append(item.Bloques, b.Etiqueta())
		}
		item.BloquesInfo = info
		resultado = append(resultado, item)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resultado)
}

// razonDe explica el estado de un bloque para el diagnóstico.
func razonDe(estado motor.EstadoBloque) string {
	switch estado {
	case motor.BloqueCumplido:
		return "Entrada a tiempo/antes y salida a tiempo/después"
	case motor.BloqueCumpliendo:
		return "El bloque está en curso y el usuario sigue presente"
	case motor.BloqueIncompleto:
		return "Presencia parcial en el bloque"
	case motor.BloquePendiente:
		return "El bloque aún no ha comenzado"
	case motor.BloqueAtrasado:
		return "El bloque está en curso pero no hay registro de entrada"
	default:
		return "El bloque ya pasó y no hubo asistencia completa"
	}
}

// DiagnosticoCumplimiento maneja GET /diagnostico_cumplimiento/{email}:
// la evaluación completa de un usuario con registros, intervalos y razones.
func DiagnosticoCumplimiento(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	ctx := r.Context()
	now := config.Ahora()

	usuario, err := db.UsuarioPorEmail(ctx, email)
	if err != nil {
		http.Error(w, "Usuario no encontrado", http.StatusNotFound)
		return
	}

	bloques, err := db.BloquesDeUsuario(ctx, usuario.ID)
	if err != nil {
		http.Error(w, "Error consultando horarios", http.StatusInternalServerError)
		return
	}

	inicioSemana := config.InicioSemana(now).Format("2006-01-02")
	fechaActual := now.Format("2006-01-02")

	registros, err := db.ListarRegistros(ctx)
	if err != nil {
		http.Error(w, "Error consultando registros", http.StatusInternalServerError)
		return
	}
	registrosSemana := []models.Registro{}
	for _, reg := range registros {
		if reg.Email == usuario.Email && reg.Fecha >= inicioSemana && reg.Fecha <= fechaActual {
			registrosSemana = append(registrosSemana, reg)
		}
	}

	estados, info, err := evaluarBloquesUsuario(ctx, usuario.Email, bloques, now)
	if err != nil {
		http.Error(w, "Error consultando registros", http.StatusInternalServerError)
		return
	}

	analisis := []map[string]interface{}{}
	for i, b := range bloques {
		analisis = append(analisis, map[string]interface{}{
			"dia":          b.Dia,
			"hora_entrada": b.Entrada.String(),
			"hora_salida":  b.Salida.String(),
			"estado":       info[i].Estado,
			"razon":        razonDe(info[i].Estado),
		})
	}

	resultado := map[string]interface{}{
		"usuario": map[string]interface{}{
			"id":       usuario.ID,
			"nombre":   usuario.Nombre,
			"apellido": usuario.Apellido,
			"email":    usuario.Email,
		},
		"fecha_actual":     fechaActual,
		"hora_actual":      motor.HoraDe(now).String(),
		"dia_actual":       motor.DiaEnEspanol(now),
		"inicio_semana":    inicioSemana,
		"registros":        registrosSemana,
		"analisis_bloques": analisis,
		"estado_general":   motor.ResumirEstados(estados),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resultado)
}

// EjecutarReinicioSemanal archiva el cumplimiento de la semana que termina en
// historial_cumplimiento y deja la marca de nueva semana. Lo usan el endpoint
// y la tarea de los domingos. Para el archivo todos los bloques se evalúan
// como días pasados: al cierre de la semana ya no hay Pendiente ni Atrasado.
func EjecutarReinicioSemanal(ctx context.Context) (int, error) {
	now := config.Ahora()
	inicioSemana := config.InicioSemana(now)
	finSemana := inicioSemana.AddDate(0, 0, 6)
	fechaActual := now.Format("2006-01-02")

	usuarios, err := db.LeerUsuariosActivos(ctx)
	if err != nil {
		return 0, err
	}

	insertados := 0
	for _, u := range usuarios {
		bloques, err := db.BloquesDeUsuario(ctx, u.ID)
		if err != nil {
			return insertados, err
		}
		if len(bloques) == 0 {
			continue
		}

		estados := make([]motor.EstadoBloque, 0, len(bloques))
		for _, b := range bloques {
			registros, err := db.LeerRegistrosSemanaDia(ctx, u.Email, b.Dia,
				inicioSemana.Format("2006-01-02"), fechaActual)
			if err != nil {
				return insertados, err
			}
			intervalos := motor.EmparejarPorDia(registros)
			estados = append(estados, motor.EvaluarBloque(b, intervalos, false, 0, 0))
		}

		conteo := motor.ContarEstados(estados)
		if err := db.InsertarHistorial(ctx, models.HistorialCumplimiento{
			UsuarioID:    u.ID,
			Email:        u.Email,
			Nombre:       u.Nombre,
			Apellido:     u.Apellido,
			SemanaInicio: inicioSemana.Format("2006-01-02"),
			SemanaFin:    finSemana.Format("2006-01-02"),
			Estado:       string(motor.ResumirEstados(estados)),
			Cumplidos:    conteo.Cumplidos,
			Incompletos:  conteo.Incompletos,
			Ausentes:     conteo.Ausentes,
		}); err != nil {
			return insertados, err
		}
		insertados++
	}

	if err := db.MarcarReinicio(ctx, fechaActual); err != nil {
		return insertados, err
	}
	return insertados, nil
}

// ReiniciarCumplimiento maneja POST /reiniciar_cumplimiento.
func ReiniciarCumplimiento(w http.ResponseWriter, r *http.Request) {
	insertados, err := EjecutarReinicioSemanal(r.Context())
	if err != nil {
		log.Printf("Error en reinicio de cumplimiento: %v", err)
		http.Error(w, "Error en reinicio de cumplimiento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"mensaje":             "Reinicio de cumplimiento semanal completado",
		"fecha_reinicio":      config.Ahora().Format("2006-01-02"),
		"registros_historial": insertados,
	})
}

// ObtenerHistorialCumplimiento maneja GET /historial_cumplimiento/{email}.
func ObtenerHistorialCumplimiento(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	historial, err := db.LeerHistorial(r.Context(), email)
	if err != nil {
		log.Printf("Error al obtener historial de cumplimiento: %v", err)
		http.Error(w, "Error consultando historial", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if historial == nil {
		historial = []models.HistorialCumplimiento{}
	}
	json.NewEncoder(w).Encode(historial)
}
