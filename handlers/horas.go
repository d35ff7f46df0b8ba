// backend/handlers/horas.go
package handlers

import (
	"encoding/json"
	"log"
	"math"
	"net/http"

	"github.com/gorilla/mux"

	"backend/db"
	"backend/motor"
)

func redondear(v float64, decimales int) float64 {
	factor := math.Pow10(decimales)
	return math.Round(v*factor) / factor
}

// diasCalendario cuenta las fechas distintas con al menos un registro crudo,
// tenga o no pares completos ese día.
func diasCalendario(registros []motor.Registro) int {
	fechas := make(map[string]bool)
	for _, r := range registros {
		fechas[r.Fecha] = true
	}
	return len(fechas)
}

// ObtenerHorasAcumuladas maneja GET /horas_acumuladas: total de horas
// trabajadas y días equivalentes de cada usuario activo, sumando los
// intervalos válidos de todos sus días.
func ObtenerHorasAcumuladas(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	usuarios, err := db.LeerUsuariosActivos(ctx)
	if err != nil {
		log.Printf("Error al obtener horas acumuladas: %v", err)
		http.Error(w, "Error consultando usuarios", http.StatusInternalServerError)
		return
	}

	resultado := []map[string]interface{}{}
	for _, u := range usuarios {
		registros, err := db.LeerTodosRegistros(ctx, u.Email)
		if err != nil {
			log.Printf("Error consultando registros de %s: %v", u.Email, err)
			http.Error(w, "Error consultando registros", http.StatusInternalServerError)
			return
		}

		acumulado := motor.AcumularHoras(motor.EmparejarPorDia(registros))

		resultado = append(resultado, map[string]interface{}{
			"nombre":          u.Nombre,
			"apellido":        u.Apellido,
			"email":           u.Email,
			"horas_totales":   redondear(acumulado.HorasTotales, 1),
			"dias_asistidos":  redondear(acumulado.DiasEquivalentes, 1),
			"dias_calendario": diasCalendario(registros),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resultado)
}

// ObtenerHorasDetalle maneja GET /horas_detalle/{email}: el desglose por día
// con cada par entrada/salida, marcando los pares cerrados con salida ficticia.
func ObtenerHorasDetalle(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	ctx := r.Context()

	usuario, err := db.UsuarioPorEmail(ctx, email)
	if err != nil {
		http.Error(w, "Usuario no encontrado o inactivo", http.StatusNotFound)
		return
	}

	registros, err := db.LeerTodosRegistros(ctx, usuario.Email)
	if err != nil {
		log.Printf("Error al obtener detalle de horas: %v", err)
		http.Error(w, "Error consultando registros", http.StatusInternalServerError)
		return
	}

	// Agrupar por fecha manteniendo el orden de aparición
	porFecha := make(map[string][]motor.Registro)
	var fechas []string
	for _, reg := range registros {
		if _, ok := porFecha[reg.Fecha]; !ok {
			fechas = append(fechas, reg.Fecha)
		}
		porFecha[reg.Fecha] = append(porFecha[reg.Fecha], reg)
	}

	detalleDias := []map[string]interface{}{}
	horasTotales := 0.0

	for _, fecha := range fechas {
		delDia := porFecha[fecha]
		intervalos := motor.EmparejarDia(delDia)

		pares := []map[string]interface{}{}
		horasDia := 0.0
		for _, iv := range intervalos {
			if !iv.Valido() {
				continue
			}
			horasDia += iv.Duracion()
			pares = append(pares, map[string]interface{}{
				"entrada":     iv.Entrada.String(),
				"salida":      iv.Salida.String(),
				"horas":       redondear(iv.Duracion(), 2),
				"es_ficticio": iv.Ficticio,
			})
		}

		detalleDias = append(detalleDias, map[string]interface{}{
			"fecha":             fecha,
			"registros_totales": len(delDia),
			"pares_completos":   len(pares),
			"pares":             pares,
			"horas_dia":         redondear(horasDia, 2),
		})
		horasTotales += horasDia
	}

	resultado := map[string]interface{}{
		"nombre":          usuario.Nombre,
		"apellido":        usuario.Apellido,
		"email":           usuario.Email,
		"dias_calendario": len(fechas),
		"dias_completos":  redondear(horasTotales/motor.HorasPorDia, 2),
		"horas_totales":   redondear(horasTotales, 2),
		"detalle_dias":    detalleDias,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resultado)
}
