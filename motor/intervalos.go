// backend/motor/intervalos.go
package motor

// EmparejarDia agrupa los registros de un usuario en un día en intervalos
// entrada/salida. El emparejamiento es estrictamente posicional sobre el orden
// (hora, id): registros[0] con registros[1], registros[2] con registros[3], y
// así. El campo Tipo de cada registro es informativo (lo escribió el resolutor
// de dirección al momento del escaneo) pero no manda aquí: un doble escaneo o
// un registro borrado por un administrador lo dejaría inconsistente.
//
// Si la cantidad de registros es impar, al último se le sintetiza una salida a
// las 23:59:59 del mismo día, marcada Ficticio, para que toda entrada aporte
// alguna duración en vez de descartarse.
func EmparejarDia(registros []Registro) []Intervalo {
	if len(registros) == 0 {
		return nil
	}

	orden := make([]Registro, len(registros))
	copy(orden, registros)
	OrdenarRegistros(orden)

	// Cola impar: cerrar con salida ficticia
	if len(orden)%2 != 0 {
		ultimo := orden[len(orden)-1]
		orden = append(orden, Registro{
			ID:       ultimo.ID,
			Fecha:    ultimo.Fecha,
			Hora:     FinDelDia,
			Tipo:     Salida,
			Ficticio: true,
		})
	}

	intervalos := make([]Intervalo, 0, len(orden)/2)
	for i := 0; i+1 < len(orden); i += 2 {
		intervalos = append(intervalos, Intervalo{
			Fecha:    orden[i].Fecha,
			Entrada:  orden[i].Hora,
			Salida:   orden[i+1].Hora,
			Ficticio: orden[i+1].Ficticio,
		})
	}
	return intervalos
}

// EmparejarPorDia separa los registros por fecha y empareja cada día por
// separado. Los registros pueden venir en cualquier orden.
func EmparejarPorDia(registros []Registro) []Intervalo {
	porFecha := make(map[string][]Registro)
	var fechas []string
	for _, r := range registros {
		if _, ok := porFecha[r.Fecha]; !ok {
			fechas = append(fechas, r.Fecha)
		}
		porFecha[r.Fecha] = append(porFecha[r.Fecha], r)
	}

	var intervalos []Intervalo
	for _, f := range fechas {
		intervalos = append(intervalos, EmparejarDia(porFecha[f])...)
	}
	return intervalos
}
