// backend/motor/direccion.go
package motor

import "sort"

// OrdenarRegistros deja los registros de un día en su orden de llegada:
// por hora y, ante horas idénticas, por id de inserción.
func OrdenarRegistros(registros []Registro) {
	sort.SliceStable(registros, func(i, j int) bool {
		if registros[i].Hora != registros[j].Hora {
			return registros[i].Hora < registros[j].Hora
		}
		return registros[i].ID < registros[j].ID
	})
}

// UltimoRegistro devuelve el registro más reciente según (hora, id), o nil si
// no hay ninguno.
func UltimoRegistro(registros []Registro) *Registro {
	var ultimo *Registro
	for i := range registros {
		r := &registros[i]
		if ultimo == nil || r.Hora > ultimo.Hora ||
			(r.Hora == ultimo.Hora && r.ID > ultimo.ID) {
			ultimo = r
		}
	}
	return ultimo
}

// ResolverTipo decide si un nuevo escaneo es Entrada o Salida a partir de los
// registros del día. Sin registros previos, o con la última siendo Salida, el
// nuevo es Entrada; con la última siendo Entrada, el nuevo es Salida.
//
// La función es pura: quien la llama es responsable de persistir el registro
// resultante y de actualizar estado_usuarios en la misma transacción lógica.
func ResolverTipo(registrosHoy []Registro) Tipo {
	ultimo := UltimoRegistro(registrosHoy)
	if ultimo == nil || ultimo.Tipo == Salida {
		return Entrada
	}
	return Salida
}

// Presente indica si el usuario está dentro: su último registro de hoy es una
// Entrada. Esta derivación sobre registros crudos es la fuente de verdad; la
// tabla estado_usuarios es sólo una optimización de lectura.
func Presente(registrosHoy []Registro) bool {
	ultimo := UltimoRegistro(registrosHoy)
	return ultimo != nil && ultimo.Tipo == Entrada
}
