// backend/motor/tipos.go
package motor

// Tipo indica la dirección de un registro de acceso.
type Tipo string

const (
	Entrada Tipo = "Entrada"
	Salida  Tipo = "Salida"
)

// Registro es la vista que el motor tiene de una fila de la tabla registros.
// El adaptador de la base construye estos valores con la hora ya normalizada;
// el motor no hace I/O.
type Registro struct {
	ID       int64
	Fecha    string // YYYY-MM-DD
	Hora     Hora
	Tipo     Tipo
	Ficticio bool // salida sintética insertada por el cierre diario o el emparejador
}

// Bloque es un tramo horario asignado a un usuario para un día de la semana.
// Invariante: Entrada < Salida.
type Bloque struct {
	Dia     string // nombre del día en español, minúsculas
	Entrada Hora
	Salida  Hora
}

// Etiqueta devuelve la descripción "dia HH:MM:SS-HH:MM:SS" que usa el front.
func (b Bloque) Etiqueta() string {
	return b.Dia + " " + b.Entrada.String() + "-" + b.Salida.String()
}

// Intervalo es un par entrada/salida derivado de los registros de un día.
// No se persiste; se recalcula en cada evaluación.
type Intervalo struct {
	Fecha    string
	Entrada  Hora
	Salida   Hora
	Ficticio bool // la salida fue sintetizada (23:59:59)
}

// Valido indica si el intervalo aporta duración. Diferencias negativas o cero
// se descartan, no se recortan, para no contaminar los totales con relojes
// desfasados.
func (iv Intervalo) Valido() bool {
	return iv.Salida > iv.Entrada
}

// Duracion devuelve las horas del intervalo, o 0 si no es válido.
func (iv Intervalo) Duracion() float64 {
	if !iv.Valido() {
		return 0
	}
	return (iv.Salida - iv.Entrada).Horas()
}

// EstadoBloque es el estado de un bloque horario en una evaluación. Se
// recalcula en cada consulta; no es una máquina de estados persistida.
type EstadoBloque string

const (
	BloquePendiente  EstadoBloque = "Pendiente"
	BloqueCumpliendo EstadoBloque = "Cumpliendo"
	BloqueAtrasado   EstadoBloque = "Atrasado"
	BloqueCumplido   EstadoBloque = "Cumplido"
	BloqueIncompleto EstadoBloque = "Incompleto"
	BloqueAusente    EstadoBloque = "Ausente"
)

// EstadoUsuario es el estado semanal agregado de un usuario.
type EstadoUsuario string

const (
	UsuarioNoAplica   EstadoUsuario = "No Aplica"
	UsuarioCumple     EstadoUsuario = "Cumple"
	UsuarioAusente    EstadoUsuario = "Ausente"
	UsuarioIncompleto EstadoUsuario = "Incompleto"
	UsuarioPendiente  EstadoUsuario = "Pendiente"
	UsuarioNoCumple   EstadoUsuario = "No Cumple"
)

// EstadoPresencia son los valores de la tabla estado_usuarios.
const (
	Dentro = "dentro"
	Fuera  = "fuera"
)
