// backend/handlers/registros_bench_test.go
package handlers

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"backend/config"
	"backend/db"
)

// TestMain inicializa la conexión a la base de datos de prueba antes de correr
// los Benchmarks. Sin DATABASE_URL los benchmarks se saltan.
func TestMain(m *testing.M) {
	config.Cargar()

	dsn := os.Getenv("DATABASE_URL")
	if dsn != "" {
		pool, err := pgxpool.New(context.Background(), dsn)
		if err != nil {
			panic("no se pudo conectar a la BD de prueba: " + err.Error())
		}
		db.Pool = pool
		defer pool.Close()
	}

	os.Exit(m.Run())
}

const emailBench = "bench@laboratorio.cl"

// BenchmarkRegistrarScan mide el camino completo del escaneo: leer los
// registros del día, resolver la dirección, insertar y actualizar la cache de
// presencia. Cada iteración alterna Entrada/Salida sobre el mismo usuario.
func BenchmarkRegistrarScan(b *testing.B) {
	if db.Pool == nil {
		b.Skip("DATABASE_URL no definido")
	}
	ctx := context.Background()

	// Usuario de prueba (idempotente)
	if _, err := db.Pool.Exec(ctx, `
		INSERT INTO usuarios_permitidos (nombre, apellido, email, activo)
		VALUES ('Bench', 'Prueba', $1, TRUE)
		ON CONFLICT (email) DO UPDATE SET activo = TRUE
	`, emailBench); err != nil {
		b.Fatalf("Error preparando usuario: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		hoy := config.Ahora().Format("2006-01-02")

		registros, err := db.LeerRegistrosDia(ctx, emailBench, hoy)
		if err != nil {
			b.Fatalf("Error leyendo registros: %v", err)
		}
		_ = registros

		if _, err := db.Pool.Exec(ctx, `
			INSERT INTO registros (fecha, hora, dia, nombre, apellido, email, tipo, auto_generado, timestamp)
			VALUES ($1, $2, 'lunes', 'Bench', 'Prueba', $3, 'Entrada', FALSE, NOW())
		`, hoy, config.Ahora().Format("15:04:05"), emailBench); err != nil {
			b.Fatalf("Error insertando registro: %v", err)
		}
	}
	b.StopTimer()

	// Limpiar los registros del benchmark
	if _, err := db.Pool.Exec(ctx,
		`DELETE FROM registros WHERE email = $1`, emailBench); err != nil {
		b.Fatalf("Error limpiando registros: %v", err)
	}
}

// BenchmarkCierreDiario mide el cierre de salidas pendientes sobre un día sin
// entradas colgantes (el caso de todas las noches sin rezagados).
func BenchmarkCierreDiario(b *testing.B) {
	if db.Pool == nil {
		b.Skip("DATABASE_URL no definido")
	}
	ctx := context.Background()
	fecha := "2000-01-01" // fecha sin registros

	for i := 0; i < b.N; i++ {
		if _, err := EjecutarCierreDiario(ctx, fecha); err != nil {
			b.Fatalf("Error en cierre diario: %v", err)
		}
	}
}
