package db

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"backend/config"
)

// Pool principal (sistema de acceso)
var Pool *pgxpool.Pool

// ConectarDB inicializa el pool contra la BD de acceso
func ConectarDB() {
	var err error
	Pool, err = pgxpool.New(context.Background(), config.Cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Error creando pool de acceso:", err)
	}

	// Comprobación rápida
	var exists bool
	err = Pool.QueryRow(context.Background(),
		"SELECT EXISTS (SELECT 1 FROM usuarios_permitidos)",
	).Scan(&exists)
	if err != nil {
		log.Fatal("Error comprobando usuarios_permitidos:", err)
	}
	fmt.Println("¿usuarios_permitidos existe?:", exists)
}
