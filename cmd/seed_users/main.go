// seed_users crea una credencial de acceso en la base de datos con el
// password hasheado con bcrypt.
//
// Uso: go run ./cmd/seed_users -username admin -password secreto -name "Administrador"
// La conexión sale de la misma configuración que la API (env vars / .env).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Joyeria-api/internal/domain/entity"
	"github.com/jhoicas/Joyeria-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Joyeria-api/pkg/config"
)

func main() {
	username := flag.String("username", "", "username de la credencial (requerido)")
	password := flag.String("password", "", "password en claro, se hashea antes de guardar (requerido)")
	name := flag.String("name", "", "nombre visible del usuario")
	flag.Parse()

	if *username == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "username y password son requeridos")
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashear password: %v\n", err)
		os.Exit(1)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     *username,
		PasswordHash: string(hash),
		Name:         *name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	repo := postgres.NewUserRepository(pool)
	if err := repo.Create(user); err != nil {
		fmt.Fprintf(os.Stderr, "crear usuario: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("usuario %q creado (id %s)\n", user.Username, user.ID)
}
