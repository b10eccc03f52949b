package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-RoomReservationService/internal/config"
	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	roomRepo "github.com/m04kA/SMC-RoomReservationService/internal/infra/storage/room"
	"github.com/m04kA/SMC-RoomReservationService/pkg/ptr"
)

// Начальные данные: комната по умолчанию, вставляется только если её ещё нет.
const defaultRoomName = "CED202 (UECafe)"

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		fmt.Printf("Failed to ping database: %v\n", err)
		os.Exit(1)
	}

	repo := roomRepo.NewRepository(db)

	// Проверяем, существует ли комната с таким именем
	existing, err := repo.GetByName(ctx, defaultRoomName)
	if err != nil && !errors.Is(err, roomRepo.ErrRoomNotFound) {
		fmt.Printf("Failed to check default room: %v\n", err)
		os.Exit(1)
	}

	if existing != nil {
		fmt.Printf("Default room %q already exists (id=%s), skipping\n", defaultRoomName, existing.ID)
		return
	}

	room := &domain.Room{
		ID:       uuid.NewString(),
		Name:     defaultRoomName,
		Capacity: 20,
		Description: ptr.Ptr(
			"Кафе-пространство для спокойной работы: отдельные столы, большой общий стол и проектор для командных встреч.",
		),
	}

	created, err := repo.Create(ctx, room)
	if err != nil {
		fmt.Printf("Failed to insert default room: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Inserted default room %q (id=%s)\n", created.Name, created.ID)
}
