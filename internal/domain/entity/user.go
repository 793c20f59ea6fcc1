package entity

import "time"

// Roles de usuario de la aplicación.
const (
	RoleAdmin   = "admin"   // mantiene datos maestros y usuarios
	RolePlanner = "planner" // ejecuta corridas DPS
)

// User usuario del dashboard interno.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // RoleAdmin | RolePlanner
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
