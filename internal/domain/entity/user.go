package entity

import "time"

// User representa una cuenta del hogar. Modelo de un solo escritor:
// cada usuario es dueño de su propio inventario, sin roles ni empresas.
type User struct {
	ID           string
	Email        string
	PasswordHash string // hash bcrypt, nunca en texto plano después de persistir
	Name         string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
