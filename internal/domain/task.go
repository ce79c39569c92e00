package domain

import "time"

// Task statuses. A task is created as StatusPending and only ever flips
// between the two values.
const (
	StatusPending = "Pendente"
	StatusDone    = "Concluído"
)

type Task struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"not null"`
	Description string `gorm:"type:text;not null"`
	Status      string `gorm:"type:varchar(20);not null;default:Pendente;check:status IN ('Pendente','Concluído')"`
	UserID      uint   `gorm:"not null;index"` // not a foreign key, tasks may reference unknown users
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

