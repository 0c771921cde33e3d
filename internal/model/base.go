package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel handles ID (UUID) and standard audit trails
type BaseModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	CreatedBy string `json:"created_by"`
	UpdatedBy string `json:"updated_by"`
	DeletedBy string `json:"deleted_by,omitempty"`
}

func (base *BaseModel) BeforeCreate(tx *gorm.DB) (err error) {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return
}

// LogBase is embedded by the append-only log tables. Rows are never updated,
// so there is no UpdatedAt or soft delete column.
type LogBase struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	Action    string    `gorm:"type:text;not null" json:"action"`
	Comments  string    `gorm:"type:text" json:"comments,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	CreatedBy string    `json:"created_by"`
}

func (l *LogBase) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return
}
