package model

import (
	"time"
)

// BaseModel describes the columns shared by the storefront tables we read from.
// The schema is owned by the storefront app, this service never writes to it.
type BaseModel struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}
