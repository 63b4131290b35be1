package database

import (
	"time"

	"gorm.io/datatypes"
)

// KVEntry is a single JSON value stored under a string key.
type KVEntry struct {
	Key       string         `gorm:"primaryKey;size:128" json:"key"`
	Value     datatypes.JSON `gorm:"type:json;not null"  json:"value"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"      json:"updated_at"`
}

// TableName specifies the table name for KVEntry
func (KVEntry) TableName() string {
	return "kv_entries"
}

// Metadata holds schema bookkeeping values
type Metadata struct {
	Key       string    `gorm:"primaryKey;size:64"`
	Value     string    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Metadata
func (Metadata) TableName() string {
	return "metadata"
}
