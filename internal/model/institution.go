package model

import "time"

// Institution is a school or college, mapped to institutions.
type Institution struct {
	ID        int64     `gorm:"column:institution_id;primaryKey;autoIncrement" json:"institution_id"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex"         json:"name"`
	Address   string    `gorm:"type:varchar(255)"                              json:"address"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName sets the table name.
func (Institution) TableName() string { return "institutions" }
