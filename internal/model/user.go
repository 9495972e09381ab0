package model

import "time"

// Role is the closed set of identity roles.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleTeacher Role = "TEACHER"
	RoleStudent Role = "STUDENT"
)

// Valid reports whether r is one of the three recognized roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

// User is an authenticated identity, mapped to users.
type User struct {
	ID            int64      `gorm:"column:user_id;primaryKey;autoIncrement"  json:"user_id"`
	Username      string     `gorm:"type:varchar(50);not null;uniqueIndex"    json:"username"`
	PasswordHash  string     `gorm:"type:varchar(255);not null"               json:"-"`
	Role          Role       `gorm:"type:varchar(20);not null"                json:"role"`
	FullName      string     `gorm:"type:varchar(100)"                        json:"full_name"`
	Email         string     `gorm:"type:varchar(255)"                        json:"email"`
	InstitutionID *int64     `gorm:"column:institution_id"                    json:"institution_id,omitempty"`
	CreatedAt     time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"       json:"created_at"`
	LastLogin     *time.Time `json:"last_login,omitempty"`

	Institution *Institution `gorm:"foreignKey:InstitutionID;references:ID" json:"institution,omitempty"`
}

// TableName sets the table name.
func (User) TableName() string { return "users" }
