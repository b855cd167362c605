package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID          int64      `json:"id" db:"id" example:"1"`
	Email       string     `json:"email" db:"email" example:"student@alqalam.edu.ye"`
	Password    string     `json:"-" db:"password"` // Hashed, excluded from JSON
	FirstName   string     `json:"firstName" db:"first_name"`
	LastName    string     `json:"lastName" db:"last_name"`
	RoleType    RoleType   `json:"roleType" db:"role_type" example:"STUDENT"`
	IsActive    bool       `json:"isActive" db:"is_active"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

// Student defines the student model based on the 'students' table.
// ProgramKey ties the student to the academic program they are enrolled in.
type Student struct {
	ID             int64  `json:"id" db:"id"`
	UserID         int64  `json:"userId" db:"user_id"`
	StudentNumber  string `json:"studentNumber" db:"student_number" example:"PH2021045"`
	ProgramKey     string `json:"programKey" db:"program_key" example:"pharmacy"`
	Level          int    `json:"level" db:"level" example:"3"` // Current study year, 1-based
	EnrollmentYear int    `json:"enrollmentYear" db:"enrollment_year" example:"2021"`
	Status         string `json:"status" db:"status" example:"ACTIVE"`
	User           *User  `json:"user,omitempty"` // Relation, no db tag
}
