package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "STUDENT"
	RoleAdmin   RoleType = "ADMIN"
)

// Semester identifies one half of an academic year.
type Semester string

const (
	SemesterFirst  Semester = "FIRST"
	SemesterSecond Semester = "SECOND"
	SemesterSummer Semester = "SUMMER"
)
