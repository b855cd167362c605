package dto

import (
	"github.com/alqalam/college-backend/internal/app/models"
)

// StudentProfileResponse is the portal profile view of the signed-in student
type StudentProfileResponse struct {
	StudentNumber  string `json:"studentNumber"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	ProgramKey     string `json:"programKey"`
	ProgramTitleAr string `json:"programTitleAr"`
	Level          int    `json:"level"`
	EnrollmentYear int    `json:"enrollmentYear"`
	Status         string `json:"status"`
}

// DashboardResponse is the composed portal landing view
type DashboardResponse struct {
	Student             StudentProfileResponse `json:"student"`
	GPA                 float64                `json:"gpa"`
	EarnedCreditHours   int                    `json:"earnedCreditHours"`
	UnreadNotifications int                    `json:"unreadNotifications"`
	OutstandingBalance  float64                `json:"outstandingBalance"`
	TodaySchedule       []models.ScheduleEntry `json:"todaySchedule"`
	RecentNotifications []models.Notification  `json:"recentNotifications"`
}

// SemesterGrades groups one semester's grades with its aggregates
type SemesterGrades struct {
	AcademicYear string          `json:"academicYear"`
	Semester     models.Semester `json:"semester"`
	Grades       []models.Grade  `json:"grades"`
	CreditHours  int             `json:"creditHours"`
	SemesterGPA  float64         `json:"semesterGpa"`
}

// GradesResponse is the full transcript grouped by semester
type GradesResponse struct {
	Semesters        []SemesterGrades `json:"semesters"`
	CumulativeGPA    float64          `json:"cumulativeGpa"`
	TotalCreditHours int              `json:"totalCreditHours"`
	CompletedCourses int              `json:"completedCourses"`
}

// MarkNotificationReadRequest marks one notification as read
type MarkNotificationReadRequest struct {
	NotificationID int64 `json:"notificationId" binding:"required"`
}
