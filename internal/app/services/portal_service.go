package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alqalam/college-backend/internal/app/models"
	"github.com/alqalam/college-backend/internal/app/models/dto"
	"github.com/alqalam/college-backend/internal/app/repositories"
	"github.com/alqalam/college-backend/internal/pkg/apperrors"
	"github.com/alqalam/college-backend/internal/pkg/helpers"
	"github.com/alqalam/college-backend/internal/pkg/logger"
)

// portalReadRetries is how many extra attempts portal read queries get on
// transient failures before the error is surfaced.
const portalReadRetries = 2

// recentNotificationLimit caps the dashboard notification strip.
const recentNotificationLimit = 5

// PortalService composes the student-facing read surface: profile,
// dashboard, transcript, schedule, documents, payments and notifications.
type PortalService struct {
	studentRepo      *repositories.StudentRepository
	programRepo      *repositories.ProgramRepository
	gradeRepo        *repositories.GradeRepository
	scheduleRepo     *repositories.ScheduleRepository
	documentRepo     *repositories.DocumentRepository
	paymentRepo      *repositories.PaymentRepository
	notificationRepo *repositories.NotificationRepository
}

// NewPortalService creates a new portal service instance
func NewPortalService(
	studentRepo *repositories.StudentRepository,
	programRepo *repositories.ProgramRepository,
	gradeRepo *repositories.GradeRepository,
	scheduleRepo *repositories.ScheduleRepository,
	documentRepo *repositories.DocumentRepository,
	paymentRepo *repositories.PaymentRepository,
	notificationRepo *repositories.NotificationRepository,
) *PortalService {
	return &PortalService{
		studentRepo:      studentRepo,
		programRepo:      programRepo,
		gradeRepo:        gradeRepo,
		scheduleRepo:     scheduleRepo,
		documentRepo:     documentRepo,
		paymentRepo:      paymentRepo,
		notificationRepo: notificationRepo,
	}
}

// Profile returns the portal profile of the signed-in student
func (s *PortalService) Profile(ctx context.Context, userID int64) (*dto.StudentProfileResponse, error) {
	student, err := s.student(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile := s.profileOf(ctx, student)
	return &profile, nil
}

// Dashboard composes the portal landing view for the signed-in student
func (s *PortalService) Dashboard(ctx context.Context, userID int64) (*dto.DashboardResponse, error) {
	student, err := s.student(ctx, userID)
	if err != nil {
		return nil, err
	}

	grades, err := retryRead(ctx, func() ([]models.Grade, error) {
		return s.gradeRepo.ListByStudent(ctx, student.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("error loading grades for dashboard: %w", err)
	}

	unread, err := retryRead(ctx, func() (int, error) {
		return s.notificationRepo.UnreadCount(ctx, student.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("error loading unread count for dashboard: %w", err)
	}

	balance, err := retryRead(ctx, func() (float64, error) {
		return s.paymentRepo.OutstandingBalance(ctx, student.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("error loading balance for dashboard: %w", err)
	}

	now := time.Now()
	schedule, err := retryRead(ctx, func() ([]models.ScheduleEntry, error) {
		return s.scheduleRepo.ListForProgramLevel(ctx, student.ProgramKey, student.Level, currentSemester(now))
	})
	if err != nil {
		return nil, fmt.Errorf("error loading schedule for dashboard: %w", err)
	}
	today := filterDay(schedule, teachingDay(now))

	recent, err := retryRead(ctx, func() ([]models.Notification, error) {
		return s.notificationRepo.ListByStudent(ctx, student.ID, recentNotificationLimit)
	})
	if err != nil {
		return nil, fmt.Errorf("error loading notifications for dashboard: %w", err)
	}

	gpa, credits := transcriptTotals(grades)
	return &dto.DashboardResponse{
		Student:             s.profileOf(ctx, student),
		GPA:                 gpa,
		EarnedCreditHours:   credits,
		UnreadNotifications: unread,
		OutstandingBalance:  balance,
		TodaySchedule:       today,
		RecentNotifications: recent,
	}, nil
}

// Grades returns the full transcript grouped by semester
func (s *PortalService) Grades(ctx context.Context, userID int64) (*dto.GradesResponse, error) {
	student, err := s.student(ctx, userID)
	if err != nil {
		return nil, err
	}

	grades, err := retryRead(ctx, func() ([]models.Grade, error) {
		return s.gradeRepo.ListByStudent(ctx, student.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("error loading grades: %w", err)
	}

	return groupGrades(grades), nil
}

// Schedule returns the weekly schedule of the student's program level
func (s *PortalService) Schedule(ctx context.Context, userID int64, semester models.Semester) ([]models.ScheduleEntry, error) {
	student, err := s.student(ctx, userID)
	if err != nil {
		return nil, err
	}
	if semester == "" {
		semester = currentSemester(time.Now())
	}

	entries, err := retryRead(ctx, func() ([]models.ScheduleEntry, error) {
		return s.scheduleRepo.ListForProgramLevel(ctx, student.ProgramKey, student.Level, semester)
	})
	if err != nil {
		return nil, fmt.Errorf("error loading schedule: %w", err)
	}
	return entries, nil
}

// Documents lists the student's documents, newest first
func (s *PortalService) Documents(ctx context.Context, userID int64) ([]models.StudentDocument, error) {
	student, err := s.student(ctx, userID)
	if err != nil {
		return nil, err
	}

	docs, err := retryRead(ctx, func() ([]models.StudentDocument, error) {
		return s.documentRepo.ListByStudent(ctx, student.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("error loading documents: %w", err)
	}
	return docs, nil
}

// Payments lists the student's fee records
func (s *PortalService) Payments(ctx context.Context, userID int64) ([]models.PaymentRecord, error) {
	student, err := s.student(ctx, userID)
	if err != nil {
		return nil, err
	}

	payments, err := retryRead(ctx, func() ([]models.PaymentRecord, error) {
		return s.paymentRepo.ListByStudent(ctx, student.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("error loading payments: %w", err)
	}
	return payments, nil
}

// Notifications lists one page of the student's notifications, newest first,
// and returns the total notification count for pagination.
func (s *PortalService) Notifications(ctx context.Context, userID int64, page, size int) ([]models.Notification, int64, error) {
	student, err := s.student(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)

	type notificationPage struct {
		items []models.Notification
		total int64
	}
	result, err := retryRead(ctx, func() (notificationPage, error) {
		items, total, err := s.notificationRepo.ListPage(ctx, student.ID, offset, limit)
		return notificationPage{items: items, total: total}, err
	})
	if err != nil {
		return nil, 0, fmt.Errorf("error loading notifications: %w", err)
	}
	return result.items, result.total, nil
}

// MarkNotificationRead flags one of the student's notifications as read
func (s *PortalService) MarkNotificationRead(ctx context.Context, userID, notificationID int64) error {
	student, err := s.student(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.notificationRepo.MarkRead(ctx, student.ID, notificationID); err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrResourceNotFound
		}
		return fmt.Errorf("error marking notification read: %w", err)
	}
	return nil
}

// student resolves the student profile behind a portal request
func (s *PortalService) student(ctx context.Context, userID int64) (*models.Student, error) {
	student, err := retryRead(ctx, func() (*models.Student, error) {
		return s.studentRepo.GetByUserID(ctx, userID)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrNoStudentProfile
		}
		return nil, fmt.Errorf("error loading student profile: %w", err)
	}
	return student, nil
}

// profileOf builds the profile view. A missing program only blanks the
// program title; the profile itself still renders.
func (s *PortalService) profileOf(ctx context.Context, student *models.Student) dto.StudentProfileResponse {
	profile := dto.StudentProfileResponse{
		StudentNumber:  student.StudentNumber,
		ProgramKey:     student.ProgramKey,
		Level:          student.Level,
		EnrollmentYear: student.EnrollmentYear,
		Status:         student.Status,
	}
	if student.User != nil {
		profile.FirstName = student.User.FirstName
		profile.LastName = student.User.LastName
		profile.Email = student.User.Email
	}

	program, err := s.programRepo.GetByKey(ctx, student.ProgramKey)
	if err != nil {
		if !errors.Is(err, repositories.ErrProgramNotFound) {
			logger.Warn().Err(err).Str("programKey", student.ProgramKey).Msg("Failed to load program for profile")
		}
		return profile
	}
	profile.ProgramTitleAr = program.TitleAr

	return profile
}

// groupGrades buckets a transcript into semester groups, preserving the
// academic_year/semester ordering the repository returns.
func groupGrades(grades []models.Grade) *dto.GradesResponse {
	resp := &dto.GradesResponse{Semesters: []dto.SemesterGrades{}}

	var current *dto.SemesterGrades
	for _, g := range grades {
		if current == nil || current.AcademicYear != g.AcademicYear || current.Semester != g.Semester {
			resp.Semesters = append(resp.Semesters, dto.SemesterGrades{
				AcademicYear: g.AcademicYear,
				Semester:     g.Semester,
				Grades:       []models.Grade{},
			})
			current = &resp.Semesters[len(resp.Semesters)-1]
		}
		current.Grades = append(current.Grades, g)
	}

	for i := range resp.Semesters {
		gpa, credits := transcriptTotals(resp.Semesters[i].Grades)
		resp.Semesters[i].SemesterGPA = gpa
		resp.Semesters[i].CreditHours = credits
	}

	gpa, credits := transcriptTotals(grades)
	resp.CumulativeGPA = gpa
	resp.TotalCreditHours = credits
	for _, g := range grades {
		if g.GradePoints > 0 {
			resp.CompletedCourses++
		}
	}

	return resp
}

// transcriptTotals returns the credit-weighted GPA and the credit hours of
// the passed courses in the given grade set.
func transcriptTotals(grades []models.Grade) (gpa float64, earnedCredits int) {
	points := 0.0
	attemptedCredits := 0
	for _, g := range grades {
		points += g.GradePoints * float64(g.CreditHours)
		attemptedCredits += g.CreditHours
		if g.GradePoints > 0 {
			earnedCredits += g.CreditHours
		}
	}
	if attemptedCredits == 0 {
		return 0, 0
	}
	return points / float64(attemptedCredits), earnedCredits
}

// currentSemester maps a calendar date onto the academic semester.
func currentSemester(t time.Time) models.Semester {
	switch t.Month() {
	case time.September, time.October, time.November, time.December, time.January:
		return models.SemesterFirst
	case time.February, time.March, time.April, time.May, time.June:
		return models.SemesterSecond
	default:
		return models.SemesterSummer
	}
}

// teachingDay converts a calendar weekday to the schedule's day index,
// where 0 is Sunday, the first day of the teaching week.
func teachingDay(t time.Time) int {
	return int(t.Weekday())
}

func filterDay(entries []models.ScheduleEntry, day int) []models.ScheduleEntry {
	out := []models.ScheduleEntry{}
	for _, e := range entries {
		if e.DayOfWeek == day {
			out = append(out, e)
		}
	}
	return out
}

// retryRead runs a read query, retrying a couple of times on transient
// failures. Domain sentinels and context cancellation are surfaced at once.
func retryRead[T any](ctx context.Context, op func() (T, error)) (T, error) {
	var out T
	var err error
	for attempt := 0; attempt <= portalReadRetries; attempt++ {
		out, err = op()
		if err == nil || ctx.Err() != nil || isDomainError(err) {
			return out, err
		}
		if attempt < portalReadRetries {
			logger.Warn().Err(err).Int("attempt", attempt+1).Msg("Portal read failed, retrying")
		}
	}
	return out, err
}

func isDomainError(err error) bool {
	sentinels := []error{
		repositories.ErrStudentNotFound,
		repositories.ErrProgramNotFound,
		repositories.ErrNotificationNotFound,
		repositories.ErrUserNotFound,
		repositories.ErrGradeNotFound,
		repositories.ErrDocumentNotFound,
		repositories.ErrPaymentRecordNotFound,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return true
		}
	}
	return false
}
