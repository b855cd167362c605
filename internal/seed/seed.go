// Package seed fills an empty database with the five sample programs, a
// default admin account and a demo student. Every seeder is idempotent:
// existing rows are detected and skipped, so the seed can run on every
// startup without duplicating data.
package seed

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alqalam/college-backend/internal/app/models"
	"github.com/alqalam/college-backend/internal/app/repositories"
	"github.com/alqalam/college-backend/internal/config"
	"github.com/alqalam/college-backend/internal/pkg/auth"
	"github.com/alqalam/college-backend/internal/pkg/logger"
)

// ProgramStore is the slice of the program repository the seeders need.
type ProgramStore interface {
	GetByKey(ctx context.Context, programKey string) (*models.Program, error)
	Create(ctx context.Context, program *models.Program) (int64, error)
}

// SeedProgram stores one sample program unless a program with the same key
// already exists. It reports whether a row was created.
func SeedProgram(ctx context.Context, store ProgramStore, program models.Program) (bool, error) {
	existing, err := store.GetByKey(ctx, program.ProgramKey)
	if err == nil && existing != nil {
		logger.Debug().Str("programKey", program.ProgramKey).Msg("Program already seeded, skipping")
		return false, nil
	}
	if err != nil && !errors.Is(err, repositories.ErrProgramNotFound) {
		return false, fmt.Errorf("error checking program %s: %w", program.ProgramKey, err)
	}

	if _, err := store.Create(ctx, &program); err != nil {
		// A concurrent seeder may have won the insert; that still counts
		// as already seeded.
		if errors.Is(err, repositories.ErrProgramAlreadyExists) {
			return false, nil
		}
		return false, fmt.Errorf("error seeding program %s: %w", program.ProgramKey, err)
	}

	logger.Info().Str("programKey", program.ProgramKey).Msg("Program seeded")
	return true, nil
}

// SeedPrograms runs all sample program seeders concurrently. Every seeder
// settles before the joined error is returned; one failing program never
// stops the others.
func SeedPrograms(ctx context.Context, store ProgramStore) error {
	programs := SamplePrograms()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
		skipped int
		errs    []error
	)

	for _, program := range programs {
		wg.Add(1)
		go func(program models.Program) {
			defer wg.Done()
			wasCreated, err := SeedProgram(ctx, store, program)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err != nil:
				errs = append(errs, err)
			case wasCreated:
				created++
			default:
				skipped++
			}
		}(program)
	}
	wg.Wait()

	logger.Info().
		Int("created", created).
		Int("skipped", skipped).
		Int("failed", len(errs)).
		Msg("Program seeding finished")

	return errors.Join(errs...)
}

// CreateDefaultData seeds the sample programs, the default admin account and
// a demo student with portal data. Errors are collected, not fail-fast.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg config.SeedConfig) error {
	repos := repositories.NewRepositories(dbPool)

	var finalErr error

	if err := SeedPrograms(ctx, repos.ProgramRepository); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	if err := seedAdminUser(ctx, repos.UserRepository, cfg); err != nil {
		logger.Error().Err(err).Msg("Error seeding admin user")
		finalErr = errors.Join(finalErr, err)
	}

	if err := seedDemoStudent(ctx, repos); err != nil {
		logger.Error().Err(err).Msg("Error seeding demo student")
		finalErr = errors.Join(finalErr, err)
	}

	logger.Info().Msg("Default data check/creation finished")
	return finalErr
}

// seedAdminUser creates the default admin account if it does not exist
func seedAdminUser(ctx context.Context, userRepo *repositories.UserRepository, cfg config.SeedConfig) error {
	exists, err := userRepo.EmailExists(ctx, cfg.AdminEmail)
	if err != nil {
		return fmt.Errorf("error checking admin user: %w", err)
	}
	if exists {
		logger.Debug().Msg("Admin user already exists, skipping creation")
		return nil
	}

	hashedPassword, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("error hashing admin password: %w", err)
	}

	admin := &models.User{
		Email:     cfg.AdminEmail,
		Password:  hashedPassword,
		FirstName: "System",
		LastName:  "Administrator",
		RoleType:  models.RoleAdmin,
		IsActive:  true,
	}
	adminID, err := userRepo.CreateUser(ctx, admin)
	if err != nil {
		if errors.Is(err, repositories.ErrEmailAlreadyExists) {
			return nil
		}
		return fmt.Errorf("error creating admin user: %w", err)
	}

	logger.Info().Int64("adminID", adminID).Msg("Default admin user created")
	return nil
}

// seedDemoStudent creates one demo student with a transcript, schedule,
// documents, payments and notifications for portal development.
func seedDemoStudent(ctx context.Context, repos *repositories.Repositories) error {
	const studentNumber = "PH2021045"

	exists, err := repos.StudentRepository.StudentNumberExists(ctx, studentNumber)
	if err != nil {
		return fmt.Errorf("error checking demo student: %w", err)
	}
	if exists {
		logger.Debug().Msg("Demo student already exists, skipping creation")
		return nil
	}

	hashedPassword, err := auth.HashPassword("Student123!")
	if err != nil {
		return fmt.Errorf("error hashing demo student password: %w", err)
	}

	user := &models.User{
		Email:     "ahmed.saleh@alqalam.edu.ye",
		Password:  hashedPassword,
		FirstName: "Ahmed",
		LastName:  "Saleh",
		RoleType:  models.RoleStudent,
		IsActive:  true,
	}
	userID, err := repos.UserRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repositories.ErrEmailAlreadyExists) {
			return nil
		}
		return fmt.Errorf("error creating demo student account: %w", err)
	}

	student := &models.Student{
		UserID:         userID,
		StudentNumber:  studentNumber,
		ProgramKey:     "pharmacy",
		Level:          3,
		EnrollmentYear: 2021,
		Status:         "ACTIVE",
	}
	studentID, err := repos.StudentRepository.Create(ctx, student)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNumberExists) {
			return nil
		}
		return fmt.Errorf("error creating demo student profile: %w", err)
	}

	var finalErr error

	for _, grade := range demoGrades(studentID) {
		if _, err := repos.GradeRepository.Create(ctx, &grade); err != nil {
			finalErr = errors.Join(finalErr, fmt.Errorf("error seeding grade %s: %w", grade.CourseCode, err))
		}
	}

	for _, entry := range demoSchedule() {
		if _, err := repos.ScheduleRepository.Create(ctx, &entry); err != nil {
			finalErr = errors.Join(finalErr, fmt.Errorf("error seeding schedule entry %s: %w", entry.CourseCode, err))
		}
	}

	for _, doc := range demoDocuments(studentID) {
		if _, err := repos.DocumentRepository.Create(ctx, &doc); err != nil {
			finalErr = errors.Join(finalErr, fmt.Errorf("error seeding document %s: %w", doc.DocType, err))
		}
	}

	for _, payment := range demoPayments(studentID) {
		if _, err := repos.PaymentRepository.Create(ctx, &payment); err != nil {
			finalErr = errors.Join(finalErr, fmt.Errorf("error seeding payment: %w", err))
		}
	}

	for _, notification := range demoNotifications(studentID) {
		if _, err := repos.NotificationRepository.Create(ctx, &notification); err != nil {
			finalErr = errors.Join(finalErr, fmt.Errorf("error seeding notification: %w", err))
		}
	}

	logger.Info().Int64("studentID", studentID).Msg("Demo student created")
	return finalErr
}

func demoGrades(studentID int64) []models.Grade {
	return []models.Grade{
		{
			StudentID: studentID, CourseCode: "PHAR101", CourseNameAr: "مدخل إلى العلوم الصيدلانية",
			AcademicYear: "2021-2022", Semester: models.SemesterFirst, CreditHours: 3,
			Coursework: 18, Midterm: 17, Final: 52, Total: 87, LetterGrade: "A", GradePoints: 3.75,
		},
		{
			StudentID: studentID, CourseCode: "CHEM110", CourseNameAr: "كيمياء عامة",
			AcademicYear: "2021-2022", Semester: models.SemesterFirst, CreditHours: 4,
			Coursework: 16, Midterm: 15, Final: 48, Total: 79, LetterGrade: "B+", GradePoints: 3.25,
		},
		{
			StudentID: studentID, CourseCode: "PHAR102", CourseNameAr: "كيمياء عضوية صيدلانية",
			AcademicYear: "2021-2022", Semester: models.SemesterSecond, CreditHours: 3,
			Coursework: 17, Midterm: 16, Final: 50, Total: 83, LetterGrade: "A-", GradePoints: 3.5,
		},
		{
			StudentID: studentID, CourseCode: "BIO120", CourseNameAr: "أحياء دقيقة",
			AcademicYear: "2021-2022", Semester: models.SemesterSecond, CreditHours: 3,
			Coursework: 15, Midterm: 14, Final: 45, Total: 74, LetterGrade: "B", GradePoints: 3.0,
		},
	}
}

func demoSchedule() []models.ScheduleEntry {
	return []models.ScheduleEntry{
		{
			ProgramKey: "pharmacy", Level: 3, Semester: models.SemesterFirst,
			DayOfWeek: 0, StartTime: "08:00", EndTime: "09:30",
			CourseCode: "PHAR301", CourseNameAr: "علم الأدوية 1",
			InstructorNameAr: "د. محمد العريقي", Room: "B204",
		},
		{
			ProgramKey: "pharmacy", Level: 3, Semester: models.SemesterFirst,
			DayOfWeek: 0, StartTime: "10:00", EndTime: "11:30",
			CourseCode: "PHAR305", CourseNameAr: "صيدلانيات 2",
			InstructorNameAr: "د. سمية الحداد", Room: "B110",
		},
		{
			ProgramKey: "pharmacy", Level: 3, Semester: models.SemesterFirst,
			DayOfWeek: 2, StartTime: "08:00", EndTime: "10:00",
			CourseCode: "PHAR310", CourseNameAr: "كيمياء دوائية",
			InstructorNameAr: "د. علي الشامي", Room: "C12",
		},
	}
}

func demoDocuments(studentID int64) []models.StudentDocument {
	return []models.StudentDocument{
		{
			StudentID: studentID, TitleAr: "كشف درجات", TitleEn: "Transcript",
			DocType: "TRANSCRIPT", FileURL: "/files/transcripts/PH2021045.pdf",
			Status: models.DocumentApproved, UploadedAt: time.Now(),
		},
		{
			StudentID: studentID, TitleAr: "شهادة الثانوية العامة",
			DocType: "HIGH_SCHOOL_CERTIFICATE", FileURL: "/files/certs/PH2021045-hs.pdf",
			Status: models.DocumentPending, UploadedAt: time.Now(),
		},
	}
}

func demoPayments(studentID int64) []models.PaymentRecord {
	due := time.Now().AddDate(0, 1, 0)
	paid := time.Now().AddDate(0, -5, 0)
	return []models.PaymentRecord{
		{
			StudentID: studentID, DescriptionAr: "رسوم الفصل الأول 2024-2025",
			Amount: 180000, Currency: "YER", DueDate: &due, Status: models.PaymentPending,
		},
		{
			StudentID: studentID, DescriptionAr: "رسوم الفصل الثاني 2023-2024",
			Amount: 170000, Currency: "YER", PaidAt: &paid, Status: models.PaymentPaid,
			ReceiptNumber: "RC-2024-0452",
		},
	}
}

func demoNotifications(studentID int64) []models.Notification {
	return []models.Notification{
		{
			StudentID: studentID, TitleAr: "بدء التسجيل للفصل الدراسي الجديد",
			BodyAr: "يرجى استكمال تسجيل المقررات قبل نهاية الأسبوع.",
			Type:   "ACADEMIC", CreatedAt: time.Now(),
		},
		{
			StudentID: studentID, TitleAr: "تذكير بموعد سداد الرسوم",
			BodyAr: "يرجى سداد رسوم الفصل الأول قبل الموعد المحدد.",
			Type:   "FINANCE", CreatedAt: time.Now(),
		},
	}
}
