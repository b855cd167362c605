package services

import (
	"errors"
	"testing"

	"github.com/alqalam/college-backend/internal/app/models"
	"github.com/alqalam/college-backend/internal/app/models/dto"
	"github.com/alqalam/college-backend/internal/app/session"
	"github.com/alqalam/college-backend/internal/pkg/apperrors"
)

// Draft edits live entirely in the session store, so these tests run the
// service against an open session without a database behind it.
func draftService(t *testing.T, program models.Program) (*ProgramService, string) {
	t.Helper()
	store := session.NewStore()
	svc := NewProgramService(nil, store)
	sess := store.Open(program)
	return svc, sess.ID
}

func TestAddFacultyMember(t *testing.T) {
	svc, sid := draftService(t, models.Program{ProgramKey: "pharmacy"})

	draft, err := svc.AddFacultyMember(sid, dto.FacultyMemberRequest{
		NameAr:     "د. أحمد الحكيمي",
		PositionAr: "أستاذ مشارك",
	})
	if err != nil {
		t.Fatalf("AddFacultyMember: %v", err)
	}

	if len(draft.FacultyMembers) != 1 {
		t.Fatalf("member count = %d, want 1", len(draft.FacultyMembers))
	}
	added := draft.FacultyMembers[0]
	if added.ID == "" {
		t.Error("added member has no id")
	}
	if added.Order != 0 {
		t.Errorf("added member order = %d, want 0", added.Order)
	}
	if added.NameAr != "د. أحمد الحكيمي" {
		t.Errorf("NameAr = %q", added.NameAr)
	}
}

func TestAddFacultyMemberBlankNameIsQuietNoOp(t *testing.T) {
	svc, sid := draftService(t, models.Program{ProgramKey: "pharmacy"})

	draft, err := svc.AddFacultyMember(sid, dto.FacultyMemberRequest{
		NameAr:     "   ",
		PositionAr: "أستاذ",
	})
	if err != nil {
		t.Fatalf("blank add must not error, got %v", err)
	}
	if len(draft.FacultyMembers) != 0 {
		t.Fatalf("blank add created a member: %+v", draft.FacultyMembers)
	}
}

func TestUpdateFacultyMemberKeepsIDAndPosition(t *testing.T) {
	svc, sid := draftService(t, models.Program{ProgramKey: "pharmacy"})

	draft, _ := svc.AddFacultyMember(sid, dto.FacultyMemberRequest{NameAr: "أول", PositionAr: "أستاذ"})
	draft, _ = svc.AddFacultyMember(sid, dto.FacultyMemberRequest{NameAr: "ثاني", PositionAr: "أستاذ"})
	firstID := draft.FacultyMembers[0].ID

	draft, err := svc.UpdateFacultyMember(sid, firstID, dto.FacultyMemberRequest{
		NameAr:     "معدل",
		PositionAr: "عميد",
	})
	if err != nil {
		t.Fatalf("UpdateFacultyMember: %v", err)
	}

	if draft.FacultyMembers[0].ID != firstID {
		t.Errorf("id changed from %q to %q", firstID, draft.FacultyMembers[0].ID)
	}
	if draft.FacultyMembers[0].NameAr != "معدل" {
		t.Errorf("NameAr = %q", draft.FacultyMembers[0].NameAr)
	}
	if draft.FacultyMembers[0].Order != 0 || draft.FacultyMembers[1].Order != 1 {
		t.Errorf("orders = %d, %d", draft.FacultyMembers[0].Order, draft.FacultyMembers[1].Order)
	}
}

func TestUpdateFacultyMemberStaleIDIsNoOp(t *testing.T) {
	svc, sid := draftService(t, models.Program{ProgramKey: "pharmacy"})
	svc.AddFacultyMember(sid, dto.FacultyMemberRequest{NameAr: "أول", PositionAr: "أستاذ"})

	draft, err := svc.UpdateFacultyMember(sid, "deleted-elsewhere", dto.FacultyMemberRequest{
		NameAr:     "معدل",
		PositionAr: "عميد",
	})
	if err != nil {
		t.Fatalf("stale update must not error, got %v", err)
	}
	if draft.FacultyMembers[0].NameAr != "أول" {
		t.Errorf("stale update changed a record: %+v", draft.FacultyMembers[0])
	}
}

func TestRemoveFacultyMemberRenumbers(t *testing.T) {
	svc, sid := draftService(t, models.Program{ProgramKey: "pharmacy"})
	svc.AddFacultyMember(sid, dto.FacultyMemberRequest{NameAr: "a", PositionAr: "p"})
	draft, _ := svc.AddFacultyMember(sid, dto.FacultyMemberRequest{NameAr: "b", PositionAr: "p"})
	svc.AddFacultyMember(sid, dto.FacultyMemberRequest{NameAr: "c", PositionAr: "p"})

	draft, err := svc.RemoveFacultyMember(sid, draft.FacultyMembers[1].ID)
	if err != nil {
		t.Fatalf("RemoveFacultyMember: %v", err)
	}
	if len(draft.FacultyMembers) != 2 {
		t.Fatalf("member count = %d, want 2", len(draft.FacultyMembers))
	}
	for i, m := range draft.FacultyMembers {
		if m.Order != i {
			t.Errorf("members[%d].Order = %d", i, m.Order)
		}
	}
	if draft.FacultyMembers[1].NameAr != "c" {
		t.Errorf("members[1] = %q, want c", draft.FacultyMembers[1].NameAr)
	}
}

func TestMoveFacultyMember(t *testing.T) {
	svc, sid := draftService(t, models.Program{ProgramKey: "pharmacy"})
	svc.AddFacultyMember(sid, dto.FacultyMemberRequest{NameAr: "a", PositionAr: "p"})
	svc.AddFacultyMember(sid, dto.FacultyMemberRequest{NameAr: "b", PositionAr: "p"})
	svc.AddFacultyMember(sid, dto.FacultyMemberRequest{NameAr: "c", PositionAr: "p"})

	draft, err := svc.MoveFacultyMember(sid, 2, 0)
	if err != nil {
		t.Fatalf("MoveFacultyMember: %v", err)
	}
	got := []string{draft.FacultyMembers[0].NameAr, draft.FacultyMembers[1].NameAr, draft.FacultyMembers[2].NameAr}
	if got[0] != "c" || got[1] != "a" || got[2] != "b" {
		t.Fatalf("order after move = %v", got)
	}
}

func TestMoveFacultyMemberOutOfRange(t *testing.T) {
	svc, sid := draftService(t, models.Program{ProgramKey: "pharmacy"})
	svc.AddFacultyMember(sid, dto.FacultyMemberRequest{NameAr: "a", PositionAr: "p"})

	if _, err := svc.MoveFacultyMember(sid, 0, 5); !errors.Is(err, apperrors.ErrBadRequest) {
		t.Fatalf("err = %v, want ErrBadRequest", err)
	}
	if _, err := svc.MoveFacultyMember(sid, -1, 0); !errors.Is(err, apperrors.ErrBadRequest) {
		t.Fatalf("err = %v, want ErrBadRequest", err)
	}
}

func TestDraftOperationsUnknownSession(t *testing.T) {
	store := session.NewStore()
	svc := NewProgramService(nil, store)

	if _, err := svc.AddFacultyMember("nope", dto.FacultyMemberRequest{NameAr: "a", PositionAr: "p"}); !errors.Is(err, apperrors.ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
	if _, err := svc.GetDraft("nope"); !errors.Is(err, apperrors.ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestSubjectEditsRecomputeProgramTotals(t *testing.T) {
	svc, sid := draftService(t, models.Program{ProgramKey: "pharmacy"})

	draft, err := svc.AddAcademicYear(sid, dto.AcademicYearRequest{YearNameAr: "السنة الأولى"})
	if err != nil {
		t.Fatalf("AddAcademicYear: %v", err)
	}
	if draft.AcademicYears[0].YearNumber != 1 {
		t.Fatalf("YearNumber = %d, want 1", draft.AcademicYears[0].YearNumber)
	}

	draft, err = svc.AddSubject(sid, 1, dto.CourseSubjectRequest{
		Code:        "CHEM101",
		NameAr:      "كيمياء عامة",
		CreditHours: 3,
	})
	if err != nil {
		t.Fatalf("AddSubject: %v", err)
	}
	if draft.AcademicYears[0].TotalCreditHours != 3 {
		t.Errorf("year TotalCreditHours = %d, want 3", draft.AcademicYears[0].TotalCreditHours)
	}

	subjectID := draft.AcademicYears[0].Subjects[0].ID
	draft, err = svc.UpdateSubject(sid, 1, subjectID, dto.CourseSubjectRequest{
		Code:        "CHEM101",
		NameAr:      "كيمياء عامة",
		CreditHours: 5,
	})
	if err != nil {
		t.Fatalf("UpdateSubject: %v", err)
	}
	if draft.AcademicYears[0].TotalCreditHours != 5 {
		t.Errorf("year TotalCreditHours after update = %d, want 5", draft.AcademicYears[0].TotalCreditHours)
	}

	draft, err = svc.RemoveSubject(sid, 1, subjectID)
	if err != nil {
		t.Fatalf("RemoveSubject: %v", err)
	}
	if draft.AcademicYears[0].TotalCreditHours != 0 {
		t.Errorf("year TotalCreditHours after remove = %d, want 0", draft.AcademicYears[0].TotalCreditHours)
	}
}

func TestAddSubjectBlankCodeIsQuietNoOp(t *testing.T) {
	svc, sid := draftService(t, models.Program{ProgramKey: "pharmacy"})
	svc.AddAcademicYear(sid, dto.AcademicYearRequest{YearNameAr: "السنة الأولى"})

	draft, err := svc.AddSubject(sid, 1, dto.CourseSubjectRequest{
		Code:        "  ",
		NameAr:      "كيمياء",
		CreditHours: 3,
	})
	if err != nil {
		t.Fatalf("blank add must not error, got %v", err)
	}
	if len(draft.AcademicYears[0].Subjects) != 0 {
		t.Fatalf("blank add created a subject")
	}
}

func TestUpdateOverviewTouchesOnlyProvidedFields(t *testing.T) {
	svc, sid := draftService(t, models.Program{
		ProgramKey:    "pharmacy",
		TitleAr:       "كلية الصيدلة",
		DurationYears: 5,
	})

	title := "الصيدلة السريرية"
	draft, err := svc.UpdateOverview(sid, dto.ProgramOverviewRequest{TitleAr: &title})
	if err != nil {
		t.Fatalf("UpdateOverview: %v", err)
	}
	if draft.TitleAr != "الصيدلة السريرية" {
		t.Errorf("TitleAr = %q", draft.TitleAr)
	}
	if draft.DurationYears != 5 {
		t.Errorf("DurationYears = %d, untouched field changed", draft.DurationYears)
	}
}

func TestDiscardDraftDropsEdits(t *testing.T) {
	svc, sid := draftService(t, models.Program{ProgramKey: "pharmacy"})
	svc.AddFacultyMember(sid, dto.FacultyMemberRequest{NameAr: "a", PositionAr: "p"})

	svc.DiscardDraft(sid)
	if _, err := svc.GetDraft(sid); !errors.Is(err, apperrors.ErrSessionNotFound) {
		t.Fatalf("err after discard = %v, want ErrSessionNotFound", err)
	}
}

func TestAddStatisticBlankValueIsNoOp(t *testing.T) {
	svc, sid := draftService(t, models.Program{ProgramKey: "pharmacy"})

	draft, err := svc.AddStatistic(sid, dto.StatisticRequest{LabelAr: "عدد الطلاب", Value: "  "})
	if err != nil {
		t.Fatalf("blank add must not error, got %v", err)
	}
	if len(draft.Statistics) != 0 {
		t.Fatalf("blank value created a statistic")
	}

	draft, err = svc.AddStatistic(sid, dto.StatisticRequest{LabelAr: "عدد الطلاب", Value: "450"})
	if err != nil {
		t.Fatalf("AddStatistic: %v", err)
	}
	if len(draft.Statistics) != 1 || draft.Statistics[0].Value != "450" {
		t.Fatalf("Statistics = %+v", draft.Statistics)
	}
}
