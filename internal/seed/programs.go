package seed

import (
	"github.com/alqalam/college-backend/internal/app/collection"
	"github.com/alqalam/college-backend/internal/app/curriculum"
	"github.com/alqalam/college-backend/internal/app/models"
)

// SamplePrograms returns the five seed program aggregates. Every aggregate
// is normalized before it is returned, so collection orders are dense and
// the derived credit totals match the subjects.
func SamplePrograms() []models.Program {
	return []models.Program{
		normalize(pharmacyProgram()),
		normalize(nursingProgram()),
		normalize(midwiferyProgram()),
		normalize(itProgram()),
		normalize(businessProgram()),
	}
}

// normalize renumbers every collection and recomputes the derived credit
// totals so hand-written literals cannot violate the ordering invariants.
func normalize(p models.Program) models.Program {
	p.FacultyMembers = collection.Renumber(p.FacultyMembers)
	p.AdmissionRequirements = collection.Renumber(p.AdmissionRequirements)
	p.Statistics = collection.Renumber(p.Statistics)
	p.CareerOpportunities = collection.Renumber(p.CareerOpportunities)
	for i := range p.AcademicYears {
		p.AcademicYears[i].YearNumber = i + 1
		p.AcademicYears[i].Subjects = collection.Renumber(p.AcademicYears[i].Subjects)
		p.AcademicYears[i].TotalCreditHours = p.AcademicYears[i].CreditHourSum()
	}
	p.TotalCreditHours = curriculum.TotalCreditHours(p.AcademicYears)
	return p
}

func pharmacyProgram() models.Program {
	return models.Program{
		ProgramKey:     "pharmacy",
		TitleAr:        "الصيدلة",
		TitleEn:        "Pharmacy",
		DescriptionAr:  "برنامج الصيدلة يؤهل صيادلة قادرين على العمل في الصيدليات المجتمعية والمستشفيات وشركات الأدوية، مع تدريب عملي مكثف في المختبرات والمؤسسات الصحية.",
		SummaryAr:      "بكالوريوس صيدلة بنظام الخمس سنوات مع سنة امتياز.",
		VisionAr:       "الريادة في التعليم الصيدلاني على مستوى الجمهورية.",
		MissionAr:      "إعداد صيادلة مؤهلين علمياً ومهنياً لخدمة المجتمع.",
		DegreeAr:       "بكالوريوس",
		DegreeEn:       "Bachelor of Pharmacy",
		DepartmentAr:   "قسم العلوم الطبية",
		LanguageAr:     "العربية والإنجليزية",
		StudyModeAr:    "انتظام",
		TuitionFeesAr:  "1,200 دولار سنوياً",
		DurationYears:  5,
		SemestersCount: 10,
		ContactEmail:   "pharmacy@alqalam.edu.ye",
		ContactPhone:   "+967-1-234567",
		IconName:       "pill",
		IsActive:       true,
		IsFeatured:     true,
		DisplayOrder:   1,
		ObjectivesAr: []string{
			"إكساب الطلاب المعارف الأساسية في العلوم الصيدلانية",
			"تنمية مهارات صرف الأدوية والاستشارات الدوائية",
			"تأهيل الخريجين للبحث العلمي في مجال الدواء",
		},
		OutcomesAr: []string{
			"صرف الوصفات الطبية بدقة ومسؤولية",
			"تقديم الاستشارات الدوائية للمرضى",
			"المشاركة في الرقابة الدوائية وضمان الجودة",
		},
		FacultyMembers: []models.FacultyMember{
			{
				ID: "ph-fm-1", NameAr: "د. محمد العريقي", PositionAr: "رئيس القسم",
				QualificationAr: "دكتوراه في علم الأدوية", UniversityAr: "جامعة القاهرة",
				Email: "m.alariqi@alqalam.edu.ye",
			},
			{
				ID: "ph-fm-2", NameAr: "د. سمية الحداد", PositionAr: "أستاذ مساعد",
				QualificationAr: "دكتوراه في الصيدلانيات", UniversityAr: "جامعة صنعاء",
			},
		},
		AcademicYears: []models.AcademicYear{
			{
				YearNameAr: "السنة الأولى",
				Subjects: []models.CourseSubject{
					{ID: "ph-s-101", Code: "PHAR101", NameAr: "مدخل إلى العلوم الصيدلانية", CreditHours: 3, TheoryHours: 2, PracticalHours: 2},
					{ID: "ph-s-102", Code: "CHEM110", NameAr: "كيمياء عامة", CreditHours: 4, TheoryHours: 3, PracticalHours: 2},
					{ID: "ph-s-103", Code: "BIO120", NameAr: "أحياء دقيقة", CreditHours: 3, TheoryHours: 2, PracticalHours: 2},
				},
			},
			{
				YearNameAr: "السنة الثانية",
				Subjects: []models.CourseSubject{
					{ID: "ph-s-201", Code: "PHAR201", NameAr: "كيمياء عضوية صيدلانية", CreditHours: 3, TheoryHours: 2, PracticalHours: 2, Prerequisites: []string{"CHEM110"}},
					{ID: "ph-s-202", Code: "PHAR205", NameAr: "فسيولوجيا الإنسان", CreditHours: 3, TheoryHours: 3},
					{ID: "ph-s-203", Code: "PHAR210", NameAr: "صيدلانيات 1", CreditHours: 4, TheoryHours: 3, PracticalHours: 2},
				},
			},
		},
		AdmissionRequirements: []models.AdmissionRequirement{
			{ID: "ph-ar-1", Type: models.RequirementAcademic, RequirementAr: "معدل لا يقل عن 85% في الثانوية العامة القسم العلمي", IsMandatory: true},
			{ID: "ph-ar-2", Type: models.RequirementAcademic, RequirementAr: "اجتياز امتحان القبول في الكيمياء والأحياء", IsMandatory: true},
			{ID: "ph-ar-3", Type: models.RequirementGeneral, RequirementAr: "اللياقة الصحية للعمل في المختبرات", IsMandatory: true},
		},
		Statistics: []models.ProgramStatistic{
			{ID: "ph-st-1", LabelAr: "نسبة التوظيف", Value: "92%", IconName: "briefcase"},
			{ID: "ph-st-2", LabelAr: "عدد الخريجين", Value: "450", IconName: "graduation-cap"},
			{ID: "ph-st-3", LabelAr: "سنوات الدراسة", Value: "5", UnitAr: "سنوات"},
		},
		CareerOpportunities: []models.CareerOpportunity{
			{ID: "ph-co-1", TitleAr: "صيدلي مجتمعي", Sector: "صيدليات خاصة", IconName: "store"},
			{ID: "ph-co-2", TitleAr: "صيدلي مستشفى", Sector: "القطاع الصحي", IconName: "hospital"},
			{ID: "ph-co-3", TitleAr: "مندوب علمي", Sector: "شركات الأدوية", IconName: "chart-line"},
		},
	}
}

func nursingProgram() models.Program {
	return models.Program{
		ProgramKey:     "nursing",
		TitleAr:        "التمريض",
		TitleEn:        "Nursing",
		DescriptionAr:  "برنامج التمريض يعد كوادر تمريضية مؤهلة للعمل في المستشفيات والمراكز الصحية، بتدريب سريري واسع في المؤسسات الصحية الحكومية والخاصة.",
		SummaryAr:      "بكالوريوس تمريض بنظام الأربع سنوات مع سنة امتياز.",
		DegreeAr:       "بكالوريوس",
		DegreeEn:       "Bachelor of Nursing",
		DepartmentAr:   "قسم العلوم الطبية",
		LanguageAr:     "العربية والإنجليزية",
		StudyModeAr:    "انتظام",
		DurationYears:  4,
		SemestersCount: 8,
		ContactEmail:   "nursing@alqalam.edu.ye",
		IconName:       "heart-pulse",
		IsActive:       true,
		DisplayOrder:   2,
		ObjectivesAr: []string{
			"إعداد ممرضين مؤهلين لتقديم رعاية تمريضية شاملة",
			"تنمية مهارات التعامل مع الحالات الحرجة",
		},
		OutcomesAr: []string{
			"تقديم الرعاية التمريضية وفق المعايير المهنية",
			"إدارة وحدات تمريضية في المؤسسات الصحية",
		},
		FacultyMembers: []models.FacultyMember{
			{
				ID: "nu-fm-1", NameAr: "د. فاطمة المقطري", PositionAr: "رئيس القسم",
				QualificationAr: "دكتوراه في علوم التمريض", UniversityAr: "جامعة عدن",
			},
		},
		AcademicYears: []models.AcademicYear{
			{
				YearNameAr: "السنة الأولى",
				Subjects: []models.CourseSubject{
					{ID: "nu-s-101", Code: "NURS101", NameAr: "أساسيات التمريض", CreditHours: 4, TheoryHours: 3, PracticalHours: 2},
					{ID: "nu-s-102", Code: "ANAT110", NameAr: "تشريح جسم الإنسان", CreditHours: 3, TheoryHours: 2, PracticalHours: 2},
				},
			},
			{
				YearNameAr: "السنة الثانية",
				Subjects: []models.CourseSubject{
					{ID: "nu-s-201", Code: "NURS201", NameAr: "تمريض باطني جراحي", CreditHours: 4, TheoryHours: 3, PracticalHours: 3, Prerequisites: []string{"NURS101"}},
					{ID: "nu-s-202", Code: "NURS205", NameAr: "علم الأدوية للتمريض", CreditHours: 3, TheoryHours: 3},
				},
			},
		},
		AdmissionRequirements: []models.AdmissionRequirement{
			{ID: "nu-ar-1", Type: models.RequirementAcademic, RequirementAr: "معدل لا يقل عن 75% في الثانوية العامة القسم العلمي", IsMandatory: true},
			{ID: "nu-ar-2", Type: models.RequirementGeneral, RequirementAr: "المقابلة الشخصية", IsMandatory: true},
		},
		Statistics: []models.ProgramStatistic{
			{ID: "nu-st-1", LabelAr: "نسبة التوظيف", Value: "95%", IconName: "briefcase"},
			{ID: "nu-st-2", LabelAr: "عدد الخريجين", Value: "620", IconName: "graduation-cap"},
		},
		CareerOpportunities: []models.CareerOpportunity{
			{ID: "nu-co-1", TitleAr: "ممرض في المستشفيات", Sector: "القطاع الصحي"},
			{ID: "nu-co-2", TitleAr: "ممرض عناية مركزة", Sector: "القطاع الصحي"},
		},
	}
}

func midwiferyProgram() models.Program {
	return models.Program{
		ProgramKey:     "midwifery",
		TitleAr:        "القبالة",
		TitleEn:        "Midwifery",
		DescriptionAr:  "برنامج القبالة يؤهل قابلات قانونيات لتقديم رعاية صحية آمنة للأم والطفل قبل الولادة وأثناءها وبعدها.",
		DegreeAr:       "بكالوريوس",
		DegreeEn:       "Bachelor of Midwifery",
		DepartmentAr:   "قسم العلوم الطبية",
		LanguageAr:     "العربية",
		StudyModeAr:    "انتظام",
		DurationYears:  4,
		SemestersCount: 8,
		ContactEmail:   "midwifery@alqalam.edu.ye",
		IconName:       "baby",
		IsActive:       true,
		DisplayOrder:   3,
		ObjectivesAr: []string{
			"إعداد قابلات مؤهلات لرعاية الأم والطفل",
			"خفض معدلات وفيات الأمهات والأطفال في المجتمع",
		},
		OutcomesAr: []string{
			"إدارة الولادة الطبيعية بأمان",
			"اكتشاف حالات الحمل الخطرة وإحالتها مبكراً",
		},
		FacultyMembers: []models.FacultyMember{
			{
				ID: "mw-fm-1", NameAr: "د. أمل الشرعبي", PositionAr: "رئيس القسم",
				QualificationAr: "دكتوراه في صحة الأم والطفل", UniversityAr: "جامعة صنعاء",
			},
		},
		AcademicYears: []models.AcademicYear{
			{
				YearNameAr: "السنة الأولى",
				Subjects: []models.CourseSubject{
					{ID: "mw-s-101", Code: "MIDW101", NameAr: "مدخل إلى القبالة", CreditHours: 3, TheoryHours: 3},
					{ID: "mw-s-102", Code: "ANAT110", NameAr: "تشريح جسم الإنسان", CreditHours: 3, TheoryHours: 2, PracticalHours: 2},
				},
			},
			{
				YearNameAr: "السنة الثانية",
				Subjects: []models.CourseSubject{
					{ID: "mw-s-201", Code: "MIDW201", NameAr: "رعاية الحمل الطبيعي", CreditHours: 4, TheoryHours: 3, PracticalHours: 2, Prerequisites: []string{"MIDW101"}},
				},
			},
		},
		AdmissionRequirements: []models.AdmissionRequirement{
			{ID: "mw-ar-1", Type: models.RequirementAcademic, RequirementAr: "معدل لا يقل عن 70% في الثانوية العامة", IsMandatory: true},
			{ID: "mw-ar-2", Type: models.RequirementGeneral, RequirementAr: "البرنامج متاح للإناث فقط", IsMandatory: true},
		},
		Statistics: []models.ProgramStatistic{
			{ID: "mw-st-1", LabelAr: "نسبة التوظيف", Value: "90%"},
		},
		CareerOpportunities: []models.CareerOpportunity{
			{ID: "mw-co-1", TitleAr: "قابلة قانونية", Sector: "المستشفيات ومراكز الأمومة"},
		},
	}
}

func itProgram() models.Program {
	return models.Program{
		ProgramKey:     "it",
		TitleAr:        "تكنولوجيا المعلومات",
		TitleEn:        "Information Technology",
		DescriptionAr:  "برنامج تكنولوجيا المعلومات يعد مختصين في تطوير البرمجيات والشبكات وقواعد البيانات وأمن المعلومات.",
		DegreeAr:       "بكالوريوس",
		DegreeEn:       "Bachelor of Information Technology",
		DepartmentAr:   "قسم العلوم التطبيقية",
		LanguageAr:     "العربية والإنجليزية",
		StudyModeAr:    "انتظام",
		DurationYears:  4,
		SemestersCount: 8,
		ContactEmail:   "it@alqalam.edu.ye",
		IconName:       "laptop",
		IsActive:       true,
		IsFeatured:     true,
		DisplayOrder:   4,
		ObjectivesAr: []string{
			"إكساب الطلاب مهارات البرمجة وتحليل النظم",
			"تأهيل مختصين في الشبكات وأمن المعلومات",
		},
		OutcomesAr: []string{
			"تطوير تطبيقات برمجية متكاملة",
			"إدارة الشبكات وقواعد البيانات",
		},
		FacultyMembers: []models.FacultyMember{
			{
				ID: "it-fm-1", NameAr: "د. خالد الأغبري", PositionAr: "رئيس القسم",
				QualificationAr: "دكتوراه في علوم الحاسوب", UniversityAr: "جامعة ماليزيا التقنية",
				ResearchInterests: []string{"الذكاء الاصطناعي", "أمن المعلومات"},
			},
			{
				ID: "it-fm-2", NameAr: "م. ياسر القباطي", PositionAr: "محاضر",
				QualificationAr: "ماجستير في هندسة البرمجيات", UniversityAr: "جامعة تعز",
			},
		},
		AcademicYears: []models.AcademicYear{
			{
				YearNameAr: "السنة الأولى",
				Subjects: []models.CourseSubject{
					{ID: "it-s-101", Code: "IT101", NameAr: "مقدمة في البرمجة", CreditHours: 4, TheoryHours: 3, PracticalHours: 2},
					{ID: "it-s-102", Code: "MATH110", NameAr: "رياضيات متقطعة", CreditHours: 3, TheoryHours: 3},
					{ID: "it-s-103", Code: "IT105", NameAr: "أساسيات نظم المعلومات", CreditHours: 3, TheoryHours: 3},
				},
			},
			{
				YearNameAr: "السنة الثانية",
				Subjects: []models.CourseSubject{
					{ID: "it-s-201", Code: "IT201", NameAr: "هياكل البيانات والخوارزميات", CreditHours: 4, TheoryHours: 3, PracticalHours: 2, Prerequisites: []string{"IT101"}},
					{ID: "it-s-202", Code: "IT210", NameAr: "قواعد البيانات", CreditHours: 4, TheoryHours: 3, PracticalHours: 2},
					{ID: "it-s-203", Code: "IT215", NameAr: "شبكات الحاسوب", CreditHours: 3, TheoryHours: 2, PracticalHours: 2},
				},
			},
		},
		AdmissionRequirements: []models.AdmissionRequirement{
			{ID: "it-ar-1", Type: models.RequirementAcademic, RequirementAr: "معدل لا يقل عن 70% في الثانوية العامة", IsMandatory: true},
			{ID: "it-ar-2", Type: models.RequirementGeneral, RequirementAr: "إجادة أساسيات الحاسوب", IsMandatory: false},
		},
		Statistics: []models.ProgramStatistic{
			{ID: "it-st-1", LabelAr: "نسبة التوظيف", Value: "88%", IconName: "briefcase"},
			{ID: "it-st-2", LabelAr: "مختبرات الحاسوب", Value: "6", UnitAr: "مختبرات"},
		},
		CareerOpportunities: []models.CareerOpportunity{
			{ID: "it-co-1", TitleAr: "مطور برمجيات", Sector: "شركات التقنية", RequiredSkills: []string{"البرمجة", "قواعد البيانات"}},
			{ID: "it-co-2", TitleAr: "مهندس شبكات", Sector: "شركات الاتصالات"},
			{ID: "it-co-3", TitleAr: "محلل نظم", Sector: "القطاع المصرفي"},
		},
	}
}

func businessProgram() models.Program {
	return models.Program{
		ProgramKey:     "business",
		TitleAr:        "إدارة الأعمال",
		TitleEn:        "Business Administration",
		DescriptionAr:  "برنامج إدارة الأعمال يعد كوادر إدارية قادرة على قيادة المؤسسات وإدارة المشاريع في بيئة الأعمال الحديثة.",
		DegreeAr:       "بكالوريوس",
		DegreeEn:       "Bachelor of Business Administration",
		DepartmentAr:   "قسم العلوم الإدارية",
		LanguageAr:     "العربية",
		StudyModeAr:    "انتظام ومسائي",
		DurationYears:  4,
		SemestersCount: 8,
		ContactEmail:   "business@alqalam.edu.ye",
		IconName:       "chart-bar",
		IsActive:       true,
		DisplayOrder:   5,
		ObjectivesAr: []string{
			"إعداد إداريين مؤهلين لسوق العمل",
			"تنمية مهارات ريادة الأعمال وإدارة المشاريع",
		},
		OutcomesAr: []string{
			"إدارة الموارد البشرية والمالية بكفاءة",
			"تأسيس وإدارة المشاريع الصغيرة",
		},
		FacultyMembers: []models.FacultyMember{
			{
				ID: "bu-fm-1", NameAr: "د. عبدالله السياني", PositionAr: "رئيس القسم",
				QualificationAr: "دكتوراه في إدارة الأعمال", UniversityAr: "جامعة حضرموت",
			},
		},
		AcademicYears: []models.AcademicYear{
			{
				YearNameAr: "السنة الأولى",
				Subjects: []models.CourseSubject{
					{ID: "bu-s-101", Code: "BUS101", NameAr: "مبادئ الإدارة", CreditHours: 3, TheoryHours: 3},
					{ID: "bu-s-102", Code: "ACC110", NameAr: "مبادئ المحاسبة", CreditHours: 3, TheoryHours: 3},
					{ID: "bu-s-103", Code: "ECON110", NameAr: "مبادئ الاقتصاد", CreditHours: 3, TheoryHours: 3},
				},
			},
			{
				YearNameAr: "السنة الثانية",
				Subjects: []models.CourseSubject{
					{ID: "bu-s-201", Code: "BUS201", NameAr: "إدارة الموارد البشرية", CreditHours: 3, TheoryHours: 3, Prerequisites: []string{"BUS101"}},
					{ID: "bu-s-202", Code: "BUS210", NameAr: "التسويق", CreditHours: 3, TheoryHours: 3},
				},
			},
		},
		AdmissionRequirements: []models.AdmissionRequirement{
			{ID: "bu-ar-1", Type: models.RequirementAcademic, RequirementAr: "معدل لا يقل عن 65% في الثانوية العامة", IsMandatory: true},
		},
		Statistics: []models.ProgramStatistic{
			{ID: "bu-st-1", LabelAr: "عدد الخريجين", Value: "800", IconName: "graduation-cap"},
		},
		CareerOpportunities: []models.CareerOpportunity{
			{ID: "bu-co-1", TitleAr: "إداري في المؤسسات", Sector: "القطاع العام والخاص"},
			{ID: "bu-co-2", TitleAr: "رائد أعمال", Sector: "المشاريع الخاصة"},
		},
	}
}
