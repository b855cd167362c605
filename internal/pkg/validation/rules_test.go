package validation

import "testing"

func TestProgramKeyPattern(t *testing.T) {
	tests := []struct {
		key   string
		valid bool
	}{
		{"pharmacy", true},
		{"medical-labs", true},
		{"it2", true},
		{"", false},
		{"2it", false},
		{"-pharmacy", false},
		{"Pharmacy", false},
		{"phar macy", false},
		{"phar_macy", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got := NewStringValidation(tt.key).
				WithMaxLength(ProgramKeyMaxLength).
				WithPattern(CompiledPatterns.ProgramKey).
				Validate()
			if got != tt.valid {
				t.Errorf("key %q: valid = %v, want %v", tt.key, got, tt.valid)
			}
		})
	}
}

func TestStudentNumberPattern(t *testing.T) {
	tests := []struct {
		number string
		valid  bool
	}{
		{"PH2021045", true},
		{"IT2023001", true},
		{"ph2021045", false},
		{"PH21045", false},
		{"P2021045", false},
		{"", false},
	}

	for _, tt := range tests {
		got := CompiledPatterns.StudentNumber.MatchString(tt.number)
		if got != tt.valid {
			t.Errorf("number %q: match = %v, want %v", tt.number, got, tt.valid)
		}
	}
}

func TestStringValidationLengths(t *testing.T) {
	if NewStringValidation("ab").WithMinLength(3).Validate() {
		t.Error("value shorter than min passed")
	}
	if NewStringValidation("abcdef").WithMaxLength(3).Validate() {
		t.Error("value longer than max passed")
	}
	if !NewStringValidation("").WithRequired(false).WithMinLength(3).Validate() {
		t.Error("empty optional value failed")
	}
	if NewStringValidation("").Validate() {
		t.Error("empty required value passed")
	}
}
