package models

import (
	"encoding/json"
	"testing"
)

func TestStatValueUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want StatValue
	}{
		{name: "string", in: `"95%"`, want: "95%"},
		{name: "integer", in: `1200`, want: "1200"},
		{name: "float", in: `4.5`, want: "4.5"},
		{name: "null", in: `null`, want: ""},
		{name: "empty string", in: `""`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v StatValue
			if err := json.Unmarshal([]byte(tt.in), &v); err != nil {
				t.Fatalf("Unmarshal(%s): %v", tt.in, err)
			}
			if v != tt.want {
				t.Errorf("value = %q, want %q", v, tt.want)
			}
		})
	}
}

func TestStatValueUnmarshalRejectsObjects(t *testing.T) {
	var v StatValue
	if err := json.Unmarshal([]byte(`{"n":1}`), &v); err == nil {
		t.Fatal("expected error for object value")
	}
}

func TestStatValueRoundTripsAsString(t *testing.T) {
	var stat ProgramStatistic
	if err := json.Unmarshal([]byte(`{"id":"st1","label_ar":"الطلاب","value":350,"order":0}`), &stat); err != nil {
		t.Fatal(err)
	}

	out, err := json.Marshal(stat)
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatal(err)
	}
	if got, ok := decoded["value"].(string); !ok || got != "350" {
		t.Fatalf("value round-tripped as %v, want string %q", decoded["value"], "350")
	}
}

func TestCreditHourSum(t *testing.T) {
	year := AcademicYear{
		Subjects: []CourseSubject{
			{CreditHours: 3},
			{CreditHours: 4},
			{CreditHours: 2},
		},
	}
	if got := year.CreditHourSum(); got != 9 {
		t.Fatalf("CreditHourSum = %d, want 9", got)
	}
	if got := (AcademicYear{}).CreditHourSum(); got != 0 {
		t.Fatalf("empty CreditHourSum = %d, want 0", got)
	}
}
