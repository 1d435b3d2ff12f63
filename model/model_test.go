package model

import (
	"encoding/json"
	"testing"
)

func TestNormalizeBox(t *testing.T) {
	// A 100x200 pixel page: a box at (10,20)-(50,100) maps to
	// (100,100)-(500,500) in the normalized space.
	box := NormalizeBox(10, 20, 50, 100, 100, 200)

	if box.XMin != 100 || box.YMin != 100 || box.XMax != 500 || box.YMax != 500 {
		t.Errorf("Unexpected normalized box: %+v", box)
	}

	if !box.IsValid() {
		t.Error("Expected normalized box to be valid")
	}
}

func TestNormalizeBox_DegeneratePage(t *testing.T) {
	box := NormalizeBox(10, 20, 50, 100, 0, 0)
	if box.IsValid() {
		t.Error("Expected invalid box for zero-sized page")
	}
}

func TestBox_IsValid(t *testing.T) {
	tests := []struct {
		name string
		box  Box
		want bool
	}{
		{"valid", NewBox(0, 0, 100, 50), true},
		{"inverted x", NewBox(100, 0, 50, 50), false},
		{"inverted y", NewBox(0, 50, 100, 10), false},
		{"zero extent", NewBox(10, 10, 10, 20), false},
		{"negative origin", NewBox(-1, 0, 100, 50), false},
		{"out of space", NewBox(0, 0, 1001, 50), false},
		{"full space", NewBox(0, 0, 1000, 1000), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBox_SameRow(t *testing.T) {
	a := NewBox(0, 100, 50, 120)

	if !a.SameRow(NewBox(200, 110, 250, 130), 25) {
		t.Error("Expected boxes 10 units apart to share a row at tolerance 25")
	}

	if a.SameRow(NewBox(200, 125, 250, 145), 25) {
		t.Error("Expected boxes 25 units apart to be on different rows")
	}
}

func TestBox_RightOf(t *testing.T) {
	label := NewBox(100, 100, 200, 120)

	if !NewBox(210, 100, 260, 120).RightOf(label) {
		t.Error("Expected box starting past the label's right edge to be right of it")
	}

	if NewBox(150, 100, 260, 120).RightOf(label) {
		t.Error("Expected overlapping box to not be right of the label")
	}
}

func TestFieldValue_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(map[string]FieldValue{
		"diagnosis": PresentValue("Typhoid Fever"),
		"phone":     MissingValue(),
	})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded map[string]*string
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if decoded["diagnosis"] == nil || *decoded["diagnosis"] != "Typhoid Fever" {
		t.Errorf("Expected present value to marshal as string, got %v", decoded["diagnosis"])
	}

	if decoded["phone"] != nil {
		t.Errorf("Expected missing value to marshal as null, got %v", *decoded["phone"])
	}
}

func TestFieldValue_UnmarshalJSON(t *testing.T) {
	var fv FieldValue
	if err := json.Unmarshal([]byte(`"120/80 mmHg"`), &fv); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !fv.Present || fv.Value != "120/80 mmHg" {
		t.Errorf("Unexpected value: %+v", fv)
	}

	if err := json.Unmarshal([]byte(`null`), &fv); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if fv.Present {
		t.Error("Expected null to decode as a miss")
	}
}
