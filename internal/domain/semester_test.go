package domain

import "testing"

func TestNewSemester(t *testing.T) {
	semester, err := NewSemester(2, "Fall 2024")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if semester.ID != 2 {
		t.Errorf("Expected ID 2, got %d", semester.ID)
	}

	if semester.Name != "Fall 2024" {
		t.Errorf("Expected name %q, got %q", "Fall 2024", semester.Name)
	}

	if semester.OwnerID != PlaceholderOwnerID {
		t.Errorf("Expected owner ID %d, got %d", PlaceholderOwnerID, semester.OwnerID)
	}

	// Test invalid ID
	_, err = NewSemester(0, "Fall 2024")
	if err != ErrSemesterIDInvalid {
		t.Errorf("Expected error %v, got %v", ErrSemesterIDInvalid, err)
	}

	// Test empty name
	_, err = NewSemester(2, "")
	if err != ErrSemesterNameEmpty {
		t.Errorf("Expected error %v, got %v", ErrSemesterNameEmpty, err)
	}
}

func TestSemesterIsDefault(t *testing.T) {
	defaultSemester, err := NewSemester(DefaultSemesterID, DefaultSemesterName)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !defaultSemester.IsDefault() {
		t.Error("Expected semester 1 to be the default semester")
	}

	other, err := NewSemester(2, "Spring 2025")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if other.IsDefault() {
		t.Error("Expected semester 2 not to be the default semester")
	}
}
