// Ludotheca - Self-Hosted Game Backlog Tracker and Recommender
// Copyright 2026 Ludotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ludotheca/ludotheca

package validation

import (
	"strings"
	"testing"
)

type rateFixture struct {
	Rating int    `validate:"required,min=1,max=5"`
	Notes  string `validate:"omitempty,max=20"`
}

func TestValidateStructPasses(t *testing.T) {
	fixture := rateFixture{Rating: 4, Notes: "great"}

	if err := ValidateStruct(&fixture); err != nil {
		t.Errorf("expected valid struct, got: %v", err)
	}
}

func TestValidateStructFieldErrors(t *testing.T) {
	tests := []struct {
		name      string
		fixture   rateFixture
		wantField string
		wantTag   string
	}{
		{
			name:      "rating above maximum",
			fixture:   rateFixture{Rating: 6},
			wantField: "Rating",
			wantTag:   "max",
		},
		{
			name:      "rating missing",
			fixture:   rateFixture{},
			wantField: "Rating",
			wantTag:   "required",
		},
		{
			name:      "notes too long",
			fixture:   rateFixture{Rating: 3, Notes: strings.Repeat("x", 21)},
			wantField: "Notes",
			wantTag:   "max",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.fixture)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}

			errs := err.Errors()
			if len(errs) != 1 {
				t.Fatalf("expected 1 error, got %d: %v", len(errs), err)
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", errs[0].Field(), tt.wantField)
			}
			if errs[0].Tag() != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", errs[0].Tag(), tt.wantTag)
			}
		})
	}
}

func TestToAPIErrorSingle(t *testing.T) {
	err := ValidateStruct(&rateFixture{Rating: 9})
	if err == nil {
		t.Fatal("expected validation error")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if !strings.Contains(apiErr.Message, "at most 5") {
		t.Errorf("expected translated message, got %q", apiErr.Message)
	}
	if apiErr.Details["field"] != "Rating" {
		t.Errorf("Details[field] = %v, want Rating", apiErr.Details["field"])
	}
}

func TestToAPIErrorMultiple(t *testing.T) {
	fixture := rateFixture{Rating: 0, Notes: strings.Repeat("y", 40)}

	err := ValidateStruct(&fixture)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(err.Errors()) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(err.Errors()))
	}

	apiErr := err.ToAPIError()
	if _, ok := apiErr.Details["fields"]; !ok {
		t.Error("expected fields detail for multi-error response")
	}
	if !strings.Contains(apiErr.Message, ";") {
		t.Errorf("expected joined messages, got %q", apiErr.Message)
	}
}

func TestGetValidatorSingleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("expected the same validator instance on repeated calls")
	}
}
