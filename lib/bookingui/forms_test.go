// Copyright 2026 The Labreserve Authors
// SPDX-License-Identifier: Apache-2.0

package bookingui

import (
	"testing"

	"github.com/labreserve/labreserve/lib/bookingstore"
)

func TestFilterFormParse(t *testing.T) {
	form := newFilterForm(bookingstore.Filter{})
	form.inputs[filterFieldDate].SetValue("  2026-03-10 ")
	form.inputs[filterFieldClassRoom].SetValue("lab")
	form.inputs[filterFieldPriority].SetValue("2")

	filter, errText := form.parse()
	if errText != "" {
		t.Fatalf("parse error: %s", errText)
	}
	if filter.Date != "2026-03-10" || filter.ClassRoom != "lab" || filter.Priority != 2 {
		t.Errorf("filter = %+v", filter)
	}
}

func TestFilterFormParseRejectsBadPriority(t *testing.T) {
	for _, value := range []string{"x", "0", "-1"} {
		form := newFilterForm(bookingstore.Filter{})
		form.inputs[filterFieldPriority].SetValue(value)
		if _, errText := form.parse(); errText == "" {
			t.Errorf("priority %q accepted", value)
		}
	}
}

func TestFilterFormPrefillsCurrentCriteria(t *testing.T) {
	form := newFilterForm(bookingstore.Filter{Date: "2026-03-10", Priority: 3})
	if got := form.inputs[filterFieldDate].Value(); got != "2026-03-10" {
		t.Errorf("date prefill = %q", got)
	}
	if got := form.inputs[filterFieldPriority].Value(); got != "3" {
		t.Errorf("priority prefill = %q", got)
	}
}

func TestGenerateFormDefaults(t *testing.T) {
	form := newGenerateForm()
	minCount, maxCount, errText := form.parse()
	if errText != "" {
		t.Fatalf("parse error: %s", errText)
	}
	if minCount != 100 || maxCount != 1000 {
		t.Errorf("defaults = %d..%d, want 100..1000", minCount, maxCount)
	}
}

func TestGenerateFormParseValidation(t *testing.T) {
	tests := []struct {
		min, max string
		wantErr  string
	}{
		{"abc", "10", "min and max must be numbers"},
		{"0", "10", "min must be at least 1"},
		{"100", "10", "max must not be below min"},
	}
	for _, test := range tests {
		form := newGenerateForm()
		form.inputs[generateFieldMin].SetValue(test.min)
		form.inputs[generateFieldMax].SetValue(test.max)
		if _, _, errText := form.parse(); errText != test.wantErr {
			t.Errorf("min=%s max=%s: errText = %q, want %q", test.min, test.max, errText, test.wantErr)
		}
	}
}
