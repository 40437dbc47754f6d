package usecase

import (
	"reflect"
	"testing"
)

func TestDeriveRefinementKeywords(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    []string
	}{
		{
			name:    "cheaper phrase expands",
			message: "do you have anything cheaper?",
			want:    []string{"cheaper", "affordable", "gifts under $50"},
		},
		{
			name:    "luxury phrase expands",
			message: "something more luxurious please",
			want:    []string{"more luxurious", "luxury", "premium"},
		},
		{
			name:    "something different adds nothing",
			message: "show me something different",
			want:    []string{"something different"},
		},
		{
			name:    "kid phrase expands",
			message: "this is for a kid",
			want:    []string{"for a kid", "for kids", "kids"},
		},
		{
			name:    "free text falls back to long words",
			message: "maybe with lots of chocolate inside",
			want:    []string{"maybe", "with", "lots"},
		},
		{
			name:    "short words are skipped",
			message: "ok so um chocolate please",
			want:    []string{"chocolate", "please"},
		},
		{
			name:    "empty message falls back to gift",
			message: "  ",
			want:    []string{"gift"},
		},
		{
			name:    "only short words falls back to gift",
			message: "ok no",
			want:    []string{"gift"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveRefinementKeywords(tt.message)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DeriveRefinementKeywords(%q) = %v, want %v", tt.message, got, tt.want)
			}
		})
	}
}

func TestExpandFeedbackKeywords(t *testing.T) {
	t.Run("matching feedback adds rule keywords", func(t *testing.T) {
		got := expandFeedbackKeywords([]string{"birthday"}, "can we go cheaper?")
		want := []string{"birthday", "affordable", "gifts under $50"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expandFeedbackKeywords() = %v, want %v", got, want)
		}
	})

	t.Run("non-matching feedback leaves keywords alone", func(t *testing.T) {
		got := expandFeedbackKeywords([]string{"birthday"}, "hmm not sure")
		want := []string{"birthday"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expandFeedbackKeywords() = %v, want %v", got, want)
		}
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		keywords := []string{"birthday", "fun"}
		expandFeedbackKeywords(keywords[:1], "more luxurious")
		if keywords[1] != "fun" {
			t.Errorf("backing array mutated: %v", keywords)
		}
	})

	t.Run("first matching rule wins", func(t *testing.T) {
		// "cheaper" appears before "budget" in the rule table.
		got := expandFeedbackKeywords(nil, "cheaper, I'm on a budget")
		want := []string{"affordable", "gifts under $50"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expandFeedbackKeywords() = %v, want %v", got, want)
		}
	})
}
