package analysis

import (
	"testing"
)

func TestParsePayload_Valid(t *testing.T) {
	p, err := ParsePayload(validOutput)
	if err != nil {
		t.Fatalf("ParsePayload: %v", err)
	}
	if len(p.Candidates) != CandidateCount {
		t.Fatalf("got %d candidates, want %d", len(p.Candidates), CandidateCount)
	}
	if p.Candidates[0].Name != "Chicken Breast Salad" {
		t.Errorf("name = %q", p.Candidates[0].Name)
	}
	if p.Candidates[0].Calories != 550 {
		t.Errorf("calories = %v", p.Candidates[0].Calories)
	}
}

func TestParsePayload_NormalizesTitleCase(t *testing.T) {
	raw := `{"candidates": [
		{"name": "chicken breast salad", "calories": 550, "protein": 25, "carbs": 60, "fat": 23},
		{"name": "GRILLED CHEESE", "calories": 600, "protein": 30, "carbs": 55, "fat": 28},
		{"name": "  miso soup ", "calories": 500, "protein": 20, "carbs": 70, "fat": 16}
	]}`
	p, err := ParsePayload(raw)
	if err != nil {
		t.Fatalf("ParsePayload: %v", err)
	}
	want := []string{"Chicken Breast Salad", "Grilled Cheese", "Miso Soup"}
	for i, w := range want {
		if p.Candidates[i].Name != w {
			t.Errorf("candidate %d name = %q, want %q", i, p.Candidates[i].Name, w)
		}
	}
}

func TestParsePayload_Rejects(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"prose around json", "Here you go: {\"candidates\": []}"},
		{"markdown fence", "```json\n" + validOutput + "\n```"},
		{"empty candidates", `{"candidates": []}`},
		{"too few candidates", `{"candidates": [{"name": "A", "calories": 1, "protein": 1, "carbs": 1, "fat": 1}]}`},
		{"unknown top-level key", `{"dishes": []}`},
		{"empty name", `{"candidates": [
			{"name": "", "calories": 1, "protein": 1, "carbs": 1, "fat": 1},
			{"name": "B", "calories": 1, "protein": 1, "carbs": 1, "fat": 1},
			{"name": "C", "calories": 1, "protein": 1, "carbs": 1, "fat": 1}
		]}`},
		{"not json", "I could not identify any dishes."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParsePayload(tc.raw); err == nil {
				t.Errorf("expected parse failure for %q", tc.raw)
			}
		})
	}
}
