package recommend

import "testing"

func TestAdaptiveContentByEmotion(t *testing.T) {
	tests := []struct {
		emotion string
		ids     []string
	}{
		{"joy", []string{"r1", "r2"}},
		{"Happy", []string{"r1", "r2"}},
		{"sad", []string{"r3", "r4"}},
		{"anger", []string{"r5"}},
		{"fear", []string{"r6"}},
		{"bewildered", []string{"r6"}},
		{"", []string{"r6"}},
	}
	for _, tt := range tests {
		got := AdaptiveContent(tt.emotion, 0.2)
		if len(got) != len(tt.ids) {
			t.Fatalf("%q: expected %d items, got %+v", tt.emotion, len(tt.ids), got)
		}
		for i, id := range tt.ids {
			if got[i].ID != id {
				t.Fatalf("%q: expected item %d to be %s, got %s", tt.emotion, i, id, got[i].ID)
			}
		}
	}
}

func TestAdaptiveContentSoftensMediumAtHighIntensity(t *testing.T) {
	tests := []struct {
		intensity float64
		want      string
	}{
		{0.79, DifficultyMedium},
		{0.8, DifficultyEasy},
		{1, DifficultyEasy},
	}
	for _, tt := range tests {
		got := AdaptiveContent("anger", tt.intensity)
		if got[0].Difficulty != tt.want {
			t.Fatalf("intensity %v: expected %s, got %s", tt.intensity, tt.want, got[0].Difficulty)
		}
	}
	if contentByEmotion["anger"][0].Difficulty != DifficultyMedium {
		t.Fatalf("softening must not mutate the catalog")
	}
}

func TestWellnessSuggestionsByEmotion(t *testing.T) {
	got := WellnessSuggestions("Angry")
	if len(got) != 2 || got[0].ID != "w3" || got[1].DurationMinutes != 8 {
		t.Fatalf("unexpected anger suggestions %+v", got)
	}
	got[0].Title = "changed"
	if suggestionsByEmotion["anger"][0].Title != "Boxing breathing" {
		t.Fatalf("callers must get a copy of the catalog")
	}

	fallback := WellnessSuggestions("surprise")
	if len(fallback) != 1 || fallback[0].ID != "w6" {
		t.Fatalf("expected neutral fallback, got %+v", fallback)
	}
}
