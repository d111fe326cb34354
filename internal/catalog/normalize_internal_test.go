package catalog

import (
	"testing"

	"github.com/bersitedi/MyWorkoutPlanner/internal/fitness"
)

func TestDetermineLevel(t *testing.T) {
	tests := []struct {
		equipment string
		bodyPart  string
		want      string
	}{
		{"barbell", "chest", "intermediate"},
		{"cable", "upper arms", "intermediate"},
		{"leverage machine", "upper legs", "intermediate"},
		{"body weight", "back", "intermediate"},
		{"dumbbell", "shoulders", "intermediate"},
		{"body weight", "chest", "beginner"},
		{"dumbbell", "upper arms", "beginner"},
		{"Barbell", "Chest", "intermediate"},
	}
	for _, tt := range tests {
		if got := determineLevel(tt.equipment, tt.bodyPart); got != tt.want {
			t.Errorf("determineLevel(%q, %q) = %q, want %q", tt.equipment, tt.bodyPart, got, tt.want)
		}
	}
}

func TestBurnRate(t *testing.T) {
	tests := []struct {
		bodyPart string
		want     int
	}{
		{"back", 300},
		{"cardio", 400},
		{"chest", 280},
		{"neck", 100},
		{"upper legs", 350},
		{"unknown part", 200},
	}
	for _, tt := range tests {
		if got := burnRate(tt.bodyPart); got != tt.want {
			t.Errorf("burnRate(%q) = %d, want %d", tt.bodyPart, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	api := apiExercise{
		ID:               "0001",
		Name:             "barbell bench press",
		BodyPart:         "chest",
		Equipment:        "barbell",
		Target:           "pectorals",
		SecondaryMuscles: []string{"triceps"},
		Instructions:     []string{"Lie on the bench.", "Press the bar up."},
		GifURL:           "https://example.com/0001.gif",
	}

	got := normalize(api)

	if got.Name != "Barbell Bench Press" {
		t.Errorf("got name %q, want %q", got.Name, "Barbell Bench Press")
	}
	if got.Type != fitness.TypeStrength {
		t.Errorf("got type %q, want strength", got.Type)
	}
	if got.Level != "intermediate" {
		t.Errorf("got level %q, want intermediate", got.Level)
	}
	if got.CalorieBurnPerHour != 280 {
		t.Errorf("got burn rate %d, want 280", got.CalorieBurnPerHour)
	}
	if len(got.PrimaryMuscles) != 1 || got.PrimaryMuscles[0] != "pectorals" {
		t.Errorf("got primary muscles %v, want [pectorals]", got.PrimaryMuscles)
	}
}

func TestNormalize_CardioBodyPart(t *testing.T) {
	got := normalize(apiExercise{Name: "run", BodyPart: "cardio", Equipment: "body weight"})

	if got.Type != fitness.TypeCardio {
		t.Errorf("got type %q, want cardio", got.Type)
	}
	if got.CalorieBurnPerHour != 400 {
		t.Errorf("got burn rate %d, want 400", got.CalorieBurnPerHour)
	}
}
