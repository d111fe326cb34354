package catalog

import (
	"slices"
	"strings"

	"github.com/bersitedi/MyWorkoutPlanner/internal/fitness"
)

// complexEquipment and complexBodyParts push an exercise into the
// intermediate difficulty tier.
var (
	complexEquipment = []string{"barbell", "cable", "leverage machine"}
	complexBodyParts = []string{"back", "shoulders"}
)

// calorieBurnPerHour maps body parts to a rough kcal/h figure shown alongside
// catalog entries.
var calorieBurnPerHour = map[string]int{
	"back":       300,
	"cardio":     400,
	"chest":      280,
	"lower arms": 150,
	"lower legs": 200,
	"neck":       100,
	"shoulders":  250,
	"upper arms": 200,
	"upper legs": 350,
	"waist":      200,
}

const defaultCalorieBurnPerHour = 200

// normalize maps one ExerciseDB record into the domain model: title-cases the
// name, derives a difficulty level and exercise type, and attaches the
// calorie estimate.
func normalize(api apiExercise) fitness.Exercise {
	return fitness.Exercise{
		ID:                 api.ID,
		Name:               titleCase(api.Name),
		Type:               exerciseType(api.BodyPart),
		Level:              determineLevel(api.Equipment, api.BodyPart),
		Equipment:          api.Equipment,
		BodyPart:           api.BodyPart,
		Target:             api.Target,
		PrimaryMuscles:     []string{api.Target},
		SecondaryMuscles:   api.SecondaryMuscles,
		Instructions:       api.Instructions,
		GifURL:             api.GifURL,
		CalorieBurnPerHour: burnRate(api.BodyPart),
	}
}

func normalizeAll(apis []apiExercise) []fitness.Exercise {
	exercises := make([]fitness.Exercise, 0, len(apis))
	for _, api := range apis {
		exercises = append(exercises, normalize(api))
	}
	return exercises
}

// determineLevel guesses a difficulty tier from the equipment and body part.
// Bodyweight movements are beginner-friendly; barbell, cable and machine work
// or large posterior-chain areas need more coaching.
func determineLevel(equipment, bodyPart string) string {
	equipment = strings.ToLower(equipment)
	bodyPart = strings.ToLower(bodyPart)
	if slices.Contains(complexEquipment, equipment) || slices.Contains(complexBodyParts, bodyPart) {
		return "intermediate"
	}
	if equipment == "body weight" {
		return "beginner"
	}
	return "beginner"
}

func exerciseType(bodyPart string) fitness.ExerciseType {
	if strings.EqualFold(bodyPart, "cardio") {
		return fitness.TypeCardio
	}
	return fitness.TypeStrength
}

func burnRate(bodyPart string) int {
	if rate, ok := calorieBurnPerHour[strings.ToLower(bodyPart)]; ok {
		return rate
	}
	return defaultCalorieBurnPerHour
}

// titleCase uppercases the first letter of every space-separated word.
// ExerciseDB names arrive fully lowercased.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
