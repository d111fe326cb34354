package fitness

// Weekdays lists the plannable days in display order. Weekend days are not
// part of the schedule.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// IsWeekday reports whether day names a plannable schedule day.
func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// DefaultState builds the initial state for a user without a stored snapshot.
func DefaultState() *State {
	return &State{
		SchemaVersion: SchemaVersion,
		Catalog:       DefaultCatalog(),
		Schedule:      defaultSchedule(),
		History:       []CompletedSession{},
		Stats: Stats{
			WorkoutsByType: map[ExerciseType]int{},
		},
	}
}

func defaultSchedule() []ScheduleDay {
	return []ScheduleDay{
		{
			Day:   "Monday",
			Focus: "Chest & Triceps + Cardio",
			Exercises: []PlannedExercise{
				plannedStrength("Push-up", 3, "12-15"),
				plannedCardio("Jumping Jacks", "10 minutes", IntensityModerate),
			},
		},
		{
			Day:   "Tuesday",
			Focus: "Back & Biceps",
			Exercises: []PlannedExercise{
				plannedStrength("Pull-up", 3, "8-10"),
			},
		},
		{
			Day:   "Wednesday",
			Focus: "Legs & Core",
			Exercises: []PlannedExercise{
				plannedStrength("Squat", 4, "12-15"),
				plannedStrength("Plank", 3, "1"),
			},
		},
		{
			Day:   "Thursday",
			Focus: "Shoulders + Cardio",
			Exercises: []PlannedExercise{
				plannedStrength("Pike Push-up", 3, "10-12"),
				plannedCardio("High Knees", "8 minutes", IntensityHigh),
			},
		},
		{
			Day:   "Friday",
			Focus: "Full Body Circuit",
			Exercises: []PlannedExercise{
				plannedStrength("Burpee", 3, "10"),
				plannedStrength("Mountain Climber", 3, "20"),
			},
		},
	}
}

func plannedStrength(name string, sets int, reps string) PlannedExercise {
	ex := findCatalogExercise(name)
	return PlannedExercise{
		Exercise: ex,
		Sets:     sets,
		Reps:     reps,
	}
}

func plannedCardio(name, duration string, intensity Intensity) PlannedExercise {
	ex := findCatalogExercise(name)
	return PlannedExercise{
		Exercise:  ex,
		Duration:  duration,
		Intensity: intensity,
	}
}

func findCatalogExercise(name string) Exercise {
	for _, ex := range DefaultCatalog() {
		if ex.Name == name {
			return ex
		}
	}
	return Exercise{Name: name, Type: TypeStrength, Level: "beginner"}
}

// DefaultCatalog is the built-in exercise list used when no external catalog
// is reachable.
func DefaultCatalog() []Exercise {
	return []Exercise{
		{
			ID:                 "local-push-up",
			Name:               "Push-up",
			Type:               TypeStrength,
			Level:              "beginner",
			Equipment:          "body weight",
			BodyPart:           "chest",
			Target:             "pectorals",
			PrimaryMuscles:     []string{"pectorals"},
			SecondaryMuscles:   []string{"triceps", "shoulders"},
			Instructions:       []string{"Start in a high plank with hands under shoulders.", "Lower your chest towards the floor, elbows at roughly 45 degrees.", "Press back up to the starting position."},
			CalorieBurnPerHour: 280,
		},
		{
			ID:                 "local-pull-up",
			Name:               "Pull-up",
			Type:               TypeStrength,
			Level:              "intermediate",
			Equipment:          "body weight",
			BodyPart:           "back",
			Target:             "lats",
			PrimaryMuscles:     []string{"lats"},
			SecondaryMuscles:   []string{"biceps", "forearms"},
			Instructions:       []string{"Hang from a bar with an overhand grip slightly wider than shoulders.", "Pull your chin above the bar by driving elbows down.", "Lower under control to a full hang."},
			CalorieBurnPerHour: 300,
		},
		{
			ID:                 "local-squat",
			Name:               "Squat",
			Type:               TypeStrength,
			Level:              "beginner",
			Equipment:          "body weight",
			BodyPart:           "upper legs",
			Target:             "quads",
			PrimaryMuscles:     []string{"quads", "glutes"},
			SecondaryMuscles:   []string{"hamstrings", "calves"},
			Instructions:       []string{"Stand with feet shoulder-width apart.", "Sit your hips back and down until thighs are parallel to the floor.", "Drive through your heels to stand."},
			CalorieBurnPerHour: 350,
		},
		{
			ID:                 "local-plank",
			Name:               "Plank",
			Type:               TypeStrength,
			Level:              "beginner",
			Equipment:          "body weight",
			BodyPart:           "waist",
			Target:             "abs",
			PrimaryMuscles:     []string{"abs"},
			SecondaryMuscles:   []string{"shoulders", "glutes"},
			Instructions:       []string{"Rest on forearms and toes with your body in a straight line.", "Brace your core and hold without letting the hips sag."},
			CalorieBurnPerHour: 200,
		},
		{
			ID:                 "local-pike-push-up",
			Name:               "Pike Push-up",
			Type:               TypeStrength,
			Level:              "intermediate",
			Equipment:          "body weight",
			BodyPart:           "shoulders",
			Target:             "delts",
			PrimaryMuscles:     []string{"delts"},
			SecondaryMuscles:   []string{"triceps"},
			Instructions:       []string{"Start in a downward-dog position with hips high.", "Bend your elbows to lower the crown of your head towards the floor.", "Press back up."},
			CalorieBurnPerHour: 250,
		},
		{
			ID:                 "local-burpee",
			Name:               "Burpee",
			Type:               TypeStrength,
			Level:              "intermediate",
			Equipment:          "body weight",
			BodyPart:           "cardio",
			Target:             "cardiovascular system",
			PrimaryMuscles:     []string{"full body"},
			SecondaryMuscles:   []string{},
			Instructions:       []string{"From standing, drop into a squat and kick your feet back to a plank.", "Perform a push-up, jump the feet back in and leap upwards."},
			CalorieBurnPerHour: 400,
		},
		{
			ID:                 "local-mountain-climber",
			Name:               "Mountain Climber",
			Type:               TypeStrength,
			Level:              "beginner",
			Equipment:          "body weight",
			BodyPart:           "cardio",
			Target:             "cardiovascular system",
			PrimaryMuscles:     []string{"abs", "hip flexors"},
			SecondaryMuscles:   []string{"shoulders"},
			Instructions:       []string{"Start in a high plank.", "Drive one knee towards your chest, then switch legs in a running motion."},
			CalorieBurnPerHour: 400,
		},
		{
			ID:                 "local-jumping-jacks",
			Name:               "Jumping Jacks",
			Type:               TypeCardio,
			Level:              "beginner",
			Equipment:          "body weight",
			BodyPart:           "cardio",
			Target:             "cardiovascular system",
			PrimaryMuscles:     []string{"full body"},
			SecondaryMuscles:   []string{},
			Instructions:       []string{"Stand upright with arms at your sides.", "Jump while spreading your legs and raising your arms overhead, then jump back."},
			CalorieBurnPerHour: 400,
		},
		{
			ID:                 "local-high-knees",
			Name:               "High Knees",
			Type:               TypeCardio,
			Level:              "beginner",
			Equipment:          "body weight",
			BodyPart:           "cardio",
			Target:             "cardiovascular system",
			PrimaryMuscles:     []string{"hip flexors", "quads"},
			SecondaryMuscles:   []string{"calves"},
			Instructions:       []string{"Run in place, driving each knee up to hip height.", "Keep a quick rhythm and pump your arms."},
			CalorieBurnPerHour: 400,
		},
	}
}
