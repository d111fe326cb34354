package fitness

// CalorieEstimator estimates the calories burned by one completed exercise.
// It is pluggable so that hosts can swap in a better model; EstimateCalories
// is the default.
type CalorieEstimator func(ex PlannedExercise) float64

const (
	secondsPerSet    = 45
	secondsPerMinute = 60

	highIntensityCaloriesPerMinute     = 12
	moderateIntensityCaloriesPerMinute = 8
	lowIntensityCaloriesPerMinute      = 5

	caloriesPerRep = 0.5
)

// EstimateCalories is the default calorie model: cardio burns per-minute by
// intensity tier, strength burns per completed rep using the lower bound of
// the rep range.
func EstimateCalories(ex PlannedExercise) float64 {
	if ex.Type == TypeCardio {
		return cardioCalories(ex.Duration, ex.Intensity)
	}
	return strengthCalories(ex.Sets, ex.Reps)
}

func cardioCalories(duration string, intensity Intensity) float64 {
	minutes := ParseLeadingInt(duration)
	multiplier := lowIntensityCaloriesPerMinute
	switch intensity {
	case IntensityHigh:
		multiplier = highIntensityCaloriesPerMinute
	case IntensityModerate:
		multiplier = moderateIntensityCaloriesPerMinute
	case IntensityLow:
	}
	return float64(minutes * multiplier)
}

func strengthCalories(sets int, reps string) float64 {
	totalReps := sets * ParseLeadingInt(reps)
	return float64(totalReps) * caloriesPerRep
}

// TimerSeconds computes the countdown duration for an exercise: cardio runs
// for its parsed duration, strength gets a fixed 45 seconds per set.
func TimerSeconds(ex PlannedExercise) int {
	if ex.Type == TypeCardio {
		return ParseLeadingInt(ex.Duration) * secondsPerMinute
	}
	return ex.Sets * secondsPerSet
}

// ParseLeadingInt extracts the leading integer from strings like
// "10 minutes", "12-15" or "5-10 minutes". Returns 0 when the string does not
// start with a digit, matching lenient parsing of user-entered ranges.
func ParseLeadingInt(s string) int {
	n := 0
	parsed := false
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		parsed = true
	}
	if !parsed {
		return 0
	}
	return n
}
