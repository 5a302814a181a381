package exercises

// Catalog returns the full reference list of exercises seeded into the store.
func Catalog() []Exercise {
	return []Exercise{
		// push, primary
		newCatalogExercise("Barbell Bench Press", CategoryPush, TypePrimary),
		newCatalogExercise("Incline Barbell Bench Press", CategoryPush, TypePrimary),
		newCatalogExercise("Dumbbell Bench Press", CategoryPush, TypePrimary),
		newCatalogExercise("Incline Dumbbell Press", CategoryPush, TypePrimary),
		newCatalogExercise("Machine Chest Press", CategoryPush, TypePrimary),
		newCatalogExercise("Smith Machine Bench Press", CategoryPush, TypePrimary),
		newCatalogExercise("Decline Barbell Bench Press", CategoryPush, TypePrimary),
		newCatalogExercise("Close-Grip Barbell Bench Press", CategoryPush, TypePrimary),
		newCatalogExercise("Swiss Bar Bench Press", CategoryPush, TypePrimary),
		newCatalogExercise("Hammer Strength Chest Press", CategoryPush, TypePrimary),
		// push, accessory
		newCatalogExercise("Dumbbell Flye", CategoryPush, TypeAccessory),
		newCatalogExercise("Machine Flye", CategoryPush, TypeAccessory),
		newCatalogExercise("Triceps Pushdown", CategoryPush, TypeAccessory),
		newCatalogExercise("Overhead Triceps Extension", CategoryPush, TypeAccessory),
		newCatalogExercise("Dips", CategoryPush, TypeAccessory),

		// pull, primary
		newCatalogExercise("Barbell Deadlift", CategoryPull, TypePrimary),
		newCatalogExercise("Barbell Bent Over Row", CategoryPull, TypePrimary),
		newCatalogExercise("Weighted Pull-ups", CategoryPull, TypePrimary),
		newCatalogExercise("Machine Row", CategoryPull, TypePrimary),
		newCatalogExercise("Seal Rows", CategoryPull, TypePrimary),
		newCatalogExercise("T-Bar Row", CategoryPull, TypePrimary),
		// pull, accessory
		newCatalogExercise("Lat Pulldown", CategoryPull, TypeAccessory),
		newCatalogExercise("Assisted Pull-ups", CategoryPull, TypeAccessory),
		newCatalogExercise("Chest Supported Row", CategoryPull, TypeAccessory),
		newCatalogExercise("Dumbbell Row", CategoryPull, TypeAccessory),
		newCatalogExercise("Cable Row", CategoryPull, TypeAccessory),
		newCatalogExercise("Machine Lat Pulldown", CategoryPull, TypeAccessory),
		newCatalogExercise("Inverted Row", CategoryPull, TypeAccessory),
		newCatalogExercise("Face Pulls", CategoryPull, TypeAccessory),
		newCatalogExercise("Shrugs", CategoryPull, TypeAccessory),
		newCatalogExercise("Barbell Curls", CategoryPull, TypeAccessory),

		// legs, primary
		newCatalogExercise("Barbell Back Squat", CategoryLegs, TypePrimary),
		newCatalogExercise("Barbell Leg Press", CategoryLegs, TypePrimary),
		newCatalogExercise("Barbell Romanian Deadlift", CategoryLegs, TypePrimary),
		// legs, accessory
		newCatalogExercise("Leg Curl", CategoryLegs, TypeAccessory),
		newCatalogExercise("Leg Extension", CategoryLegs, TypeAccessory),
		newCatalogExercise("Smith Machine Squat", CategoryLegs, TypeAccessory),
		newCatalogExercise("Hack Squat", CategoryLegs, TypeAccessory),
		newCatalogExercise("Machine Leg Press", CategoryLegs, TypeAccessory),
		newCatalogExercise("Walking Lunges", CategoryLegs, TypeAccessory),
		newCatalogExercise("Calf Raises", CategoryLegs, TypeAccessory),
		newCatalogExercise("Goblet Squats", CategoryLegs, TypeAccessory),
		newCatalogExercise("Leg Press Machine", CategoryLegs, TypeAccessory),
		newCatalogExercise("Lying Leg Curl", CategoryLegs, TypeAccessory),
		newCatalogExercise("Seated Leg Curl", CategoryLegs, TypeAccessory),
	}
}

// CatalogByName indexes Catalog by exercise name.
func CatalogByName() map[string]Exercise {
	catalog := Catalog()
	byName := make(map[string]Exercise, len(catalog))
	for _, e := range catalog {
		byName[e.Name] = e
	}
	return byName
}
