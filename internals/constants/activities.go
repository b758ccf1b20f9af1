package constants

// Point categories recognised by the grading workflow.
const (
	CategoryClassAssignments = "Class Assignments"
	CategoryClassExercises   = "Class Exercises"
	CategoryWeeklyProjects   = "Weekly Projects"
	Category100DaysOfCode    = "100 Days of Code"
)
