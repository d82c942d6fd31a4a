package domain

type JobType string

const (
	JobWater          JobType = "Water"
	JobMold           JobType = "Mold"
	JobStructure      JobType = "Structure"
	JobFire           JobType = "Fire"
	JobStorm          JobType = "Storm"
	JobReconstruction JobType = "Reconstruction"
)

type ProjectStatus string

const (
	StatusNotStarted ProjectStatus = "Not Started"
	StatusActive     ProjectStatus = "Active"
	StatusComplete   ProjectStatus = "Complete"
)

// ValidStatuses is the canonical set of accepted status strings.
var ValidStatuses = map[ProjectStatus]bool{
	StatusNotStarted: true, StatusActive: true, StatusComplete: true,
}

// Rank orders statuses by lifecycle: not started, active, complete.
func (s ProjectStatus) Rank() int {
	switch s {
	case StatusNotStarted:
		return 0
	case StatusActive:
		return 1
	case StatusComplete:
		return 2
	default:
		return 3
	}
}

type Priority string

const (
	PriorityCritical Priority = "Critical"
	PriorityHigh     Priority = "High"
	PriorityMedium   Priority = "Medium"
	PriorityLow      Priority = "Low"
)

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[Priority]bool{
	PriorityCritical: true, PriorityHigh: true, PriorityMedium: true, PriorityLow: true,
}

// Rank returns a sort priority (lower = more urgent).
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}
