package data

import "slices"

type JobHistoryEntry struct {
	Duration int    `yaml:"duration"`
	Position string `yaml:"position"`
	Employer string `yaml:"employer"`
}

func (j JobHistoryEntry) WithDuration(duration int) JobHistoryEntry {
	j.Duration = duration

	return j
}

func (j JobHistoryEntry) WithPosition(position string) JobHistoryEntry {
	j.Position = position

	return j
}

func (j JobHistoryEntry) WithEmployer(employer string) JobHistoryEntry {
	j.Employer = employer

	return j
}

type Employee struct {
	Person     Person            `yaml:"person"`
	JobHistory []JobHistoryEntry `yaml:"job_history"`
}

// WithPerson returns a copy of e with p. The job history is shared.
func (e Employee) WithPerson(p Person) Employee {
	e.Person = p

	return e
}

// WithJobHistory returns a copy of e with jobHistory.
func (e Employee) WithJobHistory(jobHistory []JobHistoryEntry) Employee {
	e.JobHistory = jobHistory

	return e
}

// Equal reports whether e and other hold the same person and the same job history, in the same order.
func (e Employee) Equal(other Employee) bool {
	return e.Person == other.Person && slices.Equal(e.JobHistory, other.JobHistory)
}
