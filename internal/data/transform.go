package data

import (
	"github.com/askiada/go-lazy/pkg/pipeline"
	"github.com/askiada/go-lazy/pkg/pipeline/model"
)

const (
	positionQA      = "QA"
	positionQALower = "qa"
)

// AddOneYear returns a copy of jobHistory where every entry lasted one more year.
func AddOneYear(jobHistory []JobHistoryEntry) []JobHistoryEntry {
	return pipeline.MapSlice(jobHistory, func(entry JobHistoryEntry) JobHistoryEntry {
		return entry.WithDuration(entry.Duration + 1)
	})
}

// QAToQA returns a copy of jobHistory where the qa position is written QA.
func QAToQA(jobHistory []JobHistoryEntry) []JobHistoryEntry {
	return pipeline.MapSlice(jobHistory, func(entry JobHistoryEntry) JobHistoryEntry {
		if entry.Position == positionQALower {
			return entry.WithPosition(positionQA)
		}

		return entry
	})
}

// Employers lists the employers of every employee, in order, with repetitions.
func Employers(employees []Employee) []string {
	return pipeline.FlatMapSlice(employees, func(e Employee) []string {
		return pipeline.MapSlice(e.JobHistory, func(entry JobHistoryEntry) string {
			return entry.Employer
		})
	})
}

// Normalize builds the lazy pipeline renaming every employee to firstName, adding one year to every job
// and writing the qa position QA. Nothing runs until the result is forced.
func Normalize(employees []Employee, firstName string, opts ...model.PipelineOption) pipeline.MapPipeline[Employee, Employee] {
	renamed := pipeline.Map(pipeline.From(employees, opts...), func(e Employee) Employee {
		return e.WithPerson(e.Person.WithFirstName(firstName))
	})
	aged := pipeline.Map(renamed, func(e Employee) Employee {
		return e.WithJobHistory(AddOneYear(e.JobHistory))
	})

	return pipeline.Map(aged, func(e Employee) Employee {
		return e.WithJobHistory(QAToQA(e.JobHistory))
	})
}
