package data

// SampleEmployees returns three employees with their job history.
func SampleEmployees() []Employee {
	return []Employee{
		{
			Person: NewPerson("a", "Galt", 30),
			JobHistory: []JobHistoryEntry{
				{Duration: 2, Position: "dev", Employer: "epam"},
				{Duration: 1, Position: "dev", Employer: "google"},
			},
		},
		{
			Person: NewPerson("b", "Doe", 40),
			JobHistory: []JobHistoryEntry{
				{Duration: 3, Position: "qa", Employer: "yandex"},
				{Duration: 1, Position: "qa", Employer: "epam"},
				{Duration: 1, Position: "dev", Employer: "abc"},
			},
		},
		{
			Person: NewPerson("c", "White", 50),
			JobHistory: []JobHistoryEntry{
				{Duration: 5, Position: "qa", Employer: "epam"},
			},
		},
	}
}
