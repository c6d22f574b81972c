package data

import (
	"cmp"
	"slices"
)

type Person struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Age       int    `yaml:"age"`
}

func NewPerson(firstName, lastName string, age int) Person {
	return Person{FirstName: firstName, LastName: lastName, Age: age}
}

func (p Person) WithFirstName(firstName string) Person {
	p.FirstName = firstName

	return p
}

func (p Person) WithLastName(lastName string) Person {
	p.LastName = lastName

	return p
}

func (p Person) WithAge(age int) Person {
	p.Age = age

	return p
}

// FullName joins the first and last name with a space.
func FullName(p Person) string {
	return p.FirstName + " " + p.LastName
}

// ByAge orders persons from the youngest to the oldest.
func ByAge(a, b Person) int {
	return cmp.Compare(a.Age, b.Age)
}

// SortByAge returns a copy of persons sorted by ByAge. Persons of the same age keep their order.
func SortByAge(persons []Person) []Person {
	sorted := slices.Clone(persons)
	slices.SortStableFunc(sorted, ByAge)

	return sorted
}

// AgeOfLongestFullName returns a function giving the age of the person with the longest name, as computed by
// fullName. The first person wins a tie.
func AgeOfLongestFullName(fullName func(Person) string) func(a, b Person) int {
	return func(a, b Person) int {
		if len(fullName(a)) >= len(fullName(b)) {
			return a.Age
		}

		return b.Age
	}
}
