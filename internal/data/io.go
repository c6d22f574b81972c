package data

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type employeesDocument struct {
	Employees []Employee `yaml:"employees"`
}

// ReadEmployees decodes a YAML document holding an employees list.
func ReadEmployees(rdr io.Reader) ([]Employee, error) {
	var doc employeesDocument

	err := yaml.NewDecoder(rdr).Decode(&doc)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "unable to decode employees")
	}

	return doc.Employees, nil
}

// WriteEmployees encodes employees in the format read by ReadEmployees.
func WriteEmployees(wrt io.Writer, employees []Employee) error {
	enc := yaml.NewEncoder(wrt)
	enc.SetIndent(2)

	err := enc.Encode(employeesDocument{Employees: employees})
	if err != nil {
		return errors.Wrap(err, "unable to encode employees")
	}

	return errors.Wrap(enc.Close(), "unable to flush employees")
}
