package mockexport

import (
	"github.com/stretchr/testify/mock"
)

type Sink struct {
	mock.Mock
}

func (s *Sink) WriteTable(name string, columns []string, rows [][]string) error {
	args := s.Called(name, columns, rows)
	return args.Error(0)
}
