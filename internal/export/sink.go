// Package export writes assembled table rows to their destinations
package export

// Sink writes one named table somewhere.
type Sink interface {
	WriteTable(name string, columns []string, rows [][]string) error
}

// WriteAll writes the same table to every sink, stopping at the first
// failure.
func WriteAll(sinks []Sink, name string, columns []string, rows [][]string) error {
	for _, s := range sinks {
		if err := s.WriteTable(name, columns, rows); err != nil {
			return err
		}
	}
	return nil
}
