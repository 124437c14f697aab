package mock

import (
	"github.com/progscout/progscout"
)

var _ progscout.Converter = (*Converter)(nil)

// Converter is a mock implementation of progscout.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
