package catalog

import (
	"fmt"
	"strings"
)

const (
	labelName = "Name Or Alias: "
	labelType = "Type: "
	labelMin  = "Min Value: "
	labelMax  = "Max Value: "
)

var labels = [...]string{labelName, labelType, labelMin, labelMax}

// String renders the descriptor as a block of four lines.
func (d Descriptor) String() string {
	var b strings.Builder
	for i, value := range d.fields() {
		b.WriteString(labels[i])
		b.WriteString(value)
		b.WriteByte('\n')
	}

	return b.String()
}

func (d Descriptor) fields() [4]string {
	return [4]string{d.displayName, d.canonicalName, d.minValue, d.maxValue}
}

// Format renders the whole catalog, one block per descriptor followed by a blank line.
func Format(c *Catalog) string {
	var b strings.Builder
	for _, d := range c.All() {
		b.WriteString(d.String())
		b.WriteByte('\n')
	}

	return b.String()
}

// Aliases renders one bullet line per display name.
func Aliases(c *Catalog) string {
	var b strings.Builder
	for _, d := range c.All() {
		b.WriteString("•")
		b.WriteString(d.displayName)
		b.WriteByte('\n')
	}

	return b.String()
}

// Parse reads a report produced by Format.
// The category is not part of the report, so parsed descriptors carry none.
func Parse(report string) ([]Descriptor, error) {
	lines := strings.Split(report, "\n")

	var res []Descriptor
	for i := 0; i < len(lines); {
		if lines[i] == "" {
			i++
			continue
		}

		if i+len(labels) > len(lines) {
			return nil, fmt.Errorf("%w: truncated block at line %d", ErrMalformedReport, i+1)
		}

		var fields [4]string
		for j, label := range labels {
			value, ok := strings.CutPrefix(lines[i+j], label)
			if !ok {
				return nil, fmt.Errorf("%w: line %d does not start with %q", ErrMalformedReport, i+j+1, label)
			}

			fields[j] = value
		}

		res = append(res, NewDescriptor(fields[0], fields[1], fields[2], fields[3], 0))
		i += len(labels)
	}

	return res, nil
}
