package error

import (
	"fmt"
	"strings"
)

// SpecError reports a defect in a grammar definition. Such defects are fatal:
// a grammar containing one is never analyzed.
type SpecError struct {
	Cause       error
	Detail      string
	SourceName  string
	Row         int
	Col         int
	Rule        string
	Alternative int
}

func (e *SpecError) Error() string {
	var b strings.Builder
	if e.SourceName != "" {
		fmt.Fprintf(&b, "%v: ", e.SourceName)
	}
	if e.Row != 0 {
		fmt.Fprintf(&b, "%v:%v: ", e.Row, e.Col)
	}
	if e.Rule != "" {
		fmt.Fprintf(&b, "%v", e.Rule)
		if e.Alternative > 0 {
			fmt.Fprintf(&b, "/%v", e.Alternative)
		}
		fmt.Fprintf(&b, ": ")
	}
	fmt.Fprintf(&b, "error: %v", e.Cause)
	if e.Detail != "" {
		fmt.Fprintf(&b, ": %v", e.Detail)
	}

	return b.String()
}

func (e *SpecError) Unwrap() error {
	return e.Cause
}

type SpecErrors []*SpecError

func (e SpecErrors) Error() string {
	if len(e) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%v", e[0])
	for _, err := range e[1:] {
		fmt.Fprintf(&b, "\n%v", err)
	}

	return b.String()
}
