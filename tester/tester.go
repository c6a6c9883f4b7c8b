package tester

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nihei9/jpred/frontend"
)

// Diff is one position where the reported diagnostics differ from the expected ones.
// An empty Expected or Actual means the diagnostic is missing on that side.
type Diff struct {
	Index    int
	Expected string
	Actual   string
}

func (d *Diff) String() string {
	switch {
	case d.Expected == "":
		return fmt.Sprintf("#%v: unexpected diagnostic: %v", d.Index, d.Actual)
	case d.Actual == "":
		return fmt.Sprintf("#%v: missing diagnostic: %v", d.Index, d.Expected)
	}
	return fmt.Sprintf("#%v: expected: %v, actual: %v", d.Index, d.Expected, d.Actual)
}

type TestResult struct {
	TestCasePath string
	Error        error
	Diffs        []*Diff
}

func (r *TestResult) String() string {
	if r.Error != nil {
		const indent1 = "    "
		const indent2 = indent1 + indent1

		msgLines := strings.Split(r.Error.Error(), "\n")
		msg := fmt.Sprintf("Failed %v:\n%v%v", r.TestCasePath, indent1, strings.Join(msgLines, "\n"+indent1))
		if len(r.Diffs) == 0 {
			return msg
		}
		var diffLines []string
		for _, diff := range r.Diffs {
			diffLines = append(diffLines, diff.String())
		}
		return fmt.Sprintf("%v\n%v%v", msg, indent2, strings.Join(diffLines, "\n"+indent2))
	}
	return fmt.Sprintf("Passed %v", r.TestCasePath)
}

type TestCaseWithMetadata struct {
	TestCase *TestCase
	FilePath string
	Error    error
}

// ListTestCases reads the test case at `testPath`, or every test case under it when it
// is a directory.
func ListTestCases(testPath string) []*TestCaseWithMetadata {
	fi, err := os.Stat(testPath)
	if err != nil {
		return []*TestCaseWithMetadata{
			{
				FilePath: testPath,
				Error:    err,
			},
		}
	}
	if !fi.IsDir() {
		c, err := parseTestCase(testPath)
		return []*TestCaseWithMetadata{
			{
				TestCase: c,
				FilePath: testPath,
				Error:    err,
			},
		}
	}

	es, err := os.ReadDir(testPath)
	if err != nil {
		return []*TestCaseWithMetadata{
			{
				FilePath: testPath,
				Error:    err,
			},
		}
	}
	var cases []*TestCaseWithMetadata
	for _, e := range es {
		cs := ListTestCases(filepath.Join(testPath, e.Name()))
		cases = append(cases, cs...)
	}
	return cases
}

func parseTestCase(testCasePath string) (*TestCase, error) {
	f, err := os.Open(testCasePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseTestCase(f)
}

type Tester struct {
	Frontend *frontend.Frontend
	Cases    []*TestCaseWithMetadata
}

func (t *Tester) Run() []*TestResult {
	var rs []*TestResult
	for _, c := range t.Cases {
		rs = append(rs, runTest(t.Frontend, c))
	}
	return rs
}

func runTest(f *frontend.Frontend, c *TestCaseWithMetadata) *TestResult {
	if c.Error != nil {
		return &TestResult{
			TestCasePath: c.FilePath,
			Error:        c.Error,
		}
	}

	res, err := f.Analyze(c.TestCase.Source)
	if err != nil {
		return &TestResult{
			TestCasePath: c.FilePath,
			Error:        err,
		}
	}

	diffs := diffDiagnostics(c.TestCase.Diagnostics, diagnostics(res))
	if len(diffs) > 0 {
		return &TestResult{
			TestCasePath: c.FilePath,
			Error:        fmt.Errorf("output mismatch: %v", c.TestCase.Description),
			Diffs:        diffs,
		}
	}
	return &TestResult{
		TestCasePath: c.FilePath,
	}
}

func diagnostics(res *frontend.Result) []string {
	var diags []string
	for _, e := range res.LexicalErrors {
		diags = append(diags, e.Error())
	}
	for _, e := range res.SyntaxErrors {
		diags = append(diags, e.Error())
	}
	for _, e := range res.SemanticErrors {
		diags = append(diags, e.Error())
	}
	return diags
}

func diffDiagnostics(expected, actual []string) []*Diff {
	var diffs []*Diff
	n := len(expected)
	if len(actual) > n {
		n = len(actual)
	}
	for i := 0; i < n; i++ {
		var e, a string
		if i < len(expected) {
			e = expected[i]
		}
		if i < len(actual) {
			a = actual[i]
		}
		if e == a {
			continue
		}
		diffs = append(diffs, &Diff{
			Index:    i,
			Expected: e,
			Actual:   a,
		})
	}
	return diffs
}
