package main

import (
	"strings"
	"testing"

	"github.com/nihei9/jpred/frontend"
)

func TestWriteGrammarReport(t *testing.T) {
	a, err := frontend.GenerateJava()
	if err != nil {
		t.Fatal(err)
	}
	rep, err := a.Report()
	if err != nil {
		t.Fatal(err)
	}

	var b strings.Builder
	err = writeGrammarReport(&b, &grammarReport{
		Report:      rep,
		Fingerprint: "fp",
	})
	if err != nil {
		t.Fatal(err)
	}
	out := b.String()

	for _, want := range []string{
		"# java\n",
		"fingerprint: fp\n",
		"ElseOpt: {else, ε}\n",
		"1 conflict\n",
		"(ElseOpt, else): ElseOpt → else Stmt was kept, ElseOpt → ε was rejected",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("the report lacks %q:\n%v", want, out)
		}
	}
}
