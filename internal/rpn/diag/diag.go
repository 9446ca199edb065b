// Package diag runs diagnostic cases against the operand stack and reports
// pass/fail per case to a console sink.
package diag

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	log "github.com/treeforest/logger"
)

var (
	statusPassed = color.New(color.FgGreen).SprintFunc()
	statusFailed = color.New(color.FgRed, color.Bold).SprintFunc()
)

// Summary 诊断结果汇总
type Summary struct {
	Passed   int
	Failed   int
	Failures []string
}

func (s Summary) OK() bool {
	return s.Failed == 0
}

// Reporter writes one line per case to w, in the form the on-device harness
// printed: "<name> passed" or "<name> FAILED".
type Reporter struct {
	w       io.Writer
	colored bool
	verbose bool
}

func NewReporter(w io.Writer, colored, verbose bool) *Reporter {
	return &Reporter{w: w, colored: colored && !color.NoColor, verbose: verbose}
}

func (r *Reporter) status(passed bool) string {
	switch {
	case passed && r.colored:
		return statusPassed("passed")
	case passed:
		return "passed"
	case r.colored:
		return statusFailed("FAILED")
	default:
		return "FAILED"
	}
}

func (r *Reporter) Pass(name string) {
	fmt.Fprintf(r.w, "%s %s\n", name, r.status(true))
}

func (r *Reporter) Fail(name string, problems []string, res Result) {
	fmt.Fprintf(r.w, "%s %s\n", name, r.status(false))
	for _, p := range problems {
		fmt.Fprintf(r.w, "\t%s\n", p)
	}
	if r.verbose {
		fmt.Fprint(r.w, spew.Sdump(res.Contents))
	}
}

func (r *Reporter) Summary(s Summary) {
	fmt.Fprintf(r.w, "%d passed, %d failed\n", s.Passed, s.Failed)
}

// Run 依次执行用例并汇报
func Run(cases []Case, r *Reporter) Summary {
	var sum Summary
	log.Infof("running %d stack diagnostics", len(cases))

	for _, c := range cases {
		res, err := c.Execute()
		if err != nil {
			log.Errorf("diagnostic %s: %v", c.Name, err)
			r.Fail(c.Name, []string{err.Error()}, res)
			sum.Failed++
			sum.Failures = append(sum.Failures, c.Name)
			continue
		}

		problems := c.Check(res)
		if len(problems) > 0 {
			log.Debugf("diagnostic %s: %d problem(s)", c.Name, len(problems))
			r.Fail(c.Name, problems, res)
			sum.Failed++
			sum.Failures = append(sum.Failures, c.Name)
			continue
		}
		r.Pass(c.Name)
		sum.Passed++
	}

	r.Summary(sum)
	return sum
}
