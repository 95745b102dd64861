package reporting

import (
	"errors"
	"fmt"
	"io"

	"unity-activate/internal/activation"
	"unity-activate/internal/color"
)

// ErrorAnnotationPrefix starts the line the CI log processor turns into an
// error annotation.
const ErrorAnnotationPrefix = "::error ::"

const annotationMessage = "There was an error while trying to activate the Unity license."

// ConsoleReporter prints activation progress and the final result as plain
// lines. It implements activation.Reporter.
type ConsoleReporter struct {
	out io.Writer
}

// NewConsoleReporter creates a ConsoleReporter writing to out.
func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{out: out}
}

// Status prints one progress line.
func (c *ConsoleReporter) Status(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Success prints the final success line.
func (c *ConsoleReporter) Success() {
	fmt.Fprintln(c.out, color.SuccessStyle.Render("License activation successful."))
}

// Failure prints err. Activation failures are followed by the CI error
// annotation line, which is never styled.
func (c *ConsoleReporter) Failure(err error) {
	var ae *activation.Error
	if !errors.As(err, &ae) {
		fmt.Fprintln(c.out, color.ErrorStyle.Render("Error: "+err.Error()))
		return
	}

	if ae.Kind == activation.KindUnclassified {
		fmt.Fprintln(c.out, color.ErrorStyle.Render(ae.Error()))
	} else {
		fmt.Fprintln(c.out, color.ErrorStyle.Render("Error: "+ae.Error()))
	}
	if ae.Annotated() {
		fmt.Fprintln(c.out, ErrorAnnotationPrefix+annotationMessage)
	}
}
