package cmdutil

import (
	"io"

	"github.com/opmodel/enhance/internal/classpath"
	"github.com/opmodel/enhance/internal/output"
	"github.com/opmodel/enhance/internal/pipeline"
)

// WritePlan writes one styled line per dependency and classpath directory.
// Skipped dependencies come first, then resolution outcomes in order, then
// the class source and any extra classpath entries.
func WritePlan(w io.Writer, plan *pipeline.Plan) {
	for _, d := range plan.Skipped {
		writeLine(w, output.FormatArtifactLine(d.String(), output.StatusSkipped))
	}
	for _, o := range plan.Outcomes {
		status := output.StatusResolved
		if !o.OK() {
			status = output.StatusUnresolved
		}
		writeLine(w, output.FormatArtifactLine(o.Dependency.String(), status))
	}

	entries := classpath.Split(plan.Classpath, plan.Separator)
	if len(entries) < len(plan.Artifacts) {
		return
	}
	for _, e := range entries[len(plan.Artifacts):] {
		writeLine(w, output.FormatArtifactLine(e, output.StatusDirectory))
	}
}

// WriteUnresolvedWarnings logs one warning per unresolved dependency.
func WriteUnresolvedWarnings(plan *pipeline.Plan) {
	for _, o := range plan.Unresolved() {
		output.Warn("dependency not on classpath", "artifact", o.Dependency.String())
	}
}

func writeLine(w io.Writer, s string) {
	_, _ = io.WriteString(w, s+"\n")
}
