package transformer

import "github.com/weaveml/pipeline-compiler/pkg/pipeline"

// Transformer decorates a task before it is rendered into the workflow
// manifest. Implementations mutate the task in place and return the same
// reference; a task that does not meet a transformer's preconditions is
// passed through untouched.
type Transformer interface {
	Transform(task pipeline.Task) pipeline.Task
}

// Defaults returns the transformer chain the compiler applies when the caller
// does not configure one: telemetry labels, opt-in pod env injection and
// component provenance labels, in that order.
func Defaults() []Transformer {
	return []Transformer{
		NewPodLabels(DefaultTelemetryLabels()),
		NewPodEnv(),
		NewOOBComponentOrigin(),
	}
}
