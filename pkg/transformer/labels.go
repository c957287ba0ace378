package transformer

import "github.com/weaveml/pipeline-compiler/pkg/pipeline"

// PodLabels applies a fixed set of pod labels to every task. Labels a previous
// stage already set win, so retooled pipelines keep their own values.
type PodLabels struct {
	labels map[string]string
}

func NewPodLabels(labels map[string]string) PodLabels {
	return PodLabels{labels: labels}
}

func (injector PodLabels) Transform(task pipeline.Task) pipeline.Task {
	for key, value := range injector.labels {
		if _, exists := task.PodLabels()[key]; !exists {
			task.AddPodLabel(key, value)
		}
	}

	return task
}
