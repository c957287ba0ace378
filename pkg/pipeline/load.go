package pipeline

import (
	"github.com/opencontainers/go-digest"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/weaveml/pipeline-compiler/pkg/logd"
	"github.com/weaveml/pipeline-compiler/pkg/util/kubeobjects/labels"
	"gopkg.in/yaml.v3"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/util/validation"
)

var log = logd.Get().WithName("pipeline")

type pipelineSpec struct {
	Name  string     `yaml:"name"`
	Tasks []taskSpec `yaml:"tasks"`
}

type taskSpec struct {
	Name      string            `yaml:"name"`
	Image     string            `yaml:"image,omitempty"`
	Command   []string          `yaml:"command,omitempty"`
	Args      []string          `yaml:"args,omitempty"`
	PodLabels map[string]string `yaml:"podLabels,omitempty"`
	Component *componentSpec    `yaml:"component,omitempty"`
	Resource  *resourceSpec     `yaml:"resource,omitempty"`
}

type componentSpec struct {
	URL    string `yaml:"url,omitempty"`
	Digest string `yaml:"digest,omitempty"`
}

type resourceSpec struct {
	Action   string `yaml:"action"`
	Manifest string `yaml:"manifest"`
}

// Load reads a pipeline definition file and builds the task model from it.
func Load(fs afero.Fs, path string) (*Pipeline, error) {
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var spec pipelineSpec
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return nil, errors.Wrapf(err, "malformed pipeline definition %s", path)
	}

	return buildPipeline(&spec)
}

func buildPipeline(spec *pipelineSpec) (*Pipeline, error) {
	if spec.Name == "" {
		return nil, errors.New("pipeline needs a name")
	}

	pipeline := &Pipeline{Name: spec.Name}

	for _, taskSpec := range spec.Tasks {
		task, err := buildTask(taskSpec)
		if err != nil {
			return nil, errors.WithMessagef(err, "task %q", taskSpec.Name)
		}

		pipeline.Tasks = append(pipeline.Tasks, task)
	}

	return pipeline, nil
}

func buildTask(spec taskSpec) (Task, error) {
	if spec.Name == "" {
		return nil, errors.New("task needs a name")
	}

	if err := validatePodLabels(spec.PodLabels); err != nil {
		return nil, err
	}

	task, err := buildTaskVariant(spec)
	if err != nil {
		return nil, err
	}

	for key, value := range spec.PodLabels {
		task.AddPodLabel(key, value)
	}

	task.SetComponentRef(buildComponentRef(spec.Component))

	return task, nil
}

func buildTaskVariant(spec taskSpec) (Task, error) {
	switch {
	case spec.Image != "" && spec.Resource != nil:
		return nil, errors.New("task cannot be container and resource backed at once")
	case spec.Resource != nil:
		return NewResourceTask(spec.Name, spec.Resource.Action, spec.Resource.Manifest), nil
	case spec.Image != "":
		return NewContainerTask(spec.Name, corev1.Container{
			Image:   spec.Image,
			Command: spec.Command,
			Args:    spec.Args,
		}), nil
	default:
		return nil, errors.New("task needs an image or a resource")
	}
}

func buildComponentRef(spec *componentSpec) *ComponentRef {
	if spec == nil {
		return nil
	}

	if spec.Digest != "" {
		if _, err := digest.Parse(spec.Digest); err != nil {
			// raw hex digests from older component catalogs are kept verbatim
			log.Debug("component digest is not an OCI digest", "digest", spec.Digest)
		}
	}

	return &ComponentRef{URL: spec.URL, Digest: spec.Digest}
}

func validatePodLabels(podLabels map[string]string) error {
	for key, value := range podLabels {
		if msgs := validation.IsQualifiedName(key); len(msgs) > 0 {
			return errors.Errorf("invalid label key %q", key)
		}

		if err := labels.ValidateValue(value); err != nil {
			return err
		}
	}

	return nil
}
