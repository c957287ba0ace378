package compiler

import (
	"github.com/pkg/errors"
	"github.com/weaveml/pipeline-compiler/pkg/pipeline"
	"github.com/weaveml/pipeline-compiler/pkg/version"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/yaml"
)

const (
	workflowAPIVersion = "argoproj.io/v1alpha1"
	workflowKind       = "Workflow"

	// RunIDLabel ties every object rendered in one compile run together.
	RunIDLabel = "pipelines.weaveml.io/run-id"

	entrypointName = "main"
)

// Workflow is the rendered manifest, shaped like an Argo workflow with one
// template per task and a steps entrypoint running them in order.
type Workflow struct {
	APIVersion string            `json:"apiVersion"`
	Kind       string            `json:"kind"`
	Metadata   metav1.ObjectMeta `json:"metadata"`
	Spec       WorkflowSpec      `json:"spec"`
}

type WorkflowSpec struct {
	Entrypoint string     `json:"entrypoint"`
	Templates  []Template `json:"templates"`
}

type Template struct {
	Name      string            `json:"name"`
	Metadata  *TemplateMetadata `json:"metadata,omitempty"`
	Container *corev1.Container `json:"container,omitempty"`
	Resource  *ResourceTemplate `json:"resource,omitempty"`
	Steps     [][]WorkflowStep  `json:"steps,omitempty"`
}

type TemplateMetadata struct {
	Labels map[string]string `json:"labels,omitempty"`
}

type ResourceTemplate struct {
	Action   string `json:"action"`
	Manifest string `json:"manifest"`
}

type WorkflowStep struct {
	Name     string `json:"name"`
	Template string `json:"template"`
}

func renderWorkflow(p *pipeline.Pipeline, runID string) (*Workflow, error) {
	workflow := &Workflow{
		APIVersion: workflowAPIVersion,
		Kind:       workflowKind,
		Metadata: metav1.ObjectMeta{
			GenerateName: p.Name + "-",
			Labels: map[string]string{
				"app.kubernetes.io/managed-by": version.AppName,
				RunIDLabel:                     runID,
			},
		},
		Spec: WorkflowSpec{Entrypoint: entrypointName},
	}

	entrypoint := Template{Name: entrypointName}
	seenNames := map[string]bool{}

	for _, task := range p.Tasks {
		if task.Name() == entrypointName {
			return nil, errors.Errorf("task name %q is reserved for the entrypoint template", entrypointName)
		}

		if seenNames[task.Name()] {
			return nil, errors.Errorf("duplicate task name %q", task.Name())
		}

		seenNames[task.Name()] = true

		template, err := renderTemplate(task)
		if err != nil {
			return nil, err
		}

		workflow.Spec.Templates = append(workflow.Spec.Templates, template)
		entrypoint.Steps = append(entrypoint.Steps, []WorkflowStep{{
			Name:     task.Name(),
			Template: template.Name,
		}})
	}

	workflow.Spec.Templates = append(workflow.Spec.Templates, entrypoint)

	return workflow, nil
}

func renderTemplate(task pipeline.Task) (Template, error) {
	template := Template{Name: task.Name()}

	if len(task.PodLabels()) > 0 {
		template.Metadata = &TemplateMetadata{Labels: task.PodLabels()}
	}

	switch task := task.(type) {
	case pipeline.ContainerCarrier:
		template.Container = task.Container()
	case *pipeline.ResourceTask:
		template.Resource = &ResourceTemplate{Action: task.Action, Manifest: task.Manifest}
	default:
		return Template{}, errors.Errorf("task %q has no renderable payload", template.Name)
	}

	return template, nil
}

// Marshal renders the workflow as YAML.
func (workflow *Workflow) Marshal() ([]byte, error) {
	raw, err := yaml.Marshal(workflow)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return raw, nil
}
