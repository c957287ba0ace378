package pipeline

import corev1 "k8s.io/api/core/v1"

// ComponentRef identifies the source a task's component definition was loaded
// from, either by catalog URL or by content digest, usually both.
type ComponentRef struct {
	URL    string
	Digest string
}

// Task is a single pipeline step. The concrete variants are ContainerTask and
// ResourceTask; additional capabilities of a variant are discovered through
// the carrier interfaces below instead of inspecting the concrete type.
type Task interface {
	Name() string
	PodLabels() map[string]string
	AddPodLabel(key, value string)
	ComponentRef() *ComponentRef
	SetComponentRef(ref *ComponentRef)
}

// ContainerCarrier is implemented by task variants that are backed by a
// workload container and therefore accept environment variables.
type ContainerCarrier interface {
	Container() *corev1.Container
}

// BaseTask carries the metadata every task variant shares.
type BaseTask struct {
	name      string
	podLabels map[string]string
	ref       *ComponentRef
}

func (task *BaseTask) Name() string {
	return task.name
}

// PodLabels returns the task's label map, nil when no label was set yet.
func (task *BaseTask) PodLabels() map[string]string {
	return task.podLabels
}

func (task *BaseTask) AddPodLabel(key, value string) {
	if task.podLabels == nil {
		task.podLabels = make(map[string]string)
	}

	task.podLabels[key] = value
}

func (task *BaseTask) ComponentRef() *ComponentRef {
	return task.ref
}

func (task *BaseTask) SetComponentRef(ref *ComponentRef) {
	task.ref = ref
}

// ContainerTask runs a single workload container.
type ContainerTask struct {
	BaseTask

	container corev1.Container
}

func NewContainerTask(name string, container corev1.Container) *ContainerTask {
	if container.Name == "" {
		container.Name = name
	}

	return &ContainerTask{
		BaseTask:  BaseTask{name: name},
		container: container,
	}
}

func (task *ContainerTask) Container() *corev1.Container {
	return &task.container
}

// ResourceTask applies a raw Kubernetes manifest instead of running a container.
type ResourceTask struct {
	BaseTask

	Action   string
	Manifest string
}

func NewResourceTask(name, action, manifest string) *ResourceTask {
	return &ResourceTask{
		BaseTask: BaseTask{name: name},
		Action:   action,
		Manifest: manifest,
	}
}
