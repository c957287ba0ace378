package transformer

import (
	"github.com/weaveml/pipeline-compiler/pkg/pipeline"
	"github.com/weaveml/pipeline-compiler/pkg/util/kubeobjects/env"
	"github.com/weaveml/pipeline-compiler/pkg/util/maputil"
	corev1 "k8s.io/api/core/v1"
)

// PodEnv attaches the pod's own name and namespace as environment variables to
// container-backed tasks that opted in via the add-pod-env label.
type PodEnv struct{}

func NewPodEnv() PodEnv {
	return PodEnv{}
}

func (PodEnv) Transform(task pipeline.Task) pipeline.Task {
	carrier, ok := task.(pipeline.ContainerCarrier)
	if !ok {
		return task
	}

	// only the exact string "true" opts in, truthy spellings like "1" do not
	if maputil.GetField(task.PodLabels(), AddPodEnvLabel, "") != "true" {
		return task
	}

	container := carrier.Container()
	if env.IsIn(container.Env, PodNameEnv) {
		return task
	}

	log.Debug("injecting pod env", "task", task.Name())

	container.Env = append(container.Env,
		corev1.EnvVar{
			Name:      PodNameEnv,
			ValueFrom: env.NewEnvVarSourceForField(podNameFieldPath),
		},
		corev1.EnvVar{
			Name:      PodNamespaceEnv,
			ValueFrom: env.NewEnvVarSourceForField(podNamespaceFieldPath),
		},
	)

	return task
}
