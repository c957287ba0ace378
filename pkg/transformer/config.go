package transformer

import "github.com/weaveml/pipeline-compiler/pkg/logd"

const (
	// SDKTypeLabel marks pods with the SDK type the pipeline was authored with.
	SDKTypeLabel   = "pipelines.kubeflow.org/pipeline-sdk-type"
	SDKTypeDefault = "kfp"

	// ComponentOriginPathLabel carries the catalog sub-path of the component a
	// task was built from.
	ComponentOriginPathLabel = "pipelines.kubeflow.org/component_origin_path"
	// ComponentDigestLabel carries the content digest of the component spec.
	ComponentDigestLabel = "pipelines.kubeflow.org/component_digest"

	// AddPodEnvLabel is the opt-in flag for downward-API env injection,
	// recognized only with the exact value "true".
	AddPodEnvLabel = "add-pod-env"

	PodNameEnv      = "KFP_POD_NAME"
	PodNamespaceEnv = "KFP_NAMESPACE"

	podNameFieldPath      = "metadata.name"
	podNamespaceFieldPath = "metadata.namespace"

	// oobComponentURLPrefix is the common prefix of first-party component
	// catalog URLs. Compared verbatim, no URL normalization.
	oobComponentURLPrefix = "https://raw.githubusercontent.com/kubeflow/pipelines"

	componentFileName = "component.yaml"
)

var log = logd.Get().WithName("task-transformer")
