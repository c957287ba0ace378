package transformer

import (
	"strings"

	"github.com/weaveml/pipeline-compiler/pkg/pipeline"
	"github.com/weaveml/pipeline-compiler/pkg/util/kubeobjects/labels"
	"k8s.io/apimachinery/pkg/util/validation"
)

// OOBComponentOrigin labels tasks built from components of the first-party
// component catalog with their catalog path and component spec digest.
// Components hosted anywhere else are left entirely unlabeled.
type OOBComponentOrigin struct{}

func NewOOBComponentOrigin() OOBComponentOrigin {
	return OOBComponentOrigin{}
}

func (OOBComponentOrigin) Transform(task pipeline.Task) pipeline.Task {
	ref := task.ComponentRef()
	if ref == nil {
		return task
	}

	if ref.URL != "" {
		originPath, ok := oobOriginPath(ref.URL)
		if !ok {
			// not a catalog component, the digest is skipped as well
			return task
		}

		task.AddPodLabel(ComponentOriginPathLabel, labels.SanitizeValue(originPath))
	}

	if ref.Digest != "" {
		task.AddPodLabel(ComponentDigestLabel, truncateDigest(ref.Digest))
	}

	return task
}

// oobOriginPath reduces a component URL to its sub-path within the first-party
// catalog. The suffix strip is a literal string match, not path-aware.
func oobOriginPath(url string) (string, bool) {
	originPath := strings.TrimSuffix(url, componentFileName)
	originPath = strings.TrimRight(originPath, "/")

	if !strings.HasPrefix(originPath, oobComponentURLPrefix) {
		return "", false
	}

	// drop scheme, host, org, repo and ref segments
	fields := strings.SplitN(originPath, "/", 8)

	return fields[len(fields)-1], true
}

func truncateDigest(digest string) string {
	// only the first 63 digits of the digest fit into a label value
	if len(digest) > validation.LabelValueMaxLength {
		return digest[:validation.LabelValueMaxLength]
	}

	return digest
}
