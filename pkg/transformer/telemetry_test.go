package transformer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTelemetryLabels(t *testing.T) {
	assert.Equal(t, map[string]string{
		"pipelines.kubeflow.org/pipeline-sdk-type": "kfp",
	}, DefaultTelemetryLabels())
}
