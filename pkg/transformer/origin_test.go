package transformer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/weaveml/pipeline-compiler/pkg/pipeline"
	corev1 "k8s.io/api/core/v1"
)

func newTaskWithRef(t *testing.T, ref *pipeline.ComponentRef) *pipeline.ContainerTask {
	t.Helper()

	task := pipeline.NewContainerTask("train", corev1.Container{Image: "registry.test/train"})
	task.SetComponentRef(ref)

	return task
}

func TestOOBComponentOriginTransform(t *testing.T) {
	t.Run("catalog component gets origin path label", func(t *testing.T) {
		task := newTaskWithRef(t, &pipeline.ComponentRef{
			URL: "https://raw.githubusercontent.com/kubeflow/pipelines/master/components/foo/bar/component.yaml",
		})

		NewOOBComponentOrigin().Transform(task)

		assert.Equal(t, "foo.bar", task.PodLabels()[ComponentOriginPathLabel])
	})
	t.Run("foreign component gets no label at all", func(t *testing.T) {
		task := newTaskWithRef(t, &pipeline.ComponentRef{
			URL:    "https://example.com/x/component.yaml",
			Digest: "abcdef0123456789",
		})

		NewOOBComponentOrigin().Transform(task)

		assert.Empty(t, task.PodLabels())
	})
	t.Run("digest is cut to 63 characters", func(t *testing.T) {
		digest := "abcdef0123456789" + strings.Repeat("0", 54)
		task := newTaskWithRef(t, &pipeline.ComponentRef{Digest: digest})

		NewOOBComponentOrigin().Transform(task)

		assert.Equal(t, digest[:63], task.PodLabels()[ComponentDigestLabel])
		assert.Len(t, task.PodLabels()[ComponentDigestLabel], 63)
	})
	t.Run("digest alone is labeled without a URL", func(t *testing.T) {
		task := newTaskWithRef(t, &pipeline.ComponentRef{Digest: "abc123"})

		NewOOBComponentOrigin().Transform(task)

		assert.Equal(t, "abc123", task.PodLabels()[ComponentDigestLabel])
		assert.NotContains(t, task.PodLabels(), ComponentOriginPathLabel)
	})
	t.Run("no component ref is a no-op", func(t *testing.T) {
		task := newTaskWithRef(t, nil)

		NewOOBComponentOrigin().Transform(task)

		assert.Empty(t, task.PodLabels())
	})
	t.Run("suffix strip is literal, not path-aware", func(t *testing.T) {
		// no trailing component.yaml, the last path segment stays
		task := newTaskWithRef(t, &pipeline.ComponentRef{
			URL: "https://raw.githubusercontent.com/kubeflow/pipelines/master/components/foo/bar/",
		})

		NewOOBComponentOrigin().Transform(task)

		assert.Equal(t, "foo.bar", task.PodLabels()[ComponentOriginPathLabel])
	})
	t.Run("disallowed characters in the path become dots", func(t *testing.T) {
		task := newTaskWithRef(t, &pipeline.ComponentRef{
			URL: "https://raw.githubusercontent.com/kubeflow/pipelines/master/components/foo bar!/component.yaml",
		})

		NewOOBComponentOrigin().Transform(task)

		assert.Equal(t, "foo.bar", task.PodLabels()[ComponentOriginPathLabel])
	})
}

func TestOOBOriginPath(t *testing.T) {
	t.Run("keeps everything after the seventh slash", func(t *testing.T) {
		originPath, ok := oobOriginPath("https://raw.githubusercontent.com/kubeflow/pipelines/master/components/foo/bar/baz/component.yaml")

		assert.True(t, ok)
		assert.Equal(t, "foo/bar/baz", originPath)
	})
	t.Run("prefix check is raw, no URL normalization", func(t *testing.T) {
		_, ok := oobOriginPath("HTTPS://raw.githubusercontent.com/kubeflow/pipelines/master/components/foo/component.yaml")

		assert.False(t, ok)
	})
}
