package compiler

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/weaveml/pipeline-compiler/pkg/logd"
	"github.com/weaveml/pipeline-compiler/pkg/pipeline"
	"github.com/weaveml/pipeline-compiler/pkg/transformer"
	"github.com/weaveml/pipeline-compiler/pkg/util/maputil"
)

var log = logd.Get().WithName("compiler")

// Compiler turns a pipeline into a workflow manifest, decorating every task
// with the configured transformer chain first.
type Compiler struct {
	transformers []transformer.Transformer
	extraLabels  map[string]string
}

type Option func(*Compiler)

// WithTransformers replaces the default transformer chain.
func WithTransformers(transformers ...transformer.Transformer) Option {
	return func(compiler *Compiler) {
		compiler.transformers = transformers
	}
}

// WithExtraPodLabels configures a static label injector appended behind the
// chain, existing task labels keep winning. Repeated options are merged,
// later values win. The given map is copied and can be reused by the caller.
func WithExtraPodLabels(labels map[string]string) Option {
	return func(compiler *Compiler) {
		compiler.extraLabels = maputil.MergeMap(compiler.extraLabels, labels)
	}
}

func New(options ...Option) *Compiler {
	compiler := &Compiler{transformers: transformer.Defaults()}
	for _, option := range options {
		option(compiler)
	}

	if len(compiler.extraLabels) > 0 {
		compiler.transformers = append(compiler.transformers, transformer.NewPodLabels(compiler.extraLabels))
	}

	return compiler
}

// Compile applies the transformer chain to every task in order and renders
// the workflow manifest. Tasks are mutated in place.
func (compiler *Compiler) Compile(p *pipeline.Pipeline) (*Workflow, error) {
	if p == nil || len(p.Tasks) == 0 {
		return nil, errors.Errorf("pipeline %q has no tasks", pipelineName(p))
	}

	runID := uuid.NewString()
	log.Info("compiling pipeline", "pipeline", p.Name, "tasks", len(p.Tasks), "runId", runID)

	for _, task := range p.Tasks {
		for _, t := range compiler.transformers {
			task = t.Transform(task)
		}
	}

	return renderWorkflow(p, runID)
}

func pipelineName(p *pipeline.Pipeline) string {
	if p == nil {
		return ""
	}

	return p.Name
}
