package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/weaveml/pipeline-compiler/pkg/compiler"
	"github.com/weaveml/pipeline-compiler/pkg/logd"
	"github.com/weaveml/pipeline-compiler/pkg/pipeline"
	"github.com/weaveml/pipeline-compiler/pkg/version"
)

const use = "pipeline-compiler"

var log = logd.Get().WithName("cmd")

func New(fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:          use,
		SilenceUsage: true,
	}
	cmd.AddCommand(newCompileCommand(fs))
	cmd.AddCommand(newVersionCommand())

	return cmd
}

func newCompileCommand(fs afero.Fs) *cobra.Command {
	var (
		pipelineFile string
		outputFile   string
		extraLabels  map[string]string
	)

	cmd := &cobra.Command{
		Use:          "compile",
		Short:        "Compile a pipeline definition into a workflow manifest",
		RunE:         compile(fs, &pipelineFile, &outputFile, &extraLabels),
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&pipelineFile, "file", "f", "", "pipeline definition to compile")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "file to write the workflow manifest to, stdout when empty")
	cmd.Flags().StringToStringVar(&extraLabels, "label", nil, "extra pod labels to apply to every task, existing task labels win")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func compile(fs afero.Fs, pipelineFile, outputFile *string, extraLabels *map[string]string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		version.LogVersion()
		logd.LogBaseLoggerSettings()

		p, err := pipeline.Load(fs, *pipelineFile)
		if err != nil {
			return err
		}

		options := []compiler.Option{}
		if len(*extraLabels) > 0 {
			options = append(options, compiler.WithExtraPodLabels(*extraLabels))
		}

		workflow, err := compiler.New(options...).Compile(p)
		if err != nil {
			return err
		}

		raw, err := workflow.Marshal()
		if err != nil {
			return err
		}

		return writeManifest(fs, cmd, *outputFile, raw)
	}
}

func writeManifest(fs afero.Fs, cmd *cobra.Command, outputFile string, raw []byte) error {
	if outputFile == "" {
		_, err := cmd.OutOrStdout().Write(raw)

		return errors.WithStack(err)
	}

	if err := afero.WriteFile(fs, outputFile, raw, 0644); err != nil {
		return errors.WithStack(err)
	}

	log.Info("workflow manifest written", "file", outputFile)

	return nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			version.LogVersion()
		},
	}
}
