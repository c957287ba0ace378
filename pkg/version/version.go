package version

import (
	"fmt"
	"runtime"

	"github.com/weaveml/pipeline-compiler/pkg/logd"
)

var (

	// AppName contains the name of the application
	AppName = "pipeline-compiler"

	// Version contains the version of the compiler. Assigned externally.
	Version = "snapshot"

	// Commit indicates the Git commit hash the binary was build from. Assigned externally.
	Commit = ""

	// BuildDate is the date when the binary was build. Assigned externally.
	BuildDate = ""

	log = logd.Get().WithName("version")
)

// LogVersion logs metadata about the compiler binary.
func LogVersion() {
	LogVersionToLogger(log)
}

func LogVersionToLogger(log logd.Logger) {
	log.Info(AppName,
		"version", Version,
		"gitCommit", Commit,
		"buildDate", BuildDate,
		"goVersion", runtime.Version(),
		"platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	)
}
