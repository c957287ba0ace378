package logd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

const errorVerboseKey = "errorVerbose"

// prettyLogWriter unescapes multiline payloads and folds the verbose error
// chain produced by pkg/errors into the regular stacktrace field, so wrapped
// errors are not logged twice.
type prettyLogWriter struct {
	out io.Writer
}

type Option func(*prettyLogWriter)

func WithWriter(out io.Writer) Option {
	return func(writer *prettyLogWriter) {
		writer.out = out
	}
}

// NewPrettyLogWriter writes to stderr unless overridden, stdout stays
// reserved for the compiled manifest.
func NewPrettyLogWriter(options ...Option) io.Writer {
	writer := &prettyLogWriter{out: os.Stderr}
	for _, option := range options {
		option(writer)
	}

	return writer
}

func (pretty *prettyLogWriter) Write(payload []byte) (int, error) {
	message := string(payload)

	payload, err := replaceDuplicatedStacktrace(payload)
	if err != nil {
		return fmt.Fprint(pretty.out, message)
	}

	return fmt.Fprint(pretty.out, prettify(payload))
}

func prettify(payload []byte) string {
	message := string(payload)
	message = strings.ReplaceAll(message, "\\n", "\n")
	message = strings.ReplaceAll(message, "\\t", "\t")

	return message
}

func replaceDuplicatedStacktrace(payload []byte) ([]byte, error) {
	var document map[string]interface{}

	err := json.Unmarshal(payload, &document)
	if err != nil {
		// If message is not json, just write without modification
		return nil, errors.WithStack(err)
	}

	document = setErrorVerboseAsStacktrace(document)

	return json.Marshal(document)
}

func setErrorVerboseAsStacktrace(document map[string]interface{}) map[string]interface{} {
	errorVerbose, hasErrorVerbose := document[errorVerboseKey]
	if hasErrorVerbose {
		document[stacktraceKey] = errorVerbose
		delete(document, errorVerboseKey)
	}

	return document
}
