package pipeline

// Pipeline is an ordered set of tasks ready to be rendered into a workflow
// manifest. Tasks are processed strictly in order, one at a time.
type Pipeline struct {
	Name  string
	Tasks []Task
}
