package core

// Task is a unit of work inside a project.
type Task struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Done        bool   `json:"done"`
}

// Marker returns the checkbox marker shown for the task.
func (t Task) Marker() string {
	if t.Done {
		return "x"
	}
	return " "
}

// Project is a named, ordered collection of tasks.
type Project struct {
	Name  string `json:"name"`
	Tasks []Task `json:"tasks"`
}

// DoneCount returns the number of tasks marked done.
func (p Project) DoneCount() int {
	n := 0
	for _, t := range p.Tasks {
		if t.Done {
			n++
		}
	}
	return n
}
