// Package tasklist holds the in-memory task store and the interpreter that
// executes console commands against it.
package tasklist

import "github.com/leapstack-labs/tasklist/pkg/core"

// Store is the process-wide task state: projects in insertion order and the
// last assigned task ID.
//
// Store is not safe for concurrent use; it is owned by a single Interpreter.
type Store struct {
	projects []*core.Project
	index    map[string]int // project name -> position in projects
	lastID   int
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{index: make(map[string]int)}
}

// AddProject inserts an empty project. An existing project with the same
// name is emptied in place and keeps its display position.
func (s *Store) AddProject(name string) {
	if i, ok := s.index[name]; ok {
		s.projects[i].Tasks = nil
		return
	}
	s.index[name] = len(s.projects)
	s.projects = append(s.projects, &core.Project{Name: name})
}

// AddTask appends a new task to the named project and returns it.
// It returns false, without consuming an ID, if the project does not exist.
func (s *Store) AddTask(projectName, description string) (core.Task, bool) {
	i, ok := s.index[projectName]
	if !ok {
		return core.Task{}, false
	}
	task := core.Task{ID: s.nextID(), Description: description}
	s.projects[i].Tasks = append(s.projects[i].Tasks, task)
	return task, true
}

// SetDone sets the done flag on the first task with the given ID, scanning
// projects and tasks in insertion order. It reports whether a task matched.
func (s *Store) SetDone(id int, done bool) bool {
	for _, p := range s.projects {
		for i := range p.Tasks {
			if p.Tasks[i].ID == id {
				p.Tasks[i].Done = done
				return true
			}
		}
	}
	return false
}

// Projects returns a copy of every project in insertion order.
func (s *Store) Projects() []core.Project {
	out := make([]core.Project, len(s.projects))
	for i, p := range s.projects {
		out[i] = core.Project{Name: p.Name, Tasks: append([]core.Task(nil), p.Tasks...)}
	}
	return out
}

// LastID returns the most recently assigned task ID, or 0.
func (s *Store) LastID() int {
	return s.lastID
}

func (s *Store) nextID() int {
	s.lastID++
	return s.lastID
}
