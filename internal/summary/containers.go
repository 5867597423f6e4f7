package summary

import (
	"regexp"
	"strings"
)

// Container lifecycle states recognized in listing output.
const (
	StateRunning    = "running"
	StateExited     = "exited"
	StateCreated    = "created"
	StateRestarting = "restarting"
	StatePaused     = "paused"
)

var containerPattern = regexp.MustCompile(`poc1_(\w+)\s+.*\s+(running|exited|created|restarting|paused)`)

// ContainerStatus is the most recently observed state of one container.
type ContainerStatus struct {
	Name  string
	State string
}

// Running reports whether the container is up.
func (c ContainerStatus) Running() bool {
	return c.State == StateRunning
}

// Containers maps container names to states while remembering first-seen order.
type Containers struct {
	order  []string
	states map[string]string
}

// DetectContainers scans text for poc1_* container listings. Later matches
// overwrite earlier ones for the same name.
func DetectContainers(text string) Containers {
	var c Containers
	for _, m := range containerPattern.FindAllStringSubmatch(strings.ToLower(text), -1) {
		c.set(m[1], m[2])
	}
	return c
}

func (c *Containers) set(name, state string) {
	if c.states == nil {
		c.states = make(map[string]string)
	}
	if _, seen := c.states[name]; !seen {
		c.order = append(c.order, name)
	}
	c.states[name] = state
}

// Len returns the number of distinct containers.
func (c Containers) Len() int {
	return len(c.order)
}

// State returns the state recorded for name.
func (c Containers) State(name string) (string, bool) {
	state, ok := c.states[name]
	return state, ok
}

// List returns the containers in first-seen order.
func (c Containers) List() []ContainerStatus {
	if len(c.order) == 0 {
		return nil
	}
	out := make([]ContainerStatus, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, ContainerStatus{Name: name, State: c.states[name]})
	}
	return out
}
