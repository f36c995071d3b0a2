package state

import (
	"fmt"
	"strings"
)

// Tool is the active drawing tool.
type Tool int

const (
	ToolSelect Tool = iota
	ToolLine
	ToolRect
)

var toolNames = [...]string{"select", "line", "rect"}

func (t Tool) String() string {
	if t < 0 || int(t) >= len(toolNames) {
		return fmt.Sprintf("tool(%d)", int(t))
	}
	return toolNames[t]
}

// ParseTool maps a tool name ("select", "line", "rect") to a Tool.
func ParseTool(s string) (Tool, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range toolNames {
		if name == s {
			return Tool(i), nil
		}
	}
	return ToolSelect, fmt.Errorf("%w: %q", ErrUnknownTool, s)
}

// Outcome tells the caller what a transition requires.
type Outcome int

const (
	// OutcomeNone: nothing to draw or commit.
	OutcomeNone Outcome = iota
	// OutcomeIncremental: stroke Step.Path on top of the surface without clearing.
	OutcomeIncremental
	// OutcomePreview: clear, replay History, then stroke Step.Path.
	OutcomePreview
	// OutcomeCommit: Step.Path is finished and must be committed.
	OutcomeCommit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIncremental:
		return "incremental"
	case OutcomePreview:
		return "preview"
	case OutcomeCommit:
		return "commit"
	}
	return "none"
}

// Step is the result of feeding one pointer event to the Machine.
type Step struct {
	Outcome Outcome
	Tool    Tool
	Path    Path
}

// gesture is the transient state of one pointer-down-to-up interaction.
type gesture struct {
	path   Path
	anchor Point
	last   Point
}

// Machine tracks the active tool and the in-progress gesture. It never
// draws or commits anything itself; callers act on the returned Step.
type Machine struct {
	tool    Tool
	gesture *gesture
}

func NewMachine(tool Tool) *Machine {
	return &Machine{tool: tool}
}

func (m *Machine) Tool() Tool { return m.tool }

// Gesturing reports whether a gesture is in progress.
func (m *Machine) Gesturing() bool { return m.gesture != nil }

// LivePath returns a copy of the in-progress path, or nil when idle.
func (m *Machine) LivePath() Path {
	if m.gesture == nil {
		return nil
	}
	return m.gesture.path.Clone()
}

// Anchor returns the gesture's start point.
func (m *Machine) Anchor() (Point, bool) {
	if m.gesture == nil {
		return Point{}, false
	}
	return m.gesture.anchor, true
}

// SetTool switches tools. Switching while gesturing is rejected so a
// gesture always commits with the tool it started with.
func (m *Machine) SetTool(t Tool) error {
	if t < ToolSelect || t > ToolRect {
		return fmt.Errorf("%w: %d", ErrUnknownTool, int(t))
	}
	if m.gesture != nil {
		if t == m.tool {
			return nil
		}
		return ErrGestureInProgress
	}
	m.tool = t
	return nil
}

func (m *Machine) PointerDown(p Point) Step {
	if m.tool == ToolSelect || m.gesture != nil {
		return Step{Tool: m.tool}
	}
	m.gesture = &gesture{
		path:   Path{MoveTo(p)},
		anchor: p,
		last:   p,
	}
	return Step{Tool: m.tool}
}

func (m *Machine) PointerMove(p Point) Step {
	g := m.gesture
	if g == nil {
		return Step{Tool: m.tool}
	}
	g.last = p

	switch m.tool {
	case ToolLine:
		g.path = append(g.path, LineTo(p))
		return Step{Outcome: OutcomeIncremental, Tool: m.tool, Path: g.path.Clone()}
	case ToolRect:
		return Step{Outcome: OutcomePreview, Tool: m.tool, Path: rectPath(g.anchor, p)}
	}
	return Step{Tool: m.tool}
}

// PointerUp finishes the gesture at the last pointer position.
func (m *Machine) PointerUp() Step {
	g := m.gesture
	if g == nil {
		return Step{Tool: m.tool}
	}
	m.gesture = nil

	var finished Path
	switch m.tool {
	case ToolLine:
		finished = g.path
	case ToolRect:
		finished = rectPath(g.anchor, g.last)
	default:
		return Step{Tool: m.tool}
	}
	return Step{Outcome: OutcomeCommit, Tool: m.tool, Path: finished}
}

// PointerLeave is handled exactly like PointerUp for every tool.
func (m *Machine) PointerLeave() Step {
	return m.PointerUp()
}

func rectPath(anchor, to Point) Path {
	d := to.Sub(anchor)
	return Path{RectCmd(anchor, d.X, d.Y)}
}
