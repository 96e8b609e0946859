package dispatcher

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/dumbed/internal/application/port"
	"github.com/bnema/dumbed/internal/application/usecase"
	"github.com/bnema/dumbed/internal/domain/entity"
	"github.com/bnema/dumbed/internal/logging"
	"github.com/bnema/dumbed/internal/ui/coordinator"
)

// Script errors.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArguments   = errors.New("bad arguments")
)

// Action names a layout command.
type Action string

const (
	ActionOpen    Action = "open"
	ActionSplit   Action = "split"
	ActionFocus   Action = "focus"
	ActionClick   Action = "click"
	ActionClose   Action = "close"
	ActionHide    Action = "hide"
	ActionNext    Action = "next"
	ActionPrev    Action = "prev"
	ActionRestore Action = "restore"
	ActionBlur    Action = "blur"
	ActionUnblur  Action = "unblur"
	ActionRefresh Action = "refresh"
)

// arity is the exact number of arguments each action takes.
var arity = map[Action]int{
	ActionOpen:    2,
	ActionSplit:   4,
	ActionFocus:   1,
	ActionClick:   1,
	ActionClose:   1,
	ActionHide:    1,
	ActionNext:    0,
	ActionPrev:    0,
	ActionRestore: 0,
	ActionBlur:    0,
	ActionUnblur:  0,
	ActionRefresh: 0,
}

// Command is one parsed script line.
type Command struct {
	Line   int
	Action Action
	Args   []string
}

func (c Command) String() string {
	return strings.TrimSpace(string(c.Action) + " " + strings.Join(c.Args, " "))
}

// ParseScript reads one command per line. Blank lines and lines starting
// with '#' are skipped.
func ParseScript(r io.Reader) ([]Command, error) {
	var cmds []Command
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		cmd, err := ParseCommand(line, text)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return cmds, nil
}

// ParseCommand parses a single command line.
func ParseCommand(line int, text string) (Command, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("line %d: %w: empty line", line, ErrUnknownCommand)
	}
	action := Action(strings.ToLower(fields[0]))
	want, ok := arity[action]
	if !ok {
		return Command{}, fmt.Errorf("line %d: %w: %q", line, ErrUnknownCommand, fields[0])
	}
	args := fields[1:]
	if len(args) != want {
		return Command{}, fmt.Errorf("line %d: %w: %s takes %d argument(s), got %d",
			line, ErrBadArguments, action, want, len(args))
	}
	if action == ActionSplit {
		if _, err := entity.ParseSide(args[2]); err != nil {
			return Command{}, fmt.Errorf("line %d: %w: %w", line, ErrBadArguments, err)
		}
	}
	return Command{Line: line, Action: action, Args: args}, nil
}

// ScriptDispatcher routes parsed commands to the layout coordinator.
type ScriptDispatcher struct {
	coord       *coordinator.EditorLayoutCoordinator
	events      port.EventBus
	idGenerator usecase.IDGenerator

	// editors remembers every editor the script created, by tab.
	editors map[entity.TabID]*entity.Editor
}

// NewScriptDispatcher creates a new ScriptDispatcher. events may be nil, in
// which case click commands only log.
func NewScriptDispatcher(
	ctx context.Context,
	coord *coordinator.EditorLayoutCoordinator,
	events port.EventBus,
	idGenerator usecase.IDGenerator,
) *ScriptDispatcher {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating script dispatcher")

	return &ScriptDispatcher{
		coord:       coord,
		events:      events,
		idGenerator: idGenerator,
		editors:     make(map[entity.TabID]*entity.Editor),
	}
}

// Run parses the whole script first, then dispatches every command.
// Nothing is executed when the script does not parse.
func (d *ScriptDispatcher) Run(ctx context.Context, r io.Reader) (int, error) {
	cmds, err := ParseScript(r)
	if err != nil {
		return 0, err
	}
	for i, cmd := range cmds {
		if err := d.Dispatch(ctx, cmd); err != nil {
			return i, err
		}
	}
	return len(cmds), nil
}

// Dispatch executes one command.
func (d *ScriptDispatcher) Dispatch(ctx context.Context, cmd Command) error {
	log := logging.FromContext(ctx)
	log.Debug().Int("line", cmd.Line).Str("command", cmd.String()).Msg("dispatching layout command")

	if want, ok := arity[cmd.Action]; !ok {
		return fmt.Errorf("line %d: %w: %q", cmd.Line, ErrUnknownCommand, cmd.Action)
	} else if len(cmd.Args) != want {
		return fmt.Errorf("line %d: %w: %s takes %d argument(s)", cmd.Line, ErrBadArguments, cmd.Action, want)
	}

	switch cmd.Action {
	case ActionOpen:
		d.coord.AddEditor(ctx, d.newEditor(entity.TabID(cmd.Args[0]), cmd.Args[1]))
	case ActionSplit:
		side, err := entity.ParseSide(cmd.Args[2])
		if err != nil {
			return fmt.Errorf("line %d: %w: %w", cmd.Line, ErrBadArguments, err)
		}
		e := d.newEditor(entity.TabID(cmd.Args[0]), cmd.Args[1])
		d.coord.AddEditorWithConstraint(ctx, e, entity.Constraint{
			RelativeTabID: entity.TabID(cmd.Args[3]),
			Side:          side,
		})
	case ActionFocus:
		d.coord.SetActiveEditor(ctx, d.editorFor(entity.TabID(cmd.Args[0])))
	case ActionClick:
		d.click(ctx, entity.TabID(cmd.Args[0]))
	case ActionClose:
		if e, ok := d.coord.FindEditorByTabID(entity.TabID(cmd.Args[0])); ok {
			d.coord.RemoveEditor(ctx, e)
		} else {
			log.Debug().Str("tab_id", cmd.Args[0]).Msg("close: tab not open")
		}
	case ActionHide:
		if e, ok := d.coord.FindEditorByTabID(entity.TabID(cmd.Args[0])); ok {
			d.coord.HideEditor(ctx, e)
		} else {
			log.Debug().Str("tab_id", cmd.Args[0]).Msg("hide: tab not open")
		}
	case ActionNext, ActionPrev:
		d.cycle(ctx, cmd.Action == ActionNext)
	case ActionRestore:
		d.coord.RestorePreviousActive(ctx)
	case ActionBlur:
		d.coord.SetFocus(ctx, false)
	case ActionUnblur:
		d.coord.SetFocus(ctx, true)
	case ActionRefresh:
		d.coord.RefreshLayout(ctx)
	}
	return nil
}

func (d *ScriptDispatcher) newEditor(tabID entity.TabID, resource string) *entity.Editor {
	if e, ok := d.coord.FindEditorByTabID(tabID); ok {
		return e
	}
	e := entity.NewEditor(entity.EditorID(d.idGenerator()), tabID, resource)
	d.editors[tabID] = e
	return e
}

// editorFor resolves a tab to its editor. Unknown tabs yield a detached
// editor that no group holds.
func (d *ScriptDispatcher) editorFor(tabID entity.TabID) *entity.Editor {
	if e, ok := d.coord.FindEditorByTabID(tabID); ok {
		return e
	}
	if e, ok := d.editors[tabID]; ok {
		return e
	}
	e := entity.NewEditor(entity.EditorID(d.idGenerator()), tabID, "")
	d.editors[tabID] = e
	return e
}

func (d *ScriptDispatcher) click(ctx context.Context, tabID entity.TabID) {
	event := port.ActivePartChanged{PartID: string(tabID)}
	if e, ok := d.coord.FindEditorByTabID(tabID); ok {
		event.Editor = e
	}
	if d.events == nil {
		logging.FromContext(ctx).Warn().Str("tab_id", string(tabID)).Msg("click ignored, no event bus")
		return
	}
	d.events.Publish(ctx, port.TopicActivePartChanged, event)
}

func (d *ScriptDispatcher) cycle(ctx context.Context, forward bool) {
	active := d.coord.ActiveEditor()
	if active == nil {
		return
	}
	var (
		target *entity.Editor
		ok     bool
	)
	if forward {
		target, ok = d.coord.NextEditor(active)
	} else {
		target, ok = d.coord.PreviousEditor(active)
	}
	if ok {
		d.coord.SetActiveEditor(ctx, target)
	}
}
