package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bnema/dumbed/internal/domain/entity"
	"github.com/bnema/dumbed/internal/domain/repository"
	"github.com/bnema/dumbed/internal/logging"
)

const tracerName = "github.com/bnema/dumbed/usecase"

// Layout use case errors.
var (
	ErrLayoutNotFound  = errors.New("layout not found")
	ErrLayoutNameEmpty = errors.New("layout name is required")
)

// LayoutRestorer rebuilds a live layout from a snapshot.
type LayoutRestorer interface {
	Restore(ctx context.Context, state *entity.LayoutState) error
}

// startSpan opens a use case span and tags the context logger with the layout.
func startSpan(ctx context.Context, name, layoutName string) (context.Context, trace.Span) {
	if layoutName = strings.TrimSpace(layoutName); layoutName != "" {
		ctx = logging.WithLayout(ctx, layoutName)
	}
	return otel.Tracer(tracerName).Start(ctx, name,
		trace.WithAttributes(attribute.String("dumbed.layout.name", layoutName)))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func normalizeLayoutName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrLayoutNameEmpty
	}
	return name, nil
}

// SaveLayoutUseCase persists a layout snapshot.
type SaveLayoutUseCase struct {
	repo repository.LayoutStateRepository
}

// NewSaveLayoutUseCase creates a new SaveLayoutUseCase.
func NewSaveLayoutUseCase(repo repository.LayoutStateRepository) *SaveLayoutUseCase {
	return &SaveLayoutUseCase{repo: repo}
}

// Execute validates and stores the snapshot under its name.
func (uc *SaveLayoutUseCase) Execute(ctx context.Context, state *entity.LayoutState) (err error) {
	if state == nil {
		return fmt.Errorf("save layout: %w", entity.ErrInvalidLayoutState)
	}
	ctx, span := startSpan(ctx, "SaveLayout", state.Name)
	defer func() { endSpan(span, err) }()

	name, err := normalizeLayoutName(state.Name)
	if err != nil {
		return err
	}
	state.Name = name

	if err = state.Validate(); err != nil {
		return fmt.Errorf("save layout %q: %w", name, err)
	}

	span.SetAttributes(
		attribute.Int("dumbed.layout.groups", len(state.Groups)),
		attribute.Int("dumbed.layout.editors", state.EditorCount()),
	)

	if err = uc.repo.Save(ctx, state); err != nil {
		return fmt.Errorf("save layout %q: %w", name, err)
	}

	logging.FromContext(ctx).Info().
		Int("group_count", len(state.Groups)).
		Int("editor_count", state.EditorCount()).
		Msg("layout saved")
	return nil
}

// RestoreLayoutUseCase loads a stored layout and rebuilds it.
type RestoreLayoutUseCase struct {
	repo repository.LayoutStateRepository
}

// NewRestoreLayoutUseCase creates a new RestoreLayoutUseCase.
func NewRestoreLayoutUseCase(repo repository.LayoutStateRepository) *RestoreLayoutUseCase {
	return &RestoreLayoutUseCase{repo: repo}
}

// Execute loads the named layout and hands it to target.
func (uc *RestoreLayoutUseCase) Execute(ctx context.Context, name string, target LayoutRestorer) (state *entity.LayoutState, err error) {
	ctx, span := startSpan(ctx, "RestoreLayout", name)
	defer func() { endSpan(span, err) }()

	name, err = normalizeLayoutName(name)
	if err != nil {
		return nil, err
	}

	state, err = uc.repo.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load layout %q: %w", name, err)
	}
	if state == nil {
		return nil, fmt.Errorf("%w: %s", ErrLayoutNotFound, name)
	}
	if err = state.Validate(); err != nil {
		return nil, fmt.Errorf("restore layout %q: %w", name, err)
	}

	if err = target.Restore(ctx, state); err != nil {
		return nil, fmt.Errorf("restore layout %q: %w", name, err)
	}

	logging.FromContext(ctx).Info().
		Int("group_count", len(state.Groups)).
		Msg("layout restored")
	return state, nil
}

// ListLayoutsUseCase lists stored layouts.
type ListLayoutsUseCase struct {
	repo repository.LayoutStateRepository
}

// NewListLayoutsUseCase creates a new ListLayoutsUseCase.
func NewListLayoutsUseCase(repo repository.LayoutStateRepository) *ListLayoutsUseCase {
	return &ListLayoutsUseCase{repo: repo}
}

// Execute returns layout summaries, most recently updated first.
func (uc *ListLayoutsUseCase) Execute(ctx context.Context) (summaries []entity.LayoutSummary, err error) {
	ctx, span := startSpan(ctx, "ListLayouts", "")
	defer func() { endSpan(span, err) }()

	summaries, err = uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}
	span.SetAttributes(attribute.Int("dumbed.layout.count", len(summaries)))
	return summaries, nil
}

// DeleteLayoutUseCase removes a stored layout.
type DeleteLayoutUseCase struct {
	repo repository.LayoutStateRepository
}

// NewDeleteLayoutUseCase creates a new DeleteLayoutUseCase.
func NewDeleteLayoutUseCase(repo repository.LayoutStateRepository) *DeleteLayoutUseCase {
	return &DeleteLayoutUseCase{repo: repo}
}

// Execute deletes the named layout. Missing layouts report ErrLayoutNotFound.
func (uc *DeleteLayoutUseCase) Execute(ctx context.Context, name string) (err error) {
	ctx, span := startSpan(ctx, "DeleteLayout", name)
	defer func() { endSpan(span, err) }()

	name, err = normalizeLayoutName(name)
	if err != nil {
		return err
	}

	existing, err := uc.repo.Get(ctx, name)
	if err != nil {
		return fmt.Errorf("load layout %q: %w", name, err)
	}
	if existing == nil {
		return fmt.Errorf("%w: %s", ErrLayoutNotFound, name)
	}

	logging.FromContext(ctx).Info().Msg("deleting layout")
	if err = uc.repo.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete layout %q: %w", name, err)
	}
	return nil
}
