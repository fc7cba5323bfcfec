package in

import (
	"context"

	"pomo/internal/modules/renderer/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.RendererInfo, error)
	Doctor(ctx context.Context) ([]dto.DoctorResult, error)
	// Render draws a chart with the default (or first enabled) renderer
	// supporting the kind. When none is configured it returns an empty
	// path and no error.
	Render(ctx context.Context, input dto.RenderInput) (dto.RenderOutput, error)
}
