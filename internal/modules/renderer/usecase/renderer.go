package usecase

import (
	"context"

	"pomo/internal/modules/renderer/dto"
	rendererin "pomo/internal/modules/renderer/port/in"
	"pomo/internal/modules/renderer/service"
)

type Interactor struct {
	svc *service.RendererService
}

func NewInteractor(svc *service.RendererService) rendererin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context) ([]dto.RendererInfo, error) {
	return i.svc.List(ctx)
}

func (i *Interactor) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	return i.svc.Doctor(ctx)
}

func (i *Interactor) Render(ctx context.Context, input dto.RenderInput) (dto.RenderOutput, error) {
	return i.svc.Render(ctx, input)
}
