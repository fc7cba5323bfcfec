package out

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"

	rendererrpc "pomo/internal/modules/renderer/adapter/out/rpc"
	"pomo/internal/modules/renderer/domain"
	rendererout "pomo/internal/modules/renderer/port/out"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"
)

const (
	defaultStartTimeout = 3 * time.Second
	defaultCallTimeout  = 5 * time.Second
)

type GRPCHost struct{}

func NewGRPCHost() rendererout.Host {
	return &GRPCHost{}
}

func (h *GRPCHost) CheckLifecycle(ctx context.Context, manifest domain.Manifest) error {
	client, closeFn, err := h.connect(ctx, manifest, defaultStartTimeout)
	if err != nil {
		return err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, defaultCallTimeout)
	defer cancel()
	if _, err := client.GetMetadata(callCtx); err != nil {
		return fmt.Errorf("get metadata: %w", err)
	}
	return nil
}

func (h *GRPCHost) GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error) {
	client, closeFn, err := h.connect(ctx, manifest, defaultStartTimeout)
	if err != nil {
		return domain.Metadata{}, err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, defaultCallTimeout)
	defer cancel()

	meta, err := client.GetMetadata(callCtx)
	if err != nil {
		return domain.Metadata{}, fmt.Errorf("get metadata: %w", err)
	}
	kinds := make([]domain.Kind, 0, len(meta.Kinds))
	for _, kind := range meta.Kinds {
		kinds = append(kinds, domain.Kind(kind))
	}
	return domain.Metadata{Name: meta.Name, Version: meta.Version, Kinds: kinds}, nil
}

func (h *GRPCHost) Render(ctx context.Context, manifest domain.Manifest, job domain.RenderJob) (domain.RenderResult, error) {
	client, closeFn, err := h.connect(ctx, manifest, defaultStartTimeout)
	if err != nil {
		return domain.RenderResult{}, err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, defaultCallTimeout)
	defer cancel()
	buckets := make([]rendererrpc.Bucket, 0, len(job.Buckets))
	for _, bucket := range job.Buckets {
		buckets = append(buckets, rendererrpc.Bucket{Label: bucket.Label, Value: int32(bucket.Value)})
	}
	response, err := client.Render(callCtx, &rendererrpc.RenderRequest{
		Kind:      string(job.Kind),
		Title:     job.Title,
		OutputDir: job.OutputDir,
		Buckets:   buckets,
	})
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			return domain.RenderResult{}, fmt.Errorf("%w: renderer %s", domain.ErrRendererTimeout, manifest.Name)
		}
		return domain.RenderResult{}, fmt.Errorf("render chart: %w", err)
	}
	return domain.RenderResult{Path: response.Path}, nil
}

func (h *GRPCHost) connect(ctx context.Context, manifest domain.Manifest, startTimeout time.Duration) (rendererrpc.RendererClient, func(), error) {
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  rendererrpc.HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          rendererrpc.PluginMap(nil),
		Cmd:              exec.Command(manifest.Binary),
		Managed:          true,
		StartTimeout:     startTimeout,
		Logger:           hclog.New(&hclog.LoggerOptions{Output: io.Discard, Level: hclog.NoLevel}),
	})
	closeFn := func() { client.Kill() }

	rpcClient, err := client.Client()
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("start renderer client: %w", err)
	}
	raw, err := rpcClient.Dispense(rendererrpc.PluginMapKey)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("dispense renderer: %w", err)
	}
	typed, ok := raw.(rendererrpc.RendererClient)
	if !ok {
		closeFn()
		return nil, nil, fmt.Errorf("renderer rpc client type mismatch")
	}
	return typed, closeFn, nil
}

func (h *GRPCHost) callContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := parent.Deadline(); ok {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}
