package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"pomo/internal/modules/renderer/domain"
	"pomo/internal/modules/renderer/dto"
	rendererout "pomo/internal/modules/renderer/port/out"
)

type RendererService struct {
	store     rendererout.ManifestStore
	host      rendererout.Host
	outputDir string
}

func NewRendererService(store rendererout.ManifestStore, host rendererout.Host, outputDir string) *RendererService {
	return &RendererService{store: store, host: host, outputDir: outputDir}
}

func (s *RendererService) List(ctx context.Context) ([]dto.RendererInfo, error) {
	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RendererInfo, 0, len(manifests))
	for _, m := range manifests {
		kinds := make([]string, 0, len(m.Kinds))
		for _, k := range m.Kinds {
			kinds = append(kinds, string(k))
		}
		out = append(out, dto.RendererInfo{Name: m.Name, Version: m.Version, Enabled: m.Enabled, Default: m.Default, Binary: m.Binary, Kinds: kinds})
	}
	return out, nil
}

func (s *RendererService) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]dto.DoctorResult, 0, len(manifests))
	for _, m := range manifests {
		result := dto.DoctorResult{Name: m.Name}
		if err := m.Validate(); err != nil {
			result.Error = err.Error()
			results = append(results, result)
			continue
		}
		binaryOK := fileExists(m.Binary)
		result.BinaryReachable = binaryOK
		checksumOK := false
		if binaryOK {
			checksumOK = checksumMatches(m.Binary, m.SHA256) == nil
		}
		result.ChecksumValid = checksumOK
		if binaryOK && checksumOK && m.Enabled && s.host != nil {
			if err := s.host.CheckLifecycle(ctx, m); err != nil {
				result.Error = err.Error()
			} else {
				result.LifecycleOK = true
			}
		}
		if !binaryOK {
			result.Error = fmt.Sprintf("binary does not exist: %s", m.Binary)
		}
		if binaryOK && !checksumOK {
			result.Error = "checksum mismatch"
		}
		results = append(results, result)
	}
	return results, nil
}

// Render picks a manifest for the requested kind and hands the job to
// the plugin. Doctor covers lifecycle health; a sick plugin surfaces
// its failure here as ErrRenderFailed.
func (s *RendererService) Render(ctx context.Context, input dto.RenderInput) (dto.RenderOutput, error) {
	kind := domain.Kind(input.Kind)
	if err := kind.Validate(); err != nil {
		return dto.RenderOutput{}, err
	}
	manifest, found, err := s.pickManifest(ctx, kind)
	if err != nil {
		return dto.RenderOutput{}, err
	}
	if !found {
		return dto.RenderOutput{}, nil
	}
	if err := checksumMatches(manifest.Binary, manifest.SHA256); err != nil {
		return dto.RenderOutput{}, err
	}
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return dto.RenderOutput{}, fmt.Errorf("create chart dir: %w", err)
	}
	buckets := make([]domain.Bucket, 0, len(input.Buckets))
	for _, b := range input.Buckets {
		buckets = append(buckets, domain.Bucket{Label: b.Label, Value: b.Value})
	}
	job := domain.RenderJob{Kind: kind, Title: input.Title, OutputDir: s.outputDir, Buckets: buckets}
	if err := job.Validate(); err != nil {
		return dto.RenderOutput{}, err
	}
	result, err := s.host.Render(ctx, manifest, job)
	if err != nil {
		if errors.Is(err, domain.ErrRendererTimeout) {
			return dto.RenderOutput{}, err
		}
		return dto.RenderOutput{}, fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}
	if result.Path == "" {
		return dto.RenderOutput{}, fmt.Errorf("%w: renderer %s returned no path", domain.ErrRenderFailed, manifest.Name)
	}
	if !fileExists(result.Path) {
		return dto.RenderOutput{}, fmt.Errorf("%w: renderer %s reported missing file %s", domain.ErrRenderFailed, manifest.Name, result.Path)
	}
	return dto.RenderOutput{Renderer: manifest.Name, Path: result.Path}, nil
}

func (s *RendererService) loadValidated(ctx context.Context) ([]domain.Manifest, error) {
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	seenNames := map[string]struct{}{}
	defaults := 0
	for _, manifest := range manifests {
		if err := manifest.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seenNames[manifest.Name]; ok {
			return nil, fmt.Errorf("duplicate renderer name: %s", manifest.Name)
		}
		seenNames[manifest.Name] = struct{}{}
		if manifest.Default {
			defaults++
		}
	}
	if defaults > 1 {
		return nil, fmt.Errorf("more than one default renderer configured")
	}
	return manifests, nil
}

// pickManifest prefers the default renderer, then the first enabled one
// that supports the kind. found=false means rendering is simply not
// configured, which is not an error.
func (s *RendererService) pickManifest(ctx context.Context, kind domain.Kind) (domain.Manifest, bool, error) {
	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return domain.Manifest{}, false, err
	}
	for _, manifest := range manifests {
		if manifest.Default && manifest.Enabled && manifest.SupportsKind(kind) {
			return manifest, true, nil
		}
	}
	for _, manifest := range manifests {
		if manifest.Enabled && manifest.SupportsKind(kind) {
			return manifest, true, nil
		}
	}
	return domain.Manifest{}, false, nil
}

func checksumMatches(path string, expected string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read renderer binary: %w", err)
	}
	hash := sha256.Sum256(payload)
	actual := hex.EncodeToString(hash[:])
	if actual != expected {
		return fmt.Errorf("%w: %s", domain.ErrChecksumMismatch, filepath.Base(path))
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
