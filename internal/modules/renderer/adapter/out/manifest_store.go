package out

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"pomo/internal/modules/renderer/domain"
	rendererout "pomo/internal/modules/renderer/port/out"

	"gopkg.in/yaml.v3"
)

// YAMLManifestStore reads the renderer manifest list from
// renderers.yaml in the data dir. Relative binary paths resolve
// against the manifest file's directory.
type YAMLManifestStore struct {
	path string
}

func NewYAMLManifestStore(path string) rendererout.ManifestStore {
	return &YAMLManifestStore{path: path}
}

type manifestFile struct {
	Renderers []domain.Manifest `yaml:"renderers"`
}

func (s *YAMLManifestStore) Load(_ context.Context) ([]domain.Manifest, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Manifest{}, nil
		}
		return nil, fmt.Errorf("read renderer manifest store: %w", err)
	}
	var file manifestFile
	decoder := yaml.NewDecoder(bytes.NewReader(b))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode renderer manifests: %w", err)
	}
	baseDir := filepath.Dir(s.path)
	manifests := file.Renderers
	for i := range manifests {
		if manifests[i].Binary != "" && !filepath.IsAbs(manifests[i].Binary) {
			manifests[i].Binary = filepath.Clean(filepath.Join(baseDir, manifests[i].Binary))
		}
	}
	if manifests == nil {
		manifests = []domain.Manifest{}
	}
	return manifests, nil
}
