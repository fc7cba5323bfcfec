package domain

import (
	"errors"
	"fmt"
	"regexp"
)

// Kind names a chart family the host can ask a renderer to draw.
type Kind string

const (
	KindBar     Kind = "bar"
	KindHeatmap Kind = "heatmap"
)

var (
	ErrRendererDisabled = errors.New("renderer is disabled")
	ErrChecksumMismatch = errors.New("renderer checksum mismatch")
	ErrKindUnsupported  = errors.New("chart kind unsupported")
	ErrRendererTimeout  = errors.New("renderer timeout")
	ErrRenderFailed     = errors.New("render failed")
)

var sha256Pattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

// Manifest describes one installed renderer plugin as declared in
// renderers.yaml.
type Manifest struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Binary  string `yaml:"binary"`
	SHA256  string `yaml:"sha256"`
	Enabled bool   `yaml:"enabled"`
	Default bool   `yaml:"default"`
	Kinds   []Kind `yaml:"kinds"`
}

func (m Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("renderer name is required")
	}
	if m.Version == "" {
		return fmt.Errorf("renderer version is required")
	}
	if m.Binary == "" {
		return fmt.Errorf("renderer binary path is required")
	}
	if !sha256Pattern.MatchString(m.SHA256) {
		return fmt.Errorf("renderer sha256 must be lowercase 64-char hex")
	}
	if len(m.Kinds) == 0 {
		return fmt.Errorf("renderer kinds are required")
	}
	seen := map[Kind]struct{}{}
	for _, kind := range m.Kinds {
		if err := kind.Validate(); err != nil {
			return err
		}
		if _, ok := seen[kind]; ok {
			return fmt.Errorf("duplicate kind: %s", kind)
		}
		seen[kind] = struct{}{}
	}
	return nil
}

func (k Kind) Validate() error {
	switch k {
	case KindBar, KindHeatmap:
		return nil
	default:
		return fmt.Errorf("unknown chart kind: %s", k)
	}
}

func (m Manifest) SupportsKind(kind Kind) bool {
	for _, k := range m.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Metadata is what a live plugin reports about itself over the wire.
type Metadata struct {
	Name    string
	Version string
	Kinds   []Kind
}

// Bucket is one labelled value of a chart: a weekday, a week slot or a
// day of month.
type Bucket struct {
	Label string
	Value int
}

// RenderJob is a complete drawing request. OutputDir is where the
// plugin must place the image; the host never inspects the bytes.
type RenderJob struct {
	Kind      Kind
	Title     string
	OutputDir string
	Buckets   []Bucket
}

func (j RenderJob) Validate() error {
	if err := j.Kind.Validate(); err != nil {
		return err
	}
	if j.OutputDir == "" {
		return fmt.Errorf("render output dir is required")
	}
	return nil
}

type RenderResult struct {
	Path string
}
