package dto

type RendererInfo struct {
	Name    string
	Version string
	Enabled bool
	Default bool
	Binary  string
	Kinds   []string
}

type DoctorResult struct {
	Name            string
	ChecksumValid   bool
	BinaryReachable bool
	LifecycleOK     bool
	Error           string
}

type Bucket struct {
	Label string
	Value int
}

type RenderInput struct {
	Kind    string
	Title   string
	Buckets []Bucket
}

// RenderOutput carries the rendered image path. An empty path with a
// nil error means no enabled renderer covers the requested kind.
type RenderOutput struct {
	Renderer string
	Path     string
}
