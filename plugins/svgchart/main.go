package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	rendererrpc "pomo/internal/modules/renderer/adapter/out/rpc"

	"github.com/hashicorp/go-plugin"
)

const (
	cellSize = 18
	cellGap  = 4
	barWidth = 36
)

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

type server struct{}

func (s *server) GetMetadata(_ context.Context, _ *rendererrpc.Empty) (*rendererrpc.Metadata, error) {
	return &rendererrpc.Metadata{
		Name:    "svgchart",
		Version: "1.0.0",
		Kinds:   []string{"bar", "heatmap"},
	}, nil
}

func (s *server) Render(_ context.Context, in *rendererrpc.RenderRequest) (*rendererrpc.RenderResponse, error) {
	var svg string
	switch in.Kind {
	case "bar":
		svg = barSVG(in.Title, in.Buckets)
	case "heatmap":
		svg = heatmapSVG(in.Title, in.Buckets)
	default:
		return nil, fmt.Errorf("unknown chart kind: %s", in.Kind)
	}
	path := filepath.Join(in.OutputDir, fileName(in.Kind, in.Title))
	if err := os.WriteFile(path, []byte(svg), 0o644); err != nil {
		return nil, fmt.Errorf("write chart: %w", err)
	}
	return &rendererrpc.RenderResponse{Path: path}, nil
}

func barSVG(title string, buckets []rendererrpc.Bucket) string {
	const chartHeight = 160
	maxValue := int32(1)
	for _, b := range buckets {
		if b.Value > maxValue {
			maxValue = b.Value
		}
	}
	width := len(buckets)*(barWidth+cellGap) + 2*cellGap
	if width < 200 {
		width = 200
	}
	height := chartHeight + 70

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`+"\n", width, height)
	fmt.Fprintf(&sb, `<text x="%d" y="20" font-family="monospace" font-size="14">%s</text>`+"\n", cellGap, xmlEscaper.Replace(title))
	for i, b := range buckets {
		barHeight := int(b.Value) * chartHeight / int(maxValue)
		x := cellGap + i*(barWidth+cellGap)
		y := 30 + chartHeight - barHeight
		fmt.Fprintf(&sb, `<rect x="%d" y="%d" width="%d" height="%d" fill="#40a02b"/>`+"\n", x, y, barWidth, barHeight)
		fmt.Fprintf(&sb, `<text x="%d" y="%d" font-family="monospace" font-size="11" text-anchor="middle">%d</text>`+"\n", x+barWidth/2, y-4, b.Value)
		fmt.Fprintf(&sb, `<text x="%d" y="%d" font-family="monospace" font-size="11" text-anchor="middle">%s</text>`+"\n", x+barWidth/2, 30+chartHeight+16, xmlEscaper.Replace(b.Label))
	}
	sb.WriteString("</svg>\n")
	return sb.String()
}

func heatmapSVG(title string, buckets []rendererrpc.Bucket) string {
	const columns = 7
	maxValue := int32(1)
	for _, b := range buckets {
		if b.Value > maxValue {
			maxValue = b.Value
		}
	}
	rows := (len(buckets) + columns - 1) / columns
	width := columns*(cellSize+cellGap) + 2*cellGap
	height := rows*(cellSize+cellGap) + 46

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`+"\n", width, height)
	fmt.Fprintf(&sb, `<text x="%d" y="20" font-family="monospace" font-size="14">%s</text>`+"\n", cellGap, xmlEscaper.Replace(title))
	for i, b := range buckets {
		x := cellGap + (i%columns)*(cellSize+cellGap)
		y := 30 + (i/columns)*(cellSize+cellGap)
		if b.Value == 0 {
			fmt.Fprintf(&sb, `<rect x="%d" y="%d" width="%d" height="%d" fill="#e6e9ef"><title>%s</title></rect>`+"\n", x, y, cellSize, cellSize, xmlEscaper.Replace(b.Label))
			continue
		}
		opacity := float64(b.Value) / float64(maxValue)
		if opacity < 0.25 {
			opacity = 0.25
		}
		fmt.Fprintf(&sb, `<rect x="%d" y="%d" width="%d" height="%d" fill="#40a02b" fill-opacity="%.2f"><title>%s</title></rect>`+"\n", x, y, cellSize, cellSize, opacity, xmlEscaper.Replace(b.Label))
	}
	sb.WriteString("</svg>\n")
	return sb.String()
}

func fileName(kind, title string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, title)
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "chart"
	}
	return kind + "-" + slug + ".svg"
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: rendererrpc.HandshakeConfig,
		Plugins:         rendererrpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
