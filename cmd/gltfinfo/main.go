// gltfinfo prints a summary of a glTF or GLB document: asset metadata,
// object counts, extension usage and any parse diagnostics.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	cesiumnative "github.com/HereWeG0/cesium-native"
	"github.com/HereWeG0/cesium-native/gltf"
	"github.com/HereWeG0/cesium-native/reader"
)

var CLI struct {
	Path string `arg:"" help:"Path to a .gltf or .glb file." type:"path"`

	CaptureUnknown bool             `help:"Report properties outside the glTF schema." short:"u"`
	SkipImages     bool             `help:"Skip decoding image payloads."`
	JSON           bool             `help:"Emit the summary as JSON." short:"j"`
	Debug          bool             `help:"Enable debug logging." short:"d"`
	Version        kong.VersionFlag `help:"Show version information." short:"v"`
}

type summary struct {
	Path      string         `json:"path"`
	Format    string         `json:"format"`
	SizeBytes int64          `json:"sizeBytes"`
	Asset     assetSummary   `json:"asset"`
	Stats     gltf.ModelStats `json:"stats"`
	Used      []string       `json:"extensionsUsed,omitempty"`
	Required  []string       `json:"extensionsRequired,omitempty"`
	Unknown   []string       `json:"unknownProperties,omitempty"`
	Errors    []string       `json:"errors,omitempty"`
	Warnings  []string       `json:"warnings,omitempty"`
}

type assetSummary struct {
	Version   string `json:"version"`
	Generator string `json:"generator,omitempty"`
	Copyright string `json:"copyright,omitempty"`
}

func main() {
	parser := kong.Must(&CLI,
		kong.Name("gltfinfo"),
		kong.Description("Summarize a glTF or GLB document"),
		kong.UsageOnError(),
		kong.Vars{"version": "gltfinfo version " + cesiumnative.Version()},
	)

	_, err := parser.Parse(os.Args[1:])
	if err != nil {
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "gltfinfo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	r := reader.New()
	r.CaptureUnknown = CLI.CaptureUnknown
	r.DecodeImages = !CLI.SkipImages
	if CLI.Debug {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		r.Logger = reader.NewSlogAdapter(slog.New(handler))
	}

	res, err := r.ReadFile(CLI.Path)
	if err != nil {
		return err
	}

	s := summary{
		Path:      CLI.Path,
		Format:    string(res.SourceFormat),
		SizeBytes: res.SourceSize,
		Errors:    res.Errors,
		Warnings:  res.Warnings,
	}
	if res.Model != nil {
		s.Asset = assetSummary{
			Version:   res.Model.Asset.Version,
			Generator: res.Model.Asset.Generator,
			Copyright: res.Model.Asset.Copyright,
		}
		s.Stats = res.Stats
		s.Used = res.Model.ExtensionsUsed
		s.Required = res.Model.ExtensionsRequired
		for name := range res.Model.Unknown {
			s.Unknown = append(s.Unknown, name)
		}
	}

	if CLI.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	printSummary(s, res.Model != nil)
	if res.Model == nil {
		return fmt.Errorf("document could not be read")
	}
	return nil
}

func printSummary(s summary, hasModel bool) {
	fmt.Printf("%s (%s, %d bytes)\n", s.Path, s.Format, s.SizeBytes)
	if hasModel {
		fmt.Printf("  asset version %s", s.Asset.Version)
		if s.Asset.Generator != "" {
			fmt.Printf(", generated by %s", s.Asset.Generator)
		}
		fmt.Println()
		fmt.Printf("  scenes %d  nodes %d  meshes %d  materials %d  textures %d  animations %d\n",
			s.Stats.SceneCount, s.Stats.NodeCount, s.Stats.MeshCount,
			s.Stats.MaterialCount, s.Stats.TextureCount, s.Stats.AnimationCount)
		fmt.Printf("  buffers %d (%d bytes)  triangles %d\n",
			s.Stats.BufferCount, s.Stats.BufferBytes, s.Stats.TriangleCount)
		if len(s.Used) > 0 {
			fmt.Printf("  extensions used: %v\n", s.Used)
		}
		if len(s.Required) > 0 {
			fmt.Printf("  extensions required: %v\n", s.Required)
		}
		if len(s.Unknown) > 0 {
			fmt.Printf("  unknown root properties: %v\n", s.Unknown)
		}
	}
	for _, e := range s.Errors {
		fmt.Printf("  error: %s\n", e)
	}
	for _, w := range s.Warnings {
		fmt.Printf("  warning: %s\n", w)
	}
}
