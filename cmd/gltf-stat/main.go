// The gltf-stat command displays stats for a glTF or GLB file.
package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/vrmkit/gltf"
	"github.com/vrmkit/gltf/dracomesh"
	"github.com/vrmkit/gltf/glb"
	"github.com/vrmkit/gltf/load"
)

const usage = `usage: gltf-stat [-strict] [INPUT] [OUTPUT]

Reads a glTF or GLB file from INPUT, loads its buffers, accessors, images, and
meshes, and writes to OUTPUT statistics for the file.

INPUT and OUTPUT are paths to files. If INPUT is "-" or unspecified, then stdin
is used, and relative URIs are resolved against the working directory. If
OUTPUT is "-" or unspecified, then stdout is used. Warnings and errors are
written to stderr.

If -strict is set, then conditions that would produce a warning fail instead.
`

type AccessorLen struct {
	Index  int
	Name   string `json:",omitempty"`
	Type   string
	Length int
}

func (a AccessorLen) String() string {
	return fmt.Sprintf("accessors[%d]:%s(%d)", a.Index, a.Type, a.Length)
}

type AccessorLens []AccessorLen

func (a AccessorLens) MarshalJSON() ([]byte, error) {
	list := append([]AccessorLen{}, a...)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Length > list[j].Length
	})
	if len(list) > 20 {
		list = list[:20]
	}
	return json.Marshal(list)
}

type VRMStats struct {
	Version      string
	Name         string   `json:",omitempty"`
	Authors      []string `json:",omitempty"`
	MissingBones []string `json:",omitempty"`
	Springs      int
	Joints       int
	Colliders    int
}

type Stats struct {
	Version   string
	Generator string   `json:",omitempty"`
	Used      []string `json:",omitempty"`
	Required  []string `json:",omitempty"`

	// Number of elements per top-level array.
	ObjectCount map[string]int

	// Bytes loaded overall.
	BufferBytes   int
	AccessorBytes int
	ImageBytes    int

	// Number of accessors and images whose content also appears in an
	// earlier one.
	DuplicateAccessors int
	DuplicateImages    int

	// Number of primitives per mode.
	ModeCount map[string]int
	// Number of points, lines, or triangles per mode.
	PrimitiveCount       map[string]int
	CompressedPrimitives int `json:",omitempty"`

	// Number of images per format.
	FormatCount map[string]int `json:",omitempty"`

	LargestAccessors AccessorLens `json:",omitempty"`

	VRM *VRMStats `json:",omitempty"`
}

func (s *Stats) Fill(doc *gltf.Document, mb *load.MaterializedBuffers) {
	if doc == nil {
		return
	}
	s.Version = doc.Asset.Version
	s.Generator = doc.Asset.Generator
	s.Used = doc.ExtensionsUsed
	s.Required = doc.ExtensionsRequired

	s.ObjectCount = map[string]int{
		"accessors":   len(doc.Accessors),
		"animations":  len(doc.Animations),
		"buffers":     len(doc.Buffers),
		"bufferViews": len(doc.BufferViews),
		"cameras":     len(doc.Cameras),
		"images":      len(doc.Images),
		"materials":   len(doc.Materials),
		"meshes":      len(doc.Meshes),
		"nodes":       len(doc.Nodes),
		"samplers":    len(doc.Samplers),
		"scenes":      len(doc.Scenes),
		"skins":       len(doc.Skins),
		"textures":    len(doc.Textures),
		"lights":      len(doc.Lights()),
	}

	s.fillVRM(doc)

	if mb == nil {
		return
	}
	for _, b := range mb.Buffers {
		s.BufferBytes += len(b)
	}

	seen := map[string]bool{}
	for i, src := range mb.Accessors {
		s.AccessorBytes += len(src.Data)
		key := hex.EncodeToString(src.Digest[:])
		if seen[key] {
			s.DuplicateAccessors++
		}
		seen[key] = true
		s.LargestAccessors = append(s.LargestAccessors, AccessorLen{
			Index:  i,
			Name:   doc.Accessors[i].Name,
			Type:   doc.Accessors[i].Type.String(),
			Length: len(src.Data),
		})
	}

	s.FormatCount = map[string]int{}
	seen = map[string]bool{}
	for _, img := range mb.Images {
		s.ImageBytes += len(img.Data)
		key := hex.EncodeToString(img.Digest[:])
		if seen[key] {
			s.DuplicateImages++
		}
		seen[key] = true
		format := img.Format
		if format == "" {
			format = "unknown"
		}
		s.FormatCount[format]++
	}

	s.ModeCount = map[string]int{}
	s.PrimitiveCount = map[string]int{}
	for _, mesh := range mb.Meshes {
		for _, p := range mesh {
			mode := p.Mode.String()
			s.ModeCount[mode]++
			s.PrimitiveCount[mode] += p.PrimitiveCount()
			if p.Compressed {
				s.CompressedPrimitives++
			}
		}
	}
}

func (s *Stats) fillVRM(doc *gltf.Document) {
	switch {
	case doc.VRM1() != nil:
		v := doc.VRM1()
		s.VRM = &VRMStats{
			Version:      v.SpecVersion,
			Name:         v.Meta.Name,
			Authors:      v.Meta.Authors,
			MissingBones: v.Humanoid.MissingBones(),
		}
	case doc.VRM0() != nil:
		v := doc.VRM0()
		s.VRM = &VRMStats{
			Version:      "0.x",
			Name:         v.Meta.Title,
			MissingBones: v.Humanoid.MissingBones(),
		}
		if v.Meta.Author != "" {
			s.VRM.Authors = []string{v.Meta.Author}
		}
		if v.SecondaryAnimation != nil {
			s.VRM.Springs = len(v.SecondaryAnimation.BoneGroups)
			for _, g := range v.SecondaryAnimation.BoneGroups {
				s.VRM.Joints += len(g.Bones)
			}
			s.VRM.Colliders = len(v.SecondaryAnimation.ColliderGroups)
		}
		return
	default:
		return
	}
	if sb := doc.SpringBone(); sb != nil {
		s.VRM.Springs = len(sb.Springs)
		for _, spring := range sb.Springs {
			s.VRM.Joints += len(spring.Joints)
		}
		s.VRM.Colliders = len(sb.Colliders)
	}
}

func main() {
	var input io.Reader = os.Stdin
	var output io.Writer = os.Stdout
	var base string

	strict := flag.Bool("strict", false, "fail on warnings")
	flag.Usage = func() { fmt.Fprintf(flag.CommandLine.Output(), usage) }
	flag.Parse()
	args := flag.Args()
	if len(args) >= 1 && args[0] != "-" {
		in, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("open input: %w", err))
			return
		}
		input = in
		base = filepath.Dir(args[0])
		defer in.Close()
	}
	if len(args) >= 2 && args[1] != "-" {
		out, err := os.Create(args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("create output: %w", err))
			return
		}
		defer out.Close()
		defer func() {
			err := out.Sync()
			if err != nil {
				fmt.Fprintln(os.Stderr, fmt.Errorf("sync output: %w", err))
				return
			}
		}()
		output = out
	}

	doc, bin, warn, err := glb.Decoder{Strict: *strict}.Decode(input)
	if warn != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("warning: %w", warn))
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("error: %w", err))
		return
	}

	l := &load.Loader{BasePath: base, BIN: bin, Draco: dracomesh.Decoder{}}
	mb, err := l.LoadAll(doc)
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("load error: %w", err))
	}

	var stats Stats
	stats.Fill(doc, mb)

	je := json.NewEncoder(output)
	je.SetEscapeHTML(false)
	je.SetIndent("", "\t")
	if err := je.Encode(stats); err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("write error: %w", err))
	}
}
