// Package model loads Wavefront OBJ files (*.obj) into indexed, interleaved
// meshes. Only geometry is decoded: positions, texture coordinates,
// normals, faces, object/group names and material names. Basic format
// info: https://en.wikipedia.org/wiki/Wavefront_.obj_file
package model

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	blanks = "\r\n\t "
	// noIndex marks a face corner without a uv or normal reference.
	noIndex = -1
	// VertexSize is the stride of decoded vertices: position, normal, uv.
	VertexSize = 8
)

// Face is one polygon; every slice has one entry per corner.
type Face struct {
	Vertices []int
	Uvs      []int
	Normals  []int
	Material string
}

// Object is a named group of faces.
type Object struct {
	Name  string
	Faces []Face
}

// Decoder holds everything read from an OBJ stream.
type Decoder struct {
	Objects  []Object
	Vertices []mgl32.Vec3
	Normals  []mgl32.Vec3
	Uvs      []mgl32.Vec2
	Warnings []string

	line       uint
	objCurrent *Object
	matCurrent string
}

// Decode parses an OBJ stream.
func Decode(r io.Reader) (*Decoder, error) {
	dec := &Decoder{}
	if err := dec.parse(r); err != nil {
		return nil, err
	}
	if len(dec.Vertices) == 0 {
		return nil, errors.New("obj: no vertices")
	}
	return dec, nil
}

func (dec *Decoder) parse(r io.Reader) error {
	bufin := bufio.NewReader(r)
	dec.line = 1
	for {
		// Reads next line and abort on errors (not EOF)
		line, err := bufin.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		line = strings.Trim(line, blanks)
		if perr := dec.parseLine(line); perr != nil {
			return perr
		}
		if err == io.EOF {
			return nil
		}
		dec.line++
	}
}

func (dec *Decoder) parseLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	ltype := fields[0]
	if strings.HasPrefix(ltype, "#") {
		return nil
	}
	switch ltype {
	case "mtllib":
		if len(fields) < 2 {
			return dec.formatError("mtllib with no fields")
		}
		// Materials only carry a name through to the mesh.
		dec.appendWarn("mtllib not read: " + fields[1])
		return nil
	// Groups are treated the same as objects.
	case "o", "g":
		return dec.parseObject(fields[1:])
	case "v":
		v, err := dec.parseVec3(fields[1:])
		if err != nil {
			return err
		}
		dec.Vertices = append(dec.Vertices, v)
		return nil
	case "vn":
		v, err := dec.parseVec3(fields[1:])
		if err != nil {
			return err
		}
		dec.Normals = append(dec.Normals, v)
		return nil
	case "vt":
		return dec.parseTex(fields[1:])
	case "f":
		return dec.parseFace(fields[1:])
	case "usemtl":
		if len(fields) < 2 {
			return dec.formatError("usemtl with no fields")
		}
		dec.matCurrent = fields[1]
		return nil
	case "s":
		return nil
	}
	dec.appendWarn("field not supported: " + ltype)
	return nil
}

func (dec *Decoder) parseObject(fields []string) error {
	name := "default"
	if len(fields) > 0 {
		name = strings.Join(fields, " ")
	}
	dec.Objects = append(dec.Objects, Object{Name: name})
	dec.objCurrent = &dec.Objects[len(dec.Objects)-1]
	return nil
}

func (dec *Decoder) parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, dec.formatError(fmt.Sprintf("need %d values, got %d", n, len(fields)))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, dec.formatError(err.Error())
		}
		out[i] = float32(f)
	}
	return out, nil
}

func (dec *Decoder) parseVec3(fields []string) (mgl32.Vec3, error) {
	f, err := dec.parseFloats(fields, 3)
	if err != nil {
		return mgl32.Vec3{}, err
	}
	return mgl32.Vec3{f[0], f[1], f[2]}, nil
}

// vt accepts u, u v or u v w; w is ignored.
func (dec *Decoder) parseTex(fields []string) error {
	if len(fields) == 0 {
		return dec.formatError("vt with no fields")
	}
	n := 2
	if len(fields) < 2 {
		n = 1
	}
	f, err := dec.parseFloats(fields, n)
	if err != nil {
		return err
	}
	uv := mgl32.Vec2{f[0], 0}
	if n == 2 {
		uv[1] = f[1]
	}
	dec.Uvs = append(dec.Uvs, uv)
	return nil
}

// parseFace accepts v, v/vt, v//vn and v/vt/vn corners. Indices are 1-based;
// negative indices count back from the last element read so far.
func (dec *Decoder) parseFace(fields []string) error {
	if len(fields) < 3 {
		return dec.formatError("face with less than 3 vertices")
	}
	if dec.objCurrent == nil {
		dec.parseObject(nil)
	}
	face := Face{
		Vertices: make([]int, len(fields)),
		Uvs:      make([]int, len(fields)),
		Normals:  make([]int, len(fields)),
		Material: dec.matCurrent,
	}
	for i, corner := range fields {
		parts := strings.Split(corner, "/")
		if len(parts) > 3 {
			return dec.formatError("invalid face corner " + corner)
		}
		var err error
		if face.Vertices[i], err = dec.resolve(parts[0], len(dec.Vertices)); err != nil {
			return err
		}
		if face.Vertices[i] == noIndex {
			return dec.formatError("face corner without vertex " + corner)
		}
		face.Uvs[i] = noIndex
		if len(parts) > 1 {
			if face.Uvs[i], err = dec.resolve(parts[1], len(dec.Uvs)); err != nil {
				return err
			}
		}
		face.Normals[i] = noIndex
		if len(parts) > 2 {
			if face.Normals[i], err = dec.resolve(parts[2], len(dec.Normals)); err != nil {
				return err
			}
		}
	}
	dec.objCurrent.Faces = append(dec.objCurrent.Faces, face)
	return nil
}

func (dec *Decoder) resolve(field string, count int) (int, error) {
	if field == "" {
		return noIndex, nil
	}
	n, err := strconv.Atoi(field)
	if err != nil {
		return 0, dec.formatError(err.Error())
	}
	switch {
	case n > 0:
		n--
	case n < 0:
		n += count
	default:
		return 0, dec.formatError("index 0 is not valid")
	}
	if n < 0 || n >= count {
		return 0, dec.formatError(fmt.Sprintf("index %s out of range", field))
	}
	return n, nil
}

func (dec *Decoder) appendWarn(msg string) {
	dec.Warnings = append(dec.Warnings, fmt.Sprintf("obj: line %d: %s", dec.line, msg))
}

func (dec *Decoder) formatError(msg string) error {
	return fmt.Errorf("obj: format error: line %d: %s", dec.line, msg)
}

// MeshData is one decoded object ready to upload: VertexSize floats per vertex.
type MeshData struct {
	Name     string
	Material string
	Vertices []float32
	Indices  []uint32
}

type cornerKey struct {
	v, uv, n int
	// Corners without a normal borrow the face normal, so they only merge
	// with corners of faces lying in the same plane.
	faceNormal mgl32.Vec3
}

// Meshes builds one mesh per object and material run. Polygons are split
// into triangle fans and identical corners share a vertex.
func (dec *Decoder) Meshes() []MeshData {
	var out []MeshData
	for oi := range dec.Objects {
		ob := &dec.Objects[oi]
		var cur *MeshData
		var seen map[cornerKey]uint32
		for fi := range ob.Faces {
			face := &ob.Faces[fi]
			if cur == nil || face.Material != cur.Material {
				out = append(out, MeshData{
					Name:     fmt.Sprintf("%s_%d", ob.Name, len(out)),
					Material: face.Material,
				})
				cur = &out[len(out)-1]
				seen = make(map[cornerKey]uint32)
			}
			nrm := dec.faceNormal(face)
			corner := func(i int) uint32 {
				key := cornerKey{v: face.Vertices[i], uv: face.Uvs[i], n: face.Normals[i]}
				if key.n == noIndex {
					key.faceNormal = nrm
				}
				if idx, ok := seen[key]; ok {
					return idx
				}
				idx := uint32(len(cur.Vertices) / VertexSize)
				cur.Vertices = append(cur.Vertices, dec.vertex(face, i, nrm)...)
				seen[key] = idx
				return idx
			}
			for i := 2; i < len(face.Vertices); i++ {
				cur.Indices = append(cur.Indices, corner(0), corner(i-1), corner(i))
			}
		}
	}
	return out
}

func (dec *Decoder) vertex(face *Face, i int, faceNormal mgl32.Vec3) []float32 {
	p := dec.Vertices[face.Vertices[i]]
	n := faceNormal
	if face.Normals[i] != noIndex {
		n = dec.Normals[face.Normals[i]]
	}
	var uv mgl32.Vec2
	if face.Uvs[i] != noIndex {
		uv = dec.Uvs[face.Uvs[i]]
	}
	return []float32{p[0], p[1], p[2], n[0], n[1], n[2], uv[0], uv[1]}
}

// faceNormal is the normal of the first three corners, counter-clockwise front.
func (dec *Decoder) faceNormal(face *Face) mgl32.Vec3 {
	a := dec.Vertices[face.Vertices[0]]
	b := dec.Vertices[face.Vertices[1]]
	c := dec.Vertices[face.Vertices[2]]
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Len() == 0 {
		return mgl32.Vec3{}
	}
	return n.Normalize()
}
