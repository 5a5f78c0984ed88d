package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/gobbox/pkg/geometry"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Parse reads an STL file and returns a Model
// It automatically detects whether the file is ASCII or binary format
func Parse(filename string) (*Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	model, err := ParseReader(file)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", filename)
	}
	log.WithFields(log.Fields{
		"file":      filename,
		"triangles": model.TriangleCount(),
	}).Debug("parsed STL model")
	return model, nil
}

// ParseReader parses STL data from r, detecting the format from its first bytes
func ParseReader(r io.ReadSeeker) (*Model, error) {
	header := make([]byte, 6)
	n, err := io.ReadFull(r, header)
	if err != nil && err != io.ErrUnexpectedEOF {
		return nil, errors.Wrap(err, "failed to read file header")
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrap(err, "failed to reset file pointer")
	}

	// Binary files may also start with "solid" in their 80-byte header, so
	// only trust the keyword when a facet follows.
	if n >= 5 && strings.HasPrefix(string(header[:5]), "solid") && looksASCII(r) {
		if _, err := r.Seek(0, io.SeekStart); err != nil {
			return nil, errors.Wrap(err, "failed to reset file pointer")
		}
		return parseASCII(r)
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrap(err, "failed to reset file pointer")
	}
	return parseBinary(r)
}

// looksASCII peeks at the beginning of the data for an ASCII facet keyword
func looksASCII(r io.Reader) bool {
	buf := make([]byte, 512)
	n, _ := io.ReadFull(r, buf)
	text := string(buf[:n])
	return strings.Contains(text, "facet") || strings.Contains(text, "endsolid")
}

// parseASCII parses an ASCII STL file
func parseASCII(reader io.Reader) (*Model, error) {
	scanner := bufio.NewScanner(reader)
	model := NewModel("")

	var currentNormal geometry.Vector3
	var vertices []geometry.Vector3
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				model.Name = strings.Join(fields[1:], " ")
			}

		case "facet":
			if len(fields) >= 5 && fields[1] == "normal" {
				v, err := parseVector(fields[2:5])
				if err != nil {
					return nil, errors.Wrapf(err, "line %d: facet normal", lineNo)
				}
				currentNormal = v
			}

		case "vertex":
			if len(fields) < 4 {
				return nil, errors.Errorf("line %d: vertex needs 3 coordinates", lineNo)
			}
			v, err := parseVector(fields[1:4])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: vertex", lineNo)
			}
			vertices = append(vertices, v)

		case "endfacet":
			if len(vertices) == 3 {
				model.AddTriangle(geometry.NewTriangle(
					currentNormal,
					vertices[0],
					vertices[1],
					vertices[2],
				))
			} else {
				log.WithField("line", lineNo).Warnf("skipping facet with %d vertices", len(vertices))
			}
			vertices = vertices[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "error reading ASCII STL")
	}

	return model, nil
}

func parseVector(fields []string) (geometry.Vector3, error) {
	var c [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return geometry.Vector3{}, err
		}
		c[i] = v
	}
	return geometry.NewVector3(c[0], c[1], c[2]), nil
}

// binaryTriangle is the on-disk record of one facet
type binaryTriangle struct {
	Normal    [3]float32
	V1        [3]float32
	V2        [3]float32
	V3        [3]float32
	Attribute uint16
}

// parseBinary parses a binary STL file
func parseBinary(reader io.Reader) (*Model, error) {
	model := NewModel("")

	// Read 80-byte header
	header := make([]byte, 80)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, errors.Wrap(err, "failed to read header")
	}

	// Extract name from header (if present)
	if name := string(bytes.TrimRight(header, "\x00 ")); name != "" {
		model.Name = name
	}

	var triangleCount uint32
	if err := binary.Read(reader, binary.LittleEndian, &triangleCount); err != nil {
		return nil, errors.Wrap(err, "failed to read triangle count")
	}

	br := bufio.NewReader(reader)
	for i := uint32(0); i < triangleCount; i++ {
		var rec binaryTriangle
		if err := binary.Read(br, binary.LittleEndian, &rec); err != nil {
			return nil, errors.Wrapf(err, "failed to read triangle %d", i)
		}
		model.AddTriangle(geometry.NewTriangle(
			toVector(rec.Normal),
			toVector(rec.V1),
			toVector(rec.V2),
			toVector(rec.V3),
		))
	}

	return model, nil
}

func toVector(v [3]float32) geometry.Vector3 {
	return geometry.NewVector3(float64(v[0]), float64(v[1]), float64(v[2]))
}
