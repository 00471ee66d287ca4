package pointfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/trailscad/trails/pkg/geometry"
)

// Parse reads a survey point file and returns its points
// It automatically detects whether the file is whitespace separated
// XYZ or comma separated PNEZD format
func Parse(filename string) (*File, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))

	// Read the first line to determine the field separator
	header := make([]byte, 256)
	n, err := file.Read(header)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read file header: %w", err)
	}

	// Reset file pointer
	if _, err := file.Seek(0, 0); err != nil {
		return nil, fmt.Errorf("failed to reset file pointer: %w", err)
	}

	if strings.Contains(string(header[:n]), ",") {
		return parseCSV(file, name)
	}

	return parseXYZ(file, name)
}

// parseXYZ parses a whitespace separated point file: one point per
// line as "x y z", optionally prefixed with a point id. Lines starting
// with # are comments.
func parseXYZ(reader io.Reader, name string) (*File, error) {
	scanner := bufio.NewScanner(reader)
	f := NewFile(name)
	line := 0

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)

		// A leading point id is skipped when four columns are present.
		if len(fields) == 4 {
			fields = fields[1:]
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: expected 3 coordinates, got %d fields", line, len(fields))
		}

		p, err := parsePoint(fields[0], fields[1], fields[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		f.AddPoint(p)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading point file: %w", err)
	}

	return f, nil
}

// parseCSV parses a comma separated point file. Three columns are read
// as x,y,z; five or more as PNEZD records (id, northing, easting,
// elevation, description), the convention survey exports use. A
// non-numeric first row is treated as a header.
func parseCSV(reader io.Reader, name string) (*File, error) {
	scanner := bufio.NewScanner(reader)
	f := NewFile(name)
	line := 0

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Split(text, ",")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}

		var p geometry.Vector3
		var err error

		switch {
		case len(fields) == 3:
			p, err = parsePoint(fields[0], fields[1], fields[2])
		case len(fields) >= 5:
			// PNEZD: easting is X, northing is Y.
			p, err = parsePoint(fields[2], fields[1], fields[3])
		default:
			return nil, fmt.Errorf("line %d: expected 3 or 5 columns, got %d", line, len(fields))
		}

		if err != nil {
			if line == 1 {
				continue
			}
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		f.AddPoint(p)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading point file: %w", err)
	}

	return f, nil
}

func parsePoint(xs, ys, zs string) (geometry.Vector3, error) {
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return geometry.Vector3{}, fmt.Errorf("invalid x coordinate %q", xs)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return geometry.Vector3{}, fmt.Errorf("invalid y coordinate %q", ys)
	}
	z, err := strconv.ParseFloat(zs, 64)
	if err != nil {
		return geometry.Vector3{}, fmt.Errorf("invalid z coordinate %q", zs)
	}

	return geometry.Vector3{X: x, Y: y, Z: z}, nil
}
