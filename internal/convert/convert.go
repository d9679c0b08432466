// Package convert runs a single alignment conversion: detect the input
// format, parse, check the alignment and write it in the requested format.
package convert

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jjtimmons/phynex/internal/align"
	"github.com/jjtimmons/phynex/internal/ctxlog"
)

// Request is one conversion
type Request struct {
	// InPath is the alignment file to convert
	InPath string

	// Format is the output format
	Format align.Format

	// OutName is the output path without its extension. Derived from InPath if empty.
	OutName string

	// Outgroup for the MrBayes block of NEXUS output
	Outgroup string

	// MrBayes settings for NEXUS output, nil to leave the block out
	MrBayes *align.MrBayes
}

// Result describes a finished conversion
type Result struct {
	InFormat  align.Format
	OutFormat align.Format
	OutPath   string
	Records   int
	Width     int
}

// Run converts req.InPath to req.Format. Nothing is written unless the whole
// alignment was read, validated and serialized.
func Run(ctx context.Context, req Request) (Result, error) {
	logger := ctxlog.FromContext(ctx)

	if !req.Format.Valid() {
		return Result{}, fmt.Errorf("%w: %v", align.ErrUnrecognizedFormat, req.Format)
	}

	inFormat, err := align.DetectFile(req.InPath)
	if err != nil {
		return Result{}, fmt.Errorf("failed to detect format of %s: %w", req.InPath, err)
	}
	logger.Debug("detected input format", "path", req.InPath, "format", inFormat)

	aln, err := read(req.InPath, inFormat)
	if err != nil {
		return Result{}, fmt.Errorf("failed to parse %s as %v: %w", req.InPath, inFormat, err)
	}
	logger.Debug("parsed alignment", "records", aln.Len(), "width", aln.Width())

	if err = aln.Validate(); err != nil {
		return Result{}, err
	}

	outName := req.OutName
	if outName == "" {
		outName = OutName(req.InPath)
	}

	var buf bytes.Buffer
	opts := align.WriteOptions{
		Name:     outName,
		Outgroup: req.Outgroup,
		MrBayes:  req.MrBayes,
	}
	if err = req.Format.Write(&buf, aln, opts); err != nil {
		return Result{}, err
	}

	outPath := outName + req.Format.Ext()
	if err = os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		return Result{}, fmt.Errorf("%w: failed to write %s: %v", align.ErrIO, outPath, err)
	}
	logger.Info("wrote alignment", "in", req.InPath, "out", outPath, "format", req.Format)

	return Result{
		InFormat:  inFormat,
		OutFormat: req.Format,
		OutPath:   outPath,
		Records:   aln.Len(),
		Width:     aln.Width(),
	}, nil
}

// OutName derives an output name from an input path by cutting its file name
// at the first ".". The directory is kept, "data/x.aln.fa" becomes "data/x".
func OutName(inPath string) string {
	dir, file := filepath.Split(inPath)
	if i := strings.Index(file, "."); i >= 0 {
		file = file[:i]
	}
	return dir + file
}

// read parses the file at path in format f
func read(path string, f align.Format) (*align.Alignment, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", align.ErrIO, err)
	}
	defer file.Close()

	return f.Read(file)
}
