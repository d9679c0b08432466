package convert

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jjtimmons/phynex/internal/align"
	"github.com/jjtimmons/phynex/internal/ctxlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile puts an input alignment into a temp dir and returns its path
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRun(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		input  string
		format align.Format
		want   string
		wantIn align.Format
	}{
		{
			"fasta to phylip",
			"aln.fasta",
			">A\nACGT\n>B\nACGA\n",
			align.PHYLIP,
			"2 4\nA   ACGT\nB   ACGA\n",
			align.FASTA,
		},
		{
			"phylip to fasta",
			"aln.phy",
			"2 4\nA ACGT\nB ACGA\n",
			align.FASTA,
			">A\nACGT\n>B\nACGA\n",
			align.PHYLIP,
		},
		{
			"nexus to phylip",
			"aln.nex",
			"#NEXUS\nBEGIN DATA;\nMATRIX\n  a ACGT\n  b ACGA\n  ;\nEND;\n",
			align.PHYLIP,
			"2 4\nA   ACGT\nB   ACGA\n",
			align.NEXUS,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := writeFile(t, tt.file, tt.input)
			outName := filepath.Join(filepath.Dir(in), "out")

			res, err := Run(context.Background(), Request{
				InPath:  in,
				Format:  tt.format,
				OutName: outName,
			})
			require.NoError(t, err)

			assert.Equal(t, outName+tt.format.Ext(), res.OutPath)
			assert.Equal(t, tt.wantIn, res.InFormat)
			assert.Equal(t, tt.format, res.OutFormat)
			assert.Equal(t, 2, res.Records)
			assert.Equal(t, 4, res.Width)

			got, err := os.ReadFile(res.OutPath)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestRun_nexusOutgroup(t *testing.T) {
	in := writeFile(t, "aln.fa", ">A\nACGT\n>B\nACGA\n")

	res, err := Run(context.Background(), Request{
		InPath:   in,
		Format:   align.NEXUS,
		Outgroup: "B",
		MrBayes:  align.DefaultMrBayes(),
	})
	require.NoError(t, err)

	got, err := os.ReadFile(res.OutPath)
	require.NoError(t, err)
	assert.Contains(t, string(got), "  outgroup B;\n")
	assert.Contains(t, string(got), "filename="+OutName(in)+";\n")

	res, err = Run(context.Background(), Request{
		InPath:  in,
		Format:  align.NEXUS,
		MrBayes: align.DefaultMrBayes(),
	})
	require.NoError(t, err)

	got, err = os.ReadFile(res.OutPath)
	require.NoError(t, err)
	assert.Contains(t, string(got), "  outgroup None;\n")
}

func TestRun_unaligned(t *testing.T) {
	in := writeFile(t, "aln.fa", ">A\nACGT\n>B\nACGTA\n")

	for _, format := range align.Formats() {
		_, err := Run(context.Background(), Request{InPath: in, Format: format})
		assert.ErrorIs(t, err, align.ErrUnaligned)

		_, statErr := os.Stat(OutName(in) + format.Ext())
		assert.True(t, os.IsNotExist(statErr), "%v output was written", format)
	}
}

func TestRun_errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Run(context.Background(), Request{InPath: filepath.Join(dir, "missing.fa"), Format: align.FASTA})
	assert.ErrorIs(t, err, align.ErrIO)

	unknown := writeFile(t, "aln.txt", "hello\nworld\n")
	_, err = Run(context.Background(), Request{InPath: unknown, Format: align.FASTA})
	assert.ErrorIs(t, err, align.ErrUnrecognizedFormat)

	malformed := writeFile(t, "aln.phy", "2 4\nA ACGT\nBACGA\n")
	_, err = Run(context.Background(), Request{InPath: malformed, Format: align.FASTA})
	assert.ErrorIs(t, err, align.ErrMalformedRow)

	headerOnly := writeFile(t, "aln.phy", "0 0\n")
	_, err = Run(context.Background(), Request{InPath: headerOnly, Format: align.FASTA})
	assert.ErrorIs(t, err, align.ErrEmptyAlignment)

	fasta := writeFile(t, "aln.fa", ">A\nACGT\n")
	_, err = Run(context.Background(), Request{InPath: fasta})
	assert.ErrorIs(t, err, align.ErrUnrecognizedFormat)

	_, err = Run(context.Background(), Request{
		InPath:  fasta,
		Format:  align.FASTA,
		OutName: filepath.Join(dir, "no", "such", "dir", "out"),
	})
	assert.ErrorIs(t, err, align.ErrIO)
}

func TestRun_logs(t *testing.T) {
	in := writeFile(t, "aln.fa", ">A\nACGT\n")

	var logs bytes.Buffer
	ctx := ctxlog.WithLogger(context.Background(), ctxlog.New("debug", "text", &logs))

	_, err := Run(ctx, Request{InPath: in, Format: align.PHYLIP})
	require.NoError(t, err)

	assert.Contains(t, logs.String(), "detected input format")
	assert.Contains(t, logs.String(), "wrote alignment")
	assert.True(t, strings.Contains(logs.String(), "format=FASTA"), logs.String())
}

func TestOutName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"aln.fasta", "aln"},
		{"primates.aln.fa", "primates"},
		{"noext", "noext"},
		{filepath.Join("data", "x.aln.fa"), filepath.Join("data", "x")},
		{filepath.Join("..", "data.v2", "x.phy"), filepath.Join("..", "data.v2", "x")},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, OutName(tt.in), tt.in)
	}
}
