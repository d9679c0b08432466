package align

import (
	"fmt"
	"io"
	"strings"
)

// nexusSkip are the DATA block lines that carry no sequence data
var nexusSkip = []string{"#NEXUS", "DIMENSIONS", "FORMAT", "MATRIX", "BEGIN DATA"}

// outgroupPlaceholder is written to the MrBayes block when no outgroup is set
const outgroupPlaceholder = "None"

// MrBayes holds the MCMC settings written to the analysis block of NEXUS output
type MrBayes struct {
	// Generations is the number of MCMC generations (ngen)
	Generations int

	// PrintFreq is how often progress is printed (printfreq)
	PrintFreq int

	// SampleFreq is how often the chain is sampled (samplefreq)
	SampleFreq int

	// DiagnFreq is how often convergence diagnostics are computed (diagnfreq)
	DiagnFreq int

	// Chains is the number of chains per run (nchains)
	Chains int
}

// DefaultMrBayes returns the analysis settings used when none are configured
func DefaultMrBayes() *MrBayes {
	return &MrBayes{
		Generations: 200000,
		PrintFreq:   1000,
		SampleFreq:  100,
		DiagnFreq:   1000,
		Chains:      4,
	}
}

// WriteOptions configure serialization. Only NEXUS output uses them.
type WriteOptions struct {
	// Name is the output base name, used as the MrBayes run's filename
	Name string

	// Outgroup is the taxon MrBayes roots the tree with
	Outgroup string

	// MrBayes, if set, appends a "begin mrbayes;" block to NEXUS output
	MrBayes *MrBayes
}

// ReadNEXUS reads the MATRIX of a NEXUS DATA block. Lines are upper-cased, so
// IDs lose their case. Reading stops at the ";" that closes the matrix and
// anything after it (other blocks, MrBayes commands) is ignored.
func ReadNEXUS(r io.Reader) (*Alignment, error) {
	a := New()

	err := scanLines(r, func(n int, line string) error {
		line = strings.ToUpper(line)
		for _, prefix := range nexusSkip {
			if strings.HasPrefix(line, prefix) {
				return nil
			}
		}
		if line == ";" {
			return errStop
		}

		id, seq, err := splitRow(n, line)
		if err != nil {
			return err
		}
		a.Add(id, seq)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// WriteNEXUS writes a NEXUS DATA block with the alignment as its MATRIX,
// followed by a MrBayes block if opts.MrBayes is set
func WriteNEXUS(w io.Writer, a *Alignment, opts WriteOptions) error {
	var err error
	pf := func(format string, v ...interface{}) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, v...)
	}

	pf("#NEXUS\n\nBEGIN DATA;\n")
	pf("DIMENSIONS NTAX=%d NCHAR=%d;\n", a.Len(), a.Width())
	pf("FORMAT DATATYPE=DNA MISSING=N GAP=-;\n")
	pf("MATRIX\n")
	for _, r := range a.records {
		pf("    %s  %s\n", shortID(r.ID), r.Seq)
	}
	pf("  ;\nEND;\n")

	if mb := opts.MrBayes; mb != nil {
		outgroup := opts.Outgroup
		if outgroup == "" {
			outgroup = outgroupPlaceholder
		}

		pf("\nbegin mrbayes;\n")
		pf("  set autoclose=yes;\n")
		pf("  outgroup %s;\n", outgroup)
		pf("  mcmcp ngen=%d printfreq=%d samplefreq=%d diagnfreq=%d nchains=%d savebrlens=yes filename=%s;\n",
			mb.Generations, mb.PrintFreq, mb.SampleFreq, mb.DiagnFreq, mb.Chains, opts.Name)
		pf("  mcmc;\n")
		pf("  sumt filename=%s\n", opts.Name)
		pf("end;\n")
	}
	return wrapIO(err)
}
