package align

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"FASTA", FASTA, false},
		{"fasta", FASTA, false},
		{"FA", FASTA, false},
		{"NeXus", NEXUS, false},
		{"nex", NEXUS, false},
		{"PHYLIP", PHYLIP, false},
		{"phy", PHYLIP, false},
		{" Phylip ", PHYLIP, false},
		{"clustal", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.name)
			if tt.wantErr {
				if !errors.Is(err, ErrUnrecognizedFormat) {
					t.Errorf("ParseFormat(%q) error = %v, want %v", tt.name, err, ErrUnrecognizedFormat)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, %v, want %v", tt.name, got, err, tt.want)
			}
		})
	}
}

func TestFormat_table(t *testing.T) {
	exts := map[Format]string{FASTA: ".fasta", NEXUS: ".nex", PHYLIP: ".phy"}
	for _, f := range Formats() {
		if !f.Valid() {
			t.Errorf("%v is not valid", f)
		}
		if f.Ext() != exts[f] {
			t.Errorf("%v.Ext() = %q, want %q", f, f.Ext(), exts[f])
		}
	}

	var zero Format
	if zero.Valid() {
		t.Error("zero Format is valid")
	}
	if _, err := zero.Read(nil); !errors.Is(err, ErrUnrecognizedFormat) {
		t.Errorf("zero Format Read() = %v, want %v", err, ErrUnrecognizedFormat)
	}
	if err := zero.Write(nil, New(), WriteOptions{}); !errors.Is(err, ErrUnrecognizedFormat) {
		t.Errorf("zero Format Write() = %v, want %v", err, ErrUnrecognizedFormat)
	}
}
