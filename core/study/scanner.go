// Package study - HCL study file scanner
package study

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"gridcalc/internal/errors"
)

// Scanner parses study files.
type Scanner struct {
	parser *hclparse.Parser
}

// NewScanner creates a study scanner.
func NewScanner() *Scanner {
	return &Scanner{
		parser: hclparse.NewParser(),
	}
}

// ScanFile reads and parses one study file.
func (s *Scanner) ScanFile(path string) (*Study, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Study(fmt.Sprintf("failed to read %s", path), err)
	}
	return s.Parse(src, path)
}

// Parse parses study source. Diagnostics are collapsed into a single study
// error listing each problem with its file position.
func (s *Scanner) Parse(src []byte, filename string) (*Study, error) {
	file, diags := s.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diagError(diags)
	}

	var study Study
	diags = gohcl.DecodeBody(file.Body, nil, &study)
	if diags.HasErrors() {
		return nil, diagError(diags)
	}

	if err := validate(&study); err != nil {
		return nil, err
	}
	return &study, nil
}

func diagError(diags hcl.Diagnostics) error {
	var lines []string
	for _, d := range diags {
		if d.Severity != hcl.DiagError {
			continue
		}
		pos := ""
		if d.Subject != nil {
			pos = fmt.Sprintf("%s:%d: ", d.Subject.Filename, d.Subject.Start.Line)
		}
		lines = append(lines, pos+d.Summary+": "+d.Detail)
	}
	return errors.New(errors.TypeStudy, strings.Join(lines, "; "))
}

// validate rejects structural mistakes the block schema cannot express.
func validate(study *Study) error {
	for _, r := range study.Resistors {
		switch r.Combination {
		case "series", "parallel":
		default:
			return errors.Newf(errors.TypeStudy,
				"resistors %q: combination must be \"series\" or \"parallel\", got %q",
				r.Name, r.Combination)
		}
	}

	for _, f := range study.Faults {
		for attr, pair := range map[string][]float64{"z1": f.Z1, "z2": f.Z2, "z0": f.Z0} {
			if len(pair) != 2 {
				return errors.Newf(errors.TypeStudy,
					"fault %q: %s must be a [real, imag] pair, got %d values",
					f.Name, attr, len(pair))
			}
		}
		if f.Zf != nil && len(f.Zf) != 2 {
			return errors.Newf(errors.TypeStudy,
				"fault %q: zf must be a [real, imag] pair, got %d values", f.Name, len(f.Zf))
		}
	}

	for _, p := range study.PowerFlows {
		if len(p.Buses) == 0 {
			return errors.Newf(errors.TypeStudy, "powerflow %q declares no buses", p.Name)
		}
	}

	for _, d := range study.Dispatches {
		if len(d.Units) == 0 {
			return errors.Newf(errors.TypeStudy, "dispatch %q declares no units", d.Name)
		}
	}

	return nil
}

// Complex converts a [real, imag] pair to a complex number. The scanner
// validates pair lengths; a nil pair (an omitted optional) is zero.
func Complex(pair []float64) complex128 {
	if len(pair) != 2 {
		return 0
	}
	return complex(pair[0], pair[1])
}
