// Package dataset loads evaluation cases from local files for batch runs
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/relevia/relevia/internal/model"
)

// File is the on-disk shape of a cases file
type File struct {
	Cases []model.EvalCase `json:"cases" yaml:"cases"`
}

// Load reads evaluation cases from a YAML or JSON file, chosen by
// extension (.json is JSON, everything else is YAML)
func Load(path string) ([]model.EvalCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cases file: %w", err)
	}

	var f File
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse cases file %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse cases file %s: %w", path, err)
		}
	}

	if len(f.Cases) == 0 {
		return nil, fmt.Errorf("cases file %s contains no cases", path)
	}

	for i, ec := range f.Cases {
		if ec.Input == "" {
			return nil, fmt.Errorf("case %s: input must not be empty", caseRef(ec, i))
		}
		if ec.ActualOutput == "" {
			return nil, fmt.Errorf("case %s: actual_output must not be empty", caseRef(ec, i))
		}
		if ec.Threshold != nil && (*ec.Threshold < 0 || *ec.Threshold > 1) {
			return nil, fmt.Errorf("case %s: threshold must be in [0,1], got %v", caseRef(ec, i), *ec.Threshold)
		}
	}

	return f.Cases, nil
}

func caseRef(ec model.EvalCase, index int) string {
	if ec.Name != "" {
		return fmt.Sprintf("%q", ec.Name)
	}
	return fmt.Sprintf("#%d", index+1)
}
