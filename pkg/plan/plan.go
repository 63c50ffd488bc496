package plan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Plan is a YAML manifest describing a batch of invoice files to load, with
// an optional search criterion applied to the rendered result.
type Plan struct {
	Criterion string   `yaml:"criterion,omitempty"`
	Files     []string `yaml:"files"`
}

func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	if len(p.Files) == 0 {
		return nil, fmt.Errorf("plan has no files")
	}
	return &p, nil
}

func (p *Plan) Print() {
	if p.Criterion != "" {
		fmt.Printf("criterion: %q\n", p.Criterion)
	}
	for i, f := range p.Files {
		fmt.Printf("[%d] file=%s\n", i+1, f)
	}
}
