package cli

import (
	"bytes"
	"fmt"
	"os"

	"Tunelab/internal/calc/premium/batch"

	"gopkg.in/yaml.v3"
)

// SetupFile is the YAML document read by tunecalc:
//
//	title: Weekend league
//	setups:
//	  - name: Supra track
//	    weight: 1495
//	    balance: 53
//	    ...
type SetupFile struct {
	Title  string        `yaml:"title"`
	Author string        `yaml:"author"`
	Notes  string        `yaml:"notes"`
	Setups []batch.Setup `yaml:"setups"`
}

func loadSetupFile(path string) (SetupFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return SetupFile{}, fmt.Errorf("read setups yaml %s: %w", path, err)
	}

	var sf SetupFile
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&sf); err != nil {
		return SetupFile{}, fmt.Errorf("parse setups yaml %s: %w", path, err)
	}
	if len(sf.Setups) == 0 {
		return SetupFile{}, fmt.Errorf("%s: no setups", path)
	}
	return sf, nil
}
