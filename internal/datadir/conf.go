package datadir

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Conf mirrors the lhapdf.conf bootstrap file. The compiled library reads
// these keys at its own runtime; the tool only parses and renders them.
type Conf struct {
	Verbosity             int    `yaml:"Verbosity"`
	Interpolator          string `yaml:"Interpolator"`
	Extrapolator          string `yaml:"Extrapolator"`
	ForcePositive         int    `yaml:"ForcePositive"`
	AlphaSType            string `yaml:"AlphaS_Type"`
	Pythia6LambdaV5Compat bool   `yaml:"Pythia6LambdaV5Compat"`
}

// DefaultConf returns the stock configuration shipped in the template.
func DefaultConf() Conf {
	return Conf{
		Verbosity:             1,
		Interpolator:          "logcubic",
		Extrapolator:          "continuation",
		ForcePositive:         0,
		AlphaSType:            "analytic",
		Pythia6LambdaV5Compat: true,
	}
}

// ParseConf decodes lhapdf.conf content.
func ParseConf(content []byte) (Conf, error) {
	var c Conf
	if err := yaml.Unmarshal(content, &c); err != nil {
		return Conf{}, fmt.Errorf("parsing %s: %w", ConfName, err)
	}
	return c, nil
}

// LoadConf reads and decodes lhapdf.conf from a filesystem path.
func LoadConf(path string) (Conf, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Conf{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseConf(content)
}

// Marshal renders the configuration as YAML.
func (c Conf) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
