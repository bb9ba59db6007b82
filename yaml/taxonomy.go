// Package yaml loads section-bucket taxonomies from YAML files, letting
// users extend the built-in synonym patterns for their niche.
package yaml

import (
	"os"

	"github.com/fwojciec/seogap"
	"gopkg.in/yaml.v3"
)

// taxonomyFile is the on-disk shape of a taxonomy definition:
//
//	buckets:
//	  - bucket: pricing
//	    patterns:
//	      - pricing
//	      - fees
//	      - "investment"
//
// Patterns are regular expressions matched against normalized headings.
// Rule order matters: the first matching pattern wins.
type taxonomyFile struct {
	Buckets []bucketRule `yaml:"buckets"`
}

type bucketRule struct {
	Bucket   string   `yaml:"bucket"`
	Patterns []string `yaml:"patterns"`
}

// LoadTaxonomy reads and compiles a taxonomy from a YAML file.
// Returns ENOTFOUND if the file does not exist and EINVALID for malformed
// YAML, empty definitions, or invalid patterns.
func LoadTaxonomy(path string) (*seogap.Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, seogap.Errorf(seogap.ENOTFOUND, "taxonomy file %q not found", path)
		}
		return nil, seogap.Errorf(seogap.EINVALID, "read taxonomy file %q: %v", path, err)
	}

	return ParseTaxonomy(data)
}

// ParseTaxonomy compiles a taxonomy from YAML bytes.
func ParseTaxonomy(data []byte) (*seogap.Taxonomy, error) {
	var file taxonomyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, seogap.Errorf(seogap.EINVALID, "parse taxonomy: %v", err)
	}

	if len(file.Buckets) == 0 {
		return nil, seogap.Errorf(seogap.EINVALID, "taxonomy defines no buckets")
	}

	rules := make([]seogap.RuleDef, 0, len(file.Buckets))
	for _, b := range file.Buckets {
		if b.Bucket == "" {
			return nil, seogap.Errorf(seogap.EINVALID, "taxonomy bucket name required")
		}
		if len(b.Patterns) == 0 {
			return nil, seogap.Errorf(seogap.EINVALID, "bucket %q has no patterns", b.Bucket)
		}
		rules = append(rules, seogap.RuleDef{Bucket: b.Bucket, Patterns: b.Patterns})
	}

	return seogap.NewTaxonomy(rules)
}
