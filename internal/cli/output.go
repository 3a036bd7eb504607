package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dsakit/internal/config"
)

// field is one labelled line of a command result.
type field struct {
	Key   string
	Value any
}

// render writes fields either as "key: value" lines or as a YAML mapping,
// keeping their order in both cases.
func render(w io.Writer, format string, fields []field) error {
	if format != config.OutputYAML {
		for _, f := range fields {
			if _, err := fmt.Fprintf(w, "%s: %v\n", f.Key, f.Value); err != nil {
				return err
			}
		}
		return nil
	}

	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range fields {
		var val yaml.Node
		if err := val.Encode(f.Value); err != nil {
			return errors.Wrapf(err, "failed to encode %q", f.Key)
		}
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: f.Key},
			&val,
		)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(err, "failed to write yaml")
	}

	return enc.Close()
}

// parseInts parses a list of decimal integers, naming the flag on failure.
func parseInts(flag string, raw []string) ([]int, error) {
	out := make([]int, 0, len(raw))
	for _, s := range raw {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid --%s value %q", flag, s)
		}
		out = append(out, v)
	}

	return out, nil
}
