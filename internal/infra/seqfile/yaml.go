package seqfile

import (
	"fmt"
	"math"
	"os"

	"github.com/aalvaropc/prefixer/internal/domain"
	"gopkg.in/yaml.v3"
)

type yamlSequence struct {
	Name   string `yaml:"name"`
	Values []any  `yaml:"values"`
}

func decodeYAML(path string, b []byte) (domain.Sequence, error) {
	var ys yamlSequence
	if err := yaml.Unmarshal(b, &ys); err != nil {
		return domain.Sequence{}, &domain.OpError{
			Op:   "seqfile.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if ys.Values == nil {
		return domain.Sequence{}, invalidField(path, "values", "values is required")
	}

	values := make([]int64, 0, len(ys.Values))
	for i, v := range ys.Values {
		n, err := yamlInt(v)
		if err != nil {
			return domain.Sequence{}, invalidField(path, fmt.Sprintf("values[%d]", i), err.Error())
		}
		values = append(values, n)
	}

	return domain.Sequence{Name: ys.Name, Values: values}, nil
}

func yamlInt(v any) (int64, error) {
	switch t := v.(type) {
	case int:
		return int64(t), nil
	case int64:
		return t, nil
	case uint64:
		if t > math.MaxInt64 {
			return 0, fmt.Errorf("value %d overflows int64", t)
		}
		return int64(t), nil
	case float64:
		return integral(t)
	case nil:
		return 0, fmt.Errorf("expected integer, got null")
	default:
		return 0, fmt.Errorf("expected integer, got %T", v)
	}
}

func readYAMLName(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var v struct {
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal(b, &v); err != nil {
		return "", err
	}
	return v.Name, nil
}
