package seqfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
	"github.com/aalvaropc/prefixer/internal/domain"
)

func decodeJSON(path string, b []byte, valuesPath string) (domain.Sequence, error) {
	doc, err := parseJSON(b)
	if err != nil {
		return domain.Sequence{}, &domain.OpError{
			Op:   "seqfile.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	raw, err := jsonpath.Get(valuesPath, doc)
	if err != nil {
		return domain.Sequence{}, invalidField(path, valuesPath, fmt.Sprintf("jsonpath error: %v", err))
	}

	items, ok := raw.([]any)
	if !ok {
		return domain.Sequence{}, invalidField(path, valuesPath, fmt.Sprintf("expected array, got %T", raw))
	}

	values := make([]int64, 0, len(items))
	for i, it := range items {
		n, err := jsonInt(it)
		if err != nil {
			return domain.Sequence{}, invalidField(path, fmt.Sprintf("%s[%d]", valuesPath, i), err.Error())
		}
		values = append(values, n)
	}

	seq := domain.Sequence{Values: values}
	if m, ok := doc.(map[string]any); ok {
		if name, ok := m["name"].(string); ok {
			seq.Name = name
		}
	}
	return seq, nil
}

// parseJSON keeps numbers as json.Number so large integers survive intact.
func parseJSON(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func jsonInt(v any) (int64, error) {
	switch t := v.(type) {
	case json.Number:
		if n, err := strconv.ParseInt(t.String(), 10, 64); err == nil {
			return n, nil
		}
		f, err := strconv.ParseFloat(t.String(), 64)
		if err != nil {
			return 0, fmt.Errorf("expected integer, got %s", t.String())
		}
		return integral(f)
	case nil:
		return 0, fmt.Errorf("expected integer, got null")
	default:
		return 0, fmt.Errorf("expected integer, got %T", v)
	}
}
