package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-config-gen/models"
)

// Parse reads exactly one JSON value from r.
//
// Trailing non-whitespace data after the value is an error.
func Parse(r io.Reader) (*models.Node, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	node, err := parseValue(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	if _, err = dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return node, nil
}

// ParseBytes is a convenience wrapper around [Parse].
func ParseBytes(data []byte) (*models.Node, error) {
	return Parse(bytes.NewReader(data))
}

func parseValue(dec *json.Decoder) (*models.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return parseToken(dec, tok)
}

func parseToken(dec *json.Decoder, tok json.Token) (*models.Node, error) {
	switch v := tok.(type) {
	case nil:
		return models.NullNode(), nil
	case bool:
		return models.BoolNode(v), nil
	case json.Number:
		return models.NumberNode(v.String()), nil
	case string:
		return models.StringNode(v), nil
	case json.Delim:
		switch v {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		}
	}

	return nil, fmt.Errorf("unexpected token %v", tok)
}

func parseObject(dec *json.Decoder) (*models.Node, error) {
	obj := models.ObjectNode()

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key must be a string, got %v", tok)
		}

		value, err := parseValue(dec)
		if err != nil {
			return nil, fmt.Errorf("member %q: %w", key, err)
		}
		obj.Fields = append(obj.Fields, models.Field{Key: key, Value: value})
	}

	// closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func parseArray(dec *json.Decoder) (*models.Node, error) {
	arr := models.ArrayNode()

	for dec.More() {
		item, err := parseValue(dec)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", len(arr.Items), err)
		}
		arr.Items = append(arr.Items, item)
	}

	// closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}
