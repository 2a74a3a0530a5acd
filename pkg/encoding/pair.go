package encoding

import (
	"fmt"

	"github.com/connectedhome/validation-go/pkg/core"
)

// Pair is a request and the response produced for it.
type Pair struct {
	Path     string
	Request  map[string]any
	Response map[string]any
}

// DecodePair reads a pair document from path.
func DecodePair(path string) (Pair, error) {
	doc, err := DecodeFile(path)
	if err != nil {
		return Pair{}, err
	}
	pair, err := PairFromDocument(doc)
	if err != nil {
		return Pair{}, &core.DocumentError{Path: path, Err: err}
	}
	pair.Path = path
	return pair, nil
}

// DecodePairFiles reads a request and a response from two separate files.
func DecodePairFiles(requestPath, responsePath string) (Pair, error) {
	request, err := DecodeFile(requestPath)
	if err != nil {
		return Pair{}, err
	}
	response, err := DecodeFile(responsePath)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Path: responsePath, Request: request, Response: response}, nil
}

// PairFromDocument splits a decoded pair document into its request and
// response.
func PairFromDocument(doc map[string]any) (Pair, error) {
	request, err := member(doc, "request")
	if err != nil {
		return Pair{}, err
	}
	response, err := member(doc, "response")
	if err != nil {
		return Pair{}, err
	}
	return Pair{Request: request, Response: response}, nil
}

func member(doc map[string]any, key string) (map[string]any, error) {
	raw, ok := doc[key]
	if !ok {
		return nil, fmt.Errorf("pair document is missing %q", key)
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("pair document %q must be an object", key)
	}
	return obj, nil
}
