// Package schema checks the outer shape of a Smart Home response with JSON
// Schema. It covers the envelope only (required keys, header vocabulary and
// formats); payload rules stay with the validation package.
package schema

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed envelope.json
var envelopeSchema string

const envelopeURL = "envelope.json"

// Envelope is a compiled envelope schema. It is safe for concurrent use.
type Envelope struct {
	schema *jsonschema.Schema
}

// Error is a single schema violation.
type Error struct {
	// Location is the JSON pointer of the offending value, e.g. /header/messageId.
	Location string
	Message  string
}

func (e *Error) Error() string {
	location := e.Location
	if location == "" {
		location = "/"
	}
	return fmt.Sprintf("%s: %s", location, e.Message)
}

var (
	defaultEnvelope     *Envelope
	defaultEnvelopeErr  error
	defaultEnvelopeOnce sync.Once
)

// Default returns the envelope schema for payload version 2, compiled on
// first use.
func Default() (*Envelope, error) {
	defaultEnvelopeOnce.Do(func() {
		defaultEnvelope, defaultEnvelopeErr = Compile(envelopeSchema)
	})
	return defaultEnvelope, defaultEnvelopeErr
}

// Document returns the embedded envelope schema source.
func Document() string {
	return envelopeSchema
}

// Compile compiles an envelope schema document.
func Compile(document string) (*Envelope, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(envelopeURL, strings.NewReader(document)); err != nil {
		return nil, fmt.Errorf("add envelope schema: %w", err)
	}
	s, err := c.Compile(envelopeURL)
	if err != nil {
		return nil, fmt.Errorf("compile envelope schema: %w", err)
	}
	return &Envelope{schema: s}, nil
}

// Check validates a decoded document. The returned error is an *Error
// describing the most specific violation.
func (e *Envelope) Check(doc any) error {
	err := e.schema.Validate(doc)
	if err == nil {
		return nil
	}
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return fmt.Errorf("envelope schema: %w", err)
	}
	leaf := deepest(verr)
	return &Error{Location: leaf.InstanceLocation, Message: leaf.Message}
}

func deepest(err *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(err.Causes) > 0 {
		err = err.Causes[0]
	}
	return err
}
