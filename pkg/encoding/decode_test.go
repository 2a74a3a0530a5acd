package encoding

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connectedhome/validation-go/pkg/core"
	"github.com/connectedhome/validation-go/pkg/validation"
)

const healthPairJSON = `{
  "request": {
    "header": {
      "namespace": "Alexa.ConnectedHome.System",
      "name": "HealthCheckRequest",
      "payloadVersion": "2",
      "messageId": "243AC2B1-7A7E-4B7C-B9F0-B5C1C1C1C1C1"
    },
    "payload": {"initiationTimestamp": "1435302567000"}
  },
  "response": {
    "header": {
      "namespace": "Alexa.ConnectedHome.System",
      "name": "HealthCheckResponse",
      "payloadVersion": "2",
      "messageId": "243AC2B1-7A7E-4B7C-B9F0-B5C1C1C1C1C1"
    },
    "payload": {"description": "The system is currently healthy", "isHealthy": true}
  }
}`

const rangePairYAML = `request:
  header:
    namespace: Alexa.ConnectedHome.Control
    name: SetTargetTemperatureRequest
    payloadVersion: "2"
    messageId: 01ebf625-0b89-4c4d-b3aa-32340e894688
  payload:
    accessToken: token
    targetTemperature:
      value: 41
response:
  header:
    namespace: Alexa.ConnectedHome.Control
    name: ValueOutOfRangeError
    payloadVersion: "2"
    messageId: 01ebf625-0b89-4c4d-b3aa-32340e894688
  payload:
    minimumValue: 5
    maximumValue: 30.5
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"pair.json", FormatJSON, false},
		{"dir/pair.JSON", FormatJSON, false},
		{"pair.yaml", FormatYAML, false},
		{"pair.yml", FormatYAML, false},
		{"pair.txt", FormatUnknown, true},
		{"pair", FormatUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				assert.True(t, errors.Is(err, core.ErrUnsupportedFormat))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" YAML ")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)
	assert.Equal(t, "yaml", f.String())

	_, err = ParseFormat("toml")
	assert.True(t, errors.Is(err, core.ErrUnsupportedFormat))
}

func TestDecodeJSONKeepsNumbers(t *testing.T) {
	doc, err := DecodeBytes([]byte(`{"payload": {"rateLimit": 10, "minimumValue": 5.5}}`), FormatJSON)
	require.NoError(t, err)

	payload := doc["payload"].(map[string]any)
	assert.Equal(t, json.Number("10"), payload["rateLimit"])
	assert.Equal(t, json.Number("5.5"), payload["minimumValue"])
}

func TestDecodeYAMLShapesLikeJSON(t *testing.T) {
	doc, err := DecodeBytes([]byte("payload:\n  rateLimit: 10\n  1: one\n  list:\n    - {a: 1}\n"), FormatYAML)
	require.NoError(t, err)

	payload, ok := doc["payload"].(map[string]any)
	require.True(t, ok, "payload is %T", doc["payload"])
	assert.Equal(t, 10, payload["rateLimit"])
	assert.Equal(t, "one", payload["1"])

	list := payload["list"].([]any)
	_, ok = list[0].(map[string]any)
	assert.True(t, ok)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"empty JSON", "", FormatJSON},
		{"broken JSON", `{"header": `, FormatJSON},
		{"JSON list", `[1, 2]`, FormatJSON},
		{"trailing JSON", `{} {}`, FormatJSON},
		{"empty YAML", "", FormatYAML},
		{"YAML scalar", "just text", FormatYAML},
		{"broken YAML", "a: [1, 2", FormatYAML},
		{"unknown format", `{}`, FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.data), tt.format)
			assert.Error(t, err)
		})
	}
}

func TestDecodePair(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		path := writeFile(t, "health.json", healthPairJSON)
		pair, err := DecodePair(path)
		require.NoError(t, err)
		assert.Equal(t, path, pair.Path)
		assert.NoError(t, validation.Validate(pair.Request, pair.Response))
	})

	t.Run("yaml", func(t *testing.T) {
		pair, err := DecodePair(writeFile(t, "range.yaml", rangePairYAML))
		require.NoError(t, err)
		assert.NoError(t, validation.Validate(pair.Request, pair.Response))
	})

	t.Run("missing response", func(t *testing.T) {
		path := writeFile(t, "half.json", `{"request": {}}`)
		_, err := DecodePair(path)

		var docErr *core.DocumentError
		require.True(t, errors.As(err, &docErr))
		assert.Equal(t, path, docErr.Path)
		assert.Contains(t, err.Error(), `missing "response"`)
	})

	t.Run("request is not an object", func(t *testing.T) {
		_, err := DecodePair(writeFile(t, "bad.yaml", "request: text\nresponse: {}\n"))
		assert.ErrorContains(t, err, `"request" must be an object`)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := DecodePair(filepath.Join(t.TempDir(), "absent.json"))
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestDecodePairFiles(t *testing.T) {
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(healthPairJSON), &doc))

	var request, response bytes.Buffer
	require.NoError(t, Encode(&request, doc["request"], FormatYAML))
	require.NoError(t, Encode(&response, doc["response"], FormatJSON))

	pair, err := DecodePairFiles(
		writeFile(t, "request.yml", request.String()),
		writeFile(t, "response.json", response.String()),
	)
	require.NoError(t, err)
	assert.NoError(t, validation.Validate(pair.Request, pair.Response))
}

func TestEncodeUnknownFormat(t *testing.T) {
	err := Encode(&bytes.Buffer{}, map[string]any{}, FormatUnknown)
	assert.True(t, errors.Is(err, core.ErrUnsupportedFormat))
}
