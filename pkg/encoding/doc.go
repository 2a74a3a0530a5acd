// Package encoding reads request and response documents from disk or any
// io.Reader and writes reports back out.
//
// Documents are JSON or YAML objects decoded into map[string]any, the shape
// the validation package works on. JSON numbers decode as json.Number so
// integral and fractional values survive unchanged; YAML numbers decode as
// int or float64.
//
// A pair document holds one request and the response a skill produced for
// it:
//
//	request:
//	  header: {namespace: Alexa.ConnectedHome.System, name: HealthCheckRequest, ...}
//	  payload: {}
//	response:
//	  header: {...}
//	  payload: {...}
//
// Example usage:
//
//	pair, err := encoding.DecodePair("testdata/health.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := validation.Validate(pair.Request, pair.Response); err != nil {
//		log.Println(err)
//	}
package encoding
