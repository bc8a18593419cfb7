package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Float is the element type constraint for fixture data.
type Float interface {
	~float32 | ~float64
}

// Variant names a Data alternative. The name doubles as the JSON tag key.
type Variant string

const (
	// VariantFftFreqVals holds the sample count and spacing for frequency bins.
	VariantFftFreqVals Variant = "FftFreqVals"
	// VariantComplexVals holds magnitude and phase sequences.
	VariantComplexVals Variant = "ComplexVals"
	// VariantArray holds a single sequence of values.
	VariantArray Variant = "Array"
	// VariantSineFreqVals holds the parameters of a generated sine wave.
	VariantSineFreqVals Variant = "SineFreqVals"
)

// FftFreqVals is the payload of the FftFreqVals variant.
type FftFreqVals[T Float] struct {
	N T `json:"n"`
	D T `json:"d"`
}

// ComplexVals is the payload of the ComplexVals variant.
type ComplexVals[T Float] struct {
	Mag   []T `json:"mag"`
	Phase []T `json:"phase"`
}

// SineFreqVals is the payload of the SineFreqVals variant.
type SineFreqVals[T Float] struct {
	Fsine    T `json:"fsine"`
	Fsample  T `json:"fsample"`
	Duration T `json:"duration"`
}

// Data is a tagged union over the four fixture payload shapes. Exactly one
// payload is set, selected by Variant.
//
// On the wire Data is externally tagged: {"Array": [...]},
// {"ComplexVals": {"mag": [...], "phase": [...]}} and so on.
type Data[T Float] struct {
	Variant  Variant
	FftFreq  *FftFreqVals[T]
	Complex  *ComplexVals[T]
	Array    []T
	SineFreq *SineFreqVals[T]
}

// NewFftFreqVals builds a FftFreqVals Data.
func NewFftFreqVals[T Float](n, d T) Data[T] {
	return Data[T]{Variant: VariantFftFreqVals, FftFreq: &FftFreqVals[T]{N: n, D: d}}
}

// NewComplexVals builds a ComplexVals Data.
func NewComplexVals[T Float](mag, phase []T) Data[T] {
	if mag == nil {
		mag = []T{}
	}

	if phase == nil {
		phase = []T{}
	}

	return Data[T]{Variant: VariantComplexVals, Complex: &ComplexVals[T]{Mag: mag, Phase: phase}}
}

// NewArray builds an Array Data.
func NewArray[T Float](values []T) Data[T] {
	if values == nil {
		values = []T{}
	}

	return Data[T]{Variant: VariantArray, Array: values}
}

// NewSineFreqVals builds a SineFreqVals Data.
func NewSineFreqVals[T Float](fsine, fsample, duration T) Data[T] {
	return Data[T]{
		Variant:  VariantSineFreqVals,
		SineFreq: &SineFreqVals[T]{Fsine: fsine, Fsample: fsample, Duration: duration},
	}
}

// Summary returns a short human readable description of the payload.
// A Data whose payload does not match its Variant is "unknown".
func (d Data[T]) Summary() string {
	if !d.hasPayload() {
		return "unknown"
	}

	switch d.Variant {
	case VariantFftFreqVals:
		return fmt.Sprintf("%s{n: %v, d: %v}", d.Variant, d.FftFreq.N, d.FftFreq.D)
	case VariantComplexVals:
		return fmt.Sprintf("%s{mag: %d values, phase: %d values}", d.Variant, len(d.Complex.Mag), len(d.Complex.Phase))
	case VariantArray:
		return fmt.Sprintf("%s[%d]", d.Variant, len(d.Array))
	case VariantSineFreqVals:
		return fmt.Sprintf("%s{fsine: %v, fsample: %v, duration: %v}",
			d.Variant, d.SineFreq.Fsine, d.SineFreq.Fsample, d.SineFreq.Duration)
	}

	return "unknown"
}

// MarshalJSON implements json.Marshaler. A nil Array encodes as an empty
// list; other variants must carry their payload.
func (d Data[T]) MarshalJSON() ([]byte, error) {
	var payload any

	switch d.Variant {
	case VariantFftFreqVals:
		payload = d.FftFreq
	case VariantComplexVals:
		payload = d.Complex
	case VariantArray:
		payload = d.Array
		if d.Array == nil {
			payload = []T{}
		}
	case VariantSineFreqVals:
		payload = d.SineFreq
	default:
		return nil, fmt.Errorf("cannot marshal data with unknown variant %q", d.Variant)
	}

	if !d.hasPayload() {
		return nil, fmt.Errorf("cannot marshal %s data without a payload", d.Variant)
	}

	return json.Marshal(map[Variant]any{d.Variant: payload})
}

func (d Data[T]) hasPayload() bool {
	switch d.Variant {
	case VariantFftFreqVals:
		return d.FftFreq != nil
	case VariantComplexVals:
		return d.Complex != nil
	case VariantArray:
		return true
	case VariantSineFreqVals:
		return d.SineFreq != nil
	}

	return false
}

// UnmarshalJSON implements json.Unmarshaler.
//
// The document must be an object with exactly one known variant key and a
// payload of the matching shape. Struct payloads must carry every field.
func (d *Data[T]) UnmarshalJSON(data []byte) error {
	tagged, err := objectFields(data)
	if err != nil {
		return fmt.Errorf("data must be an object keyed by variant: %w", err)
	}

	if len(tagged) != 1 {
		return fmt.Errorf("data must have exactly one variant key, got %d", len(tagged))
	}

	for key, payload := range tagged {
		decoded, err := decodeVariant[T](Variant(key), payload)
		if err != nil {
			return err
		}

		*d = decoded
	}

	return nil
}

func decodeVariant[T Float](variant Variant, payload json.RawMessage) (Data[T], error) {
	switch variant {
	case VariantFftFreqVals:
		var v FftFreqVals[T]
		if err := decodeStrict(payload, field{"n", &v.N}, field{"d", &v.D}); err != nil {
			return Data[T]{}, fmt.Errorf("%s: %w", variant, err)
		}

		return Data[T]{Variant: variant, FftFreq: &v}, nil
	case VariantComplexVals:
		var v ComplexVals[T]
		if err := decodeStrict(payload, field{"mag", &v.Mag}, field{"phase", &v.Phase}); err != nil {
			return Data[T]{}, fmt.Errorf("%s: %w", variant, err)
		}

		return Data[T]{Variant: variant, Complex: &v}, nil
	case VariantArray:
		if isNull(payload) {
			return Data[T]{}, fmt.Errorf("%s: payload must be a list, got null", variant)
		}

		var values []T
		if err := json.Unmarshal(payload, &values); err != nil {
			return Data[T]{}, fmt.Errorf("%s: %w", variant, err)
		}

		return NewArray(values), nil
	case VariantSineFreqVals:
		var v SineFreqVals[T]
		err := decodeStrict(payload,
			field{"fsine", &v.Fsine}, field{"fsample", &v.Fsample}, field{"duration", &v.Duration})
		if err != nil {
			return Data[T]{}, fmt.Errorf("%s: %w", variant, err)
		}

		return Data[T]{Variant: variant, SineFreq: &v}, nil
	}

	return Data[T]{}, fmt.Errorf("unknown variant %q (want one of %s)", variant, strings.Join(variantNames(), ", "))
}

// Fixture is one JSON fixture file: named input and output datasets plus
// the function under test and where the fixture conceptually lives.
type Fixture[T Float] struct {
	InputData  Data[T] `json:"input_data"`
	OutputData Data[T] `json:"output_data"`
	Function   string  `json:"function"`
	Path       string  `json:"path"`
}

// UnmarshalJSON implements json.Unmarshaler. All four keys are required.
func (f *Fixture[T]) UnmarshalJSON(data []byte) error {
	var fixture Fixture[T]

	err := decodeStrict(data,
		field{"input_data", &fixture.InputData},
		field{"output_data", &fixture.OutputData},
		field{"function", &fixture.Function},
		field{"path", &fixture.Path},
	)
	if err != nil {
		return err
	}

	*f = fixture

	return nil
}

// ParseFixture decodes one JSON document into a Fixture.
func ParseFixture[T Float](data []byte) (Fixture[T], error) {
	var fixture Fixture[T]
	if err := json.Unmarshal(data, &fixture); err != nil {
		return Fixture[T]{}, err
	}

	return fixture, nil
}

// field pairs an exact object key with the value it decodes into.
type field struct {
	key string
	out any
}

// decodeStrict decodes the listed keys of an object, each of which must be
// present and not null. Keys are matched exactly; other keys are ignored.
func decodeStrict(data []byte, fields ...field) error {
	object, err := objectFields(data)
	if err != nil {
		return err
	}

	for _, f := range fields {
		raw, ok := object[f.key]
		if !ok {
			return fmt.Errorf("missing field %q", f.key)
		}

		if isNull(raw) {
			return fmt.Errorf("field %q is null", f.key)
		}

		if err := json.Unmarshal(raw, f.out); err != nil {
			return fmt.Errorf("field %q: %w", f.key, err)
		}
	}

	return nil
}

// objectFields splits a JSON object into its raw member values, rejecting
// anything that is not an object and any key that appears twice.
func objectFields(data []byte) (map[string]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		if tok == nil {
			return nil, fmt.Errorf("expected an object, got null")
		}

		return nil, fmt.Errorf("expected an object, got %v", tok)
	}

	object := make(map[string]json.RawMessage)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected an object key, got %v", tok)
		}

		if _, dup := object[key]; dup {
			return nil, fmt.Errorf("duplicate key %q", key)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}

		object[key] = raw
	}

	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after object")
	}

	return object, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func variantNames() []string {
	return []string{
		string(VariantFftFreqVals),
		string(VariantComplexVals),
		string(VariantArray),
		string(VariantSineFreqVals),
	}
}
