package model

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const readJSONDocument = `
{
    "function": "read_json",
    "input_data": {
        "ComplexVals": {
            "mag": [
                0.0, 1.0, 2.0, 3.0, 4.0
            ],
            "phase": [
                5.0, 6.0, 7.0, 8.0
            ]
        }
    },
    "output_data": {
        "Array": [
            0.0, 1.0, 2.0, 3.0, 4.0, 5.0, 6.0, 7.0, 8.0, 9.0
        ]
    },
    "path": "datasets/io"
}`

func TestParseFixture_TaggedDocument(t *testing.T) {
	fixture, err := ParseFixture[float64]([]byte(readJSONDocument))
	require.NoError(t, err)

	assert.Equal(t, "read_json", fixture.Function)
	assert.Equal(t, "datasets/io", fixture.Path)

	require.Equal(t, VariantComplexVals, fixture.InputData.Variant)
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, fixture.InputData.Complex.Mag)
	assert.Equal(t, []float64{5, 6, 7, 8}, fixture.InputData.Complex.Phase)

	require.Equal(t, VariantArray, fixture.OutputData.Variant)
	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, fixture.OutputData.Array)
}

func TestFixture_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data Data[float64]
	}{
		{"fft freq vals", NewFftFreqVals(1024.0, 1.0/44100.0)},
		{"complex vals", NewComplexVals([]float64{0.1, 0.2, math.Pi}, []float64{-math.MaxFloat64, math.SmallestNonzeroFloat64})},
		{"array", NewArray([]float64{0, 0.12582098237155617, 100.53096491487338, -1e-300})},
		{"empty array", NewArray[float64](nil)},
		{"sine freq vals", NewSineFreqVals(440.0, 48000.0, 0.25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := Fixture[float64]{
				InputData:  tt.data,
				OutputData: NewArray([]float64{1, 2, 3}),
				Function:   "round_trip",
				Path:       "datasets/round_trip",
			}

			encoded, err := json.Marshal(original)
			require.NoError(t, err)

			decoded, err := ParseFixture[float64](encoded)
			require.NoError(t, err)

			if diff := cmp.Diff(original, decoded); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestData_MarshalJSON_ExternallyTagged(t *testing.T) {
	tests := []struct {
		name string
		data Data[float64]
		want string
	}{
		{"fft freq vals", NewFftFreqVals(8.0, 0.5), `{"FftFreqVals":{"n":8,"d":0.5}}`},
		{"complex vals", NewComplexVals([]float64{1}, []float64{2}), `{"ComplexVals":{"mag":[1],"phase":[2]}}`},
		{"array", NewArray([]float64{1.5, 2.5}), `{"Array":[1.5,2.5]}`},
		{"sine freq vals", NewSineFreqVals(1.0, 8.0, 0.5), `{"SineFreqVals":{"fsine":1,"fsample":8,"duration":0.5}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.data)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestData_MarshalJSON_UnknownVariant(t *testing.T) {
	_, err := json.Marshal(Data[float64]{})
	require.Error(t, err)
}

func TestData_UnmarshalJSON_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"untagged list", `[1, 2, 3]`},
		{"untagged object", `{"n": 1, "d": 2}`},
		{"null", `null`},
		{"no variant key", `{}`},
		{"two variant keys", `{"Array": [1], "FftFreqVals": {"n": 1, "d": 2}}`},
		{"unknown variant", `{"RealVals": [1, 2]}`},
		{"array given object", `{"Array": {"values": [1]}}`},
		{"array given null", `{"Array": null}`},
		{"array of strings", `{"Array": ["a"]}`},
		{"struct variant given list", `{"FftFreqVals": [1, 2]}`},
		{"missing field", `{"FftFreqVals": {"n": 1}}`},
		{"null field", `{"SineFreqVals": {"fsine": 1, "fsample": null, "duration": 2}}`},
		{"sequence field given scalar", `{"ComplexVals": {"mag": 1, "phase": [2]}}`},
		{"scalar field given list", `{"SineFreqVals": {"fsine": [1], "fsample": 2, "duration": 3}}`},
		{"repeated variant key", `{"Array": [1], "Array": [2, 3]}`},
		{"repeated payload field", `{"FftFreqVals": {"n": 1, "d": 2, "d": 3}}`},
		{"variant key in wrong case", `{"array": [1]}`},
		{"field key only in wrong case", `{"FftFreqVals": {"N": 1, "d": 2}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data Data[float64]
			err := json.Unmarshal([]byte(tt.doc), &data)
			require.Error(t, err)
		})
	}
}

func TestParseFixture_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `function: read_json`},
		{"missing output_data", `{"function": "f", "path": "p", "input_data": {"Array": []}}`},
		{"missing function", `{"path": "p", "input_data": {"Array": []}, "output_data": {"Array": []}}`},
		{"untagged input", `{"function": "f", "path": "p", "input_data": [1], "output_data": {"Array": []}}`},
		{"trailing document", `{"function": "f", "path": "p", "input_data": {"Array": []}, "output_data": {"Array": []}} {}`},
		{"function not a string", `{"function": 1, "path": "p", "input_data": {"Array": []}, "output_data": {"Array": []}}`},
		{"repeated function", `{"function": "a", "function": "b", "path": "p", "input_data": {"Array": []}, "output_data": {"Array": []}}`},
		{"path only in wrong case", `{"function": "f", "PATH": "p", "input_data": {"Array": []}, "output_data": {"Array": []}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFixture[float64]([]byte(tt.doc))
			require.Error(t, err)
		})
	}
}

func TestData_UnmarshalJSON_ExactKeys(t *testing.T) {
	var data Data[float64]
	require.NoError(t, json.Unmarshal([]byte(`{"FftFreqVals": {"n": 1, "d": 2, "D": 9, "N": 7}}`), &data))

	require.Equal(t, VariantFftFreqVals, data.Variant)
	assert.Equal(t, FftFreqVals[float64]{N: 1, D: 2}, *data.FftFreq)
}

func TestParseFixture_ExactKeys(t *testing.T) {
	doc := `{"function": "a", "FUNCTION": "b", "Path": "q", "path": "p",
		"input_data": {"Array": [1]}, "output_data": {"Array": [2]}}`

	fixture, err := ParseFixture[float64]([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "a", fixture.Function)
	assert.Equal(t, "p", fixture.Path)
}

func TestParseFixture_Float32(t *testing.T) {
	fixture, err := ParseFixture[float32]([]byte(readJSONDocument))
	require.NoError(t, err)

	assert.Equal(t, []float32{0, 1, 2, 3, 4}, fixture.InputData.Complex.Mag)
	assert.Equal(t, []float32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, fixture.OutputData.Array)
}

func TestData_Summary(t *testing.T) {
	assert.Equal(t, "Array[3]", NewArray([]float64{1, 2, 3}).Summary())
	assert.Equal(t, "ComplexVals{mag: 5 values, phase: 4 values}",
		NewComplexVals(make([]float64, 5), make([]float64, 4)).Summary())
	assert.Equal(t, "FftFreqVals{n: 8, d: 0.1}", NewFftFreqVals(8.0, 0.1).Summary())
	assert.Equal(t, "SineFreqVals{fsine: 1, fsample: 8, duration: 0.5}", NewSineFreqVals(1.0, 8.0, 0.5).Summary())
	assert.Equal(t, "unknown", Data[float64]{}.Summary())
	assert.Equal(t, "Array[0]", Data[float64]{Variant: VariantArray}.Summary())
}

func TestData_MissingPayload(t *testing.T) {
	tests := []Data[float64]{
		{Variant: VariantFftFreqVals},
		{Variant: VariantComplexVals},
		{Variant: VariantSineFreqVals},
	}

	for _, data := range tests {
		t.Run(string(data.Variant), func(t *testing.T) {
			assert.Equal(t, "unknown", data.Summary())

			_, err := json.Marshal(data)
			require.Error(t, err)
		})
	}
}

func TestData_MarshalJSON_NilArray(t *testing.T) {
	got, err := json.Marshal(Data[float64]{Variant: VariantArray})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Array": []}`, string(got))
}
