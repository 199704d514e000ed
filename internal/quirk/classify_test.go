package quirk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/quirkurl/internal/circuit"
)

func TestClassifyFixed(t *testing.T) {
	for _, sym := range []string{"h", "x", "y", "z"} {
		t.Run(sym, func(t *testing.T) {
			tokens, err := Classify(circuit.Fixed{Symbol: sym})
			require.NoError(t, err)
			require.Len(t, tokens, 1)
			assert.False(t, tokens[0].HasArg)
			assert.Equal(t, map[string]string{"h": "H", "x": "X", "y": "Y", "z": "Z"}[sym], tokens[0].Label)
		})
	}
}

func TestClassifyRotation(t *testing.T) {
	tests := []struct {
		axis  string
		angle circuit.Angle
		label string
		arg   string
	}{
		{"rx", circuit.NewAngle(0.5), "Rxft", "0.5"},
		{"ry", circuit.Angle{Value: 0.1, Text: "0.10"}, "Ryft", "0.10"},
		{"rz", circuit.NewAngle(-1.25), "Rzft", "-1.25"},
	}

	for _, tt := range tests {
		t.Run(tt.axis, func(t *testing.T) {
			tokens, err := Classify(circuit.Rotation{Axis: tt.axis, Angle: tt.angle})
			require.NoError(t, err)
			require.Len(t, tokens, 1)
			assert.Equal(t, Param(tt.label, tt.arg), tokens[0])
		})
	}
}

func TestClassifyRotationLabelDiffersFromFixed(t *testing.T) {
	fixed, err := Classify(circuit.Fixed{Symbol: "z"})
	require.NoError(t, err)
	rot, err := Classify(circuit.Rotation{Axis: "rz", Angle: circuit.NewAngle(1)})
	require.NoError(t, err)

	assert.NotEqual(t, fixed[0].Label, rot[0].Label)
}

func TestClassifyControlledExpansion(t *testing.T) {
	base := circuit.Rotation{Axis: "rz", Angle: circuit.NewAngle(0.5)}
	baseTokens, err := Classify(base)
	require.NoError(t, err)

	for k := 1; k <= 4; k++ {
		tokens, err := Classify(circuit.Controlled{Base: base, Controls: k})
		require.NoError(t, err)
		require.Len(t, tokens, k+len(baseTokens))
		for i := range k {
			assert.Equal(t, Control, tokens[i], "token %d", i)
		}
		assert.Equal(t, baseTokens, tokens[k:])
	}
}

func TestClassifyNestedControls(t *testing.T) {
	g := circuit.Controlled{
		Controls: 1,
		Base:     circuit.Controlled{Controls: 2, Base: circuit.Fixed{Symbol: "x"}},
	}

	tokens, err := Classify(g)
	require.NoError(t, err)
	assert.Equal(t, []Token{Control, Control, Control, Symbol("X")}, tokens)
	assert.Equal(t, circuit.Arity(g), len(tokens))
}

func TestClassifyUnsupported(t *testing.T) {
	tests := []struct {
		name string
		gate circuit.Gate
	}{
		{"opaque", circuit.Opaque{Label: "swap", Qubits: 2}},
		{"unknown fixed", circuit.Fixed{Symbol: "s"}},
		{"unknown rotation", circuit.Rotation{Axis: "rq", Angle: circuit.NewAngle(1)}},
		{"zero controls", circuit.Controlled{Base: circuit.Fixed{Symbol: "x"}}},
		{"no base", circuit.Controlled{Controls: 1}},
		{"too many controls", circuit.Controlled{Controls: MaxRows, Base: circuit.Fixed{Symbol: "x"}}},
		{"controlled opaque", circuit.Controlled{Controls: 1, Base: circuit.Opaque{Label: "u3", Qubits: 1}}},
		{"nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Classify(tt.gate)
			require.Error(t, err)
			assert.Nil(t, tokens)
			assert.True(t, IsUnsupportedGate(err), "got %v", err)
		})
	}
}
