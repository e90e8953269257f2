package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStateString(t *testing.T) {
	assert.Equal(t, "Not Loaded", LoadStateNotLoaded.String())
	assert.Equal(t, "Loaded", LoadStateLoaded.String())
	assert.Equal(t, "Failed To Load", LoadStateFailedToLoad.String())
	assert.Equal(t, "Unknown", LoadState(42).String())
}

func TestDescriptorJSONIsFlat(t *testing.T) {
	data, err := json.Marshal(Descriptor{
		Name:     "m",
		Category: "c",
		Status:   LoadStateLoaded,
		CapabilityMetadata: CapabilityMetadata{
			Description: "d",
			InputType:   "i",
			OutputType:  "o",
			UseCase:     "u",
		},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"m","category":"c","status":"Loaded","description":"d","input_type":"i","output_type":"o","use_case":"u"}`, string(data))
}

func TestErrorResultJSON(t *testing.T) {
	data, err := json.Marshal(newErrorResult(&ResultError{Kind: ErrModelNotLoaded, Message: "Model not loaded"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"Model not loaded"}`, string(data))
}

func TestChainProcessOrder(t *testing.T) {
	var trace []string
	middleware := func(name string) ProcessMiddleware {
		return func(next ProcessFunc) ProcessFunc {
			return func(input string) (*Result, error) {
				trace = append(trace, name)
				return next(input)
			}
		}
	}
	process := ChainProcess(func(input string) (*Result, error) {
		trace = append(trace, "process")
		return &Result{Input: input}, nil
	}, middleware("outer"), middleware("inner"))
	_, err := process("x")
	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner", "process"}, trace)
}
