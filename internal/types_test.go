package internal

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringBool(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    StringBool
		wantErr bool
	}{
		{name: "true", input: `"true"`, want: true},
		{name: "false", input: `"false"`, want: false},
		{name: "native true", input: `true`, wantErr: true},
		{name: "native false", input: `false`, wantErr: true},
		{name: "capitalised", input: `"True"`, wantErr: true},
		{name: "digit", input: `"1"`, wantErr: true},
		{name: "empty", input: `""`, wantErr: true},
		{name: "number", input: `0`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b StringBool
			err := json.Unmarshal([]byte(tt.input), &b)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidStringBool), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, b)

			// And back again
			out, err := json.Marshal(b)
			require.NoError(t, err)
			assert.Equal(t, tt.input, string(out))
		})
	}
}

func TestStringBoolString(t *testing.T) {
	assert.Equal(t, "true", StringBool(true).String())
	assert.Equal(t, "false", StringBool(false).String())
}

func TestEnvelopeOptionalFields(t *testing.T) {
	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(`{"rsp":{"found":"0"}}`), &env))
	require.NotNil(t, env.Rsp)
	assert.Nil(t, env.Rsp.Attributes)
	assert.Nil(t, env.Rsp.Err)
	assert.Nil(t, env.Rsp.Method)
	assert.Nil(t, env.Rsp.Text)
	require.NotNil(t, env.Rsp.Found)
	assert.Equal(t, "0", *env.Rsp.Found)
}

func TestSmartScreenResponseNullFlag(t *testing.T) {
	var w SmartScreenResponse
	require.NoError(t, json.Unmarshal([]byte(`{"bigotry":null,"profanity":"true"}`), &w))
	assert.Nil(t, w.Bigotry)
	require.NotNil(t, w.Profanity)
	assert.True(t, bool(*w.Profanity))
	assert.Nil(t, w.Rsp)
}
