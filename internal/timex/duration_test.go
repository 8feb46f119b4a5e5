package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type holder struct {
	Timeout Duration `json:"timeout" toml:"timeout" yaml:"timeout"`
}

func TestDuration_JSON(t *testing.T) {
	var h holder
	require.NoError(t, json.Unmarshal([]byte(`{"timeout":"1m30s"}`), &h))
	assert.Equal(t, 90*time.Second, h.Timeout.Duration)

	require.NoError(t, json.Unmarshal([]byte(`{"timeout":1000000000}`), &h))
	assert.Equal(t, time.Second, h.Timeout.Duration)

	assert.Error(t, json.Unmarshal([]byte(`{"timeout":"soon"}`), &h))
	assert.Error(t, json.Unmarshal([]byte(`{"timeout":true}`), &h))

	b, err := json.Marshal(holder{Timeout: Duration{5 * time.Second}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"timeout":"5s"}`, string(b))
}

func TestDuration_TOML(t *testing.T) {
	var h holder
	_, err := toml.Decode(`timeout = "250ms"`, &h)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, h.Timeout.Duration)
}

func TestDuration_YAML(t *testing.T) {
	var h holder
	require.NoError(t, yaml.Unmarshal([]byte("timeout: 2s\n"), &h))
	assert.Equal(t, 2*time.Second, h.Timeout.Duration)

	require.NoError(t, yaml.Unmarshal([]byte("timeout: 1000\n"), &h))
	assert.Equal(t, time.Microsecond, h.Timeout.Duration)

	assert.Error(t, yaml.Unmarshal([]byte("timeout: [1, 2]\n"), &h))
}
