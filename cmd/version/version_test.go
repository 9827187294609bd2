package version

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVersionCmd(t *testing.T) {
	var out bytes.Buffer
	command := NewVersionCmd()
	command.SetOut(&out)

	require.NoError(t, command.Execute())

	var info struct {
		Version   string `json:"version"`
		GitCommit string `json:"gitCommit"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &info))
	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.GitCommit)
}
