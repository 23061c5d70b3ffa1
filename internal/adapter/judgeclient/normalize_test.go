package judgeclient

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeArrayBare(t *testing.T) {
	got, err := normalizeArray[string](json.RawMessage(`["a","b"]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestNormalizeArrayValuesEnvelope(t *testing.T) {
	raw := json.RawMessage(`{"$id":"1","$values":["a","b"]}`)
	got, err := normalizeArray[string](raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestNormalizeArrayAbsent(t *testing.T) {
	for _, raw := range []json.RawMessage{nil, json.RawMessage(`null`)} {
		got, err := normalizeArray[string](raw)
		require.NoError(t, err)
		assert.Nil(t, got)
	}
}

func TestNormalizeArrayEmpty(t *testing.T) {
	got, err := normalizeArray[string](json.RawMessage(`[]`))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNormalizeArrayStructElements(t *testing.T) {
	raw := json.RawMessage(`{"$values":[{"submissionId":"s1"},{"submissionId":"s2"}]}`)
	got, err := normalizeArray[submissionDTO](raw)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "s1", got[0].SubmissionID)
	assert.Equal(t, "s2", got[1].SubmissionID)
}

func TestNormalizeArrayUnrecognizedShape(t *testing.T) {
	_, err := normalizeArray[string](json.RawMessage(`42`))
	require.Error(t, err)
}
