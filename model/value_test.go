package model

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_AppendPromotes(t *testing.T) {
	v := Scalar("A")
	assert.False(t, v.Multi())

	v = v.Append("B")
	assert.True(t, v.Multi())
	assert.Equal(t, []string{"A", "B"}, v.Strings())

	v = v.Append("C")
	assert.Equal(t, []string{"A", "B", "C"}, v.Strings())
}

func TestValue_MarshalScalarAsString(t *testing.T) {
	buf, err := json.Marshal(Scalar("Jo"))
	require.NoError(t, err)
	assert.JSONEq(t, `"Jo"`, string(buf))
}

func TestValue_MarshalSequenceAsArray(t *testing.T) {
	buf, err := json.Marshal(Scalar("A").Append("B"))
	require.NoError(t, err)
	assert.JSONEq(t, `["A","B"]`, string(buf))
}

func TestValue_UnmarshalBothShapes(t *testing.T) {
	var v Value
	require.NoError(t, json.Unmarshal([]byte(`"Jo"`), &v))
	assert.False(t, v.Multi())
	assert.Equal(t, "Jo", v.String())

	require.NoError(t, json.Unmarshal([]byte(`["A","B"]`), &v))
	assert.True(t, v.Multi())
	assert.Equal(t, []string{"A", "B"}, v.Strings())
}

func TestValue_UnmarshalRejectsOtherShapes(t *testing.T) {
	var v Value
	assert.Error(t, json.Unmarshal([]byte(`42`), &v))
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &v))
}

func TestResponseData_RoundTrip(t *testing.T) {
	data := ResponseData{
		"name":     Scalar("Jo"),
		"features": List("A", "B"),
	}

	buf, err := json.Marshal(data)
	require.NoError(t, err)

	var got ResponseData
	require.NoError(t, json.Unmarshal(buf, &got))
	assert.Equal(t, data, got)
}
