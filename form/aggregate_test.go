package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_SingleEntryStaysScalar(t *testing.T) {
	data := Aggregate([]Entry{{Key: "name", Value: "Jo"}})

	require.Len(t, data, 1)
	value := data["name"]
	assert.False(t, value.Multi())
	assert.Equal(t, "Jo", value.String())
}

func TestAggregate_PromotesRepeatedKeys(t *testing.T) {
	data := Aggregate([]Entry{
		{Key: "features", Value: "A"},
		{Key: "features", Value: "B"},
		{Key: "name", Value: "Jo"},
	})

	require.Len(t, data, 2)
	assert.True(t, data["features"].Multi())
	assert.Equal(t, []string{"A", "B"}, data["features"].Strings())
	assert.False(t, data["name"].Multi())
	assert.Equal(t, "Jo", data["name"].String())
}

func TestAggregate_AppendsInSubmissionOrder(t *testing.T) {
	data := Aggregate([]Entry{
		{Key: "toppings", Value: "C"},
		{Key: "toppings", Value: "A"},
		{Key: "toppings", Value: "B"},
	})

	assert.Equal(t, []string{"C", "A", "B"}, data["toppings"].Strings())
}

func TestAggregate_RadioGroupSubmission(t *testing.T) {
	data := Aggregate([]Entry{{Key: "satisfaction", Value: "Yes"}})

	assert.Equal(t, "Yes", data["satisfaction"].String())
	assert.False(t, data["satisfaction"].Multi())
}

func TestAggregate_NoEntries(t *testing.T) {
	data := Aggregate(nil)
	assert.NotNil(t, data)
	assert.Empty(t, data)
}
