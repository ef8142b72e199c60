package nlu

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name string `json:"name"`
	Age  *int   `json:"age"`
}

func TestExtractJSONPlain(t *testing.T) {
	var p payload
	require.NoError(t, ExtractJSON(`{"name":"Priya","age":34}`, &p))
	assert.Equal(t, "Priya", p.Name)
	require.NotNil(t, p.Age)
	assert.Equal(t, 34, *p.Age)
}

func TestExtractJSONStripsMarkdownFences(t *testing.T) {
	raw := "```json\n{\"name\":\"Raj\",\"age\":null}\n```"
	var p payload
	require.NoError(t, ExtractJSON(raw, &p))
	assert.Equal(t, "Raj", p.Name)
	assert.Nil(t, p.Age)
}

func TestExtractJSONParseFailureIsTyped(t *testing.T) {
	var p payload
	err := ExtractJSON("the model chatted instead of answering", &p)
	require.Error(t, err)
	assert.Equal(t, KindParse, KindOf(err))
}

func TestKindOfUnwrapsChains(t *testing.T) {
	inner := &Failure{Kind: KindServer, Err: errors.New("upstream 500")}
	wrapped := fmt.Errorf("analysis failed: %w", inner)
	assert.Equal(t, KindServer, KindOf(wrapped))
	assert.Equal(t, FailureKind(""), KindOf(errors.New("plain")))
	assert.Equal(t, FailureKind(""), KindOf(nil))
}

func TestMockClientRecordsRequests(t *testing.T) {
	m := NewMockClient("ok")
	out, err := m.GenerateText(t.Context(), Request{Prompt: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	require.Len(t, m.Requests, 1)
	assert.Equal(t, "hello", m.Requests[0].Prompt)
}
