package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestExpandValue(t *testing.T) {
	variables := map[string]string{"team": "team_abc", "ip": "192.168.0.1"}
	testCases := []struct {
		description string
		input       interface{}
		expect      interface{}
	}{
		{description: "text", input: "name={{ team }}", expect: "name=team_abc"},
		{description: "unknown placeholder", input: "{{ missing }}", expect: "{{ missing }}"},
		{description: "number", input: 22, expect: 22},
		{
			description: "nested string keyed map",
			input:       map[string]interface{}{"host": map[string]interface{}{"ip": "{{ip}}"}},
			expect:      map[string]interface{}{"host": map[string]interface{}{"ip": "192.168.0.1"}},
		},
		{
			description: "non string keyed map",
			input:       map[interface{}]interface{}{1: "{{ team }}", true: []interface{}{"{{ ip }}", 3}},
			expect:      map[interface{}]interface{}{1: "team_abc", true: []interface{}{"192.168.0.1", 3}},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			actual, err := expandValue(testCase.input, variables)
			require.NoError(t, err)
			assert.EqualValues(t, testCase.expect, actual)
		})
	}
}

func TestExpandValue_YAMLIntegerKeys(t *testing.T) {
	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte("ports:\n  22: \"{{ team }}\"\n"), &decoded))
	actual, err := expandValue(decoded, map[string]string{"team": "team_abc"})
	require.NoError(t, err)
	ports := actual.(map[string]interface{})["ports"]
	assert.EqualValues(t, map[interface{}]interface{}{22: "team_abc"}, ports)
}
