package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScenario_Validate(t *testing.T) {
	testCases := []struct {
		description string
		scenario    *Scenario
		expectErr   string
	}{
		{
			description: "valid",
			scenario: &Scenario{Name: "teams", Requests: []*Request{
				{Method: "POST", URL: "/api/teams"},
			}},
		},
		{
			description: "missing name",
			scenario:    &Scenario{},
			expectErr:   "scenario name was empty",
		},
		{
			description: "missing method",
			scenario:    &Scenario{Name: "teams", Requests: []*Request{{URL: "/api/teams"}}},
			expectErr:   "scenario teams: request[0] method was empty",
		},
		{
			description: "missing url",
			scenario:    &Scenario{Name: "teams", Requests: []*Request{{Method: "GET"}}},
			expectErr:   "scenario teams: request[0] url was empty",
		},
		{
			description: "nil request",
			scenario:    &Scenario{Name: "teams", Requests: []*Request{nil}},
			expectErr:   "scenario teams: request[0] was empty",
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			err := testCase.scenario.Validate()
			if testCase.expectErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, testCase.expectErr)
		})
	}
}
