package optchain_test

import (
	"testing"

	"github.com/optchain/optchain"
	"github.com/optchain/optchain/optional"
	"github.com/stretchr/testify/assert"
)

func scenarioByName(t *testing.T, name string) optchain.Scenario {
	t.Helper()

	for _, sc := range optchain.Scenarios() {
		if sc.Name == name {
			return sc
		}
	}

	t.Fatalf("scenario %q not found", name)
	return optchain.Scenario{}
}

func TestScenarios_Outcomes(t *testing.T) {
	tests := []struct {
		scenario   string
		wantValue  string
		wantAbsent bool
		wantErr    string
	}{
		{
			scenario:   "manual-checks",
			wantAbsent: true,
		},
		{
			scenario:   "empty",
			wantAbsent: true,
		},
		{
			scenario:  "of",
			wantValue: "My Soundcard",
		},
		{
			scenario: "of-nil",
			wantErr:  "optional: value must not be nil",
		},
		{
			scenario:  "ofnullable",
			wantValue: "My Soundcard",
		},
		{
			scenario:   "ofnullable-missing",
			wantAbsent: true,
		},
		{
			scenario:  "ifpresent",
			wantValue: "My Soundcard",
		},
		{
			scenario:  "orelse",
			wantValue: "Default soundcard",
		},
		{
			scenario: "orelsethrow",
			wantErr:  "soundcard has no usb attached",
		},
		{
			scenario:  "filter",
			wantValue: "USB 3.0 found",
		},
		{
			scenario:   "filter-mismatch",
			wantAbsent: true,
		},
		{
			scenario:  "safe-navigation",
			wantValue: "USB version 3.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.scenario, func(t *testing.T) {
			out := scenarioByName(t, tt.scenario).Run()

			assert.Equal(t, tt.wantAbsent, out.Absent)

			if tt.wantErr != "" {
				assert.EqualError(t, out.Err, tt.wantErr)
			} else {
				assert.NoError(t, out.Err)
				assert.Equal(t, tt.wantValue, out.Value)
			}
		})
	}
}

func TestScenarios_OfNilRaisesErrNilValue(t *testing.T) {
	out := scenarioByName(t, "of-nil").Run()

	assert.ErrorIs(t, out.Err, optional.ErrNilValue)
}

func TestScenarios_CoverEveryContainerOperation(t *testing.T) {
	names := make([]string, 0)
	for _, sc := range optchain.Scenarios() {
		names = append(names, sc.Name)
		assert.NotEmpty(t, sc.Doc, "scenario %s is missing its doc line", sc.Name)
		assert.NotNil(t, sc.Run, "scenario %s is missing its run function", sc.Name)
	}

	assert.Equal(t, []string{
		"manual-checks",
		"empty",
		"of",
		"of-nil",
		"ofnullable",
		"ofnullable-missing",
		"ifpresent",
		"orelse",
		"orelsethrow",
		"filter",
		"filter-mismatch",
		"safe-navigation",
	}, names)
}

func TestFindScenarios(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantNames []string
		wantErr   bool
	}{
		{
			name:      "no names returns the full set",
			args:      nil,
			wantNames: nil, // verified by length below
		},
		{
			name:      "single name",
			args:      []string{"orelse"},
			wantNames: []string{"orelse"},
		},
		{
			name:      "names keep demonstration order",
			args:      []string{"filter", "empty"},
			wantNames: []string{"empty", "filter"},
		},
		{
			name:      "names are case-insensitive",
			args:      []string{"OrElse"},
			wantNames: []string{"orelse"},
		},
		{
			name:    "unknown name",
			args:    []string{"bogus"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scenarios, err := optchain.FindScenarios(tt.args)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)

			if tt.args == nil {
				assert.Len(t, scenarios, len(optchain.Scenarios()))
				return
			}

			names := make([]string, 0, len(scenarios))
			for _, sc := range scenarios {
				names = append(names, sc.Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}
