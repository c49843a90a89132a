package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapLookup(t *testing.T) {
	m := Map{"SET": "value", "EMPTY": ""}

	tests := []struct {
		name      string
		key       string
		wantValue string
		wantOK    bool
	}{
		{name: "set variable", key: "SET", wantValue: "value", wantOK: true},
		{name: "empty variable is present", key: "EMPTY", wantValue: "", wantOK: true},
		{name: "missing variable", key: "MISSING", wantValue: "", wantOK: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, ok := m.Lookup(tc.key)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantValue, v)
		})
	}
}

func TestGet(t *testing.T) {
	m := Map{"BRANCH_NAME": "main", "EMPTY": ""}

	got := Get(m, "BRANCH_NAME")
	require.NotNil(t, got)
	assert.Equal(t, "main", *got)

	empty := Get(m, "EMPTY")
	require.NotNil(t, empty, "empty value must not be treated as absent")
	assert.Equal(t, "", *empty)

	assert.Nil(t, Get(m, "MISSING"))
}

func TestHas(t *testing.T) {
	m := Map{"EMPTY": ""}
	assert.True(t, Has(m, "EMPTY"))
	assert.False(t, Has(m, "MISSING"))
}

func TestOSLookup(t *testing.T) {
	t.Setenv("HELLO_CI_ENV_TEST", "present")
	t.Setenv("HELLO_CI_ENV_EMPTY", "")

	v, ok := OS{}.Lookup("HELLO_CI_ENV_TEST")
	assert.True(t, ok)
	assert.Equal(t, "present", v)

	v, ok = OS{}.Lookup("HELLO_CI_ENV_EMPTY")
	assert.True(t, ok)
	assert.Empty(t, v)

	_, ok = OS{}.Lookup("HELLO_CI_ENV_DEFINITELY_NOT_SET")
	assert.False(t, ok)
}
