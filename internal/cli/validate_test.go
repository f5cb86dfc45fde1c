package cli

import (
	"bytes"
	"testing"

	"github.com/aretw0/pomdp/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Voicemail(t *testing.T) {
	var out bytes.Buffer
	err := Validate(fixture("voicemail.pomdp"), fixture("voicemail.policy"), 0, NewPlainPrinter(&out))
	require.NoError(t, err)
	assert.Contains(t, out.String(), "2 states, 3 actions, 2 observations, discount 0.95")
	assert.Contains(t, out.String(), "4 alpha vectors")
	assert.Contains(t, out.String(), "model is valid")
}

func TestValidate_Issues(t *testing.T) {
	env := testutils.WriteTemp(t, "loose.pomdp", `discount: 0.95
states: save delete
actions: ask doSave doDelete
observations: hearSave hearDelete
T: *
uniform
O: ask : save
0.5 0.25
O: ask : delete
0.3 0.7
O: doSave
uniform
O: doDelete
uniform
`)

	var out bytes.Buffer
	err := Validate(env, fixture("voicemail.policy"), 0, NewPlainPrinter(&out))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "found 1 issues")
	assert.Contains(t, out.String(), "O(ask, save): row sums to 0.75")
}

func TestValidate_PolicyWidth(t *testing.T) {
	pol := testutils.WriteTemp(t, "wide.policy", `<Policy><AlphaVector><Vector action="0">1 2 3</Vector></AlphaVector></Policy>`)

	var out bytes.Buffer
	err := Validate(fixture("voicemail.pomdp"), pol, 0, NewPlainPrinter(&out))
	require.Error(t, err)
	assert.Contains(t, out.String(), "alpha vector 0 has 3 coefficients")
}

func TestValidate_ParseError(t *testing.T) {
	err := Validate(fixture("voicemail.yaml"), fixture("voicemail.policy"), 0, NewPlainPrinter(&bytes.Buffer{}))
	assert.Error(t, err)
}
