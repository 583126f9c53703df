package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_VerbIDArgument(t *testing.T) {
	cmd, err := Parse("language 3 eng")
	require.NoError(t, err)
	assert.Equal(t, "language", cmd.Verb)
	assert.Equal(t, 3, cmd.ID)
	assert.Equal(t, "eng", cmd.Arg)
}

func TestParse_NoID(t *testing.T) {
	cmd, err := Parse("filter show")
	require.NoError(t, err)
	assert.Equal(t, "filter", cmd.Verb)
	assert.Equal(t, 0, cmd.ID)
	assert.Equal(t, "show", cmd.Arg)
}

func TestParse_VerbOnly(t *testing.T) {
	cmd, err := Parse("remoteoff")
	require.NoError(t, err)
	assert.Equal(t, "remoteoff", cmd.Verb)
	assert.Equal(t, "", cmd.Arg)
}

func TestParse_EmptyIsError(t *testing.T) {
	_, err := Parse("   ")
	assert.Error(t, err)
}

func TestContainer_AddGetDelete(t *testing.T) {
	c := NewContainer()
	require.NoError(t, c.AddCommand("ally 3 add"))

	arg, ok, err := c.GetCommand("ally 3 whatever")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "add", arg)

	require.NoError(t, c.DeleteCommand("ally 3 ignored"))
	_, ok, err = c.GetCommand("ally 3 ignored")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestContainer_AddReplacesSameVerbAndID(t *testing.T) {
	c := NewContainer()
	require.NoError(t, c.AddCommand("ally 3 add"))
	require.NoError(t, c.AddCommand("ally 3 drop"))

	assert.Equal(t, 1, c.Len())
	arg, ok, _ := c.GetCommand("ally 3")
	assert.True(t, ok)
	assert.Equal(t, "drop", arg)
}

func TestContainer_DeleteMissingIsNotAnError(t *testing.T) {
	c := NewContainer()
	assert.NoError(t, c.DeleteCommand("ally 3 add"))
}

func TestContainer_DistinctIDsCoexist(t *testing.T) {
	c := NewContainer()
	require.NoError(t, c.AddCommand("ally 3 add"))
	require.NoError(t, c.AddCommand("ally 7 add"))

	require.NoError(t, c.DeleteCommand("ally 3 ignored"))
	_, ok, _ := c.GetCommand("ally 3")
	assert.False(t, ok)
	_, ok, _ = c.GetCommand("ally 7")
	assert.True(t, ok)
}

func TestRegistry_PerPlayerIsolation(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.AddCommand(5, "ally 3 add"))
	require.NoError(t, r.AddCommand(6, "ally 3 drop"))

	arg, ok, _ := r.GetCommand(5, "ally 3")
	require.True(t, ok)
	assert.Equal(t, "add", arg)

	arg, ok, _ = r.GetCommand(6, "ally 3")
	require.True(t, ok)
	assert.Equal(t, "drop", arg)
}
