package exceptions_test

import (
	"errors"
	"strconv"
	"testing"

	E "github.com/sagernet/sing-deque/common/exceptions"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	require.EqualError(t, E.New("unknown step ", "pop"), "unknown step pop")
}

func TestCause(t *testing.T) {
	_, parseErr := strconv.Atoi("x")
	err := E.Cause(parseErr, "parse item ", 2)
	require.EqualError(t, err, "parse item 2: "+parseErr.Error())
	require.True(t, errors.Is(err, strconv.ErrSyntax))
	require.NoError(t, E.Cause(nil, "nothing"))
}
