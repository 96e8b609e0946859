package sqlite

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataSourceName(t *testing.T) {
	dsn := dataSourceName("/var/lib/dumbed/my layouts.db")

	require.True(t, strings.HasPrefix(dsn, "file:/var/lib/dumbed/my%20layouts.db?"), dsn)

	u, err := url.Parse(dsn)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/dumbed/my layouts.db", u.Path)
	assert.Equal(t, connectionPragmas, u.Query()["_pragma"])
	assert.Equal(t, "immediate", u.Query().Get("_txlock"))
}
