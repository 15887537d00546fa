// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim_test

import (
	"log/slog"
	"strings"
	"testing"

	ls "github.com/db47h/logicsim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	c, err := ls.LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, ls.DefaultConfig(), c)

	c, err = ls.LoadConfig(strings.NewReader("input_default: floating\nlog_level: debug\n"))
	require.NoError(t, err)
	assert.Equal(t, ls.Floating, c.InputDefault)
	assert.Equal(t, slog.LevelDebug, c.SlogLevel())

	c, err = ls.LoadConfig(strings.NewReader("log_level: warn\n"))
	require.NoError(t, err)
	assert.Equal(t, ls.PullDown, c.InputDefault)
	assert.Equal(t, slog.LevelWarn, c.SlogLevel())

	for _, in := range []string{
		"input_default: 1\n",
		"input_default: high\n",
		"log_level: loud\n",
		"input_default: [pullUp]\n",
	} {
		_, err = ls.LoadConfig(strings.NewReader(in))
		assert.Error(t, err, in)
	}
}
