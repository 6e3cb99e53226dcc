package rgb

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeChip creates a directory which looks like an exported pwm chip.
func fakeChip(t *testing.T, channels ...int) string {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "export"), nil, 0644))

	for _, ch := range channels {
		p := filepath.Join(dir, fmt.Sprintf("pwm%d", ch))
		require.NoError(t, os.Mkdir(p, 0755))
		for _, attr := range []string{"duty_cycle", "period", "enable"} {
			require.NoError(t, os.WriteFile(filepath.Join(p, attr), nil, 0644))
		}
	}

	return dir
}

func read(t *testing.T, dir string, ch int, attr string) string {
	b, err := os.ReadFile(filepath.Join(dir, fmt.Sprintf("pwm%d", ch), attr))
	require.NoError(t, err)
	return string(b)
}

func TestDuty(t *testing.T) {
	assert.Equal(t, 0, duty(0))
	assert.Equal(t, period, duty(255))
	assert.Equal(t, 501960, duty(128))
}

func TestSetColor(t *testing.T) {
	dir := fakeChip(t, 0, 1, 2)

	l, err := Open(dir, 0, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "1000000", read(t, dir, 0, "period"))
	assert.Equal(t, "1", read(t, dir, 2, "enable"))

	require.NoError(t, l.SetColor(255, 0, 128))
	assert.Equal(t, "1000000", read(t, dir, 0, "duty_cycle"))
	assert.Equal(t, "0", read(t, dir, 1, "duty_cycle"))
	assert.Equal(t, "501960", read(t, dir, 2, "duty_cycle"))

	require.NoError(t, l.Close())
	assert.Equal(t, "0", read(t, dir, 0, "duty_cycle"))
	assert.Equal(t, "0", read(t, dir, 0, "enable"))
}

func TestMissingChip(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope"), 0, 1, 2)
	assert.Error(t, err)
}
