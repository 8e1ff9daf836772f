package compare

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Discover(t *testing.T) {
	root := t.TempDir()
	a := writeFiles(t, filepath.Join(root, "a"), map[string]string{
		"b.ini":        "",
		"a.ini":        "",
		"AJCD+old.ini": "",
		"notes.txt":    "",
	})
	b := writeFiles(t, filepath.Join(root, "b"), map[string]string{
		"a.ini":  "",
		"c.ini":  "",
		"DJCD+x": "",
	})
	require.NoError(t, os.MkdirAll(filepath.Join(b, "sub.ini"), 0755))

	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{"Union In Folder Order", Config{}, []string{"AJCD+old.ini", "a.ini", "b.ini", "notes.txt", "DJCD+x", "c.ini"}},
		{"Filter", Config{Filter: "*.ini"}, []string{"AJCD+old.ini", "a.ini", "b.ini", "c.ini"}},
		{"Ignore Substrings", Config{IgnoreSubstrings: []string{"AJCD+", "DJCD+"}}, []string{"a.ini", "b.ini", "notes.txt", "c.ini"}},
		{"Filter And Ignore", Config{Filter: "*.ini", IgnoreSubstrings: []string{"AJCD+", ""}}, []string{"a.ini", "b.ini", "c.ini"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newTestService(t, tt.cfg).Discover([]string{a, b})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_DiscoverMissingFolder(t *testing.T) {
	a := writeFiles(t, filepath.Join(t.TempDir(), "a"), map[string]string{"app.ini": ""})

	got, err := newTestService(t, Config{}).Discover([]string{a, filepath.Join(t.TempDir(), "absent")})
	require.NoError(t, err)
	assert.Equal(t, []string{"app.ini"}, got)
}

func TestService_DiscoverSymlinks(t *testing.T) {
	root := t.TempDir()
	target := writeFiles(t, filepath.Join(root, "target"), map[string]string{"real.ini": "k=1\n"})
	a := filepath.Join(root, "a")
	require.NoError(t, os.MkdirAll(a, 0755))

	if err := os.Symlink(filepath.Join(target, "real.ini"), filepath.Join(a, "linked.ini")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	require.NoError(t, os.Symlink(target, filepath.Join(a, "dir.ini")))
	require.NoError(t, os.Symlink(filepath.Join(root, "nowhere"), filepath.Join(a, "broken.ini")))

	got, err := newTestService(t, Config{}).Discover([]string{a})
	require.NoError(t, err)
	assert.Equal(t, []string{"linked.ini"}, got)
}

func TestService_DiscoverBadFilter(t *testing.T) {
	_, err := newTestService(t, Config{Filter: "[a-"}).Discover([]string{t.TempDir()})
	assert.ErrorContains(t, err, "invalid filter")
}
