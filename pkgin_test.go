package pkgin_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arc-language/pkgin"
)

func TestFacade(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake pkgin binaries are shell scripts")
	}
	bin := filepath.Join(t.TempDir(), "pkgin")
	script := "#!/bin/sh\n" +
		"if [ \"$2\" = list ]; then printf 'foo-1.0 Foo\\n'; exit 0; fi\n" +
		"echo 'pkgin: lock held' >&2; exit 1\n"
	require.NoError(t, os.WriteFile(bin, []byte(script), 0755))

	cfg := pkgin.DefaultConfig()
	cfg.Binary = bin
	mgr := pkgin.NewManager(cfg)

	ok, err := mgr.Installed(context.Background(), "foo")
	require.NoError(t, err)
	assert.True(t, ok)

	err = mgr.Update(context.Background())
	var cerr *pkgin.CommandError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "pkgin: lock held", cerr.Stderr)
	assert.ErrorIs(t, err, pkgin.ErrCommandFailed)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("binary: /opt/pkg/bin/pkgin\n"), 0644))

	cfg, err := pkgin.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/pkg/bin/pkgin", cfg.Binary)
	assert.Equal(t, []string{"-V", "-y"}, cfg.DefaultArgs)
}

func TestParsePackageToken(t *testing.T) {
	p, err := pkgin.ParsePackageToken("lib-foo-bar-1.0.2")
	require.NoError(t, err)
	assert.Equal(t, "lib-foo-bar", p.Name)
	assert.Equal(t, "1.0.2", p.Version)
}
