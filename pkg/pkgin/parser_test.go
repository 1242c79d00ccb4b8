package pkgin

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchLegend = "\n" +
	"=: package is installed and up-to-date\n" +
	"<: package is installed but newer version is available\n" +
	">: installed package has a greater version than available package\n"

func TestParsePackageToken(t *testing.T) {
	tests := []struct {
		token   string
		name    string
		version string
	}{
		{"foo-1.0", "foo", "1.0"},
		{"lib-foo-bar-1.0.2", "lib-foo-bar", "1.0.2"},
		{"p5-Net-SSLeay-1.92nb1", "p5-Net-SSLeay", "1.92nb1"},
		{"  ruby31-base-3.1.4\t", "ruby31-base", "3.1.4"},
		{"x-y", "x", "y"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			pkg, err := ParsePackageToken(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.name, pkg.Name)
			assert.Equal(t, tt.version, pkg.Version)
			assert.Nil(t, pkg.State)
		})
	}
}

func TestParsePackageTokenRoundTrip(t *testing.T) {
	for _, token := range []string{"foo-1.0", "gettext-lib-0.22", "py311-setuptools-69.0.2", "zstd-1.5.5nb1"} {
		pkg, err := ParsePackageToken(token)
		require.NoError(t, err)
		assert.Equal(t, token, pkg.Name+"-"+pkg.Version)
		assert.Equal(t, token, pkg.String())
	}
}

func TestParsePackageTokenInvalid(t *testing.T) {
	for _, token := range []string{"", "nohyphen", "foo-"} {
		_, err := ParsePackageToken(token)
		assert.ErrorIs(t, err, ErrMalformedOutput, token)
	}
}

func TestParseList(t *testing.T) {
	packages, err := ParseList("foo-1.0 A description\nbar-2.1 Another one\n")
	require.NoError(t, err)
	assert.Equal(t, []Package{
		{Name: "foo", Version: "1.0", Description: "A description"},
		{Name: "bar", Version: "2.1", Description: "Another one"},
	}, packages)
}

func TestParseListPaddedDescription(t *testing.T) {
	packages, err := ParseList("gmake-4.4.1      GNU version of 'make' utility  \n")
	require.NoError(t, err)
	require.Len(t, packages, 1)
	assert.Equal(t, "GNU version of 'make' utility", packages[0].Description)
}

func TestParseListEmpty(t *testing.T) {
	packages, err := ParseList("")
	require.NoError(t, err)
	assert.Empty(t, packages)
}

func TestParseListMalformed(t *testing.T) {
	_, err := ParseList("foo-1.0 ok\nbroken line\n")
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, VerbList, perr.Op)
	assert.Equal(t, "broken line", perr.Line)
	assert.ErrorIs(t, err, ErrMalformedOutput)
}

func TestParseSearch(t *testing.T) {
	output := "foo-1.0 = The foo package\n" +
		"bar-2.1 < Bar tool\n" +
		"baz-0.3 > Baz\n" +
		"qux-4.0   Qux without marker\n" +
		searchLegend

	packages, err := ParseSearch(output)
	require.NoError(t, err)
	require.Len(t, packages, 4)

	want := []struct {
		name  string
		state *State
		desc  string
	}{
		{"foo", statePtr(StateInstalled), "The foo package"},
		{"bar", statePtr(StateOutdated), "Bar tool"},
		{"baz", statePtr(StateGreater), "Baz"},
		{"qux", nil, "Qux without marker"},
	}
	for i, w := range want {
		assert.Equal(t, w.name, packages[i].Name)
		assert.Equal(t, w.state, packages[i].State, w.name)
		assert.Equal(t, w.desc, packages[i].Description)
	}
}

func TestParseSearchMarkers(t *testing.T) {
	tests := []struct {
		marker string
		state  *State
	}{
		{"=", statePtr(StateInstalled)},
		{"<", statePtr(StateOutdated)},
		{">", statePtr(StateGreater)},
		{"?", nil},
	}

	for _, tt := range tests {
		t.Run(tt.marker, func(t *testing.T) {
			packages, err := ParseSearch("pkg-1.0 " + tt.marker + "   some description\n" + searchLegend)
			require.NoError(t, err)
			require.Len(t, packages, 1)
			assert.Equal(t, "pkg", packages[0].Name)
			assert.Equal(t, "1.0", packages[0].Version)
			assert.Equal(t, tt.state, packages[0].State)
		})
	}
}

func TestParseSearchNoResults(t *testing.T) {
	packages, err := ParseSearch("No results found for foo\n")
	require.NoError(t, err)
	assert.Empty(t, packages)
}

func TestParseShowKeep(t *testing.T) {
	packages, err := ParseShowKeep("curl-8.5.0 Client that groks URLs\nvim-9.0.2116 Vim editor\n")
	require.NoError(t, err)
	assert.Equal(t, []Package{
		{Name: "curl", Version: "8.5.0"},
		{Name: "vim", Version: "9.0.2116"},
	}, packages)
}

func TestParseDeps(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   []Package
	}{
		{
			name:   "banner and dependencies",
			output: "direct dependencies for curl-8.5.0\n\tlibidn2-2.3.4\n\tnghttp2-1.58.0\n",
			want: []Package{
				{Name: "libidn2", Version: "2.3.4"},
				{Name: "nghttp2", Version: "1.58.0"},
			},
		},
		{
			name:   "banner only",
			output: "direct dependencies for zlib-1.3\n",
		},
		{
			name:   "empty",
			output: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packages, err := ParseDeps(VerbShowDeps, tt.output)
			require.NoError(t, err)
			assert.Equal(t, tt.want, packages)
		})
	}
}

func TestParseDepsMalformedReportsVerb(t *testing.T) {
	for _, verb := range []string{VerbShowDeps, VerbShowFullDeps, VerbShowRevDeps} {
		_, err := ParseDeps(verb, "reverse dependencies for zlib-1.3\n\tnotatoken\n")
		require.Error(t, err)

		var perr *ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, verb, perr.Op)
		assert.ErrorIs(t, err, ErrMalformedOutput)
	}
}

func TestParseFileList(t *testing.T) {
	files := ParseFileList("Information for curl-8.5.0:\n\tlibcurl.so.4\n\tlibz.so.1\n")
	assert.Equal(t, []string{"libcurl.so.4", "libz.so.1"}, files)

	assert.Empty(t, ParseFileList(""))
	assert.Empty(t, ParseFileList("header only\n"))
}

func TestParseExport(t *testing.T) {
	entries, err := ParseExport("# pkgin export\nwww/curl\nsecurity/openssl\n")
	require.NoError(t, err)
	assert.Equal(t, []ExportEntry{
		{Location: "www", PackageName: "curl"},
		{Location: "security", PackageName: "openssl"},
	}, entries)
}

func TestParseExportReadsSecondSegment(t *testing.T) {
	entries, err := ParseExport("# pkgin export\nwip/py-foo/extra\n")
	require.NoError(t, err)
	assert.Equal(t, []ExportEntry{{Location: "wip", PackageName: "py-foo"}}, entries)
}

func TestParseExportMalformed(t *testing.T) {
	_, err := ParseExport("header\nnoslash\n")
	assert.ErrorIs(t, err, ErrMalformedOutput)
}

func TestParseTransaction(t *testing.T) {
	output := "calculating dependencies...done.\n" +
		"4 packages to be installed: foo-1.0 bar-2.0 (1.2M to download, 3.4M to install)\n" +
		"proceed ? [Y/n] \n"

	tx, err := ParseTransaction(output, MarkerInstalled, true)
	require.NoError(t, err)
	assert.False(t, tx.Noop)
	assert.Equal(t, []Package{{Name: "foo", Version: "1.0"}, {Name: "bar", Version: "2.0"}}, tx.Packages)
	assert.Equal(t, "1.2M", tx.DownloadSize)
	assert.Equal(t, "3.4M", tx.InstallSize)
}

func TestParseTransactionWithoutSizes(t *testing.T) {
	output := "2 packages to be autoremoved: libffi-3.4.4 gettext-lib-0.22 (5M to be freed)\n"

	tx, err := ParseTransaction(output, MarkerAutoremoved, false)
	require.NoError(t, err)
	assert.Equal(t, []Package{{Name: "libffi", Version: "3.4.4"}, {Name: "gettext-lib", Version: "0.22"}}, tx.Packages)
	assert.Empty(t, tx.DownloadSize)
	assert.Empty(t, tx.InstallSize)
}

func TestParseTransactionNoop(t *testing.T) {
	tx, err := ParseTransaction("nothing to do.\n", MarkerInstalled, true)
	require.NoError(t, err)
	require.NotNil(t, tx)
	assert.True(t, tx.Noop)
	assert.Empty(t, tx.Packages)
}

func TestParseUpgrade(t *testing.T) {
	output := "calculating dependencies...done.\n" +
		"2 packages to be upgraded: curl-8.5.0 openssl-3.1.4\n" +
		"3 packages to be installed: curl-8.5.0 openssl-3.1.4 nghttp2-1.58.0 (4.1M to download, 12M to install)\n"

	up, err := ParseUpgrade(output)
	require.NoError(t, err)
	assert.False(t, up.Noop)
	assert.Equal(t, []Package{{Name: "curl", Version: "8.5.0"}, {Name: "openssl", Version: "3.1.4"}}, up.Upgraded)
	assert.Len(t, up.Installed, 3)
	assert.Equal(t, "4.1M", up.DownloadSize)
	assert.Equal(t, "12M", up.InstallSize)
}

func TestParseUpgradeInstallOnly(t *testing.T) {
	up, err := ParseUpgrade("1 packages to be installed: zstd-1.5.5 (500K to download, 2M to install)\n")
	require.NoError(t, err)
	assert.False(t, up.Noop)
	assert.Empty(t, up.Upgraded)
	assert.Equal(t, []Package{{Name: "zstd", Version: "1.5.5"}}, up.Installed)
}

func TestParseUpgradeNoop(t *testing.T) {
	up, err := ParseUpgrade("nothing to upgrade.\n")
	require.NoError(t, err)
	assert.True(t, up.Noop)
}

func statePtr(s State) *State {
	return &s
}
