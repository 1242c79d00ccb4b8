package pkgin

import "time"

const (
	// DefaultBinary is where pkgsrc installs pkgin on NetBSD
	DefaultBinary = "/usr/pkg/bin/pkgin"

	// BinaryName is the executable looked up on PATH
	BinaryName = "pkgin"

	// SearchTrailerLines is the number of summary lines pkgin prints after search results
	SearchTrailerLines = 5

	// PipeDrainDelay bounds how long output is still read after pkgin exits
	// or is killed while a descendant keeps its pipes open
	PipeDrainDelay = time.Second
)

// DefaultArgs is prepended to side-effect verbs (remove, keep, clean, ...)
var DefaultArgs = []string{"-V", "-y"}

// Flags
const (
	flagParsable = "-P"
	flagYes      = "-y"
)

// Verbs understood by the pkgin binary
const (
	VerbRemove       = "remove"
	VerbKeep         = "keep"
	VerbUnkeep       = "unkeep"
	VerbInstall      = "install"
	VerbClean        = "clean"
	VerbUpdate       = "update"
	VerbSearch       = "search"
	VerbShowKeep     = "show-keep"
	VerbShowDeps     = "show-deps"
	VerbShowFullDeps = "show-full-deps"
	VerbShowRevDeps  = "show-rev-deps"
	VerbList         = "list"
	VerbAvail        = "avail"
	VerbProvides     = "provides"
	VerbRequires     = "requires"
	VerbExport       = "export"
	VerbImport       = "import"
	VerbAutoremove   = "autoremove"
	VerbUpgrade      = "upgrade"
	VerbFullUpgrade  = "full-upgrade"
)

// Marker substrings identifying transaction summary lines
const (
	MarkerInstalled   = "to be installed:"
	MarkerUpgraded    = "to be upgraded:"
	MarkerAutoremoved = "to be autoremoved:"
)

// confirmation sent to interactive prompts
const confirmYes = "y\n"

// SearchPrefixes lists the pkgsrc prefixes probed when pkgin is not on PATH
var SearchPrefixes = []string{
	"/usr/pkg/bin",   // NetBSD
	"/opt/pkg/bin",   // macOS / SmartOS bootstrap
	"/opt/local/bin", // SmartOS global zone
}
