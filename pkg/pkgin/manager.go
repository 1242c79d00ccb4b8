package pkgin

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

func NewPackageManager(cfg *Config) *PackageManager {
	if cfg == nil {
		cfg = &Config{}
	}

	if cfg.Binary == "" {
		if path, err := DetectBinary(); err == nil {
			cfg.Binary = path
		} else {
			cfg.Binary = DefaultBinary
		}
	}
	if cfg.DefaultArgs == nil {
		cfg.DefaultArgs = append([]string(nil), DefaultArgs...)
	}

	logger := cfg.Logger
	if logger == nil {
		if cfg.Debug {
			logger = log.New(os.Stdout, "[PKGIN] ", log.LstdFlags)
		} else {
			logger = log.New(io.Discard, "", 0)
		}
	}

	runner := cfg.Runner
	if runner == nil {
		runner = NewClient(cfg.Binary, cfg.Timeout, logger).WithEnv(cfg.Env...)
	}

	return &PackageManager{
		runner: runner,
		config: cfg,
		logger: logger,
	}
}

// Binary returns the configured pkgin executable
func (pm *PackageManager) Binary() string {
	return pm.config.Binary
}

func (pm *PackageManager) run(ctx context.Context, stdin io.Reader, args ...string) (string, error) {
	pm.logger.Printf("Running: pkgin %s", strings.Join(args, " "))
	out, err := pm.runner.Run(ctx, stdin, args...)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// execute runs a side-effect verb behind the default argument prefix
func (pm *PackageManager) execute(ctx context.Context, verb string, args ...string) error {
	argv := make([]string, 0, len(pm.config.DefaultArgs)+1+len(args))
	argv = append(argv, pm.config.DefaultArgs...)
	argv = append(argv, verb)
	argv = append(argv, args...)
	_, err := pm.run(ctx, nil, argv...)
	return err
}

// query runs a read-only verb in parsable mode
func (pm *PackageManager) query(ctx context.Context, verb string, args ...string) (string, error) {
	return pm.run(ctx, nil, append([]string{flagParsable, verb}, args...)...)
}

func checkPackages(op string, pkgs []string) error {
	if len(pkgs) == 0 {
		return fmt.Errorf("%s: %w: at least one package is required", op, ErrInvalidPackage)
	}
	for _, p := range pkgs {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%s: %w: empty package name", op, ErrInvalidPackage)
		}
	}
	return nil
}

// Remove removes packages and the packages depending on them
func (pm *PackageManager) Remove(ctx context.Context, pkgs ...string) error {
	if err := checkPackages(VerbRemove, pkgs); err != nil {
		return err
	}
	return pm.execute(ctx, VerbRemove, pkgs...)
}

// Keep marks packages as non auto-removable
func (pm *PackageManager) Keep(ctx context.Context, pkgs ...string) error {
	if err := checkPackages(VerbKeep, pkgs); err != nil {
		return err
	}
	return pm.execute(ctx, VerbKeep, pkgs...)
}

// Unkeep marks packages as auto-removable
func (pm *PackageManager) Unkeep(ctx context.Context, pkgs ...string) error {
	if err := checkPackages(VerbUnkeep, pkgs); err != nil {
		return err
	}
	return pm.execute(ctx, VerbUnkeep, pkgs...)
}

// Clean empties the package cache
func (pm *PackageManager) Clean(ctx context.Context) error {
	return pm.execute(ctx, VerbClean)
}

// Update refreshes the remote package database
func (pm *PackageManager) Update(ctx context.Context) error {
	return pm.execute(ctx, VerbUpdate)
}

// Install installs or upgrades packages
func (pm *PackageManager) Install(ctx context.Context, pkgs ...string) (*Transaction, error) {
	if err := checkPackages(VerbInstall, pkgs); err != nil {
		return nil, err
	}
	out, err := pm.run(ctx, nil, append([]string{flagYes, VerbInstall}, pkgs...)...)
	if err != nil {
		return nil, err
	}
	return ParseTransaction(out, MarkerInstalled, true)
}

// Search looks up packages matching term
func (pm *PackageManager) Search(ctx context.Context, term string) ([]Package, error) {
	if term == "" {
		return nil, fmt.Errorf("%s: %w: search term is required", VerbSearch, ErrInvalidPackage)
	}
	out, err := pm.query(ctx, VerbSearch, term)
	if err != nil {
		return nil, err
	}
	return ParseSearch(out)
}

// ShowKeep lists packages marked as non auto-removable
func (pm *PackageManager) ShowKeep(ctx context.Context) ([]Package, error) {
	out, err := pm.query(ctx, VerbShowKeep)
	if err != nil {
		return nil, err
	}
	return ParseShowKeep(out)
}

// ShowDeps lists the direct dependencies of pkg
func (pm *PackageManager) ShowDeps(ctx context.Context, pkg string) ([]Package, error) {
	return pm.showDeps(ctx, VerbShowDeps, pkg)
}

// ShowFullDeps lists the dependencies of pkg recursively
func (pm *PackageManager) ShowFullDeps(ctx context.Context, pkg string) ([]Package, error) {
	return pm.showDeps(ctx, VerbShowFullDeps, pkg)
}

// ShowRevDeps lists the packages depending on pkg recursively
func (pm *PackageManager) ShowRevDeps(ctx context.Context, pkg string) ([]Package, error) {
	return pm.showDeps(ctx, VerbShowRevDeps, pkg)
}

func (pm *PackageManager) showDeps(ctx context.Context, verb, pkg string) ([]Package, error) {
	if err := checkPackages(verb, []string{pkg}); err != nil {
		return nil, err
	}
	out, err := pm.query(ctx, verb, pkg)
	if err != nil {
		return nil, err
	}
	return ParseDeps(verb, out)
}

// List lists installed packages
func (pm *PackageManager) List(ctx context.Context) ([]Package, error) {
	return pm.list(ctx, VerbList)
}

// Avail lists packages available from the repositories
func (pm *PackageManager) Avail(ctx context.Context) ([]Package, error) {
	return pm.list(ctx, VerbAvail)
}

func (pm *PackageManager) list(ctx context.Context, verb string) ([]Package, error) {
	out, err := pm.query(ctx, verb)
	if err != nil {
		return nil, err
	}
	return ParseList(out)
}

// Installed reports whether a package named name is installed
func (pm *PackageManager) Installed(ctx context.Context, name string) (bool, error) {
	packages, err := pm.List(ctx)
	if err != nil {
		return false, err
	}
	for _, p := range packages {
		if p.Name == name {
			return true, nil
		}
	}
	return false, nil
}

// Provides lists the shared libraries pkg provides
func (pm *PackageManager) Provides(ctx context.Context, pkg string) ([]string, error) {
	return pm.fileList(ctx, VerbProvides, pkg)
}

// Requires lists the shared libraries pkg requires
func (pm *PackageManager) Requires(ctx context.Context, pkg string) ([]string, error) {
	return pm.fileList(ctx, VerbRequires, pkg)
}

func (pm *PackageManager) fileList(ctx context.Context, verb, pkg string) ([]string, error) {
	if err := checkPackages(verb, []string{pkg}); err != nil {
		return nil, err
	}
	out, err := pm.run(ctx, nil, verb, pkg)
	if err != nil {
		return nil, err
	}
	return ParseFileList(out), nil
}

// Export lists the non auto-removable packages as pkgsrc locations. When
// filename is not empty the raw output is written there first, unmodified.
func (pm *PackageManager) Export(ctx context.Context, filename string) ([]ExportEntry, error) {
	out, err := pm.run(ctx, nil, VerbExport)
	if err != nil {
		return nil, err
	}
	if filename != "" {
		pm.logger.Printf("Saving export to %s", filename)
		if err := os.WriteFile(filename, []byte(out), 0644); err != nil {
			return nil, fmt.Errorf("writing export: %w", err)
		}
	}
	return ParseExport(out)
}

// ExportTo is Export writing the raw output to w
func (pm *PackageManager) ExportTo(ctx context.Context, w io.Writer) ([]ExportEntry, error) {
	out, err := pm.run(ctx, nil, VerbExport)
	if err != nil {
		return nil, err
	}
	if _, err := io.WriteString(w, out); err != nil {
		return nil, fmt.Errorf("writing export: %w", err)
	}
	return ParseExport(out)
}

// Import installs and keeps the packages listed in filename. Lists
// compressed with gzip, xz or zstd are decompressed to a temporary file first.
func (pm *PackageManager) Import(ctx context.Context, filename string) (*Transaction, error) {
	if filename == "" {
		return nil, fmt.Errorf("%s: %w: import file is required", VerbImport, ErrInvalidPackage)
	}
	path, cleanup, err := prepareImportList(filename)
	if err != nil {
		return nil, err
	}
	defer cleanup()
	if path != filename {
		pm.logger.Printf("Decompressed %s to %s", filename, path)
	}

	out, err := pm.run(ctx, nil, flagYes, VerbImport, path)
	if err != nil {
		return nil, err
	}
	return ParseTransaction(out, MarkerInstalled, true)
}

// Autoremove removes orphan dependencies, answering the confirmation prompt
func (pm *PackageManager) Autoremove(ctx context.Context) (*Transaction, error) {
	out, err := pm.run(ctx, strings.NewReader(confirmYes), VerbAutoremove)
	if err != nil {
		return nil, err
	}
	return ParseTransaction(out, MarkerAutoremoved, false)
}

// Upgrade upgrades the keep packages to their newer versions
func (pm *PackageManager) Upgrade(ctx context.Context) (*Upgrade, error) {
	return pm.upgrade(ctx, VerbUpgrade)
}

// FullUpgrade upgrades every installed package
func (pm *PackageManager) FullUpgrade(ctx context.Context) (*Upgrade, error) {
	return pm.upgrade(ctx, VerbFullUpgrade)
}

func (pm *PackageManager) upgrade(ctx context.Context, verb string) (*Upgrade, error) {
	out, err := pm.run(ctx, nil, flagYes, verb)
	if err != nil {
		return nil, err
	}
	return ParseUpgrade(out)
}
