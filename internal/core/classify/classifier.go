package classify

// PackageRegistry is the external installed-package registry. Lookups may
// fail for packages uninstalled between event capture and query time.
type PackageRegistry interface {
	// IsLaunchable reports whether the package has a launch entry point.
	IsLaunchable(pkg string) (bool, error)
	// IsHomeLauncher reports whether the package is part of the device's
	// home/launcher resolution set.
	IsHomeLauncher(pkg string) (bool, error)
}

// LabelResolver is the optional display-label lookup some registries
// provide alongside classification.
type LabelResolver interface {
	Label(pkg string) (string, error)
}

// Classifier decides whether a package represents a trackable user-facing
// app. It is a pure query: no caching, no side effects.
type Classifier struct {
	registry PackageRegistry
}

func NewClassifier(registry PackageRegistry) *Classifier {
	return &Classifier{registry: registry}
}

// IsTrackable excludes home launchers and packages without a launch
// affordance. Any registry failure resolves to not trackable; a lookup
// error must never fail the enclosing aggregation.
func (c *Classifier) IsTrackable(pkg string) bool {
	if pkg == "" {
		return false
	}

	home, err := c.registry.IsHomeLauncher(pkg)
	if err != nil || home {
		return false
	}

	launchable, err := c.registry.IsLaunchable(pkg)
	if err != nil {
		return false
	}
	return launchable
}

// LabelFor resolves a display label for the package, falling back to the
// package name when the registry cannot provide one.
func (c *Classifier) LabelFor(pkg string) string {
	resolver, ok := c.registry.(LabelResolver)
	if !ok {
		return pkg
	}
	label, err := resolver.Label(pkg)
	if err != nil || label == "" {
		return pkg
	}
	return label
}
