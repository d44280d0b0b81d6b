package magetasks

import (
	"fmt"
	"strings"
	"time"

	"github.com/magefile/mage/sh"
)

// BuildAll builds the stylo binary with version metadata stamped in.
func BuildAll() error {
	PrintH2Header("Build")

	if err := sh.RunV("go", "build", "-ldflags", Ldflags(gitVersion(), gitCommit(), time.Now().UTC()), "-o", BinPath, MainPackage); err != nil {
		PrintError("Build failed")
		return err
	}

	PrintSuccess(fmt.Sprintf("Built: %s", BinPath))
	return nil
}

// Ldflags returns the linker flags that populate internal/version.
func Ldflags(version, commit string, built time.Time) string {
	pkg := ModulePath + "/internal/version"
	return fmt.Sprintf("-s -w -X '%s.Version=%s' -X '%s.CommitHash=%s' -X '%s.BuildDate=%s'",
		pkg, version, pkg, commit, pkg, built.Format(time.RFC3339))
}

// Clean removes build artifacts.
func Clean() error {
	PrintH2Header("Clean")

	if err := sh.Rm("./bin"); err != nil {
		return err
	}
	if err := sh.Rm("coverage.out"); err != nil {
		return err
	}

	PrintSuccess("Cleaned build artifacts")
	return nil
}

func gitVersion() string {
	out, err := sh.Output("git", "describe", "--tags", "--always", "--dirty", "--match=v*")
	if err != nil || out == "" {
		return "dev"
	}
	return strings.TrimSpace(out)
}

func gitCommit() string {
	out, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil || out == "" {
		return "unknown"
	}
	return strings.TrimSpace(out)
}
