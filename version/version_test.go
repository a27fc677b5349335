package version

import "testing"

func stubBuildVars(t *testing.T, version, commit, buildTime, goVersion string) {
	t.Helper()
	origV, origC, origB, origG := Version, GitCommit, BuildTime, GoVersion
	t.Cleanup(func() {
		Version, GitCommit, BuildTime, GoVersion = origV, origC, origB, origG
	})
	Version, GitCommit, BuildTime, GoVersion = version, commit, buildTime, goVersion
}

func TestGetVersionInfoDev(t *testing.T) {
	stubBuildVars(t, "dev", "", "", "")

	info := GetVersionInfo()
	if info.Version != "dev" {
		t.Errorf("expected dev, got %q", info.Version)
	}
	if info.IsRelease {
		t.Error("dev must not be a release")
	}
	if info.GoVersion == "" {
		t.Error("expected go version from build info")
	}
}

func TestGetVersionInfoStamped(t *testing.T) {
	stubBuildVars(t, "1.2.0", "abc1234", "2025-06-01T12:00:00Z", "go1.26.0")

	info := GetVersionInfo()
	if !info.IsRelease {
		t.Error("1.2.0 should be a release")
	}
	if info.GitCommit != "abc1234" {
		t.Errorf("expected abc1234, got %q", info.GitCommit)
	}
	if info.BuildTime != "2025-06-01T12:00:00Z" {
		t.Errorf("unexpected build time %q", info.BuildTime)
	}
	if info.GoVersion != "go1.26.0" {
		t.Errorf("stamped go version must win, got %q", info.GoVersion)
	}
}

func TestDirtyVersionIsNotARelease(t *testing.T) {
	stubBuildVars(t, "1.2.0-dirty", "abc1234", "", "")

	if GetVersionInfo().IsRelease {
		t.Error("a dirty build must not be a release")
	}
}

func TestGetShortVersion(t *testing.T) {
	stubBuildVars(t, "1.2.0", "abc1234", "", "go1.26.0")

	if got := GetShortVersion(); got != "1.2.0-abc1234" {
		t.Errorf("expected 1.2.0-abc1234, got %q", got)
	}
}

func TestGetShortVersionWithoutCommit(t *testing.T) {
	stubBuildVars(t, "1.2.0", "", "", "go1.26.0")

	// Test binaries carry no VCS stamp, so the commit stays empty.
	if got := GetShortVersion(); got != "1.2.0" {
		t.Errorf("expected bare version, got %q", got)
	}
}

func TestShortCommitTruncates(t *testing.T) {
	if got := shortCommit("0123456789abcdef"); got != "0123456" {
		t.Errorf("expected 7-char commit, got %q", got)
	}
	if got := shortCommit("abc"); got != "abc" {
		t.Errorf("short revisions pass through, got %q", got)
	}
}
