package config

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testPublicKeyPEM(t *testing.T) string {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("marshal public key: %v", err)
	}
	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func TestGuardConfigDefaults(t *testing.T) {
	cfg := GuardConfig{}
	cfg.ApplyDefaults()
	if cfg.AdminRole != "admin" {
		t.Errorf("expected default admin role, got %q", cfg.AdminRole)
	}
	if cfg.Signature.Principal != "internal" {
		t.Errorf("expected signature defaults to be applied, got %+v", cfg.Signature)
	}
}

func TestServiceConfigValidate(t *testing.T) {
	pub := testPublicKeyPEM(t)

	valid := ServiceConfig{Name: "posts-api"}
	valid.Guard.Token.PublicKeyPEM = pub
	valid.Guard.Signature.Secret = "shared-secret"
	valid.ApplyDefaults()
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	missingName := ServiceConfig{}
	missingName.Guard.Token.PublicKeyPEM = pub
	missingName.Guard.Signature.Secret = "shared-secret"
	missingName.ApplyDefaults()
	if err := missingName.Validate(); err == nil {
		t.Fatal("expected error for missing name")
	}

	missingSecret := ServiceConfig{Name: "posts-api"}
	missingSecret.Guard.Token.PublicKeyPEM = pub
	missingSecret.ApplyDefaults()
	if err := missingSecret.Validate(); err == nil {
		t.Fatal("expected error for missing signature secret")
	}
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")

	pub := testPublicKeyPEM(t)
	yaml := fmt.Sprintf(`
name: posts-api
environment: staging
guard:
  token:
    public_key: |
%s
  signature:
    secret: from-yaml-secret
    principal: posts-internal
`, indent(pub, "      "))
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var cfg ServiceConfig
	if err := Load("posts-api", &cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Environment != "staging" {
		t.Errorf("expected staging, got %q", cfg.Environment)
	}
	if cfg.Guard.Signature.Secret != "from-yaml-secret" {
		t.Errorf("expected yaml secret, got %q", cfg.Guard.Signature.Secret)
	}
	if cfg.Guard.Signature.Principal != "posts-internal" {
		t.Errorf("expected yaml principal, got %q", cfg.Guard.Signature.Principal)
	}
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")

	pub := testPublicKeyPEM(t)
	yaml := fmt.Sprintf(`
name: posts-api
guard:
  token:
    public_key: |
%s
  signature:
    secret: from-yaml-secret
`, indent(pub, "      "))
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("GUARD_SIGNATURE_SECRET", "from-env-secret")

	var cfg ServiceConfig
	if err := Load("posts-api", &cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Guard.Signature.Secret != "from-env-secret" {
		t.Errorf("expected env override, got %q", cfg.Guard.Signature.Secret)
	}
}

func TestLoadFillsServiceName(t *testing.T) {
	t.Setenv("GUARD_SIGNATURE_SECRET", "shared-secret")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	yaml := fmt.Sprintf("guard:\n  token:\n    public_key: |\n%s", indent(testPublicKeyPEM(t), "      "))
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var cfg ServiceConfig
	if err := Load("bookmarks-api", &cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Name != "bookmarks-api" {
		t.Errorf("expected name from service, got %q", cfg.Name)
	}
}

// indent prefixes every line for YAML block scalars.
func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n") + "\n"
}
