package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolate points the config root and .env lookup at fresh temp dirs and
// clears the variables the loader reads.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("APPDATA", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, k := range []string{"DISCORD_TOKEN", "GUILD_ID", "DISCORD_GUILD_ID", "CHANEDIT_EDITOR", "CHANEDIT_WORKERS", "CHANEDIT_TIMEOUT"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	chdir(t, t.TempDir())
}

func writeProfile(t *testing.T, label string, cfg *Config) {
	t.Helper()
	if _, err := CreateConfig(label, cfg); err != nil {
		t.Fatal(err)
	}
	if err := SwitchConfig(label); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMergedDefaults(t *testing.T) {
	isolate(t)

	cfg, used, err := LoadMerged(Options{})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Workers != 4 || cfg.Timeout != "30s" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if used == "" {
		t.Fatal("expected a description of the config source")
	}
	if !errors.Is(cfg.Validate(), ErrMissingToken) || !errors.Is(cfg.Validate(), ErrMissingGuild) {
		t.Fatalf("Validate() = %v", cfg.Validate())
	}
}

func TestLoadMergedPrecedence(t *testing.T) {
	isolate(t)

	profile := DefaultConfig()
	profile.Token = "profile-token"
	profile.GuildID = "111"
	profile.Editor = "nano"
	profile.Workers = 2
	writeProfile(t, "work", profile)

	cfg, used, err := LoadMerged(Options{})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Token != "profile-token" || cfg.GuildID != "111" || cfg.Editor != "nano" || cfg.Workers != 2 {
		t.Fatalf("profile not loaded: %+v", cfg)
	}
	if filepath.Base(used) != "work.yaml" {
		t.Fatalf("used = %q", used)
	}

	t.Setenv("DISCORD_TOKEN", "env-token")
	t.Setenv("GUILD_ID", "222")
	t.Setenv("CHANEDIT_WORKERS", "6")

	cfg, _, err = LoadMerged(Options{})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Token != "env-token" || cfg.GuildID != "222" || cfg.Workers != 6 {
		t.Fatalf("environment should override the profile: %+v", cfg)
	}

	cfg, _, err = LoadMerged(Options{Token: "flag-token", GuildID: "333", Timeout: 5 * time.Second})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Token != "flag-token" || cfg.GuildID != "333" {
		t.Fatalf("flags should override the environment: %+v", cfg)
	}
	if d, _ := cfg.RequestTimeout(); d != 5*time.Second {
		t.Fatalf("timeout = %v", d)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMergedSources(t *testing.T) {
	isolate(t)

	profile := DefaultConfig()
	profile.Editor = "nano"
	writeProfile(t, "work", profile)

	t.Setenv("DISCORD_GUILD_ID", "222")
	t.Setenv("CHANEDIT_WORKERS", "6")

	cfg, _, err := LoadMerged(Options{Token: "flag-token"})
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]string{
		"token":    "flag",
		"guild_id": "env DISCORD_GUILD_ID",
		"workers":  "env CHANEDIT_WORKERS",
		"editor":   "profile",
	}
	for key, src := range want {
		if cfg.Sources[key] != src {
			t.Errorf("source of %s = %q, want %q", key, cfg.Sources[key], src)
		}
	}

	var out strings.Builder
	cfg.Fprint(&out)
	if !strings.Contains(out.String(), " -editor: nano  (profile)\n") {
		t.Fatalf("Fprint output:\n%s", out.String())
	}
	if strings.Contains(out.String(), "flag-token") {
		t.Fatal("token printed in clear")
	}

	cfg, _, err = LoadMerged(Options{IgnoreConfig: true})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Sources["editor"] != "default" {
		t.Fatalf("source of editor = %q with profiles ignored", cfg.Sources["editor"])
	}
}

func TestLoadMergedIgnoreConfig(t *testing.T) {
	isolate(t)

	profile := DefaultConfig()
	profile.Token = "profile-token"
	writeProfile(t, "work", profile)

	cfg, _, err := LoadMerged(Options{IgnoreConfig: true})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Token != "" {
		t.Fatalf("profile should be ignored, got token %q", cfg.Token)
	}
}

func TestLoadMergedEnvFile(t *testing.T) {
	isolate(t)

	if err := os.WriteFile(".env", []byte("DISCORD_TOKEN=dotenv-token\nGUILD_ID=444\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, _, err := LoadMerged(Options{})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Token != "dotenv-token" || cfg.GuildID != "444" {
		t.Fatalf(".env not applied: %+v", cfg)
	}
}

func TestValidateGuildID(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Token = "x"
	cfg.GuildID = "not-a-number"

	if err := cfg.Validate(); !errors.Is(err, ErrInvalidGuild) {
		t.Fatalf("Validate() = %v", err)
	}
}

func TestSwitchAndList(t *testing.T) {
	isolate(t)

	if _, err := CreateConfig("b", DefaultConfig()); err != nil {
		t.Fatal(err)
	}
	if _, err := CreateConfig("a", DefaultConfig()); err != nil {
		t.Fatal(err)
	}
	if _, err := CreateConfig("a", DefaultConfig()); !errors.Is(err, os.ErrExist) {
		t.Fatalf("duplicate create: %v", err)
	}
	if err := SwitchConfig("missing"); err == nil {
		t.Fatal("switching to a missing profile should fail")
	}
	if err := SwitchConfig("b"); err != nil {
		t.Fatal(err)
	}

	list, err := ListConfigs()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0].Label != "a" || list[1].Label != "b" || !list[1].Active || list[0].Active {
		t.Fatalf("got %+v", list)
	}
}

func TestRemoveConfig(t *testing.T) {
	isolate(t)

	writeProfile(t, "work", DefaultConfig())
	if _, err := CreateConfig("spare", DefaultConfig()); err != nil {
		t.Fatal(err)
	}

	if err := RemoveConfig("work", false); err == nil {
		t.Fatal("removing the active profile without force should fail")
	}
	if err := RemoveConfig("spare", false); err != nil {
		t.Fatal(err)
	}
	if err := RemoveConfig("work", true); err != nil {
		t.Fatal(err)
	}
	if _, err := CurrentLabel(); !errors.Is(err, ErrNoConfig) {
		t.Fatalf("CurrentLabel() error = %v, want ErrNoConfig", err)
	}
	if err := RemoveConfig("work", true); err == nil {
		t.Fatal("removing a missing profile should fail")
	}
}

func TestConfigPathByLabelRejectsPaths(t *testing.T) {
	if _, err := ConfigPathByLabel("../evil"); err == nil {
		t.Fatal("expected error")
	}
}

func TestRedact(t *testing.T) {
	if got := redact("abcdefghijkl"); got != "abcd…ijkl" {
		t.Fatalf("got %q", got)
	}
	if got := redact(""); got != "(not set)" {
		t.Fatalf("got %q", got)
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}
