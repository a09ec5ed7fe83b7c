package mutengine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConfigValidateRejectsZeroMaxInputSz(t *testing.T) {
	c := Config{MaxInputSz: 0}

	if err := c.Validate(); err == nil {
		t.Fatal("Validate() should reject MaxInputSz < 1")
	}
}

func TestConfigValidateAcceptsEmptySchemaVersion(t *testing.T) {
	c := Config{MaxInputSz: 16}

	if err := c.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil for empty schema_version", err)
	}
}

func TestConfigValidateAcceptsCompatibleSchema(t *testing.T) {
	c := Config{MaxInputSz: 16, SchemaVersion: "1.2.0"}

	if err := c.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil for compatible schema_version", err)
	}
}

func TestConfigValidateRejectsIncompatibleSchema(t *testing.T) {
	c := Config{MaxInputSz: 16, SchemaVersion: "2.0.0"}

	if err := c.Validate(); err == nil {
		t.Fatal("Validate() should reject a schema_version outside SupportedSchema")
	}
}

func TestConfigValidateRejectsMalformedSchema(t *testing.T) {
	c := Config{MaxInputSz: 16, SchemaVersion: "not-a-version"}

	if err := c.Validate(); err == nil {
		t.Fatal("Validate() should reject an unparseable schema_version")
	}
}

func TestLoadConfigParsesAndValidates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.json")

	content := `{"schema_version":"1.1.0","max_input_sz":128,"mutations_per_run":7,"only_printable":true}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.MaxInputSz != 128 || cfg.MutationsPerRun != 7 || !cfg.OnlyPrintable {
		t.Fatalf("LoadConfig() = %+v, fields not populated", cfg)
	}
}

func TestLoadConfigRejectsIncompatibleSchema(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.json")

	content := `{"schema_version":"3.0.0","max_input_sz":128,"mutations_per_run":7}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("LoadConfig() should reject a schema_version outside SupportedSchema")
	}
}

func TestLoadConfigRejectsMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.json")

	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("LoadConfig() should reject malformed JSON")
	}
}

func TestLoadDictionaryRawAndQuotedLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dict.txt")

	content := "# comment\n\nraw_token\n\"quoted token\"\n\"with\\x20escape\"\n\"backslash\\\\end\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	dict, err := LoadDictionary(path)
	if err != nil {
		t.Fatalf("LoadDictionary() error: %v", err)
	}

	got := make([]string, len(dict))
	for i, d := range dict {
		got[i] = string(d)
	}

	want := []string{"raw_token", "quoted token", "with escape", "backslash\\end"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("LoadDictionary() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDictionaryMissingFile(t *testing.T) {
	if _, err := LoadDictionary("/nonexistent/path/dict.txt"); err == nil {
		t.Fatal("LoadDictionary() should error on a missing file")
	}
}

func TestUnquoteDictTokenRejectsDanglingEscape(t *testing.T) {
	if _, err := unquoteDictToken("abc\\"); err == nil {
		t.Fatal("unquoteDictToken() should reject a trailing bare backslash")
	}
}

func TestUnquoteDictTokenRejectsTruncatedHexEscape(t *testing.T) {
	if _, err := unquoteDictToken("ab\\x2"); err == nil {
		t.Fatal("unquoteDictToken() should reject a truncated \\x escape")
	}
}
