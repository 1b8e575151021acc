package layerconf

import (
	"testing"

	"github.com/spf13/afero"

	"layerconf/internal/testkit"
)

const envFixture = `
KeyTrue=True
KeyOne=1
KeyYes=yes
KeyOn=on
KeyY=y

KeyFalse=False
KeyZero=0
KeyNo=no
KeyN=n
KeyOff=off
KeyEmpty=

#CommentedKey=None
PercentNotEscaped=%%
NoInterpolation=%(KeyOff)s
IgnoreSpace = text
RespectSingleQuoteSpace = ' text'
RespectDoubleQuoteSpace = " text"
KeyOverrideByEnv=NotThis

KeyWithSingleQuoteEnd=text'
KeyWithSingleQuoteMid=te'xt
KeyWithSingleQuoteBegin='text
KeyWithDoubleQuoteEnd=text"
KeyWithDoubleQuoteMid=te"xt
KeyWithDoubleQuoteBegin="text
KeyIsSingleQuote='
KeyIsDoubleQuote="
KeyHasTwoEquals=a=b
NotAnAssignment
`

func envFileConfig(t *testing.T) *Config {
	t.Helper()
	fsys := afero.NewMemMapFs()
	testkit.SeedFile(t, fsys, "/app/.env", envFixture)
	store, err := NewEnvFile("/app/.env", WithFS(fsys))
	if err != nil {
		t.Fatalf("NewEnvFile: %v", err)
	}
	return New(store)
}

func TestEnvFileCommentedKeyIsUndefined(t *testing.T) {
	cfg := envFileConfig(t)
	if _, err := cfg.Get("CommentedKey"); !IsUndefined(err) {
		t.Fatalf("Get(CommentedKey) err = %v, want UndefinedError", err)
	}
}

func TestEnvFileNoInterpolation(t *testing.T) {
	cfg := envFileConfig(t)
	if got, _ := cfg.Get("PercentNotEscaped"); got != "%%" {
		t.Fatalf("PercentNotEscaped = %q, want %q", got, "%%")
	}
	if got, _ := cfg.Get("NoInterpolation"); got != "%(KeyOff)s" {
		t.Fatalf("NoInterpolation = %q, want %q", got, "%(KeyOff)s")
	}
}

func TestEnvFileBoolTrue(t *testing.T) {
	cfg := envFileConfig(t)
	for _, key := range []string{"KeyTrue", "KeyOne", "KeyYes", "KeyOn", "KeyY"} {
		got, err := cfg.Get(key, Cast(Boolean))
		if err != nil {
			t.Fatalf("Get(%s): %v", key, err)
		}
		if got != true {
			t.Fatalf("Get(%s) = %v, want true", key, got)
		}
	}
	if got, _ := cfg.Get("Key1int", Default(1), Cast(Boolean)); got != true {
		t.Fatalf("default 1 as bool = %v, want true", got)
	}
}

func TestEnvFileBoolFalse(t *testing.T) {
	cfg := envFileConfig(t)
	for _, key := range []string{"KeyFalse", "KeyZero", "KeyNo", "KeyN", "KeyOff", "KeyEmpty"} {
		got, err := cfg.Get(key, Cast(Boolean))
		if err != nil {
			t.Fatalf("Get(%s): %v", key, err)
		}
		if got != false {
			t.Fatalf("Get(%s) = %v, want false", key, got)
		}
	}
	if got, _ := cfg.Get("Key0int", Default(0), Cast(Boolean)); got != false {
		t.Fatalf("default 0 as bool = %v, want false", got)
	}
}

func TestEnvFileEnvironWins(t *testing.T) {
	cfg := envFileConfig(t)
	t.Setenv("KeyOverrideByEnv", "This")
	if got, _ := cfg.Get("KeyOverrideByEnv"); got != "This" {
		t.Fatalf("Get = %q, want %q", got, "This")
	}
}

func TestEnvFileEmptyEnvironValueWins(t *testing.T) {
	cfg := envFileConfig(t)
	t.Setenv("KeyOnlyEnviron", "")
	if got, err := cfg.Get("KeyOnlyEnviron"); err != nil || got != "" {
		t.Fatalf("Get = %q, %v; want empty string, nil", got, err)
	}
}

func TestEnvFileUndefined(t *testing.T) {
	cfg := envFileConfig(t)
	if _, err := cfg.Get("UndefinedKey"); !IsUndefined(err) {
		t.Fatalf("err = %v, want UndefinedError", err)
	}
}

func TestEnvFileDefaultNil(t *testing.T) {
	cfg := envFileConfig(t)
	got, err := cfg.Get("UndefinedKey", Default(nil))
	if err != nil || got != nil {
		t.Fatalf("Get = %v, %v; want nil, nil", got, err)
	}
}

func TestEnvFileEmptyValueBeatsDefault(t *testing.T) {
	cfg := envFileConfig(t)
	if got, _ := cfg.Get("KeyEmpty", Default(nil)); got != "" {
		t.Fatalf("Get = %v, want empty string", got)
	}
	if got, _ := cfg.Get("KeyEmpty"); got != "" {
		t.Fatalf("Get = %v, want empty string", got)
	}
}

func TestEnvFileWhitespaceHandling(t *testing.T) {
	cfg := envFileConfig(t)
	if got, _ := cfg.Get("IgnoreSpace"); got != "text" {
		t.Fatalf("IgnoreSpace = %q, want %q", got, "text")
	}
	if got, _ := cfg.Get("RespectSingleQuoteSpace"); got != " text" {
		t.Fatalf("RespectSingleQuoteSpace = %q, want %q", got, " text")
	}
	if got, _ := cfg.Get("RespectDoubleQuoteSpace"); got != " text" {
		t.Fatalf("RespectDoubleQuoteSpace = %q, want %q", got, " text")
	}
}

func TestEnvFileQuoteEdges(t *testing.T) {
	cfg := envFileConfig(t)
	cases := map[string]string{
		"KeyWithSingleQuoteEnd":   "text'",
		"KeyWithSingleQuoteMid":   "te'xt",
		"KeyWithSingleQuoteBegin": "'text",
		"KeyWithDoubleQuoteEnd":   `text"`,
		"KeyWithDoubleQuoteMid":   `te"xt`,
		"KeyWithDoubleQuoteBegin": `"text`,
		"KeyIsSingleQuote":        "'",
		"KeyIsDoubleQuote":        `"`,
	}
	for key, want := range cases {
		got, err := cfg.Get(key)
		if err != nil {
			t.Fatalf("Get(%s): %v", key, err)
		}
		if got != want {
			t.Fatalf("Get(%s) = %q, want %q", key, got, want)
		}
	}
}

func TestEnvFileSplitsAtFirstEquals(t *testing.T) {
	cfg := envFileConfig(t)
	if got, _ := cfg.Get("KeyHasTwoEquals"); got != "a=b" {
		t.Fatalf("KeyHasTwoEquals = %q, want %q", got, "a=b")
	}
}

func TestEnvFileDuplicateKeyLastWins(t *testing.T) {
	fsys := afero.NewMemMapFs()
	testkit.SeedFile(t, fsys, "/app/.env", "K=first\nK=second\n")
	store, err := NewEnvFile("/app/.env", WithFS(fsys))
	if err != nil {
		t.Fatalf("NewEnvFile: %v", err)
	}
	if got, _ := store.Get("K"); got != "second" {
		t.Fatalf("Get(K) = %q, want %q", got, "second")
	}
}

func TestEnvFileQuotedRoundTrip(t *testing.T) {
	fsys := afero.NewMemMapFs()
	testkit.SeedFile(t, fsys, "/app/.env", "Plain= value \nQuoted='value'\n")
	store, err := NewEnvFile("/app/.env", WithFS(fsys))
	if err != nil {
		t.Fatalf("NewEnvFile: %v", err)
	}
	if got, _ := store.Get("Plain"); got != "value" {
		t.Fatalf("Plain = %q, want %q", got, "value")
	}
	if got, _ := store.Get("Quoted"); got != "value" {
		t.Fatalf("Quoted = %q, want %q", got, "value")
	}
}

func TestEnvFileDirectGetMiss(t *testing.T) {
	fsys := afero.NewMemMapFs()
	testkit.SeedFile(t, fsys, "/app/.env", "K=v\n")
	store, err := NewEnvFile("/app/.env", WithFS(fsys))
	if err != nil {
		t.Fatalf("NewEnvFile: %v", err)
	}
	if _, err := store.Get("Missing"); !IsKeyNotFound(err) {
		t.Fatalf("err = %v, want KeyError", err)
	}
}

func TestEnvFileContainsChecksEnviron(t *testing.T) {
	fsys := afero.NewMemMapFs()
	testkit.SeedFile(t, fsys, "/app/.env", "K=v\n")
	store, err := NewEnvFile("/app/.env", WithFS(fsys), WithEnviron(MapEnviron{"OnlyEnv": "1"}))
	if err != nil {
		t.Fatalf("NewEnvFile: %v", err)
	}
	if !store.Contains("OnlyEnv") {
		t.Fatalf("Contains(OnlyEnv) = false, want true")
	}
	if !store.Contains("K") {
		t.Fatalf("Contains(K) = false, want true")
	}
	if store.Contains("Nope") {
		t.Fatalf("Contains(Nope) = true, want false")
	}
}

func TestEnvFileMissingFile(t *testing.T) {
	if _, err := NewEnvFile("/nope/.env", WithFS(afero.NewMemMapFs())); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
