package service

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
)

func boolPtr(b bool) *bool { return &b }

func TestGenerate_Defaults(t *testing.T) {
	svc := NewGeneratorService(nil, "", 0)
	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 16 {
		t.Errorf("expected length 16, got %d", resp.Length)
	}
	if len(resp.Password) != 16 {
		t.Errorf("expected password length 16, got %d", len(resp.Password))
	}
}

func TestGenerate_SimplePreset(t *testing.T) {
	svc := NewGeneratorService(nil, PresetSimple, 0)
	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 8 {
		t.Errorf("expected length 8, got %d", resp.Length)
	}
	for _, c := range resp.Password {
		if !((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')) {
			t.Errorf("unexpected character %q in simple password", c)
		}
	}
}

func TestGenerate_CustomOptions(t *testing.T) {
	svc := NewGeneratorService(nil, "", 0)
	resp, err := svc.Generate(model.GenerateRequest{
		Length:    32,
		Uppercase: boolPtr(true),
		Lowercase: boolPtr(true),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 32 {
		t.Errorf("expected length 32, got %d", resp.Length)
	}
	for _, c := range resp.Password {
		if !((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
			t.Errorf("unexpected character %q in password with only uppercase+lowercase", c)
		}
	}
}

func TestGenerate_NegativeLength(t *testing.T) {
	svc := NewGeneratorService(nil, "", 0)
	_, err := svc.Generate(model.GenerateRequest{Length: -3})
	if !errors.Is(err, crypto.ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
}

func TestGenerate_UnknownPreset(t *testing.T) {
	svc := NewGeneratorService(nil, "", 0)
	_, err := svc.Generate(model.GenerateRequest{Preset: "paranoid"})
	if !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestGenerate_NoCharacterTypes(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	svc := NewGeneratorService(zap.New(core), "", 0)

	_, err := svc.Generate(model.GenerateRequest{
		Length:    16,
		Uppercase: boolPtr(false),
		Lowercase: boolPtr(false),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if !errors.Is(err, crypto.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
	if logs.FilterMessage("rejected generator configuration").Len() != 1 {
		t.Error("expected a warning for the rejected configuration")
	}
}

func TestGenerate_NeverLogsPassword(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	svc := NewGeneratorService(zap.New(core), "", 0)

	resp, err := svc.Generate(model.GenerateRequest{})
	require.NoError(t, err)
	require.Equal(t, 1, logs.Len())

	for _, entry := range logs.All() {
		assert.NotContains(t, entry.Message, resp.Password)
		for _, v := range entry.ContextMap() {
			if s, ok := v.(string); ok {
				assert.NotContains(t, s, resp.Password)
			}
		}
	}
}

func TestShowcase(t *testing.T) {
	svc := NewGeneratorService(nil, "", 4)
	got := svc.Showcase("abc123")

	assert.Equal(t, "abc123", got.Original)
	assert.Equal(t, crypto.Hash("abc123"), got.Hashed)
	assert.Equal(t, "321cba", got.Reversed)

	token, rest, ok := strings.Cut(got.Salted, ":")
	require.True(t, ok)
	assert.Len(t, token, 8)
	assert.Equal(t, "abc123", rest)
}

func TestDerive(t *testing.T) {
	svc := NewGeneratorService(nil, "", 0)

	out, err := svc.Derive("abc", []string{"reverse", " HASH "})
	require.NoError(t, err)
	assert.Equal(t, "cba", out["reverse"])
	assert.Equal(t, crypto.Hash("abc"), out["hash"])

	_, err = svc.Derive("abc", []string{"rot13"})
	assert.True(t, errors.Is(err, ErrUnknownTransform))
}

func TestPresetOptions(t *testing.T) {
	opts, err := PresetOptions("Simple")
	require.NoError(t, err)
	assert.Equal(t, crypto.SimpleOptions(), opts)

	_, err = PresetOptions("nope")
	assert.True(t, errors.Is(err, ErrUnknownPreset))

	assert.Equal(t, []string{"default", "simple", "strong"}, PresetNames())
}
