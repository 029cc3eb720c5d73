package service

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
)

const (
	PresetStrong  = "strong"
	PresetSimple  = "simple"
	PresetDefault = "default"
)

var (
	ErrUnknownPreset    = errors.New("unknown preset")
	ErrUnknownTransform = errors.New("unknown transform")
)

var presets = map[string]func() crypto.GeneratorOptions{
	PresetStrong:  crypto.StrongOptions,
	PresetSimple:  crypto.SimpleOptions,
	PresetDefault: crypto.DefaultOptions,
}

// PresetNames returns the accepted preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PresetOptions resolves a preset name to its generator options.
func PresetOptions(name string) (crypto.GeneratorOptions, error) {
	fn, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return crypto.GeneratorOptions{}, errors.Wrapf(ErrUnknownPreset, "%q (want one of %s)", name, strings.Join(PresetNames(), ", "))
	}
	return fn(), nil
}

// GeneratorService handles password generation and transform logic.
type GeneratorService struct {
	log           *zap.Logger
	defaultPreset string
	salt          crypto.Transform
}

// NewGeneratorService creates a new GeneratorService. An empty defaultPreset
// means "strong"; saltBytes below one uses crypto.DefaultSaltBytes.
func NewGeneratorService(log *zap.Logger, defaultPreset string, saltBytes int) *GeneratorService {
	if log == nil {
		log = zap.NewNop()
	}
	if defaultPreset == "" {
		defaultPreset = PresetStrong
	}
	return &GeneratorService{
		log:           log,
		defaultPreset: defaultPreset,
		salt:          crypto.SaltWith(saltBytes),
	}
}

// Options resolves req into generator options without generating anything.
func (s *GeneratorService) Options(req model.GenerateRequest) (crypto.GeneratorOptions, error) {
	preset := req.Preset
	if preset == "" {
		preset = s.defaultPreset
	}

	opts, err := PresetOptions(preset)
	if err != nil {
		return crypto.GeneratorOptions{}, err
	}

	if req.Length != 0 {
		opts.Length = req.Length
	}
	opts.Lowercase = boolOrDefault(req.Lowercase, opts.Lowercase)
	opts.Uppercase = boolOrDefault(req.Uppercase, opts.Uppercase)
	opts.Numbers = boolOrDefault(req.Numbers, opts.Numbers)
	opts.Symbols = boolOrDefault(req.Symbols, opts.Symbols)

	return opts, nil
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts, err := s.Options(req)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	password, err := crypto.Generate(opts)
	if err != nil {
		if errors.Is(err, crypto.ErrInvalidConfiguration) {
			s.log.Warn("rejected generator configuration",
				zap.Int("length", opts.Length),
				zap.Int("classes", opts.EnabledClasses()),
				zap.Error(err))
		}
		return model.GenerateResponse{}, err
	}

	s.log.Debug("password generated",
		zap.Int("length", len(password)),
		zap.Int("classes", opts.EnabledClasses()))

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
	}, nil
}

// Derive applies each named transform to password independently.
func (s *GeneratorService) Derive(password string, names []string) (map[string]string, error) {
	out := make(map[string]string, len(names))
	for _, name := range names {
		fn, err := s.transform(name)
		if err != nil {
			return nil, err
		}
		out[strings.ToLower(strings.TrimSpace(name))] = fn(password)
	}
	return out, nil
}

// Showcase returns password alongside its hashed, salted and reversed forms.
func (s *GeneratorService) Showcase(password string) model.TransformResponse {
	return model.TransformResponse{
		Original: password,
		Hashed:   crypto.Hash(password),
		Salted:   s.salt(password),
		Reversed: crypto.Reverse(password),
	}
}

func (s *GeneratorService) transform(name string) (crypto.Transform, error) {
	fn, ok := crypto.LookupTransform(name)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownTransform, "%q (want one of %s)", name, strings.Join(crypto.TransformNames(), ", "))
	}
	if strings.EqualFold(strings.TrimSpace(name), "salt") {
		return s.salt, nil
	}
	return fn, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
