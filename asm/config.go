package asm

import (
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/a32asm/isa"
)

// INSTRUCTION_STRIDE is the default address step between instructions.
//
// It is deliberately not the four byte width of an encoded word: branch
// offsets computed by existing sources assume a 0x20 step.
const INSTRUCTION_STRIDE = 0x20

// Policy selects what happens when a non-branch line fails to assemble.
type Policy int

//go:generate go tool stringer -linecomment -type=Policy
const (
	POLICY_SKIP  = Policy(0) // skip
	POLICY_ABORT = Policy(1) // abort
)

// MarshalText implements encoding.TextMarshaler.
func (policy Policy) MarshalText() ([]byte, error) {
	return []byte(policy.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (policy *Policy) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case POLICY_SKIP.String():
		*policy = POLICY_SKIP
	case POLICY_ABORT.String():
		*policy = POLICY_ABORT
	default:
		return &ErrParse{Kind: ErrPolicyUnknown, Token: string(text)}
	}
	return nil
}

// Config holds the dialect settings of the assembler.
type Config struct {
	Stride           uint32 `toml:"stride"`            // Address step per instruction line.
	RegisterLimit    int    `toml:"register_limit"`    // Highest accepted register id.
	RegisterPrefixes string `toml:"register_prefixes"` // Letters that may start a register name.
	LiteralPrefix    string `toml:"literal_prefix"`    // Optional marker before an immediate.
	Policy           Policy `toml:"policy"`            // Bad line handling.
}

// DefaultConfig returns the settings of the stock dialect.
func DefaultConfig() Config {
	return Config{
		Stride:           INSTRUCTION_STRIDE,
		RegisterLimit:    isa.REG_LIMIT,
		RegisterPrefixes: "rwx",
		LiteralPrefix:    "#",
		Policy:           POLICY_SKIP,
	}
}

// configFile is the TOML layout of Config. The policy is read as text so
// that an unknown name keeps ErrPolicyUnknown in the error chain.
type configFile struct {
	Stride           uint32 `toml:"stride"`
	RegisterLimit    int    `toml:"register_limit"`
	RegisterPrefixes string `toml:"register_prefixes"`
	LiteralPrefix    string `toml:"literal_prefix"`
	Policy           string `toml:"policy"`
}

// LoadConfig reads a TOML file over the default settings.
func LoadConfig(path string) (cfg Config, err error) {
	cfg = DefaultConfig()

	file := configFile{
		Stride:           cfg.Stride,
		RegisterLimit:    cfg.RegisterLimit,
		RegisterPrefixes: cfg.RegisterPrefixes,
		LiteralPrefix:    cfg.LiteralPrefix,
		Policy:           cfg.Policy.String(),
	}

	_, err = toml.DecodeFile(path, &file)
	if err != nil {
		return
	}

	cfg.Stride = file.Stride
	cfg.RegisterLimit = file.RegisterLimit
	cfg.RegisterPrefixes = file.RegisterPrefixes
	cfg.LiteralPrefix = file.LiteralPrefix
	err = cfg.Policy.UnmarshalText([]byte(file.Policy))
	if err != nil {
		return
	}

	err = cfg.Validate()
	return
}

// Validate checks the settings for consistency. The register limit must
// admit at least the sixteen architectural registers.
func (cfg Config) Validate() (err error) {
	switch {
	case cfg.Stride == 0:
		err = ErrConfigStride
	case cfg.RegisterLimit < isa.REG_LIMIT || cfg.RegisterLimit > isa.REG_LIMIT_WIDE:
		err = ErrConfigRegister
	case len(cfg.RegisterPrefixes) == 0:
		err = ErrConfigPrefix
	}
	return
}
