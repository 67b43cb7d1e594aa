package entx

import (
	"fmt"
	"strings"

	"github.com/hengadev/errsx"
)

// Config controls the naming conventions used when serializing relations.
//
// All fields are optional; Validate fills in the defaults:
//   - IDAttribute: attribute read from a related entity to build the companion
//     id field of a one-relation (default: id)
//   - IDSuffix: appended to the relation name to name that companion field
//     (default: _id, so relation "user" gets "user_id")
//   - PathSeparator: splits relation paths passed to ToArray (default: .)
//
// Example usage:
//
//	cfg := entx.Config{IDAttribute: "uuid"}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
//	mapper, err := entx.NewMapper(entx.WithConfig(cfg))
type Config struct {
	IDAttribute   string
	IDSuffix      string
	PathSeparator string
}

// DefaultConfig returns the configuration used by the package-level functions.
func DefaultConfig() Config {
	return Config{
		IDAttribute:   DefaultIDAttribute,
		IDSuffix:      DefaultIDSuffix,
		PathSeparator: DefaultPathSeparator,
	}
}

// Validate applies defaults to empty fields and checks the result.
func (c *Config) Validate() error {
	c.applyDefaults()

	var errs errsx.Map
	if strings.TrimSpace(c.PathSeparator) == "" {
		errs.Set("path separator", fmt.Errorf("cannot be whitespace only"))
	}
	if strings.TrimSpace(c.IDAttribute) != c.IDAttribute {
		errs.Set("id attribute", fmt.Errorf("cannot have surrounding whitespace"))
	}
	if strings.Contains(c.IDAttribute, c.PathSeparator) {
		errs.Set("id attribute", fmt.Errorf("cannot contain the path separator %q", c.PathSeparator))
	}
	if strings.Contains(c.IDSuffix, c.PathSeparator) {
		errs.Set("id suffix", fmt.Errorf("cannot contain the path separator %q", c.PathSeparator))
	}

	if !errs.IsEmpty() {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, errs.AsError())
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.IDAttribute == "" {
		c.IDAttribute = DefaultIDAttribute
	}
	if c.IDSuffix == "" {
		c.IDSuffix = DefaultIDSuffix
	}
	if c.PathSeparator == "" {
		c.PathSeparator = DefaultPathSeparator
	}
}
