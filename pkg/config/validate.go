package config

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/mobius/pkg/errors"
	"github.com/matzehuels/mobius/pkg/geom"
)

var validate = validator.New()

// Validate checks field constraints and cross-field rules. All failures
// carry [errors.ErrCodeInvalidConfig].
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if stderrors.As(err, &verrs) {
			return errors.New(errors.ErrCodeInvalidConfig, "%s", describe(verrs))
		}
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "validate config")
	}
	if _, err := geom.LookupPreset(c.Pearls.Preset); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "pearls.preset")
	}
	if err := errors.ValidateFinite("pearls.threshold", c.Pearls.Threshold); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "pearls.threshold")
	}
	return nil
}

// describe turns validator errors into "pearls.depth: must be gte 0" lines.
func describe(verrs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		// Namespace is "Config.Pearls.Depth"; drop the root type.
		ns := fe.Namespace()
		if i := strings.IndexByte(ns, '.'); i >= 0 {
			ns = ns[i+1:]
		}
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += " " + fe.Param()
		}
		msgs = append(msgs, fmt.Sprintf("%s: must satisfy %s (got %v)", strings.ToLower(ns), rule, fe.Value()))
	}
	return strings.Join(msgs, "; ")
}
