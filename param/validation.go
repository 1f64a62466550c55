package param

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is a package-level singleton; constructing a validator per call
// is expensive.
var validate = validator.New()

// Validate checks a descriptor before it is handed to the host: name
// present and under the host's 31-byte limit, exactly one variant payload,
// and the payload's own bounds (slider min<=max, popup choices present,
// arbitrary refcon set).
func Validate(d *Descriptor) error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("param %q: %w", d.Name, err)
	}
	if d.def == nil {
		return fmt.Errorf("param %q: no variant payload set", d.Name)
	}
	if err := validate.Struct(d.def); err != nil {
		return fmt.Errorf("param %q (%s): %w", d.Name, d.Kind(), err)
	}
	return nil
}
