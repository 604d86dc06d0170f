package logging

import (
	"sync"

	"github.com/Station-Manager/errors"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate
var validateOnce sync.Once

func validateDestination(dest Destination) error {
	const op errors.Op = "logging.validateDestination"

	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	if err := validate.Struct(dest); err != nil {
		return errors.New(op).Err(err).Msg(errMsgDestInvalid)
	}

	return nil
}
