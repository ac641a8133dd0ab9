package credstore

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type registerFields struct {
	Identifier           string `validate:"required"`
	Password             string `validate:"required"`
	PasswordConfirmation string `validate:"omitempty,eqfield=Password"`
}

type passwordFields struct {
	Password             string `validate:"required"`
	PasswordConfirmation string `validate:"omitempty,eqfield=Password"`
}

func validateRegister(in RegisterInput) error {
	return mapValidation(validate.Struct(registerFields{
		Identifier:           in.Identifier,
		Password:             in.Password,
		PasswordConfirmation: in.PasswordConfirmation,
	}))
}

func validatePasswordChange(password, confirmation string) error {
	return mapValidation(validate.Struct(passwordFields{
		Password:             password,
		PasswordConfirmation: confirmation,
	}))
}

// mapValidation translates validator failures onto the error kinds
// callers are allowed to see. Fields are checked in declaration order,
// so the identifier wins over the password and the password over the
// confirmation.
func mapValidation(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ErrStoreFailure.WithCause(err)
	}

	for _, fe := range verrs {
		switch fe.StructField() {
		case "Identifier":
			return ErrMissingIdentifier
		case "Password":
			return ErrMissingPassword
		case "PasswordConfirmation":
			return ErrPasswordMismatch
		}
	}

	return ErrStoreFailure.WithCause(err)
}
