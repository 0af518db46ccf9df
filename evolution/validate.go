package evolution

import (
	"github.com/go-playground/validator/v10"

	"elementalsouls.app/evolution/model"
)

var validate = validator.New()

func validationError(err error) error {
	return model.InvalidRequest(err.Error())
}

func validateWallet(wallet string) error {
	if err := validate.Var(wallet, "required,eth_addr"); err != nil {
		return model.InvalidRequest("wallet must be a 0x-prefixed address")
	}
	return nil
}
