package account

import "github.com/maternity/records/internal/validation"

func registerRules(emailTaken validation.ExistsFunc) []validation.Rule {
	return []validation.Rule{
		{Field: "name", Required: true, Type: validation.String, Max: 255},
		{Field: "email", Required: true, Type: validation.Email, Max: 255, Unique: emailTaken},
		{Field: "password", Required: true, Type: validation.String},
	}
}

func loginRules() []validation.Rule {
	return []validation.Rule{
		{Field: "email", Required: true, Type: validation.Email},
		{Field: "password", Required: true, Type: validation.String},
	}
}
