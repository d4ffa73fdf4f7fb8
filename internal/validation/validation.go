// Package validation holds the field checks shared by the lifecycle usecases
// and the HTTP layer: date parsing (with the not-in-the-future rule for birth
// dates), the sex enumeration, and the CPF/ISBN/email/phone formats.
package validation

import (
	"fmt"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/project/biblioteca/internal/entity"
)

const DateLayout = "2006-01-02"

var (
	cpfPattern  = regexp.MustCompile(`^\d{11}$`)
	isbnPattern = regexp.MustCompile(`^97[89]\d{10}$`)
)

// Reusable ozzo rules for request-shape validation at the controller.
var (
	CPFRule   = []validation.Rule{validation.Required, validation.Match(cpfPattern).Error("must be 11 digits")}
	ISBNRule  = []validation.Rule{validation.Required, validation.Match(isbnPattern).Error("must be 13 digits starting with 978 or 979")}
	EmailRule = []validation.Rule{validation.Required, is.Email}
	NameRule  = []validation.Rule{validation.Required.Error("must not be blank")}
)

// ParseBirthDate accepts yyyy-mm-dd dates that are not in the future.
func ParseBirthDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, entity.ErrInvalidBirthDate
	}
	if d.After(time.Now()) {
		return time.Time{}, entity.ErrInvalidBirthDate
	}
	return d, nil
}

// ParsePublicationDate accepts yyyy-mm-dd dates.
func ParsePublicationDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, entity.ErrInvalidPublicationDate
	}
	return d, nil
}

// Sex checks the enumeration. The empty string is rejected: callers decide
// whether an absent value is allowed before calling.
func Sex(s string) error {
	switch s {
	case entity.SexMasculine, entity.SexFeminine, entity.SexOther:
		return nil
	}
	return entity.ErrInvalidSex
}

func CPF(s string) error {
	if err := validation.Validate(s, CPFRule...); err != nil {
		return fmt.Errorf("%w: cpf %s", entity.ErrValidation, err)
	}
	return nil
}

func ISBN(s string) error {
	if err := validation.Validate(s, ISBNRule...); err != nil {
		return fmt.Errorf("%w: isbn %s", entity.ErrValidation, err)
	}
	return nil
}

func Email(s string) error {
	if err := validation.Validate(s, EmailRule...); err != nil {
		return fmt.Errorf("%w: email %s", entity.ErrValidation, err)
	}
	return nil
}
