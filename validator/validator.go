package validator

import (
	"fmt"
	"regexp"
	"strings"

	"salestracker/constants"
	"salestracker/errors"
	"salestracker/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin/binding"
	playground "github.com/go-playground/validator/v10"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

var (
	monthRegex = regexp.MustCompile(`^(0[1-9]|1[0-2])$`)
	yearRegex  = regexp.MustCompile(`^[0-9]{4}$`)
)

// maxRoleSuggestionDistance bounds how far a typo may be from a role before
// we stop suggesting it.
const maxRoleSuggestionDistance = 4

// FormatRole folds accents, collapses whitespace and capitalizes every word,
// so " sales   MANAGER" becomes "Sales Manager".
func FormatRole(role string) string {
	words := strings.Fields(unidecode.Unidecode(role))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// CanonicalRole formats role and reports whether it is in the closed role set.
func CanonicalRole(role string) (string, bool) {
	formatted := FormatRole(role)
	return formatted, constants.IsRole(formatted)
}

// SuggestRole returns the canonical role closest to input, or "" when none is close.
func SuggestRole(input string) string {
	formatted := []rune(strings.ToLower(FormatRole(input)))
	best, bestDistance := "", maxRoleSuggestionDistance+1
	for _, role := range constants.Roles {
		d := levenshtein.DistanceForStrings(formatted, []rune(strings.ToLower(role)), levenshtein.DefaultOptions)
		if d < bestDistance {
			best, bestDistance = role, d
		}
	}
	return best
}

// UnknownRoleMessage builds the message used when a role is outside the closed set.
func UnknownRoleMessage(role string) string {
	msg := fmt.Sprintf("Unknown role %q. Allowed roles: %s.", role, strings.Join(constants.Roles, ", "))
	if hint := SuggestRole(role); hint != "" {
		msg += fmt.Sprintf(" Did you mean %q?", hint)
	}
	return msg
}

// ValidateMonth checks a zero-padded two digit month, "01" to "12".
func ValidateMonth(field, month string) error {
	if month == "" {
		return errors.InvalidRange(fmt.Sprintf("%s is required", field))
	}
	if !monthRegex.MatchString(month) {
		return errors.InvalidRange(fmt.Sprintf("%s must be a two digit month between 01 and 12", field))
	}
	return nil
}

// ValidateYear checks a four digit year.
func ValidateYear(field, year string) error {
	if year == "" {
		return errors.InvalidRange(fmt.Sprintf("%s is required", field))
	}
	if !yearRegex.MatchString(year) {
		return errors.InvalidRange(fmt.Sprintf("%s must be a four digit year", field))
	}
	return nil
}

// ValidateUser checks a user before it is written. Role must already be canonical.
func ValidateUser(user *models.User) error {
	if strings.TrimSpace(user.Name) == "" {
		return errors.Validation("User name must not be empty")
	}
	if !constants.IsRole(user.Role) {
		return errors.Validation(UnknownRoleMessage(user.Role))
	}
	return nil
}

func ValidateGroup(group *models.Group) error {
	if strings.TrimSpace(group.Name) == "" {
		return errors.Validation("Group name must not be empty")
	}
	return nil
}

func ValidateSale(sale *models.Sale) error {
	if sale.UserID == 0 {
		return errors.Validation("Sale must reference a user")
	}
	if !sale.Amount.IsPositive() {
		return errors.Validation("Sale amount must be positive")
	}
	if !sale.Amount.Equal(sale.Amount.Round(2)) {
		return errors.Validation("Sale amount supports at most two decimal places")
	}
	if sale.Date.IsZero() {
		return errors.Validation("Sale date is required")
	}
	return nil
}

// RegisterBindings installs the custom tags used by request DTOs on gin's validator.
func RegisterBindings() error {
	v, ok := binding.Validator.Engine().(*playground.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
	}
	return Register(v)
}

// Register installs the custom tags on v.
func Register(v *playground.Validate) error {
	if err := v.RegisterValidation("notblank", notBlank); err != nil {
		return err
	}
	return v.RegisterValidation("salesrole", salesRole)
}

func notBlank(fl playground.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func salesRole(fl playground.FieldLevel) bool {
	_, ok := CanonicalRole(fl.Field().String())
	return ok
}
