package controllers

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"

	"salestracker/errors"

	playground "github.com/go-playground/validator/v10"
)

// parseID reads a positive integer path parameter.
func parseID(name, raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.Validation(fmt.Sprintf("%s must be a positive integer", name))
	}
	return uint(id), nil
}

// bindError turns a gin binding failure into a Validation error naming the
// offending fields.
func bindError(err error) error {
	var verrs playground.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errors.Validation("Malformed request: " + err.Error())
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required", "notblank":
			msgs = append(msgs, fe.Field()+" is required")
		case "salesrole":
			msgs = append(msgs, fmt.Sprintf("%s %q is not a known role", fe.Field(), fe.Value()))
		case "datetime":
			msgs = append(msgs, fe.Field()+" must be formatted as "+fe.Param())
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
		}
	}
	return errors.Validation(strings.Join(msgs, "; "))
}
