package handlers

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+$`)

type Validator struct {
	location string
	field    string
	value    *string
}

func (rv *Validator) Required() *CustomError {
	if rv.value == nil {
		return &CustomError{Location: rv.location, Param: rv.field, Msg: "is required"}
	}

	return nil
}

func (rv *Validator) Empty() *CustomError {
	if *rv.value == "" {
		return &CustomError{Location: rv.location, Param: rv.field, Value: *rv.value, Msg: "cannot be empty"}
	}

	return nil
}

func (rv *Validator) MaxLength(max int) *CustomError {
	if utf8.RuneCountInString(*rv.value) > max {
		return &CustomError{Location: rv.location, Param: rv.field, Value: *rv.value,
			Msg: fmt.Sprintf("cannot be longer than %d characters", max)}
	}

	return nil
}

func (rv *Validator) Email() *CustomError {
	if !emailRe.MatchString(*rv.value) {
		return &CustomError{Location: rv.location, Param: rv.field, Value: *rv.value, Msg: "must be a valid email"}
	}

	return nil
}

func (rv *Validator) Custom(check func(value string) bool, msg string) *CustomError {
	if !check(*rv.value) {
		return &CustomError{Location: rv.location, Param: rv.field, Value: *rv.value, Msg: msg}
	}

	return nil
}
