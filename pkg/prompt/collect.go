// Package prompt gathers Input properties interactively.
package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-forminput/pkg/input"
)

// InputTypes lists the input types offered by Collect, default first.
var InputTypes = []string{"text", "email", "password", "number", "tel", "url", "search", "date"}

// Collect asks for the common Input properties through driver.
func Collect(ctx context.Context, driver Driver) (input.Props, error) {
	var props input.Props
	if driver == nil {
		return props, fmt.Errorf("prompt: driver is nil")
	}

	var err error
	if props.Label, err = driver.Input(ctx, InputConfig{
		Message: "Label",
		Help:    "Text shown above the field. Leave empty for none.",
	}); err != nil {
		return input.Props{}, err
	}

	if props.Name, err = driver.Input(ctx, InputConfig{
		Message:   "Field name",
		Default:   slug(props.Label),
		Validator: validateName,
	}); err != nil {
		return input.Props{}, err
	}
	props.ID = props.Name

	idx, err := driver.Select(ctx, SelectConfig{
		Message: "Input type",
		Options: InputTypes,
	})
	if err != nil {
		return input.Props{}, err
	}
	if idx > 0 && idx < len(InputTypes) {
		props.Type = InputTypes[idx]
	}

	if props.Placeholder, err = driver.Input(ctx, InputConfig{Message: "Placeholder"}); err != nil {
		return input.Props{}, err
	}
	if props.Value, err = driver.Input(ctx, InputConfig{Message: "Value"}); err != nil {
		return input.Props{}, err
	}
	if props.Error, err = driver.Input(ctx, InputConfig{
		Message: "Error message",
		Help:    "Non-empty text renders the error state.",
	}); err != nil {
		return input.Props{}, err
	}
	if props.ClassName, err = driver.Input(ctx, InputConfig{
		Message: "Extra classes",
		Help:    "Appended after the built-in classes.",
	}); err != nil {
		return input.Props{}, err
	}
	if props.Required, err = driver.Confirm(ctx, ConfirmConfig{Message: "Required?"}); err != nil {
		return input.Props{}, err
	}

	return props, nil
}

func validateName(value string) error {
	if strings.ContainsAny(value, " \t\"'<>") {
		return fmt.Errorf("field name must not contain spaces, quotes or angle brackets")
	}
	return nil
}

func slug(label string) string {
	fields := strings.Fields(strings.ToLower(label))
	return strings.Join(fields, "_")
}
