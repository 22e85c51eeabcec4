package cli

import (
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-forminput/pkg/input"
)

type renderFlags struct {
	label       string
	errMsg      string
	className   string
	id          string
	name        string
	inputType   string
	value       string
	placeholder string
	required    bool
	disabled    bool
	attrs       []string
	sanitize    bool
}

func (a *app) renderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:     "render",
		Short:   "Render one input to stdout.",
		Example: `forminput render --label Email --type email --name email --error Required`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			props, err := flags.props()
			if err != nil {
				return err
			}
			a.logger.Debug("rendering input", "label", props.Label, "error", props.Error != "")
			return writeFragment(cmd.OutOrStdout(), props, flags.sanitize)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.label, "label", "", "label text rendered above the field")
	f.StringVar(&flags.errMsg, "error", "", "error message rendered below the field")
	f.StringVar(&flags.className, "class", "", "extra classes appended to the input")
	f.StringVar(&flags.id, "id", "", "input id")
	f.StringVar(&flags.name, "name", "", "input name")
	f.StringVar(&flags.inputType, "type", "", "input type")
	f.StringVar(&flags.value, "value", "", "input value")
	f.StringVar(&flags.placeholder, "placeholder", "", "placeholder text")
	f.BoolVar(&flags.required, "required", false, "mark the input as required")
	f.BoolVar(&flags.disabled, "disabled", false, "mark the input as disabled")
	f.StringArrayVar(&flags.attrs, "attr", nil, "extra attribute as key=value (repeatable)")
	f.BoolVar(&flags.sanitize, "sanitize", false, "strip inline handlers and unknown attributes")
	return cmd
}

func (f renderFlags) props() (input.Props, error) {
	extra, err := parseAttrs(f.attrs)
	if err != nil {
		return input.Props{}, err
	}
	return input.Props{
		Label:     f.label,
		Error:     f.errMsg,
		ClassName: f.className,
		Attributes: input.Attributes{
			ID:          f.id,
			Name:        f.name,
			Type:        f.inputType,
			Value:       f.value,
			Placeholder: f.placeholder,
			Required:    f.required,
			Disabled:    f.disabled,
		},
		Extra: extra,
	}, nil
}

// propsFromQuery maps /render query parameters onto Props using the same
// names as the render flags.
func propsFromQuery(query url.Values) (input.Props, error) {
	flags := renderFlags{
		label:       query.Get("label"),
		errMsg:      query.Get("error"),
		className:   query.Get("class"),
		id:          query.Get("id"),
		name:        query.Get("name"),
		inputType:   query.Get("type"),
		value:       query.Get("value"),
		placeholder: query.Get("placeholder"),
		attrs:       query["attr"],
	}
	for key, target := range map[string]*bool{"required": &flags.required, "disabled": &flags.disabled} {
		raw := query.Get(key)
		if raw == "" {
			continue
		}
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return input.Props{}, fmt.Errorf("invalid %s: %w", key, err)
		}
		*target = parsed
	}
	return flags.props()
}

func parseAttrs(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid attribute %q, expected key=value", pair)
		}
		if !input.ValidAttributeName(key) {
			return nil, fmt.Errorf("invalid attribute name %q", key)
		}
		out[key] = value
	}
	return out, nil
}

func writeFragment(w io.Writer, props input.Props, sanitize bool) error {
	markup, err := input.HTML(props)
	if err != nil {
		return err
	}
	if sanitize {
		markup = input.Sanitize(markup)
	}
	_, err = fmt.Fprintln(w, markup)
	return err
}
