package theme

import (
	"fmt"
	"os"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/clicycle/pkg/errors"
)

// themeFile is the on-disk overlay format. Every field is optional;
// values present in the file replace the corresponding default.
type themeFile struct {
	Width          int               `yaml:"width" validate:"omitempty,gt=0"`
	MinColumnWidth int               `yaml:"min_column_width" validate:"omitempty,gt=0"`
	Icons          map[string]string `yaml:"icons"`
	Spacing        *spacingFile      `yaml:"spacing"`
}

type spacingFile struct {
	Default *int       `yaml:"default" validate:"omitempty,gte=0"`
	Rules   []ruleFile `yaml:"rules" validate:"dive"`
}

type ruleFile struct {
	Prev  string `yaml:"prev" validate:"required,component_kind"`
	Next  string `yaml:"next" validate:"required,component_kind"`
	Blank int    `yaml:"blank" validate:"gte=0"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	yamlLineRegex = regexp.MustCompile(`line (\d+)`)
)

// validatorInstance configures and returns the shared validator used by
// the theme loader.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("component_kind", func(fl validator.FieldLevel) bool {
			_, err := ParseKind(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// Load reads a theme overlay from path, validates it, and merges it over
// the default theme. Malformed YAML surfaces as a ParseError; invalid
// values surface as a ValidationError. The returned theme has already
// passed Validate.
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, apperrors.NewParseError(path, 0, err)
	}

	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Theme{}, apperrors.NewParseError(path, extractLine(err), err)
	}

	if err := validatorInstance().Struct(&file); err != nil {
		return Theme{}, apperrors.NewValidationError("", "invalid theme overlay", err)
	}

	th := applyOverlay(Default(), file)
	if err := th.Validate(); err != nil {
		return Theme{}, err
	}
	return th, nil
}

func applyOverlay(th Theme, file themeFile) Theme {
	if file.Width > 0 {
		th.Layout.Width = file.Width
	}
	if file.MinColumnWidth > 0 {
		th.Layout.MinColumnWidth = file.MinColumnWidth
	}

	for name, glyph := range file.Icons {
		switch name {
		case "info":
			th.Icons.Info = glyph
		case "success":
			th.Icons.Success = glyph
		case "warning":
			th.Icons.Warning = glyph
		case "error":
			th.Icons.Error = glyph
		case "debug":
			th.Icons.Debug = glyph
		case "cursor":
			th.Icons.Cursor = glyph
		case "bullet":
			th.Icons.Bullet = glyph
		}
	}

	if file.Spacing != nil {
		th.Spacing = th.Spacing.clone()
		if file.Spacing.Default != nil {
			th.Spacing.Default = *file.Spacing.Default
		}
		for _, rule := range file.Spacing.Rules {
			// Kind names were checked by the validator; parse cannot fail here.
			prev, _ := ParseKind(rule.Prev)
			next, _ := ParseKind(rule.Next)
			th.Spacing.Rules[Transition{Prev: prev, Next: next}] = rule.Blank
		}
	}

	return th
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
