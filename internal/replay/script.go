package replay

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	pageerrors "github.com/alexisbeaulieu97/pagelet/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	yamlLineRegex = regexp.MustCompile(`line (\d+)`)
)

// Script is an ordered list of user interactions.
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps" validate:"required,min=1,dive"`
}

// Step holds exactly one action.
type Step struct {
	Click      string         `yaml:"click,omitempty"`
	ClickClass *ClassTarget   `yaml:"click_class,omitempty"`
	Input      *InputAction   `yaml:"input,omitempty"`
	Submit     string         `yaml:"submit,omitempty"`
	Wait       *time.Duration `yaml:"wait,omitempty" validate:"omitempty,min=0"`
}

// ClassTarget picks the index-th element carrying Class.
type ClassTarget struct {
	Class string `yaml:"class" validate:"required"`
	Index int    `yaml:"index" validate:"min=0"`
}

// InputAction replaces the value of an input and fires its input event.
type InputAction struct {
	ID    string `yaml:"id" validate:"required"`
	Value string `yaml:"value"`
}

// Kind names the action a step performs.
type Kind string

const (
	KindClick      Kind = "click"
	KindClickClass Kind = "click_class"
	KindInput      Kind = "input"
	KindSubmit     Kind = "submit"
	KindWait       Kind = "wait"
)

// Kind returns the single action set on the step.
func (s Step) Kind() (Kind, error) {
	var kinds []Kind
	if s.Click != "" {
		kinds = append(kinds, KindClick)
	}
	if s.ClickClass != nil {
		kinds = append(kinds, KindClickClass)
	}
	if s.Input != nil {
		kinds = append(kinds, KindInput)
	}
	if s.Submit != "" {
		kinds = append(kinds, KindSubmit)
	}
	if s.Wait != nil {
		kinds = append(kinds, KindWait)
	}

	switch len(kinds) {
	case 0:
		return "", errors.New("step has no action")
	case 1:
		return kinds[0], nil
	default:
		names := make([]string, len(kinds))
		for i, k := range kinds {
			names[i] = string(k)
		}
		return "", fmt.Errorf("step has several actions: %s", strings.Join(names, ", "))
	}
}

func (s Step) String() string {
	kind, err := s.Kind()
	if err != nil {
		return "invalid step"
	}
	switch kind {
	case KindClick:
		return "click #" + s.Click
	case KindClickClass:
		return fmt.Sprintf("click .%s[%d]", s.ClickClass.Class, s.ClickClass.Index)
	case KindInput:
		return fmt.Sprintf("input #%s = %q", s.Input.ID, s.Input.Value)
	case KindSubmit:
		return "submit #" + s.Submit
	default:
		return "wait " + s.Wait.String()
	}
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Load reads a replay script from disk.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pageerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes and validates a replay script. Unknown keys are rejected so
// that a misspelt action does not silently turn into a no-op step.
func Parse(name string, data []byte) (*Script, error) {
	var script Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&script); err != nil && !errors.Is(err, io.EOF) {
		return nil, pageerrors.NewParseError(name, extractLine(err), err)
	}

	if len(script.Steps) == 0 {
		return nil, pageerrors.NewValidationError("steps", "script has no steps", nil)
	}
	if err := validatorInstance().Struct(&script); err != nil {
		var ves validator.ValidationErrors
		if errors.As(err, &ves) && len(ves) > 0 {
			field := strings.ToLower(ves[0].Namespace())
			return nil, pageerrors.NewValidationError(field, fmt.Sprintf("%s failed validation for tag '%s'", field, ves[0].Tag()), err)
		}
		return nil, pageerrors.NewValidationError("script", err.Error(), err)
	}
	for i, step := range script.Steps {
		if _, err := step.Kind(); err != nil {
			return nil, pageerrors.NewValidationError("steps["+strconv.Itoa(i)+"]", err.Error(), nil)
		}
	}
	return &script, nil
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
