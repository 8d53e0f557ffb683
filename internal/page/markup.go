package page

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	pageerrors "github.com/alexisbeaulieu97/pagelet/pkg/errors"
)

//go:embed default.yaml
var defaultMarkup []byte

// DefaultName is the path reported for the embedded page.
const DefaultName = "<default>"

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	yamlLineRegex    = regexp.MustCompile(`line (\d+)`)
	elementIDPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)
)

// Markup is the YAML form of a page document.
type Markup struct {
	Title string `yaml:"title"`
	Body  Node   `yaml:"body" validate:"required"`
}

// Node is the YAML form of one element.
type Node struct {
	Tag      string            `yaml:"tag" validate:"required,oneof=body section div span p h1 h2 h3 button form input label small"`
	ID       string            `yaml:"id,omitempty" validate:"omitempty,element_id"`
	Class    ClassList         `yaml:"class,omitempty"`
	Text     string            `yaml:"text,omitempty"`
	Attrs    map[string]string `yaml:"attrs,omitempty"`
	Hidden   bool              `yaml:"hidden,omitempty"`
	Value    string            `yaml:"value,omitempty"`
	Children []Node            `yaml:"children,omitempty" validate:"omitempty,dive"`
}

// ClassList accepts either a space separated string or a YAML sequence.
type ClassList []string

// UnmarshalYAML decodes scalar and sequence class declarations.
func (c *ClassList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*c = strings.Fields(value.Value)
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		*c = items
		return nil
	default:
		return fmt.Errorf("line %d: class must be a string or a list", value.Line)
	}
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("element_id", func(fl validator.FieldLevel) bool {
			return elementIDPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Default returns a fresh copy of the embedded demo page.
func Default() *Document {
	doc, err := Parse(DefaultName, defaultMarkup)
	if err != nil {
		panic(fmt.Sprintf("embedded page is invalid: %v", err))
	}
	return doc
}

// Load reads and parses a page document from disk.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pageerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes, validates and builds a page document.
func Parse(name string, data []byte) (*Document, error) {
	var markup Markup
	if err := yaml.Unmarshal(data, &markup); err != nil {
		return nil, pageerrors.NewParseError(name, extractLine(err), err)
	}

	if err := validateMarkup(&markup); err != nil {
		return nil, err
	}

	return NewDocument(markup.Title, build(markup.Body)), nil
}

func validateMarkup(markup *Markup) error {
	if markup.Body.Tag == "" {
		return pageerrors.NewValidationError("body", "page body is required", nil)
	}
	if err := validatorInstance().Struct(markup); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]string)
	return checkIDs(markup.Body, "body", seen)
}

func checkIDs(node Node, path string, seen map[string]string) error {
	if node.ID != "" {
		if first, exists := seen[node.ID]; exists {
			return pageerrors.NewValidationError(path+".id", fmt.Sprintf("duplicate id %q, first declared at %s", node.ID, first), nil)
		}
		seen[node.ID] = path
	}
	for i, child := range node.Children {
		if err := checkIDs(child, fmt.Sprintf("%s.children[%d]", path, i), seen); err != nil {
			return err
		}
	}
	return nil
}

func build(node Node) *Element {
	el := NewElement(node.Tag, node.ID, node.Class...)
	el.text = node.Text
	el.value = node.Value
	el.hidden = node.Hidden
	for key, value := range node.Attrs {
		el.SetAttr(key, value)
	}
	for _, child := range node.Children {
		el.Append(build(child))
	}
	return el
}

func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		ve := ves[0]
		field := strings.ToLower(ve.Namespace())
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return pageerrors.NewValidationError(field, msg, err)
	}
	return pageerrors.NewValidationError("page", err.Error(), err)
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
