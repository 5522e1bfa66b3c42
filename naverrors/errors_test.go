package naverrors

import (
	"errors"
	"testing"
)

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &ParseError{
			Path:    "/path/to/doc.json",
			Message: "invalid syntax",
			Cause:   cause,
		}

		msg := err.Error()
		if msg != "parse error in /path/to/doc.json: invalid syntax: underlying error" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ParseError{}
		if err.Error() != "parse error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ParseError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Is matches ErrParse", func(t *testing.T) {
		err := &ParseError{Message: "test"}
		if !errors.Is(err, ErrParse) {
			t.Error("ParseError should match ErrParse")
		}
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &ParseError{}
		if errors.Is(err, ErrStructure) {
			t.Error("ParseError should not match ErrStructure")
		}
		if errors.Is(err, ErrConfig) {
			t.Error("ParseError should not match ErrConfig")
		}
	})

	t.Run("As extracts ParseError", func(t *testing.T) {
		var target *ParseError
		var err error = &ParseError{Path: "doc.json"}
		if !errors.As(err, &target) {
			t.Fatal("As should extract ParseError")
		}
		if target.Path != "doc.json" {
			t.Errorf("unexpected path: %s", target.Path)
		}
	})
}

func TestStructureError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &StructureError{
			Origin:  "items.sku",
			Index:   2,
			Message: "array nested inside array",
		}

		msg := err.Error()
		if msg != "structure error: array nested inside array at 'items.sku' (element 2)" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message omits negative index", func(t *testing.T) {
		err := &StructureError{Origin: "a.b", Index: -1, Message: "bad shape"}
		if err.Error() != "structure error: bad shape at 'a.b'" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns nil", func(t *testing.T) {
		err := &StructureError{}
		if err.Unwrap() != nil {
			t.Error("Unwrap should return nil")
		}
	})

	t.Run("Is matches ErrStructure", func(t *testing.T) {
		err := &StructureError{Origin: "a"}
		if !errors.Is(err, ErrStructure) {
			t.Error("StructureError should match ErrStructure")
		}
		if errors.Is(err, ErrParse) {
			t.Error("StructureError should not match ErrParse")
		}
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ConfigError{
			Option:  "action",
			Value:   "nil",
			Message: "action cannot be nil",
		}

		msg := err.Error()
		if msg != "configuration error for action (value: nil): action cannot be nil" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("bad input")
		err := &ConfigError{Cause: cause}
		if !errors.Is(err, cause) {
			t.Error("ConfigError should wrap its cause")
		}
	})

	t.Run("Is matches ErrConfig", func(t *testing.T) {
		err := &ConfigError{Option: "paths"}
		if !errors.Is(err, ErrConfig) {
			t.Error("ConfigError should match ErrConfig")
		}
	})
}
