package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	fberrors "github.com/alexisbeaulieu97/flutterbuild/pkg/errors"
)

// convertValidationError normalizes validator errors into flutterbuild validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := documentFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return fberrors.NewValidationError(field, msg, err)
	}

	return fberrors.NewValidationError("document", err.Error(), err)
}

// documentFieldName drops the root struct name from the yaml-keyed namespace,
// e.g. "Document.nodes[0].font_size" becomes "nodes[0].font_size".
func documentFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func fieldForNode(index int, field string) string {
	return fmt.Sprintf("nodes[%d].%s", index, field)
}
