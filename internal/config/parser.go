package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	fberrors "github.com/alexisbeaulieu97/flutterbuild/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseDocument loads a design document from disk, validates it, and returns the resulting model.
func ParseDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fberrors.NewParseError(path, 0, err)
	}

	return DecodeDocument(data, path)
}

// DecodeDocument decodes and validates a document. source names the input in
// error messages. JSON input is accepted since it is valid YAML.
func DecodeDocument(data []byte, source string) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fberrors.NewParseError(source, 0, fmt.Errorf("document is empty"))
		}
		return nil, fberrors.NewParseError(source, extractLine(err), err)
	}

	if err := ValidateDocument(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
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
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
