// Package output renders command results as raw text, JSON, or XML.
package output

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/temirov/dummie/internal/types"
)

const (
	indentPrefix = ""
	indentSpacer = "  "

	xmlHeader = xml.Header

	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "

	unsupportedFormatMessage = "unsupported output format %q"
)

// IsSupportedFormat reports whether the provided format is recognized.
func IsSupportedFormat(format string) bool {
	switch format {
	case types.FormatRaw, types.FormatJSON, types.FormatXML:
		return true
	default:
		return false
	}
}

// RenderTree renders a strucview tree in the requested format.
func RenderTree(format string, root *types.TreeOutputNode) (string, error) {
	switch format {
	case types.FormatRaw:
		return RenderTreeRaw(root), nil
	case types.FormatJSON:
		return RenderTreeJSON(root)
	case types.FormatXML:
		return RenderTreeXML(root)
	default:
		return "", fmt.Errorf(unsupportedFormatMessage, format)
	}
}

// RenderTreeRaw draws the tree one line per node, the root name first and unprefixed.
func RenderTreeRaw(root *types.TreeOutputNode) string {
	if root == nil {
		return ""
	}
	var builder strings.Builder
	builder.WriteString(root.Name + "\n")
	renderTreeNode(&builder, root, "")
	return builder.String()
}

func renderTreeNode(builder *strings.Builder, treeNode *types.TreeOutputNode, prefix string) {
	numberOfChildren := len(treeNode.Children)
	for index, child := range treeNode.Children {
		isLastChild := index == numberOfChildren-1
		connector := treeBranchConnector
		newPrefix := prefix + treeBranchPadding
		if isLastChild {
			connector = treeLastConnector
			newPrefix = prefix + treeLastPadding
		}
		builder.WriteString(prefix + connector + child.Name + "\n")
		if child.Type == types.NodeTypeDirectory {
			renderTreeNode(builder, child, newPrefix)
		}
	}
}

// RenderTreeJSON marshals the tree as indented JSON.
func RenderTreeJSON(root *types.TreeOutputNode) (string, error) {
	encoded, jsonEncodeError := json.MarshalIndent(root, indentPrefix, indentSpacer)
	if jsonEncodeError != nil {
		return "", jsonEncodeError
	}
	return string(encoded) + "\n", nil
}

// RenderTreeXML marshals the tree as an XML document.
func RenderTreeXML(root *types.TreeOutputNode) (string, error) {
	encoded, xmlMarshalError := xml.MarshalIndent(root, indentPrefix, indentSpacer)
	if xmlMarshalError != nil {
		return "", xmlMarshalError
	}
	return xmlHeader + string(encoded) + "\n", nil
}

// RenderTranslation renders a translation result; raw output is the translated text alone.
func RenderTranslation(format string, result types.TranslationOutput) (string, error) {
	switch format {
	case types.FormatRaw:
		return result.Translated + "\n", nil
	case types.FormatJSON:
		encoded, jsonEncodeError := json.MarshalIndent(result, indentPrefix, indentSpacer)
		if jsonEncodeError != nil {
			return "", jsonEncodeError
		}
		return string(encoded) + "\n", nil
	case types.FormatXML:
		wrapper := struct {
			XMLName xml.Name `xml:"translation"`
			types.TranslationOutput
		}{TranslationOutput: result}
		encoded, xmlMarshalError := xml.MarshalIndent(wrapper, indentPrefix, indentSpacer)
		if xmlMarshalError != nil {
			return "", xmlMarshalError
		}
		return xmlHeader + string(encoded) + "\n", nil
	default:
		return "", fmt.Errorf(unsupportedFormatMessage, format)
	}
}
