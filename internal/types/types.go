// Package types defines every cross‑package data structure used by the dummie CLI.
package types

import "encoding/xml"

const (
	NodeTypeFile        = "file"
	NodeTypeDirectory   = "directory"
	NodeTypePlaceholder = "placeholder"

	CommandStrucView     = "strucview"
	CommandTranslate     = "translate"
	CommandInfo          = "info"
	CommandVersionCheck  = "version-check"
	CommandBrowserDetect = "browser-detect"

	FormatRaw  = "raw"
	FormatJSON = "json"
	FormatXML  = "xml"

	// PlaceholderName is the rendered name of a collapsed directory's only child.
	PlaceholderName = "[...]"
)

// TreeOutputNode represents a node of a directory tree returned by the strucview command.
type TreeOutputNode struct {
	XMLName      xml.Name          `json:"-" xml:"node"`
	Path         string            `json:"path,omitempty" xml:"path,omitempty"`
	Name         string            `json:"name" xml:"name"`
	Type         string            `json:"type" xml:"type"`
	Depth        int               `json:"depth" xml:"depth"`
	Collapsed    bool              `json:"collapsed,omitempty" xml:"collapsed,omitempty"`
	Size         string            `json:"size,omitempty" xml:"size,omitempty"`
	LastModified string            `json:"lastModified,omitempty" xml:"lastModified,omitempty"`
	Children     []*TreeOutputNode `json:"children,omitempty" xml:"children>node,omitempty"`
}

// IsDirectory reports whether the node stands for a directory.
func (node *TreeOutputNode) IsDirectory() bool {
	return node != nil && node.Type == NodeTypeDirectory
}

// TranslationOutput is the result of the translate command.
type TranslationOutput struct {
	Text       string `json:"text" xml:"text"`
	From       string `json:"from" xml:"from,attr"`
	To         string `json:"to" xml:"to,attr"`
	Translated string `json:"translated" xml:"translated"`
	Source     string `json:"source" xml:"source,attr"`
}
