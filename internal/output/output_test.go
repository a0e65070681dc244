package output_test

import (
	"encoding/json"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/temirov/dummie/internal/output"
	"github.com/temirov/dummie/internal/types"
)

func sampleTree() *types.TreeOutputNode {
	return &types.TreeOutputNode{
		Path: "/work/project",
		Name: "project",
		Type: types.NodeTypeDirectory,
		Children: []*types.TreeOutputNode{
			{
				Path:      "/work/project/node_modules",
				Name:      "node_modules",
				Type:      types.NodeTypeDirectory,
				Depth:     1,
				Collapsed: true,
				Children: []*types.TreeOutputNode{
					{Name: types.PlaceholderName, Type: types.NodeTypePlaceholder, Depth: 2},
				},
			},
			{
				Path:  "/work/project/src",
				Name:  "src",
				Type:  types.NodeTypeDirectory,
				Depth: 1,
				Children: []*types.TreeOutputNode{
					{Path: "/work/project/src/main.go", Name: "main.go", Type: types.NodeTypeFile, Depth: 2},
				},
			},
			{Path: "/work/project/README.md", Name: "README.md", Type: types.NodeTypeFile, Depth: 1},
		},
	}
}

func TestRenderTreeRaw(testingHandle *testing.T) {
	expected := "project\n" +
		"├── node_modules\n" +
		"│   └── [...]\n" +
		"├── src\n" +
		"│   └── main.go\n" +
		"└── README.md\n"
	if rendered := output.RenderTreeRaw(sampleTree()); rendered != expected {
		testingHandle.Fatalf("unexpected raw output:\n%s", rendered)
	}
}

func TestRenderTreeJSONKeepsCollapsedPlaceholder(testingHandle *testing.T) {
	rendered, renderError := output.RenderTree(types.FormatJSON, sampleTree())
	if renderError != nil {
		testingHandle.Fatalf("RenderTree error: %v", renderError)
	}
	var decoded types.TreeOutputNode
	if decodeError := json.Unmarshal([]byte(rendered), &decoded); decodeError != nil {
		testingHandle.Fatalf("decode JSON: %v", decodeError)
	}
	collapsed := decoded.Children[0]
	if !collapsed.Collapsed || len(collapsed.Children) != 1 || collapsed.Children[0].Type != types.NodeTypePlaceholder {
		testingHandle.Fatalf("unexpected collapsed node: %+v", collapsed)
	}
	if decoded.Children[1].Collapsed {
		testingHandle.Fatalf("expanded directory must not be marked collapsed")
	}
}

func TestRenderTreeXML(testingHandle *testing.T) {
	rendered, renderError := output.RenderTree(types.FormatXML, sampleTree())
	if renderError != nil {
		testingHandle.Fatalf("RenderTree error: %v", renderError)
	}
	if !strings.HasPrefix(rendered, xml.Header) {
		testingHandle.Fatalf("expected XML header, got %q", rendered)
	}
	if !strings.Contains(rendered, "<collapsed>true</collapsed>") || !strings.Contains(rendered, "<name>[...]</name>") {
		testingHandle.Fatalf("expected collapsed marker and placeholder in XML:\n%s", rendered)
	}
}

func TestRenderTreeRejectsUnknownFormat(testingHandle *testing.T) {
	if _, renderError := output.RenderTree("yaml", sampleTree()); renderError == nil {
		testingHandle.Fatalf("expected error for unsupported format")
	}
	if output.IsSupportedFormat("yaml") || !output.IsSupportedFormat(types.FormatXML) {
		testingHandle.Fatalf("unexpected IsSupportedFormat result")
	}
}

func TestRenderTranslation(testingHandle *testing.T) {
	result := types.TranslationOutput{Text: "hello", From: "en", To: "vi", Translated: "xin chào", Source: "api"}
	raw, rawError := output.RenderTranslation(types.FormatRaw, result)
	if rawError != nil || raw != "xin chào\n" {
		testingHandle.Fatalf("unexpected raw translation %q (%v)", raw, rawError)
	}
	encoded, jsonError := output.RenderTranslation(types.FormatJSON, result)
	if jsonError != nil || !strings.Contains(encoded, `"translated": "xin chào"`) {
		testingHandle.Fatalf("unexpected JSON translation %q (%v)", encoded, jsonError)
	}
	document, xmlError := output.RenderTranslation(types.FormatXML, result)
	if xmlError != nil || !strings.Contains(document, `<translation from="en" to="vi" source="api">`) {
		testingHandle.Fatalf("unexpected XML translation %q (%v)", document, xmlError)
	}
}
