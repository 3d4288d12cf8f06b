package model

// ReleaseTypes lists the release types offered as suggestions in the editor.
// The type field itself accepts any text.
var ReleaseTypes = []string{
	"Single",
	"Album",
	"EP",
	"Demo",
	"Mini Album",
	"Digital Single",
	"Best Album",
	"Live Album",
	"Compilation",
	"Remix Album",
	"Soundtrack",
}
