package components

import (
	"github.com/Rorical/RoriComplete/ui/styles"
)

func RenderInput(editor string, focused bool, width int) string {
	return styles.InputStyle(width, focused).Render(editor)
}
