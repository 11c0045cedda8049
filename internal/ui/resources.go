package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "ytmp3.svg"
)

// logoSVG is a play button over a music note
const logoSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 64 64">
<rect x="2" y="10" width="60" height="44" rx="12" fill="#cc2020"/>
<path d="M26 22v20l16-10z" fill="#ffffff"/>
<circle cx="50" cy="46" r="5" fill="#ffffff"/>
<rect x="53" y="26" width="3" height="20" fill="#ffffff"/>
</svg>`

// LogoResource is the application icon
var LogoResource = fyne.NewStaticResource(AppIcon, []byte(logoSVG))
