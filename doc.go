/*
Package iconfont exports the icons of a web icon font as standalone PNG images
of arbitrary size and color.

A web icon font consists of a font file, whose glyphs are pictograms, and a stylesheet
mapping the icon class names to the font's codepoints through rules like:

	.icon-home:before { content: "\f101"; }

The stylesheet is parsed only once, when the IconFont is created. The prefix shared
by all the icon names (e.g. "icon-") is stripped off, unless it's asked to be kept.

Each icon is scaled to fit inside the requested size, cropped to its visible area
and centered on a transparent square canvas. Icons smaller than 150 pixels are
rendered at 150 pixels first, then scaled down. Optionally an icon can be composed
with a second, wrapper icon (a circle, a badge) drawn around it.

The package provides a command line interface too. To check the supported flags type:

	$ iconfont --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"log"

		"github.com/esimov/iconfont"
	)

	func main() {
		f, err := iconfont.New("font-awesome.css", "fontawesome-webfont.ttf", false)
		if err != nil {
			log.Fatal(err)
		}

		err = f.ExportIcon("github", 64,
			iconfont.WithColor("#4078c0"),
			iconfont.WithExportDir("icons"),
		)
		if err != nil {
			log.Fatalf("Error exporting icon: %v", err)
		}
	}
*/
package iconfont
