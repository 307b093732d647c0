// Package icons maps file extensions to icon names.
//
// Extensions are grouped into kinds (archive, audio, code, ...). A Vocabulary
// names each kind in one icon set, so a new icon set is a new Vocabulary value
// rather than a new lookup table.
package icons

import (
	"path/filepath"
	"strings"
)

// Kind is a coarse file category.
type Kind string

const (
	KindArchive      Kind = "archive"
	KindAudio        Kind = "audio"
	KindCode         Kind = "code"
	KindSheet        Kind = "sheet"
	KindImage        Kind = "image"
	KindVideo        Kind = "video"
	KindDocument     Kind = "document"
	KindText         Kind = "text"
	KindPDF          Kind = "pdf"
	KindPresentation Kind = "presentation"
)

var kinds = map[string]Kind{
	"gz":  KindArchive,
	"zip": KindArchive,
	"tar": KindArchive,
	"7z":  KindArchive,
	"rar": KindArchive,

	"mp3": KindAudio,
	"aac": KindAudio,
	"ogg": KindAudio,
	"wav": KindAudio,
	"raw": KindAudio,

	"js":    KindCode,
	"css":   KindCode,
	"cpp":   KindCode,
	"java":  KindCode,
	"class": KindCode,
	"py":    KindCode,
	"cs":    KindCode,
	"gml":   KindCode,
	"bin":   KindCode,
	"asm":   KindCode,
	"pl":    KindCode,
	"hs":    KindCode,
	"jsx":   KindCode,
	"ts":    KindCode,
	"html":  KindCode,
	"json":  KindCode,
	"sh":    KindCode,
	"env":   KindCode,

	"xls":     KindSheet,
	"xlsx":    KindSheet,
	"csv":     KindSheet,
	"numbers": KindSheet,

	"jpg":  KindImage,
	"jpeg": KindImage,
	"png":  KindImage,
	"gif":  KindImage,
	"psd":  KindImage,
	"ai":   KindImage,
	"tiff": KindImage,
	"bmp":  KindImage,
	"riff": KindImage,
	"xbmp": KindImage,
	"webp": KindImage,
	"svg":  KindImage,

	"mp4":  KindVideo,
	"avi":  KindVideo,
	"wmv":  KindVideo,
	"flv":  KindVideo,
	"mov":  KindVideo,
	"webm": KindVideo,
	"mpeg": KindVideo,
	"mpg":  KindVideo,
	"mpv":  KindVideo,

	"doc":  KindDocument,
	"docx": KindDocument,
	"txt":  KindText,
	"pdf":  KindPDF,

	"ppt":  KindPresentation,
	"pptx": KindPresentation,
	"odp":  KindPresentation,
}

// Vocabulary names every Kind in a single icon set.
type Vocabulary struct {
	Name    string
	Default string
	Kinds   map[Kind]string
}

// FontAwesome is the Font Awesome 5 class vocabulary.
var FontAwesome = Vocabulary{
	Name:    "fa",
	Default: "fa-file",
	Kinds: map[Kind]string{
		KindArchive:      "fa-file-archive",
		KindAudio:        "fa-file-audio",
		KindCode:         "fa-file-code",
		KindSheet:        "fa-file-excel",
		KindImage:        "fa-file-image",
		KindVideo:        "fa-file-movie",
		KindDocument:     "fa-file-word",
		KindText:         "fa-file-text",
		KindPDF:          "fa-file-pdf",
		KindPresentation: "fa-file-powerpoint",
	},
}

// SVG is the bundled SVG file vocabulary. It has no dedicated text icon.
var SVG = Vocabulary{
	Name:    "svg",
	Default: "file-file.svg",
	Kinds: map[Kind]string{
		KindArchive:      "file-archive.svg",
		KindAudio:        "file-audio.svg",
		KindCode:         "file-code.svg",
		KindSheet:        "file-sheet.svg",
		KindImage:        "file-img.svg",
		KindVideo:        "file-video.svg",
		KindDocument:     "file-doc.svg",
		KindText:         "file-doc.svg",
		KindPDF:          "file-pdf.svg",
		KindPresentation: "file-ppt.svg",
	},
}

var vocabularies = map[string]Vocabulary{
	FontAwesome.Name: FontAwesome,
	SVG.Name:         SVG,
}

// ForName returns the vocabulary registered under name ("fa" or "svg").
func ForName(name string) (Vocabulary, bool) {
	v, ok := vocabularies[name]
	return v, ok
}

// Names lists the registered vocabulary names.
func Names() []string {
	return []string{FontAwesome.Name, SVG.Name}
}

// KindOf reports the kind of a bare extension such as "png".
func KindOf(ext string) (Kind, bool) {
	k, ok := kinds[ext]
	return k, ok
}

// Lookup returns the icon for a bare, case-sensitive extension. Unknown
// extensions, and kinds the vocabulary does not name, get v.Default.
func Lookup(v Vocabulary, ext string) string {
	k, ok := kinds[ext]
	if !ok {
		return v.Default
	}
	if icon, ok := v.Kinds[k]; ok {
		return icon
	}
	return v.Default
}

// LookupPath is Lookup on the lower-cased extension of a file name.
func LookupPath(v Vocabulary, name string) string {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	return Lookup(v, strings.ToLower(ext))
}
