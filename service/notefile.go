package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"notedapp/noted/model"
	"strings"
)

var ErrUnknownFiletype = errors.New("unknown download file type")

// NoteFile is a downloadable rendition of a note built in memory
type NoteFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

// BuildNoteFile renders a note as a downloadable file. Supported types are
// md, txt, html and json.
func BuildNoteFile(note *model.Note, filetype string) (*NoteFile, error) {
	var (
		body        []byte
		contentType string
	)

	switch filetype {
	case "md":
		body = []byte(fmt.Sprintf("# %s\n\n%s\n", note.Title, note.Body))
		contentType = "text/markdown; charset=utf-8"
	case "txt":
		body = []byte(note.Title + "\n\n" + note.Body + "\n")
		contentType = "text/plain; charset=utf-8"
	case "html":
		var b strings.Builder
		b.WriteString("<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>")
		b.WriteString(html.EscapeString(note.Title))
		b.WriteString("</title></head>\n<body>\n<h1>")
		b.WriteString(html.EscapeString(note.Title))
		b.WriteString("</h1>\n")

		for _, p := range strings.Split(note.Body, "\n\n") {
			b.WriteString("<p>" + html.EscapeString(p) + "</p>\n")
		}

		b.WriteString("</body>\n</html>\n")

		body = []byte(b.String())
		contentType = "text/html; charset=utf-8"
	case "json":
		var err error

		body, err = json.MarshalIndent(note, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal note, %w", err)
		}

		contentType = "application/json"
	default:
		return nil, ErrUnknownFiletype
	}

	name := Slugify(note.Title)
	if name == "" {
		name = note.Slug
	}

	return &NoteFile{
		Filename:    name + "." + filetype,
		ContentType: contentType,
		Body:        body,
	}, nil
}
