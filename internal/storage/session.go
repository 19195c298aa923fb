package storage

import (
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// SessionFile records the last editing position so reopening the
// editor in the same directory lands where the user left off.
const SessionFile = ".ced-session.json"

// Session is the state carried across editor runs.
type Session struct {
	File            string
	CursorRow       int
	CursorCol       int
	RowOffset       int
	ColOffset       int
	ShowLineNumbers bool
}

// LoadSession reads the session file from dir. A missing or unreadable
// file yields a zero session and no error; stale state is never worth
// failing startup over.
func LoadSession(dir string) Session {
	data, err := os.ReadFile(sessionPath(dir))
	if err != nil || !gjson.ValidBytes(data) {
		return Session{}
	}
	r := gjson.ParseBytes(data)
	return Session{
		File:            r.Get("file").String(),
		CursorRow:       int(r.Get("cursor.row").Int()),
		CursorCol:       int(r.Get("cursor.col").Int()),
		RowOffset:       int(r.Get("viewport.row_offset").Int()),
		ColOffset:       int(r.Get("viewport.col_offset").Int()),
		ShowLineNumbers: r.Get("show_line_numbers").Bool(),
	}
}

// SaveSession writes the session file into dir.
func SaveSession(dir string, s Session) error {
	json := "{}"
	json, _ = sjson.Set(json, "file", s.File)
	json, _ = sjson.Set(json, "cursor.row", s.CursorRow)
	json, _ = sjson.Set(json, "cursor.col", s.CursorCol)
	json, _ = sjson.Set(json, "viewport.row_offset", s.RowOffset)
	json, _ = sjson.Set(json, "viewport.col_offset", s.ColOffset)
	json, _ = sjson.Set(json, "show_line_numbers", s.ShowLineNumbers)
	return os.WriteFile(sessionPath(dir), []byte(json), 0o644)
}

func sessionPath(dir string) string {
	return filepath.Join(dir, SessionFile)
}
