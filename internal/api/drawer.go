// Package api defines the JSON bodies exchanged with the cabinet HTTP API.
// It is shared by the server handlers and the client.
package api

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"

	"drawer-cabinet/internal/cabinet"
)

// DrawerJSON is the wire form of a drawer. Positions and keywords are
// JSON-encoded arrays carried as strings.
type DrawerJSON struct {
	ID             string  `json:"id"`
	Size           string  `json:"size"`
	Title          string  `json:"title"`
	Name           *string `json:"name"`
	Positions      string  `json:"positions"`
	IsRightSection bool    `json:"is_right_section"`
	Keywords       string  `json:"keywords"`
	Spacing        int     `json:"spacing"`
}

// DrawerDetail is a single drawer together with the sizes it can currently
// be resized to.
type DrawerDetail struct {
	DrawerJSON
	AllowedSizes []string `json:"allowed_sizes"`
}

// FromDrawer converts d to its wire form.
func FromDrawer(d cabinet.Drawer) DrawerJSON {
	positions, _ := json.Marshal(d.Positions())
	keywords := d.Keywords()
	if keywords == nil {
		keywords = []string{}
	}
	encodedKeywords, _ := json.Marshal(keywords)

	out := DrawerJSON{
		ID:             d.ID(),
		Size:           string(d.Size()),
		Title:          d.Title(),
		Positions:      string(positions),
		IsRightSection: d.IsRightSection(),
		Keywords:       string(encodedKeywords),
		Spacing:        d.Spacing(),
	}
	if name := d.Name(); name != "" {
		out.Name = &name
	}
	return out
}

// FromDrawers converts every drawer to its wire form.
func FromDrawers(drawers []cabinet.Drawer) []DrawerJSON {
	out := make([]DrawerJSON, len(drawers))
	for i, d := range drawers {
		out[i] = FromDrawer(d)
	}
	return out
}

// SizeNames returns the wire names of sizes.
func SizeNames(sizes []cabinet.Size) []string {
	out := make([]string, len(sizes))
	for i, s := range sizes {
		out[i] = string(s)
	}
	return out
}

// Record decodes the string-encoded arrays into a drawer record.
func (j DrawerJSON) Record() (cabinet.Record, error) {
	rec := cabinet.Record{
		ID:             j.ID,
		Size:           j.Size,
		Title:          j.Title,
		IsRightSection: j.IsRightSection,
		Spacing:        j.Spacing,
	}
	if j.Name != nil {
		rec.Name = *j.Name
	}
	if err := json.Unmarshal([]byte(j.Positions), &rec.Positions); err != nil {
		return cabinet.Record{}, fmt.Errorf("drawer %s: positions must be a JSON array of integers: %w", j.ID, err)
	}
	if j.Keywords != "" {
		if err := json.Unmarshal([]byte(j.Keywords), &rec.Keywords); err != nil {
			return cabinet.Record{}, fmt.Errorf("drawer %s: keywords must be a JSON array of strings: %w", j.ID, err)
		}
	}
	return rec, nil
}

// KeywordList accepts keywords either as a JSON array or as a string holding
// a JSON-encoded array, the form used in DrawerJSON.
type KeywordList []string

func (k *KeywordList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var encoded string
		if err := json.Unmarshal(data, &encoded); err != nil {
			return err
		}
		if encoded == "" {
			*k = nil
			return nil
		}
		data = []byte(encoded)
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("keywords must be an array of strings: %w", err)
	}
	*k = list
	return nil
}
