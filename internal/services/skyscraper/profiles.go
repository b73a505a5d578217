package skyscraper

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
)

// ArtworkProfile describes a single-output artwork composition file for the
// external tool: which cached resource to export and at what dimensions.
type ArtworkProfile struct {
	Name     string
	Resource string
	Width    int
	Height   int
}

// BoxProfile is the cover-art export profile.
func BoxProfile(width, height int) ArtworkProfile {
	return ArtworkProfile{Name: "box", Resource: "cover", Width: width, Height: height}
}

// PreviewProfile is the screenshot export profile.
func PreviewProfile(width, height int) ArtworkProfile {
	return ArtworkProfile{Name: "preview", Resource: "screenshot", Width: width, Height: height}
}

type artworkDoc struct {
	XMLName xml.Name        `xml:"artwork"`
	Outputs []artworkOutput `xml:"output"`
}

type artworkOutput struct {
	Type   string         `xml:"type,attr"`
	Width  int            `xml:"width,attr"`
	Height int            `xml:"height,attr"`
	Layers []artworkLayer `xml:"layer"`
}

type artworkLayer struct {
	Resource string `xml:"resource,attr"`
	Width    int    `xml:"width,attr"`
	Height   int    `xml:"height,attr"`
}

// WriteProfile renders the profile as an artwork XML file under dir and
// returns its path.
func WriteProfile(dir string, profile ArtworkProfile) (string, error) {
	doc := artworkDoc{
		Outputs: []artworkOutput{{
			Type:   profile.Resource,
			Width:  profile.Width,
			Height: profile.Height,
			Layers: []artworkLayer{{
				Resource: profile.Resource,
				Width:    profile.Width,
				Height:   profile.Height,
			}},
		}},
	}
	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal artwork profile: %w", err)
	}
	path := filepath.Join(dir, "artwork_"+profile.Name+".xml")
	content := append([]byte(xml.Header), data...)
	content = append(content, '\n')
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("write artwork profile: %w", err)
	}
	return path, nil
}
